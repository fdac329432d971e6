package envelope

import (
	"crypto/aes"
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/fernet/fernet-go"
)

// The cipher is Fernet: AES-128-CBC plus HMAC-SHA256 under a split
// 32-byte key, packaged as a base64url token carrying a version byte,
// timestamp, IV, ciphertext and integrity tag. Everything open needs
// except the key travels inside the token itself.
const (
	fernetVersion = 0x80

	// version + timestamp + IV + one padded block + HMAC tag
	minTokenSize = 1 + 8 + aes.BlockSize + aes.BlockSize + sha256.Size
)

// seal encrypts plaintext under key with fresh internal randomness and
// returns an authenticated token. Two calls with identical inputs
// produce different tokens.
func seal(key, plaintext []byte) ([]byte, error) {
	fk, err := cipherKey(key)
	if err != nil {
		return nil, err
	}
	token, err := fernet.EncryptAndSign(plaintext, fk)
	if err != nil {
		return nil, errors.Join(ErrEncryptionFailed, err)
	}
	return token, nil
}

// open verifies and decrypts a token produced by seal. Structural
// damage (truncation, bad version byte, broken base64) reports
// ErrMalformedEnvelope; an intact token that fails verification reports
// ErrAuthenticationFailed. A wrong password and a tampered ciphertext
// produce the same failure, and no plaintext byte is ever returned
// before the integrity tag verifies.
func open(key, token []byte) ([]byte, error) {
	fk, err := cipherKey(key)
	if err != nil {
		return nil, err
	}
	raw, err := decodeBase64(string(token))
	if err != nil {
		return nil, errors.Join(ErrMalformedEnvelope, fmt.Errorf("ciphertext is not valid base64: %w", err))
	}
	if len(raw) < minTokenSize {
		return nil, errors.Join(ErrMalformedEnvelope, fmt.Errorf("ciphertext truncated: %d bytes, need at least %d", len(raw), minTokenSize))
	}
	if raw[0] != fernetVersion {
		return nil, errors.Join(ErrMalformedEnvelope, fmt.Errorf("unsupported ciphertext version marker 0x%02x", raw[0]))
	}
	// TTL of zero disables token expiry; envelopes are valid forever.
	plaintext := fernet.VerifyAndDecrypt(token, 0, []*fernet.Key{fk})
	if plaintext == nil {
		return nil, ErrAuthenticationFailed
	}
	return plaintext, nil
}

func cipherKey(key []byte) (*fernet.Key, error) {
	if len(key) != KeySize {
		return nil, errors.Join(ErrInvalidParams, fmt.Errorf("cipher requires a %d-byte key, got %d", KeySize, len(key)))
	}
	var fk fernet.Key
	copy(fk[:], key)
	return &fk, nil
}
