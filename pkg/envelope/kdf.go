package envelope

import (
	"errors"

	"golang.org/x/crypto/scrypt"
)

// DeriveKey stretches password into exactly p.Length bytes of key
// material using scrypt. The result is deterministic for identical
// inputs, which is what makes decryption possible; fresh salts keep
// identical passwords from producing identical keys across envelopes.
//
// Derivation is intentionally expensive (hundreds of milliseconds at
// the default parameters) to resist offline password guessing. The
// caller owns the returned key and should zero it as soon as the cipher
// step completes.
func DeriveKey(password string, p Params) ([]byte, error) {
	if password == "" {
		return nil, errors.Join(ErrInvalidParams, ErrEmptyPassword)
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	key, err := scrypt.Key([]byte(password), p.Salt, p.N, p.R, p.P, p.Length)
	if err != nil {
		return nil, errors.Join(ErrInvalidParams, err)
	}
	return key, nil
}

// zeroKey overwrites transient key material so it does not outlive the
// single encrypt or decrypt call that derived it.
func zeroKey(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
