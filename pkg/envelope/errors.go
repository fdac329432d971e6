package envelope

import "errors"

var (
	// Parameter errors, returned before any expensive derivation work
	ErrInvalidParams = errors.New("invalid key derivation parameters")
	ErrUnsafeParams  = errors.New("key derivation parameters exceed the safety ceiling")
	ErrEmptyPassword = errors.New("password must not be empty")

	// Envelope structure errors
	ErrMalformedEnvelope = errors.New("malformed envelope")

	// Cryptographic operation errors
	ErrEncryptionFailed     = errors.New("encryption failed")
	ErrAuthenticationFailed = errors.New("decryption failed: wrong password or tampered ciphertext")
)
