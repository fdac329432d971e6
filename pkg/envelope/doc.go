// Package envelope implements password-based authenticated file
// encryption with a self-describing wire format.
//
// Encrypt derives a 32-byte key from the password using scrypt, seals
// the plaintext with the Fernet authenticated cipher, and packages the
// scrypt parameters, salt and ciphertext into a single JSON envelope.
// Decrypt needs only that envelope and the password: every parameter
// required to re-derive the key travels inside the envelope itself, so
// there is no key registry and no external state.
//
// # Wire Format
//
// An envelope is a JSON object with exactly six fields, in this order:
//
//	{
//	  "salt": "<base64url, 32 bytes>",
//	  "length": 32,
//	  "n": 131072,
//	  "r": 8,
//	  "p": 1,
//	  "ciphertext_b64": "<base64url Fernet token>"
//	}
//
// Salt and ciphertext are base64url without padding; padded input is
// accepted on parse for compatibility with envelopes written by the
// original tooling.
//
// # Usage
//
//	import "github.com/dmitrymomot/sealcam/pkg/envelope"
//
//	sealed, err := envelope.Encrypt("correct horse", plaintext)
//	if err != nil {
//	    // handle error
//	}
//
//	plain, err := envelope.Decrypt("correct horse", sealed)
//	if err != nil {
//	    // handle error
//	}
//
// # Error Handling
//
// All failures wrap a sentinel matched with errors.Is:
//
//   - ErrMalformedEnvelope – the envelope does not parse: missing
//     field, wrong type, broken base64, truncated ciphertext.
//   - ErrInvalidParams – ill-formed scrypt parameters (n not a power
//     of two, non-positive r/p/length, wrong salt size).
//   - ErrUnsafeParams – parameters that would exceed the memory or CPU
//     safety ceiling. Parsed parameters are attacker-controlled, so
//     both checks run before any derivation work.
//   - ErrAuthenticationFailed – the integrity tag did not verify. A
//     wrong password and a tampered ciphertext produce the same
//     failure, and no plaintext is ever returned on failure.
//
// # Concurrency
//
// Encrypt and Decrypt share no state. Each call owns its transient key
// material and zeroes it before returning, so concurrent calls with
// independent inputs are safe. Key derivation is deliberately slow
// (hundreds of milliseconds at the default parameters); callers on a
// latency-sensitive path should run it on a worker goroutine.
package envelope
