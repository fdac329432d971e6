package envelope

import (
	"crypto/rand"
	"errors"
	"fmt"
)

const (
	// SaltSize is the required salt length in bytes. Salts are generated
	// freshly for every encryption and never reused across envelopes.
	SaltSize = 32

	// KeySize is the derived key length required by the cipher.
	KeySize = 32

	// Default scrypt cost parameters, per OWASP recommendations
	// (February 2024).
	DefaultN = 1 << 17
	DefaultR = 8
	DefaultP = 1

	// maxMemory caps the scrypt working memory (128*N*r bytes) that an
	// envelope may demand. Embedded parameters are attacker-controlled,
	// so the cap is enforced before any derivation work starts.
	maxMemory = 1 << 30

	// maxCostProduct caps N*r*p, bounding total CPU cost. The default
	// parameters sit a factor of 32 below it.
	maxCostProduct = 1 << 25

	// maxKeyLen bounds the derived key length an envelope may request.
	maxKeyLen = 128
)

// Params holds the scrypt parameters embedded in every envelope. All
// fields travel on the wire, so decryption needs nothing beyond the
// envelope and the password.
type Params struct {
	Salt   []byte
	Length int
	N      int
	R      int
	P      int
}

// DefaultParams returns the current default parameters with a fresh
// random salt.
func DefaultParams() (Params, error) {
	salt := make([]byte, SaltSize)
	if _, err := rand.Read(salt); err != nil {
		return Params{}, errors.Join(ErrEncryptionFailed, err)
	}
	return Params{
		Salt:   salt,
		Length: KeySize,
		N:      DefaultN,
		R:      DefaultR,
		P:      DefaultP,
	}, nil
}

// Validate checks the parameters for well-formedness and resource
// safety. It must run on every parameter set parsed from an envelope
// before a key is derived, since hostile parameters can otherwise drive
// unbounded memory and CPU use.
func (p Params) Validate() error {
	if p.N <= 1 || p.N&(p.N-1) != 0 {
		return errors.Join(ErrInvalidParams, fmt.Errorf("n must be a power of two greater than 1, got %d", p.N))
	}
	if p.R <= 0 {
		return errors.Join(ErrInvalidParams, fmt.Errorf("r must be positive, got %d", p.R))
	}
	if p.P <= 0 {
		return errors.Join(ErrInvalidParams, fmt.Errorf("p must be positive, got %d", p.P))
	}
	if p.Length <= 0 {
		return errors.Join(ErrInvalidParams, fmt.Errorf("length must be positive, got %d", p.Length))
	}
	if len(p.Salt) != SaltSize {
		return errors.Join(ErrInvalidParams, fmt.Errorf("salt must be %d bytes, got %d", SaltSize, len(p.Salt)))
	}
	if p.Length > maxKeyLen {
		return errors.Join(ErrUnsafeParams, fmt.Errorf("length %d exceeds maximum %d", p.Length, maxKeyLen))
	}
	// Division keeps the checks overflow-safe for arbitrarily large N.
	if p.N > maxMemory/128/p.R {
		return errors.Join(ErrUnsafeParams, fmt.Errorf("scrypt memory 128*%d*%d exceeds %d bytes", p.N, p.R, maxMemory))
	}
	if p.N > maxCostProduct/p.R/p.P {
		return errors.Join(ErrUnsafeParams, fmt.Errorf("cost product %d*%d*%d exceeds %d", p.N, p.R, p.P, maxCostProduct))
	}
	return nil
}
