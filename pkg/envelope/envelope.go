package envelope

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// Envelope is the self-contained unit of persistence: the scrypt
// parameters that produced the key, and the authenticated ciphertext.
// Given the password, nothing outside the envelope is needed to
// decrypt it.
type Envelope struct {
	Params     Params
	Ciphertext []byte
}

// wireEnvelope fixes the serialized field names and order.
type wireEnvelope struct {
	Salt          string `json:"salt"`
	Length        int    `json:"length"`
	N             int    `json:"n"`
	R             int    `json:"r"`
	P             int    `json:"p"`
	CiphertextB64 string `json:"ciphertext_b64"`
}

// Serialize encodes an envelope as its JSON wire form. Salt and
// ciphertext are base64url without padding so the result is safe to
// embed in any text-based container.
func Serialize(env Envelope) ([]byte, error) {
	data, err := json.Marshal(wireEnvelope{
		Salt:          base64.RawURLEncoding.EncodeToString(env.Params.Salt),
		Length:        env.Params.Length,
		N:             env.Params.N,
		R:             env.Params.R,
		P:             env.Params.P,
		CiphertextB64: base64.RawURLEncoding.EncodeToString(env.Ciphertext),
	})
	if err != nil {
		return nil, errors.Join(ErrEncryptionFailed, err)
	}
	return data, nil
}

// Parse decodes the JSON wire form back into an Envelope. It performs
// no cryptography and no parameter validation: the embedded parameters
// are untrusted until the caller routes them through Params.Validate.
// A missing field, a wrong type, or a value that does not decode as
// base64 reports ErrMalformedEnvelope.
func Parse(data []byte) (Envelope, error) {
	var w struct {
		Salt          *string `json:"salt"`
		Length        *int    `json:"length"`
		N             *int    `json:"n"`
		R             *int    `json:"r"`
		P             *int    `json:"p"`
		CiphertextB64 *string `json:"ciphertext_b64"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return Envelope{}, errors.Join(ErrMalformedEnvelope, err)
	}
	for _, f := range []struct {
		name string
		ok   bool
	}{
		{"salt", w.Salt != nil},
		{"length", w.Length != nil},
		{"n", w.N != nil},
		{"r", w.R != nil},
		{"p", w.P != nil},
		{"ciphertext_b64", w.CiphertextB64 != nil},
	} {
		if !f.ok {
			return Envelope{}, errors.Join(ErrMalformedEnvelope, fmt.Errorf("missing required field %q", f.name))
		}
	}
	salt, err := decodeBase64(*w.Salt)
	if err != nil {
		return Envelope{}, errors.Join(ErrMalformedEnvelope, fmt.Errorf("invalid salt encoding: %w", err))
	}
	ciphertext, err := decodeBase64(*w.CiphertextB64)
	if err != nil {
		return Envelope{}, errors.Join(ErrMalformedEnvelope, fmt.Errorf("invalid ciphertext encoding: %w", err))
	}
	return Envelope{
		Params: Params{
			Salt:   salt,
			Length: *w.Length,
			N:      *w.N,
			R:      *w.R,
			P:      *w.P,
		},
		Ciphertext: ciphertext,
	}, nil
}

// decodeBase64 accepts both padded and unpadded base64url. Envelopes
// written by older tooling carry padding.
func decodeBase64(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(strings.TrimRight(s, "="))
}
