package envelope

// Option configures a single Encrypt call.
type Option func(*options)

type options struct {
	params *Params
}

// WithParams overrides the default scrypt parameters for one Encrypt
// call. The parameters, salt included, are still validated before use.
func WithParams(p Params) Option {
	return func(o *options) {
		o.params = &p
	}
}

// Encrypt seals plaintext under a key derived from password and returns
// the serialized envelope. Each call generates a fresh salt and fresh
// cipher randomness, so encrypting the same inputs twice produces two
// different, equally valid envelopes.
func Encrypt(password string, plaintext []byte, opts ...Option) ([]byte, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	var params Params
	if o.params != nil {
		params = *o.params
	} else {
		var err error
		if params, err = DefaultParams(); err != nil {
			return nil, err
		}
	}

	key, err := DeriveKey(password, params)
	if err != nil {
		return nil, err
	}
	defer zeroKey(key)

	ciphertext, err := seal(key, plaintext)
	if err != nil {
		return nil, err
	}

	return Serialize(Envelope{Params: params, Ciphertext: ciphertext})
}

// Decrypt parses a serialized envelope, validates the embedded
// parameters against the safety ceiling, derives the key and opens the
// ciphertext. The distinct failure modes let callers react differently:
//
//   - ErrMalformedEnvelope: the envelope does not parse
//   - ErrInvalidParams / ErrUnsafeParams: the embedded parameters are
//     rejected before any derivation work
//   - ErrAuthenticationFailed: wrong password or tampered ciphertext
func Decrypt(password string, data []byte) ([]byte, error) {
	env, err := Parse(data)
	if err != nil {
		return nil, err
	}
	if err := env.Params.Validate(); err != nil {
		return nil, err
	}

	key, err := DeriveKey(password, env.Params)
	if err != nil {
		return nil, err
	}
	defer zeroKey(key)

	return open(key, env.Ciphertext)
}
