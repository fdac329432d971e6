package envelope_test

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sealcam/pkg/envelope"
)

// fastParams keeps the scrypt cost low enough for the test suite while
// remaining valid parameters.
func fastParams(t *testing.T) envelope.Params {
	t.Helper()
	salt := make([]byte, envelope.SaltSize)
	_, err := rand.Read(salt)
	require.NoError(t, err)
	return envelope.Params{Salt: salt, Length: 32, N: 1 << 12, R: 8, P: 1}
}

func TestEncryptDecryptRoundTrip(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		plaintext []byte
	}{
		{"empty", []byte{}},
		{"single byte", []byte{0x2a}},
		{"text", []byte("hello world")},
		{"binary", []byte{0x00, 0x01, 0xff, 0xfe, 0x80, 0x7f}},
		{"unicode", []byte("Hello 世界 🌍")},
		{"larger blob", make([]byte, 64*1024)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			sealed, err := envelope.Encrypt("correct horse", tt.plaintext, envelope.WithParams(fastParams(t)))
			require.NoError(t, err)

			plain, err := envelope.Decrypt("correct horse", sealed)
			require.NoError(t, err)
			require.Equal(t, tt.plaintext, plain)
		})
	}
}

func TestDefaultParamsRoundTrip(t *testing.T) {
	t.Parallel()

	// Full-cost derivation, run once to cover the default configuration.
	sealed, err := envelope.Encrypt("correct horse", []byte("hello world"))
	require.NoError(t, err)

	env, err := envelope.Parse(sealed)
	require.NoError(t, err)
	require.Equal(t, envelope.DefaultN, env.Params.N)
	require.Equal(t, envelope.DefaultR, env.Params.R)
	require.Equal(t, envelope.DefaultP, env.Params.P)
	require.Equal(t, envelope.KeySize, env.Params.Length)
	require.Len(t, env.Params.Salt, envelope.SaltSize)

	plain, err := envelope.Decrypt("correct horse", sealed)
	require.NoError(t, err)
	require.Equal(t, []byte("hello world"), plain)

	_, err = envelope.Decrypt("wrong horse", sealed)
	require.ErrorIs(t, err, envelope.ErrAuthenticationFailed)
}

func TestWrongPassword(t *testing.T) {
	t.Parallel()

	sealed, err := envelope.Encrypt("password one", []byte("secret"), envelope.WithParams(fastParams(t)))
	require.NoError(t, err)

	plain, err := envelope.Decrypt("password two", sealed)
	require.ErrorIs(t, err, envelope.ErrAuthenticationFailed)
	require.Nil(t, plain, "no plaintext may leak on authentication failure")
}

func TestEmptyPassword(t *testing.T) {
	t.Parallel()

	_, err := envelope.Encrypt("", []byte("secret"), envelope.WithParams(fastParams(t)))
	require.ErrorIs(t, err, envelope.ErrEmptyPassword)
}

func TestEncryptNonDeterministic(t *testing.T) {
	t.Parallel()

	plaintext := []byte("same input, different envelopes")

	sealed1, err := envelope.Encrypt("pw", plaintext)
	require.NoError(t, err)
	sealed2, err := envelope.Encrypt("pw", plaintext)
	require.NoError(t, err)

	env1, err := envelope.Parse(sealed1)
	require.NoError(t, err)
	env2, err := envelope.Parse(sealed2)
	require.NoError(t, err)

	require.NotEqual(t, env1.Params.Salt, env2.Params.Salt, "salts must be fresh per encryption")
	require.NotEqual(t, env1.Ciphertext, env2.Ciphertext)

	for _, sealed := range [][]byte{sealed1, sealed2} {
		plain, err := envelope.Decrypt("pw", sealed)
		require.NoError(t, err)
		require.Equal(t, plaintext, plain)
	}
}

func TestTamperDetection(t *testing.T) {
	t.Parallel()

	sealed, err := envelope.Encrypt("pw", []byte("do not touch"), envelope.WithParams(fastParams(t)))
	require.NoError(t, err)

	env, err := envelope.Parse(sealed)
	require.NoError(t, err)

	token := make([]byte, base64.URLEncoding.DecodedLen(len(env.Ciphertext)))
	n, err := base64.URLEncoding.Decode(token, env.Ciphertext)
	require.NoError(t, err)
	token = token[:n]

	tests := []struct {
		name    string
		offset  int
		wantErr error
	}{
		// Offset 0 is the version marker, a structural field.
		{"version marker", 0, envelope.ErrMalformedEnvelope},
		{"timestamp", 3, envelope.ErrAuthenticationFailed},
		{"iv", 12, envelope.ErrAuthenticationFailed},
		{"ciphertext body", 30, envelope.ErrAuthenticationFailed},
		{"integrity tag", len(token) - 1, envelope.ErrAuthenticationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			tampered := make([]byte, len(token))
			copy(tampered, token)
			tampered[tt.offset] ^= 0x01

			reenc := env
			reenc.Ciphertext = []byte(base64.URLEncoding.EncodeToString(tampered))
			data, err := envelope.Serialize(reenc)
			require.NoError(t, err)

			plain, err := envelope.Decrypt("pw", data)
			require.ErrorIs(t, err, tt.wantErr)
			require.Nil(t, plain)
		})
	}
}

func TestTruncatedCiphertext(t *testing.T) {
	t.Parallel()

	sealed, err := envelope.Encrypt("pw", []byte("short"), envelope.WithParams(fastParams(t)))
	require.NoError(t, err)

	env, err := envelope.Parse(sealed)
	require.NoError(t, err)

	env.Ciphertext = env.Ciphertext[:8]
	data, err := envelope.Serialize(env)
	require.NoError(t, err)

	_, err = envelope.Decrypt("pw", data)
	require.ErrorIs(t, err, envelope.ErrMalformedEnvelope)
}

func TestDecryptRejectsUnsafeParams(t *testing.T) {
	t.Parallel()

	sealed, err := envelope.Encrypt("pw", []byte("secret"), envelope.WithParams(fastParams(t)))
	require.NoError(t, err)

	rewrite := func(field string, v any) []byte {
		var w map[string]any
		require.NoError(t, json.Unmarshal(sealed, &w))
		w[field] = v
		data, err := json.Marshal(w)
		require.NoError(t, err)
		return data
	}

	tests := []struct {
		name    string
		data    []byte
		wantErr error
	}{
		{"n not a power of two", rewrite("n", 1000), envelope.ErrInvalidParams},
		{"zero r", rewrite("r", 0), envelope.ErrInvalidParams},
		{"negative p", rewrite("p", -1), envelope.ErrInvalidParams},
		{"hostile memory demand", rewrite("n", 1<<40), envelope.ErrUnsafeParams},
		{"hostile cost product", rewrite("p", 1<<20), envelope.ErrUnsafeParams},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			// The rejection happens before any derivation work, so even
			// hostile parameters must fail fast.
			_, err := envelope.Decrypt("pw", tt.data)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDeriveKeyDeterministic(t *testing.T) {
	t.Parallel()

	params := fastParams(t)

	k1, err := envelope.DeriveKey("pw", params)
	require.NoError(t, err)
	k2, err := envelope.DeriveKey("pw", params)
	require.NoError(t, err)
	require.Equal(t, k1, k2, "identical inputs must derive identical keys")
	require.Len(t, k1, params.Length)

	other := fastParams(t)
	k3, err := envelope.DeriveKey("pw", other)
	require.NoError(t, err)
	require.NotEqual(t, k1, k3, "different salts must derive different keys")

	k4, err := envelope.DeriveKey("pw2", params)
	require.NoError(t, err)
	require.NotEqual(t, k1, k4, "different passwords must derive different keys")
}
