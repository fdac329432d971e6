package envelope_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/sealcam/pkg/envelope"
)

func TestDefaultParams(t *testing.T) {
	t.Parallel()

	p1, err := envelope.DefaultParams()
	require.NoError(t, err)
	p2, err := envelope.DefaultParams()
	require.NoError(t, err)

	require.Len(t, p1.Salt, envelope.SaltSize)
	require.Equal(t, envelope.KeySize, p1.Length)
	require.Equal(t, envelope.DefaultN, p1.N)
	require.Equal(t, envelope.DefaultR, p1.R)
	require.Equal(t, envelope.DefaultP, p1.P)

	require.False(t, bytes.Equal(p1.Salt, p2.Salt), "each call must generate a fresh salt")

	require.NoError(t, p1.Validate())
}

func TestParamsValidate(t *testing.T) {
	t.Parallel()

	salt := make([]byte, envelope.SaltSize)

	valid := envelope.Params{Salt: salt, Length: 32, N: 1 << 14, R: 8, P: 1}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name    string
		mutate  func(p *envelope.Params)
		wantErr error
	}{
		{
			name:    "n not a power of two",
			mutate:  func(p *envelope.Params) { p.N = 1000 },
			wantErr: envelope.ErrInvalidParams,
		},
		{
			name:    "n is one",
			mutate:  func(p *envelope.Params) { p.N = 1 },
			wantErr: envelope.ErrInvalidParams,
		},
		{
			name:    "n is zero",
			mutate:  func(p *envelope.Params) { p.N = 0 },
			wantErr: envelope.ErrInvalidParams,
		},
		{
			name:    "negative n",
			mutate:  func(p *envelope.Params) { p.N = -2 },
			wantErr: envelope.ErrInvalidParams,
		},
		{
			name:    "zero r",
			mutate:  func(p *envelope.Params) { p.R = 0 },
			wantErr: envelope.ErrInvalidParams,
		},
		{
			name:    "zero p",
			mutate:  func(p *envelope.Params) { p.P = 0 },
			wantErr: envelope.ErrInvalidParams,
		},
		{
			name:    "zero length",
			mutate:  func(p *envelope.Params) { p.Length = 0 },
			wantErr: envelope.ErrInvalidParams,
		},
		{
			name:    "short salt",
			mutate:  func(p *envelope.Params) { p.Salt = salt[:16] },
			wantErr: envelope.ErrInvalidParams,
		},
		{
			name:    "missing salt",
			mutate:  func(p *envelope.Params) { p.Salt = nil },
			wantErr: envelope.ErrInvalidParams,
		},
		{
			name:    "memory above ceiling",
			mutate:  func(p *envelope.Params) { p.N = 1 << 24 },
			wantErr: envelope.ErrUnsafeParams,
		},
		{
			name:    "huge n does not overflow the check",
			mutate:  func(p *envelope.Params) { p.N = 1 << 60 },
			wantErr: envelope.ErrUnsafeParams,
		},
		{
			name:    "cost product above ceiling",
			mutate:  func(p *envelope.Params) { p.N = 1 << 20; p.P = 8 },
			wantErr: envelope.ErrUnsafeParams,
		},
		{
			name:    "excessive key length",
			mutate:  func(p *envelope.Params) { p.Length = 4096 },
			wantErr: envelope.ErrUnsafeParams,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			p := valid
			tt.mutate(&p)
			err := p.Validate()
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
