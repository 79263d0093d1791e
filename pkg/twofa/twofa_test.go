package twofa

import (
	"encoding/base32"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCodeShape(t *testing.T) {
	gen := NewGenerator()

	for i := 0; i < 20; i++ {
		code, err := gen.NewCode()
		require.NoError(t, err)
		require.Len(t, code, 6)
		for _, c := range code {
			assert.True(t, c >= '0' && c <= '9', "code %q contains non-digit", code)
		}
	}
}

func TestCodeForDeterministic(t *testing.T) {
	gen := NewGenerator()
	secret := base32.StdEncoding.EncodeToString([]byte("0123456789abcdefghij"))

	first, err := gen.codeFor(secret, 42)
	require.NoError(t, err)
	second, err := gen.codeFor(secret, 42)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	other, err := gen.codeFor(secret, 43)
	require.NoError(t, err)
	assert.NotEqual(t, first, other)
}
