package token

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	generated, err := Generate(Length)
	require.NoError(t, err)
	assert.Len(t, generated, Length)

	_, err = hex.DecodeString(generated)
	assert.NoError(t, err)
}

func TestGenerate_OddLength(t *testing.T) {
	generated, err := Generate(7)
	require.NoError(t, err)
	assert.Len(t, generated, 7)
}

func TestGenerate_Unique(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 100; i++ {
		generated, err := Generate(Length)
		require.NoError(t, err)
		_, duplicate := seen[generated]
		require.False(t, duplicate)
		seen[generated] = struct{}{}
	}
}
