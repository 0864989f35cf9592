package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmstancu/workshop-api/internal/constants"
)

func TestGeneratePublicCode_LengthAndAlphabet(t *testing.T) {
	for i := 0; i < 200; i++ {
		code, err := GeneratePublicCode()
		require.NoError(t, err)
		require.Len(t, code, constants.PublicCodeLength)
		for _, r := range code {
			require.True(t, strings.ContainsRune(constants.PublicCodeAlphabet, r),
				"unexpected character %q in code %q", r, code)
		}
	}
}

func TestGeneratePublicCode_NoTrivialRepeats(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 1000; i++ {
		code, err := GeneratePublicCode()
		require.NoError(t, err)
		_, dup := seen[code]
		require.False(t, dup, "code %q generated twice", code)
		seen[code] = struct{}{}
	}
}
