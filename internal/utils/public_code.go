package utils

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"github.com/dmstancu/workshop-api/internal/constants"
)

// GeneratePublicCode returns a fixed-length tracking code drawn from the
// uppercase-letter-and-digit alphabet using a cryptographically strong
// source. Codes grant read access by possession alone, so they must not be
// guessable or enumerable.
func GeneratePublicCode() (string, error) {
	alphabet := constants.PublicCodeAlphabet
	max := big.NewInt(int64(len(alphabet)))

	code := make([]byte, constants.PublicCodeLength)
	for i := range code {
		n, err := rand.Int(rand.Reader, max)
		if err != nil {
			return "", fmt.Errorf("failed to generate random index: %w", err)
		}
		code[i] = alphabet[n.Int64()]
	}

	return string(code), nil
}
