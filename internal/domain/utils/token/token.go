package token

import (
	"crypto/rand"
	"encoding/hex"
)

// Length is the length of invitation tokens in hex characters.
const Length = 32

// Generate returns a cryptographically random hex string of the given length.
func Generate(length int) (string, error) {
	bytes := make([]byte, (length+1)/2)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return hex.EncodeToString(bytes)[:length], nil
}
