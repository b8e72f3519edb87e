// Package random generates the public share hashes.
package random

import (
	"crypto/rand"
	"math/big"
)

const alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// HashLength is the number of characters in a share hash.
const HashLength = 10

// Hash returns a string of length n with every character drawn independently
// and uniformly from [A-Za-z0-9], using a cryptographically secure source.
func Hash(n int) (string, error) {
	letterCount := big.NewInt(int64(len(alphabet)))
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, letterCount)
		if err != nil {
			return "", err
		}
		b[i] = alphabet[idx.Int64()]
	}
	return string(b), nil
}
