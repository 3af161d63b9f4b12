// Package security holds small crypto helpers for session material.
package security

import (
	"crypto/rand"
	"errors"
	"math/big"
)

var ErrBadRandomSpec = errors.New("random string needs a non-negative length and a non-empty alphabet")

// RandomString draws length characters uniformly from alphabet using the
// crypto source. Suitable for secrets such as generated signing keys.
func RandomString(length int, alphabet string) (string, error) {
	if length < 0 || len(alphabet) == 0 {
		return "", ErrBadRandomSpec
	}

	size := big.NewInt(int64(len(alphabet)))
	out := make([]byte, 0, length)
	for len(out) < length {
		index, err := rand.Int(rand.Reader, size)
		if err != nil {
			return "", err
		}
		out = append(out, alphabet[index.Int64()])
	}
	return string(out), nil
}
