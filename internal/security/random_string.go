package security

import (
	"crypto/rand"
	"errors"
	"fmt"
)

var (
	ErrInvalidLength   = errors.New("random string length must be non-negative")
	ErrInvalidAlphabet = errors.New("random string alphabet must hold 1 to 256 bytes")
)

// RandomString draws length bytes from alphabet using crypto/rand.
// Bytes above the largest multiple of len(alphabet) are rejected so every
// symbol is equally likely.
func RandomString(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", ErrInvalidLength
	}
	if len(alphabet) == 0 || len(alphabet) > 256 {
		return "", ErrInvalidAlphabet
	}

	size := len(alphabet)
	ceiling := 256 - 256%size
	out := make([]byte, 0, length)
	chunk := make([]byte, length+length/2+1)
	for len(out) < length {
		if _, err := rand.Read(chunk); err != nil {
			return "", fmt.Errorf("read random bytes: %w", err)
		}
		for _, value := range chunk {
			if int(value) >= ceiling {
				continue
			}
			out = append(out, alphabet[int(value)%size])
			if len(out) == length {
				break
			}
		}
	}
	return string(out), nil
}
