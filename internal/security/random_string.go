package security

import (
	"crypto/rand"
	"errors"
)

var (
	errNegativeLength = errors.New("length must be non-negative")
	errEmptyAlphabet  = errors.New("alphabet must not be empty")
	errAlphabetTooBig = errors.New("alphabet must not exceed 256 characters")
)

// RandomString draws characters uniformly from the alphabet using rejection
// sampling over crypto/rand bytes, so no character is favored when the
// alphabet size does not divide 256.
func RandomString(length int, alphabet string) (string, error) {
	if length < 0 {
		return "", errNegativeLength
	}
	if length == 0 {
		return "", nil
	}
	size := len(alphabet)
	if size == 0 {
		return "", errEmptyAlphabet
	}
	if size > 256 {
		return "", errAlphabetTooBig
	}

	// Largest multiple of size that fits in a byte; values at or above it
	// are redrawn.
	limit := 256 - (256 % size)

	value := make([]byte, 0, length)
	buffer := make([]byte, length)
	for len(value) < length {
		if _, err := rand.Read(buffer); err != nil {
			return "", err
		}
		for _, drawn := range buffer {
			if int(drawn) >= limit {
				continue
			}
			value = append(value, alphabet[int(drawn)%size])
			if len(value) == length {
				break
			}
		}
	}

	return string(value), nil
}
