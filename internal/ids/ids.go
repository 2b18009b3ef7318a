// Package ids generates random identifiers for stored entities.
package ids

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
)

const (
	DefaultLength = 16
	// MaxAttempts bounds how many fresh ids an insert tries after a
	// uniqueness collision.
	MaxAttempts = 3
)

// New returns a lowercase hex identifier of the given length. A non-positive
// length falls back to DefaultLength.
func New(length int) (string, error) {
	if length <= 0 {
		length = DefaultLength
	}
	buf := make([]byte, (length+1)/2)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("read random bytes: %w", err)
	}
	return hex.EncodeToString(buf)[:length], nil
}

func NewDefault() (string, error) {
	return New(DefaultLength)
}
