// Package cipher defines the Cipher type, its options, and sentinel errors.
package cipher

import (
	"errors"
)

// Sentinel errors for cipher construction.
var (
	// ErrLengthMismatch indicates plaintext and ciphertext alphabets of
	// different lengths.
	ErrLengthMismatch = errors.New("cipher: plaintext and ciphertext alphabets have different character counts")

	// ErrAlphabetMismatch indicates plaintext and ciphertext alphabets that are
	// not the same set of characters.
	ErrAlphabetMismatch = errors.New("cipher: plaintext and ciphertext alphabets are not the same set of characters")

	// ErrEmptyKey indicates a keyed construction with an empty key.
	ErrEmptyKey = errors.New("cipher: key must be a non-empty string")
)

// Options contains tunable parameters for combined construction.
type Options struct {
	// ShiftFirst selects the composition order of NewCombined.
	//
	// false (default): the key reorders the base alphabet, the result is
	// rotated, and the pair (base, rotated) forms the cipher.
	//
	// true: the base alphabet is rotated first, then the key reorders the
	// rotated alphabet, which also becomes the cipher's plaintext alphabet.
	//
	// The two orders are not inverses and generally yield different ciphers.
	ShiftFirst bool
}

// DefaultOptions returns Options with default settings: ShiftFirst=false,
// matching the common "keyword first, then displacement" construction.
func DefaultOptions() Options {
	return Options{
		ShiftFirst: false,
	}
}
