package cipher

import (
	"github.com/cipherkit/subcipher/alphabet"
)

// NewCombined constructs a Cipher from both a key and a shift amount, in the
// order selected by opts.ShiftFirst. An empty plaintext selects
// alphabet.PrintableASCII.
//
// With ShiftFirst=false (the default), the key reorders the base alphabet
// (with the case-insensitive split when the base is alphabet.Letters), the
// reordered alphabet is rotated by amount, and the result pairs with the
// original base alphabet as plaintext.
//
// With ShiftFirst=true, the base alphabet is rotated first and the keyed
// construction then runs over the rotated alphabet, which also becomes the
// cipher's plaintext alphabet.
//
// The two orders are not inverses of each other and generally produce
// different ciphers; pick one and stick with it for a given message.
func NewCombined(key string, amount int, plaintext string, opts Options) (*Cipher, error) {
	if plaintext == "" {
		plaintext = alphabet.PrintableASCII
	}

	if opts.ShiftFirst {
		shifted, err := alphabet.Shift(plaintext, amount)
		if err != nil {
			return nil, err
		}

		return NewKeyed(key, shifted)
	}

	reordered, err := reorderCaseHandled(plaintext, key)
	if err != nil {
		return nil, err
	}
	ciphertext, err := alphabet.Shift(reordered, amount)
	if err != nil {
		return nil, err
	}

	return New(ciphertext, plaintext)
}
