package cipher

import (
	"github.com/cipherkit/subcipher/alphabet"
)

// NewShifted constructs a Cipher whose ciphertext alphabet is the plaintext
// alphabet rotated left by amount, wrapping at the ends. Negative amounts
// rotate right; any magnitude wraps modulo the alphabet length. The Caesar
// cipher is NewShifted(3, alphabet.Uppercase). An empty plaintext selects
// alphabet.PrintableASCII.
func NewShifted(amount int, plaintext string) (*Cipher, error) {
	if plaintext == "" {
		plaintext = alphabet.PrintableASCII
	}

	ciphertext, err := alphabet.Shift(plaintext, amount)
	if err != nil {
		return nil, err
	}

	return New(ciphertext, plaintext)
}
