// Package cipher applies mono-alphabetic substitution: for a given position i,
// plaintext[i] maps to ciphertext[i] when text is encrypted. The inverse
// alphabet is derived once at construction so that the same mapping mechanism
// serves both directions.
package cipher

import (
	"fmt"
	"strings"

	"github.com/cipherkit/subcipher/alphabet"
)

// Cipher performs mono-alphabetic simple substitution on text based on a
// mapping between a plaintext alphabet and a ciphertext alphabet. It is
// immutable once built and safe to share across goroutines.
type Cipher struct {
	plaintext  string
	ciphertext string
	inverse    string
	encoding   map[rune]rune
	decoding   map[rune]rune
}

// New constructs a Cipher from an explicit ciphertext alphabet. The
// ciphertext must be a permutation of the plaintext alphabet: same length,
// same set of characters, no repetitions. An empty plaintext selects
// alphabet.Letters.
//
// Returns ErrLengthMismatch if the alphabets differ in length,
// alphabet.ErrDuplicateChar if either alphabet repeats a character,
// ErrAlphabetMismatch if they are not set-equal.
//
// On success the inverse alphabet is derived: for each plaintext character p,
// the plaintext character at p's position in the ciphertext. Encrypting with
// (plaintext → ciphertext) and then with (plaintext → inverse) is the
// identity on every alphabet character, which is exactly what Decrypt uses.
// Complexity: O(n) time and memory.
func New(ciphertext, plaintext string) (*Cipher, error) {
	if plaintext == "" {
		plaintext = alphabet.Letters
	}
	pt, ct := []rune(plaintext), []rune(ciphertext)
	if len(pt) != len(ct) {
		return nil, ErrLengthMismatch
	}
	if err := alphabet.Validate(plaintext); err != nil {
		return nil, err
	}
	if err := alphabet.Validate(ciphertext); err != nil {
		return nil, err
	}

	// Position of every ciphertext character; doubles as the set-equality
	// check since both alphabets are duplicate-free and of equal length.
	ctPos := make(map[rune]int, len(ct))
	for i, c := range ct {
		ctPos[c] = i
	}

	inverse := make([]rune, len(pt))
	encoding := make(map[rune]rune, len(pt))
	decoding := make(map[rune]rune, len(pt))
	for i, p := range pt {
		j, ok := ctPos[p]
		if !ok {
			return nil, ErrAlphabetMismatch
		}
		inverse[i] = pt[j]
		encoding[p] = ct[i]
	}
	for i, p := range pt {
		decoding[p] = inverse[i]
	}

	return &Cipher{
		plaintext:  plaintext,
		ciphertext: ciphertext,
		inverse:    string(inverse),
		encoding:   encoding,
		decoding:   decoding,
	}, nil
}

// Encrypt maps each character of text through plaintext → ciphertext.
// Characters not present in the plaintext alphabet pass through unchanged,
// so punctuation and whitespace survive encryption untouched.
// Complexity: O(m) for m characters.
func (c *Cipher) Encrypt(text string) string {
	return applyMapping(text, c.encoding)
}

// Decrypt maps each character of text through plaintext → inverse, undoing
// Encrypt. The pass-through policy matches Encrypt, so
// Decrypt(Encrypt(s)) == s for every s.
// Complexity: O(m) for m characters.
func (c *Cipher) Decrypt(text string) string {
	return applyMapping(text, c.decoding)
}

// PlaintextAlphabet returns the configured plaintext alphabet.
func (c *Cipher) PlaintextAlphabet() string {
	return c.plaintext
}

// CiphertextAlphabet returns the configured ciphertext alphabet.
func (c *Cipher) CiphertextAlphabet() string {
	return c.ciphertext
}

// String renders the plaintext/ciphertext alphabet pair, one per line.
func (c *Cipher) String() string {
	return fmt.Sprintf("PT: %s\nCT: %s", c.plaintext, c.ciphertext)
}

// applyMapping rewrites text through m, leaving unmapped characters as-is.
func applyMapping(text string, m map[rune]rune) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range text {
		if mapped, ok := m[r]; ok {
			b.WriteRune(mapped)
		} else {
			b.WriteRune(r)
		}
	}

	return b.String()
}
