package cipher

import (
	"strings"

	"github.com/cipherkit/subcipher/alphabet"
)

// NewKeyed constructs a Cipher whose ciphertext alphabet is derived from key:
// the first unique occurrence of each key character moves to the front of the
// alphabet, the unused characters follow in their original order. A longer,
// more varied key therefore yields a better mapping. An empty plaintext
// selects alphabet.PrintableASCII.
//
// When plaintext is exactly alphabet.Letters the key is applied
// case-insensitively: strings.ToLower(key) reorders the lowercase half,
// strings.ToUpper(key) reorders the uppercase half, and the halves
// concatenate lowercase-first. This keeps a single memorable key usable for
// mixed-case text.
//
// Returns ErrEmptyKey for an empty key and alphabet.ErrKeyCharacter when the
// key contains a character the alphabet does not.
func NewKeyed(key, plaintext string) (*Cipher, error) {
	if key == "" {
		return nil, ErrEmptyKey
	}
	if plaintext == "" {
		plaintext = alphabet.PrintableASCII
	}

	ciphertext, err := reorderCaseHandled(plaintext, key)
	if err != nil {
		return nil, err
	}

	return New(ciphertext, plaintext)
}

// reorderCaseHandled applies keyword reordering, splitting the key
// case-insensitively across the two halves when plaintext is exactly the
// full letters alphabet. Any other alphabet, including permutations or
// supersets of the letters, takes the verbatim path.
func reorderCaseHandled(plaintext, key string) (string, error) {
	if plaintext != alphabet.Letters {
		return alphabet.ReorderByKey(plaintext, key)
	}

	lower, err := alphabet.ReorderByKey(alphabet.Lowercase, strings.ToLower(key))
	if err != nil {
		return "", err
	}
	upper, err := alphabet.ReorderByKey(alphabet.Uppercase, strings.ToUpper(key))
	if err != nil {
		return "", err
	}

	return lower + upper, nil
}
