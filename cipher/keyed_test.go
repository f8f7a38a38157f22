package cipher_test

import (
	"testing"

	"github.com/cipherkit/subcipher/alphabet"
	"github.com/cipherkit/subcipher/cipher"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewKeyed_EmptyKey verifies that keyed construction rejects empty keys.
func TestNewKeyed_EmptyKey(t *testing.T) {
	_, err := cipher.NewKeyed("", alphabet.Lowercase)
	assert.ErrorIs(t, err, cipher.ErrEmptyKey)
}

// TestNewKeyed_Digits checks the canonical digit example end to end:
// the key's first unique occurrences move to the front, the remainder keeps
// its original order.
func TestNewKeyed_Digits(t *testing.T) {
	c, err := cipher.NewKeyed("5158414", "0123456789")
	require.NoError(t, err)
	assert.Equal(t, "5184023679", c.CiphertextAlphabet())
	assert.Equal(t, "5184", c.Encrypt("0123"))
	assert.Equal(t, "0123", c.Decrypt("5184"))
}

// TestNewKeyed_UnknownKeyChar verifies that a key character absent from the
// alphabet fails construction.
func TestNewKeyed_UnknownKeyChar(t *testing.T) {
	_, err := cipher.NewKeyed("Key", alphabet.Lowercase)
	require.ErrorIs(t, err, alphabet.ErrKeyCharacter)
	assert.Contains(t, err.Error(), "'K'")
}

// TestNewKeyed_DefaultAlphabet verifies that the printable ASCII alphabet is
// the default, so sentence keys with spaces and punctuation just work.
func TestNewKeyed_DefaultAlphabet(t *testing.T) {
	c, err := cipher.NewKeyed("a sentence, with punctuation!", "")
	require.NoError(t, err)
	assert.Equal(t, alphabet.PrintableASCII, c.PlaintextAlphabet())
}

// TestNewKeyed_CaseSplit verifies the case-insensitive rule for the full
// letters alphabet: the result must equal the concatenation of the lowercase
// half reordered by the lowered key and the uppercase half reordered by the
// uppered key.
func TestNewKeyed_CaseSplit(t *testing.T) {
	c, err := cipher.NewKeyed("Key", alphabet.Letters)
	require.NoError(t, err)

	lower, err := alphabet.ReorderByKey(alphabet.Lowercase, "key")
	require.NoError(t, err)
	upper, err := alphabet.ReorderByKey(alphabet.Uppercase, "KEY")
	require.NoError(t, err)

	assert.Equal(t, lower+upper, c.CiphertextAlphabet())
	assert.Equal(t, "Fg", c.Encrypt("Hi"))

	want, err := cipher.New(lower+upper, alphabet.Letters)
	require.NoError(t, err)
	assert.Equal(t, want.Encrypt("Hi"), c.Encrypt("Hi"))
}

// TestNewKeyed_CaseSplitExactMatchOnly verifies that the case rule triggers
// only for the letters alphabet verbatim: a reordered variant of the same
// character set takes the plain path, where an uppercase-only key character
// is simply consumed as-is.
func TestNewKeyed_CaseSplitExactMatchOnly(t *testing.T) {
	reversed := alphabet.Uppercase + alphabet.Lowercase

	c, err := cipher.NewKeyed("Key", reversed)
	require.NoError(t, err)

	// Plain path: "K", "e", "y" move up verbatim, no case folding.
	want, err := alphabet.ReorderByKey(reversed, "Key")
	require.NoError(t, err)
	assert.Equal(t, want, c.CiphertextAlphabet())
	assert.NotEqual(t, alphabet.Letters, c.PlaintextAlphabet())
}
