package alphabet

import (
	"errors"
	"fmt"
)

// Sentinel errors for alphabet operations.
var (
	// ErrEmptyAlphabet indicates a zero-length alphabet was passed to Shift.
	ErrEmptyAlphabet = errors.New("alphabet: alphabet must contain at least one character")

	// ErrKeyCharacter indicates a key character that never occurs in the alphabet.
	ErrKeyCharacter = errors.New("alphabet: key contains character not contained in the alphabet")

	// ErrDuplicateChar indicates an alphabet with a repeated character.
	ErrDuplicateChar = errors.New("alphabet: alphabet contains a repeated character")
)

// Shift rotates s left by amount positions with wraparound, so that
// Shift("abcd", 1) == "bcda". Negative amounts rotate right and amounts of
// any magnitude wrap modulo len(s): the effective rotation is
// ((amount % n) + n) % n for n characters.
// Returns ErrEmptyAlphabet if s is empty.
// Complexity: O(n) time and memory.
func Shift(s string, amount int) (string, error) {
	runes := []rune(s)
	n := len(runes)
	if n == 0 {
		return "", ErrEmptyAlphabet
	}
	// Normalize into [0, n); Go's % keeps the dividend's sign.
	k := ((amount % n) + n) % n

	return string(runes[k:]) + string(runes[:k]), nil
}

// ReorderByKey builds a permutation of s driven by key: the first unique
// occurrence of each key character moves to the front, in key order, and the
// unused characters of s follow in their original relative order.
//
//	ReorderByKey("0123456789", "5158414") == "5184023679"
//
// A key character that was already consumed by an earlier occurrence in key
// is silently skipped. A key character that never occurs in s fails with
// ErrKeyCharacter, wrapped with the offending character.
// Complexity: O(n·k) time, O(n) memory (n = len(s), k = len(key)).
func ReorderByKey(s, key string) (string, error) {
	remaining := []rune(s)
	taken := make([]rune, 0, len(remaining))

	for _, c := range key {
		if i := indexRune(remaining, c); i >= 0 {
			taken = append(taken, c)
			remaining = append(remaining[:i], remaining[i+1:]...)

			continue
		}
		if indexRune(taken, c) < 0 {
			return "", fmt.Errorf("%w: %q", ErrKeyCharacter, c)
		}
	}

	return string(taken) + string(remaining), nil
}

// Validate reports whether s is a well-formed alphabet: every character
// distinct. Returns ErrDuplicateChar (wrapped with the repeated character)
// on the first violation, nil otherwise.
// Complexity: O(n) time and memory.
func Validate(s string) error {
	seen := make(map[rune]struct{}, len(s))
	for _, c := range s {
		if _, dup := seen[c]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateChar, c)
		}
		seen[c] = struct{}{}
	}

	return nil
}

// indexRune returns the position of c in rs, or -1 when absent.
func indexRune(rs []rune, c rune) int {
	for i, r := range rs {
		if r == c {
			return i
		}
	}

	return -1
}
