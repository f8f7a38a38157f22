// Package alphabet provides the ordered character sequences that substitution
// ciphers are defined over, plus the two primitives every ciphertext alphabet
// is derived from: wraparound rotation and keyword reordering.
//
// What:
//
//   - Shared immutable constants: Lowercase, Uppercase, Letters, PrintableASCII.
//   - Shift rotates an alphabet left with wraparound; negative amounts rotate
//     right, arbitrary magnitudes wrap modulo the alphabet length.
//   - ReorderByKey moves the first unique occurrence of each key character to
//     the front, in key order, and appends the unused characters afterwards.
//   - Validate rejects alphabets with repeated characters.
//
// Why:
//
//   - Caesar-style ciphers: a shifted alphabet is the whole key.
//   - Keyword ciphers: a memorable phrase determines the permutation.
//   - Any bijective character mapping starts from a well-formed alphabet.
//
// Complexity:
//
//   - Shift:        O(n) time, O(n) memory          (n = alphabet length).
//   - ReorderByKey: O(n·k) time, O(n) memory        (k = key length).
//   - Validate:     O(n) time, O(n) memory.
//
// Errors:
//
//   - ErrEmptyAlphabet: Shift received a zero-length alphabet.
//   - ErrKeyCharacter: a key character does not occur in the alphabet at all.
//   - ErrDuplicateChar: an alphabet repeats a character.
//
// All functions are pure; inputs are never mutated.
package alphabet
