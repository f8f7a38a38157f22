// Package cipher implements mono-alphabetic simple-substitution ciphers:
// a bijective mapping between a plaintext alphabet and a permuted ciphertext
// alphabet, applied character-by-character.
//
// What:
//
//   - Cipher holds a validated plaintext/ciphertext alphabet pair, derives the
//     inverse alphabet once at construction, and answers Encrypt/Decrypt in
//     O(1) per character.
//   - New builds a Cipher from an explicit ciphertext alphabet.
//   - NewKeyed derives the ciphertext alphabet from a key phrase.
//   - NewShifted derives it by rotation (the Caesar cipher family).
//   - NewCombined composes both derivations in a configurable order.
//
// Why:
//
//   - Classical cryptography teaching: Caesar, keyword, and mixed ciphers.
//   - Puzzle generation and solving: every cipher exposes its alphabets.
//   - Obfuscation of plain text where real secrecy is not required.
//
// Character policy:
//
//	Characters outside the plaintext alphabet pass through Encrypt and
//	Decrypt unchanged. Punctuation, whitespace, and unknown symbols survive
//	encryption untouched, and Decrypt(Encrypt(s)) == s holds for every s.
//
// Case handling:
//
//	When the plaintext alphabet is exactly alphabet.Letters, keys are
//	treated case-insensitively: the lowered key reorders the lowercase half,
//	the uppered key reorders the uppercase half, and the halves concatenate
//	lowercase-first. Any other alphabet applies the key verbatim.
//
// Complexity:
//
//   - Construction:    O(n) time, O(n) memory    (n = alphabet length).
//   - Encrypt/Decrypt: O(m) time for m characters of text.
//
// Errors:
//
//   - ErrLengthMismatch: plaintext and ciphertext alphabets differ in length.
//   - ErrAlphabetMismatch: the alphabets are not the same set of characters.
//   - ErrEmptyKey: NewKeyed received an empty key.
//   - alphabet.ErrDuplicateChar: an alphabet repeats a character.
//   - alphabet.ErrKeyCharacter: a key character is absent from the alphabet.
//
// All failures surface at construction; Encrypt and Decrypt never fail.
// A constructed Cipher is immutable and safe for concurrent readers.
//
// Not cryptography: substitution ciphers fall to frequency analysis in
// minutes. Use crypto/* for anything that must stay secret.
package cipher
