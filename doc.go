// Package subcipher is a small toolkit for building, applying, and analyzing
// mono-alphabetic simple-substitution ciphers over arbitrary alphabets.
//
// 🚀 What is subcipher?
//
//	A pure, in-memory library that brings together:
//		• Alphabet primitives: wraparound rotation & keyword reordering
//		• Cipher core: invariant-checked plaintext↔ciphertext permutation
//		• Builders: keyed, shifted (Caesar-style), and combined ciphers
//		• Analysis: character frequency tables with CSV export
//
// ✨ Why choose subcipher?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – every cipher is validated at construction and
//     immutable afterwards, so instances are safe to share between goroutines
//   - Pure Go – no cgo, no hidden deps
//   - Honest – substitution ciphers are classical toys, trivially broken by
//     frequency analysis; use crypto/* for anything that must stay secret
//
// Everything is organized under four packages:
//
//	alphabet/      — shared alphabet constants, Shift & ReorderByKey primitives
//	cipher/        — the Cipher type plus NewKeyed, NewShifted, NewCombined
//	freq/          — character frequency counting & reporting
//	cmd/subcipher/ — demonstration driver: encrypt a file, decrypt, verify
//
// Quick example:
//
//	c, _ := cipher.NewShifted(3, alphabet.Uppercase)
//	fmt.Println(c.Encrypt("ATTACK AT DAWN")) // DWWDFN DW GDZQ
//
// Dive into README.md and the package example_test.go files for full
// walkthroughs.
//
//	go get github.com/cipherkit/subcipher
package subcipher
