// Package freq counts character frequencies in text and renders the result
// as a sorted table or CSV. It is the natural companion to a substitution
// cipher: frequency analysis is how these ciphers are broken.
//
// What:
//
//   - Counter accumulates per-character counts via Add / AddString.
//   - AddFold / AddStringFold count case-insensitively and collapse all
//     whitespace into a single "whitespace" bucket.
//   - Entries returns a sorted snapshot; the default order is descending
//     count with ties broken by label.
//   - WriteTable renders a fixed-width report, WriteCSV emits label,count rows.
//
// Why:
//
//   - Judge cipher quality: a flat histogram of ciphertext resists analysis
//     longer than a spiky one.
//   - Classical cryptanalysis exercises: compare ciphertext frequencies to
//     known language statistics.
//
// Complexity:
//
//   - Add/AddFold: O(1) amortized.
//   - Entries/WriteTable/WriteCSV: O(u·log u) for u unique labels.
//
// A Counter is plain mutable state and is not safe for concurrent use.
package freq
