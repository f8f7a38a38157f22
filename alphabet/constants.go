package alphabet

//-----------------------------------------------------------------------------
// Shared Alphabet Constants
//   immutable by construction; ciphers copy what they need.
//-----------------------------------------------------------------------------

const (
	// Lowercase is the English lowercase alphabet in natural order.
	Lowercase = "abcdefghijklmnopqrstuvwxyz"

	// Uppercase is the English uppercase alphabet in natural order.
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

	// Letters is the full 52-character letter alphabet, lowercase first.
	// Keyed cipher construction treats this exact alphabet specially:
	// keys are applied case-insensitively to each half.
	Letters = Lowercase + Uppercase

	// PrintableASCII is tab followed by every character from code point 32
	// (space) through 126 (tilde), in code-point order — 96 characters.
	// It is the default alphabet for the cipher builders and covers ordinary
	// English prose including punctuation.
	PrintableASCII = "\t !\"#$%&'()*+,-./0123456789:;<=>?@" +
		Uppercase + "[\\]^_`" + Lowercase + "{|}~"
)
