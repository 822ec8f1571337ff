// Package intern compresses identifiers into fixed-width 64-bit codes.
//
// # Encoding
//
// An identifier is a string over the characters a-z, 0-9, '-', '_' and '.'.
// Upper case letters are folded to lower case. Each character is packed into
// 6 bits and the code is shifted left as the identifier is scanned, so
//
//	Intern("ab") == 1<<6 | 2
//
// Character values start at 1: the zero slot terminates decoding, and the
// all-zero code is the empty identifier. At most MaxLen characters fit in a
// code.
//
// Interning is a pure bijection, there is no shared table. Codes compare,
// sort and hash as integers.
//
// # Paths
//
// A Path is a sequence of codes parsed from a slash separated string:
//
//	"/foo/bar" → [0 foo bar]   absolute, starts at the root
//	"foo/bar"  → [foo bar]     relative to the current node
//	"foo/"     → [foo 0]       the node foo itself
//	"/"        → [0]
//	""         → []
//
// PathBuf is the owned, mutable form. Path is a borrowed, read-only view over
// a PathBuf or any other code slice.
package intern
