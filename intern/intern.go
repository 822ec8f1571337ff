package intern

import (
	"fmt"
	"strings"
)

// MaxLen is the maximum number of characters in an interned identifier.
const MaxLen = 10

const (
	bitsPerChar = 6
	charMask    = 1<<bitsPerChar - 1
)

// Empty is the code of the empty identifier. As the first segment of a path
// it marks the path absolute, as the last one it denotes the node itself.
const Empty Interned = 0

// Interned is the code of an interned identifier.
type Interned uint64

// Intern returns the code for s.  It panics if s contains a character
// outside the identifier set or is longer than MaxLen; identifiers coming
// from outside the program should go through TryIntern.
func Intern(s string) Interned {
	i, err := TryIntern(s)
	if err != nil {
		panic(err)
	}
	return i
}

// TryIntern is like Intern but returns an error instead of panicking.
func TryIntern(s string) (Interned, error) {
	if len(s) > MaxLen {
		return Empty, fmt.Errorf("%w: %q has %d characters, max %d", ErrTooLong, s, len(s), MaxLen)
	}
	var res Interned
	for i := 0; i < len(s); i++ {
		v, ok := internByte(s[i])
		if !ok {
			return Empty, fmt.Errorf("%w: %q in %q", ErrInvalidChar, s[i], s)
		}
		res <<= bitsPerChar
		res |= Interned(v)
	}
	return res, nil
}

// Valid reports whether s can be interned.
func Valid(s string) bool {
	_, err := TryIntern(s)
	return err == nil
}

func internByte(b byte) (byte, bool) {
	switch {
	case b >= 'a' && b <= 'z':
		return b - 'a' + 1, true
	case b >= 'A' && b <= 'Z':
		return b - 'A' + 1, true
	case b >= '0' && b <= '9':
		return b - '0' + 27, true
	case b == '-':
		return 37, true
	case b == '_':
		return 38, true
	case b == '.':
		return 39, true
	}
	return 0, false
}

func uninternByte(v byte) byte {
	switch {
	case v >= 1 && v <= 26:
		return 'a' + v - 1
	case v >= 27 && v <= 36:
		return '0' + v - 27
	case v == 37:
		return '-'
	case v == 38:
		return '_'
	case v == 39:
		return '.'
	}
	return '?'
}

// String returns the identifier i was interned from, in lower case.
func (i Interned) String() string {
	var buf [MaxLen]byte
	n := 0
	for c := uint64(i); c != 0 && n < MaxLen; c >>= bitsPerChar {
		buf[n] = uninternByte(byte(c & charMask))
		n++
	}
	for l, r := 0, n-1; l < r; l, r = l+1, r-1 {
		buf[l], buf[r] = buf[r], buf[l]
	}
	return string(buf[:n])
}

// IsEmpty reports whether i is the empty identifier.
func (i Interned) IsEmpty() bool {
	return i == Empty
}

// Fold returns the canonical (lower case) spelling of s, the form that
// survives a round trip through Intern.
func Fold(s string) string {
	return strings.ToLower(s)
}
