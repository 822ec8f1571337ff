package intern

import (
	"fmt"
	"slices"
	"strings"
)

// PathBuf is an owned, mutable sequence of interned segments.
type PathBuf []Interned

// ParsePath splits s on '/' and interns every segment.
func ParsePath(s string) (PathBuf, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, "/")
	res := make(PathBuf, 0, len(parts))
	for i, part := range parts {
		if part != "" {
			code, err := TryIntern(part)
			if err != nil {
				return nil, fmt.Errorf("path %q: %w", s, err)
			}
			res = append(res, code)
			continue
		}
		switch {
		case i == 0:
			res = append(res, Empty)
		case i == len(parts)-1 && len(res) > 0 && res[len(res)-1] != Empty:
			res = append(res, Empty)
		}
	}
	return res, nil
}

// MustPath is ParsePath for literal paths; it panics on error.
func MustPath(s string) PathBuf {
	p, err := ParsePath(s)
	if err != nil {
		panic(err)
	}
	return p
}

// Push appends a segment.
func (p *PathBuf) Push(i Interned) {
	*p = append(*p, i)
}

// Pop removes and returns the last segment.
func (p *PathBuf) Pop() (Interned, bool) {
	n := len(*p)
	if n == 0 {
		return Empty, false
	}
	last := (*p)[n-1]
	*p = (*p)[:n-1]
	return last, true
}

func (p PathBuf) Clone() PathBuf {
	return slices.Clone(p)
}

// Path returns a borrowed view of p. The view aliases p.
func (p PathBuf) Path() Path {
	return Path{segs: p}
}

func (p PathBuf) String() string {
	return format(p)
}

// Path is a borrowed, read-only view of interned segments.
type Path struct {
	segs []Interned
}

// PathOf returns a view over segs.
func PathOf(segs ...Interned) Path {
	return Path{segs: segs}
}

func (p Path) Len() int {
	return len(p.segs)
}

func (p Path) IsEmpty() bool {
	return len(p.segs) == 0
}

func (p Path) At(i int) Interned {
	return p.segs[i]
}

// IsAbs reports whether p starts at the root.
func (p Path) IsAbs() bool {
	return len(p.segs) > 0 && p.segs[0] == Empty
}

// First returns the first segment and the rest of the path.
func (p Path) First() (Interned, Path, bool) {
	if len(p.segs) == 0 {
		return Empty, p, false
	}
	return p.segs[0], Path{segs: p.segs[1:]}, true
}

// Rest returns p without its first segment.
func (p Path) Rest() Path {
	if len(p.segs) == 0 {
		return p
	}
	return Path{segs: p.segs[1:]}
}

// Split returns p without its last segment, and the last segment.
func (p Path) Split() (Path, Interned, bool) {
	n := len(p.segs)
	if n == 0 {
		return p, Empty, false
	}
	return Path{segs: p.segs[:n-1]}, p.segs[n-1], true
}

// Last returns the last segment.
func (p Path) Last() (Interned, bool) {
	if len(p.segs) == 0 {
		return Empty, false
	}
	return p.segs[len(p.segs)-1], true
}

// Parent returns p without its last segment.
func (p Path) Parent() Path {
	parent, _, _ := p.Split()
	return parent
}

// Segments returns a copy of the segments.
func (p Path) Segments() []Interned {
	return slices.Clone(p.segs)
}

// ToOwned copies p into a PathBuf.
func (p Path) ToOwned() PathBuf {
	return PathBuf(slices.Clone(p.segs))
}

func (p Path) Equal(o Path) bool {
	return slices.Equal(p.segs, o.segs)
}

func (p Path) String() string {
	return format(p.segs)
}

func format(segs []Interned) string {
	var b strings.Builder
	for i, s := range segs {
		if s == Empty {
			b.WriteByte('/')
			continue
		}
		if i > 0 && segs[i-1] != Empty {
			b.WriteByte('/')
		}
		b.WriteString(s.String())
	}
	return b.String()
}
