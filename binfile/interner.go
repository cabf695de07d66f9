package binfile

import (
	"bytes"
	"strings"

	"github.com/wippyai/plbin/errors"
)

// interner blocks are padded with NUL to this alignment
const internerAlign = 8

// Interner is an ordered set of unique strings addressed by position.
// Position 0 always holds the empty string.
type Interner struct {
	strs  []string
	index map[string]uint64
}

// NewInterner returns a table containing only the empty string.
func NewInterner() *Interner {
	return &Interner{
		strs:  []string{""},
		index: map[string]uint64{"": 0},
	}
}

// ParseInterner rebuilds a table from its serialized block.
// Entries are NUL-separated; repeated entries, including the empty entries
// produced by trailing padding, are dropped so first positions are kept.
func ParseInterner(b []byte) *Interner {
	in := NewInterner()
	for _, part := range bytes.Split(b, []byte{0}) {
		s := string(part)
		if _, ok := in.index[s]; ok {
			continue
		}
		in.index[s] = uint64(len(in.strs))
		in.strs = append(in.strs, s)
	}
	return in
}

// PositionOf returns the position of s, inserting it first if absent.
func (in *Interner) PositionOf(s string) (uint64, error) {
	if pos, ok := in.index[s]; ok {
		return pos, nil
	}
	if strings.IndexByte(s, 0) >= 0 {
		return 0, errors.New(errors.PhaseEncode, errors.KindInvalidData).
			Value(s).
			Detail("string %q contains NUL and cannot be interned", s).
			Build()
	}
	pos := uint64(len(in.strs))
	in.strs = append(in.strs, s)
	in.index[s] = pos
	return pos, nil
}

// Get returns the string at position i.
func (in *Interner) Get(i uint64) (string, error) {
	if i >= uint64(len(in.strs)) {
		return "", errors.StringNotFound(i, len(in.strs))
	}
	return in.strs[i], nil
}

// Len returns the number of entries, including the empty string.
func (in *Interner) Len() int {
	return len(in.strs)
}

// Strings returns a copy of the entries in position order.
func (in *Interner) Strings() []string {
	out := make([]string, len(in.strs))
	copy(out, in.strs)
	return out
}

// Bytes serializes the table: entries joined by NUL in position order,
// followed by NUL padding up to a multiple of 8 bytes.
func (in *Interner) Bytes() []byte {
	n := len(in.strs) - 1
	for _, s := range in.strs {
		n += len(s)
	}
	padded := (n + internerAlign - 1) &^ (internerAlign - 1)

	buf := make([]byte, 0, padded)
	for i, s := range in.strs {
		if i > 0 {
			buf = append(buf, 0)
		}
		buf = append(buf, s...)
	}
	for len(buf) < padded {
		buf = append(buf, 0)
	}
	return buf
}
