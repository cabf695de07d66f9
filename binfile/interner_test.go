package binfile

import (
	"bytes"
	"errors"
	"testing"

	plerrors "github.com/wippyai/plbin/errors"
)

func TestInternerEmptyStringAtZero(t *testing.T) {
	in := NewInterner()
	s, err := in.Get(0)
	if err != nil {
		t.Fatalf("Get(0): %v", err)
	}
	if s != "" {
		t.Errorf("Get(0) = %q, want empty", s)
	}
	pos, err := in.PositionOf("")
	if err != nil || pos != 0 {
		t.Errorf("PositionOf(\"\") = %d, %v; want 0", pos, err)
	}
}

func TestInternerIdempotent(t *testing.T) {
	in := NewInterner()
	first, err := in.PositionOf("System.Object")
	if err != nil {
		t.Fatalf("PositionOf: %v", err)
	}
	size := in.Len()
	second, err := in.PositionOf("System.Object")
	if err != nil {
		t.Fatalf("PositionOf: %v", err)
	}
	if first != second {
		t.Errorf("positions differ: %d vs %d", first, second)
	}
	if in.Len() != size {
		t.Errorf("table grew from %d to %d on repeated insert", size, in.Len())
	}
}

func TestInternerStablePositions(t *testing.T) {
	in := NewInterner()
	words := []string{"a", "b", "c", "a", "d", "b"}
	want := []uint64{1, 2, 3, 1, 4, 2}
	for i, w := range words {
		pos, err := in.PositionOf(w)
		if err != nil {
			t.Fatalf("PositionOf(%q): %v", w, err)
		}
		if pos != want[i] {
			t.Errorf("PositionOf(%q) = %d, want %d", w, pos, want[i])
		}
	}
}

func TestInternerGetOutOfRange(t *testing.T) {
	in := NewInterner()
	_, err := in.Get(1)
	if !errors.Is(err, plerrors.Match(plerrors.KindStringNotFound)) {
		t.Errorf("expected string_not_found, got %v", err)
	}
}

func TestInternerRejectsNUL(t *testing.T) {
	in := NewInterner()
	_, err := in.PositionOf("a\x00b")
	if !errors.Is(err, plerrors.Match(plerrors.KindInvalidData)) {
		t.Errorf("expected invalid_data, got %v", err)
	}
	if in.Len() != 1 {
		t.Errorf("rejected string was inserted")
	}
}

func TestInternerBytes(t *testing.T) {
	tests := []struct {
		name    string
		strings []string
		want    []byte
	}{
		{"only empty", nil, []byte{}},
		{"exact multiple", []string{"abcdefg"}, []byte("\x00abcdefg")},
		{"padded", []string{"a", "bc"}, []byte("\x00a\x00bc\x00\x00\x00")},
		{"one past", []string{"abcdefgh"}, []byte("\x00abcdefgh\x00\x00\x00\x00\x00\x00\x00")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := NewInterner()
			for _, s := range tt.strings {
				if _, err := in.PositionOf(s); err != nil {
					t.Fatalf("PositionOf(%q): %v", s, err)
				}
			}
			got := in.Bytes()
			if !bytes.Equal(got, tt.want) {
				t.Errorf("Bytes() = %q, want %q", got, tt.want)
			}
			if len(got)%8 != 0 {
				t.Errorf("len(Bytes()) = %d, not a multiple of 8", len(got))
			}
		})
	}
}

func TestParseInterner(t *testing.T) {
	t.Run("round trip with padding", func(t *testing.T) {
		in := NewInterner()
		for _, s := range []string{"Main", "System", "Object", "Main"} {
			in.PositionOf(s)
		}
		parsed := ParseInterner(in.Bytes())
		if parsed.Len() != in.Len() {
			t.Fatalf("Len() = %d, want %d", parsed.Len(), in.Len())
		}
		for i := range in.Len() {
			want, _ := in.Get(uint64(i))
			got, err := parsed.Get(uint64(i))
			if err != nil || got != want {
				t.Errorf("Get(%d) = %q, %v; want %q", i, got, err, want)
			}
		}
	})

	t.Run("forces empty string first", func(t *testing.T) {
		parsed := ParseInterner([]byte("x\x00y"))
		if got := parsed.Strings(); len(got) != 3 || got[0] != "" || got[1] != "x" || got[2] != "y" {
			t.Errorf("Strings() = %q, want [\"\" x y]", got)
		}
	})

	t.Run("skips duplicates", func(t *testing.T) {
		parsed := ParseInterner([]byte("\x00a\x00a\x00b"))
		if got := parsed.Strings(); len(got) != 3 || got[2] != "b" {
			t.Errorf("Strings() = %q, want [\"\" a b]", got)
		}
	})

	t.Run("empty block", func(t *testing.T) {
		parsed := ParseInterner(nil)
		if parsed.Len() != 1 {
			t.Errorf("Len() = %d, want 1", parsed.Len())
		}
	})
}
