// Package text implements a byte-string container over seq.Sequence,
// with concatenation, padding, repetition, affix tests and numeric
// formatting. A Text is not NUL-terminated and carries no encoding;
// it is a bag of bytes the way the heap sees it.
package text

import (
	"bytes"

	"github.com/slawlabs/linearcore/heap"
	"github.com/slawlabs/linearcore/seq"
)

// Text is a growable byte string stored in a heap.
type Text struct {
	seq.Sequence[byte]
}

// New returns a Text holding a copy of s, with capacity exactly len(s).
func New(h *heap.Heap, s string) Text {
	t := Text{seq.WithCapacity[byte](h, len(s))}
	t.AppendString(s)
	return t
}

// Empty returns a Text with room for capacity bytes.
func Empty(h *heap.Heap, capacity int) Text {
	return Text{seq.WithCapacity[byte](h, capacity)}
}

// String copies the contents out as a Go string.
func (t Text) String() string {
	return string(t.View())
}

// Bytes returns the live byte view. Invalidated by growing operations.
func (t Text) Bytes() []byte {
	return t.View()
}

// AppendByte appends a single byte.
func (t *Text) AppendByte(c byte) {
	t.Push(c)
}

// AppendString appends the bytes of s.
func (t *Text) AppendString(s string) {
	t.AppendSlice([]byte(s))
}

// AppendText appends the contents of other.
func (t *Text) AppendText(other *Text) {
	t.Attach(&other.Sequence)
}

// Concat returns a new Text holding t followed by other, sized exactly.
func (t Text) Concat(other *Text) Text {
	out := Empty(t.Heap(), t.Len()+other.Len())
	out.AppendSlice(t.View())
	out.AppendSlice(other.View())
	return out
}

// ConcatString returns a new Text holding t followed by s.
func (t Text) ConcatString(s string) Text {
	out := Empty(t.Heap(), t.Len()+len(s))
	out.AppendSlice(t.View())
	out.AppendString(s)
	return out
}

// ConcatByte returns a new Text holding t followed by c.
func (t Text) ConcatByte(c byte) Text {
	out := Empty(t.Heap(), t.Len()+1)
	out.AppendSlice(t.View())
	out.Push(c)
	return out
}

// PrependString returns a new Text holding s followed by t.
func (t Text) PrependString(s string) Text {
	out := Empty(t.Heap(), len(s)+t.Len())
	out.AppendString(s)
	out.AppendSlice(t.View())
	return out
}

// Equal reports whether t and other hold the same bytes.
func (t Text) Equal(other *Text) bool {
	return bytes.Equal(t.View(), other.View())
}

// EqualString reports whether t holds exactly the bytes of s.
func (t Text) EqualString(s string) bool {
	return string(t.View()) == s
}

// StartsWith reports whether t begins with prefix.
func (t Text) StartsWith(prefix string) bool {
	return bytes.HasPrefix(t.View(), []byte(prefix))
}

// EndsWith reports whether t ends with suffix.
func (t Text) EndsWith(suffix string) bool {
	return bytes.HasSuffix(t.View(), []byte(suffix))
}

// Contains reports whether sub occurs in t.
func (t Text) Contains(sub string) bool {
	return bytes.Contains(t.View(), []byte(sub))
}

// ContainsText reports whether other occurs in t.
func (t Text) ContainsText(other *Text) bool {
	return bytes.Contains(t.View(), other.View())
}

// Repeat returns a new Text holding n copies of t, sized exactly.
// Repeat(0) is the empty Text.
func (t Text) Repeat(n int) Text {
	out := Empty(t.Heap(), t.Len()*n)
	for i := 0; i < n; i++ {
		out.AppendSlice(t.View())
	}
	return out
}

// RepeatInPlace replaces t's contents with n copies of itself.
func (t *Text) RepeatInPlace(n int) {
	if n <= 0 {
		t.Resize(0)
		return
	}
	unit := t.Len()
	t.Resize(unit * n)
	v := t.View()
	for i := 1; i < n; i++ {
		copy(v[i*unit:(i+1)*unit], v[:unit])
	}
}

// PadStart left-pads t with c up to total length n. No-op when t is
// already that long.
func (t *Text) PadStart(c byte, n int) {
	pad := n - t.Len()
	if pad <= 0 {
		return
	}
	old := t.Len()
	t.Resize(n)
	v := t.View()
	copy(v[pad:], v[:old])
	for i := 0; i < pad; i++ {
		v[i] = c
	}
}

// PadEnd right-pads t with c up to total length n.
func (t *Text) PadEnd(c byte, n int) {
	old := t.Len()
	if n <= old {
		return
	}
	t.Resize(n)
	v := t.View()
	for i := old; i < n; i++ {
		v[i] = c
	}
}

// Clone returns a deep copy.
func (t Text) Clone() Text {
	return Text{t.Sequence.Clone()}
}

// Move transfers ownership of the storage, leaving t empty.
func (t *Text) Move() Text {
	return Text{t.Sequence.Move()}
}
