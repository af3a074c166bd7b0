package text

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/slawlabs/linearcore/heap"
)

func newHeap(t *testing.T) *heap.Heap {
	t.Helper()
	return heap.New(heap.NewFixedRegion(1 << 20))
}

func TestNewAndString(t *testing.T) {
	h := newHeap(t)

	s := New(h, "hello")
	require.Equal(t, "hello", s.String())
	require.Equal(t, 5, s.Len())
	require.Equal(t, 5, s.Cap())

	e := New(h, "")
	require.Equal(t, "", e.String())
	require.Equal(t, 0, e.Len())
}

func TestAppend(t *testing.T) {
	h := newHeap(t)

	s := New(h, "Hello")
	s.AppendByte(',')
	s.AppendString(" world")
	w := New(h, "!")
	s.AppendText(&w)
	require.Equal(t, "Hello, world!", s.String())
	require.NoError(t, h.CheckInvariants())
}

func TestConcat(t *testing.T) {
	h := newHeap(t)

	a := New(h, "Hello, ")
	b := New(h, "world")

	c := a.Concat(&b)
	require.Equal(t, "Hello, world", c.String())
	require.Equal(t, c.Len(), c.Cap()) // sized exactly

	d := c.ConcatByte('!')
	require.Equal(t, "Hello, world!", d.String())

	e := b.PrependString(">> ")
	require.Equal(t, ">> world", e.String())

	f := a.ConcatString("there")
	require.Equal(t, "Hello, there", f.String())

	// Sources are untouched.
	require.Equal(t, "Hello, ", a.String())
	require.Equal(t, "world", b.String())
}

func TestEqualAndAffixes(t *testing.T) {
	h := newHeap(t)

	s := New(h, "Hello, world!")
	o := New(h, "Hello, world!")
	x := New(h, "Hello, World!")

	require.True(t, s.Equal(&o))
	require.False(t, s.Equal(&x))
	require.True(t, s.EqualString("Hello, world!"))

	require.True(t, s.StartsWith("Hello"))
	require.False(t, s.StartsWith("world"))
	require.True(t, s.StartsWith(""))
	require.True(t, s.EndsWith("world!"))
	require.False(t, s.EndsWith("world"))
	require.True(t, s.Contains("lo, wo"))
	require.False(t, s.Contains("worlds"))

	sub := New(h, "world")
	require.True(t, s.ContainsText(&sub))
}

func TestRepeat(t *testing.T) {
	h := newHeap(t)

	s := New(h, "ab")
	r := s.Repeat(3)
	require.Equal(t, "ababab", r.String())
	require.Equal(t, "ab", s.String())

	z := s.Repeat(0)
	require.Equal(t, "", z.String())

	s.RepeatInPlace(4)
	require.Equal(t, "abababab", s.String())

	s.RepeatInPlace(0)
	require.Equal(t, "", s.String())
}

func TestPadding(t *testing.T) {
	h := newHeap(t)

	s := New(h, "42")
	s.PadStart('0', 6)
	require.Equal(t, "000042", s.String())

	s.PadStart('0', 4) // already longer
	require.Equal(t, "000042", s.String())

	p := New(h, "ok")
	p.PadEnd('.', 5)
	require.Equal(t, "ok...", p.String())

	p.PadEnd('.', 2)
	require.Equal(t, "ok...", p.String())
}

func TestCloneAndMove(t *testing.T) {
	h := newHeap(t)

	s := New(h, "data")
	c := s.Clone()
	c.AppendByte('!')
	require.Equal(t, "data", s.String())
	require.Equal(t, "data!", c.String())

	m := s.Move()
	require.Equal(t, 0, s.Len())
	require.Equal(t, "data", m.String())
}

func TestBuildGreetingScenario(t *testing.T) {
	h := newHeap(t)

	greeting := New(h, "Hello")
	greeting.AppendString(", ")
	who := New(h, "world")
	full := greeting.Concat(&who)
	bang := full.ConcatByte('!')

	require.Equal(t, "Hello, world!", bang.String())
	require.True(t, bang.StartsWith("Hello"))
	require.True(t, bang.EndsWith("!"))
	require.True(t, bang.Contains("world"))
	require.NoError(t, h.CheckInvariants())
}
