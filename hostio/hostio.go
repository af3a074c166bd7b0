// Package hostio bridges heap-resident text to the embedding host. An
// Output is wherever emitted bytes go: a Writer for processes, a logger
// for services, or a WebAssembly host function for guests.
package hostio

import (
	"io"

	"go.uber.org/zap"

	"github.com/slawlabs/linearcore/text"
)

// Output receives emitted bytes. Emit must not retain p; it is a view
// into heap storage that the caller may reuse.
type Output interface {
	Emit(p []byte) error
}

// WriterOutput emits to an io.Writer.
type WriterOutput struct {
	W io.Writer
}

func (o WriterOutput) Emit(p []byte) error {
	_, err := o.W.Write(p)
	return err
}

// LogOutput emits each payload as one structured log entry.
type LogOutput struct {
	L *zap.Logger
}

func (o LogOutput) Emit(p []byte) error {
	o.L.Info("emit", zap.ByteString("text", p))
	return nil
}

// Discard swallows everything.
type Discard struct{}

func (Discard) Emit([]byte) error { return nil }

// Print emits the contents of t.
func Print(o Output, t *text.Text) error {
	return o.Emit(t.Bytes())
}

// PrintLine emits the contents of t followed by a newline.
func PrintLine(o Output, t *text.Text) error {
	if err := o.Emit(t.Bytes()); err != nil {
		return err
	}
	return o.Emit([]byte{'\n'})
}
