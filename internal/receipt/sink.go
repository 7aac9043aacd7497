package receipt

import (
	"fmt"
	"io"
)

// Sink receives rendered strings for display. The engine never formats past
// this boundary; a UI, a terminal or a test buffer can all sit behind it.
type Sink interface {
	Display(text string)
}

// WriterSink writes each rendered string to an io.Writer.
type WriterSink struct {
	W io.Writer
}

func (s WriterSink) Display(text string) {
	fmt.Fprintln(s.W, text)
}
