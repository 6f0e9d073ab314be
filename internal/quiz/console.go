package quiz

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"
)

// Console is the line-based terminal the menu and the session share.
type Console struct {
	in  *bufio.Scanner
	out io.Writer

	start sync.Once
	lines chan scannedLine
	err   error
}

type scannedLine struct {
	text string
	err  error
}

// NewConsole wraps an input and an output stream.
func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{in: bufio.NewScanner(in), out: out, lines: make(chan scannedLine)}
}

// ReadLine reads one line without its terminator. It returns io.EOF when
// the input is exhausted and ctx.Err() when ctx is done first. A line that
// arrives after cancellation is kept for the next call.
func (c *Console) ReadLine(ctx context.Context) (string, error) {
	if c.err != nil {
		return "", c.err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	c.start.Do(func() { go c.scan() })

	select {
	case l := <-c.lines:
		if l.err != nil {
			c.err = l.err
		}
		return l.text, l.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

// scan hands lines over one at a time so nothing is read ahead of the
// caller beyond the scanner's buffer.
func (c *Console) scan() {
	for c.in.Scan() {
		c.lines <- scannedLine{text: c.in.Text()}
	}
	err := c.in.Err()
	if err == nil {
		err = io.EOF
	}
	c.lines <- scannedLine{err: err}
}

// Println writes a line to the output.
func (c *Console) Println(a ...any) {
	_, _ = fmt.Fprintln(c.out, a...)
}

// Printf writes formatted text to the output.
func (c *Console) Printf(format string, a ...any) {
	_, _ = fmt.Fprintf(c.out, format, a...)
}
