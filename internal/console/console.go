package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	// ErrInputClosed is returned when the input stream reaches EOF (or fails)
	// before a full answer could be read.
	ErrInputClosed = errors.New("input stream closed")

	// ErrQuit is returned by Read and ReadOnce when the answer matched the
	// field's quit token.
	ErrQuit = errors.New("quit requested")

	// ErrInvalidInput is returned by ReadOnce when the answer did not parse.
	ErrInvalidInput = errors.New("invalid input")
)

// Console is a line-oriented prompt over an input and output stream.
// It is not safe for concurrent use.
type Console struct {
	in  *bufio.Reader
	out *bufio.Writer
}

// New creates a Console reading from in and writing to out.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: bufio.NewWriter(out),
	}
}

// Printf writes formatted output. Output is buffered until the next prompt
// or Flush.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// Println writes its arguments followed by a newline.
func (c *Console) Println(args ...any) {
	fmt.Fprintln(c.out, args...)
}

// Flush writes any buffered output to the underlying writer.
func (c *Console) Flush() error {
	return c.out.Flush()
}

// Prompt writes text, flushes so the prompt is visible before blocking,
// and reads one line. The returned answer has surrounding whitespace
// (including the line terminator) removed.
//
// A last line without a trailing newline is still returned. EOF with no
// pending data, or any read error, yields ErrInputClosed.
func (c *Console) Prompt(text string) (string, error) {
	if text != "" {
		if _, err := c.out.WriteString(text); err != nil {
			return "", fmt.Errorf("failed to write prompt: %w", err)
		}
	}
	if err := c.out.Flush(); err != nil {
		return "", fmt.Errorf("failed to flush output: %w", err)
	}

	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimSpace(line), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrInputClosed
		}
		return "", fmt.Errorf("%w: %v", ErrInputClosed, err)
	}
	return strings.TrimSpace(line), nil
}
