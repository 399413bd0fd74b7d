package console

import (
	"errors"
	"strconv"
	"strings"
)

// Field describes one question asked on the console.
type Field[T any] struct {
	// Prompt is written before every read attempt.
	Prompt string

	// Parse converts the trimmed answer into a value.
	Parse func(string) (T, error)

	// Invalid is printed (followed by a newline) when Parse fails.
	Invalid string

	// Quit, if set, is checked against the trimmed answer before Parse.
	// A match makes the read return ErrQuit.
	Quit func(string) bool
}

// Read asks f until the answer parses. Malformed answers print f.Invalid
// and repeat the same prompt; they never end the loop. The only other ways
// out are ErrQuit and ErrInputClosed.
func Read[T any](c *Console, f Field[T]) (T, error) {
	for {
		v, err := ReadOnce(c, f)
		if errors.Is(err, ErrInvalidInput) {
			continue
		}
		return v, err
	}
}

// ReadOnce asks f a single time. If the answer does not parse, f.Invalid is
// printed and ErrInvalidInput is returned.
func ReadOnce[T any](c *Console, f Field[T]) (T, error) {
	var zero T

	answer, err := c.Prompt(f.Prompt)
	if err != nil {
		return zero, err
	}
	if f.Quit != nil && f.Quit(answer) {
		return zero, ErrQuit
	}

	v, err := f.Parse(answer)
	if err != nil {
		if f.Invalid != "" {
			c.Println(f.Invalid)
		}
		return zero, ErrInvalidInput
	}
	return v, nil
}

// ParseInt parses a base-10 integer.
func ParseInt(s string) (int, error) {
	return strconv.Atoi(s)
}

// ParseFloat parses a 64-bit floating point number. Well-formed numbers
// too large for a float64 yield ±Inf instead of an error.
func ParseFloat(s string) (float64, error) {
	f, err := strconv.ParseFloat(s, 64)
	// On overflow strconv already returns ±Inf alongside ErrRange.
	if errors.Is(err, strconv.ErrRange) {
		return f, nil
	}
	return f, err
}

// ParseString accepts any answer as-is.
func ParseString(s string) (string, error) {
	return s, nil
}

// QuitToken returns a Quit matcher for token, compared case-insensitively.
func QuitToken(token string) func(string) bool {
	return func(s string) bool {
		return strings.EqualFold(s, token)
	}
}
