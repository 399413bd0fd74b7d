// Package console implements the prompt/read/validate shell shared by the
// three interactive programs.
//
// A Console writes prompts to a buffered writer, flushes it, and then blocks
// reading exactly one line of input. Read re-prompts until the answer parses
// (or matches a quit token); ReadOnce makes a single attempt and leaves the
// retry policy to the caller.
//
// A closed input stream is reported as ErrInputClosed. There is no recovery
// from it: callers propagate it and the program exits.
package console
