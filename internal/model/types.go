package model

import (
	"errors"
	"fmt"
	"strings"
)

// GameState represents the lifecycle state of a guessing game.
// The state transitions are:
//
//	Playing → Won        (guess equals the secret)
//	Playing → Exhausted  (guess budget used up)
//
// Won and Exhausted are terminal.
type GameState string

const (
	// StatePlaying indicates the game still accepts guesses.
	StatePlaying GameState = "playing"

	// StateWon indicates the player guessed the secret number.
	StateWon GameState = "won"

	// StateExhausted indicates the guess budget ran out before the
	// secret number was found.
	StateExhausted GameState = "exhausted"
)

// String returns the string representation of GameState.
func (s GameState) String() string {
	return string(s)
}

// IsValid checks whether the GameState value is one of the predefined states.
func (s GameState) IsValid() bool {
	switch s {
	case StatePlaying, StateWon, StateExhausted:
		return true
	default:
		return false
	}
}

// IsTerminal reports whether no further guesses are accepted.
func (s GameState) IsTerminal() bool {
	return s == StateWon || s == StateExhausted
}

// Hint is the directional feedback given after a guess.
type Hint string

const (
	// HintCorrect means the guess equals the secret.
	HintCorrect Hint = "correct"

	// HintTooHigh means the guess is greater than the secret.
	HintTooHigh Hint = "too high"

	// HintTooLow means the guess is less than the secret.
	HintTooLow Hint = "too low"
)

// String returns the string representation of Hint.
func (h Hint) String() string {
	return string(h)
}

// CompareGuess classifies guess relative to secret.
func CompareGuess(guess, secret int) Hint {
	switch {
	case guess > secret:
		return HintTooHigh
	case guess < secret:
		return HintTooLow
	default:
		return HintCorrect
	}
}

// Operation is one of the four arithmetic symbols the calculator accepts.
type Operation string

const (
	OpAdd      Operation = "+"
	OpSubtract Operation = "-"
	OpMultiply Operation = "*"
	OpDivide   Operation = "/"
)

// String returns the operator symbol.
func (o Operation) String() string {
	return string(o)
}

// IsValid checks whether the Operation is one of "+", "-", "*" or "/".
func (o Operation) IsValid() bool {
	switch o {
	case OpAdd, OpSubtract, OpMultiply, OpDivide:
		return true
	default:
		return false
	}
}

// Unit is a temperature unit of measurement.
type Unit string

const (
	// UnitFahrenheit selects a fahrenheit input value.
	UnitFahrenheit Unit = "fahrenheit"

	// UnitCelsius selects a celsius input value.
	UnitCelsius Unit = "celsius"
)

// String returns the string representation of Unit.
func (u Unit) String() string {
	return string(u)
}

// IsValid checks whether the Unit is fahrenheit or celsius.
func (u Unit) IsValid() bool {
	return u == UnitFahrenheit || u == UnitCelsius
}

// Other returns the unit a value of u converts into.
func (u Unit) Other() Unit {
	if u == UnitFahrenheit {
		return UnitCelsius
	}
	return UnitFahrenheit
}

// ErrInvalidUnit is returned by ParseUnit for anything other than
// fahrenheit or celsius.
var ErrInvalidUnit = errors.New("invalid unit of measurement")

// ParseUnit converts a unit token to a Unit. Surrounding whitespace is
// trimmed and the comparison is case-insensitive.
func ParseUnit(s string) (Unit, error) {
	unit := Unit(strings.ToLower(strings.TrimSpace(s)))
	if !unit.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidUnit, s)
	}
	return unit, nil
}

// ExitCode defines the process exit codes shared by all three binaries.
type ExitCode int

const (
	// ExitSuccess indicates the program completed normally. Losing the
	// guessing game or entering bad input is still a normal completion.
	ExitSuccess ExitCode = 0

	// ExitGeneralError indicates an unspecified error occurred.
	ExitGeneralError ExitCode = 1

	// ExitInputClosed indicates the console input stream was closed or
	// unreadable while the program was waiting for an answer.
	ExitInputClosed ExitCode = 2

	// ExitInvalidConfig indicates the rules file or flags were invalid.
	ExitInvalidConfig ExitCode = 3
)

// CLIError is a custom error type that carries an exit code.
// This allows the CLI layer to translate domain errors into
// appropriate process exit codes.
type CLIError struct {
	// Code is the exit code to return to the OS.
	Code ExitCode

	// Message is the human-readable error description.
	Message string

	// Err is the underlying error, if any.
	Err error
}

// Error satisfies the error interface. It returns the human-readable
// error message, optionally including the underlying error.
func (e *CLIError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the underlying error for use with errors.Is/errors.As.
func (e *CLIError) Unwrap() error {
	return e.Err
}

// NewCLIError creates a new CLIError with the given exit code and message.
func NewCLIError(code ExitCode, message string) *CLIError {
	return &CLIError{Code: code, Message: message}
}

// WrapCLIError creates a new CLIError that wraps an existing error.
func WrapCLIError(code ExitCode, message string, err error) *CLIError {
	return &CLIError{Code: code, Message: message, Err: err}
}
