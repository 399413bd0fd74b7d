// Package model defines the small set of domain types shared by the
// guessing-game, simple-calculator and temperature-converter programs.
//
// This package contains pure value types with no external dependencies.
// Every value is ephemeral: it lives for a single program run and is never
// persisted.
//
// The package also defines exit codes (ExitCode) and a custom error type
// (CLIError) that carries exit codes for proper OS process exit handling.
package model
