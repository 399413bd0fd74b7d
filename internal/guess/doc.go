// Package guess implements the number guessing game.
//
// A Game is a small state machine (playing, won, exhausted) over a secret
// drawn uniformly from an inclusive range. Every wrong guess uses up one
// unit of the guess budget and yields a directional hint; guessing the
// secret ends the game immediately. Play drives a Game from a console.
package guess
