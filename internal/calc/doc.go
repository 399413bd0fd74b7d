// Package calc implements the four-operation calculator.
//
// Calculate is a pure function returning either a result or an error value
// for the two expected failures (division by zero and an unknown operator).
// Run is the interactive loop that reads two operands and an operator per
// round until the user enters the quit token.
package calc
