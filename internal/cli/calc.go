package cli

import (
	"github.com/spf13/cobra"

	"github.com/shinji-kodama/beginner-cli/internal/calc"
)

// NewCalcCommand creates the simple-calculator root command.
func NewCalcCommand() *cobra.Command {
	return newProgramCommand(
		"simple-calculator",
		"Add, subtract, multiply and divide",
		`A four-operation calculator.

Each round asks for two numbers and an operation (+, -, *, /) and prints
the result. Enter q at the first prompt to quit. Dividing by zero and
unknown operations print an error and start a new round.`,
		func(cmd *cobra.Command, s *session) error {
			return calc.Run(s.con, s.log)
		},
	)
}
