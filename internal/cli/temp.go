package cli

import (
	"github.com/spf13/cobra"

	"github.com/shinji-kodama/beginner-cli/internal/temperature"
)

// NewTempCommand creates the temperature-converter root command.
func NewTempCommand() *cobra.Command {
	return newProgramCommand(
		"temperature-converter",
		"Convert between fahrenheit and celsius",
		`Convert one temperature between fahrenheit and celsius.

Enter the unit the value is given in (fahrenheit or celsius, any case)
and then the value. The converted temperature is printed with two
decimal places.`,
		func(cmd *cobra.Command, s *session) error {
			return temperature.Run(s.con, s.log)
		},
	)
}
