package temperature

import (
	"errors"

	"go.uber.org/zap"

	"github.com/shinji-kodama/beginner-cli/internal/console"
	"github.com/shinji-kodama/beginner-cli/internal/model"
)

// Run performs exactly one conversion. An unparseable temperature ends the
// run straight away; otherwise the result (or the invalid-unit message) is
// followed by a closing line.
func Run(con *console.Console, log *zap.Logger) error {
	con.Println("Hello, user")
	con.Println("This is the temperature converter.")

	// The unit is read as-is and validated only after the value, so the
	// user is always asked for both.
	token, err := con.Prompt("Choose your unit (fahrenheit or celsius): ")
	if err != nil {
		return err
	}

	value, err := console.ReadOnce(con, console.Field[float64]{
		Prompt:  "Enter temperature: ",
		Parse:   console.ParseFloat,
		Invalid: "Invalid temperature. Please enter a number.",
	})
	if errors.Is(err, console.ErrInvalidInput) {
		// No retry: a bad value ends the run without the closing line.
		return con.Flush()
	}
	if err != nil {
		return err
	}

	reading, err := convertToken(token, value)
	if err != nil {
		log.Debug("Conversion rejected", zap.String("unit", token), zap.Error(err))
		con.Println("Invalid unit of measurement")
	} else {
		log.Debug("Conversion done",
			zap.Float64("value", value),
			zap.String("from", reading.Unit.Other().String()),
			zap.String("to", reading.Unit.String()),
			zap.Float64("result", reading.Value))
		con.Printf("The temperature in %s is %s degrees.\n", reading.Unit, reading)
	}

	// The closing line is printed for both a conversion and a bad unit.
	con.Println("Thank you for using the temperature converter.")
	return con.Flush()
}

func convertToken(token string, value float64) (Reading, error) {
	unit, err := model.ParseUnit(token)
	if err != nil {
		return Reading{}, err
	}
	return Convert(value, unit)
}
