package calc

import (
	"errors"

	"go.uber.org/zap"

	"github.com/shinji-kodama/beginner-cli/internal/console"
)

// QuitToken ends the calculator when entered as the first number.
const QuitToken = "q"

const invalidNumber = "Invalid input. Please enter a number.\n"

// Run loops over calculation rounds until the quit token is entered.
// A malformed operand abandons the current round and starts a new one.
// It returns nil on quit and a console error if input closes.
func Run(con *console.Console, log *zap.Logger) error {
	first := console.Field[float64]{
		Prompt:  "Enter first number (or 'q' to quit): ",
		Parse:   console.ParseFloat,
		Invalid: invalidNumber,
		Quit:    console.QuitToken(QuitToken),
	}
	second := console.Field[float64]{
		Prompt:  "Enter second number: ",
		Parse:   console.ParseFloat,
		Invalid: invalidNumber,
	}
	operation := console.Field[string]{
		Prompt: "Enter operation (+, -, *, /): ",
		Parse:  console.ParseString,
	}

	// The banner is printed once; every round starts at the first prompt.
	con.Println("Simple calculator")
	con.Println("================")
	con.Println()

	rounds := 0
	for {
		// Step 1: first operand. The quit token is only honoured here.
		a, err := console.ReadOnce(con, first)
		if errors.Is(err, console.ErrQuit) {
			con.Println("Goodbye!")
			log.Debug("Calculator finished", zap.Int("rounds", rounds))
			return con.Flush()
		}
		if errors.Is(err, console.ErrInvalidInput) {
			// ReadOnce already printed the message; start the round over.
			continue
		}
		if err != nil {
			return err
		}

		// Step 2: second operand. A bad value also restarts the round
		// rather than re-asking for this field.
		b, err := console.ReadOnce(con, second)
		if errors.Is(err, console.ErrInvalidInput) {
			continue
		}
		if err != nil {
			return err
		}

		// Step 3: the operator is taken as a raw string; Calculate
		// decides whether it is valid.
		op, err := console.ReadOnce(con, operation)
		if err != nil {
			return err
		}

		// Step 4: compute. Domain errors are shown and the loop goes on.
		rounds++
		result, err := Calculate(a, b, op)
		if err != nil {
			log.Debug("Calculation failed",
				zap.Float64("a", a), zap.Float64("b", b), zap.String("op", op), zap.Error(err))
			con.Printf("Error: %s\n\n", err)
			continue
		}
		log.Debug("Calculation done",
			zap.Float64("a", a), zap.Float64("b", b), zap.String("op", op), zap.Float64("result", result))
		con.Printf("Result: %s\n\n", FormatResult(result))
	}
}
