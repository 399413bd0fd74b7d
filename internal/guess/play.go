package guess

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/shinji-kodama/beginner-cli/internal/console"
	"github.com/shinji-kodama/beginner-cli/internal/model"
)

// Play runs g to completion on con. Non-numeric answers are rejected with a
// message and do not use up a guess. Any whole number counts, even one
// outside the game's range; it simply gets a hint like every other miss.
//
// The only error returned is a console failure (typically
// console.ErrInputClosed); losing the game is not an error.
func Play(con *console.Console, g *Game, log *zap.Logger) error {
	rules := g.Rules()
	field := console.Field[int]{
		Prompt:  "Your guess: ",
		Parse:   console.ParseInt,
		Invalid: "Please enter a whole number.",
	}

	con.Printf("Guess the number between %d and %d!\n", rules.Min, rules.Max)

	for g.State() == model.StatePlaying {
		con.Printf("You have %s left.\n", pluralGuesses(g.Remaining()))

		// Read re-prompts on anything that is not an integer, so every
		// value reaching Guess uses up one round.
		n, err := console.Read(con, field)
		if err != nil {
			return err
		}

		hint, err := g.Guess(n)
		if err != nil {
			return err
		}
		log.Debug("Guess evaluated",
			zap.Int("guess", n),
			zap.String("hint", hint.String()),
			zap.Int("remaining", g.Remaining()))

		// A correct guess ends the loop through the state check; only
		// misses need feedback here.
		switch hint {
		case model.HintTooHigh:
			con.Println("Too high!")
		case model.HintTooLow:
			con.Println("Too low!")
		}
	}

	// Guesses only counts misses, so the winning guess is added back
	// when reporting the total.
	if g.State() == model.StateWon {
		con.Printf("You win! You found the number after %s.\n", pluralGuesses(g.Guesses()+1))
	} else {
		con.Println("Game over! You are out of guesses.")
		con.Printf("The secret number was: %d\n", g.Secret())
	}
	return con.Flush()
}

func pluralGuesses(n int) string {
	if n == 1 {
		return "1 guess"
	}
	return fmt.Sprintf("%d guesses", n)
}
