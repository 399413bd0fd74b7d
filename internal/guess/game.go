package guess

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/shinji-kodama/beginner-cli/internal/model"
)

const (
	// DefaultMin is the lowest secret number.
	DefaultMin = 1

	// DefaultMax is the highest secret number. The range is inclusive, so
	// the default game draws from 101 values.
	DefaultMax = 101

	// DefaultMaxGuesses is the guess budget per game.
	DefaultMaxGuesses = 10
)

// ErrGameOver is returned by Guess once the game has been won or exhausted.
var ErrGameOver = errors.New("game is over")

// Rules configure the secret range and the guess budget.
type Rules struct {
	// Min and Max bound the secret number, both inclusive.
	Min int `yaml:"min" json:"min"`
	Max int `yaml:"max" json:"max"`

	// MaxGuesses is the number of wrong guesses allowed.
	MaxGuesses int `yaml:"maxGuesses" json:"maxGuesses"`
}

// DefaultRules returns the standard 1-101 range with ten guesses.
func DefaultRules() Rules {
	return Rules{Min: DefaultMin, Max: DefaultMax, MaxGuesses: DefaultMaxGuesses}
}

// Validate checks that the range is non-empty and the budget positive.
func (r Rules) Validate() error {
	if r.Min > r.Max {
		return fmt.Errorf("invalid range: min %d is greater than max %d", r.Min, r.Max)
	}
	// The number of values in the range must fit in a uint; only the full
	// int range does not.
	if span(r) == math.MaxUint {
		return fmt.Errorf("invalid range: %d-%d has too many values", r.Min, r.Max)
	}
	if r.MaxGuesses < 1 {
		return fmt.Errorf("invalid guess budget %d: must be at least 1", r.MaxGuesses)
	}
	return nil
}

// Contains reports whether n lies within [Min, Max].
func (r Rules) Contains(n int) bool {
	return n >= r.Min && n <= r.Max
}

// NewSecret draws a secret uniformly from [rules.Min, rules.Max].
// The rules must already be valid.
func NewSecret(rng *rand.Rand, rules Rules) int {
	return rules.Min + int(rng.Uint64N(uint64(span(rules))+1))
}

// span returns Max-Min computed in unsigned arithmetic, which stays exact
// even when the signed difference overflows.
func span(r Rules) uint {
	return uint(r.Max) - uint(r.Min)
}

// Game holds the state of one guessing game.
type Game struct {
	rules   Rules
	secret  int
	guesses int
	state   model.GameState
}

// NewGame starts a game in the playing state with no guesses used.
func NewGame(secret int, rules Rules) (*Game, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if !rules.Contains(secret) {
		return nil, fmt.Errorf("secret %d outside range %d-%d", secret, rules.Min, rules.Max)
	}
	return &Game{
		rules:  rules,
		secret: secret,
		state:  model.StatePlaying,
	}, nil
}

// Guess applies one round. A correct guess wins without using up the
// budget; a wrong one increments the counter and exhausts the game when the
// counter reaches MaxGuesses.
func (g *Game) Guess(n int) (model.Hint, error) {
	if g.state.IsTerminal() {
		return "", ErrGameOver
	}

	hint := model.CompareGuess(n, g.secret)
	if hint == model.HintCorrect {
		g.state = model.StateWon
		return hint, nil
	}

	g.guesses++
	if g.guesses >= g.rules.MaxGuesses {
		g.state = model.StateExhausted
	}
	return hint, nil
}

// State returns the current game state.
func (g *Game) State() model.GameState {
	return g.state
}

// Guesses returns how many wrong guesses have been made.
func (g *Game) Guesses() int {
	return g.guesses
}

// Remaining returns how many guesses are left.
func (g *Game) Remaining() int {
	return g.rules.MaxGuesses - g.guesses
}

// Secret returns the secret number.
func (g *Game) Secret() int {
	return g.secret
}

// Rules returns the rules the game was created with.
func (g *Game) Rules() Rules {
	return g.rules
}
