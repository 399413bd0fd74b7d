package cli

import (
	"math/rand/v2"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/shinji-kodama/beginner-cli/internal/config"
	"github.com/shinji-kodama/beginner-cli/internal/guess"
	"github.com/shinji-kodama/beginner-cli/internal/model"
)

// guessFlags holds the flag values for the guessing game.
type guessFlags struct {
	// configPath points at an optional YAML/JSONC rules file.
	configPath string

	// seed makes the secret reproducible. Zero draws a random seed.
	seed uint64

	// min, max and maxGuesses override the rules file when set.
	min        int
	max        int
	maxGuesses int
}

// NewGuessCommand creates the guessing-game root command.
func NewGuessCommand() *cobra.Command {
	flags := &guessFlags{}

	cmd := newProgramCommand(
		"guessing-game",
		"Guess the secret number",
		`Guess a secret number between 1 and 101 (inclusive).

You have 10 guesses. After each wrong guess you are told whether it was
too high or too low. Answers that are not whole numbers are rejected
without using up a guess.

Examples:
  guessing-game
  guessing-game --max-guesses 5
  guessing-game --config rules.yaml`,
		func(cmd *cobra.Command, s *session) error {
			return runGuess(cmd, s, flags)
		},
	)

	defaults := guess.DefaultRules()
	cmd.Flags().StringVar(&flags.configPath, "config", "", "Path to a YAML or JSONC rules file")
	cmd.Flags().Uint64Var(&flags.seed, "seed", 0, "Seed for the secret number (0 = random)")
	cmd.Flags().IntVar(&flags.min, "min", defaults.Min, "Lowest possible secret number")
	cmd.Flags().IntVar(&flags.max, "max", defaults.Max, "Highest possible secret number")
	cmd.Flags().IntVar(&flags.maxGuesses, "max-guesses", defaults.MaxGuesses, "Number of guesses allowed")

	return cmd
}

// runGuess resolves the rules (defaults, then rules file, then flags),
// draws the secret and plays one game.
func runGuess(cmd *cobra.Command, s *session, flags *guessFlags) error {
	// Step 1: load the rules file. An empty path yields the defaults.
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return err
	}
	if flags.configPath != "" {
		s.log.Info("Loaded rules file", zap.String("path", flags.configPath))
	}

	// Step 2: apply flag overrides. Changed distinguishes an explicit flag
	// from its default, so the file is only overridden when asked.
	rules := cfg.Guess
	if cmd.Flags().Changed("min") {
		rules.Min = flags.min
	}
	if cmd.Flags().Changed("max") {
		rules.Max = flags.max
	}
	if cmd.Flags().Changed("max-guesses") {
		rules.MaxGuesses = flags.maxGuesses
	}
	if err := rules.Validate(); err != nil {
		return model.WrapCLIError(model.ExitInvalidConfig, "invalid game rules", err)
	}

	// Step 3: draw the secret. A fixed seed makes the game reproducible;
	// zero picks a random seed from the runtime's global source.
	seed := flags.seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rng := rand.New(rand.NewPCG(seed, seed))

	game, err := guess.NewGame(guess.NewSecret(rng, rules), rules)
	if err != nil {
		return err
	}
	s.log.Debug("Secret drawn",
		zap.Int("secret", game.Secret()),
		zap.Int("min", rules.Min),
		zap.Int("max", rules.Max),
		zap.Int("maxGuesses", rules.MaxGuesses))

	// Step 4: play. Losing is a normal outcome, so only console
	// failures come back as errors.
	if err := guess.Play(s.con, game, s.log); err != nil {
		return err
	}
	s.log.Debug("Game finished", zap.String("state", game.State().String()), zap.Int("guesses", game.Guesses()))
	return nil
}
