package cli

import (
	"bytes"
	"errors"
	"math"
	"math/rand/v2"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/beginner-cli/internal/guess"
	"github.com/shinji-kodama/beginner-cli/internal/model"
)

// execute runs cmd with the given stdin and arguments and returns what it
// wrote to stdout and stderr.
func execute(cmd *cobra.Command, input string, args ...string) (string, string, error) {
	var stdout, stderr bytes.Buffer
	cmd.SetIn(strings.NewReader(input))
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	// A nil slice would make cobra fall back to os.Args, which carries the
	// test binary's own flags.
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func requireExitCode(t *testing.T, err error, want model.ExitCode) {
	t.Helper()
	require.Error(t, err)
	var cliErr *model.CLIError
	require.True(t, errors.As(err, &cliErr), "expected CLIError, got %v", err)
	assert.Equal(t, want, cliErr.Code)
}

func TestGuessCommand_SingleValueRange(t *testing.T) {
	out, stderr, err := execute(NewGuessCommand(), "seven\n3\n7\n", "--min", "7", "--max", "7")
	require.NoError(t, err)
	assert.Empty(t, stderr)
	assert.Contains(t, out, "Guess the number between 7 and 7!")
	assert.Contains(t, out, "Please enter a whole number.")
	assert.Contains(t, out, "Too low!")
	assert.Contains(t, out, "You win! You found the number after 2 guesses.")
}

// TestGuessCommand_SeedIsReproducible derives the secret from the same
// seed the command uses and checks that guessing it wins.
func TestGuessCommand_SeedIsReproducible(t *testing.T) {
	const seed = 12345
	secret := guess.NewSecret(rand.New(rand.NewPCG(seed, seed)), guess.DefaultRules())

	out, _, err := execute(NewGuessCommand(), strconv.Itoa(secret)+"\n", "--seed", strconv.Itoa(seed))
	require.NoError(t, err)
	assert.Contains(t, out, "You win! You found the number after 1 guess.")
}

func TestGuessCommand_Exhausted(t *testing.T) {
	const seed = 7
	rules := guess.Rules{Min: 1, Max: 2, MaxGuesses: 1}
	secret := guess.NewSecret(rand.New(rand.NewPCG(seed, seed)), rules)
	wrong := 3 - secret

	out, _, err := execute(NewGuessCommand(), strconv.Itoa(wrong)+"\n",
		"--seed", strconv.Itoa(seed), "--min", "1", "--max", "2", "--max-guesses", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Game over! You are out of guesses.")
	assert.Contains(t, out, "The secret number was: "+strconv.Itoa(secret))
}

func TestGuessCommand_ConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte("guess:\n  min: 3\n  max: 3\n  maxGuesses: 4\n"), 0o644))

	out, _, err := execute(NewGuessCommand(), "3\n", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Guess the number between 3 and 3!")
	assert.Contains(t, out, "You have 4 guesses left.")
	assert.Contains(t, out, "You win!")
}

func TestGuessCommand_FlagsOverrideConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rules.jsonc")
	require.NoError(t, os.WriteFile(path, []byte(`{"guess": {"min": 3, "max": 3} /* tiny */}`), 0o644))

	out, _, err := execute(NewGuessCommand(), "9\n", "--config", path, "--min", "9", "--max", "9")
	require.NoError(t, err)
	assert.Contains(t, out, "Guess the number between 9 and 9!")
}

func TestGuessCommand_InvalidRules(t *testing.T) {
	_, _, err := execute(NewGuessCommand(), "", "--min", "10", "--max", "1")
	requireExitCode(t, err, model.ExitInvalidConfig)

	_, _, err = execute(NewGuessCommand(), "", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	requireExitCode(t, err, model.ExitInvalidConfig)
}

// TestGuessCommand_ExtremeRange checks that a range wider than an int can
// count still plays, and that the full int range is refused.
func TestGuessCommand_ExtremeRange(t *testing.T) {
	out, _, err := execute(NewGuessCommand(), "1\n",
		"--min", strconv.Itoa(math.MinInt), "--max", "0", "--max-guesses", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "Too high!")
	assert.Contains(t, out, "Game over!")

	_, _, err = execute(NewGuessCommand(), "1\n",
		"--min", strconv.Itoa(math.MinInt), "--max", strconv.Itoa(math.MaxInt))
	requireExitCode(t, err, model.ExitInvalidConfig)
}

func TestGuessCommand_VerboseLogsToStderr(t *testing.T) {
	out, stderr, err := execute(NewGuessCommand(), "4\n", "-v", "--min", "4", "--max", "4")
	require.NoError(t, err)
	assert.Contains(t, stderr, "Secret drawn")
	assert.Contains(t, stderr, "Game finished")
	assert.NotContains(t, out, "Secret drawn")
}

func TestGuessCommand_InputClosed(t *testing.T) {
	out, _, err := execute(NewGuessCommand(), "", "--min", "1", "--max", "2")
	requireExitCode(t, err, model.ExitInputClosed)
	assert.True(t, strings.HasSuffix(out, "Your guess: "), "last prompt should be flushed")
}

func TestCalcCommand(t *testing.T) {
	out, _, err := execute(NewCalcCommand(), "6\n3\n*\nq\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Result: 18")
	assert.True(t, strings.HasSuffix(out, "Goodbye!\n"))
}

func TestCalcCommand_InputClosed(t *testing.T) {
	_, _, err := execute(NewCalcCommand(), "6\n")
	requireExitCode(t, err, model.ExitInputClosed)
}

func TestCalcCommand_RejectsArgs(t *testing.T) {
	_, _, err := execute(NewCalcCommand(), "", "extra")
	assert.Error(t, err)
}

func TestTempCommand(t *testing.T) {
	out, _, err := execute(NewTempCommand(), "CELSIUS\n100\n")
	require.NoError(t, err)
	assert.Contains(t, out, "The temperature in fahrenheit is 212.00 degrees.")
	assert.True(t, strings.HasSuffix(out, "Thank you for using the temperature converter.\n"))
}

func TestTempCommand_InvalidUnit(t *testing.T) {
	out, _, err := execute(NewTempCommand(), "kelvin\n0\n")
	require.NoError(t, err)
	assert.Contains(t, out, "Invalid unit of measurement\n")
}

func TestVersionFlag(t *testing.T) {
	for _, cmd := range []*cobra.Command{NewGuessCommand(), NewCalcCommand(), NewTempCommand()} {
		out, _, err := execute(cmd, "", "--version")
		require.NoError(t, err)
		assert.Contains(t, out, "dev (commit: none, built: unknown)")
	}
}
