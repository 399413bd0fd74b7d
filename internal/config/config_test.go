package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shinji-kodama/beginner-cli/internal/guess"
	"github.com/shinji-kodama/beginner-cli/internal/model"
)

// writeFile creates a file with the given content in a temp directory
// and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad_EmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, guess.DefaultRules(), cfg.Guess)
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		want    guess.Rules
	}{
		{
			name: "yaml full",
			file: "rules.yaml",
			content: `guess:
  min: 1
  max: 50
  maxGuesses: 6
`,
			want: guess.Rules{Min: 1, Max: 50, MaxGuesses: 6},
		},
		{
			name:    "yml partial keeps defaults",
			file:    "rules.yml",
			content: "guess:\n  maxGuesses: 3\n",
			want:    guess.Rules{Min: 1, Max: 101, MaxGuesses: 3},
		},
		{
			name:    "empty yaml",
			file:    "rules.yaml",
			content: "",
			want:    guess.DefaultRules(),
		},
		{
			name: "jsonc with comments and trailing comma",
			file: "rules.jsonc",
			content: `{
  // smaller board for kids
  "guess": {
    "min": 0,
    "max": 20, /* inclusive */
    "maxGuesses": 5,
  },
}`,
			want: guess.Rules{Min: 0, Max: 20, MaxGuesses: 5},
		},
		{
			name:    "plain json",
			file:    "rules.json",
			content: `{"guess": {"max": 1000}}`,
			want:    guess.Rules{Min: 1, Max: 1000, MaxGuesses: 10},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(writeFile(t, tt.file, tt.content))
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg.Guess)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		wantMsg string
	}{
		{"malformed yaml", "rules.yaml", "guess: [1, 2", "failed to parse rules.yaml"},
		{"malformed json", "rules.json", `{"guess": `, "failed to parse rules.json"},
		{"unsupported extension", "rules.toml", "[guess]", "unsupported config format"},
		{"inverted range", "rules.yaml", "guess:\n  min: 10\n  max: 2\n", "invalid config"},
		{"zero budget", "rules.json", `{"guess": {"maxGuesses": 0}}`, "must be at least 1"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)

			var cliErr *model.CLIError
			require.True(t, errors.As(err, &cliErr))
			assert.Equal(t, model.ExitInvalidConfig, cliErr.Code)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.Contains(t, err.Error(), "config file not found")
}
