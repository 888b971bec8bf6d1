package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestLoad(t *testing.T) {
	testCases := []struct {
		name     string
		yaml     string
		env      map[string]string
		expected Config
	}{
		{
			name:     "defaults",
			yaml:     "",
			expected: Config{Log: Log{Level: "info", Format: "console"}},
		},
		{
			name:     "yaml",
			yaml:     "prefix: \"(\"\nclosing: \")\"\nseparator: \", \"\ncase_format: lowerUnderscore\nlog:\n  level: debug\n  format: json\n",
			expected: Config{Prefix: "(", Closing: ")", Separator: ", ", CaseFormat: "lowerUnderscore", Log: Log{Level: "debug", Format: "json"}},
		},
		{
			name:     "env overrides yaml",
			yaml:     "separator: \", \"\nlog:\n  level: debug\n",
			env:      map[string]string{"STRFOLD_SEPARATOR": "|", "STRFOLD_LOG_LEVEL": "warn", "STRFOLD_CASE_FORMAT": "upper"},
			expected: Config{Separator: "|", CaseFormat: "upper", Log: Log{Level: "warn", Format: "console"}},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			for k, v := range tc.env {
				t.Setenv(k, v)
			}
			cfg, err := Load(writeConfig(t, tc.yaml))
			require.NoError(t, err)
			assert.Equal(t, tc.expected, *cfg)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "case_format: sideways\n"))
	assert.ErrorContains(t, err, "unsupported case format")

	_, err = Load(writeConfig(t, "log:\n  format: xml\n"))
	assert.ErrorContains(t, err, "unsupported log format")

	_, err = Load(writeConfig(t, "prefix: [unterminated\n"))
	assert.Error(t, err)
}

func TestLoad_DefaultPathMissing(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "info", cfg.Log.Level)
}
