package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clearEnv unsets every RITMO_* variable for the test; t.Setenv restores
// the originals afterwards, including anything .env loading set.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range []string{"RITMO_CONFIG", "RITMO_DB", "RITMO_SESSION", "RITMO_LOG_USE_CASES", "RITMO_LOG_LEVEL"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()

	cfg, err := Load(home, "")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".ritmo", "ritmo.db"), cfg.DBPath)
	assert.Equal(t, filepath.Join(home, ".ritmo", "session.yaml"), cfg.SessionPath)
	assert.False(t, cfg.LogUseCases)
	assert.Equal(t, slog.LevelInfo, cfg.Level())
}

func TestLoad_YAMLFile(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	writeFile(t, filepath.Join(home, ".ritmo", "config.yaml"),
		"db_path: /data/ritmo.db\nlog_use_cases: true\nlog_level: debug\n")

	cfg, err := Load(home, "")
	require.NoError(t, err)
	assert.Equal(t, "/data/ritmo.db", cfg.DBPath)
	assert.True(t, cfg.LogUseCases)
	assert.Equal(t, slog.LevelDebug, cfg.Level())
	assert.Equal(t, filepath.Join(home, ".ritmo", "session.yaml"), cfg.SessionPath, "unset keys keep defaults")
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	writeFile(t, filepath.Join(home, ".ritmo", "config.yaml"), "db_path: /from/file.db\n")
	t.Setenv("RITMO_DB", "/from/env.db")
	t.Setenv("RITMO_LOG_USE_CASES", "yes-please")

	cfg, err := Load(home, "")
	require.NoError(t, err)
	assert.Equal(t, "/from/env.db", cfg.DBPath)
	assert.False(t, cfg.LogUseCases, "unparseable bool is ignored")
}

func TestLoad_ExplicitConfigPath(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	custom := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, custom, "session_path: /tmp/s.yaml\n")
	t.Setenv("RITMO_CONFIG", custom)

	cfg, err := Load(home, "")
	require.NoError(t, err)
	assert.Equal(t, "/tmp/s.yaml", cfg.SessionPath)
}

func TestLoad_DotEnv(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	envFile := filepath.Join(t.TempDir(), ".env")
	writeFile(t, envFile, "RITMO_SESSION=/from/dotenv.yaml\nRITMO_LOG_LEVEL=warn\n")
	// An explicitly set variable wins over .env.
	t.Setenv("RITMO_LOG_LEVEL", "error")

	cfg, err := Load(home, envFile)
	require.NoError(t, err)
	assert.Equal(t, "/from/dotenv.yaml", cfg.SessionPath)
	assert.Equal(t, slog.LevelError, cfg.Level())
}

func TestLoad_Precedence(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	custom := filepath.Join(t.TempDir(), "custom.yaml")
	writeFile(t, custom, "db_path: /from/file.db\nsession_path: /from/file.yaml\nlog_level: debug\n")
	envFile := filepath.Join(t.TempDir(), ".env")
	writeFile(t, envFile, "RITMO_CONFIG="+custom+"\nRITMO_DB=/from/dotenv.db\n")

	cfg, err := Load(home, envFile)
	require.NoError(t, err)
	assert.Equal(t, "/from/dotenv.db", cfg.DBPath, ".env outranks the YAML file")
	assert.Equal(t, "/from/file.yaml", cfg.SessionPath, "YAML file chosen by .env is applied")
	assert.Equal(t, slog.LevelDebug, cfg.Level(), "YAML outranks defaults")
}

func TestLoad_MissingDotEnvIsFine(t *testing.T) {
	clearEnv(t)
	_, err := Load(t.TempDir(), filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}

func TestLoad_Errors(t *testing.T) {
	clearEnv(t)
	home := t.TempDir()
	writeFile(t, filepath.Join(home, ".ritmo", "config.yaml"), "db_path: [broken\n")
	_, err := Load(home, "")
	assert.Error(t, err)

	clearEnv(t)
	t.Setenv("RITMO_LOG_LEVEL", "loud")
	_, err = Load(t.TempDir(), "")
	assert.Error(t, err)
}
