package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("TEST_VAR=test_value\nTEST_NUMBER=42\n"), 0644))
	t.Cleanup(func() {
		os.Unsetenv("TEST_VAR")
		os.Unsetenv("TEST_NUMBER")
	})

	loaded, err := LoadDotEnv(envFile)
	require.NoError(t, err)

	assert.Equal(t, envFile, loaded)
	assert.Equal(t, "test_value", os.Getenv("TEST_VAR"))
	assert.Equal(t, "42", os.Getenv("TEST_NUMBER"))
}

func TestLoadDotEnvFirstMatchWins(t *testing.T) {
	dir := t.TempDir()
	second := filepath.Join(dir, "second.env")
	require.NoError(t, os.WriteFile(second, []byte("OPENAI_DEFAULT_MODEL=from-second\n"), 0644))
	t.Setenv("OPENAI_DEFAULT_MODEL", "")
	os.Unsetenv("OPENAI_DEFAULT_MODEL")

	loaded, err := LoadDotEnv(filepath.Join(dir, "missing.env"), dir, second)
	require.NoError(t, err)
	assert.Equal(t, second, loaded)
	assert.Equal(t, "from-second", os.Getenv("OPENAI_DEFAULT_MODEL"))
}

func TestLoadDotEnvDoesNotOverride(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(envFile, []byte("OPENAI_DEFAULT_MODEL=from-file\n"), 0644))
	t.Setenv("OPENAI_DEFAULT_MODEL", "from-process")

	_, err := LoadDotEnv(envFile)
	require.NoError(t, err)
	assert.Equal(t, "from-process", os.Getenv("OPENAI_DEFAULT_MODEL"))
}

func TestLoadDotEnvNoFile(t *testing.T) {
	loaded, err := LoadDotEnv(filepath.Join(t.TempDir(), "non_existent.env"))
	assert.NoError(t, err)
	assert.Empty(t, loaded)
}
