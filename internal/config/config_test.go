package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate runs the test from an empty directory so no stray quizterm.yaml or
// .env is picked up.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "xdg"))
	t.Setenv("HOME", dir)
	return dir
}

func testFlags() *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.String("questions", "", "")
	fs.Duration("cooldown", 220*time.Millisecond, "")
	fs.String("log-file", "", "")
	return fs
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "", cfg.QuestionsPath)
	assert.Equal(t, 220*time.Millisecond, cfg.Cooldown)
	assert.Equal(t, "", cfg.LogFile)
	assert.False(t, cfg.Production())
}

func TestLoad_Env(t *testing.T) {
	isolate(t)
	t.Setenv("QUIZTERM_ENV", "production")
	t.Setenv("QUIZTERM_QUESTIONS", "/tmp/q.yaml")
	t.Setenv("QUIZTERM_COOLDOWN", "1s")
	t.Setenv("QUIZTERM_LOG_FILE", "/tmp/quiz.log")

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.True(t, cfg.Production())
	assert.Equal(t, "/tmp/q.yaml", cfg.QuestionsPath)
	assert.Equal(t, time.Second, cfg.Cooldown)
	assert.Equal(t, "/tmp/quiz.log", cfg.LogFile)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := isolate(t)
	content := "questions: set.json\ncooldown: 500ms\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, "quizterm.yaml"), []byte(content), 0o644))

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "set.json", cfg.QuestionsPath)
	assert.Equal(t, 500*time.Millisecond, cfg.Cooldown)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := isolate(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("QUIZTERM_QUESTIONS=from-dotenv.json\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("QUIZTERM_QUESTIONS") })

	cfg, err := Load(nil)
	require.NoError(t, err)
	assert.Equal(t, "from-dotenv.json", cfg.QuestionsPath)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	isolate(t)
	t.Setenv("QUIZTERM_QUESTIONS", "env.json")

	fs := testFlags()
	require.NoError(t, fs.Parse([]string{"--questions", "flag.json", "--cooldown", "0s", "--log-file", "x.log"}))

	cfg, err := Load(fs)
	require.NoError(t, err)
	assert.Equal(t, "flag.json", cfg.QuestionsPath)
	assert.Equal(t, time.Duration(0), cfg.Cooldown)
	assert.Equal(t, "x.log", cfg.LogFile)
}

func TestLoad_UnsetFlagsKeepEnv(t *testing.T) {
	isolate(t)
	t.Setenv("QUIZTERM_QUESTIONS", "env.json")

	fs := testFlags()
	require.NoError(t, fs.Parse(nil))

	cfg, err := Load(fs)
	require.NoError(t, err)
	assert.Equal(t, "env.json", cfg.QuestionsPath)
}

func TestLoad_NegativeCooldown(t *testing.T) {
	isolate(t)
	t.Setenv("QUIZTERM_COOLDOWN", "-5ms")

	_, err := Load(nil)
	assert.ErrorIs(t, err, ErrNegativeCooldown)
}
