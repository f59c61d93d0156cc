package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jlovejo2/Secret-Santa-App-Local/internal/domain"
	"github.com/jlovejo2/Secret-Santa-App-Local/internal/matcher"
)

func writeTempConfig(t *testing.T, content string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadReadsYamlAndEnvOverrides(t *testing.T) {
	path := writeTempConfig(t, `
participants:
  - id: "1"
    name: " Alice "
    email: alice@example.com
    group: smiths
  - id: "2"
    name: Bob
    email: bob@example.com
mail:
  port: 2525
  subject: "Ho ho ho"
matcher:
  max_attempts: 50
`)
	t.Setenv("CONFIG_PATH", path)
	t.Setenv("SANTA_MAIL_USERNAME", "santa@example.com")
	t.Setenv("SANTA_MAIL_APP_PASSWORD", "secret")
	t.Setenv("SANTA_MAIL_TIMEOUT", "3s")

	cfg, err := Load()
	require.NoError(t, err)

	require.Equal(t, []domain.Participant{
		{ID: "1", Name: "Alice", Email: "alice@example.com", Group: "smiths"},
		{ID: "2", Name: "Bob", Email: "bob@example.com"},
	}, cfg.Participants)
	require.Equal(t, 2525, cfg.Mail.Port)
	require.Equal(t, "Ho ho ho", cfg.Mail.Subject)
	require.Equal(t, "santa@example.com", cfg.Mail.Username)
	require.Equal(t, "santa@example.com", cfg.Mail.FromAddress)
	require.Equal(t, "secret", cfg.Mail.AppPassword)
	require.Equal(t, 3*time.Second, cfg.Mail.Timeout)
	require.Equal(t, 50, cfg.Matcher.MaxAttempts)
}

func TestLoadFromAppliesDefaults(t *testing.T) {
	path := writeTempConfig(t, "participants: []\n")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)

	require.Equal(t, "smtp.gmail.com", cfg.Mail.Host)
	require.Equal(t, 587, cfg.Mail.Port)
	require.Equal(t, "Secret Santa", cfg.Mail.FromName)
	require.Equal(t, 15*time.Second, cfg.Mail.Timeout)
	require.Equal(t, matcher.DefaultMaxAttempts, cfg.Matcher.MaxAttempts)
	require.Equal(t, "info", cfg.Logging.Level)
	require.Equal(t, "stderr", cfg.Logging.Output)
	require.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadFromPrefersExplicitPath(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))
	path := writeTempConfig(t, "matcher:\n  max_attempts: 7\n")

	cfg, err := LoadFrom(path)
	require.NoError(t, err)
	require.Equal(t, 7, cfg.Matcher.MaxAttempts)
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "not found")
}

func TestLoadInvalidYamlReturnsError(t *testing.T) {
	path := writeTempConfig(t, "participants: [\n")

	_, err := LoadFrom(path)
	require.ErrorContains(t, err, "decode config yaml")
}

func TestLoadFallsBackToDefaultPath(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "config"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config", "config.yaml"), []byte("matcher:\n  max_attempts: 9\n"), 0o644))
	t.Setenv("CONFIG_PATH", "")
	t.Chdir(dir)

	cfg, err := Load()
	require.NoError(t, err)
	require.Equal(t, 9, cfg.Matcher.MaxAttempts)
}

func TestMailConfigValidate(t *testing.T) {
	require.NoError(t, MailConfig{Username: "u", AppPassword: "p"}.Validate())

	err := MailConfig{Username: "u"}.Validate()
	require.ErrorIs(t, err, domain.ErrMissingCredentials)
	require.Contains(t, err.Error(), "SANTA_MAIL_APP_PASSWORD")
	require.NotContains(t, err.Error(), "SANTA_MAIL_USERNAME")

	err = MailConfig{}.Validate()
	require.ErrorIs(t, err, domain.ErrMissingCredentials)
	require.Contains(t, err.Error(), "SANTA_MAIL_USERNAME, SANTA_MAIL_APP_PASSWORD")
}
