package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "9090", cfg.Server.MetricsPort)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "KAN", cfg.Jira.ProjectKey)
	assert.Empty(t, cfg.OpenShift.URL)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("CONSOLE_SERVER__PORT", "9999")
	t.Setenv("CONSOLE_JIRA__PROJECT_KEY", "OPS")
	t.Setenv("CONSOLE_GITHUB__OWNER", "acme")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "9999", cfg.Server.Port)
	assert.Equal(t, "OPS", cfg.Jira.ProjectKey)
	assert.Equal(t, "acme", cfg.GitHub.Owner)
}

func TestValidateRejectsPortClash(t *testing.T) {
	cfg := Default()
	cfg.Server.MetricsPort = cfg.Server.Port

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must differ")
}

func TestValidateRejectsEmptyProjectKey(t *testing.T) {
	cfg := Default()
	cfg.Jira.ProjectKey = ""

	require.Error(t, cfg.Validate())
}
