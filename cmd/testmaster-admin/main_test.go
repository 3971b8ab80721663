package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/testmaster-app/testmaster/auth"
	"github.com/testmaster-app/testmaster/config"
	"github.com/testmaster-app/testmaster/monitoring"
	"github.com/testmaster-app/testmaster/registry"
)

func TestTokenCommand(t *testing.T) {
	cfg := &config.Config{}
	cfg.Security.JWTSecret = "admin-test-secret"
	cfg.Security.JWTExpiryHours = 1
	config.SetConfigForTest(cfg)
	defer config.ResetConfigForTest()

	var out bytes.Buffer
	require.NoError(t, handleTokenCommand([]string{"--email", "ada@example.com", "--name", "Ada Lovelace"}, &out))

	claims, err := auth.ParseToken(strings.TrimSpace(out.String()))
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", claims.Email)
	assert.Equal(t, "Ada Lovelace", claims.Name)

	assert.Error(t, handleTokenCommand([]string{"--name", "No Email"}, &out))
}

func TestRenderCommand(t *testing.T) {
	t.Run("Anonymous fragment", func(t *testing.T) {
		var out, errOut bytes.Buffer
		require.NoError(t, handleRenderCommand([]string{"--fragment"}, &out, &errOut))

		html := out.String()
		assert.False(t, strings.HasPrefix(html, "<!doctype html>"))
		assert.Contains(t, html, "Start Testing Free")
		assert.Contains(t, html, `data-mounted="false"`)
		assert.Empty(t, errOut.String())
	})

	t.Run("Signed in and mounted", func(t *testing.T) {
		var out, errOut bytes.Buffer
		require.NoError(t, handleRenderCommand([]string{"--fragment", "--name", "Ada Lovelace", "--mounted"}, &out, &errOut))

		html := out.String()
		assert.Contains(t, html, "Welcome, Ada!")
		assert.Contains(t, html, `data-mounted="true"`)
		assert.NotContains(t, html, "Start Testing Free")
	})

	t.Run("Plain text", func(t *testing.T) {
		var out, errOut bytes.Buffer
		require.NoError(t, handleRenderCommand([]string{"--text"}, &out, &errOut))

		text := out.String()
		assert.NotContains(t, text, "<div")
		assert.Contains(t, text, "Ready to Transform Your Testing?")
		assert.Contains(t, text, "Why Choose TestMaster?")
		assert.Contains(t, text, "Start Free Trial")
	})

	t.Run("Registry entries", func(t *testing.T) {
		var out, errOut bytes.Buffer
		require.NoError(t, handleRenderCommand([]string{"--fragment", "--registry"}, &out, &errOut))

		var entries []registry.Entry
		require.NoError(t, json.Unmarshal(errOut.Bytes(), &entries))
		assert.NotEmpty(t, entries)
	})
}

func TestWriteHealthStatusOrdersChecks(t *testing.T) {
	status := monitoring.HealthResponse{
		Status:  monitoring.StatusHealthy,
		Summary: monitoring.HealthSummary{Total: 4, Healthy: 4},
		Checks: map[string]monitoring.HealthCheck{
			"system":  {Status: monitoring.StatusHealthy},
			"content": {Status: monitoring.StatusHealthy},
			"render":  {Status: monitoring.StatusHealthy},
			"logging": {Status: monitoring.StatusHealthy},
		},
	}

	for i := 0; i < 5; i++ {
		var out bytes.Buffer
		writeHealthStatus(&out, status, true)

		lines := strings.Split(strings.TrimSpace(out.String()), "\n")
		require.Len(t, lines, 5)
		assert.Equal(t, "Status: healthy (4/4 checks healthy)", lines[0])
		for j, name := range []string{"content", "logging", "render", "system"} {
			assert.Equal(t, name, strings.Fields(lines[j+1])[0])
		}
	}

	var summary bytes.Buffer
	writeHealthStatus(&summary, status, false)
	assert.Equal(t, "Status: healthy (4/4 checks healthy)\n", summary.String())
}
