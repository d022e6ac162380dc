package main

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"voicesalon/config"
	"voicesalon/services/voiceai"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestToolsList(t *testing.T) {
	out, err := run(t, "tools", "list")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, len(voiceai.Definitions())+1)
	assert.Contains(t, out, "bookAppointment")
	assert.Contains(t, out, "clientName,dateTimeText,service")
}

func TestToolsExport(t *testing.T) {
	config.AppConfig = config.Config{SalonName: "Hera's Nails & Lashes", DataDir: t.TempDir()}
	path := filepath.Join(t.TempDir(), "vapi-config.json")

	_, err := run(t, "tools", "export", "--out", path, "--base-url", "https://bot.example")
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	var agent voiceai.AgentConfig
	require.NoError(t, json.Unmarshal(raw, &agent))
	require.Len(t, agent.ExternalFunctions, len(voiceai.Definitions()))
	for _, f := range agent.ExternalFunctions {
		assert.True(t, strings.HasPrefix(f.URL, "https://bot.example/api/"), f.URL)
	}
}

func TestElevenLabsCheck(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "key", r.Header.Get("xi-api-key"))
		_, _ = w.Write([]byte(`{"agent_id":"agent-1","name":"Hera"}`))
	}))
	defer srv.Close()
	config.AppConfig = config.Config{ElevenLabsBaseURL: srv.URL, ElevenLabsAPIKey: "key", ElevenLabsAgentID: "agent-1"}

	out, err := run(t, "elevenlabs", "check")
	require.NoError(t, err)
	assert.Contains(t, out, "Agent Hera (agent-1) is reachable")
}

func TestVapiSyncNotConfigured(t *testing.T) {
	config.AppConfig = config.Config{}
	_, err := run(t, "vapi", "sync")
	assert.ErrorIs(t, err, voiceai.ErrNotConfigured)
}
