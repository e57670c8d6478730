package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "platform.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestExecute_Usage(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no arguments", nil},
		{"one argument", []string{"config.yaml"}},
		{"three arguments", []string{"a", "b", "c"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			code := execute(tt.args, &stderr)
			assert.Equal(t, 1, code)
			assert.Contains(t, stderr.String(), "Usage: platform-preview <config-path> <output-path>")
		})
	}
}

func TestExecute_NoOutputOnUsageError(t *testing.T) {
	out := filepath.Join(t.TempDir(), "preview-data.json")

	var stderr bytes.Buffer
	code := execute([]string{out}, &stderr)

	assert.Equal(t, 1, code)
	_, err := os.Stat(out)
	assert.True(t, os.IsNotExist(err))
}

func TestExecute_Success(t *testing.T) {
	config := writeConfig(t, `
server:
  name: demo
audit:
  enabled: true
`)
	out := filepath.Join(t.TempDir(), "preview-data.json")

	var stderr bytes.Buffer
	code := execute([]string{config, out}, &stderr)
	require.Equal(t, 0, code)

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var result struct {
		ToolResult struct {
			Name     string `json:"name"`
			Features struct {
				AuditLogging bool `json:"audit_logging"`
			} `json:"features"`
		} `json:"tool_result"`
	}
	require.NoError(t, json.Unmarshal(data, &result))
	assert.Equal(t, "demo", result.ToolResult.Name)
	assert.True(t, result.ToolResult.Features.AuditLogging)
}

func TestExecute_LoadError(t *testing.T) {
	out := filepath.Join(t.TempDir(), "preview-data.json")

	var stderr bytes.Buffer
	code := execute([]string{filepath.Join(t.TempDir(), "missing.yaml"), out}, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "Error:")
	_, err := os.Stat(out)
	assert.True(t, os.IsNotExist(err))
}

func TestExecute_WriteError(t *testing.T) {
	config := writeConfig(t, "server:\n  name: demo\n")

	var stderr bytes.Buffer
	code := execute([]string{config, filepath.Join(t.TempDir(), "no-such-dir", "out.json")}, &stderr)

	assert.Equal(t, 1, code)
	assert.Contains(t, stderr.String(), "writing preview data")
}
