package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/evoworld/sim-test-harness/framework/harness"
)

func writeConfigFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))
	return path
}

func TestParamsDefaults(t *testing.T) {
	var params commandParams
	require.True(t, params.Read([]string{"harness"}))

	assert.Equal(t, harness.DefaultEndpoint, params.harness.Endpoint)
	assert.Equal(t, harness.DefaultResponseTimeout, params.harness.ResponseTimeout)
	assert.Equal(t, harness.DefaultObservationWindow, params.harness.ObservationWindow)
}

func TestParamsFromCommandLine(t *testing.T) {
	var params commandParams
	require.True(t, params.Read([]string{
		"harness",
		"-url", "ws://simhost:9999",
		"-run", "scripted requests",
		"-skip", "event stream",
		"-debug",
		"-wait", "30s",
		"-process-name", "evoworld",
	}))

	assert.Equal(t, "ws://simhost:9999", params.harness.Endpoint)
	assert.True(t, params.debug)
	assert.False(t, params.debugAll)
	assert.Equal(t, 30*time.Second, params.waitFor)
	assert.Equal(t, "evoworld", params.processName)
	assert.True(t, params.filters.MustMatch.IsDefined())
	assert.True(t, params.filters.MustNotMatch.IsDefined())
}

func TestParamsFromConfigFile(t *testing.T) {
	path := writeConfigFile(t, `
endpoint: ws://confighost:8080
responseTimeout: 750ms
observationWindow: 3s
monitorPollTimeout: 250ms
`)
	var params commandParams
	require.True(t, params.Read([]string{"harness", "-config", path}))

	assert.Equal(t, "ws://confighost:8080", params.harness.Endpoint)
	assert.Equal(t, 750*time.Millisecond, params.harness.ResponseTimeout)
	assert.Equal(t, 3*time.Second, params.harness.ObservationWindow)
	assert.Equal(t, 250*time.Millisecond, params.harness.MonitorPollTimeout)
	// anything the file doesn't set keeps its default
	assert.Equal(t, harness.DefaultHandshakeTimeout, params.harness.HandshakeTimeout)
}

func TestParamsCommandLineOverridesConfigFile(t *testing.T) {
	path := writeConfigFile(t, "endpoint: ws://confighost:8080\n")
	var params commandParams
	require.True(t, params.Read([]string{"harness", "-config", path, "-url", "ws://flaghost:9000"}))

	assert.Equal(t, "ws://flaghost:9000", params.harness.Endpoint)
}

func TestParamsRejectsBadConfigFile(t *testing.T) {
	var params commandParams
	assert.False(t, params.Read([]string{"harness", "-config", filepath.Join(t.TempDir(), "missing.yml")}))

	badDuration := writeConfigFile(t, "responseTimeout: quickly\n")
	var params2 commandParams
	assert.False(t, params2.Read([]string{"harness", "-config", badDuration}))

	notYAML := writeConfigFile(t, "{{{\n")
	var params3 commandParams
	assert.False(t, params3.Read([]string{"harness", "-config", notYAML}))
}
