package harness

import (
	"bytes"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbePortOpen(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close() //nolint:errcheck

	assert.True(t, ProbePort(listener.Addr().String(), time.Second))
}

func TestProbePortClosed(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	assert.False(t, ProbePort(addr, time.Second))
}

func TestWaitForServerSucceedsWhenListening(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close() //nolint:errcheck

	var output bytes.Buffer
	err = WaitForServer(listener.Addr().String(), time.Second, &output)
	assert.NoError(t, err)
	assert.Contains(t, output.String(), "Waiting for simulation server")
}

func TestWaitForServerTimesOut(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := listener.Addr().String()
	require.NoError(t, listener.Close())

	var output bytes.Buffer
	start := time.Now()
	err = WaitForServer(addr, 300*time.Millisecond, &output)
	assert.Error(t, err)
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestProbeProcessFindsOwnTestBinary(t *testing.T) {
	// the test binary's process name always contains "harness" (the package name)
	pids, err := ProbeProcess("harness.test")
	if err != nil {
		t.Skipf("process listing not supported here: %v", err)
	}
	assert.NotEmpty(t, pids)
}

func TestProbeProcessNoMatch(t *testing.T) {
	pids, err := ProbeProcess("no-such-process-name-zzz")
	if err != nil {
		t.Skipf("process listing not supported here: %v", err)
	}
	assert.Empty(t, pids)
}
