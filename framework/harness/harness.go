// Package harness manages the harness's single external collaborator: the simulation
// server. It knows how to check that the server looks alive, open sessions to it, and
// carry the run-wide timing parameters; it contains no domain-specific test logic.
package harness

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/evoworld/sim-test-harness/framework"
	"github.com/evoworld/sim-test-harness/simws"
)

// Params are the connection parameters for one harness run. A TestHarness is built
// from a Params value and a fixed test suite; there is no process-wide mutable state.
type Params struct {
	// Endpoint is the simulation server's WebSocket URL.
	Endpoint string

	// HandshakeTimeout bounds the connect call.
	HandshakeTimeout time.Duration

	// ResponseTimeout bounds the wait for a reply to each scripted request.
	ResponseTimeout time.Duration

	// ObservationWindow is how long the event stream monitor watches for pushes.
	ObservationWindow time.Duration

	// MonitorPollTimeout bounds each individual receive inside the observation window.
	MonitorPollTimeout time.Duration
}

const (
	DefaultEndpoint           = "ws://127.0.0.1:8080"
	DefaultHandshakeTimeout   = 5 * time.Second
	DefaultResponseTimeout    = 5 * time.Second
	DefaultObservationWindow  = 10 * time.Second
	DefaultMonitorPollTimeout = time.Second
)

// WithDefaults fills in every unset parameter.
func (p Params) WithDefaults() Params {
	if p.Endpoint == "" {
		p.Endpoint = DefaultEndpoint
	}
	if p.HandshakeTimeout <= 0 {
		p.HandshakeTimeout = DefaultHandshakeTimeout
	}
	if p.ResponseTimeout <= 0 {
		p.ResponseTimeout = DefaultResponseTimeout
	}
	if p.ObservationWindow <= 0 {
		p.ObservationWindow = DefaultObservationWindow
	}
	if p.MonitorPollTimeout <= 0 {
		p.MonitorPollTimeout = DefaultMonitorPollTimeout
	}
	return p
}

// HostPort extracts the "host:port" part of the endpoint URL, for liveness probing.
func (p Params) HostPort() (string, error) {
	u, err := url.Parse(p.Endpoint)
	if err != nil {
		return "", fmt.Errorf("invalid endpoint URL %q: %w", p.Endpoint, err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("endpoint URL %q has no host", p.Endpoint)
	}
	host := u.Host
	if u.Port() == "" {
		switch u.Scheme {
		case "wss":
			host += ":443"
		default:
			host += ":80"
		}
	}
	return host, nil
}

// TestHarness is the main component that manages communication with the simulation
// server under test. It contains no domain-specific test logic, but only provides a
// general mechanism for test suites to build on.
type TestHarness struct {
	params Params
	logger framework.Logger
}

func NewTestHarness(params Params, debugLogger framework.Logger) *TestHarness {
	if debugLogger == nil {
		debugLogger = framework.NullLogger()
	}
	return &TestHarness{params: params.WithDefaults(), logger: debugLogger}
}

func (h *TestHarness) Params() Params           { return h.params }
func (h *TestHarness) Logger() framework.Logger { return h.logger }

// Connect opens a new session to the simulation server. The given logger receives
// the session's message traffic; if nil, the harness's own debug logger is used.
func (h *TestHarness) Connect(ctx context.Context, logger framework.Logger) (*simws.Session, error) {
	if logger == nil {
		logger = h.logger
	}
	return simws.Connect(ctx, h.params.Endpoint, h.params.HandshakeTimeout, logger)
}
