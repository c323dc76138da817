package simtests

import (
	"errors"
	"time"

	"github.com/evoworld/sim-test-harness/framework"
	"github.com/evoworld/sim-test-harness/framework/helpers"
	"github.com/evoworld/sim-test-harness/framework/simtest"
	"github.com/evoworld/sim-test-harness/protocol"
	"github.com/evoworld/sim-test-harness/simws"
)

type monitorState int

const (
	monitorIdle monitorState = iota
	monitorSubscribed
	monitorObserving
	monitorDone
)

// eventStreamMonitor watches the channel for unsolicited server pushes after an
// event subscription. Unlike the scripted steps, it does not pair requests with
// replies: within the observation window it accepts any interleaving of events and
// world-state updates, and a window with no messages at all is a valid outcome.
type eventStreamMonitor struct {
	session     *simws.Session
	window      time.Duration
	pollTimeout time.Duration
	logger      framework.Logger
	state       monitorState
}

type monitorReport struct {
	Events            int
	EventDescriptions []string
	Updates           int
	Ignored           int // malformed or unrecognized pushes, all non-fatal
}

func newEventStreamMonitor(
	session *simws.Session,
	window, pollTimeout time.Duration,
	logger framework.Logger,
) *eventStreamMonitor {
	return &eventStreamMonitor{
		session:     session,
		window:      window,
		pollTimeout: pollTimeout,
		logger:      logger,
		state:       monitorIdle,
	}
}

// Subscribe sends the event subscription request. Subscribing more than once is
// harmless to the server, so the monitor always issues its own subscription even
// though the scripted sequence exercised the same request earlier.
func (m *eventStreamMonitor) Subscribe() error {
	if m.state != monitorIdle {
		return errors.New("monitor has already subscribed")
	}
	if err := m.session.Send(protocol.Encode(protocol.SubscribeToEvents())); err != nil {
		return err
	}
	m.state = monitorSubscribed
	return nil
}

// Observe polls the channel until the observation window closes, classifying and
// tallying everything that arrives. Per-poll timeouts are the steady state of this
// loop, not errors; the only error case is the connection itself failing.
func (m *eventStreamMonitor) Observe() (monitorReport, error) {
	if m.state != monitorSubscribed {
		return monitorReport{}, errors.New("monitor must subscribe before observing")
	}
	m.state = monitorObserving
	defer func() { m.state = monitorDone }()

	var report monitorReport
	deadline := time.Now().Add(m.window)
	for {
		remaining := time.Until(deadline)
		if remaining <= 0 {
			return report, nil
		}
		poll := m.pollTimeout
		if poll > remaining {
			poll = remaining
		}
		maybeMsg, err := m.session.ReceiveWithTimeout(poll)
		if err != nil {
			return report, err
		}
		if !maybeMsg.IsDefined() {
			continue
		}
		resp, err := protocol.Decode(maybeMsg.Value())
		if err != nil {
			report.Ignored++
			m.logger.Printf("ignoring malformed message: %s", err)
			continue
		}
		switch resp.Kind {
		case protocol.KindEvent:
			report.Events++
			report.EventDescriptions = append(report.EventDescriptions, resp.Event.Description)
			m.logger.Printf("event %q: %s", resp.Event.Type, resp.Event.Description)
		case protocol.KindWorldState:
			report.Updates++
			m.logger.Printf("world state update received")
		default:
			report.Ignored++
			m.logger.Printf("ignoring message of unknown type %q", resp.Type)
		}
	}
}

func runEventStreamTest(t *simtest.T, session *simws.Session) {
	params := requireContext(t).harness.Params()
	monitor := newEventStreamMonitor(session, params.ObservationWindow, params.MonitorPollTimeout, t.DebugLogger())

	if err := monitor.Subscribe(); err != nil {
		t.Errorf("could not subscribe to events: %s", err)
		t.FailNow()
	}
	report, err := monitor.Observe()
	if err != nil {
		t.Errorf("connection failed during the observation window: %s", err)
		t.FailNow()
	}
	t.Debug("observation window closed: %d %s, %d %s, %d ignored",
		report.Events, helpers.IfElse(report.Events == 1, "event", "events"),
		report.Updates, helpers.IfElse(report.Updates == 1, "update", "updates"),
		report.Ignored)
}
