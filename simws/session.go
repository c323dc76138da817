// Package simws implements the harness's side of the persistent message channel:
// a WebSocket client session with timeout-bounded receives.
package simws

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/evoworld/sim-test-harness/framework"
	"github.com/evoworld/sim-test-harness/framework/opt"
)

// ErrSessionClosed is returned by Send or ReceiveWithTimeout after Close.
var ErrSessionClosed = errors.New("session is closed")

// ConnectionError indicates that a connection could not be established, typically
// because nothing is listening at the endpoint.
type ConnectionError struct {
	Endpoint string
	Err      error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("could not connect to %s: %s", e.Endpoint, e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// SendError indicates that a message could not be written to the channel. The session
// is not usable after a SendError.
type SendError struct {
	Err error
}

func (e *SendError) Error() string { return fmt.Sprintf("send failed: %s", e.Err) }

func (e *SendError) Unwrap() error { return e.Err }

// Session owns one bidirectional connection to the simulation server. All receives
// are timeout-bounded; nothing in this type blocks indefinitely.
//
// A reader goroutine owns the connection's read side and queues incoming messages,
// so that an expired receive deadline never poisons the connection - the caller can
// keep polling after any number of timeouts, which is the event monitor's steady state.
type Session struct {
	conn      *websocket.Conn
	endpoint  string
	logger    framework.Logger
	messages  chan []byte
	readFail  chan error
	closed    chan struct{}
	closeOnce sync.Once
}

const sessionReceiveBuffer = 64

// Connect opens a WebSocket connection to the given endpoint (a ws:// or wss:// URL).
// A refused or unreachable endpoint yields a ConnectionError within handshakeTimeout.
func Connect(ctx context.Context, endpoint string, handshakeTimeout time.Duration, logger framework.Logger) (*Session, error) {
	if logger == nil {
		logger = framework.NullLogger()
	}
	dialer := websocket.Dialer{
		HandshakeTimeout: handshakeTimeout,
	}
	conn, _, err := dialer.DialContext(ctx, endpoint, nil)
	if err != nil {
		return nil, &ConnectionError{Endpoint: endpoint, Err: err}
	}
	logger.Printf("connected to %s", endpoint)

	s := &Session{
		conn:     conn,
		endpoint: endpoint,
		logger:   logger,
		messages: make(chan []byte, sessionReceiveBuffer),
		readFail: make(chan error, 1),
		closed:   make(chan struct{}),
	}
	go s.readLoop()
	return s, nil
}

func (s *Session) readLoop() {
	for {
		_, data, err := s.conn.ReadMessage()
		if err != nil {
			s.readFail <- err
			return
		}
		select {
		case s.messages <- data:
		case <-s.closed:
			return
		}
	}
}

// Endpoint returns the address this session was connected to.
func (s *Session) Endpoint() string { return s.endpoint }

// Send writes one message to the channel. It fails with a SendError if the session
// is closed or the write fails.
func (s *Session) Send(data []byte) error {
	select {
	case <-s.closed:
		return &SendError{Err: ErrSessionClosed}
	default:
	}
	if err := s.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return &SendError{Err: err}
	}
	s.logger.Printf("sent: %s", data)
	return nil
}

// ReceiveWithTimeout waits for one full message, for at most the given duration.
// It returns a defined Maybe holding the message, or an undefined Maybe if the
// timeout elapsed first. A timeout is not an error; the session stays usable.
// A non-nil error means the channel itself failed (closed by the peer, broken
// transport, or a closed session).
func (s *Session) ReceiveWithTimeout(timeout time.Duration) (opt.Maybe[[]byte], error) {
	timer := time.NewTimer(timeout)
	defer timer.Stop()
	select {
	case data := <-s.messages:
		s.logger.Printf("received: %s", data)
		return opt.Some(data), nil
	case err := <-s.readFail:
		// put it back so later receives report the same failure
		s.readFail <- err
		return opt.None[[]byte](), fmt.Errorf("connection failed while receiving: %w", err)
	case <-s.closed:
		return opt.None[[]byte](), ErrSessionClosed
	case <-timer.C:
		return opt.None[[]byte](), nil
	}
}

// Close releases the connection. It is idempotent and safe to call on every exit path.
func (s *Session) Close() error {
	var err error
	s.closeOnce.Do(func() {
		close(s.closed)
		deadline := time.Now().Add(time.Second)
		_ = s.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), deadline)
		err = s.conn.Close()
		s.logger.Printf("closed connection to %s", s.endpoint)
	})
	return err
}
