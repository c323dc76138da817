package mocksim

import (
	"encoding/json"
	"net/http"
	"sync"

	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"
	"github.com/launchdarkly/go-sdk-common/v3/ldvalue"

	"github.com/evoworld/sim-test-harness/framework"
	"github.com/evoworld/sim-test-harness/framework/helpers"
)

// MessageHandler is the per-message script of a SimulationService. It receives each
// decoded client request and may push any number of messages back through the client.
// A nil handler never replies (a silent server).
type MessageHandler func(request ldvalue.Value, client *Client)

// Client is one connected harness, from the mock server's point of view.
type Client struct {
	conn   *websocket.Conn
	logger framework.Logger
	lock   sync.Mutex
}

// Send marshals a message to JSON and pushes it to the client.
func (c *Client) Send(message interface{}) {
	c.SendRaw(helpers.AsJSON(message))
}

// SendRaw pushes raw bytes to the client, such as deliberately malformed JSON.
func (c *Client) SendRaw(data []byte) {
	c.lock.Lock()
	defer c.lock.Unlock()
	if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		c.logger.Printf("write to client failed: %s", err)
		return
	}
	c.logger.Printf("pushed: %s", data)
}

// SimulationService is a mock simulation server. It records every request it
// receives (readable from Requests) and reacts per its MessageHandler.
type SimulationService struct {
	handler     MessageHandler
	requests    chan ldvalue.Value
	router      *mux.Router
	upgrader    websocket.Upgrader
	debugLogger framework.Logger
}

const requestQueueSize = 64

func NewSimulationService(handler MessageHandler, debugLogger framework.Logger) *SimulationService {
	if debugLogger == nil {
		debugLogger = framework.NullLogger()
	}
	s := &SimulationService{
		handler:     handler,
		requests:    make(chan ldvalue.Value, requestQueueSize),
		debugLogger: framework.LoggerWithPrefix(debugLogger, "mocksim: "),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
	router := mux.NewRouter()
	router.HandleFunc("/", s.serveConnection).Methods("GET")
	s.router = router
	return s
}

func (s *SimulationService) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Requests returns the queue of messages received from clients, in arrival order.
func (s *SimulationService) Requests() <-chan ldvalue.Value {
	return s.requests
}

func (s *SimulationService) serveConnection(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.debugLogger.Printf("upgrade failed: %s", err)
		return
	}
	client := &Client{conn: conn, logger: s.debugLogger}
	defer conn.Close() //nolint:errcheck

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			s.debugLogger.Printf("client disconnected: %s", err)
			return
		}
		s.debugLogger.Printf("received: %s", data)
		var request ldvalue.Value
		if err := json.Unmarshal(data, &request); err != nil {
			s.debugLogger.Printf("ignoring unparseable request: %s", err)
			continue
		}
		if !helpers.NonBlockingSend(s.requests, request) {
			s.debugLogger.Printf("request queue is full, dropping record")
		}
		if s.handler != nil {
			s.handler(request, client)
		}
	}
}
