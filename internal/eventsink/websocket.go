package eventsink

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/wovenflow/runtime/internal/runner"
)

// Grounded on aipilotbyjd-linkflow-ai's gateway Hub/Client pattern, narrowed
// from arbitrary named channels to one channel per execution id, since a
// stream subscriber always wants exactly one execution's events.
var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

type wsClient struct {
	conn *websocket.Conn
	send chan []byte
}

// WebSocketSink broadcasts each published event to every client currently
// subscribed to that event's execution id. Register clients with
// ServeExecutionStream from an HTTP handler.
type WebSocketSink struct {
	mu      sync.RWMutex
	clients map[string]map[*wsClient]bool
}

// NewWebSocketSink returns an empty WebSocketSink.
func NewWebSocketSink() *WebSocketSink {
	return &WebSocketSink{clients: make(map[string]map[*wsClient]bool)}
}

// ServeExecutionStream upgrades r to a websocket connection and streams
// executionID's events to it until the client disconnects.
func (s *WebSocketSink) ServeExecutionStream(w http.ResponseWriter, r *http.Request, executionID string) error {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}

	c := &wsClient{conn: conn, send: make(chan []byte, 256)}
	s.register(executionID, c)
	defer s.unregister(executionID, c)

	go c.writePump()
	c.readPump()
	return nil
}

func (s *WebSocketSink) register(executionID string, c *wsClient) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.clients[executionID] == nil {
		s.clients[executionID] = make(map[*wsClient]bool)
	}
	s.clients[executionID][c] = true
}

func (s *WebSocketSink) unregister(executionID string, c *wsClient) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if clients, ok := s.clients[executionID]; ok {
		if _, ok := clients[c]; ok {
			delete(clients, c)
			close(c.send)
		}
		if len(clients) == 0 {
			delete(s.clients, executionID)
		}
	}
}

// Publish satisfies eventsink.Sink.
func (s *WebSocketSink) Publish(event runner.Event) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	s.mu.RLock()
	clients := s.clients[event.ExecutionID]
	s.mu.RUnlock()

	for c := range clients {
		select {
		case c.send <- data:
		default:
			s.unregister(event.ExecutionID, c)
		}
	}
	return nil
}

func (c *wsClient) readPump() {
	c.conn.SetReadLimit(4096)
	c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(60 * time.Second))
		return nil
	})
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (c *wsClient) writePump() {
	ticker := time.NewTicker(30 * time.Second)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()
	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
