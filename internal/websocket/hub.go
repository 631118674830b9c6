// Package websocket pushes compose job progress to subscribed clients.
// Clients connect per job ID; the worker publishes progress, completion
// and error events through the Hub.
package websocket

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gofiber/contrib/websocket"

	"github.com/zeynepecekiris/music-studio-AI-backend/internal/model"
)

const (
	keepAliveInterval = 30 * time.Second
	sendBufferSize    = 256
)

// subscriber is one WebSocket connection watching a single job.
type subscriber struct {
	jobID string
	send  chan []byte
}

// Hub fans compose job events out to the subscribers of each job.
type Hub struct {
	mu          sync.RWMutex
	subscribers map[string]map[*subscriber]struct{}

	attach  chan *subscriber
	detach  chan *subscriber
	publish chan publication
}

type publication struct {
	jobID string
	data  []byte
}

func NewHub() *Hub {
	return &Hub{
		subscribers: make(map[string]map[*subscriber]struct{}),
		attach:      make(chan *subscriber),
		detach:      make(chan *subscriber),
		publish:     make(chan publication, sendBufferSize),
	}
}

// Run processes subscription changes and publications. Call once in a
// goroutine at startup.
func (h *Hub) Run() {
	for {
		select {
		case sub := <-h.attach:
			h.mu.Lock()
			if h.subscribers[sub.jobID] == nil {
				h.subscribers[sub.jobID] = make(map[*subscriber]struct{})
			}
			h.subscribers[sub.jobID][sub] = struct{}{}
			h.mu.Unlock()
			log.Printf("WS subscriber attached to job %s", sub.jobID)

		case sub := <-h.detach:
			h.mu.Lock()
			if subs, ok := h.subscribers[sub.jobID]; ok {
				if _, ok := subs[sub]; ok {
					delete(subs, sub)
					close(sub.send)
					if len(subs) == 0 {
						delete(h.subscribers, sub.jobID)
					}
				}
			}
			h.mu.Unlock()

		case pub := <-h.publish:
			h.mu.RLock()
			for sub := range h.subscribers[pub.jobID] {
				select {
				case sub.send <- pub.data:
				default:
					// Slow consumer; drop it rather than block the hub
					close(sub.send)
					delete(h.subscribers[pub.jobID], sub)
				}
			}
			h.mu.RUnlock()
		}
	}
}

func (h *Hub) emit(jobID string, msg interface{}) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("Failed to marshal WS message for job %s: %v", jobID, err)
		return
	}
	h.publish <- publication{jobID: jobID, data: data}
}

// BroadcastProgress pushes a progress update to the job's subscribers.
func (h *Hub) BroadcastProgress(jobID string, progress int, status model.JobStatus, step string) {
	h.emit(jobID, model.WSProgressMessage{
		Type:        model.WSMessageTypeProgress,
		JobID:       jobID,
		Progress:    progress,
		Status:      status,
		CurrentStep: step,
	})
}

// BroadcastComplete pushes the finished track to the job's subscribers.
func (h *Hub) BroadcastComplete(jobID string, result interface{}) {
	h.emit(jobID, model.WSCompleteMessage{
		Type:   model.WSMessageTypeComplete,
		JobID:  jobID,
		Result: result,
	})
}

// BroadcastError pushes a failure event to the job's subscribers.
func (h *Hub) BroadcastError(jobID string, code, message string) {
	h.emit(jobID, model.WSErrorMessage{
		Type:  model.WSMessageTypeError,
		JobID: jobID,
		Error: model.WSError{Code: code, Message: message},
	})
}

// HandleConnection serves one WebSocket connection until the client
// disconnects. Blocks, so call from the websocket route handler.
func (h *Hub) HandleConnection(c *websocket.Conn, jobID string) {
	sub := &subscriber{
		jobID: jobID,
		send:  make(chan []byte, sendBufferSize),
	}

	h.attach <- sub
	defer func() { h.detach <- sub }()

	go writeLoop(c, sub)

	for {
		_, raw, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("WebSocket error on job %s: %v", jobID, err)
			}
			return
		}

		var msg model.WSMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			continue
		}
		if msg.Type == model.WSMessageTypePing {
			data, _ := json.Marshal(model.WSMessage{Type: model.WSMessageTypePong})
			sub.send <- data
		}
	}
}

// writeLoop drains the subscriber's send channel and keeps the
// connection alive with periodic pings.
func writeLoop(c *websocket.Conn, sub *subscriber) {
	ticker := time.NewTicker(keepAliveInterval)
	defer ticker.Stop()

	for {
		select {
		case data, ok := <-sub.send:
			if !ok {
				c.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}

		case <-ticker.C:
			if err := c.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
