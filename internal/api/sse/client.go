package sse

import (
	"net/http"
	"time"
)

// Buffer size for outgoing messages
const sendBufferSize = 16

// Client represents a connected SSE client
type Client struct {
	send        chan []byte
	connectedAt time.Time
}

// NewClient creates a new SSE client
func NewClient() *Client {
	return &Client{
		send:        make(chan []byte, sendBufferSize),
		connectedAt: time.Now(),
	}
}

// TickFunc produces the data for a periodic "tick" event
type TickFunc func() string

// ServeSSE streams hub events to the client, plus a "tick" event every
// interval. It returns when the client disconnects or the hub closes.
func ServeSSE(w http.ResponseWriter, r *http.Request, hub *Hub, interval time.Duration, tick TickFunc) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, "Streaming unsupported", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	client := NewClient()
	if !hub.Register(client) {
		http.Error(w, "Stream closed", http.StatusServiceUnavailable)
		return
	}
	defer hub.Unregister(client)

	_, _ = w.Write(formatSSEMessage("connected", `{"status":"connected"}`))
	if tick != nil {
		_, _ = w.Write(formatSSEMessage("tick", tick()))
	}
	flusher.Flush()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case message, ok := <-client.send:
			if !ok {
				return
			}
			if _, err := w.Write(message); err != nil {
				return
			}
			flusher.Flush()

		case <-ticker.C:
			if tick == nil {
				continue
			}
			if _, err := w.Write(formatSSEMessage("tick", tick())); err != nil {
				return
			}
			flusher.Flush()

		case <-r.Context().Done():
			return
		}
	}
}
