package handler

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/mcoot/mazedle-go/internal/api/response"
	"github.com/mcoot/mazedle-go/internal/api/sse"
	"github.com/mcoot/mazedle-go/internal/model"
	"github.com/mcoot/mazedle-go/internal/services/calendar"
)

// CountdownHandler reports the time left until the daily reset
type CountdownHandler struct {
	calendar *calendar.Service
	hub      *sse.Hub
	interval time.Duration
}

// NewCountdownHandler creates a new countdown handler. The stream emits a
// tick every interval and relays hub events such as rollover.
func NewCountdownHandler(calendar *calendar.Service, hub *sse.Hub, interval time.Duration) *CountdownHandler {
	if interval <= 0 {
		interval = time.Second
	}
	return &CountdownHandler{
		calendar: calendar,
		hub:      hub,
		interval: interval,
	}
}

// Get handles GET /api/v1/countdown
func (h *CountdownHandler) Get(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, http.StatusOK, h.countdown())
}

// Stream handles GET /api/v1/countdown/stream
func (h *CountdownHandler) Stream(w http.ResponseWriter, r *http.Request) {
	sse.ServeSSE(w, r, h.hub, h.interval, func() string {
		data, _ := json.Marshal(h.countdown())
		return string(data)
	})
}

func (h *CountdownHandler) countdown() response.Countdown {
	c := h.calendar.UntilReset()
	return response.Countdown{
		Hours:     c.Hours,
		Minutes:   c.Minutes,
		Seconds:   c.Seconds,
		NextReset: h.calendar.NextReset().Format(time.RFC3339),
	}
}

// RolloverBroadcaster returns a callback that announces a new day's session
// to every stream client
func RolloverBroadcaster(hub *sse.Hub) func(*model.Session) {
	return func(s *model.Session) {
		data, err := json.Marshal(response.Rollover{CurrentDate: s.CurrentDate})
		if err != nil {
			return
		}
		hub.BroadcastEvent("rollover", string(data))
	}
}
