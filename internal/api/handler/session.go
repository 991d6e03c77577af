package handler

import (
	"net/http"

	"github.com/mcoot/mazedle-go/internal/api/request"
	"github.com/mcoot/mazedle-go/internal/api/response"
	"github.com/mcoot/mazedle-go/internal/model"
	"github.com/mcoot/mazedle-go/internal/services/comparison"
	"github.com/mcoot/mazedle-go/internal/services/session"
)

// SessionHandler handles the daily game endpoints
type SessionHandler struct {
	controller *session.Controller
	comparison *comparison.Service
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(controller *session.Controller, comparison *comparison.Service) *SessionHandler {
	return &SessionHandler{
		controller: controller,
		comparison: comparison,
	}
}

// Get handles GET /api/v1/session
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	s, err := h.controller.LoadOrInit(r.Context())
	h.respond(w, s, err)
}

// Guess handles POST /api/v1/session/guesses
func (h *SessionHandler) Guess(w http.ResponseWriter, r *http.Request) {
	var req request.GuessRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteError(w, err)
		return
	}
	if req.CharacterID <= 0 {
		WriteError(w, NewInvalidRequestError("character_id is required"))
		return
	}

	s, err := h.controller.Guess(r.Context(), req.CharacterID)
	h.respond(w, s, err)
}

// GiveUp handles POST /api/v1/session/give-up
func (h *SessionHandler) GiveUp(w http.ResponseWriter, r *http.Request) {
	s, err := h.controller.GiveUp(r.Context())
	h.respond(w, s, err)
}

// Restart handles POST /api/v1/session/restart
func (h *SessionHandler) Restart(w http.ResponseWriter, r *http.Request) {
	s, err := h.controller.Restart(r.Context())
	h.respond(w, s, err)
}

func (h *SessionHandler) respond(w http.ResponseWriter, s *model.Session, err error) {
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.SessionFromModel(s, h.comparison))
}
