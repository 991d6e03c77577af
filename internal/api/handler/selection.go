package handler

import (
	"net/http"

	"github.com/mcoot/mazedle-go/internal/api/response"
	"github.com/mcoot/mazedle-go/internal/services/selection"
)

// SelectionHandler exposes the rotation ledger
type SelectionHandler struct {
	engine *selection.Engine
}

// NewSelectionHandler creates a new selection handler
func NewSelectionHandler(engine *selection.Engine) *SelectionHandler {
	return &SelectionHandler{engine: engine}
}

// Info handles GET /api/v1/selection
func (h *SelectionHandler) Info(w http.ResponseWriter, r *http.Request) {
	info, err := h.engine.Info(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.SelectionFromModel(info))
}

// Reset handles POST /api/v1/selection/reset
func (h *SelectionHandler) Reset(w http.ResponseWriter, r *http.Request) {
	if err := h.engine.Reset(r.Context()); err != nil {
		WriteError(w, err)
		return
	}
	h.Info(w, r)
}
