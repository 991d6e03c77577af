package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"

	"github.com/mcoot/mazedle-go/internal/api/response"
	"github.com/mcoot/mazedle-go/internal/services/roster"
)

// CharacterHandler handles roster lookup and search
type CharacterHandler struct {
	roster *roster.Roster
}

// NewCharacterHandler creates a new character handler
func NewCharacterHandler(roster *roster.Roster) *CharacterHandler {
	return &CharacterHandler{roster: roster}
}

// Search handles GET /api/v1/characters?q=&exclude=1,2
// An empty query returns no results.
func (h *CharacterHandler) Search(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	exclude, err := parseIDList(r.URL.Query().Get("exclude"))
	if err != nil {
		WriteError(w, err)
		return
	}

	results := h.roster.Search(query, exclude)
	response.JSON(w, http.StatusOK, response.CharacterList{
		Characters: response.CharactersFromModel(results),
	})
}

// Get handles GET /api/v1/characters/{id}
func (h *CharacterHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(mux.Vars(r)["id"])
	if err != nil {
		WriteError(w, NewInvalidRequestError("Character id must be an integer"))
		return
	}

	c, err := h.roster.Get(id)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.CharacterFromModel(c))
}

func parseIDList(s string) ([]int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	ids := make([]int, 0, len(parts))
	for _, part := range parts {
		id, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, NewInvalidRequestError("exclude must be a comma-separated list of ids")
		}
		ids = append(ids, id)
	}
	return ids, nil
}
