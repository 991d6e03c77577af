package roster

import (
	"fmt"
	"strings"

	"golang.org/x/text/cases"

	"github.com/mcoot/mazedle-go/internal/model"
)

// Roster is the immutable catalog of playable characters
type Roster struct {
	characters []model.Character
	byID       map[int]int // id -> index into characters
}

// New validates characters and builds a Roster. Declared order is kept.
func New(characters []model.Character) (*Roster, error) {
	if len(characters) == 0 {
		return nil, model.ErrEmptyRoster
	}

	r := &Roster{
		characters: make([]model.Character, len(characters)),
		byID:       make(map[int]int, len(characters)),
	}
	copy(r.characters, characters)

	names := make(map[string]struct{}, len(characters))
	for i, c := range r.characters {
		if c.ID <= 0 {
			return nil, fmt.Errorf("%w: %q has id %d", model.ErrInvalidCharacterID, c.Name, c.ID)
		}
		if _, dup := r.byID[c.ID]; dup {
			return nil, fmt.Errorf("%w: %d", model.ErrDuplicateCharacterID, c.ID)
		}
		if _, dup := names[c.Name]; dup {
			return nil, fmt.Errorf("%w: %q", model.ErrDuplicateCharacterName, c.Name)
		}
		r.byID[c.ID] = i
		names[c.Name] = struct{}{}
	}

	return r, nil
}

// MustNew is New that panics on invalid input. For built-in rosters only.
func MustNew(characters []model.Character) *Roster {
	r, err := New(characters)
	if err != nil {
		panic(err)
	}
	return r
}

// Len returns the number of characters
func (r *Roster) Len() int {
	return len(r.characters)
}

// All returns a copy of every character in declared order
func (r *Roster) All() []model.Character {
	out := make([]model.Character, len(r.characters))
	copy(out, r.characters)
	return out
}

// IDs returns every character id in declared order
func (r *Roster) IDs() []int {
	ids := make([]int, len(r.characters))
	for i, c := range r.characters {
		ids[i] = c.ID
	}
	return ids
}

// Contains reports whether id belongs to the roster
func (r *Roster) Contains(id int) bool {
	_, ok := r.byID[id]
	return ok
}

// Get looks up a character by id
func (r *Roster) Get(id int) (model.Character, error) {
	idx, ok := r.byID[id]
	if !ok {
		return model.Character{}, fmt.Errorf("%w: id %d", model.ErrCharacterNotFound, id)
	}
	return r.characters[idx], nil
}

// FindByName looks up a character by exact name, ignoring case
func (r *Roster) FindByName(name string) (model.Character, error) {
	want := fold(strings.TrimSpace(name))
	for _, c := range r.characters {
		if fold(c.Name) == want {
			return c, nil
		}
	}
	return model.Character{}, fmt.Errorf("%w: %q", model.ErrCharacterNotFound, name)
}

// Search returns characters whose name contains query, ignoring case,
// skipping any id in exclude. An empty or blank query matches nothing.
func (r *Roster) Search(query string, exclude []int) []model.Character {
	if strings.TrimSpace(query) == "" {
		return []model.Character{}
	}

	skip := make(map[int]struct{}, len(exclude))
	for _, id := range exclude {
		skip[id] = struct{}{}
	}

	needle := fold(query)
	results := []model.Character{}
	for _, c := range r.characters {
		if _, excluded := skip[c.ID]; excluded {
			continue
		}
		if strings.Contains(fold(c.Name), needle) {
			results = append(results, c)
		}
	}
	return results
}

// fold applies Unicode case folding. Casers are stateful and not safe to
// share between goroutines, so each call gets its own.
func fold(s string) string {
	return cases.Fold().String(s)
}
