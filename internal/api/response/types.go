package response

import (
	"github.com/mcoot/mazedle-go/internal/model"
	"github.com/mcoot/mazedle-go/internal/services/comparison"
)

// Character represents a roster entry in API responses
type Character struct {
	ID              int    `json:"id"`
	Name            string `json:"name"`
	Gender          string `json:"gender"`
	Age             int    `json:"age"`
	FirstAppearance string `json:"first_appearance"`
	Role            string `json:"role"`
	Group           string `json:"group"`
	Status          string `json:"status"`
	Survival        string `json:"survival"`
}

// CharacterFromModel converts a model.Character
func CharacterFromModel(c model.Character) Character {
	return Character{
		ID:              c.ID,
		Name:            c.Name,
		Gender:          c.Gender,
		Age:             c.Age,
		FirstAppearance: c.FirstAppearance,
		Role:            c.Role,
		Group:           c.Group,
		Status:          c.Status,
		Survival:        c.Survival,
	}
}

// CharactersFromModel converts a slice, never returning nil
func CharactersFromModel(cs []model.Character) []Character {
	out := make([]Character, len(cs))
	for i, c := range cs {
		out[i] = CharacterFromModel(c)
	}
	return out
}

// CharacterList is the response for character search
type CharacterList struct {
	Characters []Character `json:"characters"`
}

// Verdict is the result for one attribute of a guess.
// Value is a number for numeric attributes and a string otherwise.
type Verdict struct {
	Label   string `json:"label"`
	Value   any    `json:"value"`
	Verdict string `json:"verdict"`
}

// VerdictFromModel converts a model.AttributeVerdict
func VerdictFromModel(v model.AttributeVerdict) Verdict {
	var value any = v.Value.Str
	if v.Value.Kind == model.AttrInt {
		value = v.Value.Int
	}
	return Verdict{
		Label:   v.Label,
		Value:   value,
		Verdict: string(v.Verdict),
	}
}

// Guess is one attempt with its verdict row
type Guess struct {
	Character Character `json:"character"`
	Verdicts  []Verdict `json:"verdicts"`
}

// Session is the view of today's game
type Session struct {
	CurrentDate       string     `json:"current_date"`
	Status            string     `json:"status"`
	MaxAttempts       int        `json:"max_attempts"`
	RemainingAttempts int        `json:"remaining_attempts"`
	Revealed          bool       `json:"revealed"`
	Guesses           []Guess    `json:"guesses"`
	Target            *Character `json:"target,omitempty"`
}

// SessionFromModel builds the session view, comparing every guess against
// the target. The target is only included once the game is over.
func SessionFromModel(s *model.Session, cmp *comparison.Service) Session {
	guesses := make([]Guess, len(s.Guesses))
	for i, g := range s.Guesses {
		var verdicts []model.AttributeVerdict
		if s.TodaysCharacter != nil {
			verdicts = cmp.Compare(g, *s.TodaysCharacter)
		}
		rows := make([]Verdict, len(verdicts))
		for j, v := range verdicts {
			rows[j] = VerdictFromModel(v)
		}
		guesses[i] = Guess{
			Character: CharacterFromModel(g),
			Verdicts:  rows,
		}
	}

	var target *Character
	if s.IsOver() && s.TodaysCharacter != nil {
		t := CharacterFromModel(*s.TodaysCharacter)
		target = &t
	}

	return Session{
		CurrentDate:       s.CurrentDate,
		Status:            string(s.Outcome()),
		MaxAttempts:       model.MaxAttempts,
		RemainingAttempts: s.RemainingAttempts(model.MaxAttempts),
		Revealed:          s.IsRevealed,
		Guesses:           guesses,
		Target:            target,
	}
}

// Countdown is the time remaining until the next daily reset
type Countdown struct {
	Hours     int    `json:"hours"`
	Minutes   int    `json:"minutes"`
	Seconds   int    `json:"seconds"`
	NextReset string `json:"next_reset"`
}

// Selection summarises the rotation ledger
type Selection struct {
	UsedCount      int    `json:"used_count"`
	TotalCount     int    `json:"total_count"`
	RemainingCount int    `json:"remaining_count"`
	LastResetDate  string `json:"last_reset_date"`
}

// SelectionFromModel converts model.SelectionInfo
func SelectionFromModel(info model.SelectionInfo) Selection {
	return Selection{
		UsedCount:      info.UsedCount,
		TotalCount:     info.TotalCount,
		RemainingCount: info.RemainingCount,
		LastResetDate:  info.LastResetDate,
	}
}

// Rollover is the data of a "rollover" stream event
type Rollover struct {
	CurrentDate string `json:"current_date"`
}
