package model

// MaxAttempts is the number of guesses allowed per day
const MaxAttempts = 6

// Outcome is the display state of a session
type Outcome string

const (
	OutcomeInProgress Outcome = "in_progress"
	OutcomeWon        Outcome = "won"
	OutcomeLost       Outcome = "lost"
)

// Session is the per-day game state for the device profile
type Session struct {
	CurrentDate     string      `json:"currentDate"` // YYYY-MM-DD, local
	TodaysCharacter *Character  `json:"todaysCharacter"`
	Guesses         []Character `json:"guesses"` // snapshots, chronological
	HasWon          bool        `json:"hasWon"`
	HasLost         bool        `json:"hasLost"`
	IsRevealed      bool        `json:"isRevealed"`
}

// NewSession creates a fresh session for date with the given target
func NewSession(date string, target Character) *Session {
	return &Session{
		CurrentDate:     date,
		TodaysCharacter: &target,
		Guesses:         []Character{},
	}
}

// TargetID returns the id of today's character, or 0 if none has been picked
func (s *Session) TargetID() int {
	if s.TodaysCharacter == nil {
		return 0
	}
	return s.TodaysCharacter.ID
}

// AttemptIDs returns guessed character ids in attempt order
func (s *Session) AttemptIDs() []int {
	ids := make([]int, len(s.Guesses))
	for i, g := range s.Guesses {
		ids[i] = g.ID
	}
	return ids
}

// IsOver returns true once the session has reached a terminal state
func (s *Session) IsOver() bool {
	return s.HasWon || s.HasLost
}

// Outcome returns the display state. A win always takes precedence.
func (s *Session) Outcome() Outcome {
	switch {
	case s.HasWon:
		return OutcomeWon
	case s.HasLost:
		return OutcomeLost
	default:
		return OutcomeInProgress
	}
}

// RemainingAttempts returns how many guesses are left out of max
func (s *Session) RemainingAttempts(max int) int {
	if s.IsOver() {
		return 0
	}
	remaining := max - len(s.Guesses)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// ApplyGuess records a guess. Returns false without changes if the
// session is already over or has no target.
func (s *Session) ApplyGuess(c Character, max int) bool {
	if s.IsOver() || s.TodaysCharacter == nil {
		return false
	}

	s.Guesses = append(s.Guesses, c)
	s.HasWon = c.ID == s.TodaysCharacter.ID
	s.HasLost = !s.HasWon && len(s.Guesses) >= max
	return true
}

// ApplyGiveUp reveals the answer and ends the session as lost.
// A won session is left untouched.
func (s *Session) ApplyGiveUp() bool {
	if s.HasWon {
		return false
	}
	s.IsRevealed = true
	s.HasLost = true
	return true
}

// Clone returns a deep copy
func (s *Session) Clone() *Session {
	c := *s
	if s.TodaysCharacter != nil {
		target := *s.TodaysCharacter
		c.TodaysCharacter = &target
	}
	c.Guesses = make([]Character, len(s.Guesses))
	copy(c.Guesses, s.Guesses)
	return &c
}
