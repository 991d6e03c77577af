package model

// Verdict classifies how a guessed attribute matches the target
type Verdict string

const (
	VerdictCorrect   Verdict = "correct"
	VerdictPartial   Verdict = "partial"
	VerdictIncorrect Verdict = "incorrect"
)

// AttributeVerdict is the comparison result for one attribute
type AttributeVerdict struct {
	Label   string
	Value   AttrValue // from the guess
	Verdict Verdict
}

// Countdown is the time remaining until the next daily reset
type Countdown struct {
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}
