package request

// GuessRequest is the request body for submitting a guess
type GuessRequest struct {
	CharacterID int `json:"character_id"`
}
