package storage

import (
	"encoding/json"
	"fmt"

	"github.com/mcoot/mazedle-go/internal/model"
)

// EncodeLedger serializes a ledger to its stored JSON form
func EncodeLedger(ledger *model.Ledger) ([]byte, error) {
	return json.Marshal(ledger)
}

// DecodeLedger parses a stored ledger
func DecodeLedger(data []byte) (*model.Ledger, error) {
	var ledger model.Ledger
	if err := json.Unmarshal(data, &ledger); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", model.ErrCorruptRecord, LedgerRecord, err)
	}
	if ledger.SelectedIDs == nil {
		ledger.SelectedIDs = []int{}
	}
	return &ledger, nil
}

// EncodeSession serializes a session to its stored JSON form
func EncodeSession(session *model.Session) ([]byte, error) {
	return json.Marshal(session)
}

// DecodeSession parses a stored session
func DecodeSession(data []byte) (*model.Session, error) {
	var session model.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", model.ErrCorruptRecord, SessionRecord, err)
	}
	if session.CurrentDate == "" {
		return nil, fmt.Errorf("%w: %s: missing currentDate", model.ErrCorruptRecord, SessionRecord)
	}
	if session.Guesses == nil {
		session.Guesses = []model.Character{}
	}
	return &session, nil
}
