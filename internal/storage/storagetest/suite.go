// Package storagetest holds the behaviour every storage backend must share.
package storagetest

import (
	"context"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/mazedle-go/internal/model"
	"github.com/mcoot/mazedle-go/internal/storage"
)

// Suite runs backend-agnostic storage tests. Backends embed it and set
// Storage and WriteRaw in their SetupTest.
type Suite struct {
	suite.Suite

	Storage storage.Storage
	// WriteRaw stores bytes under a record name, bypassing encoding
	WriteRaw func(record string, data []byte)
}

func (s *Suite) ctx() context.Context {
	return context.Background()
}

// Ledger tests

func (s *Suite) TestGetLedgerNotFound() {
	_, err := s.Storage.GetLedger(s.ctx())
	s.ErrorIs(err, model.ErrLedgerNotFound)
}

func (s *Suite) TestSaveAndGetLedger() {
	ledger := &model.Ledger{SelectedIDs: []int{4, 2, 9}, LastResetDate: "2024-01-01"}

	err := s.Storage.SaveLedger(s.ctx(), ledger)
	s.Require().NoError(err)

	retrieved, err := s.Storage.GetLedger(s.ctx())
	s.Require().NoError(err)
	s.Equal(ledger, retrieved)
}

func (s *Suite) TestSaveLedgerOverwrites() {
	_ = s.Storage.SaveLedger(s.ctx(), &model.Ledger{SelectedIDs: []int{1, 2}, LastResetDate: "2024-01-01"})
	_ = s.Storage.SaveLedger(s.ctx(), &model.Ledger{SelectedIDs: []int{}, LastResetDate: "2024-01-05"})

	retrieved, err := s.Storage.GetLedger(s.ctx())
	s.Require().NoError(err)
	s.Empty(retrieved.SelectedIDs)
	s.Equal("2024-01-05", retrieved.LastResetDate)
}

func (s *Suite) TestLedgerIsNotShared() {
	ledger := &model.Ledger{SelectedIDs: []int{1}, LastResetDate: "2024-01-01"}
	_ = s.Storage.SaveLedger(s.ctx(), ledger)

	ledger.SelectedIDs = append(ledger.SelectedIDs, 2)

	retrieved, err := s.Storage.GetLedger(s.ctx())
	s.Require().NoError(err)
	s.Equal([]int{1}, retrieved.SelectedIDs)
}

func (s *Suite) TestGetLedgerCorrupt() {
	s.WriteRaw(storage.LedgerRecord, []byte(`{"selectedIds":[1,`))

	_, err := s.Storage.GetLedger(s.ctx())
	s.ErrorIs(err, model.ErrCorruptRecord)
}

// Session tests

func (s *Suite) TestGetSessionNotFound() {
	_, err := s.Storage.GetSession(s.ctx())
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *Suite) TestSaveAndGetSession() {
	session := model.NewSession("2024-01-01", model.Character{ID: 1, Name: "Thomas", Age: 18})
	session.ApplyGuess(model.Character{ID: 2, Name: "Newt", Role: "Second-in-Command"}, model.MaxAttempts)

	err := s.Storage.SaveSession(s.ctx(), session)
	s.Require().NoError(err)

	retrieved, err := s.Storage.GetSession(s.ctx())
	s.Require().NoError(err)
	s.Equal(session, retrieved)
}

func (s *Suite) TestSessionAndLedgerAreIndependent() {
	_ = s.Storage.SaveSession(s.ctx(), model.NewSession("2024-01-01", model.Character{ID: 1}))

	_, err := s.Storage.GetLedger(s.ctx())
	s.ErrorIs(err, model.ErrLedgerNotFound)
}

func (s *Suite) TestGetSessionCorrupt() {
	s.WriteRaw(storage.SessionRecord, []byte(`{{{`))

	_, err := s.Storage.GetSession(s.ctx())
	s.ErrorIs(err, model.ErrCorruptRecord)
}
