package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/mazedle-go/internal/model"
	"github.com/mcoot/mazedle-go/internal/storage/storagetest"
)

type StorageSuite struct {
	storagetest.Suite
	memory *Storage
}

func TestStorageSuite(t *testing.T) {
	suite.Run(t, new(StorageSuite))
}

func (s *StorageSuite) SetupTest() {
	s.memory = New()
	s.Storage = s.memory
	s.WriteRaw = s.memory.PutRaw
}

func (s *StorageSuite) TestSetFailure() {
	boom := errors.New("disk gone")
	s.memory.SetFailure(boom)

	_, err := s.memory.GetLedger(context.Background())
	s.ErrorIs(err, boom)
	s.ErrorIs(s.memory.SaveSession(context.Background(), &model.Session{CurrentDate: "2024-01-01"}), boom)

	s.memory.SetFailure(nil)
	_, err = s.memory.GetLedger(context.Background())
	s.ErrorIs(err, model.ErrLedgerNotFound)
}
