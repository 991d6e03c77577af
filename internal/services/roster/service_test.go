package roster

import (
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/mazedle-go/internal/model"
)

type RosterSuite struct {
	suite.Suite
	roster *Roster
}

func TestRosterSuite(t *testing.T) {
	suite.Run(t, new(RosterSuite))
}

func (s *RosterSuite) SetupTest() {
	s.roster = Default()
}

func (s *RosterSuite) TestDefaultRosterIsValid() {
	s.Equal(16, s.roster.Len())
	s.Len(s.roster.IDs(), 16)
}

func (s *RosterSuite) TestGet() {
	c, err := s.roster.Get(1)
	s.Require().NoError(err)
	s.Equal("Thomas", c.Name)
}

func (s *RosterSuite) TestGetNotFound() {
	_, err := s.roster.Get(999)
	s.ErrorIs(err, model.ErrCharacterNotFound)
}

func (s *RosterSuite) TestFindByNameIgnoresCase() {
	c, err := s.roster.FindByName("  teresa agnes ")
	s.Require().NoError(err)
	s.Equal(3, c.ID)
}

func (s *RosterSuite) TestFindByNameNotFound() {
	_, err := s.roster.FindByName("Thom")
	s.ErrorIs(err, model.ErrCharacterNotFound)
}

func (s *RosterSuite) TestSearchIsCaseInsensitiveSubstring() {
	results := s.roster.Search("TH", nil)

	names := make([]string, len(results))
	for i, c := range results {
		names[i] = c.Name
	}
	s.Equal([]string{"Thomas"}, names)
}

func (s *RosterSuite) TestSearchKeepsDeclaredOrder() {
	results := s.roster.Search("a", nil)
	s.Require().NotEmpty(results)
	for i := 1; i < len(results); i++ {
		s.Less(results[i-1].ID, results[i].ID)
	}
}

func (s *RosterSuite) TestSearchExcludesIDs() {
	results := s.roster.Search("an", []int{14})
	for _, c := range results {
		s.NotEqual(14, c.ID)
	}
	s.NotEmpty(results) // "Janson (Rat Man)"
}

func (s *RosterSuite) TestSearchEmptyQueryMatchesNothing() {
	s.Empty(s.roster.Search("", nil))
	s.Empty(s.roster.Search(" ", nil))
	s.Empty(s.roster.Search("\t ", nil))
}

func (s *RosterSuite) TestAllReturnsCopy() {
	all := s.roster.All()
	all[0].Name = "Changed"

	c, err := s.roster.Get(all[0].ID)
	s.Require().NoError(err)
	s.Equal("Thomas", c.Name)
}

// Validation tests

func (s *RosterSuite) TestNewRejectsEmpty() {
	_, err := New(nil)
	s.ErrorIs(err, model.ErrEmptyRoster)
}

func (s *RosterSuite) TestNewRejectsNonPositiveID() {
	_, err := New([]model.Character{{ID: 0, Name: "Nobody"}})
	s.ErrorIs(err, model.ErrInvalidCharacterID)
}

func (s *RosterSuite) TestNewRejectsDuplicateID() {
	_, err := New([]model.Character{{ID: 1, Name: "A"}, {ID: 1, Name: "B"}})
	s.ErrorIs(err, model.ErrDuplicateCharacterID)
}

func (s *RosterSuite) TestNewRejectsDuplicateName() {
	_, err := New([]model.Character{{ID: 1, Name: "A"}, {ID: 2, Name: "A"}})
	s.ErrorIs(err, model.ErrDuplicateCharacterName)
}
