package factory

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/mazedle-go/internal/model"
	redisstorage "github.com/mcoot/mazedle-go/internal/storage/redis"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

// Test: a full day from first load to a win, with verdicts for each guess
func (s *IntegrationSuite) TestCompleteDailyGame() {
	// Step 1: first load picks Thomas (roster index 0)
	session, err := s.app.SessionController.LoadOrInit(s.ctx)
	s.Require().NoError(err)
	s.Equal("Thomas", session.TodaysCharacter.Name)

	// Step 2: guess Newt, which shares Group A with Thomas
	session, err = s.app.SessionController.Guess(s.ctx, 2)
	s.Require().NoError(err)
	s.Equal(model.OutcomeInProgress, session.Outcome())

	verdicts := s.app.ComparisonService.Compare(session.Guesses[0], *session.TodaysCharacter)
	s.Require().Len(verdicts, 8)
	s.Equal(model.VerdictIncorrect, verdicts[0].Verdict) // Name
	s.Equal(model.VerdictCorrect, verdicts[1].Verdict)   // Gender

	// Step 3: guess Thomas
	session, err = s.app.SessionController.Guess(s.ctx, 1)
	s.Require().NoError(err)
	s.Equal(model.OutcomeWon, session.Outcome())
	s.Equal([]int{2, 1}, session.AttemptIDs())

	// Step 4: giving up afterwards changes nothing
	session, err = s.app.SessionController.GiveUp(s.ctx)
	s.Require().NoError(err)
	s.Equal(model.OutcomeWon, session.Outcome())
	s.False(session.IsRevealed)
}

// Test: every character is used once across a full cycle of days before any repeat
func (s *IntegrationSuite) TestRotationAcrossDays() {
	total := s.app.Roster.Len()
	seen := map[int]bool{}

	for day := 0; day < total; day++ {
		session, err := s.app.SessionController.LoadOrInit(s.ctx)
		s.Require().NoError(err)
		s.False(seen[session.TargetID()], "day %d repeated character %d", day, session.TargetID())
		seen[session.TargetID()] = true
		s.app.AdvanceDays(1)
	}
	s.Len(seen, total)

	info, err := s.app.SelectionEngine.Info(s.ctx)
	s.Require().NoError(err)
	s.Equal(total, info.UsedCount)
	s.Equal(0, info.RemainingCount)

	// The next day starts a new cycle
	session, err := s.app.SessionController.LoadOrInit(s.ctx)
	s.Require().NoError(err)

	info, err = s.app.SelectionEngine.Info(s.ctx)
	s.Require().NoError(err)
	s.Equal(1, info.UsedCount)
	s.Equal(session.CurrentDate, info.LastResetDate)
}

// Test: the countdown reaches zero exactly at the day boundary
func (s *IntegrationSuite) TestCountdownMatchesRollover() {
	s.app.MockClock.Set(time.Date(2024, 1, 1, 23, 59, 30, 0, time.UTC))
	s.Equal(model.Countdown{Hours: 0, Minutes: 0, Seconds: 30}, s.app.Calendar.UntilReset())

	first, err := s.app.SessionController.LoadOrInit(s.ctx)
	s.Require().NoError(err)

	s.app.MockClock.Advance(30 * time.Second)
	second, err := s.app.SessionController.LoadOrInit(s.ctx)
	s.Require().NoError(err)

	s.Equal("2024-01-01", first.CurrentDate)
	s.Equal("2024-01-02", second.CurrentDate)
}

// Factory construction tests

type FactorySuite struct {
	suite.Suite
}

func TestFactorySuite(t *testing.T) {
	suite.Run(t, new(FactorySuite))
}

func (s *FactorySuite) TestNewDefaultsToMemory() {
	app, err := New(Config{})
	s.Require().NoError(err)
	defer func() { _ = app.Close() }()

	s.NotNil(app.SessionController)
	s.Equal(16, app.Roster.Len())
}

func (s *FactorySuite) TestNewWithSQLite() {
	path := filepath.Join(s.T().TempDir(), "mazedle.db")

	app, err := New(Config{StorageType: StorageTypeSQLite, SQLitePath: path, Profile: "tester"})
	s.Require().NoError(err)

	session, err := app.SessionController.LoadOrInit(context.Background())
	s.Require().NoError(err)
	s.Require().NoError(app.Close())

	reopened, err := New(Config{StorageType: StorageTypeSQLite, SQLitePath: path, Profile: "tester"})
	s.Require().NoError(err)
	defer func() { _ = reopened.Close() }()

	again, err := reopened.SessionController.LoadOrInit(context.Background())
	s.Require().NoError(err)
	s.Equal(session.TargetID(), again.TargetID())
}

func (s *FactorySuite) TestNewWithRedis() {
	mini := miniredis.RunT(s.T())
	cfg := redisstorage.DefaultConfig()
	cfg.URL = "redis://" + mini.Addr()

	app, err := New(Config{StorageType: StorageTypeRedis, RedisConfig: &cfg, Profile: "tester"})
	s.Require().NoError(err)
	defer func() { _ = app.Close() }()

	_, err = app.SessionController.LoadOrInit(context.Background())
	s.Require().NoError(err)
	s.True(mini.Exists("mazedle:tester:mazedle-game-state"))
}

func (s *FactorySuite) TestNewRedisRequiresConfig() {
	_, err := New(Config{StorageType: StorageTypeRedis})
	s.Error(err)
}

func (s *FactorySuite) TestNewRejectsUnknownStorage() {
	_, err := New(Config{StorageType: "floppy"})
	s.Error(err)
}
