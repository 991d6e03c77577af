package calendar

import (
	"time"

	"github.com/mcoot/mazedle-go/internal/dependencies/clock"
	"github.com/mcoot/mazedle-go/internal/model"
)

// DateLayout is the format of day keys stored in records
const DateLayout = "2006-01-02"

// Service derives day boundaries from the clock in a fixed location
type Service struct {
	clock    clock.Clock
	location *time.Location
}

// New creates a calendar Service. A nil location means time.Local.
func New(clock clock.Clock, location *time.Location) *Service {
	if location == nil {
		location = time.Local
	}
	return &Service{
		clock:    clock,
		location: location,
	}
}

// Location returns the location day boundaries are computed in
func (s *Service) Location() *time.Location {
	return s.location
}

// Now returns the current time in the calendar's location
func (s *Service) Now() time.Time {
	return s.clock.Now().In(s.location)
}

// Today returns today's day key (YYYY-MM-DD)
func (s *Service) Today() string {
	return s.Now().Format(DateLayout)
}

// NextReset returns the next local midnight
func (s *Service) NextReset() time.Time {
	now := s.Now()
	return time.Date(now.Year(), now.Month(), now.Day()+1, 0, 0, 0, 0, s.location)
}

// UntilReset returns the time remaining until the next local midnight
func (s *Service) UntilReset() model.Countdown {
	diff := s.NextReset().Sub(s.Now())
	if diff < 0 {
		diff = 0
	}
	return model.Countdown{
		Hours:   int(diff / time.Hour),
		Minutes: int(diff % time.Hour / time.Minute),
		Seconds: int(diff % time.Minute / time.Second),
	}
}
