package engine

import (
	"math/rand"
	"time"

	"habitbuilder/internal/store"
)

// Service owns the in-memory state and funnels every mutation through
// the scoring rules, persisting after each one. There is a single
// state owner; callers on the UI loop never write fields directly.
type Service struct {
	store *store.Store
	state *store.State
	now   func() time.Time
	rng   *rand.Rand
}

func NewService(s *store.Store) *Service {
	return &Service{
		store: s,
		state: s.Load(),
		now:   time.Now,
		rng:   rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithClock overrides the time source (tests drive date sequences).
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// WithRand overrides the randomness source.
func (s *Service) WithRand(rng *rand.Rand) *Service {
	s.rng = rng
	return s
}

func (s *Service) State() *store.State { return s.state }
func (s *Service) Store() *store.Store { return s.store }
func (s *Service) Now() time.Time      { return s.now() }
func (s *Service) Rand() *rand.Rand    { return s.rng }

// Today returns the current day key.
func (s *Service) Today() string { return store.Day(s.now()) }

// DayNumber is today's 1-based count since the start date.
func (s *Service) DayNumber() int {
	return DayNumber(s.state.StartDate, s.now())
}

// Save persists the current state. Best-effort: the caller decides how
// loudly to report a failure.
func (s *Service) Save() error {
	return s.store.Save(s.state)
}

// Adopt replaces the whole state (import) and persists it.
func (s *Service) Adopt(st *store.State) error {
	s.state = st
	return s.Save()
}

// Reset backs up, replaces state with defaults, and persists.
func (s *Service) Reset() (string, error) {
	fresh, backup, err := s.store.Reset(s.state)
	if err != nil {
		return "", err
	}
	s.state = fresh
	return backup, nil
}
