package engine

import (
	"fmt"

	"habitbuilder/internal/journal"
	"habitbuilder/internal/store"
)

// MotivationalMessages is the pool shown after a successful submission.
var MotivationalMessages = []string{
	"Great job! Keep building those habits!",
	"You're making progress every day!",
	"Consistency is key. Keep it up!",
	"Small steps lead to big changes!",
	"You're one day closer to your goals!",
}

// SubmitInput is one day's habit log as entered by the user.
type SubmitInput struct {
	Completed map[string]bool
	Energy    int
}

// SubmitResult reports what a submission earned.
type SubmitResult struct {
	Date        string
	DayNumber   int
	Completion  int
	Points      int
	StreakBonus int
	Total       int
	Streak      int
	Events      []Event
	Message     string
}

// SubmitLog runs the daily submission: reject if today is already
// logged, score the habits, apply the streak rule, roll the totals
// forward, record level/milestone events, persist the new day log with
// an empty journal (filled in afterwards), and save.
func (s *Service) SubmitLog(input SubmitInput) (*SubmitResult, error) {
	today := s.Today()
	if s.state.HasLog(today) {
		return nil, ErrAlreadyLogged
	}

	energy := input.Energy
	if energy < 1 || energy > 10 {
		energy = store.DefaultEnergy
	}

	log := &store.DayLog{
		DayNumber:  s.DayNumber(),
		Completion: store.Percent(CompletionPercent(input.Completed)),
		Habits:     input.Completed,
		Energy:     store.Energy(energy),
	}

	earned := CalculatePoints(log, s.state.Habits)
	bonus := UpdateStreak(s.state, today)
	total := earned + bonus

	s.state.TotalPoints += total
	events := UpdateLevelsAndMilestones(s.state)

	log.Points = total
	log.StreakBonus = bonus
	s.state.DayLogs[today] = log

	if err := s.Save(); err != nil {
		return nil, err
	}

	return &SubmitResult{
		Date:        today,
		DayNumber:   log.DayNumber,
		Completion:  int(log.Completion),
		Points:      earned,
		StreakBonus: bonus,
		Total:       total,
		Streak:      s.state.Streak,
		Events:      events,
		Message:     MotivationalMessages[s.rng.Intn(len(MotivationalMessages))],
	}, nil
}

// SaveJournal attaches a journal entry to today's log. Submission must
// come first, and every answer must validate against the configured
// questions.
func (s *Service) SaveJournal(entry journal.Entry) error {
	log, ok := s.state.DayLogs[s.Today()]
	if !ok {
		return ErrNoLogToday
	}
	if err := entry.Validate(s.state.Reminders.JournalQuestions); err != nil {
		return err
	}
	log.Journal = entry
	return s.Save()
}

// AttachAudio records the clip played for today's log.
func (s *Service) AttachAudio(ref string) error {
	log, ok := s.state.DayLogs[s.Today()]
	if !ok {
		return ErrNoLogToday
	}
	log.AudioPlayed = ref
	return s.Save()
}

// Event display helpers live with the engine so every surface
// celebrates the same way.

func (e Event) String() string {
	switch e.Kind {
	case EventLevelUp:
		return fmt.Sprintf("You reached Level %d!", e.Value)
	case EventMilestone:
		return fmt.Sprintf("You reached %d points!", e.Value)
	default:
		return ""
	}
}
