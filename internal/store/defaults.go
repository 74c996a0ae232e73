package store

import (
	"time"

	"habitbuilder/internal/journal"
)

// DefaultReminderTime is used when the configured time fails to parse.
const DefaultReminderTime = "20:00"

// Default returns the state seeded on first run.
func Default(now time.Time) *State {
	return &State{
		StartDate:    Day(now),
		TotalPoints:  0,
		CurrentLevel: 1,
		Streak:       0,
		LastLogDate:  "",
		Milestones:   []int{},
		DayLogs:      map[string]*DayLog{},
		Habits: []Habit{
			{Name: "Wake up early", Points: 5},
			{Name: "Exercise (20–30 min)", Points: 5},
			{Name: "Meditation (10–15 min)", Points: 4},
			{Name: "Read (20 minutes)", Points: 4},
			{Name: "Deep Work block (1–2 hrs)", Points: 6},
			{Name: "No mindless scrolling", Points: 5},
		},
		AudioPlayback: AudioPlayback{
			Categories:      []string{"English", "Hindi", "Other"},
			CategoryHistory: map[string]string{},
			FileHistory:     map[string][]string{},
		},
		Reminders: ReminderSettings{
			Enabled:             false,
			Time:                DefaultReminderTime,
			HabitsEnabled:       map[string]bool{},
			SnoozeUntil:         0,
			LastStreak:          0,
			LastReminder:        0,
			NotificationHistory: []Notification{},
			JournalQuestions:    DefaultJournalQuestions(),
		},
	}
}

// DefaultJournalQuestions seeds the journal prompts.
func DefaultJournalQuestions() []journal.Question {
	return []journal.Question{
		{
			Text:    "How was your day?",
			Type:    journal.TypeFreeText,
			Options: []string{},
		},
		{
			Text:    "What did you learn today?",
			Type:    journal.TypeMultipleChoiceOrText,
			Options: []string{"New skill", "Interesting fact", "Personal insight", "Other"},
		},
	}
}
