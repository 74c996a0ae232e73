package store

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"habitbuilder/internal/journal"
)

// DateFormat is the calendar-day key used throughout the document.
const DateFormat = "2006-01-02"

// Day formats t as a day key.
func Day(t time.Time) string {
	return t.Format(DateFormat)
}

// Habit is one trackable habit. Names are unique within the list and
// day logs reference habits by name.
type Habit struct {
	Name   string `json:"name"`
	Points int    `json:"points"`
}

// DefaultEnergy substitutes for a missing or non-numeric rating.
const DefaultEnergy = 5

// Energy is a 1-10 rating. Older documents stored it as a string, so
// decoding accepts both forms; garbage becomes the default.
type Energy int

func (e *Energy) UnmarshalJSON(data []byte) error {
	if n, ok := lenientInt(data); ok {
		*e = Energy(n)
	} else {
		*e = DefaultEnergy
	}
	return nil
}

// Rating clamps to the usable range, substituting the default for
// missing (zero) or out-of-range values.
func (e Energy) Rating() int {
	if e < 1 || e > 10 {
		return DefaultEnergy
	}
	return int(e)
}

// Percent is a 0-100 completion figure with the same lenient decoding
// as Energy.
type Percent int

func (p *Percent) UnmarshalJSON(data []byte) error {
	n, _ := lenientInt(data)
	*p = Percent(n)
	return nil
}

func lenientInt(data []byte) (int, bool) {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		return n, true
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return n, true
		}
	}
	return 0, false
}

// DayLog is the record for a single calendar day. It is written once
// on submission; only the journal entry and the audio reference are
// attached later.
type DayLog struct {
	DayNumber   int             `json:"DayNumber"`
	Completion  Percent         `json:"Completion"`
	Habits      map[string]bool `json:"Habits"`
	Energy      Energy          `json:"Energy"`
	Journal     journal.Entry   `json:"Journal"`
	Points      int             `json:"Points"`
	StreakBonus int             `json:"StreakBonus"`
	AudioPlayed string          `json:"AudioPlayed,omitempty"`
}

// AudioPlayback tracks clip rotation so the same category or file is
// not repeated until the pool is exhausted.
type AudioPlayback struct {
	Categories      []string            `json:"categories"`
	CategoryHistory map[string]string   `json:"category_history"`
	FileHistory     map[string][]string `json:"file_history"`
}

// Notification is one entry in the capped reminder history.
type Notification struct {
	Timestamp string `json:"timestamp"`
	Type      string `json:"type"`
	Message   string `json:"message"`
}

// NotificationTimeFormat is the display timestamp in history entries.
const NotificationTimeFormat = "2006-01-02 15:04"

// MaxNotificationHistory caps the reminder history; oldest entries are
// evicted first.
const MaxNotificationHistory = 50

// ReminderSettings configures the daily reminder and holds its
// bookkeeping (snooze window, last known streak, history) plus the
// journal question definitions.
type ReminderSettings struct {
	Enabled             bool               `json:"enabled"`
	Time                string             `json:"time"`
	HabitsEnabled       map[string]bool    `json:"habits_enabled"`
	SnoozeUntil         int64              `json:"snooze_until"`
	LastStreak          int                `json:"last_streak"`
	LastReminder        int64              `json:"last_reminder"`
	NotificationHistory []Notification     `json:"notification_history"`
	JournalQuestions    []journal.Question `json:"journal_questions"`
}

// State is the whole persisted document.
type State struct {
	StartDate     string             `json:"start_date"`
	TotalPoints   int                `json:"total_points"`
	CurrentLevel  int                `json:"current_level"`
	Streak        int                `json:"streak"`
	LastLogDate   string             `json:"last_log_date"`
	Milestones    []int              `json:"milestones"`
	DayLogs       map[string]*DayLog `json:"day_logs"`
	Habits        []Habit            `json:"habits"`
	AudioPlayback AudioPlayback      `json:"audio_playback"`
	Reminders     ReminderSettings   `json:"reminder_settings"`
}

// HasLog reports whether a log exists for the given day key.
func (s *State) HasLog(date string) bool {
	_, ok := s.DayLogs[date]
	return ok
}

// Habit returns the habit with the given name, if present.
func (s *State) Habit(name string) (*Habit, bool) {
	for i := range s.Habits {
		if s.Habits[i].Name == name {
			return &s.Habits[i], true
		}
	}
	return nil, false
}

// HabitPoints returns the name → points table used by scoring.
func (s *State) HabitPoints() map[string]int {
	table := make(map[string]int, len(s.Habits))
	for _, h := range s.Habits {
		table[h.Name] = h.Points
	}
	return table
}

// HasMilestone reports whether the threshold was already recorded.
func (s *State) HasMilestone(threshold int) bool {
	for _, m := range s.Milestones {
		if m == threshold {
			return true
		}
	}
	return false
}

// AppendNotification appends a history entry, evicting the oldest once
// the cap is reached.
func (s *State) AppendNotification(n Notification) {
	hist := s.Reminders.NotificationHistory
	if len(hist) >= MaxNotificationHistory {
		hist = hist[len(hist)-MaxNotificationHistory+1:]
	}
	s.Reminders.NotificationHistory = append(hist, n)
}
