package reminder

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"habitbuilder/internal/store"
)

// SnoozeDuration defers a due reminder by one hour.
const SnoozeDuration = time.Hour

// Action is the outcome of a reminder firing.
type Action int

const (
	// ActionRescheduled means the reminder was suppressed (snoozed or
	// already logged) and re-armed for the configured daily time.
	ActionRescheduled Action = iota
	// ActionFired means a message should be delivered now.
	ActionFired
)

// FireResult carries the action and, when fired, the message.
type FireResult struct {
	Action  Action
	Message string
}

// ParseTimeOfDay parses an "HH:MM" 24h setting, falling back to the
// default reminder time on any malformed input so a bad setting never
// disables scheduling.
func ParseTimeOfDay(setting string) (hour, minute int) {
	parts := strings.SplitN(strings.TrimSpace(setting), ":", 2)
	if len(parts) == 2 {
		h, errH := strconv.Atoi(parts[0])
		m, errM := strconv.Atoi(parts[1])
		if errH == nil && errM == nil && h >= 0 && h < 24 && m >= 0 && m < 60 {
			return h, m
		}
	}
	return ParseTimeOfDay(store.DefaultReminderTime)
}

// NextFire computes the next occurrence of the configured time-of-day
// at or after now: today if the time has not passed yet, else tomorrow.
func NextFire(setting string, now time.Time) time.Time {
	hour, minute := ParseTimeOfDay(setting)
	next := time.Date(now.Year(), now.Month(), now.Day(), hour, minute, 0, 0, now.Location())
	if now.After(next) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}

// IsWeeklyReflectionDue reports whether now falls on the weekly
// reflection day (Sunday, the last day of the week).
func IsWeeklyReflectionDue(now time.Time) bool {
	return now.Weekday() == time.Sunday
}

// Scheduler decides what a due reminder should do against the shared
// state and persists its bookkeeping. Arming the actual timer belongs
// to a Runner (or the host environment).
type Scheduler struct {
	store *store.Store
	state *store.State
}

func NewScheduler(s *store.Store, st *store.State) *Scheduler {
	return &Scheduler{store: s, state: st}
}

// Next returns the next wake time per the settings.
func (s *Scheduler) Next(now time.Time) time.Time {
	return NextFire(s.state.Reminders.Time, now)
}

// OnFire handles a due reminder. Inside the snooze window or once
// today is logged it suppresses without touching state; otherwise it
// picks a message from the streak situation, updates the bookkeeping,
// appends to the capped history, persists, and reports ActionFired.
// The caller re-arms for the next day either way.
func (s *Scheduler) OnFire(now time.Time) FireResult {
	rs := &s.state.Reminders
	if now.Unix() < rs.SnoozeUntil {
		return FireResult{Action: ActionRescheduled}
	}
	if s.state.HasLog(store.Day(now)) {
		return FireResult{Action: ActionRescheduled}
	}

	message := s.message(now)

	rs.LastStreak = s.state.Streak
	rs.LastReminder = now.Unix()
	s.state.AppendNotification(store.Notification{
		Timestamp: now.Format(store.NotificationTimeFormat),
		Type:      "Daily Reminder",
		Message:   message,
	})
	_ = s.store.Save(s.state) // best-effort; the reminder still fires

	return FireResult{Action: ActionFired, Message: message}
}

func (s *Scheduler) message(now time.Time) string {
	streak := s.state.Streak
	rs := s.state.Reminders

	if streak == 0 && rs.LastStreak > 0 {
		return "Your streak was broken! Start a new one today!"
	}
	if streak == 0 && s.state.LastLogDate != "" {
		if last, err := time.Parse(store.DateFormat, s.state.LastLogDate); err == nil {
			missed := int(now.Sub(last).Hours() / 24)
			if missed > 1 {
				return fmt.Sprintf("You've missed %d days. It's never too late to restart!", missed)
			}
		}
	}
	return "Time to log your habits!"
}

// Snooze defers the next firing by an hour and persists.
func (s *Scheduler) Snooze(now time.Time) error {
	s.state.Reminders.SnoozeUntil = now.Add(SnoozeDuration).Unix()
	return s.store.Save(s.state)
}

// RecordWeeklyReflection appends a weekly-reflection history entry.
func (s *Scheduler) RecordWeeklyReflection(now time.Time) error {
	s.state.AppendNotification(store.Notification{
		Timestamp: now.Format(store.NotificationTimeFormat),
		Type:      "Weekly Reflection",
		Message:   "Time for weekly reflection!",
	})
	return s.store.Save(s.state)
}
