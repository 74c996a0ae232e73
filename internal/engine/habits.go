package engine

import (
	"errors"
	"strings"

	"habitbuilder/internal/store"
)

// AddHabit appends a habit. Names are unique and points must be a
// positive integer, enforced here at the input boundary.
func (s *Service) AddHabit(name string, points int) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("habit name is required")
	}
	if points <= 0 {
		return ErrInvalidPoints
	}
	if _, ok := s.state.Habit(name); ok {
		return ErrHabitExists
	}
	s.state.Habits = append(s.state.Habits, store.Habit{Name: name, Points: points})
	return s.Save()
}

// UpdateHabit renames and/or re-points an existing habit. Logged days
// keep the old name; history is not rewritten.
func (s *Service) UpdateHabit(name, newName string, points int) error {
	newName = strings.TrimSpace(newName)
	if newName == "" {
		return errors.New("habit name is required")
	}
	if points <= 0 {
		return ErrInvalidPoints
	}
	h, ok := s.state.Habit(name)
	if !ok {
		return ErrHabitNotFound
	}
	if newName != name {
		if _, taken := s.state.Habit(newName); taken {
			return ErrHabitExists
		}
	}
	h.Name = newName
	h.Points = points
	if enabled, ok := s.state.Reminders.HabitsEnabled[name]; ok && newName != name {
		delete(s.state.Reminders.HabitsEnabled, name)
		s.state.Reminders.HabitsEnabled[newName] = enabled
	}
	return s.Save()
}

// RemoveHabit drops a habit from the list and its reminder toggle.
func (s *Service) RemoveHabit(name string) error {
	kept := s.state.Habits[:0]
	found := false
	for _, h := range s.state.Habits {
		if h.Name == name {
			found = true
			continue
		}
		kept = append(kept, h)
	}
	if !found {
		return ErrHabitNotFound
	}
	s.state.Habits = kept
	delete(s.state.Reminders.HabitsEnabled, name)
	return s.Save()
}

// HabitReminderEnabled reports the per-habit reminder toggle; habits
// are enabled unless explicitly switched off.
func (s *Service) HabitReminderEnabled(name string) bool {
	enabled, ok := s.state.Reminders.HabitsEnabled[name]
	if !ok {
		return true
	}
	return enabled
}

// SetHabitReminder flips the per-habit reminder toggle.
func (s *Service) SetHabitReminder(name string, enabled bool) error {
	if _, ok := s.state.Habit(name); !ok {
		return ErrHabitNotFound
	}
	s.state.Reminders.HabitsEnabled[name] = enabled
	return s.Save()
}
