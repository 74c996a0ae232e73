package engine

import "errors"

var (
	// ErrAlreadyLogged rejects a second submission for the same day.
	ErrAlreadyLogged = errors.New("today's habits are already logged")
	// ErrNoLogToday rejects journal/audio attachment before submission.
	ErrNoLogToday = errors.New("no log submitted for today yet")
	// ErrHabitExists rejects a duplicate habit name.
	ErrHabitExists = errors.New("habit already exists")
	// ErrHabitNotFound reports an unknown habit name.
	ErrHabitNotFound = errors.New("habit not found")
	// ErrInvalidPoints rejects non-positive habit point values.
	ErrInvalidPoints = errors.New("habit points must be a positive integer")
)
