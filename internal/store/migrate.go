package store

import (
	"encoding/json"
	"fmt"
	"time"
)

// decode parses a document written by any prior version:
//
//  1. a legacy plain-string habit list becomes {name, points: 5} objects;
//  2. top-level keys missing from the current schema are filled in from
//     defaults (additive merge — existing keys are never overwritten);
//  3. nested audio_playback and journal_questions structures are seeded
//     when absent.
func decode(data []byte, now time.Time) (*State, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse progress: %w", err)
	}
	migrateLegacyHabits(raw)

	def := Default(now)
	defData, err := json.Marshal(def)
	if err != nil {
		return nil, err
	}
	var defRaw map[string]json.RawMessage
	if err := json.Unmarshal(defData, &defRaw); err != nil {
		return nil, err
	}
	for key, val := range defRaw {
		if _, ok := raw[key]; !ok {
			raw[key] = val
		}
	}

	merged, err := json.Marshal(raw)
	if err != nil {
		return nil, err
	}
	var st State
	if err := json.Unmarshal(merged, &st); err != nil {
		return nil, fmt.Errorf("parse progress: %w", err)
	}
	fillNested(&st, def)
	return &st, nil
}

// migrateLegacyHabits rewrites habits stored as ["name", ...] into the
// current object form with the historical default of 5 points.
func migrateLegacyHabits(raw map[string]json.RawMessage) {
	val, ok := raw["habits"]
	if !ok {
		return
	}
	var names []string
	if err := json.Unmarshal(val, &names); err != nil {
		return
	}
	habits := make([]Habit, 0, len(names))
	for _, name := range names {
		habits = append(habits, Habit{Name: name, Points: 5})
	}
	if data, err := json.Marshal(habits); err == nil {
		raw["habits"] = data
	}
}

// fillNested seeds sub-structures an older document may lack. The
// top-level merge only fills whole missing keys, so partially present
// aggregates still need their defaults.
func fillNested(st *State, def *State) {
	if st.Milestones == nil {
		st.Milestones = []int{}
	}
	if st.DayLogs == nil {
		st.DayLogs = map[string]*DayLog{}
	}
	if st.AudioPlayback.Categories == nil {
		st.AudioPlayback.Categories = def.AudioPlayback.Categories
	}
	if st.AudioPlayback.CategoryHistory == nil {
		st.AudioPlayback.CategoryHistory = map[string]string{}
	}
	if st.AudioPlayback.FileHistory == nil {
		st.AudioPlayback.FileHistory = map[string][]string{}
	}
	if st.Reminders.Time == "" {
		st.Reminders.Time = def.Reminders.Time
	}
	if st.Reminders.HabitsEnabled == nil {
		st.Reminders.HabitsEnabled = map[string]bool{}
	}
	if st.Reminders.NotificationHistory == nil {
		st.Reminders.NotificationHistory = []Notification{}
	}
	if st.Reminders.JournalQuestions == nil {
		st.Reminders.JournalQuestions = def.Reminders.JournalQuestions
	}
}
