package engine

import (
	"fmt"

	"habitbuilder/internal/journal"
)

// AddQuestion appends a journal question after validation.
func (s *Service) AddQuestion(q journal.Question) error {
	if err := q.Validate(); err != nil {
		return err
	}
	s.state.Reminders.JournalQuestions = append(s.state.Reminders.JournalQuestions, q)
	return s.Save()
}

// UpdateQuestion replaces the question at idx. Position identifies the
// question, so the index must already exist.
func (s *Service) UpdateQuestion(idx int, q journal.Question) error {
	questions := s.state.Reminders.JournalQuestions
	if idx < 0 || idx >= len(questions) {
		return fmt.Errorf("no question at index %d", idx)
	}
	if err := q.Validate(); err != nil {
		return err
	}
	questions[idx] = q
	return s.Save()
}

// RemoveQuestion deletes the question at idx. Answers in history keep
// their indices; display resolves what it can.
func (s *Service) RemoveQuestion(idx int) error {
	questions := s.state.Reminders.JournalQuestions
	if idx < 0 || idx >= len(questions) {
		return fmt.Errorf("no question at index %d", idx)
	}
	s.state.Reminders.JournalQuestions = append(questions[:idx], questions[idx+1:]...)
	return s.Save()
}
