package journal

import (
	"errors"
	"fmt"
	"strings"
)

// QuestionType selects the answer widget and the shape of the stored answer.
type QuestionType string

const (
	// TypeFreeText takes an open text answer.
	TypeFreeText QuestionType = "FreeText"
	// TypeMultipleChoice takes exactly one of the question's options.
	TypeMultipleChoice QuestionType = "MultipleChoice"
	// TypeMultipleChoiceOrText takes one option; picking the trailing
	// "Other" option requires an accompanying text answer.
	TypeMultipleChoiceOrText QuestionType = "MultipleChoiceOrText"
)

func (t QuestionType) IsValid() bool {
	switch t {
	case TypeFreeText, TypeMultipleChoice, TypeMultipleChoiceOrText:
		return true
	default:
		return false
	}
}

func ParseQuestionType(input string) (QuestionType, error) {
	t := QuestionType(strings.TrimSpace(input))
	if !t.IsValid() {
		return "", fmt.Errorf("invalid question type: %q", input)
	}
	return t, nil
}

// Question is one journal prompt. Questions are identified by their
// position in the configured list, so ordering is significant.
type Question struct {
	Text    string       `json:"text"`
	Type    QuestionType `json:"type"`
	Options []string     `json:"options"`
}

func (q Question) Validate() error {
	if strings.TrimSpace(q.Text) == "" {
		return errors.New("question text is required")
	}
	if !q.Type.IsValid() {
		return fmt.Errorf("invalid question type: %q", q.Type)
	}
	switch q.Type {
	case TypeFreeText:
		if len(q.Options) > 0 {
			return errors.New("free-text questions take no options")
		}
	case TypeMultipleChoice, TypeMultipleChoiceOrText:
		if len(q.Options) == 0 {
			return errors.New("choice questions require at least one option")
		}
	}
	return nil
}
