package journal

import (
	"encoding/json"
	"fmt"
)

// Entry is the journal attached to a day log: a free-text reflection
// plus answers to the configured questions.
type Entry struct {
	FreeText string   `json:"free_text"`
	Answers  []Answer `json:"answers"`
}

func (e Entry) IsZero() bool {
	return e.FreeText == "" && len(e.Answers) == 0
}

// entryJSON avoids recursing into Entry's own UnmarshalJSON.
type entryJSON struct {
	FreeText string   `json:"free_text"`
	Answers  []Answer `json:"answers"`
}

// UnmarshalJSON accepts the structured form and the legacy plain-string
// form (day logs used to store the journal as a single string).
func (e *Entry) UnmarshalJSON(data []byte) error {
	var legacy string
	if err := json.Unmarshal(data, &legacy); err == nil {
		*e = Entry{FreeText: legacy}
		return nil
	}
	var in entryJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return fmt.Errorf("journal entry: %w", err)
	}
	*e = Entry(in)
	return nil
}

// Validate checks every answer against the question list it indexes.
func (e Entry) Validate(questions []Question) error {
	for _, a := range e.Answers {
		if a.QuestionIndex < 0 || a.QuestionIndex >= len(questions) {
			return fmt.Errorf("answer references unknown question %d", a.QuestionIndex)
		}
		if err := a.Validate(questions[a.QuestionIndex]); err != nil {
			return err
		}
	}
	return nil
}
