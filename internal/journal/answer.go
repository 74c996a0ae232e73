package journal

import (
	"encoding/json"
	"fmt"
	"strings"
)

// AnswerKind tags the payload shape of an Answer.
type AnswerKind int

const (
	KindFreeText AnswerKind = iota
	KindSingleChoice
	KindChoiceOrText
)

// Answer is one response, keyed to its question by position index.
// Exactly one payload shape applies per kind:
//
//	KindFreeText     — Text
//	KindSingleChoice — Selected
//	KindChoiceOrText — Selected, plus Text when the trailing "Other"
//	                   option was picked
type Answer struct {
	QuestionIndex int
	Kind          AnswerKind
	Selected      int
	Text          string
}

func FreeTextAnswer(idx int, text string) Answer {
	return Answer{QuestionIndex: idx, Kind: KindFreeText, Text: text}
}

func ChoiceAnswer(idx, selected int) Answer {
	return Answer{QuestionIndex: idx, Kind: KindSingleChoice, Selected: selected}
}

func ChoiceOrTextAnswer(idx, selected int, text string) Answer {
	return Answer{QuestionIndex: idx, Kind: KindChoiceOrText, Selected: selected, Text: text}
}

// answerJSON is the persisted shape. "selected" being present is what
// distinguishes choice answers from free text in older documents.
type answerJSON struct {
	QuestionIdx int     `json:"question_idx"`
	Selected    *int    `json:"selected,omitempty"`
	Text        *string `json:"text,omitempty"`
}

func (a Answer) MarshalJSON() ([]byte, error) {
	out := answerJSON{QuestionIdx: a.QuestionIndex}
	switch a.Kind {
	case KindFreeText:
		text := a.Text
		out.Text = &text
	case KindSingleChoice:
		sel := a.Selected
		out.Selected = &sel
	case KindChoiceOrText:
		sel := a.Selected
		out.Selected = &sel
		if a.Text != "" {
			text := a.Text
			out.Text = &text
		}
	default:
		return nil, fmt.Errorf("unknown answer kind: %d", a.Kind)
	}
	return json.Marshal(out)
}

func (a *Answer) UnmarshalJSON(data []byte) error {
	var in answerJSON
	if err := json.Unmarshal(data, &in); err != nil {
		return err
	}
	a.QuestionIndex = in.QuestionIdx
	switch {
	case in.Selected == nil:
		a.Kind = KindFreeText
		a.Selected = 0
		if in.Text != nil {
			a.Text = *in.Text
		}
	case in.Text == nil:
		a.Kind = KindSingleChoice
		a.Selected = *in.Selected
		a.Text = ""
	default:
		a.Kind = KindChoiceOrText
		a.Selected = *in.Selected
		a.Text = *in.Text
	}
	return nil
}

// Validate checks an answer against its question. The trailing option
// of a MultipleChoiceOrText question is the "Other" slot and requires
// accompanying text.
func (a Answer) Validate(q Question) error {
	switch q.Type {
	case TypeFreeText:
		if a.Kind != KindFreeText {
			return fmt.Errorf("question %d expects a free-text answer", a.QuestionIndex)
		}
		if strings.TrimSpace(a.Text) == "" {
			return fmt.Errorf("answer to %q is required", q.Text)
		}
	case TypeMultipleChoice:
		if a.Kind != KindSingleChoice {
			return fmt.Errorf("question %d expects a choice answer", a.QuestionIndex)
		}
		if a.Selected < 0 || a.Selected >= len(q.Options) {
			return fmt.Errorf("selected option %d out of range for %q", a.Selected, q.Text)
		}
	case TypeMultipleChoiceOrText:
		if a.Kind != KindSingleChoice && a.Kind != KindChoiceOrText {
			return fmt.Errorf("question %d expects a choice answer", a.QuestionIndex)
		}
		if a.Selected < 0 || a.Selected >= len(q.Options) {
			return fmt.Errorf("selected option %d out of range for %q", a.Selected, q.Text)
		}
		if a.Selected == len(q.Options)-1 && strings.TrimSpace(a.Text) == "" {
			return fmt.Errorf("%q requires text for the %q option", q.Text, q.Options[a.Selected])
		}
	default:
		return fmt.Errorf("invalid question type: %q", q.Type)
	}
	return nil
}
