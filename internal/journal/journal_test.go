package journal

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestAnswerJSONShapes(t *testing.T) {
	cases := []struct {
		name   string
		answer Answer
		want   string
	}{
		{"free text", FreeTextAnswer(0, "a good day"), `{"question_idx":0,"text":"a good day"}`},
		{"single choice", ChoiceAnswer(1, 2), `{"question_idx":1,"selected":2}`},
		{"choice with text", ChoiceOrTextAnswer(1, 3, "climbing"), `{"question_idx":1,"selected":3,"text":"climbing"}`},
	}
	for _, c := range cases {
		data, err := json.Marshal(c.answer)
		if err != nil {
			t.Fatalf("%s: marshal: %v", c.name, err)
		}
		if string(data) != c.want {
			t.Fatalf("%s: got %s, want %s", c.name, data, c.want)
		}

		var back Answer
		if err := json.Unmarshal(data, &back); err != nil {
			t.Fatalf("%s: unmarshal: %v", c.name, err)
		}
		if back != c.answer {
			t.Fatalf("%s: round trip %+v, want %+v", c.name, back, c.answer)
		}
	}
}

func TestAnswerKindInferredFromPresence(t *testing.T) {
	var a Answer
	if err := json.Unmarshal([]byte(`{"question_idx":2,"selected":1}`), &a); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if a.Kind != KindSingleChoice || a.Selected != 1 {
		t.Fatalf("selected-only answer=%+v, want single choice 1", a)
	}

	if err := json.Unmarshal([]byte(`{"question_idx":2,"text":"hi"}`), &a); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if a.Kind != KindFreeText || a.Text != "hi" {
		t.Fatalf("text-only answer=%+v, want free text", a)
	}
}

func TestAnswerValidation(t *testing.T) {
	freeText := Question{Text: "How was your day?", Type: TypeFreeText}
	choice := Question{Text: "Mood?", Type: TypeMultipleChoice, Options: []string{"Good", "Bad"}}
	orText := Question{
		Text:    "What did you learn?",
		Type:    TypeMultipleChoiceOrText,
		Options: []string{"New skill", "Other"},
	}

	if err := FreeTextAnswer(0, "fine").Validate(freeText); err != nil {
		t.Fatalf("free text: %v", err)
	}
	if err := FreeTextAnswer(0, "   ").Validate(freeText); err == nil {
		t.Fatalf("blank free text should fail")
	}
	if err := ChoiceAnswer(0, 1).Validate(freeText); err == nil {
		t.Fatalf("choice answer to free-text question should fail")
	}

	if err := ChoiceAnswer(0, 1).Validate(choice); err != nil {
		t.Fatalf("choice: %v", err)
	}
	if err := ChoiceAnswer(0, 2).Validate(choice); err == nil {
		t.Fatalf("out-of-range option should fail")
	}

	if err := ChoiceAnswer(0, 0).Validate(orText); err != nil {
		t.Fatalf("non-Other option without text: %v", err)
	}
	if err := ChoiceAnswer(0, 1).Validate(orText); err == nil {
		t.Fatalf("Other option without text should fail")
	}
	if err := ChoiceOrTextAnswer(0, 1, "rust").Validate(orText); err != nil {
		t.Fatalf("Other option with text: %v", err)
	}
}

func TestQuestionValidation(t *testing.T) {
	if err := (Question{Text: "", Type: TypeFreeText}).Validate(); err == nil {
		t.Fatalf("blank question text should fail")
	}
	if err := (Question{Text: "Q", Type: "Essay"}).Validate(); err == nil {
		t.Fatalf("unknown type should fail")
	}
	if err := (Question{Text: "Q", Type: TypeMultipleChoice}).Validate(); err == nil {
		t.Fatalf("choice question without options should fail")
	}
	if err := (Question{Text: "Q", Type: TypeFreeText, Options: []string{"a"}}).Validate(); err == nil {
		t.Fatalf("free-text question with options should fail")
	}
	if err := (Question{Text: "Q", Type: TypeMultipleChoice, Options: []string{"a"}}).Validate(); err != nil {
		t.Fatalf("valid question: %v", err)
	}
}

func TestParseQuestionType(t *testing.T) {
	if _, err := ParseQuestionType(" MultipleChoice "); err != nil {
		t.Fatalf("trimmed parse: %v", err)
	}
	if _, err := ParseQuestionType("multiplechoice"); err == nil {
		t.Fatalf("types are case-sensitive")
	}
}

func TestEntryLegacyStringForm(t *testing.T) {
	var e Entry
	if err := json.Unmarshal([]byte(`"just a note"`), &e); err != nil {
		t.Fatalf("unmarshal legacy: %v", err)
	}
	if e.FreeText != "just a note" || len(e.Answers) != 0 {
		t.Fatalf("legacy entry=%+v", e)
	}

	data, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(data), `"free_text":"just a note"`) {
		t.Fatalf("re-marshal did not use the structured form: %s", data)
	}
}

func TestEntryValidateChecksIndices(t *testing.T) {
	questions := []Question{
		{Text: "How was your day?", Type: TypeFreeText},
	}
	bad := Entry{Answers: []Answer{ChoiceAnswer(5, 0)}}
	if err := bad.Validate(questions); err == nil {
		t.Fatalf("answer to unknown question should fail")
	}
	good := Entry{Answers: []Answer{FreeTextAnswer(0, "fine")}}
	if err := good.Validate(questions); err != nil {
		t.Fatalf("valid entry: %v", err)
	}
}
