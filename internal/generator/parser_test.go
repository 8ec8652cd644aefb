package generator

import (
	"errors"
	"strings"
	"testing"
)

const validQuizJSON = `{
  "questions": [
    {
      "prompt": "What is the SI unit of force?",
      "choices": [
        {"id": "A", "text": "Joule"},
        {"id": "B", "text": "Newton"},
        {"id": "C", "text": "Watt"},
        {"id": "D", "text": "Pascal"}
      ],
      "correctChoiceId": "B",
      "explanation": "Force is measured in newtons."
    }
  ]
}`

func TestParseResponseValid(t *testing.T) {
	quiz, err := ParseResponse(validQuizJSON)
	if err != nil {
		t.Fatalf("ParseResponse failed: %v", err)
	}

	if len(quiz.Questions) != 1 {
		t.Fatalf("parsed %d questions, want 1", len(quiz.Questions))
	}
	q := quiz.Questions[0]
	if q.CorrectChoiceID != "B" {
		t.Errorf("CorrectChoiceID = %q, want B", q.CorrectChoiceID)
	}
	if len(q.Choices) != 4 {
		t.Errorf("got %d choices, want 4", len(q.Choices))
	}
}

func TestParseResponseStripsCodeFences(t *testing.T) {
	fenced := "```json\n" + validQuizJSON + "\n```"

	quiz, err := ParseResponse(fenced)
	if err != nil {
		t.Fatalf("ParseResponse on fenced input failed: %v", err)
	}
	if len(quiz.Questions) != 1 {
		t.Errorf("parsed %d questions, want 1", len(quiz.Questions))
	}
}

func TestParseResponseRejectsMalformedJSON(t *testing.T) {
	if _, err := ParseResponse("not json at all"); err == nil {
		t.Error("ParseResponse accepted malformed JSON")
	}
}

func TestParseResponseValidation(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(string) string
		wantErr string
	}{
		{"empty questions", func(string) string { return `{"questions": []}` }, "no questions"},
		{"wrong correct id", func(s string) string { return strings.Replace(s, `"correctChoiceId": "B"`, `"correctChoiceId": "E"`, 1) }, "not among choices"},
		{"empty explanation", func(s string) string { return strings.Replace(s, `"Force is measured in newtons."`, `""`, 1) }, "empty explanation"},
		{"duplicate choice id", func(s string) string { return strings.Replace(s, `{"id": "C", "text": "Watt"}`, `{"id": "B", "text": "Watt"}`, 1) }, "duplicate choice id"},
	}

	for _, tc := range cases {
		_, err := ParseResponse(tc.mutate(validQuizJSON))
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Errorf("%s: err = %v, want ValidationError", tc.name, err)
			continue
		}
		if !strings.Contains(vErr.Error(), tc.wantErr) {
			t.Errorf("%s: error %q does not mention %q", tc.name, vErr.Error(), tc.wantErr)
		}
	}
}

func TestBuildQuizUserPrompt(t *testing.T) {
	prompt := BuildQuizUserPrompt("Thermodynamics", "Physics", "heat flows from hot to cold", 5)

	for _, want := range []string{"Thermodynamics", "Physics", "heat flows", "5 diagnostic questions"} {
		if !strings.Contains(prompt, want) {
			t.Errorf("prompt missing %q:\n%s", want, prompt)
		}
	}
}
