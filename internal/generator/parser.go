package generator

import (
	"encoding/json"
	"fmt"
	"strings"
)

type GeneratedQuiz struct {
	Questions []GeneratedQuestion `json:"questions"`
}

type GeneratedQuestion struct {
	Prompt          string            `json:"prompt"`
	Choices         []GeneratedChoice `json:"choices"`
	CorrectChoiceID string            `json:"correctChoiceId"`
	Explanation     string            `json:"explanation"`
}

type GeneratedChoice struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", strings.Join(e.Errors, "; "))
}

func ParseResponse(responseBody string) (*GeneratedQuiz, error) {
	cleaned := stripCodeFences(responseBody)

	var quiz GeneratedQuiz
	if err := json.Unmarshal([]byte(cleaned), &quiz); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}

	if err := validateQuiz(&quiz); err != nil {
		return nil, err
	}

	return &quiz, nil
}

func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```json") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimSpace(s)
	} else if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSpace(s)
	}
	if strings.HasSuffix(s, "```") {
		s = strings.TrimSuffix(s, "```")
		s = strings.TrimSpace(s)
	}
	return s
}

var validChoiceIDs = map[string]bool{"A": true, "B": true, "C": true, "D": true}

func validateQuiz(quiz *GeneratedQuiz) error {
	var errs []string

	if len(quiz.Questions) == 0 {
		errs = append(errs, "quiz has no questions")
	}

	for i, q := range quiz.Questions {
		if strings.TrimSpace(q.Prompt) == "" {
			errs = append(errs, fmt.Sprintf("question %d: empty prompt", i))
		}
		if len(q.Choices) != 4 {
			errs = append(errs, fmt.Sprintf("question %d: has %d choices, want 4", i, len(q.Choices)))
		}

		seen := map[string]bool{}
		correctFound := false
		for _, c := range q.Choices {
			if !validChoiceIDs[c.ID] {
				errs = append(errs, fmt.Sprintf("question %d: invalid choice id %q", i, c.ID))
			}
			if seen[c.ID] {
				errs = append(errs, fmt.Sprintf("question %d: duplicate choice id %q", i, c.ID))
			}
			seen[c.ID] = true
			if strings.TrimSpace(c.Text) == "" {
				errs = append(errs, fmt.Sprintf("question %d: choice %s has empty text", i, c.ID))
			}
			if c.ID == q.CorrectChoiceID {
				correctFound = true
			}
		}
		if !correctFound {
			errs = append(errs, fmt.Sprintf("question %d: correct choice %q not among choices", i, q.CorrectChoiceID))
		}
		if strings.TrimSpace(q.Explanation) == "" {
			errs = append(errs, fmt.Sprintf("question %d: empty explanation", i))
		}
	}

	if len(errs) > 0 {
		return &ValidationError{Errors: errs}
	}
	return nil
}
