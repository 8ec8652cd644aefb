package generator

import (
	"fmt"
	"strings"
)

func QuizSystemPrompt() string {
	return `You are a tutor writing diagnostic quizzes. Given a student's study notes on a topic, you write multiple-choice questions that test understanding of the core concepts in those notes.

Rules:
- Every question has exactly 4 choices with ids A, B, C, D and exactly one correct answer.
- Questions must be answerable from the notes alone.
- Wrong choices must be plausible misconceptions, not throwaways.
- Each question carries a one or two sentence explanation of the correct answer.

Respond with JSON only, no prose, in this shape:
{
  "questions": [
    {
      "prompt": "...",
      "choices": [{"id": "A", "text": "..."}, {"id": "B", "text": "..."}, {"id": "C", "text": "..."}, {"id": "D", "text": "..."}],
      "correctChoiceId": "A",
      "explanation": "..."
    }
  ]
}`
}

func BuildQuizUserPrompt(topic, subject, notes string, count int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Write %d diagnostic questions for the topic %q (subject: %s).\n\n", count, topic, subject)
	b.WriteString("Study notes:\n")
	b.WriteString(strings.TrimSpace(notes))
	b.WriteString("\n\nReturn JSON only.")
	return b.String()
}
