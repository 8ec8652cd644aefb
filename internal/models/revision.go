package models

import "time"

// MasteryLevel classifies a topic's retention trajectory from its recall
// history. It is recomputed from the stored day scores on every update, so a
// topic can move backward as well as forward.
type MasteryLevel string

const (
	MasteryWeak      MasteryLevel = "weak"
	MasteryLearning  MasteryLevel = "learning"
	MasteryImproving MasteryLevel = "improving"
	MasteryMastered  MasteryLevel = "mastered"
)

// ── Core Structs ───────────────────────────────────────

// DiagnosticResult is the graded outcome of an initial quiz on a topic.
// Immutable once created; produced exactly once per diagnostic submission.
type DiagnosticResult struct {
	ID           string    `json:"id"`
	UserID       int64     `json:"userId"`
	Topic        string    `json:"topic"`
	Subject      string    `json:"subject"`
	Score        int       `json:"score"`
	CorrectCount int       `json:"correctCount"`
	TotalCount   int       `json:"totalCount"`
	Confidence   int       `json:"confidence"`
	CompletedAt  time.Time `json:"completedAt"`
}

// Revision is a scheduled spaced-repetition review. Created in a cohort of
// three (day 1, 3, 7) after each diagnostic; mutated only by completion.
type Revision struct {
	ID            string     `json:"id"`
	UserID        int64      `json:"userId"`
	Topic         string     `json:"topic"`
	Subject       string     `json:"subject"`
	RevisionDay   int        `json:"revisionDay"`
	ScheduledDate time.Time  `json:"scheduledDate"`
	Completed     bool       `json:"completed"`
	RecallScore   *int       `json:"recallScore,omitempty"`
	CompletedAt   *time.Time `json:"completedAt,omitempty"`
}

// ProgressRecord accumulates recall scores for one user+topic pair. Updates
// merge a single day field; previously recorded days are never dropped.
type ProgressRecord struct {
	UserID       int64        `json:"userId"`
	Topic        string       `json:"topic"`
	Day1Score    *int         `json:"day1Score,omitempty"`
	Day3Score    *int         `json:"day3Score,omitempty"`
	Day7Score    *int         `json:"day7Score,omitempty"`
	MasteryLevel MasteryLevel `json:"masteryLevel"`
	UpdatedAt    time.Time    `json:"updatedAt"`
}

// WeakConcept flags a topic needing remediation right after a diagnostic.
// One entry per qualifying event; entries are never pruned or deduplicated.
type WeakConcept struct {
	ID         string    `json:"id"`
	UserID     int64     `json:"userId"`
	Topic      string    `json:"topic"`
	Subject    string    `json:"subject"`
	Score      int       `json:"score"`
	Confidence int       `json:"confidence"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ── Request Types ─────────────────────────────────────

type SubmitDiagnosticRequest struct {
	Topic        string     `json:"topic"`
	Subject      string     `json:"subject"`
	Score        int        `json:"score"`
	CorrectCount int        `json:"correctCount"`
	TotalCount   int        `json:"totalCount"`
	Confidence   int        `json:"confidence"`
	CompletedAt  *time.Time `json:"completedAt,omitempty"`
}

type CompleteRevisionRequest struct {
	RecallScore int `json:"recallScore"`
}

// ── Response Types ────────────────────────────────────

type SubmitDiagnosticResponse struct {
	Diagnostic         DiagnosticResult `json:"diagnostic"`
	WeakConceptCreated bool             `json:"weakConceptCreated"`
	Revisions          []Revision       `json:"revisions"`
}

type CompleteRevisionResponse struct {
	Revision Revision       `json:"revision"`
	Progress ProgressRecord `json:"progress"`
}

type DueRevisionsResponse struct {
	Revisions []Revision `json:"revisions"`
	AsOf      time.Time  `json:"asOf"`
}

type DashboardStats struct {
	WeakConceptsCount      int `json:"weakConceptsCount"`
	UpcomingRevisionsCount int `json:"upcomingRevisionsCount"`
	MasteryProgress        int `json:"masteryProgress"`
	Streak                 int `json:"streak"`
}
