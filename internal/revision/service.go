package revision

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/studyloop/backend/internal/models"
)

// Service implements the revision engine's four operations over the store.
// All state is keyed by user id; callers are expected to run at most one
// mutating request per user at a time.
type Service struct {
	store *Store
	now   func() time.Time
}

func NewService(store *Store) *Service {
	return &Service{store: store, now: time.Now}
}

// SetClock overrides the time source. Tests use this to pin "now".
func (s *Service) SetClock(now func() time.Time) {
	s.now = now
}

// ── Diagnostic Submission ───────────────────────────────

// SubmitDiagnostic records a graded diagnostic, flags the topic as a weak
// concept when it qualifies, and schedules the day 1/3/7 revision cohort
// anchored on the diagnostic's completion time. The cohort write is
// logically atomic: the first storage failure aborts the call.
func (s *Service) SubmitDiagnostic(ctx context.Context, userID int64, req models.SubmitDiagnosticRequest) (*models.SubmitDiagnosticResponse, error) {
	req.Topic = strings.TrimSpace(req.Topic)
	req.Subject = strings.TrimSpace(req.Subject)

	if req.Topic == "" {
		return nil, validationErr("topic", "required")
	}
	if req.Subject == "" {
		return nil, validationErr("subject", "required")
	}
	if req.Score < 0 || req.Score > 100 {
		return nil, validationErr("score", "must be between 0 and 100")
	}
	if req.Confidence < 1 || req.Confidence > 5 {
		return nil, validationErr("confidence", "must be between 1 and 5")
	}
	if req.TotalCount < 0 || req.CorrectCount < 0 || req.CorrectCount > req.TotalCount {
		return nil, validationErr("correctCount", "must be between 0 and totalCount")
	}

	completedAt := s.now()
	if req.CompletedAt != nil {
		completedAt = *req.CompletedAt
	}

	diagnostic := models.DiagnosticResult{
		ID:           uuid.NewString(),
		UserID:       userID,
		Topic:        req.Topic,
		Subject:      req.Subject,
		Score:        req.Score,
		CorrectCount: req.CorrectCount,
		TotalCount:   req.TotalCount,
		Confidence:   req.Confidence,
		CompletedAt:  completedAt,
	}

	if err := s.store.SaveDiagnostic(ctx, diagnostic); err != nil {
		return nil, fmt.Errorf("save diagnostic: %w", err)
	}

	weakCreated := false
	if IsWeak(req.Score, req.Confidence) {
		concept := models.WeakConcept{
			ID:         uuid.NewString(),
			UserID:     userID,
			Topic:      req.Topic,
			Subject:    req.Subject,
			Score:      req.Score,
			Confidence: req.Confidence,
			CreatedAt:  s.now(),
		}
		if err := s.store.SaveWeakConcept(ctx, concept); err != nil {
			return nil, fmt.Errorf("save weak concept: %w", err)
		}
		weakCreated = true
	}

	revisions := ScheduleRevisions(userID, req.Topic, req.Subject, completedAt)
	for _, r := range revisions {
		if err := s.store.SaveRevision(ctx, r); err != nil {
			return nil, fmt.Errorf("save revision cohort: %w", err)
		}
	}

	return &models.SubmitDiagnosticResponse{
		Diagnostic:         diagnostic,
		WeakConceptCreated: weakCreated,
		Revisions:          revisions,
	}, nil
}

// ── Due Revisions ───────────────────────────────────────

// DueRevisionsFor returns the user's open revisions whose scheduled calendar
// date is on or before asOf, in insertion order.
func (s *Service) DueRevisionsFor(ctx context.Context, userID int64, asOf time.Time) ([]models.Revision, error) {
	revisions, err := s.store.ListRevisions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list revisions: %w", err)
	}
	return DueRevisions(revisions, asOf), nil
}

// ── Revision Completion ─────────────────────────────────

// CompleteRevision marks a revision completed with the given recall score
// and folds the score into the topic's progress record. Re-completing an
// already-completed revision is allowed and overwrites the previous recall
// score and completion time.
func (s *Service) CompleteRevision(ctx context.Context, userID int64, revisionID string, recallScore int) (*models.CompleteRevisionResponse, error) {
	if recallScore < 1 || recallScore > 10 {
		return nil, validationErr("recallScore", "must be between 1 and 10")
	}

	rev, err := s.store.GetRevision(ctx, userID, revisionID)
	if err != nil {
		return nil, fmt.Errorf("get revision: %w", err)
	}
	if rev == nil {
		return nil, ErrNotFound
	}

	now := s.now()
	rev.Completed = true
	rev.RecallScore = &recallScore
	rev.CompletedAt = &now

	if err := s.store.SaveRevision(ctx, *rev); err != nil {
		return nil, fmt.Errorf("save revision: %w", err)
	}

	existing, err := s.store.GetProgress(ctx, userID, rev.Topic)
	if err != nil {
		return nil, fmt.Errorf("get progress: %w", err)
	}
	if existing == nil {
		existing = &models.ProgressRecord{
			UserID:       userID,
			Topic:        rev.Topic,
			MasteryLevel: models.MasteryWeak,
		}
	}

	progress := UpdateProgress(*existing, rev.RevisionDay, recallScore, now)
	if err := s.store.SaveProgress(ctx, progress); err != nil {
		return nil, fmt.Errorf("save progress: %w", err)
	}

	return &models.CompleteRevisionResponse{
		Revision: *rev,
		Progress: progress,
	}, nil
}

// ── Dashboard ───────────────────────────────────────────

// DashboardStats computes the user's headline numbers as of now.
func (s *Service) DashboardStats(ctx context.Context, userID int64) (*models.DashboardStats, error) {
	weakConcepts, err := s.store.ListWeakConcepts(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list weak concepts: %w", err)
	}
	revisions, err := s.store.ListRevisions(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list revisions: %w", err)
	}
	progress, err := s.store.ListProgress(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list progress: %w", err)
	}

	stats := BuildStats(weakConcepts, revisions, progress, s.now())
	return &stats, nil
}
