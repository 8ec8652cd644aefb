package revision

import (
	"testing"
	"time"

	"github.com/studyloop/backend/internal/models"
)

func intPtr(n int) *int { return &n }

func TestComputeMasteryLevel(t *testing.T) {
	tests := []struct {
		name        string
		day1        *int
		day3        *int
		day7        *int
		revisionDay int
		want        models.MasteryLevel
	}{
		{"day1 at threshold", intPtr(60), nil, nil, 1, models.MasteryLearning},
		{"day1 below threshold", intPtr(50), nil, nil, 1, models.MasteryWeak},
		{"day3 with both thresholds met", intPtr(60), intPtr(70), nil, 3, models.MasteryImproving},
		{"day3 with weak day1", intPtr(50), intPtr(70), nil, 3, models.MasteryWeak},
		{"day3 with weak day3", intPtr(60), intPtr(60), nil, 3, models.MasteryWeak},
		{"day7 at threshold", intPtr(60), intPtr(70), intPtr(80), 7, models.MasteryMastered},
		{"day7 below threshold falls to improving", intPtr(60), intPtr(70), intPtr(79), 7, models.MasteryImproving},
		{"day7 with nothing on record", nil, nil, nil, 7, models.MasteryWeak},
		{"missing days count as zero", nil, nil, nil, 1, models.MasteryWeak},
	}

	for _, tt := range tests {
		existing := models.ProgressRecord{
			Day1Score: tt.day1,
			Day3Score: tt.day3,
			Day7Score: tt.day7,
		}
		got := ComputeMasteryLevel(existing, tt.revisionDay)
		if got != tt.want {
			t.Errorf("%s: ComputeMasteryLevel(day=%d) = %q, want %q", tt.name, tt.revisionDay, got, tt.want)
		}
	}
}

func TestUpdateProgressMergesSingleDay(t *testing.T) {
	now := time.Date(2026, 3, 13, 12, 0, 0, 0, time.UTC)
	existing := models.ProgressRecord{
		UserID:    1,
		Topic:     "Optics",
		Day1Score: intPtr(8),
	}

	updated := UpdateProgress(existing, 3, 6, now)

	if updated.Day1Score == nil || *updated.Day1Score != 8 {
		t.Errorf("Day1Score dropped by merge: %v", updated.Day1Score)
	}
	if updated.Day3Score == nil || *updated.Day3Score != 6 {
		t.Errorf("Day3Score = %v, want 6", updated.Day3Score)
	}
	if updated.Day7Score != nil {
		t.Errorf("Day7Score = %v, want nil", updated.Day7Score)
	}
	if !updated.UpdatedAt.Equal(now) {
		t.Errorf("UpdatedAt = %v, want %v", updated.UpdatedAt, now)
	}

	// Merge never mutates the prior record.
	if existing.Day3Score != nil {
		t.Error("UpdateProgress mutated its input")
	}
}

func TestUpdateProgressClassifiesFromPriorScores(t *testing.T) {
	now := time.Date(2026, 3, 13, 12, 0, 0, 0, time.UTC)

	// Day-3 score of 70 would qualify for improving if read post-merge, but
	// classification sees the pre-merge record where day3 is still absent.
	existing := models.ProgressRecord{Day1Score: intPtr(60)}
	updated := UpdateProgress(existing, 3, 70, now)

	if updated.MasteryLevel != models.MasteryWeak {
		t.Errorf("MasteryLevel = %q, want %q (new score not yet visible)", updated.MasteryLevel, models.MasteryWeak)
	}
	if updated.Day3Score == nil || *updated.Day3Score != 70 {
		t.Errorf("Day3Score = %v, want 70 (merge still happens)", updated.Day3Score)
	}

	// The next update sees the merged score.
	next := UpdateProgress(updated, 3, 70, now)
	if next.MasteryLevel != models.MasteryImproving {
		t.Errorf("second update MasteryLevel = %q, want %q", next.MasteryLevel, models.MasteryImproving)
	}
}

func TestUpdateProgressRecallScaleIsLiteral(t *testing.T) {
	// Recall scores come in on a 1-10 scale; a perfect 10 still sits far
	// below the 60-point learning cutoff.
	now := time.Date(2026, 3, 13, 12, 0, 0, 0, time.UTC)

	updated := UpdateProgress(models.ProgressRecord{}, 1, 10, now)
	if updated.MasteryLevel != models.MasteryWeak {
		t.Errorf("MasteryLevel = %q, want %q", updated.MasteryLevel, models.MasteryWeak)
	}

	next := UpdateProgress(updated, 1, 10, now)
	if next.MasteryLevel != models.MasteryWeak {
		t.Errorf("MasteryLevel after merged 10 = %q, want %q (10 < %d)", next.MasteryLevel, models.MasteryWeak, LearningDay1Min)
	}
}
