package revision

import (
	"time"

	"github.com/studyloop/backend/internal/models"
)

// StreakCap bounds the streak metric. The streak is a capped count of
// completed revisions, not a consecutive-day calculation — no gap detection.
const StreakCap = 7

// Streak returns the motivational streak value for a completed-revision
// count: min(completed, StreakCap).
func Streak(completedCount int) int {
	if completedCount > StreakCap {
		return StreakCap
	}
	return completedCount
}

// BuildStats derives the four dashboard headline numbers from a user's
// stored state. MasteryProgress counts distinct progress records (topics
// touched), not an average mastery score.
func BuildStats(weakConcepts []models.WeakConcept, revisions []models.Revision, progress []models.ProgressRecord, asOf time.Time) models.DashboardStats {
	completed := 0
	for _, r := range revisions {
		if r.Completed {
			completed++
		}
	}

	return models.DashboardStats{
		WeakConceptsCount:      len(weakConcepts),
		UpcomingRevisionsCount: len(DueRevisions(revisions, asOf)),
		MasteryProgress:        len(progress),
		Streak:                 Streak(completed),
	}
}
