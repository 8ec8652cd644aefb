package revision

import (
	"time"

	"github.com/studyloop/backend/internal/models"
)

// Mastery thresholds. Recall scores are recorded on a 1-10 scale while these
// cutoffs assume 0-100, so in the revision-completion flow the comparison
// almost always falls through to weak. The comparison is kept literal
// pending product clarification on the intended scale.
const (
	MasteredDay7Min  = 80
	ImprovingDay3Min = 70
	LearningDay1Min  = 60
)

// ComputeMasteryLevel classifies a topic from the day scores already on
// record, gated by which revision day was just completed. Missing days count
// as zero. The classification is a pure function of the stored scores, not a
// state transition, so it can move backward between calls.
func ComputeMasteryLevel(existing models.ProgressRecord, revisionDay int) models.MasteryLevel {
	day1 := scoreOrZero(existing.Day1Score)
	day3 := scoreOrZero(existing.Day3Score)
	day7 := scoreOrZero(existing.Day7Score)

	switch {
	case revisionDay == 7 && day7 >= MasteredDay7Min:
		return models.MasteryMastered
	case revisionDay >= 3 && day3 >= ImprovingDay3Min && day1 >= LearningDay1Min:
		return models.MasteryImproving
	case revisionDay == 1 && day1 >= LearningDay1Min:
		return models.MasteryLearning
	default:
		return models.MasteryWeak
	}
}

// UpdateProgress merges one completed revision into a progress record:
// only the field for the completed revision day is overwritten, other day
// scores are preserved. The mastery level is classified from the scores on
// record before the new one is merged in — the just-submitted score only
// becomes visible to the next update.
func UpdateProgress(existing models.ProgressRecord, revisionDay, recallScore int, now time.Time) models.ProgressRecord {
	level := ComputeMasteryLevel(existing, revisionDay)

	updated := existing
	switch revisionDay {
	case 1:
		updated.Day1Score = &recallScore
	case 3:
		updated.Day3Score = &recallScore
	case 7:
		updated.Day7Score = &recallScore
	}
	updated.MasteryLevel = level
	updated.UpdatedAt = now
	return updated
}

func scoreOrZero(score *int) int {
	if score == nil {
		return 0
	}
	return *score
}
