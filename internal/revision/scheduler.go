package revision

import (
	"time"

	"github.com/google/uuid"
	"github.com/studyloop/backend/internal/models"
)

// RevisionDays are the fixed day offsets of a revision cohort. Every graded
// diagnostic schedules exactly one revision per offset.
var RevisionDays = []int{1, 3, 7}

// ScheduleRevisions builds the cohort of three future reviews for a topic,
// anchored on the diagnostic's completion time. Scheduling is calendar-date
// arithmetic: anchor + N days, preserving time-of-day. No dedup is done
// against open revisions for the same topic — a repeat diagnostic creates an
// independent, overlapping cohort.
func ScheduleRevisions(userID int64, topic, subject string, anchor time.Time) []models.Revision {
	revisions := make([]models.Revision, 0, len(RevisionDays))
	for _, day := range RevisionDays {
		revisions = append(revisions, models.Revision{
			ID:            uuid.NewString(),
			UserID:        userID,
			Topic:         topic,
			Subject:       subject,
			RevisionDay:   day,
			ScheduledDate: anchor.AddDate(0, 0, day),
			Completed:     false,
		})
	}
	return revisions
}

// DueRevisions filters to revisions actionable as of the given instant.
// A revision is due when its scheduled calendar date is on or before the
// asOf calendar date and it has not been completed; time-of-day is ignored,
// so a revision scheduled for 3pm today is due from midnight. Input order is
// preserved.
func DueRevisions(revisions []models.Revision, asOf time.Time) []models.Revision {
	due := []models.Revision{}
	asOfDate := calendarDate(asOf)
	for _, r := range revisions {
		if r.Completed {
			continue
		}
		if !calendarDate(r.ScheduledDate).After(asOfDate) {
			due = append(due, r)
		}
	}
	return due
}

// calendarDate truncates an instant to its UTC calendar date.
func calendarDate(t time.Time) time.Time {
	year, month, day := t.UTC().Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}
