package revision

import (
	"testing"
	"time"

	"github.com/studyloop/backend/internal/models"
)

func TestScheduleRevisionsCohort(t *testing.T) {
	anchor := time.Date(2026, 3, 10, 15, 30, 0, 0, time.UTC)

	revisions := ScheduleRevisions(42, "Thermodynamics", "Physics", anchor)

	if len(revisions) != 3 {
		t.Fatalf("ScheduleRevisions returned %d revisions, want 3", len(revisions))
	}

	wantDays := []int{1, 3, 7}
	for i, r := range revisions {
		if r.RevisionDay != wantDays[i] {
			t.Errorf("revisions[%d].RevisionDay = %d, want %d", i, r.RevisionDay, wantDays[i])
		}
		want := anchor.AddDate(0, 0, wantDays[i])
		if !r.ScheduledDate.Equal(want) {
			t.Errorf("revisions[%d].ScheduledDate = %v, want %v", i, r.ScheduledDate, want)
		}
		// Calendar-day arithmetic preserves time-of-day
		if r.ScheduledDate.Hour() != 15 || r.ScheduledDate.Minute() != 30 {
			t.Errorf("revisions[%d] time-of-day = %02d:%02d, want 15:30", i, r.ScheduledDate.Hour(), r.ScheduledDate.Minute())
		}
		if r.Completed {
			t.Errorf("revisions[%d] created completed", i)
		}
		if r.UserID != 42 || r.Topic != "Thermodynamics" || r.Subject != "Physics" {
			t.Errorf("revisions[%d] carries wrong identity fields: %+v", i, r)
		}
		if r.ID == "" {
			t.Errorf("revisions[%d] has empty id", i)
		}
	}

	if revisions[0].ID == revisions[1].ID || revisions[1].ID == revisions[2].ID {
		t.Error("cohort revisions share ids")
	}
}

func TestScheduleRevisionsMonthBoundary(t *testing.T) {
	anchor := time.Date(2026, 1, 29, 9, 0, 0, 0, time.UTC)

	revisions := ScheduleRevisions(1, "Optics", "Physics", anchor)

	want := time.Date(2026, 2, 5, 9, 0, 0, 0, time.UTC)
	if !revisions[2].ScheduledDate.Equal(want) {
		t.Errorf("day-7 ScheduledDate = %v, want %v", revisions[2].ScheduledDate, want)
	}
}

func TestDueRevisions(t *testing.T) {
	day := func(d int, hour int) time.Time {
		return time.Date(2026, 3, d, hour, 0, 0, 0, time.UTC)
	}

	revisions := []models.Revision{
		{ID: "a", ScheduledDate: day(10, 15)},                 // today, later hour
		{ID: "b", ScheduledDate: day(8, 23)},                  // overdue
		{ID: "c", ScheduledDate: day(11, 1)},                  // tomorrow
		{ID: "d", ScheduledDate: day(9, 12), Completed: true}, // overdue but done
		{ID: "e", ScheduledDate: day(10, 0)},                  // today at midnight
	}

	asOf := day(10, 8) // morning of March 10
	due := DueRevisions(revisions, asOf)

	wantIDs := []string{"a", "b", "e"}
	if len(due) != len(wantIDs) {
		t.Fatalf("DueRevisions returned %d revisions, want %d", len(due), len(wantIDs))
	}
	for i, id := range wantIDs {
		if due[i].ID != id {
			t.Errorf("due[%d].ID = %q, want %q (source order preserved)", i, due[i].ID, id)
		}
	}
}

func TestDueRevisionsCompletedNeverDue(t *testing.T) {
	old := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	revisions := []models.Revision{
		{ID: "x", ScheduledDate: old, Completed: true},
	}

	due := DueRevisions(revisions, time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))
	if len(due) != 0 {
		t.Errorf("completed revision returned as due: %+v", due)
	}
}

func TestDueRevisionsIgnoresTimeOfDay(t *testing.T) {
	scheduled := time.Date(2026, 3, 10, 15, 0, 0, 0, time.UTC)
	revisions := []models.Revision{{ID: "r", ScheduledDate: scheduled}}

	// 00:01 on the scheduled date: already due.
	asOf := time.Date(2026, 3, 10, 0, 1, 0, 0, time.UTC)
	if due := DueRevisions(revisions, asOf); len(due) != 1 {
		t.Errorf("revision scheduled 3pm not due at 00:01 same day")
	}

	// 23:59 the day before: not due.
	asOf = time.Date(2026, 3, 9, 23, 59, 0, 0, time.UTC)
	if due := DueRevisions(revisions, asOf); len(due) != 0 {
		t.Errorf("revision due the day before its scheduled date")
	}
}

func TestDueRevisionsIdempotent(t *testing.T) {
	revisions := []models.Revision{
		{ID: "a", ScheduledDate: time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)},
		{ID: "b", ScheduledDate: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)},
	}
	asOf := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)

	first := DueRevisions(revisions, asOf)
	second := DueRevisions(revisions, asOf)

	if len(first) != len(second) {
		t.Fatalf("repeated calls disagree: %d vs %d", len(first), len(second))
	}
	for i := range first {
		if first[i].ID != second[i].ID {
			t.Errorf("repeated calls disagree at %d: %q vs %q", i, first[i].ID, second[i].ID)
		}
	}
}
