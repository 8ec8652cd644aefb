package reminder

import (
	"context"
	"database/sql"
	"log"
	"os"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/studyloop/backend/internal/revision"
)

// Scheduler runs the daily due-revision digest. For each user with open
// revisions due today it logs a reminder line; the UI polls the due endpoint
// for the same data, so this is a nudge channel, not the source of truth.
type Scheduler struct {
	scheduler *gocron.Scheduler
	db        *sql.DB
	revisions *revision.Service
}

func New(db *sql.DB, revisions *revision.Service) *Scheduler {
	return &Scheduler{
		scheduler: gocron.NewScheduler(time.UTC),
		db:        db,
		revisions: revisions,
	}
}

// Start schedules the daily digest and returns immediately.
func (s *Scheduler) Start() {
	digestTime := os.Getenv("REMINDER_DIGEST_TIME")
	if digestTime == "" {
		digestTime = "08:00"
	}

	s.scheduler.Every(1).Day().At(digestTime).Do(s.runDigest)
	s.scheduler.StartAsync()
	log.Printf("[reminder] daily digest scheduled at %s UTC", digestTime)
}

func (s *Scheduler) Stop() {
	s.scheduler.Stop()
}

func (s *Scheduler) runDigest() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	rows, err := s.db.QueryContext(ctx, `SELECT id FROM users`)
	if err != nil {
		log.Printf("[reminder] list users failed: %v", err)
		return
	}
	defer rows.Close()

	now := time.Now()
	for rows.Next() {
		var userID int64
		if err := rows.Scan(&userID); err != nil {
			log.Printf("[reminder] scan user failed: %v", err)
			continue
		}

		due, err := s.revisions.DueRevisionsFor(ctx, userID, now)
		if err != nil {
			log.Printf("[reminder] due lookup for user %d failed: %v", userID, err)
			continue
		}
		if len(due) > 0 {
			log.Printf("[reminder] user %d has %d revisions due", userID, len(due))
		}
	}
	if err := rows.Err(); err != nil {
		log.Printf("[reminder] user iteration failed: %v", err)
	}
}
