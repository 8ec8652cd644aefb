package revision

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/studyloop/backend/internal/kvstore"
	"github.com/studyloop/backend/internal/models"
)

// Store lays the revision engine's records out over the key-value
// collaborator. Keys are namespaced by record kind and user id, so prefix
// scans return one user's records in insertion order and cross-user reads
// are impossible by construction.
//
//	diagnostic:{userID}:{id}   -> DiagnosticResult
//	revision:{userID}:{id}     -> Revision
//	progress:{userID}:{topic}  -> ProgressRecord
//	weakconcept:{userID}:{id}  -> WeakConcept
type Store struct {
	kv kvstore.Store
}

func NewStore(kv kvstore.Store) *Store {
	return &Store{kv: kv}
}

func diagnosticKey(userID int64, id string) string {
	return fmt.Sprintf("diagnostic:%d:%s", userID, id)
}

func revisionKey(userID int64, id string) string {
	return fmt.Sprintf("revision:%d:%s", userID, id)
}

func progressKey(userID int64, topic string) string {
	return fmt.Sprintf("progress:%d:%s", userID, topic)
}

func weakConceptKey(userID int64, id string) string {
	return fmt.Sprintf("weakconcept:%d:%s", userID, id)
}

// ── Diagnostics ─────────────────────────────────────────

func (s *Store) SaveDiagnostic(ctx context.Context, d models.DiagnosticResult) error {
	return s.set(ctx, diagnosticKey(d.UserID, d.ID), d)
}

// ── Revisions ───────────────────────────────────────────

func (s *Store) SaveRevision(ctx context.Context, r models.Revision) error {
	return s.set(ctx, revisionKey(r.UserID, r.ID), r)
}

// GetRevision returns the revision or nil if the key is absent. Lookup is
// scoped to the user's own namespace, which is the ownership check.
func (s *Store) GetRevision(ctx context.Context, userID int64, id string) (*models.Revision, error) {
	raw, err := s.kv.Get(ctx, revisionKey(userID, id))
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var r models.Revision
	if err := json.Unmarshal(raw, &r); err != nil {
		return nil, fmt.Errorf("decode revision %s: %w", id, err)
	}
	return &r, nil
}

func (s *Store) ListRevisions(ctx context.Context, userID int64) ([]models.Revision, error) {
	raws, err := s.kv.GetByPrefix(ctx, fmt.Sprintf("revision:%d:", userID))
	if err != nil {
		return nil, err
	}
	revisions := make([]models.Revision, 0, len(raws))
	for _, raw := range raws {
		var r models.Revision
		if err := json.Unmarshal(raw, &r); err != nil {
			return nil, fmt.Errorf("decode revision: %w", err)
		}
		revisions = append(revisions, r)
	}
	return revisions, nil
}

// ── Progress ────────────────────────────────────────────

func (s *Store) SaveProgress(ctx context.Context, p models.ProgressRecord) error {
	return s.set(ctx, progressKey(p.UserID, p.Topic), p)
}

func (s *Store) GetProgress(ctx context.Context, userID int64, topic string) (*models.ProgressRecord, error) {
	raw, err := s.kv.Get(ctx, progressKey(userID, topic))
	if err != nil {
		return nil, err
	}
	if raw == nil {
		return nil, nil
	}
	var p models.ProgressRecord
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, fmt.Errorf("decode progress for %q: %w", topic, err)
	}
	return &p, nil
}

func (s *Store) ListProgress(ctx context.Context, userID int64) ([]models.ProgressRecord, error) {
	raws, err := s.kv.GetByPrefix(ctx, fmt.Sprintf("progress:%d:", userID))
	if err != nil {
		return nil, err
	}
	records := make([]models.ProgressRecord, 0, len(raws))
	for _, raw := range raws {
		var p models.ProgressRecord
		if err := json.Unmarshal(raw, &p); err != nil {
			return nil, fmt.Errorf("decode progress: %w", err)
		}
		records = append(records, p)
	}
	return records, nil
}

// ── Weak Concepts ───────────────────────────────────────

func (s *Store) SaveWeakConcept(ctx context.Context, w models.WeakConcept) error {
	return s.set(ctx, weakConceptKey(w.UserID, w.ID), w)
}

func (s *Store) ListWeakConcepts(ctx context.Context, userID int64) ([]models.WeakConcept, error) {
	raws, err := s.kv.GetByPrefix(ctx, fmt.Sprintf("weakconcept:%d:", userID))
	if err != nil {
		return nil, err
	}
	concepts := make([]models.WeakConcept, 0, len(raws))
	for _, raw := range raws {
		var w models.WeakConcept
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, fmt.Errorf("decode weak concept: %w", err)
		}
		concepts = append(concepts, w)
	}
	return concepts, nil
}

func (s *Store) set(ctx context.Context, key string, record interface{}) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return s.kv.Set(ctx, key, raw)
}
