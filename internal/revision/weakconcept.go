package revision

// Weak-concept thresholds for a graded diagnostic.
const (
	WeakScoreCutoff     = 70 // diagnostic score below this flags the topic
	LowConfidenceCutoff = 3  // self-rated confidence below this flags the topic
)

// IsWeak reports whether a diagnostic result flags its topic for
// remediation. Evaluated once per diagnostic submission, never re-evaluated
// on revision completion. Boundary values pass: score 70 and confidence 3
// are both fine.
func IsWeak(score, confidence int) bool {
	return score < WeakScoreCutoff || confidence < LowConfidenceCutoff
}
