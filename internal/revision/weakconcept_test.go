package revision

import "testing"

func TestIsWeak(t *testing.T) {
	tests := []struct {
		score      int
		confidence int
		want       bool
	}{
		{65, 5, true},  // low score alone
		{75, 2, true},  // low confidence alone
		{80, 4, false}, // both fine
		{69, 3, true},  // score just under cutoff
		{70, 3, false}, // both exactly at cutoff
		{70, 2, true},  // confidence just under cutoff
		{0, 5, true},
		{100, 1, true},
		{100, 5, false},
	}

	for _, tt := range tests {
		got := IsWeak(tt.score, tt.confidence)
		if got != tt.want {
			t.Errorf("IsWeak(%d, %d) = %v, want %v", tt.score, tt.confidence, got, tt.want)
		}
	}
}
