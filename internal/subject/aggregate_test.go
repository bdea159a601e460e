package subject

import "testing"

func TestComputeAggregate(t *testing.T) {
	tests := []struct {
		name     string
		progress []int
		wantAvg  int
	}{
		{"empty", nil, 0},
		{"single", []int{42}, 42},
		{"seed", []int{65, 89}, 77},
		{"half rounds up", []int{0, 1}, 1},
		{"below half rounds down", []int{0, 0, 1}, 0},
		{"above half rounds up", []int{0, 1, 1}, 1},
		{"all complete", []int{100, 100, 100}, 100},
		{"new subject", []int{65, 89, 0}, 51},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var subjects []Subject
			for _, p := range tt.progress {
				subjects = append(subjects, Subject{Progress: p, TotalTopics: 10, CompletedTopics: 1})
			}
			agg := ComputeAggregate(subjects)
			if agg.AverageProgress != tt.wantAvg {
				t.Errorf("average = %d, want %d", agg.AverageProgress, tt.wantAvg)
			}
			if agg.Count != len(tt.progress) {
				t.Errorf("count = %d, want %d", agg.Count, len(tt.progress))
			}
			if agg.TotalTopics != 10*len(tt.progress) {
				t.Errorf("total topics = %d, want %d", agg.TotalTopics, 10*len(tt.progress))
			}
			if agg.CompletedTopics != len(tt.progress) {
				t.Errorf("completed topics = %d, want %d", agg.CompletedTopics, len(tt.progress))
			}
		})
	}
}

func TestRoundedMeanNegative(t *testing.T) {
	// Half rounds toward +Inf, matching the dashboard display.
	if got := roundedMean(-1, 2); got != 0 {
		t.Errorf("roundedMean(-1, 2) = %d, want 0", got)
	}
	if got := roundedMean(-3, 2); got != -1 {
		t.Errorf("roundedMean(-3, 2) = %d, want -1", got)
	}
}

func TestNewSubjectDefaults(t *testing.T) {
	s := NewSubject("id-1", "Biology", nil)
	if s.Progress != 0 || s.CompletedTopics != 0 {
		t.Errorf("expected zero progress, got %+v", s)
	}
	if s.TotalTopics != 19 {
		t.Errorf("expected 19 total topics, got %d", s.TotalTopics)
	}
	if s.IsComplete() {
		t.Error("new subject should not be complete")
	}
}

func TestDetailRoute(t *testing.T) {
	if got := DetailRoute("abc"); got != "/learning-hub/abc" {
		t.Errorf("DetailRoute = %q", got)
	}
}
