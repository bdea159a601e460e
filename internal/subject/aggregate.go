package subject

// Aggregate holds the dashboard totals derived from a set of subjects.
type Aggregate struct {
	Count           int `json:"totalSubjects"`
	AverageProgress int `json:"averageProgress"`
	CompletedTopics int `json:"completedTopics"`
	TotalTopics     int `json:"totalTopics"`
}

// ComputeAggregate derives the dashboard totals. The average progress is
// the arithmetic mean rounded half up, or 0 for no subjects.
func ComputeAggregate(subjects []Subject) Aggregate {
	var agg Aggregate
	var progressSum int
	for _, s := range subjects {
		agg.Count++
		progressSum += s.Progress
		agg.CompletedTopics += s.CompletedTopics
		agg.TotalTopics += s.TotalTopics
	}
	agg.AverageProgress = roundedMean(progressSum, agg.Count)
	return agg
}

// roundedMean returns sum/n rounded half up (toward +Inf on ties).
func roundedMean(sum, n int) int {
	if n == 0 {
		return 0
	}
	q := sum / n
	r := sum % n
	if r < 0 {
		r += n
		q--
	}
	if 2*r >= n {
		q++
	}
	return q
}
