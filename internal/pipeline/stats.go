package pipeline

// RunStats tracks aggregate counters across a batch run.
type RunStats struct {
	Discovered          int // Regular files in the directory.
	Processed           int // Files inside the batch limit.
	SkippedNoContent    int
	SkippedNoSuggestion int
	Planned             int
	Renamed             int
	Unchanged           int // Planned name equals the current name.
	Failed              int // Rename attempts that failed.
	DryRun              bool
	Declined            bool
}

// Skipped returns the total of both skip classes.
func (s *RunStats) Skipped() int {
	return s.SkippedNoContent + s.SkippedNoSuggestion
}
