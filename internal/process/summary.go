package process

// SkippedGroup records a group the run left untouched and why.
type SkippedGroup struct {
	Dir    string
	Key    string
	Reason string
}

// Summary aggregates the outcome of one processing pass.
type Summary struct {
	RunID  string
	Root   string
	DryRun bool

	// Groups is the total number of groups observed.
	Groups int
	// Complete counts groups that had both a sidecar and media variants and
	// yielded a usable timestamp.
	Complete int
	// Processed counts stamping attempts across all variants. An attempt is
	// counted even when the embedded-tag sub-step failed; only a missing
	// media file or an unusable timestamp keeps a variant out of the count.
	Processed int
	// TagFailures counts attempts whose embedded-tag stamp was rejected.
	TagFailures int
	// SidecarsRemoved counts sidecar files deleted after their group was
	// fully stamped.
	SidecarsRemoved int

	// Skipped lists unpaired or unusable groups.
	Skipped []SkippedGroup

	// PerDirectory maps directory to stamping attempts made in it.
	PerDirectory map[string]int
}

func newSummary(runID, root string, dryRun bool) *Summary {
	return &Summary{
		RunID:        runID,
		Root:         root,
		DryRun:       dryRun,
		PerDirectory: make(map[string]int),
	}
}

func (s *Summary) skip(dir, key, reason string) {
	s.Skipped = append(s.Skipped, SkippedGroup{Dir: dir, Key: key, Reason: reason})
}

func (s *Summary) countAttempt(dir string) {
	s.Processed++
	s.PerDirectory[dir]++
}
