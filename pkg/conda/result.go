package conda

type Status string

const (
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

type Result struct {
	Check   string
	Status  Status
	Command string
	Message string
	// Offending holds at most Options.MaxListed lines, Total counts all of them.
	Offending []string
	Total     int
	Channels  []string
}

// Failed reports whether any of results failed. Skipped results do not count.
func Failed(results []Result) bool {
	for _, r := range results {
		if r.Status == StatusFailed {
			return true
		}
	}
	return false
}
