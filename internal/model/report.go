package model

// FileError records a file the engine could not analyze. A broken
// file contributes no findings, only this entry.
type FileError struct {
	File    string `json:"file"`
	Message string `json:"message"`
}

// Report is the aggregated output of one engine run.
type Report struct {
	Findings []Finding   `json:"findings"`
	Errors   []FileError `json:"errors,omitempty"`
	Files    int         `json:"files"`
}

// CountBySeverity returns the number of findings per severity.
func (r Report) CountBySeverity() map[Severity]int {
	counts := make(map[Severity]int, 3)
	for _, f := range r.Findings {
		counts[f.Severity]++
	}

	return counts
}

// HasSeverity reports whether any finding is at least as severe as min.
// Ordering: error > warning > info.
func (r Report) HasSeverity(min Severity) bool {
	rank := map[Severity]int{SeverityInfo: 0, SeverityWarning: 1, SeverityError: 2}

	for _, f := range r.Findings {
		if rank[f.Severity] >= rank[min] {
			return true
		}
	}

	return false
}
