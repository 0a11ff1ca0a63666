package model

// MemberStatus is the terminal state of one member's search
type MemberStatus string

const (
	StatusCompleted MemberStatus = "completed"
	StatusTimedOut  MemberStatus = "timed_out"
	StatusFailed    MemberStatus = "failed"
)

// FileFailure records one file that matched but could not be downloaded
type FileFailure struct {
	Path   string
	Reason string
}

// MemberResult summarizes one member's search. It is produced by the search
// worker and consumed by the final report; nothing is persisted between runs.
type MemberResult struct {
	Member      TeamMember
	Scanned     int           // File entries examined
	Matched     []FileEntry   // Matching files in scan order
	Downloaded  []string      // Local paths written, in download order
	FailedFiles []FileFailure // Per-file download failures
	Status      MemberStatus
	Reason      string // Populated when Status is StatusFailed
}

// Report is the final result of one team-wide sweep. Members appear in
// roster order regardless of completion order.
type Report struct {
	RunID           string
	Members         []*MemberResult
	TotalMatched    int
	TotalDownloaded int
}

// NewReport aggregates per-member results into the final report
func NewReport(runID string, results []*MemberResult) *Report {
	report := &Report{
		RunID:   runID,
		Members: results,
	}
	for _, res := range results {
		report.TotalMatched += len(res.Matched)
		report.TotalDownloaded += len(res.Downloaded)
	}
	return report
}

// TotalMembers returns the number of members covered by the report
func (r *Report) TotalMembers() int {
	return len(r.Members)
}
