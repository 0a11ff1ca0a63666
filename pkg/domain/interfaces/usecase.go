package interfaces

import (
	"context"

	"github.com/jeetjeet26/p11filepuller/pkg/domain/model"
)

// TeamSearchUseCase defines the interface for one team-wide search sweep
type TeamSearchUseCase interface {
	// Run enumerates the team, searches every member under the concurrency
	// cap, and returns the aggregated report
	Run(ctx context.Context, criteria *model.SearchCriteria, destRoot string) (*model.Report, error)
}

// ProgressSink receives scan-progress observations during a sweep
type ProgressSink interface {
	// Progress reports how many file entries have been scanned so far in
	// one member's account
	Progress(ctx context.Context, member model.TeamMember, scanned int)
}
