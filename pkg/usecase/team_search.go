package usecase

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/jeetjeet26/p11filepuller/pkg/domain/interfaces"
	"github.com/jeetjeet26/p11filepuller/pkg/domain/model"
	"github.com/jeetjeet26/p11filepuller/pkg/domain/types"
	"github.com/jeetjeet26/p11filepuller/pkg/utils/pool"
)

const (
	// DefaultConcurrency caps concurrently searched members. Kept low to
	// respect Dropbox Business rate limits.
	DefaultConcurrency = 3

	// DefaultMemberTimeout bounds one member's wall-clock search time
	DefaultMemberTimeout = 10 * time.Minute

	// progressInterval is the number of scanned files between progress reports
	progressInterval = 100
)

type teamSearch struct {
	client        interfaces.DropboxClient
	sink          interfaces.ProgressSink
	concurrency   int
	memberTimeout time.Duration
}

// Option configures the team search use case at construction time
type Option func(*teamSearch)

// WithProgressSink replaces the default log-based progress sink
func WithProgressSink(sink interfaces.ProgressSink) Option {
	return func(uc *teamSearch) {
		uc.sink = sink
	}
}

// WithMemberTimeout overrides the per-member deadline. Intended for tests.
func WithMemberTimeout(d time.Duration) Option {
	return func(uc *teamSearch) {
		uc.memberTimeout = d
	}
}

// WithConcurrency overrides the member search cap. Intended for tests;
// production wiring always runs with DefaultConcurrency.
func WithConcurrency(n int) Option {
	return func(uc *teamSearch) {
		uc.concurrency = n
	}
}

// NewTeamSearch creates a new instance of TeamSearchUseCase
func NewTeamSearch(client interfaces.DropboxClient, opts ...Option) interfaces.TeamSearchUseCase {
	uc := &teamSearch{
		client:        client,
		sink:          &logSink{},
		concurrency:   DefaultConcurrency,
		memberTimeout: DefaultMemberTimeout,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Run performs one sweep over every team member and aggregates the report
func (uc *teamSearch) Run(ctx context.Context, criteria *model.SearchCriteria, destRoot string) (*model.Report, error) {
	runID := uuid.NewString()
	logger := ctxlog.From(ctx).With(slog.String("run_id", runID))
	ctx = ctxlog.With(ctx, logger)

	members, err := uc.client.ListTeamMembers(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to enumerate team members")
	}
	if len(members) == 0 {
		return nil, types.ErrNoTeamMembers
	}

	logger.Info("Starting team search",
		slog.Int("members", len(members)),
		slog.Any("extensions", criteria.Extensions()),
		slog.Any("keywords", criteria.Keywords()),
		slog.String("dest_root", destRoot),
	)
	for _, member := range members {
		logger.Info("Queued member account",
			slog.String("name", member.DisplayName),
			slog.String("email", member.Email),
		)
	}

	// Pre-filled failed placeholders so even a panicking worker leaves its
	// member in a terminal state
	results := make([]*model.MemberResult, len(members))
	tasks := make([]pool.Task, len(members))
	for i, member := range members {
		results[i] = &model.MemberResult{
			Member: member,
			Status: model.StatusFailed,
			Reason: "aborted",
		}
		tasks[i] = func(ctx context.Context) error {
			mctx, cancel := context.WithTimeout(ctx, uc.memberTimeout)
			defer cancel()

			results[i] = uc.searchMember(mctx, member, criteria, destRoot)
			return nil
		}
	}

	if err := pool.Run(ctx, uc.concurrency, tasks); err != nil {
		// Workers record their own failures into results; only a recovered
		// panic reaches here
		logger.Error("Worker pool error", slog.Any("error", err))
	}

	report := model.NewReport(runID, results)
	logger.Info("Team search finished",
		slog.Int("members", report.TotalMembers()),
		slog.Int("matched", report.TotalMatched),
		slog.Int("downloaded", report.TotalDownloaded),
	)
	return report, nil
}
