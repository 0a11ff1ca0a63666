package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/ctxlog"

	"github.com/jeetjeet26/p11filepuller/pkg/domain/model"
)

// logSink reports scan progress through the context logger
type logSink struct{}

func (s *logSink) Progress(ctx context.Context, member model.TeamMember, scanned int) {
	ctxlog.From(ctx).Info("Scan progress",
		slog.String("member", member.DisplayName),
		slog.Int("scanned", scanned),
	)
}
