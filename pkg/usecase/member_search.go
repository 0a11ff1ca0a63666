package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/jeetjeet26/p11filepuller/pkg/domain/model"
)

// searchMember walks one member's tree and returns its terminal result. The
// caller's context carries the per-member deadline; the worker itself never
// sets one.
func (uc *teamSearch) searchMember(ctx context.Context, member model.TeamMember, criteria *model.SearchCriteria, destRoot string) *model.MemberResult {
	logger := ctxlog.From(ctx).With(slog.String("member", member.DisplayName))
	ctx = ctxlog.With(ctx, logger)

	logger.Info("Starting search in member account", slog.String("email", member.Email))

	res := &model.MemberResult{Member: member}

	err := uc.walk(ctx, member, criteria, destRoot, res)
	switch {
	case err == nil:
		res.Status = model.StatusCompleted
		logger.Info("Completed search in member account",
			slog.Int("scanned", res.Scanned),
			slog.Int("matched", len(res.Matched)),
			slog.Int("downloaded", len(res.Downloaded)),
		)
	case errors.Is(err, context.DeadlineExceeded):
		res.Status = model.StatusTimedOut
		logger.Warn("Search timed out in member account", slog.Int("scanned", res.Scanned))
	case errors.Is(err, context.Canceled):
		res.Status = model.StatusFailed
		res.Reason = "interrupted"
		logger.Warn("Search interrupted in member account", slog.Int("scanned", res.Scanned))
	default:
		res.Status = model.StatusFailed
		res.Reason = err.Error()
		logger.Error("Search failed in member account", slog.Any("error", err))
	}

	return res
}

// walk drains the recursive listing page by page until the cursor is
// exhausted. Files already written when cancellation is observed stay on
// disk and stay counted; the cutoff is the next ctx.Err() check.
func (uc *teamSearch) walk(ctx context.Context, member model.TeamMember, criteria *model.SearchCriteria, destRoot string, res *model.MemberResult) error {
	logger := ctxlog.From(ctx)

	entries, cursor, err := uc.client.ListFolder(ctx, member.ID, "")
	if err != nil {
		return goerr.Wrap(err, "failed to list member folder")
	}

	for {
		for _, entry := range entries {
			if err := ctx.Err(); err != nil {
				return err
			}

			res.Scanned++
			if res.Scanned%progressInterval == 0 {
				uc.sink.Progress(ctx, member, res.Scanned)
			}

			if !criteria.Matches(entry.Name) {
				continue
			}
			res.Matched = append(res.Matched, entry)
			logger.Info("Found matching file",
				slog.String("name", entry.Name),
				slog.String("path", entry.Path),
				slog.Uint64("size", entry.Size),
			)

			local, err := uc.downloadFile(ctx, member, entry, destRoot)
			if err != nil {
				if ctxErr := ctx.Err(); ctxErr != nil {
					return ctxErr
				}
				// A single failed download never aborts the member's scan
				res.FailedFiles = append(res.FailedFiles, model.FileFailure{
					Path:   entry.Path,
					Reason: err.Error(),
				})
				logger.Error("Failed to download file",
					slog.Any("error", err),
					slog.String("path", entry.Path),
				)
				continue
			}
			res.Downloaded = append(res.Downloaded, local)
		}

		if cursor == "" {
			return nil
		}

		entries, cursor, err = uc.client.ListFolderContinue(ctx, member.ID, cursor)
		if err != nil {
			return goerr.Wrap(err, "failed to continue member folder listing")
		}
	}
}

// downloadFile streams one remote file into destRoot/<display name>/<file
// name>, truncating any previous copy
func (uc *teamSearch) downloadFile(ctx context.Context, member model.TeamMember, entry model.FileEntry, destRoot string) (string, error) {
	content, err := uc.client.Download(ctx, member.ID, entry.Path)
	if err != nil {
		return "", goerr.Wrap(err, "failed to download", goerr.V("path", entry.Path))
	}
	defer content.Close()

	dir := filepath.Join(destRoot, member.DisplayName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", goerr.Wrap(err, "failed to create member output directory", goerr.V("dir", dir))
	}

	local := filepath.Join(dir, entry.Name)
	f, err := os.Create(local)
	if err != nil {
		return "", goerr.Wrap(err, "failed to create local file", goerr.V("file", local))
	}
	defer f.Close()

	if _, err := io.Copy(f, content); err != nil {
		return "", goerr.Wrap(err, "failed to write local file", goerr.V("file", local))
	}

	return local, nil
}
