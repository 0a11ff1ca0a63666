package cli

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/jeetjeet26/p11filepuller/pkg/cli/config"
	dropboxinfra "github.com/jeetjeet26/p11filepuller/pkg/infra/dropbox"
	"github.com/jeetjeet26/p11filepuller/pkg/usecase"
)

func cmdSearch() *cli.Command {
	var (
		dropboxCfg config.Dropbox
		searchCfg  config.Search
	)

	flags := append(dropboxCfg.Flags(), searchCfg.Flags()...)

	return &cli.Command{
		Name:    "search",
		Aliases: []string{"s"},
		Usage:   "Search and download matching files from every member account",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			if err := dropboxCfg.Validate(); err != nil {
				return err
			}
			criteria, err := searchCfg.Criteria()
			if err != nil {
				return err
			}

			// Interrupt cancels every in-flight member search; the report
			// still covers members that already reached a terminal state
			ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
			defer stop()

			logger.Info("Starting team file search",
				slog.Any("extensions", criteria.Extensions()),
				slog.Any("keywords", criteria.Keywords()),
				slog.String("output", searchCfg.Output),
			)

			client := dropboxinfra.NewClient(dropboxCfg.Token)
			uc := usecase.NewTeamSearch(client)

			report, err := uc.Run(ctx, criteria, searchCfg.Output)
			if err != nil {
				return goerr.Wrap(err, "team search failed")
			}

			renderReport(os.Stdout, report)
			return nil
		},
	}
}
