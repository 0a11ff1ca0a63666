package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"

	"github.com/jeetjeet26/p11filepuller/pkg/domain/model"
)

// renderReport prints the human-readable final report
func renderReport(w io.Writer, report *model.Report) {
	title := color.New(color.Bold)
	ok := color.New(color.FgGreen)
	warn := color.New(color.FgYellow)
	bad := color.New(color.FgRed)

	title.Fprintf(w, "\nRun %s: %d members, %d matched, %d downloaded\n",
		report.RunID, report.TotalMembers(), report.TotalMatched, report.TotalDownloaded)

	for _, res := range report.Members {
		var status string
		switch res.Status {
		case model.StatusCompleted:
			status = ok.Sprint(string(res.Status))
		case model.StatusTimedOut:
			status = warn.Sprint(string(res.Status))
		default:
			status = bad.Sprint(string(res.Status))
		}

		fmt.Fprintf(w, "\n%s <%s> [%s] scanned=%d matched=%d downloaded=%d\n",
			res.Member.DisplayName, res.Member.Email, status,
			res.Scanned, len(res.Matched), len(res.Downloaded))

		if res.Reason != "" {
			fmt.Fprintf(w, "  reason: %s\n", res.Reason)
		}
		for _, entry := range res.Matched {
			fmt.Fprintf(w, "  %s (%d bytes)\n", entry.Path, entry.Size)
		}
		for _, failure := range res.FailedFiles {
			bad.Fprintf(w, "  download failed: %s: %s\n", failure.Path, failure.Reason)
		}
	}
}
