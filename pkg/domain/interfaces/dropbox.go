package interfaces

import (
	"context"
	"io"

	"github.com/jeetjeet26/p11filepuller/pkg/domain/model"
)

// DropboxClient defines the Dropbox Business team API surface used by the
// search use case. Implementations must be safe for concurrent use and must
// observe context cancellation before issuing remote calls.
type DropboxClient interface {
	// ListTeamMembers returns the full team roster
	ListTeamMembers(ctx context.Context) ([]model.TeamMember, error)

	// ListFolder starts a recursive listing of the member's tree at path.
	// The returned cursor is non-empty while more pages remain.
	ListFolder(ctx context.Context, memberID, path string) ([]model.FileEntry, string, error)

	// ListFolderContinue fetches the next page for a cursor returned by
	// ListFolder. An empty returned cursor means the listing is exhausted.
	ListFolderContinue(ctx context.Context, memberID, cursor string) ([]model.FileEntry, string, error)

	// Download opens the file content as the given member. The caller must
	// close the returned reader.
	Download(ctx context.Context, memberID, path string) (io.ReadCloser, error)
}
