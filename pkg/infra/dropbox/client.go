package dropbox

import (
	"context"
	"io"
	"sync"

	sdk "github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox"
	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox/files"
	"github.com/dropbox/dropbox-sdk-go-unofficial/v6/dropbox/team"
	"github.com/m-mizutani/goerr/v2"

	"github.com/jeetjeet26/p11filepuller/pkg/domain/interfaces"
	"github.com/jeetjeet26/p11filepuller/pkg/domain/model"
)

type client struct {
	token string
	team  team.Client

	// Member-scoped files clients are built lazily per member ID
	mu          sync.Mutex
	memberFiles map[string]files.Client
}

// NewClient creates a Dropbox Business client from a team access token
func NewClient(token string) interfaces.DropboxClient {
	cfg := sdk.Config{
		Token:    token,
		LogLevel: sdk.LogOff,
	}

	return &client{
		token:       token,
		team:        team.New(cfg),
		memberFiles: make(map[string]files.Client),
	}
}

// ListTeamMembers returns the full roster, draining the members-list cursor
func (c *client) ListTeamMembers(ctx context.Context) ([]model.TeamMember, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	res, err := c.team.MembersList(team.NewMembersListArg())
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list team members")
	}

	var members []model.TeamMember
	for {
		for _, m := range res.Members {
			members = append(members, model.TeamMember{
				ID:          m.Profile.TeamMemberId,
				Email:       m.Profile.Email,
				DisplayName: m.Profile.Name.DisplayName,
			})
		}

		if !res.HasMore {
			return members, nil
		}
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		res, err = c.team.MembersListContinue(team.NewMembersListContinueArg(res.Cursor))
		if err != nil {
			return nil, goerr.Wrap(err, "failed to continue team member listing")
		}
	}
}

// ListFolder starts a recursive listing of the member's tree at path
func (c *client) ListFolder(ctx context.Context, memberID, path string) ([]model.FileEntry, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}

	arg := files.NewListFolderArg(path)
	arg.Recursive = true

	res, err := c.filesClient(memberID).ListFolder(arg)
	if err != nil {
		return nil, "", goerr.Wrap(err, "failed to list folder",
			goerr.V("member_id", memberID), goerr.V("path", path))
	}

	return convertEntries(res.Entries), nextCursor(res), nil
}

// ListFolderContinue fetches the next page for a cursor from ListFolder
func (c *client) ListFolderContinue(ctx context.Context, memberID, cursor string) ([]model.FileEntry, string, error) {
	if err := ctx.Err(); err != nil {
		return nil, "", err
	}

	res, err := c.filesClient(memberID).ListFolderContinue(files.NewListFolderContinueArg(cursor))
	if err != nil {
		return nil, "", goerr.Wrap(err, "failed to continue folder listing",
			goerr.V("member_id", memberID))
	}

	return convertEntries(res.Entries), nextCursor(res), nil
}

// Download opens the file content as the given member
func (c *client) Download(ctx context.Context, memberID, path string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	_, content, err := c.filesClient(memberID).Download(files.NewDownloadArg(path))
	if err != nil {
		return nil, goerr.Wrap(err, "failed to download file",
			goerr.V("member_id", memberID), goerr.V("path", path))
	}

	return content, nil
}

// filesClient returns the member-scoped files client, building it on first use
func (c *client) filesClient(memberID string) files.Client {
	c.mu.Lock()
	defer c.mu.Unlock()

	if fc, ok := c.memberFiles[memberID]; ok {
		return fc
	}

	fc := files.New(sdk.Config{
		Token:      c.token,
		AsMemberID: memberID,
		LogLevel:   sdk.LogOff,
	})
	c.memberFiles[memberID] = fc
	return fc
}

// convertEntries keeps file metadata only; folder and deleted entries are
// not part of the scan
func convertEntries(entries []files.IsMetadata) []model.FileEntry {
	var converted []model.FileEntry
	for _, entry := range entries {
		f, ok := entry.(*files.FileMetadata)
		if !ok {
			continue
		}

		path := f.PathDisplay
		if path == "" {
			path = f.PathLower
		}
		converted = append(converted, model.FileEntry{
			Path: path,
			Name: f.Name,
			Size: f.Size,
		})
	}
	return converted
}

func nextCursor(res *files.ListFolderResult) string {
	if res.HasMore {
		return res.Cursor
	}
	return ""
}
