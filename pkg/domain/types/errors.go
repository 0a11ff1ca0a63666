package types

import "github.com/m-mizutani/goerr/v2"

// ErrNoTeamMembers is returned when team enumeration yields an empty roster.
// It aborts the run before any member search is dispatched.
var ErrNoTeamMembers = goerr.New("no team members found")
