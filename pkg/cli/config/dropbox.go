package config

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Dropbox holds Dropbox Business API configuration
type Dropbox struct {
	Token string `masq:"secret"`
}

// Flags returns CLI flags for Dropbox configuration
func (c *Dropbox) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "dropbox-token",
			Usage:       "Dropbox Business team access token",
			Required:    true,
			Destination: &c.Token,
			Sources:     cli.EnvVars("P11_DROPBOX_TOKEN", "DROPBOX_ACCESS_TOKEN"),
		},
	}
}

// Validate rejects missing or placeholder tokens before any API call
func (c *Dropbox) Validate() error {
	token := strings.TrimSpace(c.Token)
	if token == "" || token == "your_access_token_here" {
		return goerr.New("Dropbox access token is not set")
	}
	return nil
}
