package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/jeetjeet26/p11filepuller/pkg/domain/model"
)

// Search holds search criteria and output configuration
type Search struct {
	Extensions   []string
	Keywords     []string
	Output       string
	CriteriaFile string
}

// Flags returns CLI flags for search configuration
func (c *Search) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:        "ext",
			Aliases:     []string{"e"},
			Usage:       "File extensions to match (repeatable or comma-separated)",
			Destination: &c.Extensions,
			Sources:     cli.EnvVars("P11_EXTENSIONS"),
		},
		&cli.StringSliceFlag{
			Name:        "keyword",
			Aliases:     []string{"k"},
			Usage:       "Keywords matched against file names (optional)",
			Destination: &c.Keywords,
			Sources:     cli.EnvVars("P11_KEYWORDS"),
		},
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Destination root for downloaded files",
			Value:       "downloads",
			Destination: &c.Output,
			Sources:     cli.EnvVars("P11_OUTPUT"),
		},
		&cli.StringFlag{
			Name:        "criteria-file",
			Usage:       "TOML file with extensions/keywords (flags take precedence)",
			Destination: &c.CriteriaFile,
			Sources:     cli.EnvVars("P11_CRITERIA_FILE"),
		},
	}
}

// criteriaFile mirrors the TOML criteria file layout
type criteriaFile struct {
	Extensions []string `toml:"extensions"`
	Keywords   []string `toml:"keywords"`
}

// Criteria merges flag values with the optional criteria file and builds the
// immutable search criteria. Flag values win over file values.
func (c *Search) Criteria() (*model.SearchCriteria, error) {
	extensions := c.Extensions
	keywords := c.Keywords

	if c.CriteriaFile != "" {
		raw, err := os.ReadFile(c.CriteriaFile)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read criteria file",
				goerr.V("file", c.CriteriaFile))
		}

		var cf criteriaFile
		if err := toml.Unmarshal(raw, &cf); err != nil {
			return nil, goerr.Wrap(err, "failed to parse criteria file",
				goerr.V("file", c.CriteriaFile))
		}

		if len(extensions) == 0 {
			extensions = cf.Extensions
		}
		if len(keywords) == 0 {
			keywords = cf.Keywords
		}
	}

	return model.NewSearchCriteria(extensions, keywords)
}
