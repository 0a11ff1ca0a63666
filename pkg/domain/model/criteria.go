package model

import (
	"sort"
	"strings"

	"github.com/m-mizutani/goerr/v2"
)

// SearchCriteria is the filter applied to every file entry. It is built once
// per run and shared read-only across all member searches; extensions and
// keywords are lower-cased at construction so matching never allocates
// normalized copies.
type SearchCriteria struct {
	extensions map[string]struct{}
	keywords   []string
}

// NewSearchCriteria builds criteria from raw extension and keyword lists.
// Extensions are required; a leading dot and surrounding whitespace are
// stripped. Keywords are optional.
func NewSearchCriteria(extensions, keywords []string) (*SearchCriteria, error) {
	c := &SearchCriteria{
		extensions: make(map[string]struct{}),
	}

	for _, ext := range extensions {
		ext = strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), "."))
		if ext != "" {
			c.extensions[ext] = struct{}{}
		}
	}
	if len(c.extensions) == 0 {
		return nil, goerr.New("at least one file extension is required")
	}

	for _, kw := range keywords {
		if kw = strings.TrimSpace(kw); kw != "" {
			c.keywords = append(c.keywords, strings.ToLower(kw))
		}
	}

	return c, nil
}

// Matches reports whether a file name passes the extension filter and, when
// keywords are configured, contains at least one keyword. Both checks are
// case-insensitive.
func (c *SearchCriteria) Matches(name string) bool {
	lower := strings.ToLower(name)

	idx := strings.LastIndex(lower, ".")
	if idx < 0 || idx == len(lower)-1 {
		return false
	}
	if _, ok := c.extensions[lower[idx+1:]]; !ok {
		return false
	}

	if len(c.keywords) == 0 {
		return true
	}
	for _, kw := range c.keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// Extensions returns the normalized extension set in sorted order
func (c *SearchCriteria) Extensions() []string {
	exts := make([]string, 0, len(c.extensions))
	for ext := range c.extensions {
		exts = append(exts, ext)
	}
	sort.Strings(exts)
	return exts
}

// Keywords returns the normalized keyword list
func (c *SearchCriteria) Keywords() []string {
	return append([]string(nil), c.keywords...)
}
