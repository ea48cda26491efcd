package markdown

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/adrg/frontmatter"
)

// FrontMatter holds the keys a post may declare in a leading YAML or TOML
// block. Posts are identified by filename, so these are informational only.
type FrontMatter struct {
	Title   string         `yaml:"title" toml:"title"`
	Summary string         `yaml:"summary" toml:"summary"`
	Tags    []string       `yaml:"tags" toml:"tags"`
	Extra   map[string]any `yaml:",inline" toml:"-"`
}

// SplitFrontMatter separates a leading front matter block from the body.
// Sources without a block are returned unchanged with an empty FrontMatter.
func SplitFrontMatter(source []byte) (FrontMatter, []byte, error) {
	var meta FrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(source), &meta)
	if err != nil {
		if errors.Is(err, frontmatter.ErrNotFound) {
			return FrontMatter{}, source, nil
		}
		return FrontMatter{}, nil, fmt.Errorf("parse frontmatter: %w", err)
	}
	return meta, body, nil
}
