// Package content reads the blog's Markdown articles: the front-matter block
// at the top of each file and the body that follows it.
package content

import (
	"fmt"
	"io"
	"strings"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"
)

// FrontMatter holds the recognized front-matter keys. Anything else in the
// block is ignored.
type FrontMatter struct {
	Title       string   `yaml:"title"`
	Date        string   `yaml:"date"`
	Description string   `yaml:"description"`
	Author      string   `yaml:"author"`
	Tag         Keywords `yaml:"tag"`
	Slug        string   `yaml:"slug"` // overrides the file-name slug
}

// Keywords is a comma-separated keyword list. In front matter it may be
// written as a plain string or as a YAML sequence; sequences are joined
// with ", ".
type Keywords string

// UnmarshalYAML implements yaml.Unmarshaler.
func (k *Keywords) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		*k = Keywords(strings.TrimSpace(value.Value))
		return nil
	case yaml.SequenceNode:
		var items []string
		if err := value.Decode(&items); err != nil {
			return err
		}
		var kept []string
		for _, it := range items {
			if s := strings.TrimSpace(it); s != "" {
				kept = append(kept, s)
			}
		}
		*k = Keywords(strings.Join(kept, ", "))
		return nil
	default:
		return fmt.Errorf("tag: expected string or list, got %s", value.Tag)
	}
}

// List splits the keywords into trimmed, non-empty entries.
func (k Keywords) List() []string {
	var out []string
	for _, p := range strings.Split(string(k), ",") {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}

var yamlFormat = frontmatter.NewFormat("---", "---", yaml.Unmarshal)

// Parse reads a document and returns its front matter and body. A document
// without a front-matter block yields a zero FrontMatter and the whole input
// as body.
func Parse(r io.Reader) (FrontMatter, []byte, error) {
	var fm FrontMatter
	body, err := frontmatter.Parse(r, &fm, yamlFormat)
	if err != nil {
		return FrontMatter{}, nil, fmt.Errorf("parse front matter: %w", err)
	}
	return fm, body, nil
}
