// Package seo builds the metadata that goes into a page's <head>: the
// per-page SEO and social-card tags derived from front matter, and the
// site-wide document shell applied to every page.
package seo

import (
	"errors"
	"strings"
)

// ErrMissingTitle is returned when a page is rendered without a title.
var ErrMissingTitle = errors.New("seo: page title is required")

// Kind is the attribute that identifies a <meta> element.
type Kind string

const (
	KindName     Kind = "name"
	KindProperty Kind = "property"
)

// HeadTag is a single <meta> declaration.
type HeadTag struct {
	Kind    Kind
	Key     string
	Content string
}

// Name returns a <meta name=...> tag.
func Name(key, content string) HeadTag {
	return HeadTag{Kind: KindName, Key: key, Content: content}
}

// Property returns a <meta property=...> tag.
func Property(key, content string) HeadTag {
	return HeadTag{Kind: KindProperty, Key: key, Content: content}
}

// PageMeta is the front-matter subset that drives per-page tags.
type PageMeta struct {
	Title       string
	Description string
	Tag         string // comma-separated keywords, already joined
}

// Composer turns page metadata into head tags. SiteName and TwitterSite are
// site-wide constants taken from configuration.
type Composer struct {
	SiteName    string
	TwitterSite string
}

// Compose returns the head tags for a page. Description-derived tags are
// emitted only when meta.Description is set; keywords only when meta.Tag is
// set. The result is deterministic for identical input.
func (c Composer) Compose(title string, meta PageMeta) ([]HeadTag, error) {
	if strings.TrimSpace(title) == "" {
		return nil, ErrMissingTitle
	}

	var tags []HeadTag
	if meta.Description != "" {
		tags = append(tags,
			Name("description", meta.Description),
			Property("og:site_name", c.SiteName),
			Property("og:description", meta.Description),
			Property("og:title", title),
			Name("twitter:site", c.twitterSite()),
			Name("twitter:title", title),
			Name("twitter:description", meta.Description),
		)
	}
	if meta.Tag != "" {
		tags = append(tags, Name("keywords", meta.Tag))
	}
	return tags, nil
}

func (c Composer) twitterSite() string {
	if c.TwitterSite != "" {
		return c.TwitterSite
	}
	return c.SiteName
}
