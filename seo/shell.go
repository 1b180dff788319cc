package seo

import "net/url"

// DefaultRobots is the robots directive emitted when none is configured.
const DefaultRobots = "follow, index"

// Script is an external script reference placed in <head>.
type Script struct {
	Src     string
	Async   bool
	KeyAttr string // attribute carrying the client key, e.g. "data-key"
	Key     string
}

// Origin returns the scheme://host part of Src, or "" if Src is relative or
// unparsable.
func (s Script) Origin() string {
	u, err := url.Parse(s.Src)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return ""
	}
	return u.Scheme + "://" + u.Host
}

// Shell holds the site-wide head entries applied to every page.
type Shell struct {
	Robots             string
	DefaultTitle       string
	DefaultDescription string
	DefaultImage       string
	TwitterCard        string
	OGType             string
	Analytics          Script
}

// Head is the merged head of a single page, ready for rendering.
type Head struct {
	Title     string
	Canonical string
	Tags      []HeadTag
	Scripts   []Script
	JSONLD    []string
}

// Globals returns the site-wide default tags in a fixed order.
func (s Shell) Globals() []HeadTag {
	robots := s.Robots
	if robots == "" {
		robots = DefaultRobots
	}
	tags := []HeadTag{Name("robots", robots)}
	if s.DefaultDescription != "" {
		tags = append(tags,
			Name("description", s.DefaultDescription),
			Property("og:description", s.DefaultDescription),
			Name("twitter:description", s.DefaultDescription),
		)
	}
	if s.DefaultTitle != "" {
		tags = append(tags,
			Property("og:title", s.DefaultTitle),
			Name("twitter:title", s.DefaultTitle),
		)
	}
	if s.DefaultImage != "" {
		tags = append(tags,
			Property("og:image", s.DefaultImage),
			Name("twitter:image", s.DefaultImage),
		)
	}
	if s.TwitterCard != "" {
		tags = append(tags, Name("twitter:card", s.TwitterCard))
	}
	if s.OGType != "" {
		tags = append(tags, Property("og:type", s.OGType))
	}
	return tags
}

// Head merges the page's own tags with the shell. A page tag replaces the
// global default with the same kind and key; globals keep their order and
// come first. An empty title falls back to DefaultTitle.
func (s Shell) Head(title string, page []HeadTag) Head {
	type key struct {
		kind Kind
		key  string
	}
	overridden := make(map[key]struct{}, len(page))
	for _, t := range page {
		overridden[key{t.Kind, t.Key}] = struct{}{}
	}

	globals := s.Globals()
	tags := make([]HeadTag, 0, len(globals)+len(page))
	for _, g := range globals {
		if _, ok := overridden[key{g.Kind, g.Key}]; ok {
			continue
		}
		tags = append(tags, g)
	}
	tags = append(tags, page...)

	if title == "" {
		title = s.DefaultTitle
	}
	h := Head{Title: title, Tags: tags}
	if s.Analytics.Src != "" {
		h.Scripts = append(h.Scripts, s.Analytics)
	}
	return h
}
