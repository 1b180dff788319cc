package views

import "github.com/manxeguin/blog/seo"

// Site holds the site-wide values templates need for header, footer and
// links. Head metadata travels separately in Page.Head.
type Site struct {
	Name        string
	URL         string
	Description string
	Author      string
}

// Page is what every full-page component receives.
type Page struct {
	Site Site
	Head seo.Head
}

// Entry is a post as shown in listings and on its own page.
type Entry struct {
	Title       string
	Link        string
	Date        string // YYYY-MM-DD or empty
	Description string
	Author      string
	Tags        []Tag
	Body        string // Markdown
}

// Tag is a tag label with its listing link.
type Tag struct {
	Name   string
	Link   string
	Active bool
}
