package blog

import (
	"strings"

	"github.com/manxeguin/blog/content"
	"github.com/manxeguin/blog/seo"
)

// Post is an article as stored in the index and handed to templates.
type Post struct {
	Slug        string
	Title       string
	Date        string // YYYY-MM-DD, empty when undated
	Description string
	Author      string
	Keywords    string   // front-matter tag value, verbatim
	Tags        []string // normalized keywords used for filtering
	Content     string   // Markdown body
	Link        string
}

// Meta returns the page metadata used to compose the post's head tags.
func (p Post) Meta() seo.PageMeta {
	return seo.PageMeta{Title: p.Title, Description: p.Description, Tag: p.Keywords}
}

// PostFromDocument converts a parsed content document into a Post.
func PostFromDocument(d content.Document) Post {
	p := Post{
		Slug:        d.Slug,
		Title:       strings.TrimSpace(d.Title),
		Description: d.Description,
		Author:      d.Author,
		Keywords:    string(d.Tag),
		Content:     d.Body,
		Link:        "/blog/" + d.Slug + "/",
	}
	if !d.Date.IsZero() {
		p.Date = d.Date.Format(content.DateLayout)
	}
	for _, t := range d.Tag.List() {
		p.Tags = append(p.Tags, normalizeTag(t))
	}
	return p
}
