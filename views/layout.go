// Package views holds the blog's page components: the document shell with
// header and footer, the post listing, single posts and error pages.
package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/manxeguin/blog/seo"
)

// Layout wraps body in the document shell. The head comes entirely from
// p.Head so that every page, error pages included, carries the same globals.
func Layout(p Page, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		h.raw("<!DOCTYPE html>\n<html lang=\"en\">\n<head>\n")
		h.raw("<meta charset=\"utf-8\">\n")
		h.raw("<meta name=\"viewport\" content=\"width=device-width, initial-scale=1\">\n")
		h.component(seo.Elements(p.Head))
		h.raw(`<link rel="alternate" type="application/rss+xml"`)
		h.attr("title", p.Site.Name)
		h.raw(" href=\"/feed.xml\">\n")
		h.raw("<link rel=\"icon\" href=\"/favicon.svg\" type=\"image/svg+xml\">\n")
		h.raw("</head>\n<body>\n")
		header(h, p.Site)
		h.raw("<main>\n")
		h.component(body)
		h.raw("</main>\n")
		footer(h, p.Site)
		h.raw("</body>\n</html>\n")
		return h.err
	})
}

func header(h *htmlWriter, s Site) {
	h.raw(`<header class="site-header"><a class="site-title" href="/">`)
	h.text(s.Name)
	h.raw("</a>")
	if s.Description != "" {
		h.raw(`<p class="site-description">`)
		h.text(s.Description)
		h.raw("</p>")
	}
	h.raw("</header>\n")
}

func footer(h *htmlWriter, s Site) {
	h.raw(`<footer class="site-footer"><p>`)
	if s.Author != "" {
		h.text(s.Author)
		h.raw(" · ")
	}
	h.raw(`<a href="/feed.xml">RSS</a>`)
	h.raw("</p></footer>\n")
}
