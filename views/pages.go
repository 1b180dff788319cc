package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/manxeguin/blog/markdown"
)

// Home renders the post listing, optionally narrowed to activeTag.
func Home(p Page, entries []Entry, activeTag string, tags []Tag) templ.Component {
	return Layout(p, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		h.raw(`<section class="posts">`)
		if activeTag != "" {
			h.raw("<h1>Posts tagged ")
			h.text(TagLabel(activeTag))
			h.raw("</h1>")
		}
		if len(tags) > 0 {
			tagList(h, tags)
		}
		if len(entries) == 0 {
			h.raw(`<p class="empty">No posts yet.</p>`)
		}
		for _, e := range entries {
			h.raw(`<article class="post-summary"><h2><a`)
			h.attr("href", e.Link)
			h.raw(">")
			h.text(e.Title)
			h.raw("</a></h2>")
			dateline(h, e)
			if e.Description != "" {
				h.raw("<p>")
				h.text(e.Description)
				h.raw("</p>")
			}
			h.raw("</article>\n")
		}
		h.raw("</section>\n")
		return h.err
	}))
}

// Post renders a single article followed by related posts.
func Post(p Page, e Entry, related []Entry) templ.Component {
	return Layout(p, templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		h.raw(`<article class="post"><header><h1>`)
		h.text(e.Title)
		h.raw("</h1>")
		dateline(h, e)
		if len(e.Tags) > 0 {
			tagList(h, e.Tags)
		}
		h.raw("</header>\n<div class=\"post-body\">")
		h.component(markdown.Markdown(e.Body))
		h.raw("</div></article>\n")
		if len(related) > 0 {
			h.raw(`<aside class="related"><h2>Related posts</h2><ul>`)
			for _, r := range related {
				h.raw("<li><a")
				h.attr("href", r.Link)
				h.raw(">")
				h.text(r.Title)
				h.raw("</a></li>")
			}
			h.raw("</ul></aside>\n")
		}
		return h.err
	}))
}

// NotFound renders the 404 page.
func NotFound(p Page) templ.Component {
	return Layout(p, message("Page not found", "The page you are looking for does not exist."))
}

// ServerError renders the 500 page.
func ServerError(p Page) templ.Component {
	return Layout(p, message("Something went wrong", "Please try again later."))
}

func message(title, body string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newWriter(ctx, w)
		h.raw(`<section class="message"><h1>`)
		h.text(title)
		h.raw("</h1><p>")
		h.text(body)
		h.raw(`</p><p><a href="/">Back to all posts</a></p></section>`)
		h.raw("\n")
		return h.err
	})
}

func dateline(h *htmlWriter, e Entry) {
	if e.Date == "" && e.Author == "" {
		return
	}
	h.raw(`<p class="dateline">`)
	if e.Date != "" {
		h.raw("<time")
		h.attr("datetime", e.Date)
		h.raw(">")
		h.text(DisplayDate(e.Date))
		h.raw("</time>")
	}
	if e.Author != "" {
		if e.Date != "" {
			h.raw(" · ")
		}
		h.text(e.Author)
	}
	h.raw("</p>")
}

func tagList(h *htmlWriter, tags []Tag) {
	h.raw(`<ul class="tags">`)
	for _, t := range tags {
		h.raw("<li><a")
		h.attr("href", t.Link)
		if t.Active {
			h.attr("class", "tag active")
		} else {
			h.attr("class", "tag")
		}
		h.raw(">")
		h.text(t.Name)
		h.raw("</a></li>")
	}
	h.raw("</ul>")
}
