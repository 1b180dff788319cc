package seo

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Elements renders the contents of <head> for h. Attribute values are
// escaped here; callers pass raw strings.
func Elements(h Head) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		if h.Title != "" {
			b.WriteString("<title>")
			b.WriteString(templ.EscapeString(h.Title))
			b.WriteString("</title>\n")
		}
		for _, t := range h.Tags {
			writeMeta(&b, t)
		}
		if h.Canonical != "" {
			b.WriteString(`<link rel="canonical" href="`)
			b.WriteString(templ.EscapeString(h.Canonical))
			b.WriteString("\">\n")
		}
		for _, ld := range h.JSONLD {
			// JSON encoding already escapes <, > and &.
			b.WriteString(`<script type="application/ld+json">`)
			b.WriteString(ld)
			b.WriteString("</script>\n")
		}
		for _, s := range h.Scripts {
			writeScript(&b, s)
		}
		_, err := io.WriteString(w, b.String())
		return err
	})
}

func writeMeta(b *strings.Builder, t HeadTag) {
	b.WriteString("<meta ")
	b.WriteString(string(t.Kind))
	b.WriteString(`="`)
	b.WriteString(templ.EscapeString(t.Key))
	b.WriteString(`" content="`)
	b.WriteString(templ.EscapeString(t.Content))
	b.WriteString("\">\n")
}

func writeScript(b *strings.Builder, s Script) {
	b.WriteString("<script")
	if s.Async {
		b.WriteString(" async")
	}
	b.WriteString(` src="`)
	b.WriteString(templ.EscapeString(s.Src))
	b.WriteString(`"`)
	if s.KeyAttr != "" && s.Key != "" {
		b.WriteString(" ")
		b.WriteString(templ.EscapeString(s.KeyAttr))
		b.WriteString(`="`)
		b.WriteString(templ.EscapeString(s.Key))
		b.WriteString(`"`)
	}
	b.WriteString("></script>\n")
}
