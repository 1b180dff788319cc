package views

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manxeguin/blog/seo"
)

func renderDoc(t *testing.T, c templ.Component) *goquery.Document {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(buf.String()))
	require.NoError(t, err)
	return doc
}

func testPage() Page {
	return Page{
		Site: Site{Name: "Manxeguin Dev", URL: "https://manxeguin.dev", Description: "Frontend notes", Author: "Manxeguin"},
		Head: seo.Head{
			Title: "Acme Dashboard",
			Tags:  []seo.HeadTag{seo.Name("robots", "follow, index"), seo.Property("og:title", "Acme Dashboard")},
		},
	}
}

func TestLayoutHeadAndShell(t *testing.T) {
	doc := renderDoc(t, NotFound(testPage()))

	assert.Equal(t, "Acme Dashboard", doc.Find("head title").Text())
	robots, _ := doc.Find(`head meta[name="robots"]`).Attr("content")
	assert.Equal(t, "follow, index", robots)
	assert.Equal(t, "Manxeguin Dev", doc.Find("header .site-title").Text())
	assert.Contains(t, doc.Find("footer").Text(), "Manxeguin")
	assert.Equal(t, "Page not found", doc.Find("main h1").Text())
}

func TestHomeListsEntries(t *testing.T) {
	entries := []Entry{
		{Title: "First <post>", Link: "/blog/first/", Date: "2024-01-02", Description: "desc"},
		{Title: "Second", Link: "/blog/second/"},
	}
	tags := []Tag{{Name: "go", Link: "/tags/go/", Active: true}, {Name: "web", Link: "/tags/web/"}}
	doc := renderDoc(t, Home(testPage(), entries, "micro frontends", tags))

	assert.Equal(t, "Posts tagged Micro Frontends", doc.Find("main h1").Text())
	assert.Equal(t, 2, doc.Find("article.post-summary").Length())
	assert.Equal(t, "First <post>", doc.Find("article.post-summary h2 a").First().Text())
	assert.Equal(t, "Jan 2, 2024", doc.Find("time").First().Text())
	assert.Equal(t, 1, doc.Find("a.tag.active").Length())
}

func TestHomeEmpty(t *testing.T) {
	doc := renderDoc(t, Home(testPage(), nil, "", nil))
	assert.Equal(t, 1, doc.Find("p.empty").Length())
}

func TestPostRendersMarkdownAndRelated(t *testing.T) {
	e := Entry{Title: "Post", Link: "/blog/post/", Body: "Hello *world*", Tags: []Tag{{Name: "go", Link: "/tags/go/"}}}
	related := []Entry{{Title: "Other", Link: "/blog/other/"}}
	doc := renderDoc(t, Post(testPage(), e, related))

	assert.Equal(t, "world", doc.Find(".post-body em").Text())
	assert.Equal(t, "Other", doc.Find("aside.related a").Text())
	href, _ := doc.Find("ul.tags a").Attr("href")
	assert.Equal(t, "/tags/go/", href)
}

func TestDisplayDate(t *testing.T) {
	assert.Equal(t, "Apr 12, 2023", DisplayDate("2023-04-12"))
	assert.Equal(t, "someday", DisplayDate("someday"))
}
