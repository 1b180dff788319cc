package blog

import (
	"fmt"

	"github.com/a-h/templ"

	"github.com/manxeguin/blog/seo"
	"github.com/manxeguin/blog/views"
)

func (a *App) site() views.Site {
	return views.Site{
		Name:        a.Config.Name,
		URL:         a.Config.URL,
		Description: a.Config.Description,
		Author:      a.Config.Author,
	}
}

// listable reports whether p may be linked from listings and feeds, i.e.
// whether its own page can be rendered.
func (a *App) listable(p Post) bool {
	_, err := a.composer.Compose(p.Title, p.Meta())
	return err == nil
}

// postHead composes the head of a post page. A post without a title is a
// configuration error and yields no head at all.
func (a *App) postHead(p Post) (seo.Head, error) {
	tags, err := a.composer.Compose(p.Title, p.Meta())
	if err != nil {
		return seo.Head{}, fmt.Errorf("post %q: %w", p.Slug, err)
	}
	postURL := BuildURL(a.Config.URL, "blog", p.Slug)
	tags = append(tags,
		seo.Property("og:url", postURL),
		seo.Property("og:type", "article"),
	)
	h := a.shell.Head(p.Title, tags)
	h.Canonical = postURL
	author := p.Author
	if author == "" {
		author = a.Config.Author
	}
	h.JSONLD = []string{seo.JSON(seo.BlogPosting(seo.Article{
		Headline:      p.Title,
		Description:   p.Description,
		URL:           postURL,
		DatePublished: p.Date,
		Author:        author,
		Publisher:     a.Config.Name,
		Keywords:      p.Keywords,
		Image:         a.Config.SocialImage,
	}))}
	return h, nil
}

// listingHead composes the head of the home page or a tag listing.
func (a *App) listingHead(tag string) (seo.Head, error) {
	title := a.Config.Name
	canonical := BuildURL(a.Config.URL)
	if tag != "" {
		title = "Posts tagged " + views.TagLabel(tag) + " | " + a.Config.Name
		canonical = BuildURL(a.Config.URL, "tags", TagSlug(tag))
	}
	tags, err := a.composer.Compose(title, seo.PageMeta{Title: title, Description: a.Config.Description, Tag: tag})
	if err != nil {
		return seo.Head{}, err
	}
	tags = append(tags, seo.Property("og:url", canonical))
	h := a.shell.Head(title, tags)
	h.Canonical = canonical
	if tag == "" {
		h.JSONLD = []string{seo.JSON(seo.WebSite(a.Config.Name, canonical, a.Config.Description, a.Config.Author))}
	}
	return h, nil
}

// errorHead is the shell head for error pages, kept out of search indexes.
func (a *App) errorHead(title string) seo.Head {
	return a.shell.Head(title+" | "+a.Config.Name, []seo.HeadTag{seo.Name("robots", "noindex")})
}

func entryFor(p Post) views.Entry {
	e := views.Entry{
		Title:       p.Title,
		Link:        p.Link,
		Date:        p.Date,
		Description: p.Description,
		Author:      p.Author,
		Body:        p.Content,
	}
	for _, t := range p.Tags {
		e.Tags = append(e.Tags, views.Tag{Name: t, Link: TagPath(t)})
	}
	return e
}

func entriesFor(posts []Post) []views.Entry {
	out := make([]views.Entry, 0, len(posts))
	for _, p := range posts {
		out = append(out, entryFor(p))
	}
	return out
}

// homePage builds the listing page, narrowed to tag when non-empty.
func (a *App) homePage(tag string) (templ.Component, error) {
	posts, err := a.Cache.ListPosts(tag)
	if err != nil {
		return nil, err
	}
	allTags, err := a.Cache.ListTags()
	if err != nil {
		return nil, err
	}
	head, err := a.listingHead(tag)
	if err != nil {
		return nil, err
	}
	tags := make([]views.Tag, 0, len(allTags))
	for _, t := range allTags {
		tags = append(tags, views.Tag{Name: t, Link: TagPath(t), Active: t == normalizeTag(tag)})
	}
	return views.Home(views.Page{Site: a.site(), Head: head}, entriesFor(posts), tag, tags), nil
}

// postPage builds a single post page. It fails for an untitled post instead
// of rendering a page with incomplete metadata.
func (a *App) postPage(p Post) (templ.Component, error) {
	head, err := a.postHead(p)
	if err != nil {
		return nil, err
	}
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return nil, err
	}
	related := entriesFor(FilterRelatedPosts(p, posts))
	return views.Post(views.Page{Site: a.site(), Head: head}, entryFor(p), related), nil
}

func (a *App) notFoundPage() templ.Component {
	return views.NotFound(views.Page{Site: a.site(), Head: a.errorHead("Page not found")})
}

func (a *App) serverErrorPage() templ.Component {
	return views.ServerError(views.Page{Site: a.site(), Head: a.errorHead("Something went wrong")})
}
