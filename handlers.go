package blog

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/manxeguin/blog/seo"
)

// handleHome serves the full listing. The legacy ?tag= filter redirects to
// the tag's listing page.
func (a *App) handleHome(c echo.Context) error {
	if q := c.QueryParam("tag"); q != "" {
		tag, ok := a.Cache.TagBySlug(TagSlug(q))
		if !ok {
			return echo.ErrNotFound
		}
		return c.Redirect(http.StatusMovedPermanently, TagPath(tag))
	}
	return a.renderHome(c, "")
}

func (a *App) handleTag(c echo.Context) error {
	slug := c.Param("tag")
	tag, ok := a.Cache.TagBySlug(slug)
	if !ok {
		// The router may hand over the segment still escaped.
		if unescaped, err := url.PathUnescape(slug); err == nil {
			tag, ok = a.Cache.TagBySlug(unescaped)
		}
	}
	if !ok {
		return echo.ErrNotFound
	}
	return a.renderHome(c, tag)
}

func (a *App) renderHome(c echo.Context, tag string) error {
	page, err := a.homePage(tag)
	if err != nil {
		return err
	}
	return Render(c, page)
}

func (a *App) handlePost(c echo.Context) error {
	slug := c.Param("slug")
	post, err := a.Cache.GetPost(slug)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return echo.ErrNotFound
		}
		return err
	}
	page, err := a.postPage(post)
	if err != nil {
		return err
	}
	return Render(c, page)
}

func (a *App) handleSitemap(c echo.Context) error {
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return err
	}
	tags, err := a.Cache.ListTags()
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	return writeSitemap(c.Response(), a.Config.URL, posts, tags)
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return err
	}
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	return writeRSS(c.Response(), a.Config, posts)
}

func handleBlogRedirect(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/")
}

func handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "ok")
}

func (a *App) handleFavicon(c echo.Context) error {
	return c.File(a.Config.StaticDir + "/favicon.svg")
}

// handleRobots generates robots.txt from the site URL.
func (a *App) handleRobots(c echo.Context) error {
	return c.String(http.StatusOK, robotsTxt(a.Config.URL))
}

func (a *App) handleSocialCard(c echo.Context) error {
	return c.Blob(http.StatusOK, "image/jpeg", a.socialCard)
}

func robotsTxt(siteURL string) string {
	return fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", siteURL)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		_ = RenderStatus(c, http.StatusNotFound, a.notFoundPage())
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		if errors.Is(err, seo.ErrMissingTitle) {
			a.Logger.Error("page has no title, check its front matter", "path", c.Request().URL.Path, "err", err)
		} else {
			a.Logger.Error("server error", "path", c.Request().URL.Path, "err", err)
		}
		_ = RenderStatus(c, code, a.serverErrorPage())
		return
	}
	a.Echo.DefaultHTTPErrorHandler(err, c)
}
