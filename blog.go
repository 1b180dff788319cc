// Package blog serves a personal Markdown blog built with Go, Echo, and templ.
// Articles are read from a content directory, indexed in SQLite, and
// rendered with per-page SEO and social-card metadata. The same pages can be
// exported as a static site.
package blog

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/manxeguin/blog/content"
	"github.com/manxeguin/blog/seo"
)

// App is the central blog application. It wires together the content
// loader, store, cache, handlers and middleware.
type App struct {
	Config SiteConfig
	Echo   *echo.Echo
	Store  *Store
	Cache  *PostCache
	Logger *slog.Logger

	composer   seo.Composer
	shell      seo.Shell
	contentFS  fs.FS
	socialCard []byte
}

// WithContentFS reads articles from fsys instead of Config.ContentDir.
func WithContentFS(fsys fs.FS) Option {
	return func(a *App) {
		a.contentFS = fsys
	}
}

// New creates a new App with the given configuration.
func New(cfg SiteConfig, opts ...Option) *App {
	cfg.setDefaults()

	a := &App{
		Config: cfg,
		Echo:   echo.New(),
		Logger: slog.Default(),
	}
	a.Echo.HideBanner = true
	a.Echo.HidePort = true

	for _, opt := range opts {
		opt(a)
	}
	if a.contentFS == nil {
		a.contentFS = os.DirFS(a.Config.ContentDir)
	}
	a.composer = a.Config.Composer()
	a.shell = a.Config.Shell()
	return a
}

// Open validates the configuration, opens the post index, loads the content
// and registers middleware and routes. It must be called before serving or
// building.
func (a *App) Open() error {
	if err := a.Config.Validate(); err != nil {
		return err
	}

	store, err := NewStore(a.Config.DatabasePath)
	if err != nil {
		return fmt.Errorf("blog: init store: %w", err)
	}
	a.Store = store
	a.Cache = NewPostCache(a.Store, a.Config.PostCacheTTL, a.listable)

	if a.Config.SocialCardSource != "" {
		card, err := SocialCardFromFile(a.Config.SocialCardSource)
		if err != nil {
			return fmt.Errorf("blog: social card: %w", err)
		}
		a.socialCard = card
	}

	if err := a.Reload(); err != nil {
		return err
	}

	a.setupMiddleware()
	a.setupRoutes()
	return nil
}

// Reload re-reads the content tree and replaces the post index. Tags whose
// listing paths would be empty or shared fail the reload and keep the
// previous index. Posts that cannot be rendered stay indexed but are left out
// of listings and feeds.
func (a *App) Reload() error {
	docs, err := content.Load(a.contentFS)
	if err != nil {
		return fmt.Errorf("blog: load content: %w", err)
	}
	posts := make([]Post, 0, len(docs))
	for _, d := range docs {
		p := PostFromDocument(d)
		if !a.listable(p) {
			a.Logger.Warn("post left out of listings and feeds, it has no title", "slug", p.Slug, "path", d.Path)
		}
		posts = append(posts, p)
	}
	if _, err := tagIndex(collectTags(posts)); err != nil {
		return fmt.Errorf("blog: tags: %w", err)
	}
	if err := a.Store.Replace(posts); err != nil {
		return fmt.Errorf("blog: index posts: %w", err)
	}
	a.Cache.Invalidate()
	a.Logger.Info("content loaded", "posts", len(posts))
	return nil
}

// Check composes the head of every indexed post and returns all failures
// joined, so a bad article is reported before it is ever served.
func (a *App) Check() error {
	posts, err := a.Store.ListPosts("")
	if err != nil {
		return err
	}
	var errs []error
	for _, p := range posts {
		if _, err := a.postHead(p); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Start serves HTTP until ctx is cancelled, then shuts down gracefully.
// When Config.Watch is set, content changes trigger a reload.
func (a *App) Start(ctx context.Context) error {
	if a.Config.Watch {
		go func() {
			err := content.Watch(ctx, a.Config.ContentDir, content.DefaultDebounce, a.Logger, func() {
				if err := a.Reload(); err != nil {
					a.Logger.Error("reload content", "err", err)
				}
			})
			if err != nil {
				a.Logger.Error("watch content", "dir", a.Config.ContentDir, "err", err)
			}
		}()
	}

	errCh := make(chan error, 1)
	go func() {
		a.Logger.Info("listening", "addr", a.Config.Addr, "url", a.Config.URL)
		errCh <- a.Echo.Start(a.Config.Addr)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return a.Echo.Shutdown(shutdownCtx)
	}
}

func (a *App) setupRoutes() {
	e := a.Echo

	e.Static("/public", a.Config.StaticDir)
	if a.socialCard != nil {
		e.GET("/public/"+SocialCardFile, a.handleSocialCard)
	}
	e.GET("/favicon.svg", a.handleFavicon)
	e.GET("/robots.txt", a.handleRobots)
	e.GET("/healthz", handleHealth)

	e.GET("/sitemap.xml", a.handleSitemap)
	e.GET("/feed.xml", a.handleFeed)
	e.GET("/blog", handleBlogRedirect)
	e.GET("/", a.handleHome)
	e.GET("/tags/:tag/", a.handleTag)
	e.GET("/blog/:slug/", a.handlePost)
}

// Close cleans up resources. Call this when the app is shutting down.
func (a *App) Close() error {
	if a.Store != nil {
		return a.Store.Close()
	}
	return nil
}
