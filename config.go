package blog

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/manxeguin/blog/seo"
)

// SocialCardFile is the file name of the generated default social-card image
// under /public/.
const SocialCardFile = "social-card.jpg"

// SiteConfig holds all configuration for the blog. Site-wide constants that
// end up in every page head live here rather than in templates.
type SiteConfig struct {
	Name        string `mapstructure:"name"`        // Site name (default "Manxeguin Dev")
	URL         string `mapstructure:"url"`         // Canonical URL (default "http://localhost:3000")
	Description string `mapstructure:"description"` // Site description for RSS and default meta tags
	Author      string `mapstructure:"author"`      // Author name for JSON-LD

	TwitterHandle    string `mapstructure:"twitter_handle"`     // twitter:site (default Name)
	SocialImage      string `mapstructure:"social_image"`       // Default og:image URL
	SocialCardSource string `mapstructure:"social_card_source"` // Local image scaled into the default card
	Robots           string `mapstructure:"robots"`             // default "follow, index"

	AnalyticsScriptURL string `mapstructure:"analytics_script_url"` // Third-party analytics script
	AnalyticsClientKey string `mapstructure:"analytics_client_key"`
	AnalyticsKeyAttr   string `mapstructure:"analytics_key_attr"` // default "data-key"

	Addr         string        `mapstructure:"addr"`          // Listen address (default ":3000")
	DatabasePath string        `mapstructure:"database_path"` // SQLite path (default "data/blog.db")
	ContentDir   string        `mapstructure:"content_dir"`   // Markdown articles (default "content")
	StaticDir    string        `mapstructure:"static_dir"`    // Static assets (default "public")
	OutputDir    string        `mapstructure:"output_dir"`    // Static export target (default "dist")
	PostCacheTTL time.Duration `mapstructure:"post_cache_ttl"` // Post cache TTL (default 5min)
	Watch        bool          `mapstructure:"watch"`         // Reload content on change
	LogLevel     string        `mapstructure:"log_level"`
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Manxeguin Dev"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	c.URL = strings.TrimSuffix(c.URL, "/")
	if c.Robots == "" {
		c.Robots = seo.DefaultRobots
	}
	if c.AnalyticsKeyAttr == "" {
		c.AnalyticsKeyAttr = "data-key"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.DatabasePath == "" {
		c.DatabasePath = "data/blog.db"
	}
	if c.ContentDir == "" {
		c.ContentDir = "content"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.OutputDir == "" {
		c.OutputDir = "dist"
	}
	if c.PostCacheTTL == 0 {
		c.PostCacheTTL = 5 * time.Minute
	}
	if c.SocialImage == "" && c.SocialCardSource != "" {
		c.SocialImage = BuildURL(c.URL, "public", SocialCardFile)
		c.SocialImage = strings.TrimSuffix(c.SocialImage, "/")
	}
}

// Validate reports configuration that would produce broken pages.
func (c *SiteConfig) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Name) == "" {
		errs = append(errs, errors.New("name is required"))
	}
	if err := absoluteURL(c.URL); err != nil {
		errs = append(errs, fmt.Errorf("url: %w", err))
	}
	if c.AnalyticsScriptURL != "" {
		if err := absoluteURL(c.AnalyticsScriptURL); err != nil {
			errs = append(errs, fmt.Errorf("analytics_script_url: %w", err))
		}
	}
	if c.AnalyticsClientKey != "" && c.AnalyticsScriptURL == "" {
		errs = append(errs, errors.New("analytics_client_key is set but analytics_script_url is empty"))
	}
	if c.PostCacheTTL < 0 {
		errs = append(errs, errors.New("post_cache_ttl must not be negative"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("blog: invalid config: %w", errors.Join(errs...))
	}
	return nil
}

func absoluteURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%q must be an absolute http(s) URL", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("%q has no host", raw)
	}
	return nil
}

// Composer returns the per-page meta-tag composer for this site.
func (c SiteConfig) Composer() seo.Composer {
	return seo.Composer{SiteName: c.Name, TwitterSite: c.TwitterHandle}
}

// Shell returns the document shell applied to every page.
func (c SiteConfig) Shell() seo.Shell {
	card := "summary"
	if c.SocialImage != "" {
		card = "summary_large_image"
	}
	return seo.Shell{
		Robots:             c.Robots,
		DefaultTitle:       c.Name,
		DefaultDescription: c.Description,
		DefaultImage:       c.SocialImage,
		TwitterCard:        card,
		OGType:             "website",
		Analytics: seo.Script{
			Src:     c.AnalyticsScriptURL,
			Async:   true,
			KeyAttr: c.AnalyticsKeyAttr,
			Key:     c.AnalyticsClientKey,
		},
	}
}

// Option configures additional App behavior.
type Option func(*App)

// WithLogger sets the structured logger (default slog.Default()).
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		a.Logger = l
	}
}
