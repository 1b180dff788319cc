package blog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/a-h/templ"
)

// Build renders every page and feed into outDir as a static site mirroring
// the served URL layout. outDir is emptied first. A post that cannot be
// rendered, for instance one without a title, fails the whole build.
// Tag directories use the unescaped slug, which static servers reach by
// decoding the escaped TagPath.
func (a *App) Build(ctx context.Context, outDir string) error {
	clean := filepath.Clean(outDir)
	if outDir == "" || clean == "." || clean == string(filepath.Separator) {
		return fmt.Errorf("blog: refusing to build into %q", outDir)
	}

	if err := os.RemoveAll(clean); err != nil {
		return fmt.Errorf("blog: clean %s: %w", clean, err)
	}
	if err := os.MkdirAll(clean, os.ModePerm); err != nil {
		return fmt.Errorf("blog: create %s: %w", clean, err)
	}

	all, err := a.Store.ListPosts("")
	if err != nil {
		return err
	}
	posts, err := a.Cache.ListPosts("")
	if err != nil {
		return err
	}
	tags, err := a.Cache.ListTags()
	if err != nil {
		return err
	}

	home, err := a.homePage("")
	if err != nil {
		return err
	}
	if err := writeComponent(ctx, filepath.Join(clean, "index.html"), home); err != nil {
		return err
	}

	var errs []error
	for _, p := range all {
		page, err := a.postPage(p)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		if err := writeComponent(ctx, filepath.Join(clean, "blog", p.Slug, "index.html"), page); err != nil {
			return err
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("blog: build: %w", errors.Join(errs...))
	}

	for _, t := range tags {
		page, err := a.homePage(t)
		if err != nil {
			return err
		}
		if err := writeComponent(ctx, filepath.Join(clean, "tags", TagSlug(t), "index.html"), page); err != nil {
			return err
		}
	}

	if err := writeComponent(ctx, filepath.Join(clean, "404.html"), a.notFoundPage()); err != nil {
		return err
	}

	var feed bytes.Buffer
	if err := writeRSS(&feed, a.Config, posts); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(clean, "feed.xml"), feed.Bytes()); err != nil {
		return err
	}

	var sitemap bytes.Buffer
	if err := writeSitemap(&sitemap, a.Config.URL, posts, tags); err != nil {
		return err
	}
	if err := writeFile(filepath.Join(clean, "sitemap.xml"), sitemap.Bytes()); err != nil {
		return err
	}

	if err := writeFile(filepath.Join(clean, "robots.txt"), []byte(robotsTxt(a.Config.URL))); err != nil {
		return err
	}

	publicDir := filepath.Join(clean, "public")
	if _, err := os.Stat(a.Config.StaticDir); err == nil {
		if err := copyDirContents(a.Config.StaticDir, publicDir); err != nil {
			return fmt.Errorf("blog: copy static assets: %w", err)
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	if a.socialCard != nil {
		if err := writeFile(filepath.Join(publicDir, SocialCardFile), a.socialCard); err != nil {
			return err
		}
	}

	a.Logger.Info("site built", "dir", clean, "posts", len(all), "listed", len(posts), "tags", len(tags))
	return nil
}

func writeComponent(ctx context.Context, path string, cmp templ.Component) error {
	var buf bytes.Buffer
	if err := cmp.Render(ctx, &buf); err != nil {
		return fmt.Errorf("render %s: %w", path, err)
	}
	return writeFile(path, buf.Bytes())
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// copyDirContents copies the tree under src into dst, skipping dotfiles.
func copyDirContents(src, dst string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		if rel != "." && strings.HasPrefix(d.Name(), ".") {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		target := filepath.Join(dst, rel)
		if d.IsDir() {
			return os.MkdirAll(target, os.ModePerm)
		}
		return copyFile(path, target)
	})
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy %s: %w", src, err)
	}
	return out.Close()
}
