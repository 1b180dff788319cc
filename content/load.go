package content

import (
	"bytes"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"
)

// DateLayout is the canonical front-matter date format.
const DateLayout = "2006-01-02"

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	DateLayout,
}

// Document is one parsed article.
type Document struct {
	Path string // path inside the content tree
	Slug string
	FrontMatter
	Date time.Time // zero when the front matter has no date
	Body string
}

// ParseDate accepts the date formats allowed in front matter.
func ParseDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q, use YYYY-MM-DD or RFC3339", s)
}

// SlugFromPath derives a slug from a content file name.
func SlugFromPath(p string) string {
	base := path.Base(p)
	return strings.TrimSuffix(base, path.Ext(base))
}

// Load reads every .md file under fsys. Documents are returned newest first;
// undated documents sort last, ties break on slug.
func Load(fsys fs.FS) ([]Document, error) {
	var docs []Document
	seen := make(map[string]string)
	err := fs.WalkDir(fsys, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			if p != "." && strings.HasPrefix(d.Name(), ".") {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.EqualFold(path.Ext(p), ".md") {
			return nil
		}
		raw, err := fs.ReadFile(fsys, p)
		if err != nil {
			return fmt.Errorf("read %s: %w", p, err)
		}
		doc, err := parseDocument(p, raw)
		if err != nil {
			return err
		}
		if prev, ok := seen[doc.Slug]; ok {
			return fmt.Errorf("%s: slug %q already used by %s", p, doc.Slug, prev)
		}
		seen[doc.Slug] = p
		docs = append(docs, doc)
		return nil
	})
	if err != nil {
		return nil, err
	}
	SortNewestFirst(docs)
	return docs, nil
}

func parseDocument(p string, raw []byte) (Document, error) {
	fm, body, err := Parse(bytes.NewReader(raw))
	if err != nil {
		return Document{}, fmt.Errorf("%s: %w", p, err)
	}
	doc := Document{
		Path:        p,
		Slug:        SlugFromPath(p),
		FrontMatter: fm,
		Body:        string(body),
	}
	if s := strings.Trim(strings.TrimSpace(fm.Slug), "/"); s != "" {
		if strings.Contains(s, "/") {
			return Document{}, fmt.Errorf("%s: slug %q must not contain '/'", p, fm.Slug)
		}
		doc.Slug = s
	}
	if fm.Date != "" {
		t, err := ParseDate(fm.Date)
		if err != nil {
			return Document{}, fmt.Errorf("%s: %w", p, err)
		}
		doc.Date = t
	}
	return doc, nil
}

// SortNewestFirst orders docs by date descending.
func SortNewestFirst(docs []Document) {
	sort.SliceStable(docs, func(i, j int) bool {
		di, dj := docs[i].Date, docs[j].Date
		switch {
		case di.IsZero() && dj.IsZero():
			return docs[i].Slug < docs[j].Slug
		case di.IsZero():
			return false
		case dj.IsZero():
			return true
		case di.Equal(dj):
			return docs[i].Slug < docs[j].Slug
		}
		return di.After(dj)
	})
}
