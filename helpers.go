package blog

import (
	"errors"
	"fmt"
	"net/url"
	"path"
	"sort"
	"strings"
	"unicode"
)

// TagSlug turns a tag into its listing path segment. Letters, digits and
// symbols are kept in any script; runs of whitespace, hyphens and path
// separators become a single hyphen. A tag with nothing usable yields "".
func TagSlug(tag string) string {
	var b strings.Builder
	hyphen := false
	for _, r := range normalizeTag(tag) {
		if unicode.IsSpace(r) || r == '-' || r == '/' || r == '\\' {
			hyphen = b.Len() > 0
			continue
		}
		if hyphen {
			b.WriteByte('-')
			hyphen = false
		}
		b.WriteRune(r)
	}
	slug := b.String()
	if strings.Trim(slug, ".") == "" {
		return ""
	}
	return slug
}

// BuildURL joins a base URL with path segments, ensuring a trailing slash.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	u.Path = path.Join(u.Path, path.Join(pathSegments...))
	if len(pathSegments) > 0 && !strings.HasSuffix(u.Path, "/") {
		u.Path += "/"
	}
	return u.String()
}

// TagPath returns the escaped listing path for a tag.
func TagPath(tag string) string {
	return "/tags/" + url.PathEscape(TagSlug(tag)) + "/"
}

// collectTags returns the sorted, deduplicated tags of posts.
func collectTags(posts []Post) []string {
	set := make(map[string]struct{})
	for _, p := range posts {
		for _, t := range p.Tags {
			if n := normalizeTag(t); n != "" {
				set[n] = struct{}{}
			}
		}
	}
	tags := make([]string, 0, len(set))
	for t := range set {
		tags = append(tags, t)
	}
	sort.Strings(tags)
	return tags
}

// tagIndex maps each tag's listing slug back to the tag. Tags without a
// usable slug and tags sharing one are all reported.
func tagIndex(tags []string) (map[string]string, error) {
	idx := make(map[string]string, len(tags))
	var errs []error
	for _, t := range tags {
		slug := TagSlug(t)
		if slug == "" {
			errs = append(errs, fmt.Errorf("tag %q has no usable listing path", t))
			continue
		}
		if prev, ok := idx[slug]; ok && prev != t {
			errs = append(errs, fmt.Errorf("tags %q and %q share the listing path %s", prev, t, TagPath(t)))
			continue
		}
		idx[slug] = t
	}
	return idx, errors.Join(errs...)
}

// FilterRelatedPosts finds posts that share at least one tag with current.
func FilterRelatedPosts(current Post, posts []Post) []Post {
	tagSet := make(map[string]struct{})
	for _, t := range current.Tags {
		if tag := normalizeTag(t); tag != "" {
			tagSet[tag] = struct{}{}
		}
	}
	var related []Post
	for _, p := range posts {
		if p.Slug == current.Slug {
			continue
		}
		for _, t := range p.Tags {
			if _, ok := tagSet[normalizeTag(t)]; ok {
				related = append(related, p)
				break
			}
		}
	}
	return related
}

func normalizeTag(t string) string {
	return strings.ToLower(strings.TrimSpace(t))
}
