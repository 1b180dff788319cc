package seo

import "encoding/json"

// JSON marshals v to a compact JSON string, or "{}" on error.
func JSON(v any) string {
	b, err := json.Marshal(v)
	if err != nil {
		return "{}"
	}
	return string(b)
}

// WebSite returns a schema.org WebSite payload.
func WebSite(name, url, description, author string) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "WebSite",
		"name":     name,
		"url":      url,
	}
	if description != "" {
		m["description"] = description
	}
	if author != "" {
		m["author"] = map[string]string{"@type": "Person", "name": author}
	}
	return m
}

// Article describes a post for BlogPosting.
type Article struct {
	Headline      string
	Description   string
	URL           string
	DatePublished string
	Author        string
	Publisher     string
	Keywords      string
	Image         string
}

// BlogPosting returns a schema.org BlogPosting payload.
func BlogPosting(a Article) map[string]any {
	m := map[string]any{
		"@context": "https://schema.org",
		"@type":    "BlogPosting",
		"headline": a.Headline,
		"url":      a.URL,
		"mainEntityOfPage": map[string]string{
			"@type": "WebPage",
			"@id":   a.URL,
		},
	}
	if a.Description != "" {
		m["description"] = a.Description
	}
	if a.DatePublished != "" {
		m["datePublished"] = a.DatePublished
	}
	if a.Author != "" {
		m["author"] = map[string]string{"@type": "Person", "name": a.Author}
	}
	if a.Publisher != "" {
		m["publisher"] = map[string]string{"@type": "Organization", "name": a.Publisher}
	}
	if a.Keywords != "" {
		m["keywords"] = a.Keywords
	}
	if a.Image != "" {
		m["image"] = a.Image
	}
	return m
}
