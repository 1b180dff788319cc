package seo

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testComposer = Composer{SiteName: "Manxeguin Dev"}

var descriptionKeys = []string{
	"description",
	"og:site_name",
	"og:description",
	"og:title",
	"twitter:site",
	"twitter:title",
	"twitter:description",
}

func countKey(tags []HeadTag, key string) int {
	n := 0
	for _, t := range tags {
		if t.Key == key {
			n++
		}
	}
	return n
}

func contentOf(tags []HeadTag, key string) string {
	for _, t := range tags {
		if t.Key == key {
			return t.Content
		}
	}
	return ""
}

func TestComposeWithDescription(t *testing.T) {
	got, err := testComposer.Compose("Acme Dashboard", PageMeta{Description: "Real-time metrics"})
	require.NoError(t, err)

	want := []HeadTag{
		Name("description", "Real-time metrics"),
		Property("og:site_name", "Manxeguin Dev"),
		Property("og:description", "Real-time metrics"),
		Property("og:title", "Acme Dashboard"),
		Name("twitter:site", "Manxeguin Dev"),
		Name("twitter:title", "Acme Dashboard"),
		Name("twitter:description", "Real-time metrics"),
	}
	assert.Equal(t, want, got)
	assert.Zero(t, countKey(got, "keywords"))
}

func TestComposeTagOnly(t *testing.T) {
	got, err := testComposer.Compose("My Post", PageMeta{Tag: "frontend, microfrontend"})
	require.NoError(t, err)
	assert.Equal(t, []HeadTag{Name("keywords", "frontend, microfrontend")}, got)
}

func TestComposeDescriptionAndTag(t *testing.T) {
	got, err := testComposer.Compose("Post", PageMeta{Description: "d", Tag: "go,web"})
	require.NoError(t, err)
	require.Len(t, got, 8)
	assert.Equal(t, Name("keywords", "go,web"), got[7])
	for _, k := range descriptionKeys {
		assert.Equal(t, 1, countKey(got, k), k)
	}
}

func TestComposeEmptyMeta(t *testing.T) {
	got, err := testComposer.Compose("Only a title", PageMeta{})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestComposeTitleAppearsInSocialTags(t *testing.T) {
	metas := []PageMeta{
		{Description: "x"},
		{Description: "x", Tag: "a"},
		{Description: "<b>html</b> & stuff"},
	}
	for _, m := range metas {
		got, err := testComposer.Compose("Title", m)
		require.NoError(t, err)
		assert.Equal(t, "Title", contentOf(got, "og:title"))
		assert.Equal(t, "Title", contentOf(got, "twitter:title"))
		assert.Equal(t, m.Description, contentOf(got, "og:description"))
	}
}

func TestComposeNoDescriptionEmitsNoDescriptionTags(t *testing.T) {
	for _, tag := range []string{"", "a", "a, b, c"} {
		got, err := testComposer.Compose("Title", PageMeta{Tag: tag})
		require.NoError(t, err)
		for _, k := range descriptionKeys {
			assert.Zero(t, countKey(got, k), "tag=%q key=%s", tag, k)
		}
	}
}

func TestComposeKeywordsVerbatim(t *testing.T) {
	tag := "  Go ,  templ,echo  "
	got, err := testComposer.Compose("Title", PageMeta{Description: "d", Tag: tag})
	require.NoError(t, err)
	assert.Equal(t, 1, countKey(got, "keywords"))
	assert.Equal(t, tag, contentOf(got, "keywords"))
}

func TestComposeMissingTitle(t *testing.T) {
	for _, title := range []string{"", "   ", "\t\n"} {
		got, err := testComposer.Compose(title, PageMeta{Description: "d"})
		assert.True(t, errors.Is(err, ErrMissingTitle), "title=%q", title)
		assert.Nil(t, got)
	}
}

func TestComposeIdempotent(t *testing.T) {
	meta := PageMeta{Description: "desc", Tag: "a, b"}
	first, err := testComposer.Compose("Same", meta)
	require.NoError(t, err)
	second, err := testComposer.Compose("Same", meta)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestComposeTwitterSite(t *testing.T) {
	c := Composer{SiteName: "Manxeguin Dev", TwitterSite: "@manxeguin"}
	got, err := c.Compose("T", PageMeta{Description: "d"})
	require.NoError(t, err)
	assert.Equal(t, "@manxeguin", contentOf(got, "twitter:site"))
	assert.Equal(t, "Manxeguin Dev", contentOf(got, "og:site_name"))
}
