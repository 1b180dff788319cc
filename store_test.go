package blog

import (
	"errors"
	"path/filepath"
	"testing"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "data", "test_blog.db"))
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func samplePosts() []Post {
	return []Post{
		{Slug: "acme-dashboard", Title: "Acme Dashboard", Date: "2024-03-10", Description: "Real-time metrics",
			Keywords: "frontend, microfrontend", Tags: []string{"frontend", "microfrontend"}, Content: "# Acme"},
		{Slug: "go-tips", Title: "Go Tips", Date: "2024-01-05", Keywords: "go, testing", Tags: []string{"go", "testing"}},
		{Slug: "undated", Title: "Undated"},
	}
}

func TestNewStore(t *testing.T) {
	s := setupTestStore(t)
	if s.db == nil {
		t.Fatal("db should not be nil")
	}
}

func TestReplaceAndGetPost(t *testing.T) {
	s := setupTestStore(t)
	if err := s.Replace(samplePosts()); err != nil {
		t.Fatalf("Replace failed: %v", err)
	}

	got, err := s.GetPost("acme-dashboard")
	if err != nil {
		t.Fatalf("GetPost failed: %v", err)
	}
	if got.Title != "Acme Dashboard" {
		t.Errorf("Title = %q, want %q", got.Title, "Acme Dashboard")
	}
	if got.Keywords != "frontend, microfrontend" {
		t.Errorf("Keywords = %q, want verbatim front-matter value", got.Keywords)
	}
	if len(got.Tags) != 2 || got.Tags[0] != "frontend" || got.Tags[1] != "microfrontend" {
		t.Errorf("Tags = %v, want [frontend microfrontend]", got.Tags)
	}
	if got.Link != "/blog/acme-dashboard/" {
		t.Errorf("Link = %q", got.Link)
	}
}

func TestGetPostNotFound(t *testing.T) {
	s := setupTestStore(t)
	_, err := s.GetPost("missing")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestReplaceDropsPreviousPosts(t *testing.T) {
	s := setupTestStore(t)
	if err := s.Replace(samplePosts()); err != nil {
		t.Fatal(err)
	}
	if err := s.Replace(samplePosts()[:1]); err != nil {
		t.Fatal(err)
	}
	posts, err := s.ListPosts("")
	if err != nil {
		t.Fatal(err)
	}
	if len(posts) != 1 {
		t.Fatalf("got %d posts, want 1", len(posts))
	}
}

func TestReplaceRejectsDuplicateSlugs(t *testing.T) {
	s := setupTestStore(t)
	posts := samplePosts()
	posts = append(posts, posts[0])
	if err := s.Replace(posts); err == nil {
		t.Fatal("expected error for duplicate slug")
	}
	// The failed transaction leaves the index untouched.
	all, err := s.ListPosts("")
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 0 {
		t.Errorf("got %d posts after rollback, want 0", len(all))
	}
}

func TestListPostsOrderAndTagFilter(t *testing.T) {
	s := setupTestStore(t)
	if err := s.Replace(samplePosts()); err != nil {
		t.Fatal(err)
	}

	posts, err := s.ListPosts("")
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"acme-dashboard", "go-tips", "undated"}
	if len(posts) != len(want) {
		t.Fatalf("got %d posts, want %d", len(posts), len(want))
	}
	for i, slug := range want {
		if posts[i].Slug != slug {
			t.Errorf("posts[%d] = %q, want %q", i, posts[i].Slug, slug)
		}
	}

	tests := []struct {
		tag  string
		want int
	}{
		{"go", 1},
		{"Go ", 1},
		{"frontend", 1},
		{"front", 0},
		{"rust", 0},
	}
	for _, tt := range tests {
		got, err := s.ListPosts(tt.tag)
		if err != nil {
			t.Fatal(err)
		}
		if len(got) != tt.want {
			t.Errorf("ListPosts(%q) returned %d posts, want %d", tt.tag, len(got), tt.want)
		}
	}
}

func TestParseTags(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{",go,web,", []string{"go", "web"}},
		{",", nil},
		{"", nil},
		{", go , web ,", []string{"go", "web"}},
	}
	for _, tt := range tests {
		got := ParseTags(tt.in)
		if len(got) != len(tt.want) {
			t.Errorf("ParseTags(%q) = %v, want %v", tt.in, got, tt.want)
			continue
		}
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("ParseTags(%q)[%d] = %q, want %q", tt.in, i, got[i], tt.want[i])
			}
		}
	}
}
