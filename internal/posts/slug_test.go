package posts

import "testing"

func TestParseSlug(t *testing.T) {
	cases := []struct {
		slug      string
		date      string
		title     string
		malformed bool
	}{
		{"2024-03-15-hello-world", "2024-03-15", "hello world", false},
		{"2023-12-01-a", "2023-12-01", "a", false},
		{"2024-01-02-go-is-fun-right", "2024-01-02", "go is fun right", false},
		{"2024-03-15", "2024-03-15", "", true},
		{"2024-03-15-", "2024-03-15", "", true},
		{"notes", "notes", "", true},
		{"2024-13-45-not-a-real-date", "2024-13-45", "not a real date", false},
	}

	for _, tc := range cases {
		meta := ParseSlug(tc.slug)
		if meta.Slug != tc.slug {
			t.Fatalf("%s: expected slug to round trip, got %q", tc.slug, meta.Slug)
		}
		if meta.Date != tc.date {
			t.Fatalf("%s: expected date %q, got %q", tc.slug, tc.date, meta.Date)
		}
		if meta.Title != tc.title {
			t.Fatalf("%s: expected title %q, got %q", tc.slug, tc.title, meta.Title)
		}
		if meta.Malformed != tc.malformed {
			t.Fatalf("%s: expected malformed=%v", tc.slug, tc.malformed)
		}
	}
}

func TestSlugFromFilename(t *testing.T) {
	if slug, ok := SlugFromFilename("2024-03-15-hello-world.md"); !ok || slug != "2024-03-15-hello-world" {
		t.Fatalf("unexpected slug %q ok=%v", slug, ok)
	}
	for _, name := range []string{"style.css", "README", "post.md.bak", "post.MD"} {
		if _, ok := SlugFromFilename(name); ok {
			t.Fatalf("expected %s to be ignored", name)
		}
	}
}

func TestValidateSlug(t *testing.T) {
	if err := ValidateSlug("2024-03-15-hello-world"); err != nil {
		t.Fatalf("expected valid slug, got %v", err)
	}
	for _, slug := range []string{"", "..", ".", "../secret", `a\b`, "nested/post"} {
		if err := ValidateSlug(slug); err == nil {
			t.Fatalf("expected %q to be rejected", slug)
		}
	}
}
