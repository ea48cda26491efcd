package posts

import "strings"

const (
	// Extension is the file suffix that marks a post.
	Extension = ".md"

	slugSeparator = "-"
	dateSegments  = 3
)

// Meta is the metadata derived from a slug.
type Meta struct {
	Slug  string
	Date  string
	Title string
	// Malformed is set when the slug lacks three date segments plus a
	// non-blank title.
	Malformed bool
}

// ParseSlug splits slug on dashes. The first three segments joined by a dash
// form the date; the remaining segments joined by spaces form the title.
// Short slugs degrade instead of failing: the date keeps whatever segments
// exist and the title is empty.
func ParseSlug(slug string) Meta {
	parts := strings.Split(slug, slugSeparator)

	split := min(dateSegments, len(parts))
	title := strings.Join(parts[split:], " ")
	return Meta{
		Slug:      slug,
		Date:      strings.Join(parts[:split], slugSeparator),
		Title:     title,
		Malformed: len(parts) <= dateSegments || strings.TrimSpace(title) == "",
	}
}

// SlugFromFilename strips the post extension. ok is false for names that do
// not carry it.
func SlugFromFilename(name string) (slug string, ok bool) {
	if !strings.HasSuffix(name, Extension) {
		return "", false
	}
	return strings.TrimSuffix(name, Extension), true
}

// Filename returns the file name backing slug.
func Filename(slug string) string {
	return slug + Extension
}
