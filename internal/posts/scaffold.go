package posts

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	goslug "github.com/goliatone/go-slug"
)

// DateLayout is the layout of the date prefix in post slugs.
const DateLayout = "2006-01-02"

// Draft describes a post to scaffold on disk.
type Draft struct {
	Title string
	Date  time.Time
	Body  string
}

// Validate checks the draft before a file is written.
func (d Draft) Validate() error {
	return validation.ValidateStruct(&d,
		validation.Field(&d.Title, validation.Required),
		validation.Field(&d.Date, validation.Required),
	)
}

// Slug returns the slug the draft will be stored under: the date prefix
// followed by the normalised title.
func (d Draft) Slug() (string, error) {
	normalized, err := goslug.Normalize(d.Title)
	if err != nil {
		return "", fmt.Errorf("posts: normalise title %q: %w", d.Title, err)
	}
	if normalized == "" {
		return "", fmt.Errorf("posts: title %q has no sluggable characters", d.Title)
	}
	return d.Date.Format(DateLayout) + slugSeparator + normalized, nil
}

// CreateDraft writes draft into dir and returns the new slug. Existing files
// are never overwritten.
func CreateDraft(dir string, draft Draft) (string, error) {
	if err := draft.Validate(); err != nil {
		return "", err
	}
	slug, err := draft.Slug()
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("posts: create dir %s: %w", dir, err)
	}

	path := filepath.Join(dir, Filename(slug))
	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return "", fmt.Errorf("%w: %s", ErrPostExists, path)
		}
		return "", fmt.Errorf("posts: create %s: %w", path, err)
	}
	defer file.Close()

	body := draft.Body
	if body == "" {
		body = "# " + draft.Title + "\n"
	}
	if _, err := file.WriteString(body); err != nil {
		return "", fmt.Errorf("posts: write %s: %w", path, err)
	}
	return slug, nil
}
