package posts

import (
	"errors"
	"fmt"

	goerrors "github.com/goliatone/go-errors"
)

const (
	textCodeNotFound    = "POST_NOT_FOUND"
	textCodeSlugInvalid = "POST_SLUG_INVALID"
	textCodeMalformed   = "POST_SLUG_MALFORMED"
	textCodeRead        = "POST_READ_FAILED"
)

var (
	// ErrSlugMalformed is returned in strict mode for slugs without a
	// YYYY-MM-DD prefix and a title.
	ErrSlugMalformed = errors.New("posts: malformed slug")
	// ErrPostExists is returned when scaffolding would overwrite a post.
	ErrPostExists = errors.New("posts: post already exists")
)

// NotFoundError reports a slug with no backing Markdown file.
type NotFoundError struct {
	Slug string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("post %q not found", e.Slug)
}

func notFound(slug string, cause error) error {
	err := &NotFoundError{Slug: slug}
	wrapped := goerrors.Wrap(err, goerrors.CategoryNotFound, err.Error()).
		WithTextCode(textCodeNotFound)
	if cause != nil {
		wrapped = wrapped.WithMetadata(map[string]any{"cause": cause.Error()})
	}
	return wrapped
}

func malformed(slug string) error {
	return goerrors.Wrap(ErrSlugMalformed, goerrors.CategoryNotFound, fmt.Sprintf("post %q has a malformed slug", slug)).
		WithTextCode(textCodeMalformed)
}

func invalidSlug(slug string, cause error) error {
	return goerrors.Wrap(cause, goerrors.CategoryBadInput, fmt.Sprintf("invalid post slug %q", slug)).
		WithTextCode(textCodeSlugInvalid)
}

func readFailed(path string, cause error) error {
	return goerrors.Wrap(cause, goerrors.CategoryInternal, fmt.Sprintf("read %s", path)).
		WithTextCode(textCodeRead)
}

// IsNotFound reports whether err means the post does not exist, including
// strict-mode rejections of malformed slugs.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	if goerrors.IsCategory(err, goerrors.CategoryNotFound) {
		return true
	}
	var target *NotFoundError
	return errors.As(err, &target) || errors.Is(err, ErrSlugMalformed)
}

// IsInvalidSlug reports whether err was caused by a slug that can never name a file.
func IsInvalidSlug(err error) bool {
	return err != nil && goerrors.IsCategory(err, goerrors.CategoryBadInput)
}
