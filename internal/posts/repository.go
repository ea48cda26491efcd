package posts

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

// Summary is the listing entry for one post.
type Summary struct {
	Slug  string `json:"slug"`
	Date  string `json:"date"`
	Title string `json:"title"`
}

// Repository enumerates posts and returns their raw Markdown.
type Repository interface {
	List(ctx context.Context) ([]Summary, error)
	Markdown(ctx context.Context, slug string) ([]byte, error)
}

// Option configures an FSRepository.
type Option func(*FSRepository)

// WithStrictSlugs rejects malformed slugs instead of degrading them: List
// skips the files and Markdown answers ErrSlugMalformed.
func WithStrictSlugs(strict bool) Option {
	return func(r *FSRepository) {
		r.strict = strict
	}
}

// WithLogger sets the logger used for skipped files and read failures.
func WithLogger(logger interfaces.Logger) Option {
	return func(r *FSRepository) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// FSRepository serves posts from a single, non-recursive directory.
type FSRepository struct {
	dir    string
	strict bool
	logger interfaces.Logger
}

var _ Repository = (*FSRepository)(nil)

// NewFSRepository returns a repository rooted at dir. The directory is not
// required to exist yet; a missing directory lists as empty.
func NewFSRepository(dir string, opts ...Option) *FSRepository {
	repo := &FSRepository{
		dir:    filepath.Clean(dir),
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(repo)
		}
	}
	return repo
}

// Dir returns the posts directory.
func (r *FSRepository) Dir() string {
	return r.dir
}

// List returns one Summary per *.md file, newest date first and slug
// ascending within the same date.
func (r *FSRepository) List(ctx context.Context) ([]Summary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entries, err := os.ReadDir(r.dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			r.logger.WithContext(ctx).Warn("posts.dir_missing", "dir", r.dir)
			return []Summary{}, nil
		}
		return nil, readFailed(r.dir, err)
	}

	summaries := make([]Summary, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		slug, ok := SlugFromFilename(entry.Name())
		if !ok {
			continue
		}
		meta := ParseSlug(slug)
		if meta.Malformed && r.strict {
			r.logger.WithContext(ctx).Warn("posts.skipped_malformed", "file", entry.Name())
			continue
		}
		summaries = append(summaries, Summary{
			Slug:  meta.Slug,
			Date:  meta.Date,
			Title: meta.Title,
		})
	}

	SortSummaries(summaries)
	return summaries, nil
}

// Markdown returns the exact content of <dir>/<slug>.md.
func (r *FSRepository) Markdown(ctx context.Context, slug string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := ValidateSlug(slug); err != nil {
		return nil, invalidSlug(slug, err)
	}
	if r.strict && ParseSlug(slug).Malformed {
		return nil, malformed(slug)
	}

	path := filepath.Join(r.dir, Filename(slug))
	if info, err := os.Stat(path); err == nil && info.IsDir() {
		return nil, notFound(slug, fmt.Errorf("%s is a directory", path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, notFound(slug, err)
		}
		r.logging(ctx, slug).Error("posts.read_failed", "path", path, "error", err)
		return nil, readFailed(path, err)
	}
	return data, nil
}

func (r *FSRepository) logging(ctx context.Context, slug string) interfaces.Logger {
	return logging.WithSlug(r.logger.WithContext(ctx), slug)
}

// SortSummaries orders summaries newest first, breaking ties by slug.
func SortSummaries(summaries []Summary) {
	sort.SliceStable(summaries, func(i, j int) bool {
		if summaries[i].Date != summaries[j].Date {
			return summaries[i].Date > summaries[j].Date
		}
		return summaries[i].Slug < summaries[j].Slug
	})
}

// ValidateSlug rejects values that cannot name a file inside the posts
// directory: blanks, path separators and dot segments.
func ValidateSlug(slug string) error {
	return validation.Validate(slug,
		validation.Required,
		validation.By(func(value any) error {
			s, _ := value.(string)
			if strings.ContainsAny(s, `/\`) || strings.ContainsRune(s, 0) {
				return validation.NewError("posts.slug.path_separator", "must not contain path separators")
			}
			if s == "." || s == ".." {
				return validation.NewError("posts.slug.dot_segment", "must not be a dot segment")
			}
			return nil
		}),
	)
}
