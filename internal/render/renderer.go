package render

import (
	"bytes"
	"context"
	"fmt"
	"html/template"
	"strings"

	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/internal/markdown"
	"github.com/goliatone/go-blog/internal/posts"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

// Config tunes the rendered document.
type Config struct {
	Lang             string
	DateLocale       string
	DateLayout       string
	Stylesheet       string
	BackLink         string
	StripFrontMatter bool
}

// DefaultConfig matches the stock look: English document, pt_BR dates,
// /style.css and a back link to the site root.
func DefaultConfig() Config {
	return Config{
		Lang:       "en",
		DateLocale: DefaultDateLocale,
		DateLayout: DefaultDateLayout,
		Stylesheet: "/style.css",
		BackLink:   "/",
	}
}

// Renderer builds the full HTML document for a post.
type Renderer struct {
	repo   posts.Repository
	parser interfaces.MarkdownParser
	dates  DateFormatter
	cfg    Config
	logger interfaces.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the renderer logger.
func WithLogger(logger interfaces.Logger) Option {
	return func(r *Renderer) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithConfig replaces the default document configuration. Blank fields keep
// their defaults.
func WithConfig(cfg Config) Option {
	return func(r *Renderer) {
		r.cfg = mergeConfig(r.cfg, cfg)
	}
}

// New returns a renderer reading posts from repo. A nil parser selects the
// default goldmark parser.
func New(repo posts.Repository, parser interfaces.MarkdownParser, opts ...Option) (*Renderer, error) {
	if repo == nil {
		return nil, fmt.Errorf("render: post repository is required")
	}
	if parser == nil {
		parser = markdown.NewGoldmarkParser(interfaces.ParseOptions{})
	}

	r := &Renderer{
		repo:   repo,
		parser: parser,
		cfg:    DefaultConfig(),
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	r.dates = NewDateFormatter(r.cfg.DateLocale, r.cfg.DateLayout)
	return r, nil
}

// Render reads the post named slug and returns the complete HTML document.
// Repository errors, including not found, are returned unchanged.
func (r *Renderer) Render(ctx context.Context, slug string) ([]byte, error) {
	logger := logging.WithSlug(r.logger.WithContext(ctx), slug)

	source, err := r.repo.Markdown(ctx, slug)
	if err != nil {
		return nil, err
	}

	page, err := r.Page(slug, source)
	if err != nil {
		logger.Error("render.failed", "error", err)
		return nil, err
	}

	var buf bytes.Buffer
	if err := postTemplate.Execute(&buf, page); err != nil {
		logger.Error("render.template_failed", "error", err)
		return nil, fmt.Errorf("render: execute template for %s: %w", slug, err)
	}
	logger.Debug("render.completed", "bytes", buf.Len())
	return buf.Bytes(), nil
}

// Page converts source and assembles the template data for slug. It is
// exposed for callers that bring their own Markdown, such as previews.
func (r *Renderer) Page(slug string, source []byte) (Page, error) {
	body := source
	if r.cfg.StripFrontMatter {
		_, stripped, err := markdown.SplitFrontMatter(source)
		if err != nil {
			return Page{}, fmt.Errorf("render: %s: %w", slug, err)
		}
		body = stripped
	}

	html, err := r.parser.Parse(body)
	if err != nil {
		return Page{}, fmt.Errorf("render: convert %s: %w", slug, err)
	}

	meta := posts.ParseSlug(slug)
	return Page{
		Lang:        r.cfg.Lang,
		Title:       meta.Title,
		Date:        meta.Date,
		DisplayDate: r.dates.Format(meta.Date),
		Stylesheet:  r.cfg.Stylesheet,
		BackLink:    r.cfg.BackLink,
		Content:     template.HTML(html),
	}, nil
}

func mergeConfig(base, override Config) Config {
	out := base
	if v := strings.TrimSpace(override.Lang); v != "" {
		out.Lang = v
	}
	if v := strings.TrimSpace(override.DateLocale); v != "" {
		out.DateLocale = v
	}
	if v := strings.TrimSpace(override.DateLayout); v != "" {
		out.DateLayout = v
	}
	if v := strings.TrimSpace(override.Stylesheet); v != "" {
		out.Stylesheet = v
	}
	if v := strings.TrimSpace(override.BackLink); v != "" {
		out.BackLink = v
	}
	out.StripFrontMatter = override.StripFrontMatter
	return out
}
