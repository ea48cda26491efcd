package blog

import (
	"fmt"
	"net/http"
	"os"

	bloghttp "github.com/goliatone/go-blog/internal/http"
	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/internal/logging/console"
	"github.com/goliatone/go-blog/internal/logging/gologger"
	"github.com/goliatone/go-blog/internal/markdown"
	"github.com/goliatone/go-blog/internal/posts"
	"github.com/goliatone/go-blog/internal/render"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

// PostRepository exports the post repository contract.
type PostRepository = posts.Repository

// PostSummary exports the listing entry returned by GET /posts.
type PostSummary = posts.Summary

// Renderer exports the post document renderer.
type Renderer = render.Renderer

// Module represents the top level blog runtime façade.
type Module struct {
	cfg      Config
	provider interfaces.LoggerProvider
	posts    *posts.FSRepository
	renderer *render.Renderer
	handler  http.Handler
}

type moduleOptions struct {
	loggerProvider interfaces.LoggerProvider
	parser         interfaces.MarkdownParser
}

// Option overrides a dependency the module would otherwise build from Config.
type Option func(*moduleOptions)

// WithLoggerProvider replaces the provider selected by cfg.Logging.
func WithLoggerProvider(provider interfaces.LoggerProvider) Option {
	return func(o *moduleOptions) {
		if provider != nil {
			o.loggerProvider = provider
		}
	}
}

// WithMarkdownParser replaces the goldmark parser built from cfg.Markdown.
func WithMarkdownParser(parser interfaces.MarkdownParser) Option {
	return func(o *moduleOptions) {
		if parser != nil {
			o.parser = parser
		}
	}
}

// New validates cfg and wires the repository, renderer and HTTP routes.
func New(cfg Config, opts ...Option) (*Module, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	options := moduleOptions{}
	for _, opt := range opts {
		if opt != nil {
			opt(&options)
		}
	}

	provider := options.loggerProvider
	if provider == nil {
		built, err := newLoggerProvider(cfg.Logging)
		if err != nil {
			return nil, err
		}
		provider = built
	}

	parser := options.parser
	if parser == nil {
		parser = markdown.NewGoldmarkParser(interfaces.ParseOptions{
			Extensions: cfg.Markdown.Extensions,
			HardWraps:  cfg.Markdown.HardWraps,
			SafeMode:   cfg.Markdown.SafeMode,
			HeadingIDs: cfg.Markdown.HeadingIDs,
		})
	}

	repo := posts.NewFSRepository(cfg.Posts.Dir,
		posts.WithStrictSlugs(cfg.Posts.StrictSlugs),
		posts.WithLogger(logging.PostsLogger(provider)),
	)

	renderer, err := render.New(repo, parser,
		render.WithLogger(logging.RenderLogger(provider)),
		render.WithConfig(render.Config{
			Lang:             cfg.Render.Lang,
			DateLocale:       cfg.Render.DateLocale,
			DateLayout:       cfg.Render.DateLayout,
			Stylesheet:       cfg.Render.Stylesheet,
			StripFrontMatter: cfg.Markdown.StripFrontMatter,
		}),
	)
	if err != nil {
		return nil, err
	}

	api := bloghttp.NewBlogAPI(
		bloghttp.WithPostRepository(repo),
		bloghttp.WithRenderer(renderer),
		bloghttp.WithStaticDir(cfg.Static.Dir),
		bloghttp.WithLogger(logging.HTTPLogger(provider)),
	)
	handler, err := api.Handler()
	if err != nil {
		return nil, err
	}

	logging.RootLogger(provider).Debug("blog.configured",
		"posts_dir", repo.Dir(),
		"static_dir", cfg.Static.Dir,
		"strict_slugs", cfg.Posts.StrictSlugs,
	)

	return &Module{
		cfg:      cfg,
		provider: provider,
		posts:    repo,
		renderer: renderer,
		handler:  handler,
	}, nil
}

// Config returns the validated configuration the module was built with.
func (m *Module) Config() Config {
	return m.cfg
}

// Handler returns the HTTP handler serving the blog routes.
func (m *Module) Handler() http.Handler {
	return m.handler
}

// Posts returns the configured post repository.
func (m *Module) Posts() PostRepository {
	return m.posts
}

// Renderer returns the configured post renderer.
func (m *Module) Renderer() *Renderer {
	return m.renderer
}

// Logger returns the module logger named name, e.g. "blog.cli".
func (m *Module) Logger(name string) interfaces.Logger {
	return logging.ModuleLogger(m.provider, name)
}

func newLoggerProvider(cfg LoggingConfig) (interfaces.LoggerProvider, error) {
	switch cfg.NormalizedProvider() {
	case "gologger":
		provider, err := gologger.NewProvider(gologger.Config{
			Level:     cfg.Level,
			Format:    cfg.Format,
			AddSource: cfg.AddSource,
		})
		if err != nil {
			return nil, err
		}
		return provider, nil
	case "console", "":
		level := console.ParseLevel(cfg.Level)
		return console.NewProvider(console.Options{Writer: os.Stderr, MinLevel: &level}), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, cfg.Provider)
	}
}
