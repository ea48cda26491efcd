package http

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/internal/posts"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

// PostRenderer produces the HTML document for a slug.
type PostRenderer interface {
	Render(ctx context.Context, slug string) ([]byte, error)
}

// BlogAPI registers the public blog endpoints.
type BlogAPI struct {
	basePath  string
	posts     posts.Repository
	renderer  PostRenderer
	staticDir string
	logger    interfaces.Logger
}

// Option mutates the BlogAPI configuration.
type Option func(*BlogAPI)

// NewBlogAPI constructs a BlogAPI instance.
func NewBlogAPI(opts ...Option) *BlogAPI {
	api := &BlogAPI{
		logger: logging.NoOp(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(api)
		}
	}
	return api
}

// WithBasePath mounts every route below path (defaults to the site root).
func WithBasePath(path string) Option {
	return func(api *BlogAPI) {
		if api != nil {
			api.basePath = strings.TrimSpace(path)
		}
	}
}

// WithPostRepository wires the repository used by the listing endpoint.
func WithPostRepository(repo posts.Repository) Option {
	return func(api *BlogAPI) {
		if api != nil {
			api.posts = repo
		}
	}
}

// WithRenderer wires the post document renderer.
func WithRenderer(renderer PostRenderer) Option {
	return func(api *BlogAPI) {
		if api != nil {
			api.renderer = renderer
		}
	}
}

// WithStaticDir serves files from dir on the catch-all route. A blank dir
// disables static serving.
func WithStaticDir(dir string) Option {
	return func(api *BlogAPI) {
		if api != nil {
			api.staticDir = strings.TrimSpace(dir)
		}
	}
}

// WithLogger sets the logger used for request and failure entries.
func WithLogger(logger interfaces.Logger) Option {
	return func(api *BlogAPI) {
		if api != nil && logger != nil {
			api.logger = logger
		}
	}
}

// Register attaches the blog endpoints to the provided mux.
func (api *BlogAPI) Register(mux *http.ServeMux) error {
	if mux == nil {
		return fmt.Errorf("http: mux is required")
	}
	if api == nil {
		return fmt.Errorf("http: blog api is nil")
	}
	if api.posts == nil {
		return fmt.Errorf("http: post repository is required")
	}
	if api.renderer == nil {
		return fmt.Errorf("http: renderer is required")
	}

	base := joinPath(api.basePath, "")
	api.registerPostRoutes(mux, base)
	api.registerStaticRoutes(mux, base)
	return nil
}

// Handler returns a fresh mux with every route registered and request
// logging applied.
func (api *BlogAPI) Handler() (http.Handler, error) {
	mux := http.NewServeMux()
	if err := api.Register(mux); err != nil {
		return nil, err
	}
	return requestLogger(api.logger, mux), nil
}

func (api *BlogAPI) registerPostRoutes(mux *http.ServeMux, base string) {
	root := joinPath(base, "posts")
	mux.HandleFunc("GET "+root, api.handlePostList)
	mux.HandleFunc("GET "+root+"/{slug}", api.handlePostShow)
}

func (api *BlogAPI) handlePostList(w http.ResponseWriter, r *http.Request) {
	summaries, err := api.posts.List(r.Context())
	if err != nil {
		api.logFailure(r, "", err)
		writeError(w, err)
		return
	}
	if summaries == nil {
		summaries = []posts.Summary{}
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (api *BlogAPI) handlePostShow(w http.ResponseWriter, r *http.Request) {
	slug := r.PathValue("slug")
	doc, err := api.renderer.Render(r.Context(), slug)
	if err != nil {
		api.logFailure(r, slug, err)
		writeError(w, err)
		return
	}
	writeHTML(w, http.StatusOK, doc)
}

func (api *BlogAPI) logFailure(r *http.Request, slug string, err error) {
	logger := logging.WithSlug(api.logger.WithContext(r.Context()), slug)
	status, _ := mapError(err)
	if status >= http.StatusInternalServerError {
		logger.Error("http.request_failed", "path", r.URL.Path, "error", err)
		return
	}
	logger.Debug("http.request_rejected", "path", r.URL.Path, "status", status, "error", err)
}
