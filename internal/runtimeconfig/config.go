package runtimeconfig

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/goliatone/go-blog/internal/markdown"
	"github.com/goliatone/go-blog/internal/render"
)

var ErrPostsDirRequired = errors.New("blog config: posts directory is required")
var ErrServerPortInvalid = errors.New("blog config: server port must be between 1 and 65535")
var ErrServerTimeoutInvalid = errors.New("blog config: server timeouts must be zero or positive")
var ErrMarkdownExtensionUnknown = errors.New("blog config: markdown extension is unknown")
var ErrRenderDateLocaleRequired = errors.New("blog config: render date locale is required")
var ErrRenderDateLocaleUnknown = errors.New("blog config: render date locale is not supported")
var ErrRenderDateLayoutRequired = errors.New("blog config: render date layout is required")
var ErrLoggingProviderRequired = errors.New("blog config: logging provider is required")
var ErrLoggingProviderUnknown = errors.New("blog config: logging provider is invalid")
var ErrLoggingLevelInvalid = errors.New("blog config: logging level is invalid")
var ErrLoggingFormatInvalid = errors.New("blog config: logging format is invalid")

// Config aggregates everything the blog runtime needs. Field tags follow the
// keys used in blog.yaml and BLOG_* environment variables.
type Config struct {
	Posts    PostsConfig    `mapstructure:"posts"`
	Static   StaticConfig   `mapstructure:"static"`
	Server   ServerConfig   `mapstructure:"server"`
	Markdown MarkdownConfig `mapstructure:"markdown"`
	Render   RenderConfig   `mapstructure:"render"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// PostsConfig locates the Markdown posts and selects the malformed slug policy.
type PostsConfig struct {
	Dir         string `mapstructure:"dir"`
	StrictSlugs bool   `mapstructure:"strict_slugs"`
}

// StaticConfig locates the public assets. A blank Dir disables static serving.
type StaticConfig struct {
	Dir string `mapstructure:"dir"`
}

// ServerConfig captures listener behaviour. Serverless hosts never bind a port.
type ServerConfig struct {
	Port              int           `mapstructure:"port"`
	Serverless        bool          `mapstructure:"serverless"`
	ReadHeaderTimeout time.Duration `mapstructure:"read_header_timeout"`
	ShutdownTimeout   time.Duration `mapstructure:"shutdown_timeout"`
}

// MarkdownConfig mirrors interfaces.ParseOptions plus front matter handling.
type MarkdownConfig struct {
	Extensions       []string `mapstructure:"extensions"`
	HardWraps        bool     `mapstructure:"hard_wraps"`
	SafeMode         bool     `mapstructure:"safe_mode"`
	HeadingIDs       bool     `mapstructure:"heading_ids"`
	StripFrontMatter bool     `mapstructure:"strip_front_matter"`
}

// RenderConfig tunes the post document.
type RenderConfig struct {
	Lang       string `mapstructure:"lang"`
	DateLocale string `mapstructure:"date_locale"`
	DateLayout string `mapstructure:"date_layout"`
	Stylesheet string `mapstructure:"stylesheet"`
}

// LoggingConfig captures provider-specific options for runtime logging.
type LoggingConfig struct {
	Provider  string `mapstructure:"provider"`
	Level     string `mapstructure:"level"`
	Format    string `mapstructure:"format"`
	AddSource bool   `mapstructure:"add_source"`
}

// DefaultConfig returns the settings used when nothing is configured.
func DefaultConfig() Config {
	return Config{
		Posts: PostsConfig{
			Dir: "posts",
		},
		Static: StaticConfig{
			Dir: "public",
		},
		Server: ServerConfig{
			Port:              3000,
			ReadHeaderTimeout: 5 * time.Second,
			ShutdownTimeout:   10 * time.Second,
		},
		Markdown: MarkdownConfig{
			Extensions: []string{"gfm"},
		},
		Render: RenderConfig{
			Lang:       "en",
			DateLocale: "pt_BR",
			DateLayout: "02/01/2006",
			Stylesheet: "/style.css",
		},
		Logging: LoggingConfig{
			Provider: "console",
			Level:    "info",
		},
	}
}

// Validate performs high-level consistency checks.
func (cfg Config) Validate() error {
	if strings.TrimSpace(cfg.Posts.Dir) == "" {
		return ErrPostsDirRequired
	}
	if !cfg.Server.Serverless && (cfg.Server.Port < 1 || cfg.Server.Port > 65535) {
		return fmt.Errorf("%w: %d", ErrServerPortInvalid, cfg.Server.Port)
	}
	if cfg.Server.ReadHeaderTimeout < 0 {
		return fmt.Errorf("%w: read_header_timeout", ErrServerTimeoutInvalid)
	}
	if cfg.Server.ShutdownTimeout < 0 {
		return fmt.Errorf("%w: shutdown_timeout", ErrServerTimeoutInvalid)
	}
	for _, ext := range cfg.Markdown.Extensions {
		if !markdown.KnownExtension(ext) {
			return fmt.Errorf("%w: %s", ErrMarkdownExtensionUnknown, ext)
		}
	}
	locale := strings.TrimSpace(cfg.Render.DateLocale)
	if locale == "" {
		return ErrRenderDateLocaleRequired
	}
	if !render.SupportedLocale(locale) {
		return fmt.Errorf("%w: %s", ErrRenderDateLocaleUnknown, locale)
	}
	if strings.TrimSpace(cfg.Render.DateLayout) == "" {
		return ErrRenderDateLayoutRequired
	}

	provider := normalizeProvider(cfg.Logging.Provider)
	if provider == "" {
		return ErrLoggingProviderRequired
	}
	if !isSupportedProvider(provider) {
		return fmt.Errorf("%w: %s", ErrLoggingProviderUnknown, provider)
	}
	if level := strings.TrimSpace(cfg.Logging.Level); level != "" && !isSupportedLevel(level) {
		return fmt.Errorf("%w: %s", ErrLoggingLevelInvalid, level)
	}
	if provider == "gologger" {
		if format := strings.TrimSpace(cfg.Logging.Format); format != "" && !isSupportedFormat(format) {
			return fmt.Errorf("%w: %s", ErrLoggingFormatInvalid, format)
		}
	}
	return nil
}

// Addr returns the listen address for the configured port.
func (cfg ServerConfig) Addr() string {
	return fmt.Sprintf(":%d", cfg.Port)
}

// NormalizedProvider returns the lower-cased logging provider name.
func (cfg LoggingConfig) NormalizedProvider() string {
	return normalizeProvider(cfg.Provider)
}

func normalizeProvider(provider string) string {
	return strings.ToLower(strings.TrimSpace(provider))
}

func isSupportedProvider(provider string) bool {
	switch provider {
	case "console", "gologger":
		return true
	default:
		return false
	}
}

func isSupportedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "debug", "info", "warn", "warning", "error", "fatal":
		return true
	default:
		return false
	}
}

func isSupportedFormat(format string) bool {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json", "console", "pretty":
		return true
	default:
		return false
	}
}
