package blog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix namespaces environment overrides, e.g. BLOG_POSTS_DIR.
const EnvPrefix = "BLOG"

// platformEnv maps config keys onto variables set by hosting platforms.
var platformEnv = map[string]string{
	"server.port":       "PORT",
	"server.serverless": "VERCEL",
}

// NewViper returns a viper instance seeded with DefaultConfig and bound to
// BLOG_* and platform environment variables.
func NewViper() *viper.Viper {
	v := viper.New()
	setDefaults(v, DefaultConfig())

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	for key, env := range platformEnv {
		prefixed := EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
		_ = v.BindEnv(key, prefixed, env)
	}
	return v
}

// LoadConfig reads path (or ./blog.yaml when path is blank and the file
// exists), applies environment overrides and validates the result.
func LoadConfig(path string) (Config, error) {
	return LoadConfigWith(NewViper(), path)
}

// LoadConfigWith is LoadConfig on a caller supplied viper instance, so flag
// bindings made by the CLI take part in resolution.
func LoadConfigWith(v *viper.Viper, path string) (Config, error) {
	if v == nil {
		v = NewViper()
	}

	if strings.TrimSpace(path) != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("blog")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) || path != "" {
			return Config{}, fmt.Errorf("blog config: read %s: %w", describeConfigPath(path), err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("blog config: decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func describeConfigPath(path string) string {
	if strings.TrimSpace(path) == "" {
		return "blog.yaml"
	}
	return path
}

func setDefaults(v *viper.Viper, cfg Config) {
	v.SetDefault("posts.dir", cfg.Posts.Dir)
	v.SetDefault("posts.strict_slugs", cfg.Posts.StrictSlugs)
	v.SetDefault("static.dir", cfg.Static.Dir)
	v.SetDefault("server.port", cfg.Server.Port)
	v.SetDefault("server.serverless", cfg.Server.Serverless)
	v.SetDefault("server.read_header_timeout", cfg.Server.ReadHeaderTimeout)
	v.SetDefault("server.shutdown_timeout", cfg.Server.ShutdownTimeout)
	v.SetDefault("markdown.extensions", cfg.Markdown.Extensions)
	v.SetDefault("markdown.hard_wraps", cfg.Markdown.HardWraps)
	v.SetDefault("markdown.safe_mode", cfg.Markdown.SafeMode)
	v.SetDefault("markdown.heading_ids", cfg.Markdown.HeadingIDs)
	v.SetDefault("markdown.strip_front_matter", cfg.Markdown.StripFrontMatter)
	v.SetDefault("render.lang", cfg.Render.Lang)
	v.SetDefault("render.date_locale", cfg.Render.DateLocale)
	v.SetDefault("render.date_layout", cfg.Render.DateLayout)
	v.SetDefault("render.stylesheet", cfg.Render.Stylesheet)
	v.SetDefault("logging.provider", cfg.Logging.Provider)
	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("logging.add_source", cfg.Logging.AddSource)
}
