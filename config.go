package blog

import "github.com/goliatone/go-blog/internal/runtimeconfig"

var (
	ErrPostsDirRequired         = runtimeconfig.ErrPostsDirRequired
	ErrServerPortInvalid        = runtimeconfig.ErrServerPortInvalid
	ErrServerTimeoutInvalid     = runtimeconfig.ErrServerTimeoutInvalid
	ErrMarkdownExtensionUnknown = runtimeconfig.ErrMarkdownExtensionUnknown
	ErrRenderDateLocaleRequired = runtimeconfig.ErrRenderDateLocaleRequired
	ErrRenderDateLocaleUnknown  = runtimeconfig.ErrRenderDateLocaleUnknown
	ErrRenderDateLayoutRequired = runtimeconfig.ErrRenderDateLayoutRequired
	ErrLoggingProviderRequired  = runtimeconfig.ErrLoggingProviderRequired
	ErrLoggingProviderUnknown   = runtimeconfig.ErrLoggingProviderUnknown
	ErrLoggingLevelInvalid      = runtimeconfig.ErrLoggingLevelInvalid
	ErrLoggingFormatInvalid     = runtimeconfig.ErrLoggingFormatInvalid
)

type (
	Config         = runtimeconfig.Config
	PostsConfig    = runtimeconfig.PostsConfig
	StaticConfig   = runtimeconfig.StaticConfig
	ServerConfig   = runtimeconfig.ServerConfig
	MarkdownConfig = runtimeconfig.MarkdownConfig
	RenderConfig   = runtimeconfig.RenderConfig
	LoggingConfig  = runtimeconfig.LoggingConfig
)

func DefaultConfig() Config {
	return runtimeconfig.DefaultConfig()
}
