package interfaces

// MarkdownParser converts raw Markdown bytes into an HTML fragment. A single
// parser instance is shared across requests, so implementations must be safe
// for concurrent use.
type MarkdownParser interface {
	// Parse converts Markdown into HTML using the parser's default settings.
	Parse(markdown []byte) ([]byte, error)
	// ParseWithOptions converts Markdown into HTML using the supplied overrides.
	ParseWithOptions(markdown []byte, opts ParseOptions) ([]byte, error)
}

// ParseOptions customises Markdown rendering. Field names stay readable so the
// struct can be filled from configuration files and CLI flags.
type ParseOptions struct {
	// Extensions lists goldmark extensions by name ("gfm", "table", "linkify", ...).
	// An empty list selects the default set.
	Extensions []string
	HardWraps  bool
	// SafeMode drops raw HTML embedded in the Markdown source.
	SafeMode bool
	// HeadingIDs adds generated id attributes to headings.
	HeadingIDs bool
}
