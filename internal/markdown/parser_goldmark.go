package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/goliatone/go-blog/pkg/interfaces"
)

// GoldmarkParser implements interfaces.MarkdownParser on top of goldmark. The
// engine for the default options is built once and reused; goldmark engines
// are safe for concurrent Convert calls.
type GoldmarkParser struct {
	defaultOptions interfaces.ParseOptions
	engine         goldmark.Markdown
}

var _ interfaces.MarkdownParser = (*GoldmarkParser)(nil)

// NewGoldmarkParser builds a parser. With zero options it renders CommonMark
// plus GFM (tables, strikethrough, linkify, task lists) and passes raw HTML through.
func NewGoldmarkParser(defaults interfaces.ParseOptions) *GoldmarkParser {
	return &GoldmarkParser{
		defaultOptions: defaults,
		engine:         newGoldmarkEngine(defaults),
	}
}

// Parse renders markdown with the parser defaults.
func (p *GoldmarkParser) Parse(markdown []byte) ([]byte, error) {
	return convert(p.engine, markdown)
}

// ParseWithOptions renders markdown with opts merged over the defaults.
func (p *GoldmarkParser) ParseWithOptions(markdown []byte, opts interfaces.ParseOptions) ([]byte, error) {
	merged := MergeParseOptions(p.defaultOptions, opts)
	if sameOptions(merged, p.defaultOptions) {
		return convert(p.engine, markdown)
	}
	return convert(newGoldmarkEngine(merged), markdown)
}

func convert(engine goldmark.Markdown, markdown []byte) ([]byte, error) {
	var buf bytes.Buffer
	if err := engine.Convert(markdown, &buf); err != nil {
		return nil, fmt.Errorf("markdown parse: %w", err)
	}
	return buf.Bytes(), nil
}

func newGoldmarkEngine(opts interfaces.ParseOptions) goldmark.Markdown {
	parserOptions := []parser.Option{}
	if opts.HeadingIDs {
		parserOptions = append(parserOptions, parser.WithAutoHeadingID())
	}

	rendererOptions := []renderer.Option{}
	if opts.HardWraps {
		rendererOptions = append(rendererOptions, html.WithHardWraps())
	}
	if !opts.SafeMode {
		rendererOptions = append(rendererOptions, html.WithUnsafe())
	}

	engineOptions := []goldmark.Option{
		goldmark.WithParserOptions(parserOptions...),
		goldmark.WithRendererOptions(rendererOptions...),
	}
	if exts := collectExtensions(opts.Extensions); len(exts) > 0 {
		engineOptions = append(engineOptions, goldmark.WithExtensions(exts...))
	}

	return goldmark.New(engineOptions...)
}

var extensionRegistry = map[string]goldmark.Extender{
	"gfm":           extension.GFM,
	"table":         extension.Table,
	"tables":        extension.Table,
	"strikethrough": extension.Strikethrough,
	"linkify":       extension.Linkify,
	"autolink":      extension.Linkify,
	"tasklist":      extension.TaskList,
	"definition":    extension.DefinitionList,
	"footnote":      extension.Footnote,
	"typographer":   extension.Typographer,
}

// KnownExtension reports whether name maps onto a goldmark extension.
func KnownExtension(name string) bool {
	_, ok := extensionRegistry[strings.ToLower(strings.TrimSpace(name))]
	return ok
}

// gfmMembers are already installed by extension.GFM.
var gfmMembers = map[goldmark.Extender]struct{}{
	extension.Table:         {},
	extension.Strikethrough: {},
	extension.Linkify:       {},
	extension.TaskList:      {},
}

func collectExtensions(names []string) []goldmark.Extender {
	if len(names) == 0 {
		return []goldmark.Extender{extension.GFM}
	}

	seen := map[goldmark.Extender]struct{}{}
	ordered := make([]goldmark.Extender, 0, len(names))
	for _, name := range names {
		ext, ok := extensionRegistry[strings.ToLower(strings.TrimSpace(name))]
		if !ok {
			continue
		}
		if _, dup := seen[ext]; dup {
			continue
		}
		seen[ext] = struct{}{}
		ordered = append(ordered, ext)
	}

	if _, withGFM := seen[extension.GFM]; !withGFM {
		return ordered
	}
	extenders := ordered[:0]
	for _, ext := range ordered {
		if _, covered := gfmMembers[ext]; covered {
			continue
		}
		extenders = append(extenders, ext)
	}
	return extenders
}

// MergeParseOptions overlays override onto base. Boolean switches can only
// be turned on by the override.
func MergeParseOptions(base, override interfaces.ParseOptions) interfaces.ParseOptions {
	result := base
	if len(override.Extensions) > 0 {
		result.Extensions = append([]string(nil), override.Extensions...)
	}
	result.HardWraps = base.HardWraps || override.HardWraps
	result.SafeMode = base.SafeMode || override.SafeMode
	result.HeadingIDs = base.HeadingIDs || override.HeadingIDs
	return result
}

func sameOptions(a, b interfaces.ParseOptions) bool {
	if a.HardWraps != b.HardWraps || a.SafeMode != b.SafeMode || a.HeadingIDs != b.HeadingIDs {
		return false
	}
	if len(a.Extensions) != len(b.Extensions) {
		return false
	}
	for i := range a.Extensions {
		if a.Extensions[i] != b.Extensions[i] {
			return false
		}
	}
	return true
}
