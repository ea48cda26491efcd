package render

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/goliatone/go-blog/internal/posts"
	"github.com/goliatone/go-blog/pkg/interfaces"
	"github.com/goliatone/go-blog/pkg/testsupport"
)

func TestRendererRender_HelloWorld(t *testing.T) {
	source, err := testsupport.LoadFixture("testdata/2024-03-15-hello-world.md")
	if err != nil {
		t.Fatalf("load fixture: %v", err)
	}
	renderer := newTestRenderer(t, map[string]string{
		"2024-03-15-hello-world.md": string(source),
	})

	doc, err := renderer.Render(context.Background(), "2024-03-15-hello-world")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := string(doc)

	for _, want := range []string{
		"<!DOCTYPE html>",
		"<title>hello world</title>",
		`<h1 class="post-title">hello world</h1>`,
		`<time datetime="2024-03-15" class="post-date">15/03/2024</time>`,
		"<h1>Hi</h1>",
		"<p>Body.</p>",
		`href="/style.css"`,
		`<a href="/" class="back-link">`,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("expected %q in rendered document:\n%s", want, out)
		}
	}
}

func TestRendererRender_NotFound(t *testing.T) {
	renderer := newTestRenderer(t, nil)

	_, err := renderer.Render(context.Background(), "does-not-exist")
	if !posts.IsNotFound(err) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestRendererRender_EscapesTitle(t *testing.T) {
	renderer := newTestRenderer(t, map[string]string{
		"2024-03-15-<script>alert(1)<&script>.md": "safe body",
	})

	doc, err := renderer.Render(context.Background(), "2024-03-15-<script>alert(1)<&script>")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := string(doc)
	if strings.Contains(out, "<script>alert(1)") {
		t.Fatalf("title was not escaped:\n%s", out)
	}
	if !strings.Contains(out, "&lt;script&gt;alert(1)&lt;&amp;script&gt;") {
		t.Fatalf("expected escaped title in output:\n%s", out)
	}
}

func TestRendererRender_InvalidDateFallsBackToRaw(t *testing.T) {
	renderer := newTestRenderer(t, map[string]string{
		"2024-13-45-impossible-day.md": "x",
	})

	doc, err := renderer.Render(context.Background(), "2024-13-45-impossible-day")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(doc), `<time datetime="2024-13-45" class="post-date">2024-13-45</time>`) {
		t.Fatalf("expected raw date fallback:\n%s", doc)
	}
}

func TestRendererRender_MalformedSlugSoftDegrades(t *testing.T) {
	renderer := newTestRenderer(t, map[string]string{
		"about.md": "About me.",
	})

	doc, err := renderer.Render(context.Background(), "about")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	out := string(doc)
	if !strings.Contains(out, `<h1 class="post-title"></h1>`) {
		t.Fatalf("expected empty title for malformed slug:\n%s", out)
	}
	if !strings.Contains(out, `<time datetime="about" class="post-date">about</time>`) {
		t.Fatalf("expected partial date for malformed slug:\n%s", out)
	}
}

func TestRendererPage_MatchesListing(t *testing.T) {
	files := map[string]string{
		"2021-05-09-mothers-day-recipes.md": "x",
		"2020-02-29-leap-day.md":            "y",
	}
	dir := testsupport.TempPosts(t, files)
	repo := posts.NewFSRepository(dir)
	renderer, err := New(repo, nil)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	list, err := repo.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	for _, item := range list {
		page, err := renderer.Page(item.Slug, []byte(files[posts.Filename(item.Slug)]))
		if err != nil {
			t.Fatalf("Page %s: %v", item.Slug, err)
		}
		if page.Title != item.Title || page.Date != item.Date {
			t.Fatalf("render derived %q/%q, listing has %q/%q", page.Title, page.Date, item.Title, item.Date)
		}
	}
}

func TestRendererStripFrontMatter(t *testing.T) {
	source := "---\ntitle: Ignored\n---\n# Heading\n"
	files := map[string]string{"2024-03-15-with-meta.md": source}

	plain := newTestRenderer(t, files)
	doc, err := plain.Render(context.Background(), "2024-03-15-with-meta")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(doc), "title: Ignored") {
		t.Fatalf("front matter should be rendered verbatim by default:\n%s", doc)
	}

	stripping := newTestRenderer(t, files, WithConfig(Config{StripFrontMatter: true}))
	doc, err = stripping.Render(context.Background(), "2024-03-15-with-meta")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(string(doc), "title: Ignored") {
		t.Fatalf("front matter should be stripped:\n%s", doc)
	}
	if !strings.Contains(string(doc), "<h1>Heading</h1>") {
		t.Fatalf("expected body heading:\n%s", doc)
	}
}

func TestRendererUsesProvidedParser(t *testing.T) {
	stub := &stubParser{html: []byte("<p>stubbed</p>")}
	renderer, err := New(posts.NewFSRepository(testsupport.TempPosts(t, map[string]string{
		"2024-03-15-hello-world.md": "ignored",
	})), stub)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	doc, err := renderer.Render(context.Background(), "2024-03-15-hello-world")
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !strings.Contains(string(doc), "<p>stubbed</p>") || string(stub.got) != "ignored" {
		t.Fatalf("expected stub parser output, got %s", doc)
	}

	stub.err = errors.New("boom")
	if _, err := renderer.Render(context.Background(), "2024-03-15-hello-world"); err == nil {
		t.Fatal("expected parser error to propagate")
	}
}

func TestNewRequiresRepository(t *testing.T) {
	if _, err := New(nil, nil); err == nil {
		t.Fatal("expected error without repository")
	}
}

type stubParser struct {
	html []byte
	got  []byte
	err  error
}

func (s *stubParser) Parse(markdown []byte) ([]byte, error) {
	s.got = markdown
	if s.err != nil {
		return nil, s.err
	}
	return s.html, nil
}

func (s *stubParser) ParseWithOptions(markdown []byte, _ interfaces.ParseOptions) ([]byte, error) {
	return s.Parse(markdown)
}

func newTestRenderer(tb testing.TB, files map[string]string, opts ...Option) *Renderer {
	tb.Helper()
	renderer, err := New(posts.NewFSRepository(testsupport.TempPosts(tb, files)), nil, opts...)
	if err != nil {
		tb.Fatalf("New: %v", err)
	}
	return renderer
}
