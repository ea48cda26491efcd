package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-blog/internal/posts"
	"github.com/goliatone/go-blog/pkg/testsupport"
)

func TestListCommandPrintsJSON(t *testing.T) {
	dir := setupPosts(t, map[string]string{
		"2024-03-15-hello-world.md": "# Hi",
		"2023-01-02-older.md":       "old",
	})

	out, err := runCLI(t, "list", "--posts-dir", dir)
	if err != nil {
		t.Fatalf("list: %v", err)
	}

	var list []posts.Summary
	if err := json.Unmarshal([]byte(out), &list); err != nil {
		t.Fatalf("decode output %q: %v", out, err)
	}
	if len(list) != 2 || list[0].Slug != "2024-03-15-hello-world" || list[1].Title != "older" {
		t.Fatalf("unexpected listing %+v", list)
	}
}

func TestRenderCommandPrintsDocument(t *testing.T) {
	dir := setupPosts(t, map[string]string{
		"2024-03-15-hello-world.md": "# Hi\n\nBody.",
	})

	out, err := runCLI(t, "render", "--posts-dir", dir, "2024-03-15-hello-world")
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(out, `<h1 class="post-title">hello world</h1>`) || !strings.Contains(out, "<p>Body.</p>") {
		t.Fatalf("unexpected document:\n%s", out)
	}
}

func TestRenderCommandMissingPost(t *testing.T) {
	dir := setupPosts(t, nil)

	_, err := runCLI(t, "render", "--posts-dir", dir, "2024-03-15-nope")
	if !posts.IsNotFound(err) {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestNewCommandScaffoldsPost(t *testing.T) {
	dir := setupPosts(t, nil)

	out, err := runCLI(t, "new", "--posts-dir", dir, "--date", "2024-03-15", "Hello", "World")
	if err != nil {
		t.Fatalf("new: %v", err)
	}
	want := filepath.Join(dir, "2024-03-15-hello-world.md")
	if strings.TrimSpace(out) != want {
		t.Fatalf("expected path %s got %q", want, out)
	}
	data, err := os.ReadFile(want)
	if err != nil {
		t.Fatalf("read scaffolded post: %v", err)
	}
	if string(data) != "# Hello World\n" {
		t.Fatalf("unexpected body %q", data)
	}

	_, err = runCLI(t, "new", "--posts-dir", dir, "--date", "2024-03-15", "Hello", "World")
	if !errors.Is(err, posts.ErrPostExists) {
		t.Fatalf("expected ErrPostExists, got %v", err)
	}
}

func TestNewCommandRejectsBadDate(t *testing.T) {
	dir := setupPosts(t, nil)

	if _, err := runCLI(t, "new", "--posts-dir", dir, "--date", "15/03/2024", "Title"); err == nil {
		t.Fatalf("expected invalid date error")
	}
}

func TestServeCommandSkipsListenWhenServerless(t *testing.T) {
	dir := setupPosts(t, nil)
	t.Setenv("VERCEL", "1")

	if _, err := runCLI(t, "serve", "--posts-dir", dir); err != nil {
		t.Fatalf("serve: %v", err)
	}
}

func TestRootCommandRejectsInvalidConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("BLOG_LOGGING_PROVIDER", "syslog")

	if _, err := runCLI(t, "list"); err == nil {
		t.Fatalf("expected config validation error")
	}
}

func setupPosts(t *testing.T, files map[string]string) string {
	t.Helper()
	t.Chdir(t.TempDir())

	return testsupport.TempPosts(t, files)
}

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCommand()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}
