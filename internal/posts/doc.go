// Package posts reads blog posts from a directory of Markdown files named
// YYYY-MM-DD-title-words.md. The filename without extension is the post slug;
// date and title are derived from it with ParseSlug, which is shared by the
// listing and the renderer so both always agree.
//
// Nothing is cached: every call re-reads the filesystem.
package posts
