// Package markdown converts post bodies into HTML fragments with goldmark and
// optionally strips a leading front matter block before conversion.
package markdown
