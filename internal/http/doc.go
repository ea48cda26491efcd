// Package http mounts the blog on a net/http ServeMux.
//
// Routes:
//   - GET /posts: JSON listing of every post, newest first
//   - GET /posts/{slug}: the rendered HTML document for one post
//   - GET /: static assets from the public directory
//
// Host applications can register the routes on their own mux or use
// Handler, which adds request logging.
package http
