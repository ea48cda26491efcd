package render

import (
	"embed"
	"html/template"
)

//go:embed templates/post.html
var templateFS embed.FS

var postTemplate = template.Must(template.ParseFS(templateFS, "templates/post.html"))

// Page is the data handed to the post document template. Title and dates are
// escaped by html/template; Content is trusted converter output.
type Page struct {
	Lang        string
	Title       string
	Date        string
	DisplayDate string
	Stylesheet  string
	BackLink    string
	Content     template.HTML
}
