package http

import (
	"io/fs"
	"net/http"
	"path"
	"strings"
)

func (api *BlogAPI) registerStaticRoutes(mux *http.ServeMux, base string) {
	if api.staticDir == "" {
		return
	}
	files := http.FileServer(indexOnlyFS{http.Dir(api.staticDir)})
	prefix := strings.TrimSuffix(base, "/")
	if prefix != "" {
		files = http.StripPrefix(prefix, files)
	}
	mux.Handle("GET "+prefix+"/", files)
}

// indexOnlyFS hides directories that have no index.html so the file server
// answers 404 instead of a listing.
type indexOnlyFS struct {
	fs http.FileSystem
}

func (f indexOnlyFS) Open(name string) (http.File, error) {
	file, err := f.fs.Open(name)
	if err != nil {
		return nil, err
	}

	info, err := file.Stat()
	if err != nil {
		_ = file.Close()
		return nil, err
	}
	if !info.IsDir() {
		return file, nil
	}

	index, err := f.fs.Open(path.Join(name, "index.html"))
	if err != nil {
		_ = file.Close()
		return nil, fs.ErrNotExist
	}
	_ = index.Close()
	return file, nil
}
