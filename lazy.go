package blog

import (
	"encoding/json"
	"net/http"
	"sync"
)

// ConfigLoader produces the configuration for a lazily built module.
type ConfigLoader func() (Config, error)

// LazyHandler builds the module on the first request and reuses it for every
// request after that. Concurrent first requests wait on a single build. A
// failed build is remembered and every request answers 500.
func LazyHandler(load ConfigLoader, opts ...Option) http.HandlerFunc {
	var (
		once    sync.Once
		handler http.Handler
		initErr error
	)

	return func(w http.ResponseWriter, r *http.Request) {
		once.Do(func() {
			if load == nil {
				load = func() (Config, error) { return LoadConfig("") }
			}
			cfg, err := load()
			if err != nil {
				initErr = err
				return
			}
			module, err := New(cfg, opts...)
			if err != nil {
				initErr = err
				return
			}
			handler = module.Handler()
		})

		if initErr != nil {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusInternalServerError)
			_ = json.NewEncoder(w).Encode(map[string]string{
				"error":   "internal_error",
				"message": "blog is not available",
			})
			return
		}
		handler.ServeHTTP(w, r)
	}
}

var defaultHandler = LazyHandler(func() (Config, error) {
	return LoadConfig("")
})

// DefaultHandler serves requests from a process-wide module configured from
// ./blog.yaml and the environment.
func DefaultHandler(w http.ResponseWriter, r *http.Request) {
	defaultHandler(w, r)
}
