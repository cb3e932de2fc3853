package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// NewRouter creates a chi router with all site routes mounted.
// staticDir, if non-empty, is served under /static/.
func NewRouter(h *Handler, staticDir string) chi.Router {
	r := chi.NewRouter()

	r.Get("/", h.Index)
	r.Get("/about", h.About)
	r.Get("/feed.xml", h.Feed)

	r.Get("/post/{slug}", h.Post)
	r.Post("/post/{slug}", h.PostForm)

	if staticDir != "" {
		files := http.StripPrefix("/static/", http.FileServer(http.Dir(staticDir)))
		r.Get("/static/*", files.ServeHTTP)
	}

	r.NotFound(h.NotFound)

	return r
}
