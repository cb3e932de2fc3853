// Package web implements the HTML front end: page handlers, templates, and
// the RSS feed. It is a thin adapter over the catalog and comment store.
package web

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/oward/scribe/internal/apperr"
	"github.com/oward/scribe/internal/catalog"
	"github.com/oward/scribe/internal/comments"
)

// Site carries the display metadata shared by every page and the feed.
type Site struct {
	Title       string
	Author      string
	BaseURL     string
	Description string
}

// Handler holds the page handlers.
type Handler struct {
	catalog  *catalog.Catalog
	comments comments.Repository
	site     Site
	tmpl     *template.Template
	logger   *slog.Logger
}

// NewHandler parses the embedded templates and returns a Handler.
func NewHandler(cat *catalog.Catalog, store comments.Repository, site Site, logger *slog.Logger) (*Handler, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("web: parse templates: %w", err)
	}
	return &Handler{
		catalog:  cat,
		comments: store,
		site:     site,
		tmpl:     tmpl,
		logger:   logger,
	}, nil
}

type indexData struct {
	Site  Site
	Posts []catalog.Summary
}

type postData struct {
	Site     Site
	Post     *catalog.Post
	Comments []comments.Comment
}

type pageData struct {
	Site Site
}

// Index handles GET /.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	posts, err := h.catalog.List(r.Context())
	if err != nil {
		h.serverError(w, "list catalog", err)
		return
	}
	h.render(w, http.StatusOK, "index.html", indexData{Site: h.site, Posts: posts})
}

// Post handles GET /post/{slug}: the rendered post, its comments, and the
// comment form.
func (h *Handler) Post(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	post, err := h.catalog.Render(r.Context(), slug)
	if err != nil {
		if errors.Is(err, apperr.ErrNotFound) {
			h.NotFound(w, r)
			return
		}
		h.serverError(w, "render post", err)
		return
	}
	cs, err := h.comments.List(r.Context(), slug)
	if err != nil {
		h.serverError(w, "list comments", err)
		return
	}
	h.render(w, http.StatusOK, "post.html", postData{Site: h.site, Post: post, Comments: cs})
}

// commentForm is a submitted comment before insertion.
type commentForm struct {
	Author string
	Body   string
}

func (f commentForm) Validate() error {
	return validation.ValidateStruct(&f,
		validation.Field(&f.Author, validation.Required, validation.Length(1, 200)),
		validation.Field(&f.Body, validation.Required),
	)
}

// PostForm handles POST /post/{slug}: either a comment submission or, when
// the delete flag is set, a bulk delete of the post's comments. Both redirect
// back to the post view; resubmitting a comment form creates a duplicate row.
func (h *Handler) PostForm(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	redirect := func() {
		http.Redirect(w, r, "/post/"+url.PathEscape(slug), http.StatusSeeOther)
	}

	if err := r.ParseForm(); err != nil {
		h.logger.Debug("web: unparsable form", slog.String("slug", slug), slog.String("error", err.Error()))
		redirect()
		return
	}

	if r.PostFormValue("delete") != "" {
		n, err := h.comments.DeleteAll(r.Context(), slug)
		if err != nil {
			h.serverError(w, "delete comments", err)
			return
		}
		h.logger.Info("web: comments deleted", slog.String("slug", slug), slog.Int64("count", n))
		redirect()
		return
	}

	form := commentForm{
		Author: strings.TrimSpace(r.PostFormValue("author")),
		Body:   strings.TrimSpace(r.PostFormValue("body")),
	}
	if err := form.Validate(); err != nil {
		// Malformed submissions are dropped and the post redisplayed.
		h.logger.Debug("web: invalid comment dropped", slog.String("slug", slug), slog.String("error", err.Error()))
		redirect()
		return
	}

	if _, err := h.comments.Add(r.Context(), slug, form.Author, form.Body); err != nil {
		if errors.Is(err, apperr.ErrValidation) {
			h.logger.Debug("web: comment rejected", slog.String("slug", slug), slog.String("error", err.Error()))
			redirect()
			return
		}
		h.serverError(w, "add comment", err)
		return
	}
	redirect()
}

// About handles GET /about.
func (h *Handler) About(w http.ResponseWriter, _ *http.Request) {
	h.render(w, http.StatusOK, "about.html", pageData{Site: h.site})
}

// NotFound renders the 404 page.
func (h *Handler) NotFound(w http.ResponseWriter, _ *http.Request) {
	h.render(w, http.StatusNotFound, "notfound.html", pageData{Site: h.site})
}

func (h *Handler) serverError(w http.ResponseWriter, op string, err error) {
	h.logger.Error("web: "+op+" failed", slog.String("error", err.Error()))
	h.render(w, http.StatusInternalServerError, "error.html", pageData{Site: h.site})
}

// render executes the named template into a buffer first so a template error
// never produces a half-written page.
func (h *Handler) render(w http.ResponseWriter, status int, name string, data any) {
	var buf bytes.Buffer
	if err := h.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		h.logger.Error("web: template execute failed", slog.String("template", name), slog.String("error", err.Error()))
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}
