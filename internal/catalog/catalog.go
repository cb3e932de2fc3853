// Package catalog reads the posts directory and renders individual posts.
package catalog

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"sort"
	"time"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gparser "github.com/yuin/goldmark/parser"

	"github.com/oward/scribe/internal/apperr"
	"github.com/oward/scribe/internal/parser"
	"github.com/oward/scribe/internal/storage"
)

// Summary is one catalog entry.
type Summary struct {
	Slug      string
	Title     string
	Published time.Time
}

// Post is a fully rendered post.
type Post struct {
	Slug      string
	Title     string
	Published time.Time
	HTML      template.HTML
}

// Catalog resolves posts from the configured directory. It holds no cache:
// every call re-reads the file system, so external edits show up immediately.
type Catalog struct {
	store  storage.Provider
	md     goldmark.Markdown
	logger *slog.Logger
}

// New creates a Catalog over the given provider. The markdown converter uses
// GFM, which covers fenced code blocks.
func New(store storage.Provider, logger *slog.Logger) *Catalog {
	return &Catalog{
		store: store,
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(gparser.WithAutoHeadingID()),
		),
		logger: logger,
	}
}

// List scans the directory and returns one summary per post file, sorted by
// publish date descending with ties broken by slug. A file whose front-matter
// is malformed degrades to the fallback metadata instead of aborting the
// listing.
func (c *Catalog) List(_ context.Context) ([]Summary, error) {
	files, err := c.store.List()
	if err != nil {
		return nil, err
	}

	out := make([]Summary, 0, len(files))
	for _, f := range files {
		data, _, err := c.store.Read(f.Slug)
		if err != nil {
			c.logger.Warn("catalog: skipping unreadable post",
				slog.String("slug", f.Slug), slog.String("error", err.Error()))
			continue
		}
		title, published := c.resolveMeta(f.Slug, f.ModTime, data)
		out = append(out, Summary{Slug: f.Slug, Title: title, Published: published})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Published.Equal(out[j].Published) {
			return out[i].Slug < out[j].Slug
		}
		return out[i].Published.After(out[j].Published)
	})
	return out, nil
}

// Render resolves and renders one post. A missing file maps to
// apperr.ErrNotFound; a malformed header degrades like List does.
func (c *Catalog) Render(_ context.Context, slug string) (*Post, error) {
	data, modTime, err := c.store.Read(slug)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("post %s: %w", slug, apperr.ErrNotFound)
		}
		return nil, err
	}

	body := string(data)
	title, published := slug, modTime
	res, err := parser.Parse(slug, data)
	if err != nil {
		// Unparsable front-matter date: treat the file as having no
		// header at all, keep serving it.
		var pe *apperr.ParseError
		if !errors.As(err, &pe) {
			return nil, err
		}
		c.logger.Warn("catalog: malformed front-matter", slog.String("error", pe.Error()))
	} else {
		body = res.Body
		if res.HasFrontmatter {
			published = res.Date
			if res.Title != "" {
				title = res.Title
			}
		}
	}

	var buf bytes.Buffer
	if err := c.md.Convert([]byte(body), &buf); err != nil {
		return nil, fmt.Errorf("catalog: render %s: %w", slug, err)
	}

	return &Post{
		Slug:      slug,
		Title:     title,
		Published: published,
		HTML:      template.HTML(buf.String()),
	}, nil
}

// resolveMeta extracts title and publish date from file content, falling back
// to the slug and the file's modification time. The mtime fallback keeps
// catalog order stable across repeated listings, unlike a wall-clock default.
func (c *Catalog) resolveMeta(slug string, modTime time.Time, data []byte) (string, time.Time) {
	res, err := parser.Parse(slug, data)
	if err != nil {
		c.logger.Warn("catalog: malformed front-matter", slog.String("error", err.Error()))
		return slug, modTime
	}
	if !res.HasFrontmatter {
		return slug, modTime
	}
	title := res.Title
	if title == "" {
		title = slug
	}
	return title, res.Date
}

// NewPostSource returns the file content for a freshly scaffolded post.
func NewPostSource(title string, date time.Time) []byte {
	return []byte(fmt.Sprintf("---\ntitle: %s\ndate: %s\n---\n\n", title, date.Format(parser.DateLayout)))
}
