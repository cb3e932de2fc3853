// Package comments implements the SQLite-backed per-post comment store.
package comments

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/oward/scribe/internal/apperr"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS comments (
	id         INTEGER PRIMARY KEY AUTOINCREMENT,
	slug       TEXT NOT NULL,
	author     TEXT NOT NULL,
	body       TEXT NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_comments_slug ON comments(slug);
`

// Comment is one stored visitor comment. Comments are immutable once inserted:
// the only mutations are Add and DeleteAll.
type Comment struct {
	ID        int64
	Slug      string
	Author    string
	Body      string
	CreatedAt time.Time
}

// Repository defines the comment operations used by the web layer.
// Consumers should depend on this interface rather than the concrete *Store
// to facilitate testing.
type Repository interface {
	List(ctx context.Context, slug string) ([]Comment, error)
	Add(ctx context.Context, slug, author, body string) (*Comment, error)
	DeleteAll(ctx context.Context, slug string) (int64, error)
	Close() error
}

// Verify *Store satisfies Repository at compile time.
var _ Repository = (*Store)(nil)

// Store wraps a sql.DB with comment operations. The pooled connection is
// opened once at startup; SQLite's own locking preserves insert/delete
// atomicity across concurrent requests.
type Store struct {
	conn *sql.DB
}

// Open opens (or creates) the SQLite database and applies the schema.
// Schema application is idempotent and never destroys existing rows.
func Open(path string) (*Store, error) {
	conn, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("comments: open db: %w", err)
	}
	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("comments: ping: %w", err)
	}
	if _, err := conn.Exec(schemaSQL); err != nil {
		conn.Close()
		return nil, fmt.Errorf("comments: apply schema: %w", err)
	}
	return &Store{conn: conn}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

// List returns every comment for slug, newest first. Rows with equal
// timestamps fall back to insertion order (id) so the order stays stable.
func (s *Store) List(ctx context.Context, slug string) ([]Comment, error) {
	rows, err := s.conn.QueryContext(ctx, `
		SELECT id, slug, author, body, created_at
		FROM comments
		WHERE slug = ?
		ORDER BY created_at DESC, id DESC
	`, slug)
	if err != nil {
		return nil, fmt.Errorf("comments: list: %w", err)
	}
	defer rows.Close()

	var out []Comment
	for rows.Next() {
		var c Comment
		if err := rows.Scan(&c.ID, &c.Slug, &c.Author, &c.Body, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("comments: scan: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// Add appends one comment with a store-assigned id and creation timestamp.
// Empty author or body (after trimming) is rejected with apperr.ErrValidation.
// The insert is committed before Add returns.
func (s *Store) Add(ctx context.Context, slug, author, body string) (*Comment, error) {
	if strings.TrimSpace(author) == "" || strings.TrimSpace(body) == "" {
		return nil, fmt.Errorf("comments: author and body are required: %w", apperr.ErrValidation)
	}

	createdAt := time.Now().UTC()
	res, err := s.conn.ExecContext(ctx, `
		INSERT INTO comments (slug, author, body, created_at)
		VALUES (?, ?, ?, ?)
	`, slug, author, body, createdAt)
	if err != nil {
		return nil, fmt.Errorf("comments: insert: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("comments: last insert id: %w", err)
	}

	return &Comment{
		ID:        id,
		Slug:      slug,
		Author:    author,
		Body:      body,
		CreatedAt: createdAt,
	}, nil
}

// DeleteAll removes every comment for slug in a single statement, so the
// delete is all-or-nothing. Returns the number of removed rows; zero when
// none existed, which is not an error.
func (s *Store) DeleteAll(ctx context.Context, slug string) (int64, error) {
	res, err := s.conn.ExecContext(ctx, `DELETE FROM comments WHERE slug = ?`, slug)
	if err != nil {
		return 0, fmt.Errorf("comments: delete: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("comments: rows affected: %w", err)
	}
	return n, nil
}
