package parser

import (
	"errors"
	"testing"
	"time"

	"github.com/oward/scribe/internal/apperr"
)

func TestParse_FrontmatterAndBody(t *testing.T) {
	input := []byte("---\ntitle: Hello\ndate: 2024-01-05\n---\n\nBody text.\n")
	r, err := Parse("2024-01-05-intro", input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !r.HasFrontmatter {
		t.Fatal("expected front-matter to match")
	}
	if r.Title != "Hello" {
		t.Errorf("title = %q, want %q", r.Title, "Hello")
	}
	want := time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC)
	if !r.Date.Equal(want) {
		t.Errorf("date = %v, want %v", r.Date, want)
	}
	if r.Body != "Body text." {
		t.Errorf("body = %q, want %q", r.Body, "Body text.")
	}
}

func TestParse_SingleLineHeader(t *testing.T) {
	// The pattern does not require line breaks between fields.
	input := []byte("---title: Hello date: 2024-01-05---\nBody text")
	r, err := Parse("intro", input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Title != "Hello" {
		t.Errorf("title = %q, want %q", r.Title, "Hello")
	}
	if r.Date.Format(DateLayout) != "2024-01-05" {
		t.Errorf("date = %v", r.Date)
	}
	if r.Body != "Body text" {
		t.Errorf("body = %q", r.Body)
	}
}

func TestParse_NoFrontmatter(t *testing.T) {
	input := []byte("# Just a heading\nSome text.\n")
	r, err := Parse("heading", input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.HasFrontmatter {
		t.Error("expected no front-matter")
	}
	if r.Body != "# Just a heading\nSome text." {
		t.Errorf("body = %q", r.Body)
	}
	if !r.Date.IsZero() {
		t.Errorf("date should be zero, got %v", r.Date)
	}
}

func TestParse_HeaderNotAtStart(t *testing.T) {
	input := []byte("intro line\n---\ntitle: X\ndate: 2024-01-05\n---\n")
	r, err := Parse("x", input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.HasFrontmatter {
		t.Error("header not anchored at start must not match")
	}
}

func TestParse_UnparsableDate(t *testing.T) {
	input := []byte("---\ntitle: X\ndate: January 5th\n---\nbody\n")
	_, err := Parse("bad-date", input)
	if err == nil {
		t.Fatal("expected ParseError")
	}
	var pe *apperr.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("error type = %T, want *apperr.ParseError", err)
	}
	if pe.Name != "bad-date" {
		t.Errorf("name = %q, want %q", pe.Name, "bad-date")
	}
}

func TestParse_UnterminatedHeader(t *testing.T) {
	input := []byte("---\ntitle: X\ndate: 2024-01-05\nno closing delimiter\n")
	r, err := Parse("x", input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.HasFrontmatter {
		t.Error("unterminated header must fall back to body-only")
	}
}
