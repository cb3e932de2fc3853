// Package parser extracts the front-matter header (title, publish date) from
// markdown post files.
package parser

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/oward/scribe/internal/apperr"
)

// frontmatterRe matches the header block at the very start of a file:
// a --- delimiter, a title: field, a date: field, and a closing --- delimiter.
// Captures are non-greedy and may span lines; delimiters need not sit on
// their own lines.
var frontmatterRe = regexp.MustCompile(`(?s)\A---\s*title:\s*(.*?)\s*date:\s*(.*?)\s*---`)

// DateLayout is the only accepted form for the front-matter date field.
const DateLayout = "2006-01-02"

// Result holds the outcome of parsing a post file.
type Result struct {
	Title          string
	Date           time.Time
	Body           string
	HasFrontmatter bool
}

// Parse extracts front-matter from raw markdown bytes. name identifies the
// file in error messages.
//
// When no header matches, the whole input becomes the body and Title/Date are
// left zero for the caller's fallback. When the header matches but the date
// does not parse as YYYY-MM-DD, Parse returns an *apperr.ParseError.
func Parse(name string, data []byte) (*Result, error) {
	m := frontmatterRe.FindSubmatchIndex(data)
	if m == nil {
		return &Result{Body: strings.TrimSpace(string(data))}, nil
	}

	title := string(data[m[2]:m[3]])
	rawDate := string(data[m[4]:m[5]])

	date, err := time.Parse(DateLayout, rawDate)
	if err != nil {
		return nil, &apperr.ParseError{
			Name: name,
			Err:  fmt.Errorf("date %q: want %s", rawDate, DateLayout),
		}
	}

	return &Result{
		Title:          title,
		Date:           date,
		Body:           strings.TrimSpace(string(data[m[1]:])),
		HasFrontmatter: true,
	}, nil
}
