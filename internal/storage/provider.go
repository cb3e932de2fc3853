// Package storage defines the posts-directory file-system abstraction.
package storage

import "time"

// PostFile is a directory entry for one post source file.
type PostFile struct {
	Slug    string
	ModTime time.Time
}

// Provider is the interface for post file operations.
type Provider interface {
	// List returns every post file in the directory, sorted by file name.
	List() ([]PostFile, error)
	// Read returns the raw bytes and modification time of the post named slug.
	Read(slug string) ([]byte, time.Time, error)
	// Write atomically writes content to the post named slug.
	Write(slug string, content []byte) error
}
