package note

import (
	"time"
)

// Source identifies where a note originated
type Source string

const (
	SourceNote Source = "note"
	SourceChat Source = "chat"
)

// IsValid checks whether the source is a known value
func (s Source) IsValid() bool {
	return s == SourceNote || s == SourceChat
}

// Note represents a user-authored text record
type Note struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Source    Source    `json:"source"`
	Timestamp time.Time `json:"timestamp"`
	Tags      []string  `json:"tags"`
}

// Clone returns an independent copy of the note.
// The tag slice is copied so callers can never mutate stored state.
func (n Note) Clone() Note {
	c := n
	c.Tags = make([]string, len(n.Tags))
	copy(c.Tags, n.Tags)
	return c
}

// Update describes a partial modification of a note.
// Nil fields are left untouched; ID and Timestamp are never modified.
type Update struct {
	Text *string
	Tags *[]string
}
