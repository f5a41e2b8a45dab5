// Package memory holds the in-process note store. It is volatile and
// demonstration-grade: no durability, no crash recovery.
package memory

import (
	"fmt"
	"sync"
	"time"

	"memory-gateway/domain/note"

	"go.uber.org/zap"
)

// NoteStore owns the authoritative collection of notes.
// All reads hand out copies, never references to stored records. A
// store-wide mutex serializes mutations so concurrent requests against the
// same id cannot produce lost updates.
type NoteStore struct {
	mu      sync.RWMutex
	notes   []note.Note
	nextID  int
	nowFunc func() time.Time
	logger  *zap.Logger
}

// NewNoteStore creates an empty note store
func NewNoteStore(logger *zap.Logger) *NoteStore {
	return &NoteStore{
		nextID:  1,
		nowFunc: time.Now,
		logger:  logger,
	}
}

// Create allocates a fresh id, stamps the current time and appends the note.
// It never fails. Ids are monotonic and never reused after deletion within
// a process lifetime.
func (s *NoteStore) Create(text string, source note.Source, tags []string) note.Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := note.Note{
		ID:        fmt.Sprintf("note_%d", s.nextID),
		Text:      text,
		Source:    source,
		Timestamp: s.nowFunc(),
		Tags:      append([]string{}, tags...),
	}
	s.nextID++
	s.notes = append(s.notes, n)

	s.logger.Debug("note stored",
		zap.String("noteID", n.ID),
		zap.Int("count", len(s.notes)),
	)
	return n.Clone()
}

// List returns an independent copy of all notes in insertion order
func (s *NoteStore) List() []note.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]note.Note, 0, len(s.notes))
	for _, n := range s.notes {
		out = append(out, n.Clone())
	}
	return out
}

// GetByID looks up a note by id. Absence is a valid outcome, not an error.
func (s *NoteStore) GetByID(id string) (note.Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, n := range s.notes {
		if n.ID == id {
			return n.Clone(), true
		}
	}
	return note.Note{}, false
}

// Update merges the provided fields into the existing record in place.
// Id and timestamp are never touched.
func (s *NoteStore) Update(id string, upd note.Update) (note.Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notes {
		if s.notes[i].ID != id {
			continue
		}
		if upd.Text != nil {
			s.notes[i].Text = *upd.Text
		}
		if upd.Tags != nil {
			s.notes[i].Tags = append([]string{}, *upd.Tags...)
		}
		return s.notes[i].Clone(), true
	}
	return note.Note{}, false
}

// Delete removes a note by id, reporting whether a record existed
func (s *NoteStore) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.notes {
		if s.notes[i].ID == id {
			s.notes = append(s.notes[:i], s.notes[i+1:]...)
			return true
		}
	}
	return false
}

// Count returns the number of stored notes
func (s *NoteStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.notes)
}
