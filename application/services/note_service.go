package services

import (
	"strings"

	"memory-gateway/domain/note"
	"memory-gateway/infrastructure/persistence/memory"
	"memory-gateway/pkg/errors"

	"go.uber.org/zap"
)

// CreateNoteInput carries validated input for note creation
type CreateNoteInput struct {
	Text string
	Tags []string
}

// UpdateNoteInput carries a partial note update. Nil fields are not merged.
type UpdateNoteInput struct {
	Text *string
	Tags *[]string
}

// NoteService sits between the HTTP handlers and the store: it trims text,
// defaults missing tags and normalizes absent ids to NotFound errors.
type NoteService struct {
	store  *memory.NoteStore
	logger *zap.Logger
}

// NewNoteService creates a new note service
func NewNoteService(store *memory.NoteStore, logger *zap.Logger) *NoteService {
	return &NoteService{
		store:  store,
		logger: logger,
	}
}

// CreateNote trims the text, defaults missing tags to an empty sequence and
// delegates to the store. There is no duplicate detection; it always returns
// the created note.
func (s *NoteService) CreateNote(in CreateNoteInput) note.Note {
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	created := s.store.Create(strings.TrimSpace(in.Text), note.SourceNote, tags)

	s.logger.Info("note created",
		zap.String("noteID", created.ID),
		zap.Int("tags", len(created.Tags)),
	)
	return created
}

// GetAllNotes returns all notes in insertion order
func (s *NoteService) GetAllNotes() []note.Note {
	return s.store.List()
}

// GetNoteByID returns the note or a NotFound error, never a panic
func (s *NoteService) GetNoteByID(id string) (note.Note, error) {
	n, ok := s.store.GetByID(id)
	if !ok {
		return note.Note{}, errors.NewNotFoundError("Note")
	}
	return n, nil
}

// UpdateNote merges only the fields actually supplied; omitting text or tags
// preserves the existing value. Trimming is reapplied to any supplied text.
func (s *NoteService) UpdateNote(id string, in UpdateNoteInput) (note.Note, error) {
	upd := note.Update{Tags: in.Tags}
	if in.Text != nil {
		// A supplied text that trims to nothing is treated as not supplied,
		// preserving the existing value.
		if trimmed := strings.TrimSpace(*in.Text); trimmed != "" {
			upd.Text = &trimmed
		}
	}

	n, ok := s.store.Update(id, upd)
	if !ok {
		return note.Note{}, errors.NewNotFoundError("Note")
	}
	return n, nil
}

// DeleteNote reports whether a deletion occurred
func (s *NoteService) DeleteNote(id string) bool {
	deleted := s.store.Delete(id)
	if deleted {
		s.logger.Info("note deleted", zap.String("noteID", id))
	}
	return deleted
}
