package memory

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"memory-gateway/domain/note"
)

func newTestStore(t *testing.T) *NoteStore {
	t.Helper()
	return NewNoteStore(zap.NewNop())
}

func TestCreateAssignsSequentialIDs(t *testing.T) {
	store := newTestStore(t)

	first := store.Create("first", note.SourceNote, nil)
	second := store.Create("second", note.SourceNote, []string{"a"})

	assert.Equal(t, "note_1", first.ID)
	assert.Equal(t, "note_2", second.ID)
	assert.False(t, first.Timestamp.IsZero())
	assert.Equal(t, []string{}, first.Tags)
	assert.Equal(t, []string{"a"}, second.Tags)
}

func TestIDsNeverReusedAfterDelete(t *testing.T) {
	store := newTestStore(t)

	n := store.Create("first", note.SourceNote, nil)
	require.True(t, store.Delete(n.ID))

	next := store.Create("second", note.SourceNote, nil)
	assert.Equal(t, "note_2", next.ID)
}

func TestListPreservesInsertionOrderAndCopies(t *testing.T) {
	store := newTestStore(t)
	store.Create("first", note.SourceNote, []string{"x"})
	store.Create("second", note.SourceChat, nil)

	listed := store.List()
	require.Len(t, listed, 2)
	assert.Equal(t, "note_1", listed[0].ID)
	assert.Equal(t, "note_2", listed[1].ID)
	assert.Equal(t, note.SourceChat, listed[1].Source)

	// Mutating the listed copies must not touch stored state.
	listed[0].Text = "mutated"
	listed[0].Tags[0] = "mutated"

	again, ok := store.GetByID("note_1")
	require.True(t, ok)
	assert.Equal(t, "first", again.Text)
	assert.Equal(t, []string{"x"}, again.Tags)
}

func TestGetByIDAbsence(t *testing.T) {
	store := newTestStore(t)

	_, ok := store.GetByID("note_999")
	assert.False(t, ok)
}

func TestUpdateMergesOnlyProvidedFields(t *testing.T) {
	store := newTestStore(t)
	created := store.Create("original", note.SourceNote, []string{"keep"})

	tags := []string{"x"}
	updated, ok := store.Update(created.ID, note.Update{Tags: &tags})
	require.True(t, ok)
	assert.Equal(t, "original", updated.Text)
	assert.Equal(t, []string{"x"}, updated.Tags)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, created.Timestamp, updated.Timestamp)

	text := "replaced"
	updated, ok = store.Update(created.ID, note.Update{Text: &text})
	require.True(t, ok)
	assert.Equal(t, "replaced", updated.Text)
	assert.Equal(t, []string{"x"}, updated.Tags)
}

func TestUpdateAbsentID(t *testing.T) {
	store := newTestStore(t)

	text := "anything"
	_, ok := store.Update("note_1", note.Update{Text: &text})
	assert.False(t, ok)
}

func TestDelete(t *testing.T) {
	store := newTestStore(t)
	n := store.Create("to delete", note.SourceNote, nil)

	assert.True(t, store.Delete(n.ID))
	assert.False(t, store.Delete(n.ID))

	_, ok := store.GetByID(n.ID)
	assert.False(t, ok)
	assert.Equal(t, 0, store.Count())
}
