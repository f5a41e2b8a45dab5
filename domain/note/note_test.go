package note

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "memory-gateway/pkg/errors"
)

func TestValidatePayload(t *testing.T) {
	tests := []struct {
		name    string
		payload Payload
		wantErr bool
	}{
		{name: "valid text", payload: Payload{Text: "buy milk"}, wantErr: false},
		{name: "leading whitespace", payload: Payload{Text: "  buy milk"}, wantErr: false},
		{name: "missing text", payload: Payload{}, wantErr: true},
		{name: "whitespace only", payload: Payload{Text: "   \t\n"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePayload(tt.payload)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.True(t, apperrors.IsValidation(err))
			assert.Equal(t, "Text is required and must be a non-empty string",
				apperrors.GetAppError(err).Message)
		})
	}
}

func TestNoteClone(t *testing.T) {
	original := Note{
		ID:        "note_1",
		Text:      "buy milk",
		Source:    SourceNote,
		Timestamp: time.Now(),
		Tags:      []string{"errand"},
	}

	clone := original.Clone()
	clone.Tags[0] = "changed"
	clone.Text = "changed"

	assert.Equal(t, "errand", original.Tags[0])
	assert.Equal(t, "buy milk", original.Text)
}

func TestSourceIsValid(t *testing.T) {
	assert.True(t, SourceNote.IsValid())
	assert.True(t, SourceChat.IsValid())
	assert.False(t, Source("email").IsValid())
}
