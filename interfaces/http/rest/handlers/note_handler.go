package handlers

import (
	"net/http"

	"memory-gateway/application/services"
	"memory-gateway/domain/note"
	"memory-gateway/pkg/common"
	"memory-gateway/pkg/errors"
	"memory-gateway/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const maxNoteBodyBytes = 1 << 20 // 1 MiB

// NoteHandler handles the local note CRUD routes
type NoteHandler struct {
	service *services.NoteService
	logger  *zap.Logger
}

// NewNoteHandler creates a new note handler
func NewNoteHandler(service *services.NoteService, logger *zap.Logger) *NoteHandler {
	return &NoteHandler{
		service: service,
		logger:  logger,
	}
}

// CreateNoteRequest represents the request body for creating a note
type CreateNoteRequest struct {
	Text string   `json:"text"`
	Tags []string `json:"tags,omitempty" validate:"omitempty,max=50,dive,max=200"`
}

// UpdateNoteRequest represents the request body for updating a note.
// Nil fields are not merged.
type UpdateNoteRequest struct {
	Text *string   `json:"text,omitempty"`
	Tags *[]string `json:"tags,omitempty" validate:"omitempty,max=50,dive,max=200"`
}

// CreateNote handles POST /notes
func (h *NoteHandler) CreateNote(w http.ResponseWriter, r *http.Request) {
	var req CreateNoteRequest
	if err := common.DecodeJSONBody(w, r, &req, maxNoteBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := note.ValidatePayload(note.Payload{Text: req.Text}); err != nil {
		common.RespondError(w, http.StatusBadRequest, errors.GetAppError(err).Message)
		return
	}

	created := h.service.CreateNote(services.CreateNoteInput{
		Text: req.Text,
		Tags: req.Tags,
	})
	if err := common.RespondJSON(w, http.StatusCreated, created); err != nil {
		h.logger.Error("failed to encode note response", zap.Error(err))
	}
}

// ListNotes handles GET /notes
func (h *NoteHandler) ListNotes(w http.ResponseWriter, r *http.Request) {
	notes := h.service.GetAllNotes()
	if err := common.RespondJSON(w, http.StatusOK, notes); err != nil {
		h.logger.Error("failed to encode notes response", zap.Error(err))
	}
}

// GetNote handles GET /notes/{noteID}
func (h *NoteHandler) GetNote(w http.ResponseWriter, r *http.Request) {
	noteID := chi.URLParam(r, "noteID")

	n, err := h.service.GetNoteByID(noteID)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	_ = common.RespondJSON(w, http.StatusOK, n)
}

// UpdateNote handles PUT /notes/{noteID}
func (h *NoteHandler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	noteID := chi.URLParam(r, "noteID")

	var req UpdateNoteRequest
	if err := common.DecodeJSONBody(w, r, &req, maxNoteBodyBytes); err != nil {
		common.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := utils.ValidateStruct(req); err != nil {
		common.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	n, err := h.service.UpdateNote(noteID, services.UpdateNoteInput{
		Text: req.Text,
		Tags: req.Tags,
	})
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}
	_ = common.RespondJSON(w, http.StatusOK, n)
}

// DeleteNote handles DELETE /notes/{noteID}
func (h *NoteHandler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	noteID := chi.URLParam(r, "noteID")

	if !h.service.DeleteNote(noteID) {
		common.RespondError(w, http.StatusNotFound, "Note not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// respondServiceError translates tagged service errors to status codes.
// Anything unanticipated becomes a generic 500 with detail logged only.
func (h *NoteHandler) respondServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.IsNotFound(err) {
		common.RespondError(w, http.StatusNotFound, "Note not found")
		return
	}
	h.logger.Error("note operation failed",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	common.RespondError(w, http.StatusInternalServerError, common.GenericErrorMessage)
}
