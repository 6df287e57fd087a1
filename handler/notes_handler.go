package handler

import (
	"stickynotes/dto"
	"stickynotes/middleware"
	"stickynotes/usecase"
	"stickynotes/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type NotesHandler struct {
	notes  *usecase.NotesService
	logger *zap.Logger
}

func NewNotesHandler(notes *usecase.NotesService, logger *zap.Logger) *NotesHandler {
	return &NotesHandler{notes: notes, logger: logger}
}

// ListNotes answers GET /api/notes/ with the caller's notes.
func (h *NotesHandler) ListNotes(c *gin.Context) {
	notes, err := h.notes.List(c.Request.Context(), middleware.CurrentUser(c))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	utils.Success(c, notes)
}

func (h *NotesHandler) CreateNote(c *gin.Context) {
	var req dto.NoteRequest
	if !bindJSON(c, &req) {
		return
	}

	note, err := h.notes.Create(c.Request.Context(), middleware.CurrentUser(c), req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.logger.Debug("note created", zap.Int64("note_id", note.ID), zap.String("user_id", note.Author))
	utils.Created(c, note)
}

// GetNote serves both GET /api/notes/{id}/ and GET /api/notes/{id}/edit/.
func (h *NotesHandler) GetNote(c *gin.Context) {
	note, err := h.notes.Get(c.Request.Context(), middleware.NoteID(c), middleware.CurrentUser(c))
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	utils.Success(c, note)
}

func (h *NotesHandler) UpdateNote(c *gin.Context) {
	var req dto.NoteRequest
	if !bindJSON(c, &req) {
		return
	}

	note, err := h.notes.Update(c.Request.Context(), middleware.NoteID(c), middleware.CurrentUser(c), req)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	utils.Success(c, note)
}

func (h *NotesHandler) PatchNote(c *gin.Context) {
	var patch dto.NotePatch
	if !bindJSON(c, &patch) {
		return
	}

	note, err := h.notes.Patch(c.Request.Context(), middleware.NoteID(c), middleware.CurrentUser(c), patch)
	if err != nil {
		writeError(c, h.logger, err)
		return
	}
	utils.Success(c, note)
}

func (h *NotesHandler) DeleteNote(c *gin.Context) {
	id := middleware.NoteID(c)
	if err := h.notes.Delete(c.Request.Context(), id, middleware.CurrentUser(c)); err != nil {
		writeError(c, h.logger, err)
		return
	}

	h.logger.Debug("note deleted", zap.Int64("note_id", id))
	utils.NoContent(c)
}
