package middleware

import (
	"strconv"

	"stickynotes/utils"

	"github.com/gin-gonic/gin"
)

const NoteIDKey = "note_id"

// ValidateNoteID parses the :id route parameter. Anything that is not a positive
// integer does not name a note, so it is answered with 404.
func ValidateNoteID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseInt(c.Param("id"), 10, 64)
		if err != nil || id <= 0 {
			utils.NotFound(c, "Not found.")
			return
		}
		c.Set(NoteIDKey, id)
		c.Next()
	}
}

// NoteID returns the id stored by ValidateNoteID.
func NoteID(c *gin.Context) int64 {
	return c.GetInt64(NoteIDKey)
}
