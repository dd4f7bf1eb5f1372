package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"laundry-finder-backend/internal/directory"
	"laundry-finder-backend/internal/notify"
	"laundry-finder-backend/internal/status"
)

// Handler holds shared dependencies for API handlers.
type Handler struct {
	dir   *directory.Directory
	notes *notify.Store
}

// NewHandler creates a new API handler.
func NewHandler(dir *directory.Directory, notes *notify.Store) *Handler {
	return &Handler{
		dir:   dir,
		notes: notes,
	}
}

// abortWithError maps store errors onto HTTP status codes.
func abortWithError(c *gin.Context, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, directory.ErrNotFound):
		code = http.StatusNotFound
	case errors.Is(err, notify.ErrDuplicate):
		code = http.StatusConflict
	case errors.Is(err, status.ErrInvalidState):
		code = http.StatusUnprocessableEntity
	}
	c.AbortWithStatusJSON(code, gin.H{"error": err.Error()})
}
