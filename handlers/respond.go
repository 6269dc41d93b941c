package handlers

import (
	"errors"
	"net/http"

	"meowth-deli-api/apperrors"

	"github.com/gin-gonic/gin"
)

// respondError is the single place that turns application errors into HTTP
// responses. Typed errors keep their status and message; anything else
// becomes a generic 500 so internal error text never leaks to the caller.
func respondError(c *gin.Context, err error) {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.StatusCode, gin.H{"message": appErr.Message})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
}
