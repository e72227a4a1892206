package handlers

import (
	"errors"
	"net/http"

	"prospeo/internal/apperr"
	"prospeo/internal/logging"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondErr maps the error taxonomy onto HTTP statuses. Backend
// failures keep their message; internals are logged and masked.
func respondErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "introuvable"})
	case errors.Is(err, apperr.ErrConflict):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperr.ErrUnauthorized):
		c.JSON(http.StatusForbidden, gin.H{"error": "accès refusé"})
	case apperr.IsValidation(err):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	default:
		logging.L().Error("request failed",
			zap.String("path", c.FullPath()),
			zap.Error(err),
		)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "erreur interne"})
	}
}
