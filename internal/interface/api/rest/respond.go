package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hospital-manager-api/internal/apperr"
)

// respondError maps an error classification to an HTTP status. Unclassified
// and internal errors are logged and answered with a generic message so
// nothing from the stack leaks to the caller.
func respondError(c *gin.Context, logger *zap.Logger, err error) {
	body := gin.H{"error": apperr.MessageOf(err)}
	if fields := apperr.FieldsOf(err); len(fields) > 0 {
		body["details"] = fields
	}

	switch apperr.KindOf(err) {
	case apperr.KindValidation, apperr.KindRemoteRejected:
		c.JSON(http.StatusBadRequest, body)
	case apperr.KindNotFound:
		c.JSON(http.StatusNotFound, body)
	case apperr.KindConflict:
		c.JSON(http.StatusConflict, body)
	case apperr.KindUnauthorized:
		c.JSON(http.StatusUnauthorized, body)
	case apperr.KindForbidden:
		c.JSON(http.StatusForbidden, body)
	case apperr.KindRemoteUnavailable:
		logger.Error("upstream service unavailable", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "upstream service unavailable"})
	default:
		logger.Error("unhandled error", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
