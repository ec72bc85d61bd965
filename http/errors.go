package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"sip-planner/domain"
)

func statusFor(err error) int {
	switch {
	case domain.IsKind(err, domain.KindInvalidInput):
		return http.StatusBadRequest
	case domain.IsKind(err, domain.KindOverflow):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func writeError(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		slog.Error("request failed", "path", c.Request.URL.Path, "error", err)
		c.JSON(status, gin.H{"error": "internal server error"})
		return
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
