package http

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"sip-planner/domain"
	"sip-planner/service"
)

type GoalHandler struct {
	service *service.GoalService
}

func NewGoalHandler(service *service.GoalService) *GoalHandler {
	return &GoalHandler{service: service}
}

func (h *GoalHandler) RecommendDuration(c *gin.Context) {
	var input domain.GoalRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		slog.Debug("error decoding goal request", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.service.RecommendDuration(c.Request.Context(), input)
	if err != nil {
		slog.Info("goal request rejected", "error", err)
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
