package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sip-planner/domain"
	"sip-planner/service"
)

type StepUpHandler struct {
	service *service.StepUpService
}

func NewStepUpHandler(service *service.StepUpService) *StepUpHandler {
	return &StepUpHandler{service: service}
}

func (h *StepUpHandler) Compare(c *gin.Context) {
	var input domain.CalculationRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.service.Compare(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, result)
}
