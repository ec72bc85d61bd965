package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"sip-planner/domain"
	"sip-planner/service"
)

type SIPHandler struct {
	service *service.SIPService
}

func NewSIPHandler(service *service.SIPService) *SIPHandler {
	return &SIPHandler{service: service}
}

func (h *SIPHandler) CalculateSIP(c *gin.Context) {
	var input domain.CalculationRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	report, err := h.service.Calculate(c.Request.Context(), input)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *SIPHandler) History(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer"})
			return
		}
		limit = n
	}

	records, err := h.service.History(limit)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"records": records})
}

// RequireJSON rejects request bodies that are not declared as JSON.
func RequireJSON() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Method == http.MethodGet {
			c.Next()
			return
		}
		if !strings.Contains(c.GetHeader("Content-Type"), "application/json") {
			c.AbortWithStatusJSON(http.StatusUnsupportedMediaType,
				gin.H{"error": "Content-Type must be application/json"})
			return
		}
		c.Next()
	}
}
