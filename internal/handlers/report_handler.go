package handlers

import (
	"context"
	"net/http"
	"strconv"

	"assessment-service/internal/service"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	Service *service.ReportService
}

func NewReportHandler(s *service.ReportService) *ReportHandler {
	return &ReportHandler{Service: s}
}

// GetSessionReport synthesizes the report from the session's recorded
// answers without persisting it.
func (h *ReportHandler) GetSessionReport(c *gin.Context) {
	sessionID := c.Param("id")
	report, err := h.Service.SynthesizeFromHistory(context.Background(), sessionID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// CreateSessionReport synthesizes the report and stores it.
func (h *ReportHandler) CreateSessionReport(c *gin.Context) {
	sessionID := c.Param("id")
	ctx := context.Background()

	report, err := h.Service.SynthesizeFromHistory(ctx, sessionID)
	if err != nil {
		respondError(c, err)
		return
	}
	if err := h.Service.SaveReport(ctx, report); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, report)
}

func (h *ReportHandler) GetReportsByUser(c *gin.Context) {
	userID := c.Param("id")
	reports, err := h.Service.GetReportsByUser(context.Background(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, reports)
}

// GetDemoReport returns a fabricated sample report. The payload carries
// sample=true so it can never be mistaken for a real aggregation.
func (h *ReportHandler) GetDemoReport(c *gin.Context) {
	questionsAnswered := 10
	if raw := c.Query("questions"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "questions must be a non-negative integer"})
			return
		}
		questionsAnswered = n
	}
	c.JSON(http.StatusOK, h.Service.SynthesizeDemo(questionsAnswered))
}
