package handlers

import (
	"context"
	"net/http"

	"assessment-service/internal/service"

	"github.com/gin-gonic/gin"
)

type SubjectHandler struct {
	Service *service.SubjectService
}

func NewSubjectHandler(s *service.SubjectService) *SubjectHandler {
	return &SubjectHandler{Service: s}
}

// GetAllSubjects returns the active subjects questions are grouped
// under.
func (h *SubjectHandler) GetAllSubjects(c *gin.Context) {
	subjects, err := h.Service.GetAllActiveSubjects(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"subjects": subjects})
}

func (h *SubjectHandler) GetSubjectByID(c *gin.Context) {
	id := c.Param("id")
	subject, err := h.Service.GetSubjectByID(context.Background(), id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Subject not found"})
		return
	}
	c.JSON(http.StatusOK, subject)
}
