package handlers

import (
	"context"
	"errors"
	"net/http"

	"assessment-service/internal/i18n"
	"assessment-service/internal/selection"
	"assessment-service/internal/service"

	"github.com/gin-gonic/gin"
)

type SessionHandler struct {
	Sessions *service.SessionService
	Scoring  *service.ScoringService
	Selector *selection.Selector
}

func NewSessionHandler(sessions *service.SessionService, scoring *service.ScoringService, selector *selection.Selector) *SessionHandler {
	return &SessionHandler{
		Sessions: sessions,
		Scoring:  scoring,
		Selector: selector,
	}
}

// CreateSession starts a new assessment attempt for the authenticated
// user.
func (h *SessionHandler) CreateSession(c *gin.Context) {
	var req struct {
		Language string `json:"language"`
	}
	// The body is optional; an empty one means the default language.
	_ = c.ShouldBindJSON(&req)

	userID := c.GetHeader("X-User-ID")
	if userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "User ID is required"})
		return
	}

	session, err := h.Sessions.Start(context.Background(), userID, req.Language)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "Failed to create session",
			"details": err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"session":   session,
		"next_step": "Call /next to get the first question",
	})
}

func (h *SessionHandler) GetSession(c *gin.Context) {
	id := c.Param("id")
	session, err := h.Sessions.Get(context.Background(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

// NextQuestion draws one more question for the session, excluding every
// question it already answered. The client decides when to stop asking;
// an exhausted pool is reported, not papered over.
func (h *SessionHandler) NextQuestion(c *gin.Context) {
	id := c.Param("id")
	ctx := context.Background()

	session, err := h.Sessions.Get(ctx, id)
	if err != nil {
		respondError(c, err)
		return
	}

	lang := c.Query("lang")
	if lang == "" {
		lang = session.Progress.PreferredLanguage
	}

	excludeIDs, err := h.Scoring.AnsweredQuestionIDs(ctx, id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	question, err := h.Selector.Next(ctx, excludeIDs, lang)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"question":           question,
		"questions_answered": len(excludeIDs),
	})
}

// SubmitAnswer scores one response and returns the stored answer with
// its feedback message in the submission language.
func (h *SessionHandler) SubmitAnswer(c *gin.Context) {
	id := c.Param("id")

	var req struct {
		QuestionID      string  `json:"question_id" binding:"required"`
		OptionID        string  `json:"option_id" binding:"required"`
		TimeSpent       float64 `json:"time_spent"`
		ConfidenceLevel int     `json:"confidence_level"`
		UsedHint        bool    `json:"used_hint"`
		ChoseDontKnow   bool    `json:"chose_dont_know"`
		Language        string  `json:"language"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}
	if req.TimeSpent < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "time_spent must not be negative"})
		return
	}

	answer, category, err := h.Scoring.Submit(context.Background(), service.SubmitInput{
		SessionID:        id,
		QuestionID:       req.QuestionID,
		OptionID:         req.OptionID,
		TimeSpentSeconds: req.TimeSpent,
		ConfidenceLevel:  req.ConfidenceLevel,
		UsedHint:         req.UsedHint,
		ChoseDontKnow:    req.ChoseDontKnow,
		Language:         req.Language,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"answer":     answer,
		"is_correct": answer.IsCorrect,
		"feedback": gin.H{
			"category": category,
			"message":  i18n.T(category.MessageKey(), answer.UserLanguage),
		},
	})
}

// CompleteSession closes the attempt; completion is one-way.
func (h *SessionHandler) CompleteSession(c *gin.Context) {
	id := c.Param("id")
	session, err := h.Sessions.Complete(context.Background(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}

func (h *SessionHandler) GetSessionProgress(c *gin.Context) {
	id := c.Param("id")
	session, err := h.Sessions.Get(context.Background(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"session_id": session.ID,
		"status":     session.Status,
		"progress":   session.Progress,
	})
}

func (h *SessionHandler) GetSessionAnswers(c *gin.Context) {
	id := c.Param("id")
	answers, err := h.Scoring.SessionAnswers(context.Background(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"answers": answers, "count": len(answers)})
}

// respondError maps the engine's failure taxonomy onto HTTP statuses.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrSessionNotFound),
		errors.Is(err, service.ErrQuestionNotFound),
		errors.Is(err, service.ErrOptionNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, service.ErrAlreadyAnswered):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "code": "ALREADY_ANSWERED"})
	case errors.Is(err, service.ErrSessionCompleted):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "code": "SESSION_COMPLETED"})
	case errors.Is(err, selection.ErrPoolExhausted):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error(), "code": "POOL_EXHAUSTED"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
