package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"assessment-service/internal/config"
	"assessment-service/internal/db"
	"assessment-service/internal/event"
	"assessment-service/internal/handlers"
	"assessment-service/internal/repository"
	"assessment-service/internal/selection"
	"assessment-service/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	db.InitMongo(cfg.MongoURI)

	// RabbitMQ event publisher
	var publisher *event.EventPublisher
	if cfg.RabbitMQURI != "" && cfg.RabbitMQExchange != "" {
		var err error
		publisher, err = event.NewEventPublisher(cfg.RabbitMQURI, cfg.RabbitMQExchange)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
	} else {
		log.Println("RabbitMQ not configured, lifecycle events will not be published")
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization", "accept", "origin", "Cache-Control", "X-Requested-With", "X-User-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	database := db.Client.Database(cfg.MongoDatabase)

	// Subjects
	subjectRepo := repository.NewSubjectRepository(database)
	subjectService := service.NewSubjectService(subjectRepo)
	subjectHandler := handlers.NewSubjectHandler(subjectService)

	// Questions
	questionRepo := repository.NewQuestionRepository(database)
	questionService := service.NewQuestionService(questionRepo)
	questionHandler := handlers.NewQuestionHandler(questionService)

	// Answers
	answerRepo := repository.NewAnswerRepository(database)
	if err := answerRepo.EnsureIndexes(context.Background()); err != nil {
		log.Fatalf("Failed to create answer indexes: %v", err)
	}

	// Sessions and scoring
	sessionRepo := repository.NewSessionRepository(database)
	sessionService := service.NewSessionService(sessionRepo)
	scoringService := service.NewScoringService(sessionService, questionRepo, answerRepo)
	selector := selection.NewSelector(questionRepo, nil)
	sessionHandler := handlers.NewSessionHandler(sessionService, scoringService, selector)

	// Reports
	reportRepo := repository.NewReportRepository(database)
	reportService := service.NewReportService(sessionRepo, answerRepo, questionRepo, subjectRepo, reportRepo, nil, nil)
	reportHandler := handlers.NewReportHandler(reportService)

	// Public routes - Subjects
	publicSubject := r.Group("/public/assessment/subject")
	{
		publicSubject.GET("/", subjectHandler.GetAllSubjects)
		publicSubject.GET("/:id", subjectHandler.GetSubjectByID)
	}

	// Public routes - demo report, explicitly fabricated data
	r.GET("/public/assessment/report/demo", reportHandler.GetDemoReport)

	publicUser := r.Group("/public/assessment/user")
	{
		publicUser.GET("/:id/reports", func(c *gin.Context) {
			reportHandler.GetReportsByUser(c)
			if publisher != nil {
				publisher.Publish("assessment.user.reports_requested", gin.H{"id": c.Param("id")})
			}
		})
	}

	// Protected routes - question authoring
	protectedQuestion := r.Group("/protected/assessment/question", requireUserID())
	{
		protectedQuestion.GET("/", questionHandler.ListQuestions)
		protectedQuestion.GET("/:id", questionHandler.GetQuestion)
		protectedQuestion.POST("/", questionHandler.CreateQuestion)
		protectedQuestion.PUT("/:id", questionHandler.UpdateQuestion)
		protectedQuestion.DELETE("/:id", questionHandler.DeleteQuestion)
	}

	setupSessionRoutes(r, sessionHandler, reportHandler, publisher)

	r.Run(":" + cfg.Port)
}

func setupSessionRoutes(r *gin.Engine, sessionHandler *handlers.SessionHandler, reportHandler *handlers.ReportHandler, publisher *event.EventPublisher) {
	protectedSession := r.Group("/protected/assessment/session", requireUserID())
	{
		// Start a new assessment attempt
		protectedSession.POST("/", func(c *gin.Context) {
			sessionHandler.CreateSession(c)
			if publisher != nil {
				publisher.Publish("assessment.session.started", gin.H{
					"user_id":   c.GetHeader("X-User-ID"),
					"timestamp": time.Now(),
				})
			}
		})

		// Draw the next question
		protectedSession.GET("/:id/next", func(c *gin.Context) {
			sessionHandler.NextQuestion(c)
			if publisher != nil {
				publisher.Publish("assessment.question.requested", gin.H{
					"session_id": c.Param("id"),
					"user_id":    c.GetHeader("X-User-ID"),
					"timestamp":  time.Now(),
				})
			}
		})

		// Submit one answer
		protectedSession.POST("/:id/answer", func(c *gin.Context) {
			sessionHandler.SubmitAnswer(c)
			if publisher != nil {
				publisher.Publish("assessment.answer.submitted", gin.H{
					"session_id": c.Param("id"),
					"user_id":    c.GetHeader("X-User-ID"),
					"timestamp":  time.Now(),
				})
			}
		})

		// Complete the attempt
		protectedSession.POST("/:id/complete", func(c *gin.Context) {
			sessionHandler.CompleteSession(c)
			if publisher != nil {
				publisher.Publish("assessment.session.completed", gin.H{
					"session_id": c.Param("id"),
					"user_id":    c.GetHeader("X-User-ID"),
					"timestamp":  time.Now(),
				})
			}
		})

		// Synthesize and persist the results report
		protectedSession.POST("/:id/report", func(c *gin.Context) {
			reportHandler.CreateSessionReport(c)
			if publisher != nil {
				publisher.Publish("assessment.report.synthesized", gin.H{
					"session_id": c.Param("id"),
					"user_id":    c.GetHeader("X-User-ID"),
					"timestamp":  time.Now(),
				})
			}
		})

		protectedSession.GET("/:id/report", reportHandler.GetSessionReport)
		protectedSession.GET("/:id/answers", sessionHandler.GetSessionAnswers)
	}

	publicSession := r.Group("/public/assessment/session")
	{
		publicSession.GET("/:id", sessionHandler.GetSession)
		publicSession.GET("/:id/progress", sessionHandler.GetSessionProgress)
	}
}

// requireUserID enforces the identity collaborator's contract: every
// protected call carries the stable opaque user id.
func requireUserID() gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("X-User-ID") == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Authentication required",
				"code":  "MISSING_USER_ID",
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
