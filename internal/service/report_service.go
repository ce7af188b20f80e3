package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"sync"
	"time"

	"assessment-service/internal/careers"
	"assessment-service/internal/i18n"
	"assessment-service/internal/models"
	"assessment-service/internal/repository"
)

const (
	topStrengthCount     = 3
	maxCareerSuggestions = 4
)

// ReportService synthesizes the end-of-test report. The history path is
// deterministic for a given answer set; the demo path fabricates data
// and marks the report as a sample.
type ReportService struct {
	Sessions  SessionStore
	Answers   AnswerStore
	Questions QuestionStore
	Subjects  SubjectStore
	Reports   ReportStore
	Careers   careers.Resolver

	// rng feeds only the demo generator.
	mu  sync.Mutex
	rng *rand.Rand
}

func NewReportService(
	sessions SessionStore,
	answers AnswerStore,
	questions QuestionStore,
	subjects SubjectStore,
	reports ReportStore,
	resolver careers.Resolver,
	rng *rand.Rand,
) *ReportService {
	if resolver == nil {
		resolver = careers.NewStaticResolver(nil)
	}
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &ReportService{
		Sessions:  sessions,
		Answers:   answers,
		Questions: questions,
		Subjects:  subjects,
		Reports:   reports,
		Careers:   resolver,
		rng:       rng,
	}
}

type subjectStats struct {
	correct int
	total   int
}

// SynthesizeFromHistory aggregates the session's recorded answers into
// a report: per-subject accuracy, top strengths, career suggestions and
// an overall score in [0,1]. Re-running it on an unchanged answer set
// yields an identical report.
func (s *ReportService) SynthesizeFromHistory(ctx context.Context, sessionID string) (*models.Report, error) {
	session, err := s.Sessions.FindByID(ctx, sessionID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading session: %w", err)
	}

	answers, err := s.Answers.FindBySession(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("loading answers: %w", err)
	}

	lang := session.Progress.PreferredLanguage
	stats := make(map[string]*subjectStats)
	questionCache := make(map[string]*models.Question)
	var totalTime float64

	for _, answer := range answers {
		totalTime += answer.TimeSpentSeconds()

		question, ok := questionCache[answer.QuestionID]
		if !ok {
			question, err = s.Questions.FindByID(ctx, answer.QuestionID)
			if errors.Is(err, repository.ErrNotFound) {
				// Question content was removed after the answer was
				// recorded; it cannot be attributed to a subject.
				questionCache[answer.QuestionID] = nil
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("loading question %s: %w", answer.QuestionID, err)
			}
			questionCache[answer.QuestionID] = question
		}
		if question == nil {
			continue
		}

		st := stats[question.SubjectID]
		if st == nil {
			st = &subjectStats{}
			stats[question.SubjectID] = st
		}
		st.total++
		if answer.IsCorrect {
			st.correct++
		}
	}

	strengths := s.rankStrengths(ctx, stats, lang)

	report := &models.Report{
		SessionID:         sessionID,
		UserID:            session.UserID,
		OverallScore:      overallScore(stats),
		QuestionsAnswered: len(answers),
		TopStrengths:      strengths,
		CareerSuggestions: s.suggestCareers(strengths),
		Sample:            false,
		CreatedAt:         time.Now().UTC(),
	}
	if len(answers) > 0 {
		report.AverageTime = totalTime / float64(len(answers))
	}
	return report, nil
}

// rankStrengths orders subjects by accuracy descending, ties broken by
// subject id so the ordering is stable, and keeps the top entries.
func (s *ReportService) rankStrengths(ctx context.Context, stats map[string]*subjectStats, lang string) []models.Strength {
	type ranked struct {
		subjectID string
		accuracy  float64
	}
	order := make([]ranked, 0, len(stats))
	for id, st := range stats {
		order = append(order, ranked{subjectID: id, accuracy: float64(st.correct) / float64(st.total)})
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i].accuracy != order[j].accuracy {
			return order[i].accuracy > order[j].accuracy
		}
		return order[i].subjectID < order[j].subjectID
	})
	if len(order) > topStrengthCount {
		order = order[:topStrengthCount]
	}

	strengths := make([]models.Strength, 0, len(order))
	for _, r := range order {
		strength := models.Strength{
			SubjectID:   r.subjectID,
			SubjectName: r.subjectID,
			Score:       r.accuracy,
		}
		if subject, err := s.Subjects.FindByID(ctx, r.subjectID); err == nil {
			if name := i18n.ResolveText(subject.Names, lang); name != "" {
				strength.SubjectName = name
			}
			strength.Description = i18n.ResolveText(subject.Descriptions, lang)
		}
		strengths = append(strengths, strength)
	}
	return strengths
}

// suggestCareers walks the strengths in rank order and collects catalog
// suggestions, deduplicated by title.
func (s *ReportService) suggestCareers(strengths []models.Strength) []models.CareerSuggestion {
	seen := make(map[string]bool)
	suggestions := make([]models.CareerSuggestion, 0, maxCareerSuggestions)
	for _, strength := range strengths {
		for _, suggestion := range s.Careers.SuggestionsFor(strength.SubjectID) {
			if seen[suggestion.Title] {
				continue
			}
			seen[suggestion.Title] = true
			suggestions = append(suggestions, suggestion)
			if len(suggestions) == maxCareerSuggestions {
				return suggestions
			}
		}
	}
	return suggestions
}

func overallScore(stats map[string]*subjectStats) float64 {
	if len(stats) == 0 {
		return 0
	}
	var sum float64
	for _, st := range stats {
		sum += float64(st.correct) / float64(st.total)
	}
	score := sum / float64(len(stats))
	if score < 0 {
		return 0
	}
	if score > 1 {
		return 1
	}
	return score
}

// SynthesizeDemo fabricates a plausible report from nothing but an
// answered-question count, for demonstration flows with no real answer
// history. The output is randomized and marked Sample; it must never
// stand in for SynthesizeFromHistory.
func (s *ReportService) SynthesizeDemo(questionsAnswered int) *models.Report {
	s.mu.Lock()
	score := 0.7 + s.rng.Float64()*0.3
	s.mu.Unlock()
	if score > 0.95 {
		score = 0.95
	}

	strengths := []models.Strength{
		{SubjectID: "mathematics", SubjectName: "Mathematics", Score: 0.85, Description: "Strong analytical and problem-solving skills"},
		{SubjectID: "physics", SubjectName: "Physics", Score: 0.78, Description: "Good understanding of scientific principles"},
		{SubjectID: "computer_science", SubjectName: "Computer Science", Score: 0.72, Description: "Logical thinking and technical aptitude"},
	}

	return &models.Report{
		OverallScore:      score,
		QuestionsAnswered: questionsAnswered,
		AverageTime:       25,
		TopStrengths:      strengths,
		CareerSuggestions: s.suggestCareers(strengths),
		Sample:            true,
		CreatedAt:         time.Now().UTC(),
	}
}

func (s *ReportService) SaveReport(ctx context.Context, report *models.Report) error {
	return s.Reports.Create(ctx, report)
}

func (s *ReportService) GetReportBySession(ctx context.Context, sessionID string) (*models.Report, error) {
	report, err := s.Reports.FindBySession(ctx, sessionID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrSessionNotFound
	}
	return report, err
}

func (s *ReportService) GetReportsByUser(ctx context.Context, userID string) ([]models.Report, error) {
	return s.Reports.FindByUser(ctx, userID)
}
