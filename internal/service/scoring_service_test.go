package service

import (
	"context"
	"errors"
	"testing"

	"assessment-service/internal/feedback"
	"assessment-service/internal/models"
)

func newScoringFixture(t *testing.T) (*ScoringService, *models.Session) {
	t.Helper()

	sessions := NewSessionService(newMemSessionStore())
	questions := newMemQuestionStore(
		&models.Question{
			ID:        "q1",
			SubjectID: "mathematics",
			Texts:     map[string]string{"en": "What is 2+2?"},
			Options: []models.Option{
				{ID: "q1-a", Texts: map[string]string{"en": "4"}, IsCorrect: true, PointsValue: 10, InterestTags: []string{"logic"}},
				{ID: "q1-b", Texts: map[string]string{"en": "5"}, IsCorrect: false, PointsValue: 10},
			},
		},
		&models.Question{
			ID:        "q2",
			SubjectID: "physics",
			Texts:     map[string]string{"en": "What pulls objects down?"},
			Options: []models.Option{
				{ID: "q2-a", Texts: map[string]string{"en": "Gravity"}, IsCorrect: true, PointsValue: 5},
				{ID: "q2-b", Texts: map[string]string{"en": "Magnetism"}, IsCorrect: false, PointsValue: 5},
			},
		},
	)
	svc := NewScoringService(sessions, questions, newMemAnswerStore())

	session, err := sessions.Start(context.Background(), "user-1", "en")
	if err != nil {
		t.Fatalf("Start failed: %v", err)
	}
	return svc, session
}

func TestSubmitCorrectAnswer(t *testing.T) {
	svc, session := newScoringFixture(t)

	answer, category, err := svc.Submit(context.Background(), SubmitInput{
		SessionID:        session.ID,
		QuestionID:       "q1",
		OptionID:         "q1-a",
		TimeSpentSeconds: 5,
		Language:         "en",
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if !answer.IsCorrect {
		t.Error("answer should be marked correct")
	}
	if answer.PointsEarned != 10 {
		t.Errorf("points earned = %v, want 10", answer.PointsEarned)
	}
	if answer.TimeSpentMS != 5000 {
		t.Errorf("time spent = %dms, want 5000", answer.TimeSpentMS)
	}
	if category != feedback.CategoryQuickCorrect {
		t.Errorf("category = %q, want %q", category, feedback.CategoryQuickCorrect)
	}

	updated, err := svc.Sessions.Get(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if updated.Progress.Performance.TotalAnswered != 1 {
		t.Errorf("total answered = %d, want 1", updated.Progress.Performance.TotalAnswered)
	}
	if updated.Progress.AbilityScores["mathematics"] != 1 {
		t.Errorf("mathematics ability = %v, want 1", updated.Progress.AbilityScores["mathematics"])
	}
	if updated.Progress.InterestScores["logic"] != 1 {
		t.Errorf("logic interest = %v, want 1", updated.Progress.InterestScores["logic"])
	}
}

func TestSubmitIncorrectEarnsNoPoints(t *testing.T) {
	svc, session := newScoringFixture(t)

	answer, category, err := svc.Submit(context.Background(), SubmitInput{
		SessionID:        session.ID,
		QuestionID:       "q1",
		OptionID:         "q1-b",
		TimeSpentSeconds: 15,
		Language:         "en",
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if answer.IsCorrect {
		t.Error("answer should be marked incorrect")
	}
	if answer.PointsEarned != 0 {
		t.Errorf("points earned = %v, want 0 for an incorrect answer", answer.PointsEarned)
	}
	if category != feedback.CategoryIncorrect {
		t.Errorf("category = %q, want %q", category, feedback.CategoryIncorrect)
	}
}

func TestSubmitDontKnow(t *testing.T) {
	svc, session := newScoringFixture(t)

	answer, category, err := svc.Submit(context.Background(), SubmitInput{
		SessionID:        session.ID,
		QuestionID:       "q1",
		OptionID:         "q1-b",
		TimeSpentSeconds: 8,
		ChoseDontKnow:    true,
		Language:         "en",
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if category != feedback.CategoryHonestDontKnow {
		t.Errorf("category = %q, want %q", category, feedback.CategoryHonestDontKnow)
	}
	if answer.PointsEarned != 0 {
		t.Errorf("points earned = %v, want 0", answer.PointsEarned)
	}
}

func TestSubmitDuplicateAnswer(t *testing.T) {
	svc, session := newScoringFixture(t)

	first, _, err := svc.Submit(context.Background(), SubmitInput{
		SessionID: session.ID, QuestionID: "q1", OptionID: "q1-a", TimeSpentSeconds: 5, Language: "en",
	})
	if err != nil {
		t.Fatalf("first Submit failed: %v", err)
	}

	_, _, err = svc.Submit(context.Background(), SubmitInput{
		SessionID: session.ID, QuestionID: "q1", OptionID: "q1-b", TimeSpentSeconds: 30, Language: "en",
	})
	if !errors.Is(err, ErrAlreadyAnswered) {
		t.Fatalf("duplicate Submit err = %v, want ErrAlreadyAnswered", err)
	}

	// The first answer and the progress snapshot are untouched.
	stored, err := svc.Answers.FindBySessionAndQuestion(context.Background(), session.ID, "q1")
	if err != nil {
		t.Fatalf("FindBySessionAndQuestion failed: %v", err)
	}
	if stored.SelectedOptionID != first.SelectedOptionID || !stored.IsCorrect {
		t.Errorf("stored answer %+v, want the first submission preserved", stored)
	}
	updated, err := svc.Sessions.Get(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if updated.Progress.Performance.TotalAnswered != 1 {
		t.Errorf("total answered = %d, want 1 after rejected duplicate", updated.Progress.Performance.TotalAnswered)
	}
}

func TestSubmitOptionFromAnotherQuestion(t *testing.T) {
	svc, session := newScoringFixture(t)

	_, _, err := svc.Submit(context.Background(), SubmitInput{
		SessionID: session.ID, QuestionID: "q1", OptionID: "q2-a", TimeSpentSeconds: 5, Language: "en",
	})
	if !errors.Is(err, ErrOptionNotFound) {
		t.Fatalf("err = %v, want ErrOptionNotFound", err)
	}

	// Nothing was recorded.
	ids, err := svc.AnsweredQuestionIDs(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("AnsweredQuestionIDs failed: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("answered ids = %v, want none", ids)
	}
}

func TestSubmitUnknownQuestion(t *testing.T) {
	svc, session := newScoringFixture(t)
	_, _, err := svc.Submit(context.Background(), SubmitInput{
		SessionID: session.ID, QuestionID: "missing", OptionID: "q1-a", Language: "en",
	})
	if !errors.Is(err, ErrQuestionNotFound) {
		t.Errorf("err = %v, want ErrQuestionNotFound", err)
	}
}

func TestSubmitUnknownSession(t *testing.T) {
	svc, _ := newScoringFixture(t)
	_, _, err := svc.Submit(context.Background(), SubmitInput{
		SessionID: "missing", QuestionID: "q1", OptionID: "q1-a", Language: "en",
	})
	if !errors.Is(err, ErrSessionNotFound) {
		t.Errorf("err = %v, want ErrSessionNotFound", err)
	}
}

func TestSubmitToCompletedSession(t *testing.T) {
	svc, session := newScoringFixture(t)
	if _, err := svc.Sessions.Complete(context.Background(), session.ID); err != nil {
		t.Fatalf("Complete failed: %v", err)
	}
	_, _, err := svc.Submit(context.Background(), SubmitInput{
		SessionID: session.ID, QuestionID: "q1", OptionID: "q1-a", Language: "en",
	})
	if !errors.Is(err, ErrSessionCompleted) {
		t.Errorf("err = %v, want ErrSessionCompleted", err)
	}
}

func TestAnsweredQuestionIDs(t *testing.T) {
	svc, session := newScoringFixture(t)
	for _, in := range []SubmitInput{
		{SessionID: session.ID, QuestionID: "q1", OptionID: "q1-a", TimeSpentSeconds: 5, Language: "en"},
		{SessionID: session.ID, QuestionID: "q2", OptionID: "q2-b", TimeSpentSeconds: 12, Language: "en"},
	} {
		if _, _, err := svc.Submit(context.Background(), in); err != nil {
			t.Fatalf("Submit(%s) failed: %v", in.QuestionID, err)
		}
	}

	ids, err := svc.AnsweredQuestionIDs(context.Background(), session.ID)
	if err != nil {
		t.Fatalf("AnsweredQuestionIDs failed: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("answered ids = %v, want 2 entries", ids)
	}
	seen := map[string]bool{ids[0]: true, ids[1]: true}
	if !seen["q1"] || !seen["q2"] {
		t.Errorf("answered ids = %v, want q1 and q2", ids)
	}
}
