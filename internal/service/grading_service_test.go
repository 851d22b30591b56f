package service

import (
	"testing"

	"github.com/edutech/exam-backend/internal/model"
	"github.com/google/uuid"
)

// testQuestion builds a question with n options, marking correctIdx correct.
func testQuestion(t *testing.T, n, correctIdx int) model.Question {
	t.Helper()
	q := model.Question{ID: uuid.New()}
	for i := 0; i < n; i++ {
		isCorrect := i == correctIdx
		q.Options = append(q.Options, model.Option{
			ID:         uuid.New(),
			QuestionID: q.ID,
			Text:       "option",
			Position:   i,
			IsCorrect:  &isCorrect,
		})
	}
	return q
}

func TestScoreAnswersAllCorrect(t *testing.T) {
	q1 := testQuestion(t, 4, 0)
	q2 := testQuestion(t, 4, 2)
	answers := map[string]string{
		q1.ID.String(): q1.Options[0].ID.String(),
		q2.ID.String(): q2.Options[2].ID.String(),
	}

	score, total := scoreAnswers([]model.Question{q1, q2}, answers)
	if score != 2 || total != 2 {
		t.Fatalf("expected 2/2, got %d/%d", score, total)
	}
}

func TestScoreAnswersWrongChoice(t *testing.T) {
	q := testQuestion(t, 2, 0)
	answers := map[string]string{q.ID.String(): q.Options[1].ID.String()}

	score, total := scoreAnswers([]model.Question{q}, answers)
	if score != 0 || total != 1 {
		t.Fatalf("expected 0/1, got %d/%d", score, total)
	}
}

func TestScoreAnswersUnansweredCountsTowardTotal(t *testing.T) {
	q1 := testQuestion(t, 3, 1)
	q2 := testQuestion(t, 3, 0)
	answers := map[string]string{q1.ID.String(): q1.Options[1].ID.String()}

	score, total := scoreAnswers([]model.Question{q1, q2}, answers)
	if score != 1 {
		t.Errorf("expected score 1, got %d", score)
	}
	if total != 2 {
		t.Errorf("expected total 2, got %d", total)
	}
}

func TestScoreAnswersExtraKeysDoNotInflateTotal(t *testing.T) {
	q := testQuestion(t, 2, 0)
	answers := map[string]string{
		q.ID.String():       q.Options[0].ID.String(),
		uuid.New().String(): uuid.New().String(),
		uuid.New().String(): uuid.New().String(),
	}

	score, total := scoreAnswers([]model.Question{q}, answers)
	if total != 1 {
		t.Errorf("total must track stored questions, got %d", total)
	}
	if score != 1 {
		t.Errorf("expected score 1, got %d", score)
	}
}

func TestScoreAnswersOptionMustBelongToQuestion(t *testing.T) {
	q1 := testQuestion(t, 2, 0)
	q2 := testQuestion(t, 2, 0)

	// Submit q2's correct option for q1: must not score, for either question.
	answers := map[string]string{q1.ID.String(): q2.Options[0].ID.String()}

	score, total := scoreAnswers([]model.Question{q1, q2}, answers)
	if score != 0 {
		t.Errorf("cross-question option must not score, got %d", score)
	}
	if total != 2 {
		t.Errorf("expected total 2, got %d", total)
	}
}

func TestScoreAnswersNeverExceedsTotal(t *testing.T) {
	q := testQuestion(t, 2, 0)
	answers := map[string]string{
		q.ID.String(): q.Options[0].ID.String(),
	}

	score, total := scoreAnswers([]model.Question{q}, answers)
	if score > total {
		t.Fatalf("score %d exceeds total %d", score, total)
	}
}

func TestScoreAnswersEmptyExam(t *testing.T) {
	score, total := scoreAnswers(nil, map[string]string{"x": "y"})
	if score != 0 || total != 0 {
		t.Fatalf("expected 0/0, got %d/%d", score, total)
	}
}
