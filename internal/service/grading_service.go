package service

import (
	"context"
	"fmt"

	"github.com/edutech/exam-backend/internal/model"
	"github.com/edutech/exam-backend/internal/repository"
	"github.com/edutech/exam-backend/internal/session"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// GradingService scores exam submissions and persists results.
type GradingService struct {
	examRepo   *repository.ExamRepository
	resultRepo *repository.ResultRepository
	log        zerolog.Logger
}

// NewGradingService creates a new GradingService.
func NewGradingService(
	examRepo *repository.ExamRepository,
	resultRepo *repository.ResultRepository,
	log zerolog.Logger,
) *GradingService {
	return &GradingService{
		examRepo:   examRepo,
		resultRepo: resultRepo,
		log:        log.With().Str("component", "grading_service").Logger(),
	}
}

// Submit grades a student's answers against the exam's stored questions
// and persists a new result row. Answers map question IDs to chosen option
// IDs. Resubmission is allowed; every call creates a fresh result.
// Returns pgx.ErrNoRows if the exam does not exist.
func (s *GradingService) Submit(
	ctx context.Context,
	examID uuid.UUID,
	submitter *session.Data,
	answers map[string]string,
) (*model.Result, error) {
	exam, err := s.examRepo.GetByID(ctx, examID)
	if err != nil {
		return nil, err
	}

	questions, err := s.examRepo.ListQuestions(ctx, examID)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}

	score, total := scoreAnswers(questions, answers)

	result := &model.Result{
		StudentID:      submitter.UserID,
		ExamID:         examID,
		Score:          score,
		TotalQuestions: total,
	}
	if err := s.resultRepo.Insert(ctx, result); err != nil {
		return nil, fmt.Errorf("insert result: %w", err)
	}

	result.StudentName = submitter.Username
	result.ExamTitle = exam.Title

	s.log.Info().
		Str("exam_id", examID.String()).
		Str("student_id", submitter.UserID.String()).
		Int("score", score).
		Int("total", total).
		Msg("Exam submitted")
	return result, nil
}

// scoreAnswers counts how many answers chose the correct option of their
// own question. The total is always the exam's stored question count:
// extra answer keys never inflate it, and an option ID only scores when it
// belongs to the question it was submitted for. Unanswered questions count
// toward the total but never toward the score.
func scoreAnswers(questions []model.Question, answers map[string]string) (score, total int) {
	for _, q := range questions {
		total++

		chosen, ok := answers[q.ID.String()]
		if !ok || chosen == "" {
			continue
		}

		for _, opt := range q.Options {
			if opt.ID.String() == chosen && opt.IsCorrect != nil && *opt.IsCorrect {
				score++
				break
			}
		}
	}
	return score, total
}
