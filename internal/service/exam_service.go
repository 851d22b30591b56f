package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/edutech/exam-backend/internal/model"
	"github.com/edutech/exam-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// ErrCorrectOptionIndex is returned when a question's correctOptionIndex
// does not point at one of its own options.
var ErrCorrectOptionIndex = errors.New("correctOptionIndex out of range for question")

// ExamService handles exam authoring and role-filtered delivery.
type ExamService struct {
	examRepo *repository.ExamRepository
	log      zerolog.Logger
}

// NewExamService creates a new ExamService.
func NewExamService(examRepo *repository.ExamRepository, log zerolog.Logger) *ExamService {
	return &ExamService{
		examRepo: examRepo,
		log:      log.With().Str("component", "exam_service").Logger(),
	}
}

// List retrieves all exam summaries for browsing.
func (s *ExamService) List(ctx context.Context) ([]model.ExamSummary, error) {
	exams, err := s.examRepo.ListSummaries(ctx)
	if err != nil {
		return nil, err
	}
	if exams == nil {
		exams = []model.ExamSummary{}
	}
	return exams, nil
}

// GetDetail retrieves a full exam with nested questions and options,
// shaped for the viewer's role. Returns pgx.ErrNoRows if absent.
func (s *ExamService) GetDetail(ctx context.Context, id uuid.UUID, viewer model.Role) (*model.Exam, error) {
	exam, err := s.examRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	questions, err := s.examRepo.ListQuestions(ctx, id)
	if err != nil {
		return nil, err
	}
	if questions == nil {
		questions = []model.Question{}
	}
	exam.Questions = questions

	sanitizeForViewer(exam, viewer)
	return exam, nil
}

// sanitizeForViewer removes the correct-option markers for anyone who is
// not an admin. Students must never observe which option is correct
// before submitting.
func sanitizeForViewer(exam *model.Exam, viewer model.Role) {
	if viewer == model.RoleAdmin {
		return
	}
	for qi := range exam.Questions {
		opts := exam.Questions[qi].Options
		for oi := range opts {
			opts[oi].IsCorrect = nil
		}
	}
}

// Create persists a new exam atomically from an authoring request and
// returns it in the admin view.
func (s *ExamService) Create(ctx context.Context, req *model.CreateExamRequest) (*model.Exam, error) {
	exam, err := buildExam(req)
	if err != nil {
		return nil, err
	}

	if err := s.examRepo.CreateWithQuestions(ctx, exam); err != nil {
		return nil, fmt.Errorf("create exam: %w", err)
	}

	s.log.Info().
		Str("exam_id", exam.ID.String()).
		Int("questions", len(exam.Questions)).
		Msg("Exam created")
	return exam, nil
}

// buildExam converts an authoring request into model rows, designating
// exactly one correct option per question. An omitted correctOptionIndex
// defaults to the first option, matching the behavior exam authors relied
// on before the index was part of the payload.
func buildExam(req *model.CreateExamRequest) (*model.Exam, error) {
	exam := &model.Exam{
		Title:           req.Title,
		Description:     req.Description,
		DurationMinutes: req.DurationMinutes,
		Questions:       make([]model.Question, len(req.Questions)),
	}

	for qi, qr := range req.Questions {
		correct := 0
		if qr.CorrectOptionIndex != nil {
			correct = *qr.CorrectOptionIndex
		}
		if correct < 0 || correct >= len(qr.Options) {
			return nil, fmt.Errorf("question %d: %w", qi, ErrCorrectOptionIndex)
		}

		q := model.Question{
			Text:    qr.Text,
			Options: make([]model.Option, len(qr.Options)),
		}
		for oi, or := range qr.Options {
			isCorrect := oi == correct
			q.Options[oi] = model.Option{
				Text:      or.Text,
				IsCorrect: &isCorrect,
			}
		}
		exam.Questions[qi] = q
	}

	return exam, nil
}
