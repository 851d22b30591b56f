package repository

import (
	"context"
	"fmt"

	"github.com/edutech/exam-backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ExamRepository handles exam, question, and option data access.
type ExamRepository struct {
	pool *pgxpool.Pool
}

// NewExamRepository creates a new ExamRepository.
func NewExamRepository(pool *pgxpool.Pool) *ExamRepository {
	return &ExamRepository{pool: pool}
}

// ListSummaries retrieves every exam without question data, oldest first.
func (r *ExamRepository) ListSummaries(ctx context.Context) ([]model.ExamSummary, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, description, duration_minutes
		 FROM exams ORDER BY created_at`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exams []model.ExamSummary
	for rows.Next() {
		var e model.ExamSummary
		if err := rows.Scan(&e.ID, &e.Title, &e.Description, &e.DurationMinutes); err != nil {
			return nil, err
		}
		exams = append(exams, e)
	}
	return exams, rows.Err()
}

// GetByID retrieves a single exam row without its questions. Returns
// pgx.ErrNoRows if the exam does not exist.
func (r *ExamRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Exam, error) {
	e := &model.Exam{}
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, description, duration_minutes, created_at
		 FROM exams WHERE id = $1`, id,
	).Scan(&e.ID, &e.Title, &e.Description, &e.DurationMinutes, &e.CreatedAt)
	if err != nil {
		return nil, err
	}
	return e, nil
}

// ListQuestions retrieves an exam's questions with their options, both in
// authoring order. Correct-answer flags are always loaded; stripping them
// for students happens in the service layer.
func (r *ExamRepository) ListQuestions(ctx context.Context, examID uuid.UUID) ([]model.Question, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, exam_id, text, position
		 FROM questions WHERE exam_id = $1
		 ORDER BY position`, examID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []model.Question
	index := make(map[uuid.UUID]int)
	for rows.Next() {
		var q model.Question
		if err := rows.Scan(&q.ID, &q.ExamID, &q.Text, &q.Position); err != nil {
			return nil, err
		}
		q.Options = []model.Option{}
		index[q.ID] = len(questions)
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	optRows, err := r.pool.Query(ctx,
		`SELECT o.id, o.question_id, o.text, o.position, o.is_correct
		 FROM options o
		 JOIN questions q ON o.question_id = q.id
		 WHERE q.exam_id = $1
		 ORDER BY q.position, o.position`, examID)
	if err != nil {
		return nil, err
	}
	defer optRows.Close()

	for optRows.Next() {
		var o model.Option
		var correct bool
		if err := optRows.Scan(&o.ID, &o.QuestionID, &o.Text, &o.Position, &correct); err != nil {
			return nil, err
		}
		o.IsCorrect = &correct
		if i, ok := index[o.QuestionID]; ok {
			questions[i].Options = append(questions[i].Options, o)
		}
	}
	return questions, optRows.Err()
}

// CreateWithQuestions persists an exam, its questions, and their options
// in a single transaction. Any failure rolls the whole exam back so a
// partially created exam is never visible to readers.
func (r *ExamRepository) CreateWithQuestions(ctx context.Context, exam *model.Exam) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx,
		`INSERT INTO exams (title, description, duration_minutes)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at`,
		exam.Title, exam.Description, exam.DurationMinutes,
	).Scan(&exam.ID, &exam.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert exam: %w", err)
	}

	for qi := range exam.Questions {
		q := &exam.Questions[qi]
		q.ExamID = exam.ID
		q.Position = qi

		err = tx.QueryRow(ctx,
			`INSERT INTO questions (exam_id, text, position)
			 VALUES ($1, $2, $3)
			 RETURNING id`,
			q.ExamID, q.Text, q.Position,
		).Scan(&q.ID)
		if err != nil {
			return fmt.Errorf("insert question %d: %w", qi, err)
		}

		for oi := range q.Options {
			o := &q.Options[oi]
			o.QuestionID = q.ID
			o.Position = oi

			err = tx.QueryRow(ctx,
				`INSERT INTO options (question_id, text, position, is_correct)
				 VALUES ($1, $2, $3, $4)
				 RETURNING id`,
				o.QuestionID, o.Text, o.Position, o.IsCorrect != nil && *o.IsCorrect,
			).Scan(&o.ID)
			if err != nil {
				return fmt.Errorf("insert option %d of question %d: %w", oi, qi, err)
			}
		}
	}

	return tx.Commit(ctx)
}
