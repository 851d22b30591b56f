package repository

import (
	"context"

	"github.com/edutech/exam-backend/internal/model"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ResultRepository handles graded result data access.
type ResultRepository struct {
	pool *pgxpool.Pool
}

// NewResultRepository creates a new ResultRepository.
func NewResultRepository(pool *pgxpool.Pool) *ResultRepository {
	return &ResultRepository{pool: pool}
}

// Insert persists one result row. The submission timestamp is assigned by
// the database.
func (r *ResultRepository) Insert(ctx context.Context, res *model.Result) error {
	return r.pool.QueryRow(ctx,
		`INSERT INTO results (student_id, exam_id, score, total_questions)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, submitted_at`,
		res.StudentID, res.ExamID, res.Score, res.TotalQuestions,
	).Scan(&res.ID, &res.SubmittedAt)
}

// List retrieves results joined with the student's username and the exam
// title, most recent first. A nil studentID returns results for everyone.
// Results whose user or exam was deleted drop out of the join.
func (r *ResultRepository) List(ctx context.Context, studentID *uuid.UUID) ([]model.Result, error) {
	query := `SELECT r.id, r.student_id, u.username, r.exam_id, e.title,
	                 r.score, r.total_questions, r.submitted_at
	          FROM results r
	          JOIN users u ON r.student_id = u.id
	          JOIN exams e ON r.exam_id = e.id`
	var args []interface{}
	if studentID != nil {
		query += ` WHERE r.student_id = $1`
		args = append(args, *studentID)
	}
	query += ` ORDER BY r.submitted_at DESC`

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []model.Result
	for rows.Next() {
		var res model.Result
		if err := rows.Scan(&res.ID, &res.StudentID, &res.StudentName, &res.ExamID,
			&res.ExamTitle, &res.Score, &res.TotalQuestions, &res.SubmittedAt); err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, rows.Err()
}
