package model

import (
	"time"

	"github.com/google/uuid"
)

// ExamSummary is the browsing view of an exam: no question data.
type ExamSummary struct {
	ID              uuid.UUID `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	DurationMinutes int       `json:"durationMinutes"`
}

// Exam is the full exam with nested questions and options.
type Exam struct {
	ID              uuid.UUID  `json:"id"`
	Title           string     `json:"title"`
	Description     string     `json:"description"`
	DurationMinutes int        `json:"durationMinutes"`
	Questions       []Question `json:"questions"`
	CreatedAt       time.Time  `json:"-"`
}

// Question belongs to exactly one exam. Position preserves authoring order.
type Question struct {
	ID       uuid.UUID `json:"id"`
	ExamID   uuid.UUID `json:"examId"`
	Text     string    `json:"text"`
	Position int       `json:"-"`
	Options  []Option  `json:"options"`
}

// Option is one selectable answer choice. IsCorrect is a pointer so the
// field disappears entirely from responses rendered for students.
type Option struct {
	ID         uuid.UUID `json:"id"`
	QuestionID uuid.UUID `json:"questionId"`
	Text       string    `json:"text"`
	Position   int       `json:"-"`
	IsCorrect  *bool     `json:"isCorrect,omitempty"`
}

// CreateExamRequest is the payload for creating a new exam in one shot.
type CreateExamRequest struct {
	Title           string                  `json:"title" binding:"required,min=1,max=255"`
	Description     string                  `json:"description" binding:"max=2000"`
	DurationMinutes int                     `json:"durationMinutes" binding:"required,min=1,max=480"`
	Questions       []CreateQuestionRequest `json:"questions" binding:"required,min=1,dive"`
}

// CreateQuestionRequest carries one question and its options. When
// CorrectOptionIndex is omitted the first option is the correct one.
type CreateQuestionRequest struct {
	Text               string                `json:"text" binding:"required,min=1,max=2000"`
	CorrectOptionIndex *int                  `json:"correctOptionIndex" binding:"omitempty,min=0"`
	Options            []CreateOptionRequest `json:"options" binding:"required,min=2,dive"`
}

// CreateOptionRequest carries one answer choice's display text.
type CreateOptionRequest struct {
	Text string `json:"text" binding:"required,min=1,max=255"`
}
