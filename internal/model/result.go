package model

import (
	"time"

	"github.com/google/uuid"
)

// Result is the persisted outcome of one submission attempt. StudentName
// and ExamTitle are denormalized at read time and never stored.
type Result struct {
	ID             uuid.UUID `json:"id"`
	StudentID      uuid.UUID `json:"studentId"`
	StudentName    string    `json:"studentName"`
	ExamID         uuid.UUID `json:"examId"`
	ExamTitle      string    `json:"examTitle"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"totalQuestions"`
	SubmittedAt    time.Time `json:"submittedAt"`
}
