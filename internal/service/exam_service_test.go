package service

import (
	"errors"
	"testing"

	"github.com/edutech/exam-backend/internal/model"
)

func draftExam(correctIdx *int) *model.CreateExamRequest {
	return &model.CreateExamRequest{
		Title:           "Math",
		Description:     "Basic arithmetic",
		DurationMinutes: 30,
		Questions: []model.CreateQuestionRequest{
			{
				Text:               "2+2?",
				CorrectOptionIndex: correctIdx,
				Options: []model.CreateOptionRequest{
					{Text: "4"},
					{Text: "5"},
				},
			},
		},
	}
}

func correctFlags(t *testing.T, q model.Question) []bool {
	t.Helper()
	flags := make([]bool, len(q.Options))
	for i, o := range q.Options {
		if o.IsCorrect == nil {
			t.Fatalf("option %d has no correct flag", i)
		}
		flags[i] = *o.IsCorrect
	}
	return flags
}

func TestBuildExamDefaultsToFirstOption(t *testing.T) {
	exam, err := buildExam(draftExam(nil))
	if err != nil {
		t.Fatalf("buildExam: %v", err)
	}

	flags := correctFlags(t, exam.Questions[0])
	if !flags[0] || flags[1] {
		t.Errorf("expected [true false], got %v", flags)
	}
}

func TestBuildExamHonorsExplicitIndex(t *testing.T) {
	idx := 1
	exam, err := buildExam(draftExam(&idx))
	if err != nil {
		t.Fatalf("buildExam: %v", err)
	}

	flags := correctFlags(t, exam.Questions[0])
	if flags[0] || !flags[1] {
		t.Errorf("expected [false true], got %v", flags)
	}
}

func TestBuildExamRejectsOutOfRangeIndex(t *testing.T) {
	idx := 2
	_, err := buildExam(draftExam(&idx))
	if !errors.Is(err, ErrCorrectOptionIndex) {
		t.Fatalf("expected ErrCorrectOptionIndex, got %v", err)
	}
}

func TestBuildExamPreservesOrdering(t *testing.T) {
	req := draftExam(nil)
	req.Questions = append(req.Questions, model.CreateQuestionRequest{
		Text: "3+3?",
		Options: []model.CreateOptionRequest{
			{Text: "6"},
			{Text: "7"},
		},
	})

	exam, err := buildExam(req)
	if err != nil {
		t.Fatalf("buildExam: %v", err)
	}
	if exam.Questions[0].Text != "2+2?" || exam.Questions[1].Text != "3+3?" {
		t.Error("question order not preserved")
	}
	if exam.Questions[1].Options[0].Text != "6" {
		t.Error("option order not preserved")
	}
}

func TestSanitizeForViewerStripsForStudent(t *testing.T) {
	exam, err := buildExam(draftExam(nil))
	if err != nil {
		t.Fatalf("buildExam: %v", err)
	}

	sanitizeForViewer(exam, model.RoleStudent)

	for _, q := range exam.Questions {
		for i, o := range q.Options {
			if o.IsCorrect != nil {
				t.Errorf("option %d still carries a correct flag for a student", i)
			}
		}
	}
}

func TestSanitizeForViewerKeepsForAdmin(t *testing.T) {
	exam, err := buildExam(draftExam(nil))
	if err != nil {
		t.Fatalf("buildExam: %v", err)
	}

	sanitizeForViewer(exam, model.RoleAdmin)

	flags := correctFlags(t, exam.Questions[0])
	if !flags[0] {
		t.Error("admin view lost the correct flag")
	}
}
