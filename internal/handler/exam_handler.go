package handler

import (
	"errors"
	"net/http"

	"github.com/edutech/exam-backend/internal/middleware"
	"github.com/edutech/exam-backend/internal/model"
	"github.com/edutech/exam-backend/internal/response"
	"github.com/edutech/exam-backend/internal/service"
	"github.com/edutech/exam-backend/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// ExamHandler handles exam browsing, authoring, submission, and results.
type ExamHandler struct {
	examService    *service.ExamService
	gradingService *service.GradingService
	resultService  *service.ResultService
}

// NewExamHandler creates a new ExamHandler.
func NewExamHandler(
	examService *service.ExamService,
	gradingService *service.GradingService,
	resultService *service.ResultService,
) *ExamHandler {
	return &ExamHandler{
		examService:    examService,
		gradingService: gradingService,
		resultService:  resultService,
	}
}

// ListExams godoc
// GET /api/exams
// Lists all exams as summaries: no question data.
func (h *ExamHandler) ListExams(c *gin.Context) {
	exams, err := h.examService.List(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	c.JSON(http.StatusOK, exams)
}

// GetExam godoc
// GET /api/exams/:id
// Returns the full exam. Correct-option markers are stripped unless the
// viewer is an admin.
func (h *ExamHandler) GetExam(c *gin.Context) {
	examID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	data := middleware.GetSession(c)
	if data == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrUnauthenticated)
		return
	}

	exam, err := h.examService.GetDetail(c.Request.Context(), examID, data.Role)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	c.JSON(http.StatusOK, exam)
}

// CreateExam godoc
// POST /api/exams (admin only)
// Creates an exam with all its questions and options in one transaction.
func (h *ExamHandler) CreateExam(c *gin.Context) {
	var req model.CreateExamRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	exam, err := h.examService.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrCorrectOptionIndex) {
			response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation,
				map[string]string{"correctOptionIndex": err.Error()})
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"examId":  exam.ID,
	})
}

// SubmitExam godoc
// POST /api/exams/submit/:id
// Grades the submitted answer map against the exam's stored questions and
// returns the persisted result.
func (h *ExamHandler) SubmitExam(c *gin.Context) {
	examID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	data := middleware.GetSession(c)
	if data == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrUnauthenticated)
		return
	}

	// The body is a bare mapping of question ID to chosen option ID.
	answers := map[string]string{}
	if err := c.ShouldBindJSON(&answers); err != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation,
			validator.TranslateErrors(err))
		return
	}

	result, err := h.gradingService.Submit(c.Request.Context(), examID, data, answers)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	c.JSON(http.StatusOK, result)
}

// ListResults godoc
// GET /api/exams/results?studentId=
// Admins see everything, optionally filtered; students only their own.
func (h *ExamHandler) ListResults(c *gin.Context) {
	data := middleware.GetSession(c)
	if data == nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrUnauthenticated)
		return
	}

	var filter *uuid.UUID
	if raw := c.Query("studentId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
			return
		}
		filter = &id
	}

	results, err := h.resultService.List(c.Request.Context(), data.Role, data.UserID, filter)
	if err != nil {
		if errors.Is(err, service.ErrResultsForbidden) {
			response.Fail(c, http.StatusForbidden, response.ErrForbidden)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	c.JSON(http.StatusOK, results)
}
