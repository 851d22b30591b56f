package handler

import (
	"errors"
	"net/http"

	"github.com/edutech/exam-backend/internal/model"
	"github.com/edutech/exam-backend/internal/repository"
	"github.com/edutech/exam-backend/internal/response"
	"github.com/edutech/exam-backend/internal/service"
	"github.com/edutech/exam-backend/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// UserHandler handles admin-only student account management.
type UserHandler struct {
	userService *service.UserService
	authService *service.AuthService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *service.UserService, authService *service.AuthService) *UserHandler {
	return &UserHandler{
		userService: userService,
		authService: authService,
	}
}

// ListStudents godoc
// GET /api/users (admin only)
// Lists all student accounts. Passwords are never included.
func (h *UserHandler) ListStudents(c *gin.Context) {
	users, err := h.userService.ListStudents(c.Request.Context())
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}
	c.JSON(http.StatusOK, users)
}

// CreateStudent godoc
// POST /api/users (admin only)
// Creates a student account. Duplicate usernames answer 409.
func (h *UserHandler) CreateStudent(c *gin.Context) {
	var req model.CreateStudentRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	hash, err := h.authService.HashPassword(req.Password)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	user, err := h.userService.CreateStudent(c.Request.Context(), req.Username, hash)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			response.Fail(c, http.StatusConflict, response.ErrConflict)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"userId":  user.ID,
	})
}

// DeleteUser godoc
// DELETE /api/users/:id (admin only)
// Removes a user account. The user's results remain stored but disappear
// from listings.
func (h *UserHandler) DeleteUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Fail(c, http.StatusBadRequest, response.ErrInvalidID)
		return
	}

	if err := h.userService.Delete(c.Request.Context(), userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			response.Fail(c, http.StatusNotFound, response.ErrNotFound)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}
