package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/edutech/exam-backend/internal/middleware"
	"github.com/edutech/exam-backend/internal/model"
	"github.com/edutech/exam-backend/internal/response"
	"github.com/edutech/exam-backend/internal/service"
	"github.com/edutech/exam-backend/internal/validator"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5"
)

// userGetter resolves accounts during login.
type userGetter interface {
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}

// AuthHandler handles login, logout, and the session check endpoint.
type AuthHandler struct {
	authService *service.AuthService
	userService userGetter
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(authService *service.AuthService, userService userGetter) *AuthHandler {
	return &AuthHandler{
		authService: authService,
		userService: userService,
	}
}

// Login godoc
// POST /api/login
// Verifies credentials and establishes a session cookie. Failures never
// reveal whether the username or the password was wrong.
func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if fields := validator.Bind(c, &req); fields != nil {
		response.FailWithFields(c, http.StatusBadRequest, response.ErrValidation, fields)
		return
	}

	user, err := h.userService.GetByUsername(c.Request.Context(), req.Username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
			return
		}
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	if err := h.authService.CheckPassword(user.PasswordHash, req.Password); err != nil {
		response.Fail(c, http.StatusUnauthorized, response.ErrInvalidCredentials)
		return
	}

	sid, err := h.authService.CreateSession(c.Request.Context(), user)
	if err != nil {
		response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
		return
	}

	// Session-scoped cookie: no Max-Age, so the browser keeps sending it
	// as long as a session lives in Redis. The inactivity window is the
	// Redis TTL, which slides on every authenticated request; a fixed
	// client-side lifetime would log active users out mid-exam.
	h.setSessionCookie(c, sid, 0)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
	})
}

// Logout godoc
// POST /api/logout
// Invalidates the session regardless of its prior state. Succeeds even
// without a session cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	if sid, err := c.Cookie(middleware.SessionCookie); err == nil && sid != "" {
		if err := h.authService.DestroySession(c.Request.Context(), sid); err != nil {
			response.Fail(c, http.StatusInternalServerError, response.ErrInternal)
			return
		}
	}

	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// SessionCheck godoc
// GET /api/login
// Reports whether the caller holds a valid session. Always 200; the body
// carries the outcome so clients can probe without tripping error paths.
func (h *AuthHandler) SessionCheck(c *gin.Context) {
	sid, err := c.Cookie(middleware.SessionCookie)
	if err != nil || sid == "" {
		c.JSON(http.StatusOK, gin.H{"success": false})
		return
	}

	data, err := h.authService.GetSession(c.Request.Context(), sid)
	if err != nil {
		c.JSON(http.StatusOK, gin.H{"success": false})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user": gin.H{
			"id":       data.UserID,
			"username": data.Username,
			"role":     data.Role,
		},
	})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, value, maxAge, "/", "", false, true)
}
