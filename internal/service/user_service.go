package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/edutech/exam-backend/internal/config"
	"github.com/edutech/exam-backend/internal/model"
	"github.com/edutech/exam-backend/internal/repository"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// ErrAdminPasswordRequired is returned by EnsureAdmin when the admin
// account must be created but no password is configured.
var ErrAdminPasswordRequired = errors.New("ADMIN_PASSWORD must be set to seed the admin account")

// UserService handles account management and the startup admin seeding.
type UserService struct {
	userRepo *repository.UserRepository
	cfg      *config.Config
	log      zerolog.Logger
}

// NewUserService creates a new UserService.
func NewUserService(userRepo *repository.UserRepository, cfg *config.Config, log zerolog.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		cfg:      cfg,
		log:      log.With().Str("component", "user_service").Logger(),
	}
}

// GetByUsername retrieves a user account by username.
func (s *UserService) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return s.userRepo.GetByUsername(ctx, username)
}

// ListStudents retrieves all student accounts, without password data.
func (s *UserService) ListStudents(ctx context.Context) ([]model.User, error) {
	users, err := s.userRepo.ListByRole(ctx, model.RoleStudent)
	if err != nil {
		return nil, err
	}
	if users == nil {
		users = []model.User{}
	}
	return users, nil
}

// CreateStudent creates a student account with the given password hash.
// Duplicate usernames surface as repository.ErrDuplicateUsername.
func (s *UserService) CreateStudent(ctx context.Context, username, passwordHash string) (*model.User, error) {
	user := &model.User{
		Username:     username,
		PasswordHash: passwordHash,
		Role:         model.RoleStudent,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", user.ID.String()).Msg("Student account created")
	return user, nil
}

// Delete removes a user account. Results referencing the user stay in the
// results table but vanish from listings.
func (s *UserService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.userRepo.Delete(ctx, id)
}

// EnsureAdmin seeds the administrator account on first boot. If the
// account already exists nothing happens and the configured password is
// never consulted, so restarts do not require it.
func (s *UserService) EnsureAdmin(ctx context.Context) error {
	_, err := s.userRepo.GetByUsername(ctx, s.cfg.AdminUsername)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("look up admin account: %w", err)
	}

	if s.cfg.AdminPassword == "" {
		return ErrAdminPasswordRequired
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(s.cfg.AdminPassword), s.cfg.BcryptCost)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	admin := &model.User{
		Username:     s.cfg.AdminUsername,
		PasswordHash: string(hash),
		Role:         model.RoleAdmin,
	}
	if err := s.userRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("create admin account: %w", err)
	}

	s.log.Info().Str("username", admin.Username).Msg("Admin account seeded")
	return nil
}
