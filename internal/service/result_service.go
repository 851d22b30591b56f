package service

import (
	"context"
	"errors"

	"github.com/edutech/exam-backend/internal/model"
	"github.com/edutech/exam-backend/internal/repository"
	"github.com/google/uuid"
)

// ErrResultsForbidden is returned when a requester asks for results
// outside their own scope.
var ErrResultsForbidden = errors.New("not allowed to view these results")

// ResultService handles role-scoped result retrieval.
type ResultService struct {
	resultRepo *repository.ResultRepository
}

// NewResultService creates a new ResultService.
func NewResultService(resultRepo *repository.ResultRepository) *ResultService {
	return &ResultService{resultRepo: resultRepo}
}

// List retrieves results visible to the requester, most recent first.
// Admins may pass any filter or none; students must filter on exactly
// their own ID.
func (s *ResultService) List(
	ctx context.Context,
	role model.Role,
	requesterID uuid.UUID,
	filter *uuid.UUID,
) ([]model.Result, error) {
	effective, err := resultsScope(role, requesterID, filter)
	if err != nil {
		return nil, err
	}

	results, err := s.resultRepo.List(ctx, effective)
	if err != nil {
		return nil, err
	}
	if results == nil {
		results = []model.Result{}
	}
	return results, nil
}

// resultsScope decides which student filter actually reaches the
// repository. The switch is exhaustive over roles; an unknown role gets
// nothing.
func resultsScope(role model.Role, requesterID uuid.UUID, filter *uuid.UUID) (*uuid.UUID, error) {
	switch role {
	case model.RoleAdmin:
		return filter, nil
	case model.RoleStudent:
		if filter == nil || *filter != requesterID {
			return nil, ErrResultsForbidden
		}
		return filter, nil
	default:
		return nil, ErrResultsForbidden
	}
}
