package service

import (
	"errors"
	"testing"

	"github.com/edutech/exam-backend/internal/model"
	"github.com/google/uuid"
)

func TestResultsScope(t *testing.T) {
	self := uuid.New()
	other := uuid.New()

	tests := []struct {
		name      string
		role      model.Role
		filter    *uuid.UUID
		want      *uuid.UUID
		forbidden bool
	}{
		{name: "admin no filter sees all", role: model.RoleAdmin, filter: nil, want: nil},
		{name: "admin may filter on anyone", role: model.RoleAdmin, filter: &other, want: &other},
		{name: "student filtering on self", role: model.RoleStudent, filter: &self, want: &self},
		{name: "student filtering on someone else", role: model.RoleStudent, filter: &other, forbidden: true},
		{name: "student omitting the filter", role: model.RoleStudent, filter: nil, forbidden: true},
		{name: "unknown role", role: model.Role("SUPERUSER"), filter: &self, forbidden: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := resultsScope(tt.role, self, tt.filter)
			if tt.forbidden {
				if !errors.Is(err, ErrResultsForbidden) {
					t.Fatalf("expected ErrResultsForbidden, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("resultsScope: %v", err)
			}
			if (got == nil) != (tt.want == nil) {
				t.Fatalf("expected filter %v, got %v", tt.want, got)
			}
			if got != nil && *got != *tt.want {
				t.Fatalf("expected filter %s, got %s", tt.want, got)
			}
		})
	}
}
