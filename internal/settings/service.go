package settings

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	apperrors "github.com/frahmantamala/manager-dashboard/internal"
)

// Service owns one copy of the organization settings.
type Service struct {
	mu        sync.RWMutex
	org       Organization
	validator *structValidator
	logger    *slog.Logger
}

func NewService(initial Organization, logger *slog.Logger) (*Service, error) {
	sv, err := newStructValidator()
	if err != nil {
		return nil, err
	}
	return &Service{
		org:       initial.clone(),
		validator: sv,
		logger:    logger,
	}, nil
}

func (s *Service) Snapshot() Organization {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.org.clone()
}

// AddCategory appends a trimmed, not yet present category name.
func (s *Service) AddCategory(ctx context.Context, dto CategoryDTO) (Organization, error) {
	dto = dto.Normalize()
	if err := s.validator.Struct(dto); err != nil {
		s.logger.WarnContext(ctx, "add category rejected", "error", err)
		return Organization{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.Contains(s.org.Categories, dto.Name) {
		return Organization{}, apperrors.ErrCategoryExists
	}
	s.org.Categories = append(s.org.Categories, dto.Name)

	s.logger.InfoContext(ctx, "category added", "name", dto.Name)
	return s.org.clone(), nil
}

// RemoveCategory drops name if present. Removing an absent name changes nothing.
func (s *Service) RemoveCategory(ctx context.Context, name string) Organization {
	s.mu.Lock()
	defer s.mu.Unlock()

	before := len(s.org.Categories)
	s.org.Categories = slices.DeleteFunc(s.org.Categories, func(c string) bool {
		return c == name
	})
	if len(s.org.Categories) != before {
		s.logger.InfoContext(ctx, "category removed", "name", name)
	}
	return s.org.clone()
}

func (s *Service) SetBudget(ctx context.Context, dto BudgetDTO) (Organization, error) {
	if err := s.validator.Struct(dto); err != nil {
		s.logger.WarnContext(ctx, "budget update rejected", "error", err)
		return Organization{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.org.Budget = dto.Amount
	s.logger.InfoContext(ctx, "budget updated", "amount", dto.Amount)
	return s.org.clone(), nil
}

func (s *Service) SetAlerts(ctx context.Context, dto AlertsDTO) (Organization, error) {
	if err := s.validator.Struct(dto); err != nil {
		s.logger.WarnContext(ctx, "alerts update rejected", "error", err)
		return Organization{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.org.Alerts = Alerts{Enabled: dto.Enabled, Threshold: *dto.Threshold}
	s.logger.InfoContext(ctx, "alerts updated", "enabled", dto.Enabled, "threshold", *dto.Threshold)
	return s.org.clone(), nil
}
