package worker

import (
	"strings"

	errors "github.com/frahmantamala/manager-dashboard/internal"
	"github.com/frahmantamala/manager-dashboard/internal/core/common/validation"
)

// AddWorkerDTO is the completed-fields payload of the add-worker form.
type AddWorkerDTO struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role"`
	Email     string `json:"email,omitempty"`
	Phone     string `json:"phone,omitempty"`
	Address   string `json:"address,omitempty"`
}

// Validate only checks presence of the required fields.
func (dto AddWorkerDTO) Validate() error {
	v := validation.NewValidator()
	v.Field("first_name", dto.FirstName).Required(errors.ErrCodeInvalidName)
	v.Field("last_name", dto.LastName).Required(errors.ErrCodeInvalidName)
	v.Field("role", dto.Role).Required(errors.ErrCodeInvalidRole)
	if err := v.Validate(); err != nil {
		return err
	}
	return nil
}

func (dto AddWorkerDTO) FullName() string {
	return strings.TrimSpace(dto.FirstName) + " " + strings.TrimSpace(dto.LastName)
}

// Normalize trims surrounding whitespace from every field.
func (dto AddWorkerDTO) Normalize() AddWorkerDTO {
	return AddWorkerDTO{
		FirstName: strings.TrimSpace(dto.FirstName),
		LastName:  strings.TrimSpace(dto.LastName),
		Role:      strings.TrimSpace(dto.Role),
		Email:     strings.TrimSpace(dto.Email),
		Phone:     strings.TrimSpace(dto.Phone),
		Address:   strings.TrimSpace(dto.Address),
	}
}

type SetStatusDTO struct {
	Status string `json:"status"`
}

func (dto SetStatusDTO) Validate() error {
	if dto.Status == "" {
		return errors.NewValidationFieldError("status", "status is required", errors.ErrCodeInvalidWorkerStatus)
	}
	if _, err := ParseStatus(dto.Status); err != nil {
		return err
	}
	return nil
}

// Detail is what the worker detail view renders.
type Detail struct {
	Worker      *Worker      `json:"worker"`
	MonthGroups []MonthGroup `json:"month_groups"`
	MaxCost     float64      `json:"max_cost"`
}
