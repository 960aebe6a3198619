package settings

import "strings"

type CategoryDTO struct {
	Name string `json:"name" validate:"required,max=50"`
}

func (dto CategoryDTO) Normalize() CategoryDTO {
	return CategoryDTO{Name: strings.TrimSpace(dto.Name)}
}

type BudgetDTO struct {
	Amount int `json:"amount" validate:"gt=0,lte=1000000000"`
}

type AlertsDTO struct {
	Enabled   bool `json:"enabled"`
	Threshold *int `json:"threshold" validate:"required,gte=0,lte=100"`
}

type SectionDTO struct {
	Section string `json:"section" validate:"required"`
}
