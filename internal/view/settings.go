package view

import (
	"context"
	"log/slog"

	"github.com/frahmantamala/manager-dashboard/internal/settings"
)

type SettingsView struct {
	service *settings.Service
	section settings.Section
}

type SettingsState struct {
	Section      settings.Section       `json:"section"`
	Sections     []settings.SectionItem `json:"sections"`
	Organization settings.Organization  `json:"organization"`
	Profile      settings.Profile       `json:"profile"`
}

func newSettingsView(logger *slog.Logger) (*SettingsView, error) {
	service, err := settings.NewService(settings.DefaultOrganization(), logger)
	if err != nil {
		return nil, err
	}
	return &SettingsView{service: service, section: settings.DefaultSection}, nil
}

func (v *SettingsView) Route() Route { return RouteSettings }

func (v *SettingsView) Close() error { return nil }

func (v *SettingsView) State() SettingsState {
	return SettingsState{
		Section:      v.section,
		Sections:     settings.Sections(),
		Organization: v.service.Snapshot(),
		Profile:      settings.DefaultProfile(),
	}
}

func (v *SettingsView) SelectSection(raw string) (SettingsState, error) {
	section, err := settings.ParseSection(raw)
	if err != nil {
		return SettingsState{}, err
	}
	v.section = section
	return v.State(), nil
}

func (v *SettingsView) AddCategory(ctx context.Context, dto settings.CategoryDTO) (settings.Organization, error) {
	return v.service.AddCategory(ctx, dto)
}

func (v *SettingsView) RemoveCategory(ctx context.Context, name string) settings.Organization {
	return v.service.RemoveCategory(ctx, name)
}

func (v *SettingsView) SetBudget(ctx context.Context, dto settings.BudgetDTO) (settings.Organization, error) {
	return v.service.SetBudget(ctx, dto)
}

func (v *SettingsView) SetAlerts(ctx context.Context, dto settings.AlertsDTO) (settings.Organization, error) {
	return v.service.SetAlerts(ctx, dto)
}
