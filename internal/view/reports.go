package view

import (
	"github.com/frahmantamala/manager-dashboard/internal/report"
	"github.com/frahmantamala/manager-dashboard/internal/seed"
)

type ReportsView struct {
	service   *report.Service
	selection string
}

func newReportsView() *ReportsView {
	return &ReportsView{
		service:   report.NewService(seed.Reports()),
		selection: report.Overall,
	}
}

func (v *ReportsView) Route() Route { return RouteReports }

func (v *ReportsView) Close() error { return nil }

// Select changes the selected spender and returns its report.
func (v *ReportsView) Select(selection string) report.Report {
	v.selection = v.service.Normalize(selection)
	return v.service.Build(v.selection)
}

func (v *ReportsView) Current() report.Report {
	return v.service.Build(v.selection)
}
