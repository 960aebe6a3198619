package view

import (
	apperrors "github.com/frahmantamala/manager-dashboard/internal"
)

type Route string

const (
	RouteDashboard Route = "dashboard"
	RouteWorkers   Route = "workers"
	RouteReports   Route = "reports"
	RouteProfile   Route = "profile"
	RouteSettings  Route = "settings"
)

// HomeRoute is mounted when the shell starts.
const HomeRoute = RouteDashboard

type NavItem struct {
	Route Route  `json:"route"`
	Label string `json:"label"`
	Href  string `json:"href"`
}

var navItems = []NavItem{
	{Route: RouteDashboard, Label: "Dashboard", Href: "/"},
	{Route: RouteWorkers, Label: "Workers", Href: "/workers"},
	{Route: RouteReports, Label: "Reports", Href: "/reports"},
	{Route: RouteProfile, Label: "Profile", Href: "/profile"},
	{Route: RouteSettings, Label: "Settings", Href: "/settings"},
}

func NavItems() []NavItem {
	return append([]NavItem(nil), navItems...)
}

func ParseRoute(s string) (Route, error) {
	for _, item := range navItems {
		if string(item.Route) == s {
			return item.Route, nil
		}
	}
	return "", apperrors.ErrUnknownRoute
}
