package view

import "github.com/frahmantamala/manager-dashboard/internal/settings"

type ProfileView struct {
	profile settings.Profile
}

func newProfileView() *ProfileView {
	return &ProfileView{profile: settings.DefaultProfile()}
}

func (v *ProfileView) Route() Route { return RouteProfile }

func (v *ProfileView) Close() error { return nil }

func (v *ProfileView) Profile() settings.Profile { return v.profile }
