package settings

import (
	"slices"

	apperrors "github.com/frahmantamala/manager-dashboard/internal"
)

type Section string

const (
	SectionEdit          Section = "edit"
	SectionOrganization  Section = "organization"
	SectionNotifications Section = "notifications"
	SectionPrivacy       Section = "privacy"
	SectionStorage       Section = "storage"
	SectionLanguage      Section = "language"
	SectionAccount       Section = "account"
	SectionHelp          Section = "help"
)

// DefaultSection is where the settings page opens.
const DefaultSection = SectionEdit

type SectionItem struct {
	ID    Section `json:"id"`
	Label string  `json:"label"`
}

var sections = []SectionItem{
	{ID: SectionEdit, Label: "Edit Profile"},
	{ID: SectionOrganization, Label: "Organization"},
	{ID: SectionNotifications, Label: "Notifications"},
	{ID: SectionPrivacy, Label: "Privacy & Security"},
	{ID: SectionStorage, Label: "Data & Storage"},
	{ID: SectionLanguage, Label: "Language"},
	{ID: SectionAccount, Label: "Account Status"},
	{ID: SectionHelp, Label: "Help"},
}

func Sections() []SectionItem {
	return slices.Clone(sections)
}

func ParseSection(s string) (Section, error) {
	for _, item := range sections {
		if string(item.ID) == s {
			return item.ID, nil
		}
	}
	return "", apperrors.ErrUnknownSection
}

type Alerts struct {
	Enabled   bool `json:"enabled"`
	Threshold int  `json:"threshold"`
}

// Organization is the editable expense policy.
type Organization struct {
	Categories []string `json:"categories"`
	Budget     int      `json:"budget"`
	Alerts     Alerts   `json:"alerts"`
}

func DefaultOrganization() Organization {
	return Organization{
		Categories: []string{"Food", "Travel", "Fuel", "Office Supplies"},
		Budget:     5000,
		Alerts:     Alerts{Enabled: true, Threshold: 80},
	}
}

func (o Organization) clone() Organization {
	o.Categories = slices.Clone(o.Categories)
	return o
}

type Profile struct {
	Name     string `json:"name"`
	Title    string `json:"title"`
	Company  string `json:"company"`
	Location string `json:"location"`
	Joined   string `json:"joined"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Website  string `json:"website"`
}

func DefaultProfile() Profile {
	return Profile{
		Name:     "Manu Arora",
		Title:    "Senior Operations Manager",
		Company:  "Acet Labs",
		Location: "San Francisco, CA",
		Joined:   "Jan 2022",
		Email:    "manu.arora@acetlabs.com",
		Phone:    "+1 (555) 000-0000",
		Website:  "acetlabs.com",
	}
}
