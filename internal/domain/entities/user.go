package entities

import "strings"

// UserSettings are the UI preferences stored on a seed account.
type UserSettings struct {
	Theme   string `json:"theme" yaml:"theme"`
	Density string `json:"density" yaml:"density"`
	Accent  string `json:"accent" yaml:"accent"`
}

// SeedUser is a demo account written by the bootstrap script.
type SeedUser struct {
	Name     string       `yaml:"name"`
	Email    string       `yaml:"email"`
	Settings UserSettings `yaml:"settings"`
}

// FirstName returns the first word of the display name.
func (u SeedUser) FirstName() string {
	fields := strings.Fields(u.Name)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// DefaultSeedUsers are the built-in demo accounts.
var DefaultSeedUsers = []SeedUser{
	{
		Name:     "Brandon Walker",
		Email:    "brandon.walker.demo@omnimediatrak.local",
		Settings: UserSettings{Theme: "dark", Density: "comfortable", Accent: "purple"},
	},
	{
		Name:     "Sydney Walker",
		Email:    "sydney.walker.demo@omnimediatrak.local",
		Settings: UserSettings{Theme: "light", Density: "compact", Accent: "teal"},
	},
	{
		Name:     "Emelia Walker",
		Email:    "emelia.walker.demo@omnimediatrak.local",
		Settings: UserSettings{Theme: "dark", Density: "compact", Accent: "gold"},
	},
	{
		Name:     "Everett Walker",
		Email:    "everett.walker.demo@omnimediatrak.local",
		Settings: UserSettings{Theme: "light", Density: "comfortable", Accent: "blue"},
	},
	{
		Name:     "Rupert Walker",
		Email:    "rupert.walker.demo@omnimediatrak.local",
		Settings: UserSettings{Theme: "dark", Density: "spacious", Accent: "red"},
	},
	{
		Name:     "Basil Walker",
		Email:    "basil.walker.demo@omnimediatrak.local",
		Settings: UserSettings{Theme: "light", Density: "spacious", Accent: "green"},
	},
}
