package config

import "github.com/alexisbeaulieu97/counterbuddy/internal/counter"

// Settings is the optional start-up configuration of a counter session.
type Settings struct {
	Step          int  `yaml:"step" validate:"min=1"`
	UpperLimit    int  `yaml:"upper_limit" validate:"gtefield=LowerLimit"`
	LowerLimit    int  `yaml:"lower_limit"`
	AllowNegative bool `yaml:"allow_negative"`
	DarkMode      bool `yaml:"dark_mode"`
}

// DefaultSettings mirrors the values a session starts with when no file is given.
func DefaultSettings() Settings {
	d := counter.DefaultSettings()
	return Settings{
		Step:          d.Step,
		UpperLimit:    d.UpperLimit,
		LowerLimit:    d.LowerLimit,
		AllowNegative: d.AllowNegative,
		DarkMode:      d.DarkMode,
	}
}

// Counter converts the settings into the counter package representation.
func (s Settings) Counter() counter.Settings {
	return counter.Settings{
		Step:          s.Step,
		UpperLimit:    s.UpperLimit,
		LowerLimit:    s.LowerLimit,
		AllowNegative: s.AllowNegative,
		DarkMode:      s.DarkMode,
	}
}
