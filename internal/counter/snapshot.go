package counter

// Snapshot is an immutable copy of a State, suitable for rendering or
// serialisation.
type Snapshot struct {
	Count         int      `yaml:"count"`
	Step          int      `yaml:"step"`
	UpperLimit    int      `yaml:"upper_limit"`
	LowerLimit    int      `yaml:"lower_limit"`
	AllowNegative bool     `yaml:"allow_negative"`
	DarkMode      bool     `yaml:"dark_mode"`
	Category      Category `yaml:"category"`
	CanIncrement  bool     `yaml:"can_increment"`
	CanDecrement  bool     `yaml:"can_decrement"`
	History       []string `yaml:"history"`
}

// Snapshot captures the current state together with its derived values.
func (s *State) Snapshot() Snapshot {
	return Snapshot{
		Count:         s.count,
		Step:          s.step,
		UpperLimit:    s.upperLimit,
		LowerLimit:    s.lowerLimit,
		AllowNegative: s.allowNegative,
		DarkMode:      s.isDarkMode,
		Category:      s.Category(),
		CanIncrement:  s.CanIncrement(),
		CanDecrement:  s.CanDecrement(),
		History:       s.History(),
	}
}
