package counter

// Category is the presentation tag derived from the current count.
type Category string

const (
	CategoryReset  Category = "reset"
	CategoryHigh   Category = "high"
	CategoryLow    Category = "low"
	CategoryNormal Category = "normal"
)

// highThreshold is the fraction of the upper limit from which a count is
// considered high.
const highThreshold = 0.7

// Category classifies the current count. Zero takes precedence over every
// other rule, including an upper limit of zero.
func (s *State) Category() Category {
	switch {
	case s.count == 0:
		return CategoryReset
	case float64(s.count) >= float64(s.upperLimit)*highThreshold:
		return CategoryHigh
	case s.count < 0 && !s.allowNegative:
		// Decrement never produces this combination; kept for states
		// reached through future transitions.
		return CategoryLow
	default:
		return CategoryNormal
	}
}

// CanIncrement reports whether the increment control should be enabled.
func (s *State) CanIncrement() bool {
	return s.count < s.upperLimit
}

// CanDecrement reports whether the decrement control should be enabled.
func (s *State) CanDecrement() bool {
	return s.allowNegative || s.count > s.lowerLimit
}
