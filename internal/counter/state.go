package counter

import (
	"fmt"
	"math"
	"strings"
)

// Default values used when a session starts.
const (
	DefaultStep          = 1
	DefaultUpperLimit    = 10
	DefaultLowerLimit    = 0
	DefaultAllowNegative = true
)

const (
	infoMessage      = "This is a counter application. You can increment, decrement, and reset the count. Use the buttons to interact with it!"
	historyHeader    = "Count History:\n"
	emptyHistoryText = "No history available."
	resetEntry       = "Reset"
)

// Settings carries the tunable parameters a State can be created with.
type Settings struct {
	Step          int
	UpperLimit    int
	LowerLimit    int
	AllowNegative bool
	DarkMode      bool
}

// DefaultSettings returns the settings of a freshly started session.
func DefaultSettings() Settings {
	return Settings{
		Step:          DefaultStep,
		UpperLimit:    DefaultUpperLimit,
		LowerLimit:    DefaultLowerLimit,
		AllowNegative: DefaultAllowNegative,
	}
}

// State owns the counter value, its limits and the action history.
// It is not safe for concurrent use.
type State struct {
	count         int
	step          int
	upperLimit    int
	lowerLimit    int
	allowNegative bool
	isDarkMode    bool
	history       []string
}

// New returns a State initialised with DefaultSettings.
func New() *State {
	return NewWithSettings(DefaultSettings())
}

// NewWithSettings returns a State configured from settings. Values go through
// the regular setters, so a step below one or crossed limits are normalised
// the same way user input would be.
func NewWithSettings(settings Settings) *State {
	s := &State{
		step:          DefaultStep,
		upperLimit:    DefaultUpperLimit,
		lowerLimit:    DefaultLowerLimit,
		allowNegative: settings.AllowNegative,
		isDarkMode:    settings.DarkMode,
		history:       make([]string, 0),
	}

	s.SetStep(settings.Step)
	// Widen before narrowing so the second setter never clamps against a
	// default the caller did not ask for.
	if settings.LowerLimit > s.upperLimit {
		s.SetUpperLimit(settings.UpperLimit)
		s.SetLowerLimit(settings.LowerLimit)
	} else {
		s.SetLowerLimit(settings.LowerLimit)
		s.SetUpperLimit(settings.UpperLimit)
	}

	return s
}

// Increment adds step to the count when the result stays within the upper
// limit. It reports whether the count changed.
func (s *State) Increment() bool {
	if !spans(s.count, s.upperLimit, s.step) {
		return false
	}
	s.count += s.step
	s.record(fmt.Sprintf("Incremented by %d", s.step))
	return true
}

// Decrement subtracts step from the count. The lower limit only applies when
// negative values are disallowed; otherwise the count may fall as far as
// math.MinInt. It reports whether the count changed.
func (s *State) Decrement() bool {
	floor := s.lowerLimit
	if s.allowNegative {
		floor = math.MinInt
	}
	if !spans(floor, s.count, s.step) {
		return false
	}
	s.count -= s.step
	s.record(fmt.Sprintf("Decremented by %d", s.step))
	return true
}

// Reset sets the count back to zero.
func (s *State) Reset() {
	s.count = 0
	s.record(resetEntry)
}

// SetStep sets the step size, never below one.
func (s *State) SetStep(v int) {
	s.step = max(1, v)
}

// SetUpperLimit sets the upper limit, never below the current lower limit.
func (s *State) SetUpperLimit(v int) {
	s.upperLimit = max(s.lowerLimit, v)
}

// SetLowerLimit sets the lower limit, never above the current upper limit.
func (s *State) SetLowerLimit(v int) {
	s.lowerLimit = min(s.upperLimit, v)
}

// SetStepText parses raw field input and applies it with SetStep.
func (s *State) SetStepText(raw string) {
	s.SetStep(ParseInput(raw))
}

// SetUpperLimitText parses raw field input and applies it with SetUpperLimit.
func (s *State) SetUpperLimitText(raw string) {
	s.SetUpperLimit(ParseInput(raw))
}

// SetLowerLimitText parses raw field input and applies it with SetLowerLimit.
func (s *State) SetLowerLimitText(raw string) {
	s.SetLowerLimit(ParseInput(raw))
}

// ToggleAllowNegative flips the negative-value policy.
func (s *State) ToggleAllowNegative() {
	s.allowNegative = !s.allowNegative
}

// ToggleDarkMode flips the theme flag.
func (s *State) ToggleDarkMode() {
	s.isDarkMode = !s.isDarkMode
}

func (s *State) Count() int          { return s.count }
func (s *State) Step() int           { return s.step }
func (s *State) UpperLimit() int     { return s.upperLimit }
func (s *State) LowerLimit() int     { return s.lowerLimit }
func (s *State) AllowNegative() bool { return s.allowNegative }
func (s *State) IsDarkMode() bool    { return s.isDarkMode }
func (s *State) HistoryLen() int     { return len(s.history) }

// History returns a copy of the action log in insertion order.
func (s *State) History() []string {
	out := make([]string, len(s.history))
	copy(out, s.history)
	return out
}

// InfoText describes the application.
func (s *State) InfoText() string {
	return infoMessage
}

// HistoryText renders the action log one entry per line.
func (s *State) HistoryText() string {
	if len(s.history) == 0 {
		return historyHeader + emptyHistoryText
	}
	return historyHeader + strings.Join(s.history, "\n")
}

// ShareText embeds the current count in a shareable sentence.
func (s *State) ShareText() string {
	return fmt.Sprintf("Current Count: %d. Share this value!", s.count)
}

// spans reports whether hi-lo >= step for a positive step. A wrapped
// difference means the real one exceeds math.MaxInt.
func spans(lo, hi, step int) bool {
	if hi < lo {
		return false
	}
	diff := hi - lo
	return diff < 0 || diff >= step
}

func (s *State) record(entry string) {
	s.history = append(s.history, entry)
}
