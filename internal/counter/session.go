package counter

// Notifier displays a message to the user. Implementations are expected to
// block until the message has been shown.
type Notifier interface {
	Notify(message string)
}

// NotifierFunc adapts a function to the Notifier interface.
type NotifierFunc func(message string)

// Notify implements Notifier.
func (f NotifierFunc) Notify(message string) {
	f(message)
}

// Session pairs a State with the notifier used for informational messages.
type Session struct {
	state    *State
	notifier Notifier
}

// NewSession creates a Session. A nil notifier discards messages.
func NewSession(state *State, notifier Notifier) *Session {
	if state == nil {
		state = New()
	}
	if notifier == nil {
		notifier = NotifierFunc(func(string) {})
	}
	return &Session{state: state, notifier: notifier}
}

// State returns the session's counter state.
func (s *Session) State() *State {
	return s.state
}

// ShowInfo sends the application description to the notifier.
func (s *Session) ShowInfo() {
	s.notifier.Notify(s.state.InfoText())
}

// ShowHistory sends the action log to the notifier.
func (s *Session) ShowHistory() {
	s.notifier.Notify(s.state.HistoryText())
}

// ShareCount sends the shareable count sentence to the notifier.
func (s *Session) ShareCount() {
	s.notifier.Notify(s.state.ShareText())
}
