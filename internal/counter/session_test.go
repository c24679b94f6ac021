package counter

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingNotifier struct {
	messages []string
}

func (r *recordingNotifier) Notify(message string) {
	r.messages = append(r.messages, message)
}

func TestSessionForwardsProjections(t *testing.T) {
	t.Parallel()

	rec := &recordingNotifier{}
	session := NewSession(New(), rec)

	session.ShowInfo()
	session.ShowHistory()
	session.State().Increment()
	session.ShareCount()
	session.ShowHistory()

	require.Equal(t, []string{
		session.State().InfoText(),
		"Count History:\nNo history available.",
		"Current Count: 1. Share this value!",
		"Count History:\nIncremented by 1",
	}, rec.messages)
}

func TestSessionNotificationsDoNotMutateState(t *testing.T) {
	t.Parallel()

	session := NewSession(nil, nil)
	session.ShowInfo()
	session.ShowHistory()
	session.ShareCount()

	require.Zero(t, session.State().Count())
	require.Zero(t, session.State().HistoryLen())
}

func TestNotifierFunc(t *testing.T) {
	t.Parallel()

	var got string
	NotifierFunc(func(msg string) { got = msg }).Notify("hello")
	require.Equal(t, "hello", got)
}
