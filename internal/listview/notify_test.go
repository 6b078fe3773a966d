package listview

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifier_AutoDismiss(t *testing.T) {
	n := NewNotifier(30 * time.Millisecond)
	n.Success("saved")

	note, ok := n.Current()
	require.True(t, ok)
	assert.Equal(t, NoticeSuccess, note.Kind)
	assert.Equal(t, "saved", note.Message)

	time.Sleep(60 * time.Millisecond)
	_, ok = n.Current()
	assert.False(t, ok, "notification should auto-dismiss after the ttl")
}

func TestNotifier_ReplacementRestartsTimer(t *testing.T) {
	n := NewNotifier(50 * time.Millisecond)
	n.Error("first")

	time.Sleep(30 * time.Millisecond)
	n.Success("second")

	// past the first ttl but within the second
	time.Sleep(30 * time.Millisecond)
	note, ok := n.Current()
	require.True(t, ok, "replacement must restart the dismiss timer")
	assert.Equal(t, "second", note.Message)

	time.Sleep(40 * time.Millisecond)
	_, ok = n.Current()
	assert.False(t, ok)
}

func TestNotifier_ExplicitDismiss(t *testing.T) {
	n := NewNotifier(time.Minute)
	n.Error("boom")
	n.Dismiss()

	_, ok := n.Current()
	assert.False(t, ok)
}

func TestNotifier_StaleTimerDoesNotClearNewerNotification(t *testing.T) {
	n := NewNotifier(20 * time.Millisecond)
	n.Success("first")
	n.Success("replacement")

	time.Sleep(10 * time.Millisecond)
	note, ok := n.Current()
	require.True(t, ok)
	assert.Equal(t, "replacement", note.Message)
}
