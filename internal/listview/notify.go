package listview

import (
	"sync"
	"time"
)

// Notification kinds.
const (
	NoticeSuccess = "success"
	NoticeError   = "error"
)

// DefaultNoticeTTL matches the banner auto-dismiss delay of the admin UI.
const DefaultNoticeTTL = 5 * time.Second

// Notification is one transient banner message.
type Notification struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

// Notifier holds at most one transient notification. Setting a new message
// replaces the current one and restarts the auto-dismiss timer; an explicit
// dismissal clears immediately regardless of timer state.
type Notifier struct {
	mu      sync.Mutex
	current *Notification
	timer   *time.Timer
	ttl     time.Duration
}

// NewNotifier creates a notifier with the given auto-dismiss delay.
// A non-positive ttl falls back to DefaultNoticeTTL.
func NewNotifier(ttl time.Duration) *Notifier {
	if ttl <= 0 {
		ttl = DefaultNoticeTTL
	}
	return &Notifier{ttl: ttl}
}

// Success sets a success notification.
func (n *Notifier) Success(message string) {
	n.set(NoticeSuccess, message)
}

// Error sets an error notification.
func (n *Notifier) Error(message string) {
	n.set(NoticeError, message)
}

func (n *Notifier) set(kind, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()

	if n.timer != nil {
		n.timer.Stop()
	}
	note := &Notification{Kind: kind, Message: message}
	n.current = note
	n.timer = time.AfterFunc(n.ttl, func() {
		n.mu.Lock()
		defer n.mu.Unlock()
		// only clear if this notification is still the current one
		if n.current == note {
			n.current = nil
		}
	})
}

// Current returns the active notification, or ok=false when none is shown.
func (n *Notifier) Current() (Notification, bool) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.current == nil {
		return Notification{}, false
	}
	return *n.current, true
}

// Dismiss clears the current notification immediately.
func (n *Notifier) Dismiss() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.timer != nil {
		n.timer.Stop()
		n.timer = nil
	}
	n.current = nil
}
