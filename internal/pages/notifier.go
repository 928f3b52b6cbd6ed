package pages

import (
	"sync"
	"time"

	log "github.com/sirupsen/logrus"
)

// Notifier is the stand-in for the UI toast: every failed or finished
// operation is surfaced through it and nowhere else.
type Notifier interface {
	Success(message string)
	Error(message string)
}

type Notice struct {
	Level   string    `json:"level"`
	Message string    `json:"message"`
	At      time.Time `json:"at"`
}

// LogNotifier logs notices and keeps the most recent ones around, the way the
// reference UI keeps a transient toast on screen.
type LogNotifier struct {
	mu      sync.Mutex
	notices []Notice
}

const maxKeptNotices = 20

func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

func (n *LogNotifier) Success(message string) {
	log.Infof("notify: %s", message)
	n.keep("success", message)
}

func (n *LogNotifier) Error(message string) {
	log.Errorf("notify: %s", message)
	n.keep("error", message)
}

func (n *LogNotifier) Notices() []Notice {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]Notice, len(n.notices))
	copy(out, n.notices)
	return out
}

func (n *LogNotifier) keep(level, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.notices = append(n.notices, Notice{
		Level:   level,
		Message: message,
		At:      time.Now(),
	})
	if len(n.notices) > maxKeptNotices {
		n.notices = n.notices[len(n.notices)-maxKeptNotices:]
	}
}
