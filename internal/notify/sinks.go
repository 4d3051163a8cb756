package notify

import (
	"fmt"
	"io"
	"sync"

	"github.com/MrSnakeDoc/backoffice/internal/logger"
)

var icons = map[Severity]string{
	SeveritySuccess: "✅",
	SeverityInfo:    "ℹ️ ",
	SeverityWarning: "⚠️ ",
	SeverityError:   "❌",
}

// Printer writes one line per notification, the terminal stand-in for a
// toast.
type Printer struct {
	mu sync.Mutex
	w  io.Writer
}

func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

func (p *Printer) Notify(n Notification) {
	p.mu.Lock()
	defer p.mu.Unlock()
	_, _ = fmt.Fprintf(p.w, "%s %s\n", icons[n.Severity], n.Message)
}

// LogNotifier forwards notifications to the structured logger.
type LogNotifier struct {
	log logger.Logger
}

func NewLogNotifier(log logger.Logger) *LogNotifier {
	return &LogNotifier{log: log}
}

func (l *LogNotifier) Notify(n Notification) {
	switch n.Severity {
	case SeverityError:
		l.log.Error("notification", logger.String("severity", string(n.Severity)), logger.String("message", n.Message))
	case SeverityWarning:
		l.log.Warn("notification", logger.String("severity", string(n.Severity)), logger.String("message", n.Message))
	default:
		l.log.Info("notification", logger.String("severity", string(n.Severity)), logger.String("message", n.Message))
	}
}

// Recorder keeps every notification in order.
type Recorder struct {
	mu    sync.Mutex
	items []Notification
}

func (r *Recorder) Notify(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = append(r.items, n)
}

// All returns a copy of the recorded notifications.
func (r *Recorder) All() []Notification {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Notification(nil), r.items...)
}

// Last returns the most recent notification.
func (r *Recorder) Last() (Notification, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.items) == 0 {
		return Notification{}, false
	}
	return r.items[len(r.items)-1], true
}

// Reset forgets everything recorded so far.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.items = nil
}

// Multi fans a notification out to several sinks.
type Multi []Notifier

func (m Multi) Notify(n Notification) {
	for _, s := range m {
		if s != nil {
			s.Notify(n)
		}
	}
}

// Discard drops every notification.
var Discard Notifier = NotifierFunc(func(Notification) {})
