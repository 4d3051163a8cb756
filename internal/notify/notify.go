// Package notify turns HTTP outcomes into user-facing notifications.
//
// Classify is pure: given the method, URL, status and body of a completed
// request it decides whether anything is shown, with which severity and
// which copy. Sinks (Printer, LogNotifier, Recorder) only display.
package notify

import (
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"unicode"
	"unicode/utf8"
)

type Severity string

const (
	SeveritySuccess Severity = "success"
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Notification is one toast-style message.
type Notification struct {
	Severity Severity
	Message  string
}

// Fixed copy.
const (
	MsgUnexpected     = "An unexpected error occurred."
	MsgUnauthorized   = "Unauthorized. Please log in again."
	MsgForbidden      = "Access denied."
	MsgNotFound       = "Resource not found."
	MsgInternal       = "Internal server error."
	MsgNoResponse     = "No response from server. Check your internet connection."
	MsgSetup          = "Request setup error."
	MsgNotImplemented = "🚧 This feature isn't implemented yet—but don't worry! You can request it in your next prompt! 🚀"
	MsgMissingFields  = "Please fill in all required fields"
	fallbackEntity    = "Entity"
)

// Notifier receives notifications. Implementations must be safe for
// concurrent use.
type Notifier interface {
	Notify(n Notification)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(Notification)

func (f NotifierFunc) Notify(n Notification) { f(n) }

// Classify maps a completed request to its notification. The boolean is
// false when nothing should be shown (successful reads).
func Classify(method, rawURL string, status int, body []byte) (Notification, bool) {
	msg := bodyMessage(body)

	if status >= 200 && status < 300 {
		if !isMutation(method) {
			return Notification{}, false
		}
		if msg == "" {
			msg = Mutation(EntityFromURL(rawURL), method)
		}
		return Notification{Severity: SeveritySuccess, Message: msg}, true
	}

	switch status {
	case http.StatusBadRequest:
		return Notification{Severity: SeverityWarning, Message: orDefault(msg, MsgUnexpected)}, true
	case http.StatusUnauthorized:
		return Notification{Severity: SeverityError, Message: orDefault(msg, MsgUnauthorized)}, true
	case http.StatusForbidden:
		return Notification{Severity: SeverityError, Message: orDefault(msg, MsgForbidden)}, true
	case http.StatusNotFound:
		return Notification{Severity: SeverityInfo, Message: orDefault(msg, MsgNotFound)}, true
	case http.StatusInternalServerError:
		return Notification{Severity: SeverityError, Message: orDefault(msg, MsgInternal)}, true
	default:
		return Notification{Severity: SeverityError, Message: orDefault(msg, MsgUnexpected)}, true
	}
}

// Mutation builds the success copy for a mutating method on entity,
// ex: "Blog created successfully.".
func Mutation(entity, method string) string {
	if entity == "" {
		entity = fallbackEntity
	}
	return entity + " " + verb(method) + " successfully."
}

// NoResponse is shown when the request was sent but nothing came back.
func NoResponse() Notification {
	return Notification{Severity: SeverityError, Message: MsgNoResponse}
}

// SetupError is shown when the request could not be built.
func SetupError(err error) Notification {
	if err == nil {
		return Notification{Severity: SeverityError, Message: MsgSetup}
	}
	return Notification{Severity: SeverityError, Message: strings.TrimSuffix(MsgSetup, ".") + ": " + err.Error()}
}

// NotImplemented is the notice of the deliberate stub actions.
func NotImplemented() Notification {
	return Notification{Severity: SeverityInfo, Message: MsgNotImplemented}
}

// MissingFields warns about an incomplete form.
func MissingFields() Notification {
	return Notification{Severity: SeverityWarning, Message: MsgMissingFields}
}

// EntityFromURL derives the display entity from the first path segment after
// the "api" segment (or the first segment when there is none): capitalized,
// with one trailing "s" stripped. "/api/blogs/3" gives "Blog".
func EntityFromURL(rawURL string) string {
	path := rawURL
	if u, err := url.Parse(rawURL); err == nil {
		path = u.Path
	}

	var segments []string
	for _, s := range strings.Split(path, "/") {
		if s != "" {
			segments = append(segments, s)
		}
	}

	segment := ""
	for i, s := range segments {
		if s == "api" && i+1 < len(segments) {
			segment = segments[i+1]
			break
		}
	}
	if segment == "" && len(segments) > 0 && segments[0] != "api" {
		segment = segments[0]
	}
	if segment == "" {
		return fallbackEntity
	}

	segment = strings.TrimSuffix(segment, "s")
	if segment == "" {
		return fallbackEntity
	}
	r, size := utf8.DecodeRuneInString(segment)
	return string(unicode.ToUpper(r)) + segment[size:]
}

func isMutation(method string) bool {
	switch strings.ToUpper(method) {
	case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
		return true
	}
	return false
}

func verb(method string) string {
	switch strings.ToUpper(method) {
	case http.MethodPost:
		return "created"
	case http.MethodPut, http.MethodPatch:
		return "updated"
	case http.MethodDelete:
		return "deleted"
	}
	return "processed"
}

func bodyMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var payload struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	return strings.TrimSpace(payload.Message)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
