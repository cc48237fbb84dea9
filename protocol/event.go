package protocol

// Event types.
const (
	TypeProgress = "progress"
	TypeResult   = "result"
	TypeError    = "error"
)

// Event is one output line. Type is always present; the other
// fields are omitted when they do not apply to the type.
type Event struct {
	Type    string `json:"type"`
	Percent *int   `json:"percent,omitempty"`
	Message string `json:"message,omitempty"`
	Data    string `json:"data,omitempty"`
}

// ProgressEvent builds a progress event.
func ProgressEvent(percent int, message string) Event {
	return Event{
		Type:    TypeProgress,
		Percent: &percent,
		Message: message,
	}
}

// ResultEvent builds a result event carrying a hex digest.
func ResultEvent(digest string) Event {
	return Event{Type: TypeResult, Data: digest}
}

// ErrorEvent builds an error event.
func ErrorEvent(message string) Event {
	return Event{Type: TypeError, Message: message}
}

// IsTerminal reports whether e ends the output stream.
func (e Event) IsTerminal() bool {
	return e.Type == TypeResult || e.Type == TypeError
}
