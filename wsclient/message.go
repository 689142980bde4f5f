package wsclient

// Wire field names and markers for the control protocol.
const (
	fieldCommand = "command"
	fieldType    = "type"
	fieldStatus  = "status"
	fieldResult  = "result"
	fieldError   = "error"

	typeResponse = "response"
	statusError  = "error"
)

// Message is one decoded inbound frame: an opaque JSON document. The client
// attaches no meaning to its contents beyond the type/status/result/error
// conventions used by Invoke; notifications may carry any shape at all.
type Message map[string]any

// Type returns the message's "type" field, or "" if absent or not a string.
func (m Message) Type() string {
	return m.str(fieldType)
}

// Status returns the message's "status" field, or "" if absent or not a string.
func (m Message) Status() string {
	return m.str(fieldStatus)
}

// IsResponse reports whether this message is a solicited command response,
// as opposed to a server-originated notification.
func (m Message) IsResponse() bool {
	return m.Type() == typeResponse
}

func (m Message) str(field string) string {
	s, _ := m[field].(string)
	return s
}

// clone returns a shallow copy. Top-level keys may be added to the copy
// without affecting the original.
func (m Message) clone() Message {
	out := make(Message, len(m)+1)
	for k, v := range m {
		out[k] = v
	}
	return out
}
