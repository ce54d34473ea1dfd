package widget

// Status is the outcome of one exchange.
type Status int

const (
	// StatusReply means the server answered with a reply.
	StatusReply Status = iota
	// StatusNoReply means the response decoded but carried no reply.
	StatusNoReply
	// StatusFailed means the request or the body decoding failed.
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusReply:
		return "reply"
	case StatusNoReply:
		return "no_reply"
	case StatusFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Result is what an exchange produced. Reply and ConversationID are set only
// for StatusReply, Err only for StatusFailed. ConversationID may be empty
// when the server returned none.
type Result struct {
	Status         Status
	Reply          string
	ConversationID string
	Err            error
}
