package widget

type Sender string

const (
	SenderUser Sender = "user"
	SenderAI   Sender = "ai"
)

// Message is one bubble in the chat log. Messages are never edited once
// rendered.
type Message struct {
	Text   string
	Sender Sender
}
