package widget

// Session is the conversation state carried between exchanges. The zero value
// has no conversation.
type Session struct {
	ConversationID string
}

func (s Session) HasConversation() bool {
	return s.ConversationID != ""
}

// conversationID is nil without a conversation so the request carries null.
func (s Session) conversationID() *string {
	if !s.HasConversation() {
		return nil
	}
	id := s.ConversationID
	return &id
}
