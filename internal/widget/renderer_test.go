package widget

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTranscript(t *testing.T) {
	tr := NewTranscript()
	changes := 0
	tr.OnChange(func() { changes++ })

	tr.Render(Message{Text: "a", Sender: SenderUser})
	tr.ShowTyping()
	tr.ShowTyping()
	assert.Equal(t, 2, tr.Placeholders())

	tr.HideTyping()
	assert.True(t, tr.Typing())
	tr.HideTyping()
	tr.HideTyping()
	assert.False(t, tr.Typing())
	assert.Equal(t, 0, tr.Placeholders())

	tr.Render(Message{Text: "", Sender: SenderAI})
	assert.Equal(t, []Message{{Text: "a", Sender: SenderUser}, {Text: "", Sender: SenderAI}}, tr.Messages())
	assert.Equal(t, 7, changes)

	snapshot := tr.Messages()
	snapshot[0].Text = "changed"
	assert.Equal(t, "a", tr.Messages()[0].Text)
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "reply", StatusReply.String())
	assert.Equal(t, "no_reply", StatusNoReply.String())
	assert.Equal(t, "failed", StatusFailed.String())
	assert.Equal(t, "unknown", Status(42).String())
}
