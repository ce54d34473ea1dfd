// Package plain renders the chat as lines of text, for pipes and dumb
// terminals.
package plain

import (
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/soulnest/soulnest/internal/widget"
)

const (
	userPrefix = "you> "
	aiPrefix   = "soulnest> "
)

// Renderer writes each message as it is rendered. A line cannot be taken
// back, so the typing placeholder is printed once per exchange and hiding it
// only updates the count.
type Renderer struct {
	mu          sync.Mutex
	out         io.Writer
	typingLabel string
	typing      int
}

func NewRenderer(out io.Writer, typingLabel string) *Renderer {
	return &Renderer{out: out, typingLabel: typingLabel}
}

func (r *Renderer) Render(msg widget.Message) {
	prefix := aiPrefix
	if msg.Sender == widget.SenderUser {
		prefix = userPrefix
	}
	indent := strings.Repeat(" ", len(prefix))

	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.out, prefix+strings.ReplaceAll(msg.Text, "\n", "\n"+indent))
}

func (r *Renderer) ShowTyping() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.typing++
	fmt.Fprintln(r.out, "  "+r.typingLabel)
}

func (r *Renderer) HideTyping() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.typing > 0 {
		r.typing--
	}
}

func (r *Renderer) Typing() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.typing > 0
}
