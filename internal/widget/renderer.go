package widget

import "sync"

// Renderer is the display surface of the widget. Render appends a message to
// the visible log and keeps the newest entry in view.
type Renderer interface {
	Render(msg Message)
	ShowTyping()
	HideTyping()
}

// Transcript is an in-memory Renderer. The terminal view draws from it and
// tests inspect it.
type Transcript struct {
	mu       sync.RWMutex
	messages []Message
	typing   int
	onChange func()
}

func NewTranscript() *Transcript {
	return &Transcript{}
}

// OnChange registers fn to run after every mutation, outside the lock.
func (t *Transcript) OnChange(fn func()) {
	t.mu.Lock()
	t.onChange = fn
	t.mu.Unlock()
}

func (t *Transcript) Render(msg Message) {
	t.mu.Lock()
	t.messages = append(t.messages, msg)
	fn := t.onChange
	t.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// ShowTyping adds one placeholder. Each pending exchange owns one.
func (t *Transcript) ShowTyping() {
	t.mu.Lock()
	t.typing++
	fn := t.onChange
	t.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// HideTyping removes one placeholder, if any is showing.
func (t *Transcript) HideTyping() {
	t.mu.Lock()
	if t.typing > 0 {
		t.typing--
	}
	fn := t.onChange
	t.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// Messages returns a copy of the log, oldest first.
func (t *Transcript) Messages() []Message {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return append([]Message(nil), t.messages...)
}

func (t *Transcript) Typing() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.typing > 0
}

// Placeholders reports how many typing placeholders are showing.
func (t *Transcript) Placeholders() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.typing
}
