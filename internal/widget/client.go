package widget

import (
	"context"
	"strings"
	"time"

	"github.com/soulnest/soulnest/internal/config"
	"github.com/soulnest/soulnest/pkg/logger"
)

// Texts are the fixed strings the widget shows without asking the server.
type Texts struct {
	Greeting     string
	Fallback     string
	Connectivity string
	Typing       string
}

func DefaultTexts() Texts {
	return Texts{
		Greeting:     "Hey 🤍 main yahin hoon.\nJo bhi dil me hai, bina dare likh do.",
		Fallback:     "Thoda sa issue aa gaya 😔 phir try karo.",
		Connectivity: "Server se connect nahi ho pa raha 💔\nThodi der baad try karo.",
		Typing:       "SoulNest is typing…",
	}
}

type Option func(*Client)

// WithUserID sets the user_id sent with every request.
func WithUserID(userID string) Option {
	return func(c *Client) {
		if userID != "" {
			c.userID = userID
		}
	}
}

// WithTexts overrides the fixed texts. Empty fields keep their defaults.
func WithTexts(t Texts) Option {
	return func(c *Client) {
		if t.Greeting != "" {
			c.texts.Greeting = t.Greeting
		}
		if t.Fallback != "" {
			c.texts.Fallback = t.Fallback
		}
		if t.Connectivity != "" {
			c.texts.Connectivity = t.Connectivity
		}
		if t.Typing != "" {
			c.texts.Typing = t.Typing
		}
	}
}

// Client runs chat exchanges and reflects them on a Renderer. Submit and
// Complete touch the renderer and belong on the UI loop. Pending.Do only talks
// to the transport and may run anywhere.
type Client struct {
	transport Transport
	renderer  Renderer
	userID    string
	texts     Texts
}

func NewClient(transport Transport, renderer Renderer, opts ...Option) *Client {
	c := &Client{
		transport: transport,
		renderer:  renderer,
		userID:    config.DefaultWidgetUserID,
		texts:     DefaultTexts(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Texts() Texts {
	return c.texts
}

func (c *Client) UserID() string {
	return c.userID
}

// Pending is a submitted message whose request has not been sent yet.
type Pending struct {
	client *Client
	text   string
}

// Text is the trimmed message that will be sent.
func (p *Pending) Text() string {
	return p.text
}

// Submit trims text and, unless it is blank, renders it as the user's message
// and shows the typing placeholder. Blank input renders nothing and returns
// false.
func (c *Client) Submit(text string) (*Pending, bool) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil, false
	}

	c.renderer.Render(Message{Text: trimmed, Sender: SenderUser})
	c.renderer.ShowTyping()
	return &Pending{client: c, text: trimmed}, true
}

// Do sends the request for sess and classifies the outcome. It makes exactly
// one attempt.
func (p *Pending) Do(ctx context.Context, sess Session) Result {
	req := ChatRequest{
		Message:        p.text,
		ConversationID: sess.conversationID(),
		UserID:         p.client.userID,
	}

	resp, err := p.client.transport.Exchange(ctx, req)
	if err != nil {
		return Result{Status: StatusFailed, Err: err}
	}
	if resp.Message == "" {
		return Result{Status: StatusNoReply}
	}
	return Result{
		Status:         StatusReply,
		Reply:          resp.Message,
		ConversationID: resp.ConversationID,
	}
}

// Complete removes the placeholder, renders the outcome and returns the
// session for the next exchange. Only a reply replaces the session, with
// whatever identifier the server sent back.
func (c *Client) Complete(sess Session, res Result) Session {
	c.renderer.HideTyping()

	switch res.Status {
	case StatusReply:
		c.renderer.Render(Message{Text: res.Reply, Sender: SenderAI})
		return Session{ConversationID: res.ConversationID}
	case StatusNoReply:
		logger.Warn(logger.WIDGET, "Response carried no reply")
		c.renderer.Render(Message{Text: c.texts.Fallback, Sender: SenderAI})
		return sess
	default:
		logger.Error(logger.WIDGET, "Chat request failed: %v", res.Err)
		c.renderer.Render(Message{Text: c.texts.Connectivity, Sender: SenderAI})
		return sess
	}
}

// Send runs a whole exchange synchronously. It returns false, with sess
// unchanged, for blank input.
func (c *Client) Send(ctx context.Context, sess Session, text string) (Session, Result, bool) {
	pending, ok := c.Submit(text)
	if !ok {
		return sess, Result{}, false
	}
	res := pending.Do(ctx, sess)
	return c.Complete(sess, res), res, true
}

// Greet renders the canned greeting. No request is made.
func (c *Client) Greet() {
	c.renderer.Render(Message{Text: c.texts.Greeting, Sender: SenderAI})
}

// GreetAfter waits for delay, then greets. It returns false without greeting
// if ctx ends first.
func (c *Client) GreetAfter(ctx context.Context, delay time.Duration) bool {
	timer := time.NewTimer(delay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		c.Greet()
		return true
	}
}
