// Package terminal is the full-screen chat view: a scrolling log above an
// input line.
package terminal

import (
	"context"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/soulnest/soulnest/internal/widget"
	"github.com/soulnest/soulnest/pkg/logger"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	// title, input box and help line
	chromeHeight = 6
)

type greetMsg struct{}

type exchangeDoneMsg struct {
	result widget.Result
}

// Model is the bubbletea model. The transcript is the client's renderer, so
// every client call shows up in the next View.
type Model struct {
	ctx        context.Context
	client     *widget.Client
	transcript *widget.Transcript
	session    widget.Session
	greetDelay time.Duration

	viewport viewport.Model
	input    textinput.Model
	spinner  spinner.Model

	markdown *glamour.TermRenderer
	rendered map[string]string

	width  int
	height int
}

func New(ctx context.Context, transport widget.Transport, greetDelay time.Duration, opts ...widget.Option) Model {
	transcript := widget.NewTranscript()
	client := widget.NewClient(transport, transcript, opts...)

	ti := textinput.New()
	ti.Placeholder = "Jo bhi dil me hai…"
	ti.Prompt = "› "
	ti.CharLimit = 2000
	ti.Focus()

	sp := spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(typingStyle))

	m := Model{
		ctx:        ctx,
		client:     client,
		transcript: transcript,
		greetDelay: greetDelay,
		viewport:   viewport.New(defaultWidth, defaultHeight-chromeHeight),
		input:      ti,
		spinner:    sp,
		rendered:   make(map[string]string),
	}
	m.resize(defaultWidth, defaultHeight)
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
		tea.Tick(m.greetDelay, func(time.Time) tea.Msg { return greetMsg{} }),
	)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		m.refresh()
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			cmd := m.submit()
			return m, cmd
		case "pgup", "pgdown", "up", "down":
			var cmd tea.Cmd
			m.viewport, cmd = m.viewport.Update(msg)
			return m, cmd
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd

	case greetMsg:
		m.client.Greet()
		m.refresh()
		return m, nil

	case exchangeDoneMsg:
		m.session = m.client.Complete(m.session, msg.result)
		m.refresh()
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		if m.transcript.Typing() {
			m.refresh()
		}
		return m, cmd
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// submit hands the input to the client and returns the command that runs
// the request off the UI loop. The session is captured now, as the request
// is built from it.
func (m *Model) submit() tea.Cmd {
	pending, ok := m.client.Submit(m.input.Value())
	m.input.Reset()
	if !ok {
		return nil
	}
	m.refresh()

	ctx, sess := m.ctx, m.session
	return func() tea.Msg {
		return exchangeDoneMsg{result: pending.Do(ctx, sess)}
	}
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("SoulNest 🤍"))
	b.WriteString("\n")
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(inputStyle.Width(m.width - 2).Render(m.input.View()))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render("enter send • ↑/↓ scroll • esc quit"))
	return b.String()
}

// Session is the session the next submission will use.
func (m Model) Session() widget.Session {
	return m.session
}

func (m Model) Transcript() *widget.Transcript {
	return m.transcript
}

func (m *Model) resize(width, height int) {
	m.width, m.height = width, height
	m.viewport.Width = width
	m.viewport.Height = max(height-chromeHeight, 3)
	m.input.Width = max(width-8, 10)

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(max(width*3/4-4, 20)),
	)
	if err != nil {
		logger.Warn(logger.WIDGET, "Markdown renderer unavailable: %v", err)
		r = nil
	}
	m.markdown = r
	m.rendered = make(map[string]string)
}

// refresh redraws the log and keeps the newest entry in view.
func (m *Model) refresh() {
	m.viewport.SetContent(m.renderLog())
	m.viewport.GotoBottom()
}

func (m *Model) renderLog() string {
	var lines []string
	for _, msg := range m.transcript.Messages() {
		if msg.Sender == widget.SenderUser {
			bubble := userBubbleStyle.MaxWidth(m.width * 3 / 4).Render(msg.Text)
			lines = append(lines, lipgloss.PlaceHorizontal(m.width, lipgloss.Right, bubble))
			continue
		}
		lines = append(lines, aiBubbleStyle.Render(m.renderMarkdown(msg.Text)))
	}

	label := m.client.Texts().Typing
	for i := 0; i < m.transcript.Placeholders(); i++ {
		lines = append(lines, m.spinner.View()+" "+typingStyle.Render(label))
	}
	return strings.Join(lines, "\n")
}

// renderMarkdown keeps the line breaks of the text and caches the output per
// width.
func (m *Model) renderMarkdown(text string) string {
	if out, ok := m.rendered[text]; ok {
		return out
	}
	if m.markdown == nil {
		return text
	}

	out, err := m.markdown.Render(strings.ReplaceAll(text, "\n", "  \n"))
	if err != nil {
		logger.Debug(logger.WIDGET, "Markdown render failed: %v", err)
		return text
	}
	out = strings.Trim(out, "\n")
	m.rendered[text] = out
	return out
}

// Run shows the chat until the user quits or ctx ends.
func Run(ctx context.Context, transport widget.Transport, greetDelay time.Duration, opts ...widget.Option) error {
	p := tea.NewProgram(
		New(ctx, transport, greetDelay, opts...),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)
	_, err := p.Run()
	return err
}
