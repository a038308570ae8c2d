package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/lumar-safety/orient/internal/adapters/driving/tui/components/input"
	"github.com/lumar-safety/orient/internal/adapters/driving/tui/keymap"
	"github.com/lumar-safety/orient/internal/adapters/driving/tui/messages"
	"github.com/lumar-safety/orient/internal/adapters/driving/tui/styles"
	"github.com/lumar-safety/orient/internal/core/domain"
	"github.com/lumar-safety/orient/internal/core/ports/driving"
)

// photoCommand attaches an image to the next turn: /photo <path>.
const photoCommand = "/photo"

// App is the first-aid chat application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap
	input  *input.ChatInput

	// session is the live first-aid session, nil until opened.
	session driving.FirstAidSession

	// history mirrors the session history for rendering.
	history []domain.ChatMessage

	// pendingPhoto is attached to the next turn, with its source path for
	// the indicator line.
	pendingPhoto     *domain.ImageAttachment
	pendingPhotoPath string

	// sending is true while a turn is in flight.
	sending bool

	err error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates the chat application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	return &App{
		ports:  ports,
		ctx:    context.Background(),
		styles: s,
		keymap: keymap.DefaultKeyMap(),
		input:  input.NewChatInput(s),
		width:  80,
		height: 24,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model. It opens the session and starts the cursor.
func (a *App) Init() tea.Cmd {
	return tea.Batch(a.openSession(), a.input.Init())
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.input.SetWidth(msg.Width)
		a.ready = true
		return a, nil

	case messages.SessionOpened:
		if msg.Err != nil {
			a.err = msg.Err
			return a, tea.Quit
		}
		a.session = msg.Session
		a.history = msg.Session.History()
		return a, nil

	case messages.TurnCompleted:
		a.sending = false
		if msg.Err != nil {
			a.err = msg.Err
			return a, nil
		}
		a.err = nil
		a.pendingPhoto = nil
		a.pendingPhotoPath = ""
		if a.session != nil {
			a.history = a.session.History()
		}
		return a, nil

	case messages.PhotoLoaded:
		if msg.Err != nil {
			a.err = fmt.Errorf("could not load photo: %w", msg.Err)
			return a, nil
		}
		a.err = nil
		a.pendingPhoto = msg.Image
		a.pendingPhotoPath = msg.Path
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keymap.Matches(keyStr, a.keymap.Quit):
		return a, tea.Quit

	case keymap.Matches(keyStr, a.keymap.Cancel):
		a.input.Reset()
		a.pendingPhoto = nil
		a.pendingPhotoPath = ""
		a.err = nil
		return a, nil

	case keymap.Matches(keyStr, a.keymap.Send):
		if a.sending || a.session == nil {
			return a, nil
		}
		value := strings.TrimSpace(a.input.Value())

		if path, ok := strings.CutPrefix(value, photoCommand+" "); ok {
			a.input.Reset()
			return a, loadPhoto(strings.TrimSpace(path))
		}

		if value == "" && a.pendingPhoto == nil {
			return a, nil
		}
		a.input.Reset()
		a.sending = true
		return a, a.sendTurn(value, a.pendingPhoto)
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// openSession creates the session as a command so a slow greeting does not
// block the first render.
func (a *App) openSession() tea.Cmd {
	return func() tea.Msg {
		session, err := a.ports.Chat.NewSession(a.ports.Language)
		return messages.SessionOpened{Session: session, Err: err}
	}
}

func (a *App) sendTurn(text string, photo *domain.ImageAttachment) tea.Cmd {
	session := a.session
	ctx := a.ctx
	return func() tea.Msg {
		msg, err := session.Send(ctx, text, photo)
		return messages.TurnCompleted{Message: msg, Err: err}
	}
}

// loadPhoto reads an image from disk for the next turn.
func loadPhoto(path string) tea.Cmd {
	return func() tea.Msg {
		data, err := os.ReadFile(path)
		if err != nil {
			return messages.PhotoLoaded{Path: path, Err: err}
		}
		return messages.PhotoLoaded{
			Path: path,
			Image: &domain.ImageAttachment{
				Data:     data,
				MIMEType: photoMIMEType(path),
			},
		}
	}
}

// photoMIMEType maps the file extension to a content type, defaulting to
// JPEG for camera files without a recognised extension.
func photoMIMEType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return "image/png"
	case ".webp":
		return "image/webp"
	case ".heic":
		return "image/heic"
	default:
		return "image/jpeg"
	}
}

// View implements tea.Model.
func (a *App) View() string {
	if !a.ready {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(a.styles.Title.Render("Orient First-Aid Chat"))
	b.WriteString(a.styles.Muted.Render("  112 / 144 in an emergency"))
	b.WriteString("\n\n")

	if a.session == nil {
		b.WriteString(a.styles.Muted.Render("Starting session..."))
		b.WriteString("\n")
	} else {
		b.WriteString(a.renderHistory())
	}

	if a.pendingPhotoPath != "" {
		b.WriteString(a.styles.Warning.Render("📷 " + a.pendingPhotoPath + " attached to next message"))
		b.WriteString("\n")
	}
	if a.err != nil {
		b.WriteString(a.styles.Error.Render(a.err.Error()))
		b.WriteString("\n")
	}
	if a.sending {
		b.WriteString(a.styles.Muted.Render("..."))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(a.input.View())
	b.WriteString("\n")
	b.WriteString(a.styles.Help.Render("enter send · esc clear · ctrl+c quit · /photo <path> attach"))
	return b.String()
}

// renderHistory renders the most recent messages that fit the window.
func (a *App) renderHistory() string {
	textWidth := a.width - 4
	if textWidth < 20 {
		textWidth = 20
	}
	wrap := a.styles.Normal.Width(textWidth)

	var lines []string
	for _, msg := range a.history {
		label := a.styles.AssistantLabel.Render("Orient")
		if msg.Role == domain.ChatRoleUser {
			label = a.styles.UserLabel.Render("You")
		}
		text := msg.Text
		if msg.HasImage {
			text = "📷 " + text
		}
		lines = append(lines, label, wrap.Render(text), "")
	}

	// Keep the tail that fits above input, indicators and help.
	budget := a.height - 8
	if budget < 3 {
		budget = 3
	}
	total := 0
	start := len(lines)
	for start > 0 && total+lineCount(lines[start-1]) <= budget {
		total += lineCount(lines[start-1])
		start--
	}
	return strings.Join(lines[start:], "\n") + "\n"
}

func lineCount(s string) int {
	return strings.Count(s, "\n") + 1
}

// Session exposes the live session, used by tests.
func (a *App) Session() driving.FirstAidSession {
	return a.session
}
