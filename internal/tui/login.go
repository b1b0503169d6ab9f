package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/powertrack/powertrack/internal/tui/styles"
)

// loginModel is the unauthenticated entry screen: two fields and a submit.
type loginModel struct {
	username textinput.Model
	password textinput.Model
	focus    int
	loading  bool
	// submitted flags a completed form for the root model, which owns the
	// login command.
	submitted bool
	notice    string
}

func newLoginModel() loginModel {
	username := textinput.New()
	username.Placeholder = "Username"
	username.CharLimit = 64
	username.Width = 32
	username.Focus()

	password := textinput.New()
	password.Placeholder = "Password"
	password.CharLimit = 64
	password.Width = 32
	password.EchoMode = textinput.EchoPassword

	return loginModel{username: username, password: password}
}

func (m loginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m loginModel) Update(msg tea.Msg) (loginModel, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && !m.loading {
		switch keyMsg.String() {
		case "tab", "shift+tab", "up", "down":
			m.focus = (m.focus + 1) % 2
			if m.focus == 0 {
				m.password.Blur()
				return m, m.username.Focus()
			}
			m.username.Blur()
			return m, m.password.Focus()

		case "enter":
			if strings.TrimSpace(m.username.Value()) == "" || m.password.Value() == "" {
				m.notice = "Username and password are required."
				return m, nil
			}
			m.notice = ""
			m.submitted = true
			return m, nil
		}
	}

	var cmds []tea.Cmd
	var cmd tea.Cmd
	m.username, cmd = m.username.Update(msg)
	cmds = append(cmds, cmd)
	m.password, cmd = m.password.Update(msg)
	cmds = append(cmds, cmd)
	return m, tea.Batch(cmds...)
}

func (m loginModel) View() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("PowerTrack Pro"))
	b.WriteString("\n")
	b.WriteString(styles.Subtitle.Render("User Authentication"))
	b.WriteString("\n\n")
	b.WriteString("Username\n" + m.username.View() + "\n\n")
	b.WriteString("Password\n" + m.password.View() + "\n\n")

	if m.loading {
		b.WriteString(styles.Muted.Render("Signing in..."))
	} else if m.notice != "" {
		b.WriteString(styles.NoticeError.Render(m.notice))
	}

	b.WriteString("\n\n")
	b.WriteString(styles.HelpBar.Render("tab switch field · enter sign in · ctrl+c quit"))
	return b.String()
}
