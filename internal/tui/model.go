package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/powertrack/powertrack/internal/api"
	"github.com/powertrack/powertrack/internal/logging"
	"github.com/powertrack/powertrack/internal/session"
	"github.com/powertrack/powertrack/internal/tui/styles"
)

// screen identifies which view owns the terminal.
type screen int

const (
	screenLogin screen = iota
	screenMenu
	screenStaff
	screenPlans
	screenWorksheet
)

// menuEntry is one dashboard menu row.
type menuEntry struct {
	label  string
	target screen
}

// Model is the root route shell: it chooses between the unauthenticated
// login view and the authenticated dashboard, and hides Manager-only
// screens from other roles. The gate is advisory; the backend enforces
// authorization on every call.
type Model struct {
	client *api.Client
	sess   *session.Session
	log    *logging.Logger

	startAtWorksheet bool

	width  int
	height int

	screen     screen
	menuCursor int
	notice     string

	login  loginModel
	staff  staffModel
	plans  plansModel
	wizard wizardModel
}

// NewModel creates the root model and chooses the entry screen from the
// stored session: unauthenticated users land on login, Managers on the
// dashboard menu, everyone else straight on the wizard.
func NewModel(client *api.Client, sess *session.Session, log *logging.Logger, startAtWorksheet bool) Model {
	m := Model{
		client:           client,
		sess:             sess,
		log:              log,
		startAtWorksheet: startAtWorksheet,
		login:            newLoginModel(),
	}

	if !sess.IsAuthenticated() {
		m.screen = screenLogin
		return m
	}
	role, ok := sess.CurrentRole()
	if startAtWorksheet || !ok || role != session.RoleManager {
		m.screen = screenWorksheet
		m.wizard = newWizardModel(client, log)
	} else {
		m.screen = screenMenu
	}
	return m
}

// Init returns the entry screen's initial command.
func (m Model) Init() tea.Cmd {
	switch m.screen {
	case screenLogin:
		return m.login.Init()
	case screenWorksheet:
		return m.wizard.Init()
	}
	return nil
}

// menuEntries returns the dashboard rows visible to the current role.
func (m Model) menuEntries() []menuEntry {
	entries := []menuEntry{}
	if role, ok := m.sess.CurrentRole(); ok && role == session.RoleManager {
		entries = append(entries,
			menuEntry{label: "Staff Management", target: screenStaff},
			menuEntry{label: "Client Plans", target: screenPlans},
		)
	}
	entries = append(entries, menuEntry{label: "Daily Worksheet", target: screenWorksheet})
	return entries
}

// enter switches to a screen, constructing its model and returning its
// initial command.
func (m *Model) enter(target screen) tea.Cmd {
	m.screen = target
	m.notice = ""
	switch target {
	case screenLogin:
		m.login = newLoginModel()
		return m.login.Init()
	case screenStaff:
		m.staff = newStaffModel(m.client)
		return m.staff.Init()
	case screenPlans:
		m.plans = newPlansModel(m.client)
		return m.plans.Init()
	case screenWorksheet:
		m.wizard = newWizardModel(m.client, m.log)
		return m.wizard.Init()
	}
	return nil
}

// routeForRole picks the post-login landing screen.
func (m *Model) routeForRole() tea.Cmd {
	if m.startAtWorksheet {
		return m.enter(screenWorksheet)
	}
	if role, ok := m.sess.CurrentRole(); ok && role == session.RoleManager {
		m.screen = screenMenu
		m.menuCursor = 0
		return nil
	}
	return m.enter(screenWorksheet)
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

	case loginResultMsg:
		m.login.loading = false
		if msg.err != nil {
			m.login.notice = "Login failed. Please check your credentials."
			return m, nil
		}
		if err := m.sess.Login(msg.token); err != nil {
			m.login.notice = "Login failed. Invalid token structure."
			return m, nil
		}
		return m, m.routeForRole()
	}

	var cmd tea.Cmd
	switch m.screen {
	case screenLogin:
		m.login, cmd = m.login.Update(msg)
		if m.login.submitted {
			m.login.submitted = false
			m.login.loading = true
			cmd = loginCmd(m.client, m.login.username.Value(), m.login.password.Value())
		}
	case screenMenu:
		cmd = m.updateMenu(msg)
	case screenStaff:
		m.staff, cmd = m.staff.Update(msg)
		if m.staff.done {
			m.screen = screenMenu
			cmd = nil
		}
	case screenPlans:
		m.plans, cmd = m.plans.Update(msg)
		if m.plans.done {
			m.screen = screenMenu
			cmd = nil
		}
	case screenWorksheet:
		m.wizard, cmd = m.wizard.Update(msg)
		if m.wizard.done {
			if role, ok := m.sess.CurrentRole(); ok && role == session.RoleManager && !m.startAtWorksheet {
				m.screen = screenMenu
			} else {
				return m, tea.Quit
			}
			cmd = nil
		}
	}

	// A 401/422 anywhere tears the session down; fall back to login.
	if m.screen != screenLogin && !m.sess.IsAuthenticated() {
		m.notice = "Session expired. Please log in again."
		entry := m.enter(screenLogin)
		m.login.notice = m.notice
		return m, entry
	}

	return m, cmd
}

// updateMenu handles the dashboard menu keys.
func (m *Model) updateMenu(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	entries := m.menuEntries()
	switch keyMsg.String() {
	case "up", "k":
		if m.menuCursor > 0 {
			m.menuCursor--
		}
	case "down", "j":
		if m.menuCursor < len(entries)-1 {
			m.menuCursor++
		}
	case "enter":
		return m.enter(entries[m.menuCursor].target)
	case "l":
		_ = m.sess.Logout()
		return m.enter(screenLogin)
	case "q":
		return tea.Quit
	}
	return nil
}

func (m Model) View() string {
	switch m.screen {
	case screenLogin:
		return m.login.View()
	case screenMenu:
		return m.viewMenu()
	case screenStaff:
		return m.header() + "\n" + m.staff.View()
	case screenPlans:
		return m.header() + "\n" + m.plans.View()
	case screenWorksheet:
		return m.header() + "\n" + m.wizard.View()
	}
	return ""
}

// header renders the navbar equivalent: brand, user id, and role badge.
func (m Model) header() string {
	roleLabel := ""
	if role, ok := m.sess.CurrentRole(); ok {
		roleLabel = string(role)
	}
	return styles.Title.Render("PowerTrack Pro") + "  " +
		styles.Muted.Render(fmt.Sprintf("user %s", m.sess.CurrentUserID())) + " " +
		styles.Secondary.Render(roleLabel)
}

func (m Model) viewMenu() string {
	var b strings.Builder
	b.WriteString(m.header())
	b.WriteString("\n\n")

	for i, entry := range m.menuEntries() {
		cursor := "  "
		line := entry.label
		if i == m.menuCursor {
			cursor = "> "
			line = styles.RowCursor.Render(line)
		}
		b.WriteString(cursor + line + "\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.HelpBar.Render("↑/↓ move · enter open · l logout · q quit"))
	return b.String()
}
