package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/powertrack/powertrack/internal/api"
	"github.com/powertrack/powertrack/internal/errors"
	"github.com/powertrack/powertrack/internal/tui/styles"
	"github.com/powertrack/powertrack/internal/util"
)

// Indexes into the staff create form inputs.
const (
	staffFieldFirst = iota
	staffFieldLast
	staffFieldRole
	staffFieldPassword
	staffFieldConfirm
	staffFieldCount
)

var staffRoles = []string{"manager", "detailer"}

// staffModel is the Staff Management screen: a list with an activation
// toggle and a create form. Staff are never deleted.
type staffModel struct {
	client *api.Client

	table   table.Model
	staff   []api.StaffMember
	loading bool
	notice  string

	creating bool
	inputs   [4]textinput.Model
	roleIdx  int
	focus    int

	done bool
}

func newStaffModel(client *api.Client) staffModel {
	columns := []table.Column{
		{Title: "Full Name", Width: 24},
		{Title: "Username", Width: 16},
		{Title: "Role", Width: 10},
		{Title: "Status", Width: 10},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(12),
		table.WithFocused(true),
	)

	m := staffModel{client: client, table: t, loading: true}
	for i := range m.inputs {
		input := textinput.New()
		input.CharLimit = 64
		input.Width = 28
		m.inputs[i] = input
	}
	m.inputs[0].Placeholder = "First Name"
	m.inputs[1].Placeholder = "Last Name"
	m.inputs[2].Placeholder = "Password"
	m.inputs[2].EchoMode = textinput.EchoPassword
	m.inputs[3].Placeholder = "Confirm Password"
	m.inputs[3].EchoMode = textinput.EchoPassword
	return m
}

func (m staffModel) Init() tea.Cmd {
	return loadStaffCmd(m.client)
}

// inputIndex maps a form field to its text input, skipping the role picker.
func inputIndex(field int) int {
	if field > staffFieldRole {
		return field - 1
	}
	return field
}

func (m staffModel) Update(msg tea.Msg) (staffModel, tea.Cmd) {
	switch msg := msg.(type) {
	case staffListMsg:
		m.loading = false
		if msg.err != nil {
			m.notice = "Failed to fetch staff list."
			return m, nil
		}
		m.staff = msg.staff
		rows := make([]table.Row, len(msg.staff))
		for i, s := range msg.staff {
			status := "Inactive"
			if s.IsActive {
				status = "Active"
			}
			rows[i] = table.Row{util.TruncateString(s.FullName, 24), s.Username, s.Role, status}
		}
		m.table.SetRows(rows)
		return m, nil

	case staffSavedMsg:
		m.loading = false
		if msg.err != nil {
			if errors.IsUserFacing(msg.err) {
				m.notice = msg.err.Error()
			} else {
				m.notice = "Error saving staff member."
			}
			return m, nil
		}
		m.creating = false
		m.notice = ""
		m.loading = true
		return m, loadStaffCmd(m.client)

	case tea.KeyMsg:
		if m.creating {
			return m.updateForm(msg)
		}
		return m.updateList(msg)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m staffModel) updateList(msg tea.KeyMsg) (staffModel, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.done = true
		return m, nil
	case "n":
		m.creating = true
		m.focus = staffFieldFirst
		m.roleIdx = 1 // detailer is the common case
		for i := range m.inputs {
			m.inputs[i].SetValue("")
			m.inputs[i].Blur()
		}
		return m, m.inputs[0].Focus()
	case "t":
		if m.loading {
			return m, nil
		}
		idx := m.table.Cursor()
		if idx >= 0 && idx < len(m.staff) {
			m.loading = true
			return m, toggleStaffCmd(m.client, m.staff[idx].UserID)
		}
		return m, nil
	case "r":
		m.loading = true
		return m, loadStaffCmd(m.client)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m staffModel) updateForm(msg tea.KeyMsg) (staffModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.creating = false
		m.notice = ""
		return m, nil

	case "tab", "down":
		return m.focusField((m.focus + 1) % staffFieldCount)
	case "shift+tab", "up":
		return m.focusField((m.focus + staffFieldCount - 1) % staffFieldCount)

	case "left", "right":
		if m.focus == staffFieldRole {
			m.roleIdx = (m.roleIdx + 1) % len(staffRoles)
			return m, nil
		}

	case "enter":
		first := strings.TrimSpace(m.inputs[0].Value())
		last := strings.TrimSpace(m.inputs[1].Value())
		password := m.inputs[2].Value()
		confirm := m.inputs[3].Value()

		if first == "" || last == "" || password == "" {
			m.notice = "All fields are required."
			return m, nil
		}
		if password != confirm {
			m.notice = "Passwords do not match!"
			return m, nil
		}

		m.loading = true
		m.notice = ""
		return m, createStaffCmd(m.client, api.CreateStaffRequest{
			FirstName:       first,
			LastName:        last,
			Role:            staffRoles[m.roleIdx],
			Password:        password,
			ConfirmPassword: confirm,
		})
	}

	if m.focus != staffFieldRole {
		var cmd tea.Cmd
		i := inputIndex(m.focus)
		m.inputs[i], cmd = m.inputs[i].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m staffModel) focusField(field int) (staffModel, tea.Cmd) {
	m.focus = field
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	if field == staffFieldRole {
		return m, nil
	}
	return m, m.inputs[inputIndex(field)].Focus()
}

func (m staffModel) View() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Staff Management"))
	b.WriteString("\n")

	if m.creating {
		b.WriteString(m.viewForm())
		return b.String()
	}

	if m.loading && len(m.staff) == 0 {
		b.WriteString(styles.Muted.Render("Loading staff..."))
		return b.String()
	}

	b.WriteString(m.table.View())
	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(styles.NoticeError.Render(m.notice) + "\n")
	}
	b.WriteString(styles.HelpBar.Render("n new · t toggle active · r refresh · esc back"))
	return b.String()
}

func (m staffModel) viewForm() string {
	var b strings.Builder
	b.WriteString(styles.Subtitle.Render("Create New Staff"))
	b.WriteString("\n\n")

	labels := []string{"First Name", "Last Name", "Role", "Password", "Confirm Password"}
	for field := 0; field < staffFieldCount; field++ {
		label := labels[field]
		if field == m.focus {
			label = styles.RowCursor.Render(label)
		}
		b.WriteString(label + "\n")
		if field == staffFieldRole {
			b.WriteString(fmt.Sprintf("< %s >\n\n", staffRoles[m.roleIdx]))
			continue
		}
		b.WriteString(m.inputs[inputIndex(field)].View() + "\n\n")
	}

	if m.notice != "" {
		b.WriteString(styles.NoticeError.Render(m.notice) + "\n")
	}
	b.WriteString(styles.HelpBar.Render("tab next field · ←/→ change role · enter create · esc cancel"))
	return styles.Panel.Render(b.String())
}
