package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/powertrack/powertrack/internal/api"
	"github.com/powertrack/powertrack/internal/errors"
	"github.com/powertrack/powertrack/internal/signature"
	"github.com/powertrack/powertrack/internal/tui/styles"
	"github.com/powertrack/powertrack/internal/util"
	"github.com/powertrack/powertrack/internal/worksheet"
)

// plansMode selects between the plan list and its two sub-forms.
type plansMode int

const (
	plansModeList plansMode = iota
	plansModeCreate
	plansModeAddVehicle
)

// Billing cycles accepted by the backend; weekly is the default for new
// plans.
var billingCycles = []string{"weekly", "monthly", "quarterly", "yearly"}

// Create-plan form fields. The signature is a typed client name rendered to
// a PNG; the backend requires one on every plan.
const (
	planFieldName = iota
	planFieldCycle
	planFieldEmail
	planFieldPhone
	planFieldSignature
	planFieldCount
)

// Add-vehicle form fields.
const (
	addFieldPlate = iota
	addFieldMakeModel
	addFieldCategory
	addFieldCount
)

// plansModel is the Client Plans screen: the plan list, a create form with
// signature capture, and an add-vehicle form for the selected plan.
type plansModel struct {
	client *api.Client

	mode    plansMode
	table   table.Model
	plans   []api.ClientPlan
	cats    []api.VehicleCategory
	loading bool
	notice  string

	inputs   [planFieldCount]textinput.Model
	cycleIdx int
	catIdx   int
	focus    int

	// editing marks the create form as pre-filled from an existing plan.
	// Saving goes through the same create call either way.
	editing bool

	// targetPlan is the plan receiving the vehicle in add mode.
	targetPlan int

	done bool
}

func newPlansModel(client *api.Client) plansModel {
	columns := []table.Column{
		{Title: "Client", Width: 22},
		{Title: "Cycle", Width: 10},
		{Title: "Vehicles", Width: 8},
		{Title: "Contact", Width: 24},
		{Title: "Status", Width: 8},
	}
	t := table.New(
		table.WithColumns(columns),
		table.WithHeight(12),
		table.WithFocused(true),
	)

	m := plansModel{client: client, table: t, loading: true}
	for i := range m.inputs {
		input := textinput.New()
		input.CharLimit = 96
		input.Width = 32
		m.inputs[i] = input
	}
	return m
}

func (m plansModel) Init() tea.Cmd {
	return loadPlansCmd(m.client)
}

func (m plansModel) Update(msg tea.Msg) (plansModel, tea.Cmd) {
	switch msg := msg.(type) {
	case plansListMsg:
		m.loading = false
		if msg.err != nil {
			m.notice = "Failed to fetch client plans."
			return m, nil
		}
		m.plans = msg.plans
		m.cats = msg.categories
		rows := make([]table.Row, len(msg.plans))
		for i, p := range msg.plans {
			status := "Inactive"
			if p.IsActive {
				status = "Active"
			}
			contact := p.ContactEmail
			if contact == "" {
				contact = p.ContactPhone
			}
			rows[i] = table.Row{
				util.TruncateString(p.ClientName, 22),
				p.BillingCycle,
				strconv.Itoa(p.VehicleCount),
				util.TruncateString(contact, 24),
				status,
			}
		}
		m.table.SetRows(rows)
		return m, nil

	case planSavedMsg:
		m.loading = false
		if msg.err != nil {
			if errors.IsUserFacing(msg.err) {
				m.notice = msg.err.Error()
			} else {
				m.notice = "Error saving plan."
			}
			return m, nil
		}
		m.mode = plansModeList
		m.editing = false
		m.notice = ""
		m.loading = true
		return m, loadPlansCmd(m.client)

	case tea.KeyMsg:
		switch m.mode {
		case plansModeCreate:
			return m.updateCreate(msg)
		case plansModeAddVehicle:
			return m.updateAddVehicle(msg)
		}
		return m.updateList(msg)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

func (m plansModel) updateList(msg tea.KeyMsg) (plansModel, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		m.done = true
		return m, nil
	case "n":
		m.mode = plansModeCreate
		m.editing = false
		m.cycleIdx = 0
		return m.openForm(planFieldName, planFieldCount)
	case "e":
		idx := m.table.Cursor()
		if idx < 0 || idx >= len(m.plans) {
			return m, nil
		}
		plan := m.plans[idx]
		m.mode = plansModeCreate
		m.editing = true
		m.cycleIdx = 0
		for i, cycle := range billingCycles {
			if cycle == plan.BillingCycle {
				m.cycleIdx = i
			}
		}
		next, cmd := m.openForm(planFieldName, planFieldCount)
		next.inputs[planFieldName].SetValue(plan.ClientName)
		next.inputs[planFieldEmail].SetValue(plan.ContactEmail)
		next.inputs[planFieldPhone].SetValue(plan.ContactPhone)
		return next, cmd
	case "a":
		idx := m.table.Cursor()
		if idx < 0 || idx >= len(m.plans) {
			return m, nil
		}
		if len(m.cats) == 0 {
			m.notice = "Vehicle categories are unavailable."
			return m, nil
		}
		m.mode = plansModeAddVehicle
		m.targetPlan = m.plans[idx].ClientPlanID
		m.catIdx = 0
		return m.openForm(addFieldPlate, addFieldCount)
	case "r":
		m.loading = true
		return m, loadPlansCmd(m.client)
	}

	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// openForm clears the inputs and focuses the first field of a form with
// fieldCount fields.
func (m plansModel) openForm(first, fieldCount int) (plansModel, tea.Cmd) {
	m.focus = first
	m.notice = ""
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	return m, m.inputs[first].Focus()
}

func (m plansModel) updateCreate(msg tea.KeyMsg) (plansModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = plansModeList
		m.editing = false
		m.notice = ""
		return m, nil

	case "tab", "down":
		return m.focusCreateField((m.focus + 1) % planFieldCount)
	case "shift+tab", "up":
		return m.focusCreateField((m.focus + planFieldCount - 1) % planFieldCount)

	case "left", "right":
		if m.focus == planFieldCycle {
			if msg.String() == "left" {
				m.cycleIdx = (m.cycleIdx + len(billingCycles) - 1) % len(billingCycles)
			} else {
				m.cycleIdx = (m.cycleIdx + 1) % len(billingCycles)
			}
			return m, nil
		}

	case "enter":
		name := strings.TrimSpace(m.inputs[planFieldName].Value())
		signer := strings.TrimSpace(m.inputs[planFieldSignature].Value())
		if name == "" {
			m.notice = "Client name is required."
			return m, nil
		}
		if signer == "" {
			m.notice = "Signature is required before creating a plan."
			return m, nil
		}
		sig, err := signature.FromText(signer)
		if err != nil {
			m.notice = "Could not capture the signature."
			return m, nil
		}

		m.loading = true
		m.notice = ""
		return m, createPlanCmd(m.client, api.CreatePlanRequest{
			ClientName:   name,
			BillingCycle: billingCycles[m.cycleIdx],
			Email:        strings.TrimSpace(m.inputs[planFieldEmail].Value()),
			Phone:        strings.TrimSpace(m.inputs[planFieldPhone].Value()),
			Signature:    sig,
		})
	}

	if m.focus != planFieldCycle {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m plansModel) focusCreateField(field int) (plansModel, tea.Cmd) {
	m.focus = field
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	if field == planFieldCycle {
		return m, nil
	}
	return m, m.inputs[field].Focus()
}

func (m plansModel) updateAddVehicle(msg tea.KeyMsg) (plansModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = plansModeList
		m.notice = ""
		return m, nil

	case "tab", "down":
		return m.focusAddField((m.focus + 1) % addFieldCount)
	case "shift+tab", "up":
		return m.focusAddField((m.focus + addFieldCount - 1) % addFieldCount)

	case "left", "right":
		if m.focus == addFieldCategory && len(m.cats) > 0 {
			if msg.String() == "left" {
				m.catIdx = (m.catIdx + len(m.cats) - 1) % len(m.cats)
			} else {
				m.catIdx = (m.catIdx + 1) % len(m.cats)
			}
			return m, nil
		}

	case "enter":
		plate := worksheet.NormalizePlate(m.inputs[addFieldPlate].Value())
		if plate == "" {
			m.notice = "Plate is required."
			return m, nil
		}
		m.loading = true
		m.notice = ""
		return m, addPlanVehicleCmd(m.client, m.targetPlan, api.AddPlanVehicleRequest{
			Plate:      plate,
			CategoryID: m.cats[m.catIdx].VehicleCategoryID,
			MakeModel:  strings.TrimSpace(m.inputs[addFieldMakeModel].Value()),
		})
	}

	if m.focus != addFieldCategory {
		var cmd tea.Cmd
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m plansModel) focusAddField(field int) (plansModel, tea.Cmd) {
	m.focus = field
	for i := range m.inputs {
		m.inputs[i].Blur()
	}
	if field == addFieldCategory {
		return m, nil
	}
	return m, m.inputs[field].Focus()
}

func (m plansModel) View() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Client Plans"))
	b.WriteString("\n")

	switch m.mode {
	case plansModeCreate:
		b.WriteString(m.viewCreate())
		return b.String()
	case plansModeAddVehicle:
		b.WriteString(m.viewAddVehicle())
		return b.String()
	}

	if m.loading && len(m.plans) == 0 {
		b.WriteString(styles.Muted.Render("Loading plans..."))
		return b.String()
	}

	b.WriteString(m.table.View())
	b.WriteString("\n")
	if m.notice != "" {
		b.WriteString(styles.NoticeError.Render(m.notice) + "\n")
	}
	b.WriteString(styles.HelpBar.Render("n new plan · e edit · a add vehicle · r refresh · esc back"))
	return b.String()
}

func (m plansModel) viewCreate() string {
	var b strings.Builder
	title := "Create New Plan"
	if m.editing {
		title = "Edit Plan"
	}
	b.WriteString(styles.Subtitle.Render(title))
	b.WriteString("\n\n")

	labels := []string{"Client Name", "Billing Cycle", "Email", "Phone", "Signature (type client name to sign)"}
	for field := 0; field < planFieldCount; field++ {
		label := labels[field]
		if field == m.focus {
			label = styles.RowCursor.Render(label)
		}
		b.WriteString(label + "\n")
		if field == planFieldCycle {
			b.WriteString(fmt.Sprintf("< %s >\n\n", billingCycles[m.cycleIdx]))
			continue
		}
		b.WriteString(m.inputs[field].View() + "\n\n")
	}

	if m.notice != "" {
		b.WriteString(styles.NoticeError.Render(m.notice) + "\n")
	}
	b.WriteString(styles.HelpBar.Render("tab next field · ←/→ change cycle · enter create · esc cancel"))
	return styles.Panel.Render(b.String())
}

func (m plansModel) viewAddVehicle() string {
	var b strings.Builder
	b.WriteString(styles.Subtitle.Render(fmt.Sprintf("Add Vehicle to Plan #%d", m.targetPlan)))
	b.WriteString("\n\n")

	labels := []string{"Plate", "Make / Model", "Category"}
	for field := 0; field < addFieldCount; field++ {
		label := labels[field]
		if field == m.focus {
			label = styles.RowCursor.Render(label)
		}
		b.WriteString(label + "\n")
		if field == addFieldCategory {
			name := "(none)"
			if len(m.cats) > 0 {
				name = m.cats[m.catIdx].CategoryName
			}
			b.WriteString(fmt.Sprintf("< %s >\n\n", name))
			continue
		}
		b.WriteString(m.inputs[field].View() + "\n\n")
	}

	if m.notice != "" {
		b.WriteString(styles.NoticeError.Render(m.notice) + "\n")
	}
	b.WriteString(styles.HelpBar.Render("tab next field · ←/→ change category · enter add · esc cancel"))
	return styles.Panel.Render(b.String())
}
