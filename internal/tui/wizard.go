package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/powertrack/powertrack/internal/api"
	"github.com/powertrack/powertrack/internal/errors"
	"github.com/powertrack/powertrack/internal/logging"
	"github.com/powertrack/powertrack/internal/tui/styles"
	"github.com/powertrack/powertrack/internal/util"
	"github.com/powertrack/powertrack/internal/worksheet"
)

// Adjustment form fields.
const (
	adjFieldDiscount = iota
	adjFieldDiscountReason
	adjFieldFee
	adjFieldFeeReason
	adjFieldCount
)

var paymentMethods = []string{worksheet.PaymentCash, worksheet.PaymentCard, worksheet.PaymentPlan}

// wizardModel drives the Daily Worksheet wizard. All worksheet rules live in
// the worksheet package; this model only maps keys to wizard operations and
// renders the current step.
type wizardModel struct {
	client *api.Client
	log    *logging.Logger

	wiz *worksheet.Wizard

	staff      []api.StaffMember
	categories []api.VehicleCategory
	services   []api.Service

	spin       spinner.Model
	loadingRef bool
	looking    bool
	creating   bool
	submitting bool

	cursor int
	plate  textinput.Model
	make   textinput.Model
	adj    [adjFieldCount]textinput.Model
	catIdx int
	payIdx int
	focus  int

	confirmCancel bool
	notice        string
	noticeIsError bool

	// lastTx holds the recorded transaction id for the success view; zero
	// means no submission has completed since the last reset.
	lastTx int

	done bool
}

func newWizardModel(client *api.Client, log *logging.Logger) wizardModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Primary

	plate := textinput.New()
	plate.Placeholder = "ABC-123"
	plate.CharLimit = 16
	plate.Width = 20

	mk := textinput.New()
	mk.Placeholder = "Make / Model"
	mk.CharLimit = 64
	mk.Width = 28

	m := wizardModel{
		client:     client,
		log:        log.WithScreen("worksheet"),
		wiz:        worksheet.NewWizard(),
		spin:       sp,
		plate:      plate,
		make:       mk,
		loadingRef: true,
	}

	placeholders := []string{"0.00", "Discount reason", "0.00", "Fee reason"}
	for i := range m.adj {
		input := textinput.New()
		input.Placeholder = placeholders[i]
		input.CharLimit = 64
		input.Width = 24
		m.adj[i] = input
	}
	return m
}

func (m wizardModel) Init() tea.Cmd {
	return tea.Batch(loadRefDataCmd(m.client), m.spin.Tick)
}

func (m wizardModel) Update(msg tea.Msg) (wizardModel, tea.Cmd) {
	switch msg := msg.(type) {
	case refDataMsg:
		m.loadingRef = false
		m.staff = msg.staff
		m.categories = msg.categories
		m.services = msg.services
		m.wiz.SetServices(msg.services)
		if len(msg.errs) > 0 {
			for _, err := range msg.errs {
				m.log.Warn("reference data fetch failed", "error", err)
			}
			m.setError("Some reference data failed to load. The worksheet may be incomplete.")
		}
		return m, nil

	case lookupResultMsg:
		m.looking = false
		if msg.err != nil {
			m.setError("Vehicle lookup failed. Please try again.")
			return m, nil
		}
		m.wiz.ApplyLookup(msg.vehicle, msg.found)
		if msg.found {
			m.setInfo("Vehicle found.")
		} else {
			m.catIdx = 0
			m.syncCreateCategory()
			m.setInfo("Vehicle not registered. Fill in the details to add it.")
			return m, m.make.Focus()
		}
		return m, nil

	case vehicleCreatedMsg:
		m.creating = false
		if msg.err != nil {
			if errors.IsUserFacing(msg.err) {
				m.setError(msg.err.Error())
			} else {
				m.setError("Could not register the vehicle.")
			}
			return m, nil
		}
		m.wiz.ApplyCreated(msg.vehicle)
		m.cursor = 0
		m.clearNotice()
		return m, nil

	case submitResultMsg:
		m.submitting = false
		if msg.err != nil {
			if errors.IsUserFacing(msg.err) {
				m.setError(msg.err.Error())
			} else {
				m.setError("Submission failed. Your worksheet has been kept.")
			}
			return m, nil
		}
		if msg.tx != nil {
			m.lastTx = msg.tx.TransactionID
		}
		m.resetForms()
		m.wiz.Reset()
		return m, nil

	case spinner.TickMsg:
		if m.busy() {
			var cmd tea.Cmd
			m.spin, cmd = m.spin.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

// busy reports whether any network call is in flight.
func (m wizardModel) busy() bool {
	return m.loadingRef || m.looking || m.creating || m.submitting
}

func (m *wizardModel) setError(text string) {
	m.notice = text
	m.noticeIsError = true
}

func (m *wizardModel) setInfo(text string) {
	m.notice = text
	m.noticeIsError = false
}

func (m *wizardModel) clearNotice() {
	m.notice = ""
}

// resetForms returns every input to its initial state alongside a wizard
// reset.
func (m *wizardModel) resetForms() {
	m.plate.SetValue("")
	m.plate.Blur()
	m.make.SetValue("")
	m.make.Blur()
	for i := range m.adj {
		m.adj[i].SetValue("")
		m.adj[i].Blur()
	}
	m.cursor = 0
	m.catIdx = 0
	m.payIdx = 0
	m.focus = 0
	m.confirmCancel = false
	m.clearNotice()
}

func (m wizardModel) updateKeys(msg tea.KeyMsg) (wizardModel, tea.Cmd) {
	if m.busy() {
		return m, nil
	}

	// The success view swallows all keys until dismissed.
	if m.lastTx != 0 {
		switch msg.String() {
		case "enter":
			m.lastTx = 0
			return m, nil
		case "esc", "q":
			m.done = true
			return m, nil
		}
		return m, nil
	}

	if m.confirmCancel {
		switch msg.String() {
		case "y", "Y":
			m.resetForms()
			m.wiz.Reset()
			m.done = true
		default:
			m.confirmCancel = false
		}
		return m, nil
	}

	if msg.String() == "ctrl+x" {
		m.confirmCancel = true
		return m, nil
	}

	switch m.wiz.Step() {
	case worksheet.StepStaff:
		return m.updateStaffStep(msg)
	case worksheet.StepVehicle:
		return m.updateVehicleStep(msg)
	case worksheet.StepServices:
		return m.updateServicesStep(msg)
	case worksheet.StepAdjustments:
		return m.updateAdjustmentsStep(msg)
	case worksheet.StepPayment:
		return m.updatePaymentStep(msg)
	case worksheet.StepSummary:
		return m.updateSummaryStep(msg)
	}
	return m, nil
}

// advance runs the step guard and surfaces its validation message on failure.
func (m wizardModel) advance() (wizardModel, tea.Cmd) {
	if err := m.wiz.Next(); err != nil {
		m.setError(err.Error())
		return m, nil
	}
	m.cursor = 0
	m.clearNotice()
	return m.enterStep()
}

// enterStep focuses the right control for the step just entered.
func (m wizardModel) enterStep() (wizardModel, tea.Cmd) {
	switch m.wiz.Step() {
	case worksheet.StepVehicle:
		return m, m.plate.Focus()
	case worksheet.StepAdjustments:
		m.focus = adjFieldDiscount
		for i := range m.adj {
			m.adj[i].Blur()
		}
		return m, m.adj[adjFieldDiscount].Focus()
	case worksheet.StepPayment:
		m.payIdx = 0
		if method := m.wiz.Draft().PaymentMethod; method != "" {
			for i, candidate := range paymentMethods {
				if candidate == method {
					m.payIdx = i
				}
			}
		}
	}
	return m, nil
}

// back moves one step and clears any stale notice.
func (m wizardModel) back() (wizardModel, tea.Cmd) {
	m.wiz.Prev()
	m.cursor = 0
	m.clearNotice()
	return m.enterStep()
}

// activeStaff filters the selectable list to active members.
func (m wizardModel) activeStaff() []api.StaffMember {
	out := make([]api.StaffMember, 0, len(m.staff))
	for _, s := range m.staff {
		if s.IsActive {
			out = append(out, s)
		}
	}
	return out
}

func (m wizardModel) updateStaffStep(msg tea.KeyMsg) (wizardModel, tea.Cmd) {
	staff := m.activeStaff()
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(staff)-1 {
			m.cursor++
		}
	case " ":
		if m.cursor < len(staff) {
			m.wiz.Draft().ToggleEmployee(staff[m.cursor].UserID)
			m.clearNotice()
		}
	case "enter":
		return m.advance()
	}
	return m, nil
}

func (m wizardModel) updateVehicleStep(msg tea.KeyMsg) (wizardModel, tea.Cmd) {
	res := m.wiz.Resolution()

	switch msg.String() {
	case "esc":
		return m.back()

	case "tab":
		if res.IsNotFound() {
			// Flip between make/model and the category picker.
			if m.make.Focused() {
				m.make.Blur()
				return m, nil
			}
			return m, m.make.Focus()
		}

	case "left", "right":
		if res.IsNotFound() && !m.make.Focused() && len(m.categories) > 0 {
			if msg.String() == "left" {
				m.catIdx = (m.catIdx + len(m.categories) - 1) % len(m.categories)
			} else {
				m.catIdx = (m.catIdx + 1) % len(m.categories)
			}
			m.syncCreateCategory()
			return m, nil
		}

	case "enter":
		if res.IsFound() {
			return m.advance()
		}
		if res.IsNotFound() {
			m.wiz.Draft().MakeModel = strings.TrimSpace(m.make.Value())
			req, err := m.wiz.CreateVehicleRequest()
			if err != nil {
				m.setError(err.Error())
				return m, nil
			}
			m.creating = true
			m.clearNotice()
			return m, tea.Batch(createVehicleCmd(m.client, req), m.spin.Tick)
		}
		plate, err := m.wiz.BeginLookup()
		if err != nil {
			m.setError(err.Error())
			return m, nil
		}
		m.looking = true
		m.clearNotice()
		m.log.Info("looking up vehicle", "plate", plate)
		return m, tea.Batch(lookupVehicleCmd(m.client, plate), m.spin.Tick)
	}

	if res.IsNotFound() && m.make.Focused() {
		var cmd tea.Cmd
		m.make, cmd = m.make.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	before := m.plate.Value()
	m.plate, cmd = m.plate.Update(msg)
	if m.plate.Value() != before {
		// Editing the plate invalidates any completed lookup.
		m.wiz.SetPlate(m.plate.Value())
		m.make.SetValue("")
		m.clearNotice()
	}
	return m, cmd
}

// syncCreateCategory copies the picker selection into the draft so the
// create-vehicle request sees it.
func (m *wizardModel) syncCreateCategory() {
	if len(m.categories) > 0 {
		m.wiz.Draft().VehicleCategoryID = m.categories[m.catIdx].VehicleCategoryID
	}
}

func (m wizardModel) updateServicesStep(msg tea.KeyMsg) (wizardModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.back()
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.services)-1 {
			m.cursor++
		}
	case " ":
		if m.cursor < len(m.services) {
			m.wiz.Draft().ToggleService(m.services[m.cursor].ServiceID)
			m.clearNotice()
		}
	case "enter":
		return m.advance()
	}
	return m, nil
}

func (m wizardModel) updateAdjustmentsStep(msg tea.KeyMsg) (wizardModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.back()
	case "tab", "down":
		return m.focusAdjField((m.focus + 1) % adjFieldCount)
	case "shift+tab", "up":
		return m.focusAdjField((m.focus + adjFieldCount - 1) % adjFieldCount)
	case "enter":
		return m.advance()
	}

	var cmd tea.Cmd
	m.adj[m.focus], cmd = m.adj[m.focus].Update(msg)

	draft := m.wiz.Draft()
	draft.Discount = m.adj[adjFieldDiscount].Value()
	draft.DiscountReason = m.adj[adjFieldDiscountReason].Value()
	draft.Fee = m.adj[adjFieldFee].Value()
	draft.FeeReason = m.adj[adjFieldFeeReason].Value()
	return m, cmd
}

func (m wizardModel) focusAdjField(field int) (wizardModel, tea.Cmd) {
	m.focus = field
	for i := range m.adj {
		m.adj[i].Blur()
	}
	return m, m.adj[field].Focus()
}

// paymentSelectable reports whether the method at index i can be chosen:
// an active plan locks the choice to "plan", and without one "plan" is off
// the menu entirely.
func (m wizardModel) paymentSelectable(i int) bool {
	if m.wiz.PaymentLocked() {
		return paymentMethods[i] == worksheet.PaymentPlan
	}
	return paymentMethods[i] != worksheet.PaymentPlan
}

func (m wizardModel) updatePaymentStep(msg tea.KeyMsg) (wizardModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.back()
	case "up", "k":
		for i := m.payIdx - 1; i >= 0; i-- {
			if m.paymentSelectable(i) {
				m.payIdx = i
				break
			}
		}
	case "down", "j":
		for i := m.payIdx + 1; i < len(paymentMethods); i++ {
			if m.paymentSelectable(i) {
				m.payIdx = i
				break
			}
		}
	case " ", "enter":
		method := paymentMethods[m.payIdx]
		if m.wiz.PaymentLocked() {
			method = worksheet.PaymentPlan
		}
		if err := m.wiz.SetPaymentMethod(method); err != nil {
			m.setError(err.Error())
			return m, nil
		}
		if msg.String() == "enter" {
			return m.advance()
		}
		m.clearNotice()
	}
	return m, nil
}

func (m wizardModel) updateSummaryStep(msg tea.KeyMsg) (wizardModel, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.back()
	case "enter":
		m.submitting = true
		m.clearNotice()
		payload := m.wiz.Payload()
		m.log.Info("submitting worksheet",
			"plate", payload.Plate,
			"services", len(payload.ServiceIDs),
			"payment", payload.PaymentMethod)
		return m, tea.Batch(submitWorksheetCmd(m.client, payload), m.spin.Tick)
	}
	return m, nil
}

func (m wizardModel) View() string {
	var b strings.Builder
	b.WriteString(m.viewStepBar())
	b.WriteString("\n\n")

	if m.lastTx != 0 {
		b.WriteString(styles.NoticeInfo.Render(fmt.Sprintf("Worksheet recorded as transaction #%d.", m.lastTx)))
		b.WriteString("\n\n")
		b.WriteString(styles.HelpBar.Render("enter new worksheet · esc done"))
		return b.String()
	}

	if m.confirmCancel {
		b.WriteString(styles.NoticeError.Render("Discard this worksheet?"))
		b.WriteString("\n\n")
		b.WriteString(styles.HelpBar.Render("y discard · any other key keep working"))
		return b.String()
	}

	if m.loadingRef {
		b.WriteString(m.spin.View() + " Loading reference data...")
		return b.String()
	}

	switch m.wiz.Step() {
	case worksheet.StepStaff:
		b.WriteString(m.viewStaffStep())
	case worksheet.StepVehicle:
		b.WriteString(m.viewVehicleStep())
	case worksheet.StepServices:
		b.WriteString(m.viewServicesStep())
	case worksheet.StepAdjustments:
		b.WriteString(m.viewAdjustmentsStep())
	case worksheet.StepPayment:
		b.WriteString(m.viewPaymentStep())
	case worksheet.StepSummary:
		b.WriteString(m.viewSummaryStep())
	}

	b.WriteString("\n")
	if m.notice != "" {
		style := styles.NoticeInfo
		if m.noticeIsError {
			style = styles.NoticeError
		}
		b.WriteString(style.Render(m.notice) + "\n")
	}
	b.WriteString(styles.HelpBar.Render(m.helpForStep()))
	return b.String()
}

// viewStepBar renders the six-step indicator with the live total badge.
func (m wizardModel) viewStepBar() string {
	var parts []string
	current := m.wiz.Step()
	for s := worksheet.StepStaff; s <= worksheet.StepSummary; s++ {
		label := fmt.Sprintf("%d %s", int(s), s.String())
		switch {
		case s == current:
			parts = append(parts, styles.StepCurrent.Render(label))
		case s < current:
			parts = append(parts, styles.StepDone.Render(label))
		default:
			parts = append(parts, styles.StepPending.Render(label))
		}
	}
	bar := strings.Join(parts, " ")
	return bar + "  " + styles.PriceBadge.Render("$"+m.wiz.LiveTotal())
}

func (m wizardModel) viewStaffStep() string {
	var b strings.Builder
	b.WriteString(styles.Subtitle.Render("Who is working on this vehicle?"))
	b.WriteString("\n\n")

	staff := m.activeStaff()
	if len(staff) == 0 {
		b.WriteString(styles.Muted.Render("No active staff available."))
		return b.String()
	}
	for i, s := range staff {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		box := "[ ]"
		line := s.FullName
		if m.wiz.Draft().HasEmployee(s.UserID) {
			box = "[x]"
			line = styles.RowSelected.Render(line)
		}
		if i == m.cursor {
			line = styles.RowCursor.Render(s.FullName)
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, box, line))
	}
	return b.String()
}

func (m wizardModel) viewVehicleStep() string {
	var b strings.Builder
	b.WriteString(styles.Subtitle.Render("Which vehicle is being serviced?"))
	b.WriteString("\n\n")
	b.WriteString("Plate\n" + m.plate.View() + "\n\n")

	if m.looking {
		b.WriteString(m.spin.View() + " Looking up vehicle...\n")
		return b.String()
	}
	if m.creating {
		b.WriteString(m.spin.View() + " Registering vehicle...\n")
		return b.String()
	}

	res := m.wiz.Resolution()
	switch {
	case res.IsFound():
		vehicle := res.Vehicle()
		var panel strings.Builder
		panel.WriteString(fmt.Sprintf("Plate      %s\n", vehicle.Plate))
		panel.WriteString(fmt.Sprintf("Make/Model %s\n", vehicle.MakeModel))
		panel.WriteString(fmt.Sprintf("Category   %s", m.categoryName(vehicle.VehicleCategoryID)))
		if vehicle.PlanActive {
			panel.WriteString("\n" + styles.BadgeActive.Render("Active plan: billed to the client's plan"))
		}
		b.WriteString(styles.Panel.Render(panel.String()))
		b.WriteString("\n")

	case res.IsNotFound():
		var form strings.Builder
		form.WriteString(styles.Warning.Render("Not registered yet"))
		form.WriteString("\n\n")
		form.WriteString("Make / Model\n" + m.make.View() + "\n\n")
		name := "(none)"
		if len(m.categories) > 0 {
			name = m.categories[m.catIdx].CategoryName
		}
		form.WriteString(fmt.Sprintf("Category  < %s >", name))
		b.WriteString(styles.Panel.Render(form.String()))
		b.WriteString("\n")
	}
	return b.String()
}

func (m wizardModel) categoryName(id int) string {
	for _, c := range m.categories {
		if c.VehicleCategoryID == id {
			return c.CategoryName
		}
	}
	return fmt.Sprintf("#%d", id)
}

func (m wizardModel) viewServicesStep() string {
	var b strings.Builder
	b.WriteString(styles.Subtitle.Render("Which services were performed?"))
	b.WriteString("\n\n")

	if len(m.services) == 0 {
		b.WriteString(styles.Muted.Render("No services available."))
		return b.String()
	}

	categoryID := m.wiz.Draft().VehicleCategoryID
	for i, svc := range m.services {
		cursor := "  "
		if i == m.cursor {
			cursor = "> "
		}
		box := "[ ]"
		name := svc.ServiceName
		if m.wiz.Draft().HasService(svc.ServiceID) {
			box = "[x]"
			name = styles.RowSelected.Render(name)
		}
		if i == m.cursor {
			name = styles.RowCursor.Render(svc.ServiceName)
		}
		price := svc.PriceFor(categoryID)
		b.WriteString(fmt.Sprintf("%s%s %s  %s\n", cursor, box, name,
			styles.Muted.Render("$"+price.StringFixed(2))))
	}
	return b.String()
}

func (m wizardModel) viewAdjustmentsStep() string {
	var b strings.Builder
	b.WriteString(styles.Subtitle.Render("Any discounts or extra fees?"))
	b.WriteString("\n\n")

	labels := []string{"Discount ($)", "Discount Reason", "Fee ($)", "Fee Reason"}
	for field := 0; field < adjFieldCount; field++ {
		label := labels[field]
		if field == m.focus {
			label = styles.RowCursor.Render(label)
		}
		b.WriteString(label + "\n" + m.adj[field].View() + "\n\n")
	}
	return b.String()
}

func (m wizardModel) viewPaymentStep() string {
	var b strings.Builder
	b.WriteString(styles.Subtitle.Render("How is this worksheet paid?"))
	b.WriteString("\n\n")

	if m.wiz.PaymentLocked() {
		b.WriteString(styles.Warning.Render("This vehicle is on an active plan; payment is locked to the plan."))
		b.WriteString("\n\n")
	}

	selected := m.wiz.Draft().PaymentMethod
	for i, method := range paymentMethods {
		cursor := "  "
		if i == m.payIdx {
			cursor = "> "
		}
		mark := "( )"
		label := method
		if method == selected {
			mark = "(o)"
			label = styles.RowSelected.Render(label)
		}
		if !m.paymentSelectable(i) {
			label = styles.Muted.Render(method)
		} else if i == m.payIdx {
			label = styles.RowCursor.Render(method)
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", cursor, mark, label))
	}
	return b.String()
}

func (m wizardModel) viewSummaryStep() string {
	draft := m.wiz.Draft()

	var panel strings.Builder
	panel.WriteString(styles.Subtitle.Render("Review and submit"))
	panel.WriteString("\n\n")

	names := make([]string, 0, len(draft.SelectedEmployeeIDs))
	for _, id := range draft.SelectedEmployeeIDs {
		for _, s := range m.staff {
			if s.UserID == id {
				names = append(names, s.FullName)
			}
		}
	}
	panel.WriteString(fmt.Sprintf("Staff      %s\n", util.JoinNames(names, 60)))
	panel.WriteString(fmt.Sprintf("Plate      %s\n", draft.Plate))
	panel.WriteString(fmt.Sprintf("Category   %s\n", m.categoryName(draft.VehicleCategoryID)))

	serviceNames := make([]string, 0, len(draft.SelectedServiceIDs))
	for _, id := range draft.SelectedServiceIDs {
		for _, svc := range m.services {
			if svc.ServiceID == id {
				serviceNames = append(serviceNames, svc.ServiceName)
			}
		}
	}
	panel.WriteString(fmt.Sprintf("Services   %s\n", util.JoinNames(serviceNames, 60)))
	if draft.Discount != "" {
		panel.WriteString(fmt.Sprintf("Discount   $%s  %s\n", draft.Discount, draft.DiscountReason))
	}
	if draft.Fee != "" {
		panel.WriteString(fmt.Sprintf("Fee        $%s  %s\n", draft.Fee, draft.FeeReason))
	}
	panel.WriteString(fmt.Sprintf("Payment    %s\n", draft.PaymentMethod))
	panel.WriteString(fmt.Sprintf("Total      $%s", m.wiz.LiveTotal()))

	out := styles.Panel.Render(panel.String())
	if m.submitting {
		out += "\n" + m.spin.View() + " Submitting..."
	}
	return out
}

func (m wizardModel) helpForStep() string {
	switch m.wiz.Step() {
	case worksheet.StepStaff:
		return "↑/↓ move · space select · enter next · ctrl+x cancel"
	case worksheet.StepVehicle:
		if m.wiz.Resolution().IsNotFound() {
			return "tab plate/details · ←/→ category · enter register · esc back · ctrl+x cancel"
		}
		if m.wiz.Resolution().IsFound() {
			return "enter next · esc back · ctrl+x cancel"
		}
		return "enter look up · esc back · ctrl+x cancel"
	case worksheet.StepServices:
		return "↑/↓ move · space select · enter next · esc back · ctrl+x cancel"
	case worksheet.StepAdjustments:
		return "tab next field · enter next · esc back · ctrl+x cancel"
	case worksheet.StepPayment:
		return "↑/↓ move · space select · enter next · esc back · ctrl+x cancel"
	case worksheet.StepSummary:
		return "enter submit · esc back · ctrl+x cancel"
	}
	return ""
}
