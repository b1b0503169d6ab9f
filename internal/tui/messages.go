package tui

import (
	"context"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/powertrack/powertrack/internal/api"
)

// loginResultMsg carries the outcome of a login attempt.
type loginResultMsg struct {
	token string
	err   error
}

// refDataMsg carries the wizard's reference data. The three fetches run
// concurrently; a failure in any one leaves its slice empty and is recorded
// in errs, degrading the wizard instead of blocking it.
type refDataMsg struct {
	staff      []api.StaffMember
	categories []api.VehicleCategory
	services   []api.Service
	errs       []error
}

// staffListMsg carries the staff screen's list fetch.
type staffListMsg struct {
	staff []api.StaffMember
	err   error
}

// staffSavedMsg is sent after a create or toggle completes; the screen
// re-fetches the list on success.
type staffSavedMsg struct {
	err error
}

// plansListMsg carries the plans screen's list and category fetches.
type plansListMsg struct {
	plans      []api.ClientPlan
	categories []api.VehicleCategory
	err        error
}

// planSavedMsg is sent after a plan create or vehicle addition completes.
type planSavedMsg struct {
	err error
}

// lookupResultMsg carries the three-way vehicle lookup outcome.
type lookupResultMsg struct {
	vehicle *api.Vehicle
	found   bool
	err     error
}

// vehicleCreatedMsg carries the result of registering a new vehicle.
type vehicleCreatedMsg struct {
	vehicle *api.Vehicle
	err     error
}

// submitResultMsg carries the result of the worksheet submission.
type submitResultMsg struct {
	tx  *api.Transaction
	err error
}

// Commands

func loginCmd(client *api.Client, username, password string) tea.Cmd {
	return func() tea.Msg {
		token, err := client.Login(context.Background(), username, password)
		return loginResultMsg{token: token, err: err}
	}
}

// loadRefDataCmd issues the three reference fetches concurrently and waits
// for all of them before the wizard becomes interactive.
func loadRefDataCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		var msg refDataMsg
		var mu sync.Mutex
		var wg sync.WaitGroup

		record := func(err error) {
			mu.Lock()
			msg.errs = append(msg.errs, err)
			mu.Unlock()
		}

		wg.Add(3)
		go func() {
			defer wg.Done()
			staff, err := client.ListStaff(context.Background())
			if err != nil {
				record(err)
				return
			}
			msg.staff = staff
		}()
		go func() {
			defer wg.Done()
			cats, err := client.ListVehicleCategories(context.Background())
			if err != nil {
				record(err)
				return
			}
			msg.categories = cats
		}()
		go func() {
			defer wg.Done()
			services, err := client.ListActiveServices(context.Background())
			if err != nil {
				record(err)
				return
			}
			msg.services = services
		}()
		wg.Wait()

		return msg
	}
}

func loadStaffCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		staff, err := client.ListStaff(context.Background())
		return staffListMsg{staff: staff, err: err}
	}
}

func toggleStaffCmd(client *api.Client, userID int) tea.Cmd {
	return func() tea.Msg {
		_, err := client.ToggleStaff(context.Background(), userID)
		return staffSavedMsg{err: err}
	}
}

func createStaffCmd(client *api.Client, req api.CreateStaffRequest) tea.Cmd {
	return func() tea.Msg {
		_, err := client.CreateStaff(context.Background(), req)
		return staffSavedMsg{err: err}
	}
}

func loadPlansCmd(client *api.Client) tea.Cmd {
	return func() tea.Msg {
		plans, err := client.ListPlans(context.Background())
		if err != nil {
			return plansListMsg{err: err}
		}
		cats, err := client.ListVehicleCategories(context.Background())
		return plansListMsg{plans: plans, categories: cats, err: err}
	}
}

func createPlanCmd(client *api.Client, req api.CreatePlanRequest) tea.Cmd {
	return func() tea.Msg {
		_, err := client.CreatePlan(context.Background(), req)
		return planSavedMsg{err: err}
	}
}

func addPlanVehicleCmd(client *api.Client, planID int, req api.AddPlanVehicleRequest) tea.Cmd {
	return func() tea.Msg {
		_, err := client.AddPlanVehicle(context.Background(), planID, req)
		return planSavedMsg{err: err}
	}
}

func lookupVehicleCmd(client *api.Client, plate string) tea.Cmd {
	return func() tea.Msg {
		vehicle, found, err := client.LookupVehicle(context.Background(), plate)
		return lookupResultMsg{vehicle: vehicle, found: found, err: err}
	}
}

func createVehicleCmd(client *api.Client, req api.CreateVehicleRequest) tea.Cmd {
	return func() tea.Msg {
		vehicle, err := client.CreateVehicle(context.Background(), req)
		return vehicleCreatedMsg{vehicle: vehicle, err: err}
	}
}

func submitWorksheetCmd(client *api.Client, payload api.WorksheetPayload) tea.Cmd {
	return func() tea.Msg {
		tx, err := client.SubmitWorksheet(context.Background(), payload)
		return submitResultMsg{tx: tx, err: err}
	}
}
