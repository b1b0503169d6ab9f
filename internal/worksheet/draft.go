package worksheet

// Payment methods accepted by the backend.
const (
	PaymentCash = "cash"
	PaymentCard = "card"
	PaymentPlan = "plan"
)

// Draft is the in-progress worksheet form state. It lives only in memory
// for the duration of one wizard run and is exclusively owned by the
// wizard; it is discarded wholesale on cancel and on successful submit.
//
// Discount and Fee stay strings because they originate from text inputs;
// they are coerced to numbers at pricing and payload-assembly time.
type Draft struct {
	SelectedEmployeeIDs []int

	Plate             string
	MakeModel         string
	VehicleCategoryID int
	PlanActive        bool
	ClientPlanID      *int

	SelectedServiceIDs []int

	Discount       string
	DiscountReason string
	Fee            string
	FeeReason      string

	PaymentMethod string
}

// HasEmployee reports whether the employee is selected.
func (d *Draft) HasEmployee(id int) bool {
	return containsInt(d.SelectedEmployeeIDs, id)
}

// ToggleEmployee adds or removes the employee from the selection.
func (d *Draft) ToggleEmployee(id int) {
	d.SelectedEmployeeIDs = toggleInt(d.SelectedEmployeeIDs, id)
}

// HasService reports whether the service is selected.
func (d *Draft) HasService(id int) bool {
	return containsInt(d.SelectedServiceIDs, id)
}

// ToggleService adds or removes the service from the selection.
func (d *Draft) ToggleService(id int) {
	d.SelectedServiceIDs = toggleInt(d.SelectedServiceIDs, id)
}

// resetVehicleFields clears everything that depends on the looked-up
// vehicle, so state from a previous plate cannot leak into a new vehicle's
// context. Selected services are cleared too: their prices depend on the
// vehicle's category.
func (d *Draft) resetVehicleFields() {
	d.MakeModel = ""
	d.VehicleCategoryID = 0
	d.PlanActive = false
	d.ClientPlanID = nil
	d.SelectedServiceIDs = nil
}

func containsInt(ids []int, id int) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

func toggleInt(ids []int, id int) []int {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return append(ids, id)
}
