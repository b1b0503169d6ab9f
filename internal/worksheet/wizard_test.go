package worksheet

import (
	"testing"

	"github.com/powertrack/powertrack/internal/api"
	"github.com/powertrack/powertrack/internal/errors"
)

// advanceToStep walks a wizard to the target step with valid draft state.
func advanceToStep(t *testing.T, w *Wizard, target Step) {
	t.Helper()
	for w.Step() < target {
		switch w.Step() {
		case StepStaff:
			if len(w.Draft().SelectedEmployeeIDs) == 0 {
				w.Draft().ToggleEmployee(1)
			}
		case StepVehicle:
			if !w.Resolution().IsFound() {
				w.SetPlate("ABC123")
				if _, err := w.BeginLookup(); err != nil {
					t.Fatalf("BeginLookup: %v", err)
				}
				w.ApplyLookup(&api.Vehicle{VehicleID: 4, MakeModel: "Toyota Corolla", VehicleCategoryID: 1}, true)
			}
		case StepServices:
			if len(w.Draft().SelectedServiceIDs) == 0 {
				w.Draft().ToggleService(1)
			}
		case StepPayment:
			if w.Draft().PaymentMethod == "" {
				if err := w.SetPaymentMethod(PaymentCash); err != nil {
					t.Fatalf("SetPaymentMethod: %v", err)
				}
			}
		}
		if err := w.Next(); err != nil {
			t.Fatalf("Next from %s: %v", w.Step(), err)
		}
	}
}

func TestStepOneBlockedWithoutStaff(t *testing.T) {
	w := NewWizard()

	err := w.Next()
	if !errors.IsValidation(err) {
		t.Fatalf("Next with no staff = %v, want validation error", err)
	}
	if w.Step() != StepStaff {
		t.Errorf("step advanced to %s despite failed guard", w.Step())
	}
	if w.CanAdvance() {
		t.Error("CanAdvance should be false with no staff selected")
	}

	w.Draft().ToggleEmployee(7)
	if err := w.Next(); err != nil {
		t.Fatalf("Next with staff selected: %v", err)
	}
	if w.Step() != StepVehicle {
		t.Errorf("step = %s, want Vehicle", w.Step())
	}
}

func TestStepTwoBlockedWithoutResolvedVehicle(t *testing.T) {
	w := NewWizard()
	w.Draft().ToggleEmployee(1)
	if err := w.Next(); err != nil {
		t.Fatal(err)
	}

	// Other fields filled in do not matter; only a resolved vehicle counts.
	w.SetPlate("ABC123")
	w.Draft().MakeModel = "Toyota Corolla"
	w.Draft().VehicleCategoryID = 1

	if w.CanAdvance() {
		t.Error("CanAdvance should be false with no resolved vehicle")
	}
	if err := w.Next(); !errors.IsValidation(err) {
		t.Fatalf("Next without resolution = %v, want validation error", err)
	}
	if w.Step() != StepVehicle {
		t.Errorf("step = %s, want Vehicle", w.Step())
	}

	// A not-found lookup still does not allow advancing.
	if _, err := w.BeginLookup(); err != nil {
		t.Fatal(err)
	}
	w.ApplyLookup(nil, false)
	if w.CanAdvance() {
		t.Error("CanAdvance should be false after a not-found lookup")
	}
}

func TestLookupNotFoundRevealsCreateForm(t *testing.T) {
	w := NewWizard()
	w.SetPlate("ZZZ999")
	if _, err := w.BeginLookup(); err != nil {
		t.Fatal(err)
	}

	w.ApplyLookup(nil, false)

	res := w.Resolution()
	if !res.IsNotFound() {
		t.Error("resolution should be NotFound after a 404 lookup")
	}
	if res.Vehicle() != nil {
		t.Error("a not-found lookup must not resolve any vehicle")
	}
}

func TestLookupFoundWithActivePlanLocksPayment(t *testing.T) {
	w := NewWizard()
	w.SetPlate("abc-123")
	if _, err := w.BeginLookup(); err != nil {
		t.Fatal(err)
	}

	planID := 5
	w.ApplyLookup(&api.Vehicle{
		VehicleID:         4,
		MakeModel:         "Ford Transit",
		VehicleCategoryID: 3,
		PlanActive:        true,
		ClientPlanID:      &planID,
	}, true)

	if w.Draft().PaymentMethod != PaymentPlan {
		t.Errorf("payment method = %q, want plan auto-selected", w.Draft().PaymentMethod)
	}
	if !w.PaymentLocked() {
		t.Error("payment selector should be locked while the plan is active")
	}
	if err := w.SetPaymentMethod(PaymentCash); !errors.Is(err, errors.ErrPaymentLocked) {
		t.Errorf("SetPaymentMethod(cash) = %v, want ErrPaymentLocked", err)
	}
	if err := w.SetPaymentMethod(PaymentPlan); err != nil {
		t.Errorf("SetPaymentMethod(plan) = %v, want nil", err)
	}
}

func TestPlanPaymentRequiresActivePlan(t *testing.T) {
	w := NewWizard()
	w.SetPlate("abc-123")
	if _, err := w.BeginLookup(); err != nil {
		t.Fatal(err)
	}

	w.ApplyLookup(&api.Vehicle{
		VehicleID:         4,
		MakeModel:         "Ford Transit",
		VehicleCategoryID: 3,
		PlanActive:        false,
	}, true)

	if err := w.SetPaymentMethod(PaymentPlan); !errors.IsValidation(err) {
		t.Errorf("SetPaymentMethod(plan) = %v, want validation error without an active plan", err)
	}
	if got := w.Draft().PaymentMethod; got != "" {
		t.Errorf("payment method = %q, want unchanged after the rejected choice", got)
	}
	if err := w.SetPaymentMethod(PaymentCash); err != nil {
		t.Errorf("SetPaymentMethod(cash) = %v, want nil", err)
	}
}

func TestBeginLookupRejectsEmptyPlate(t *testing.T) {
	w := NewWizard()
	w.SetPlate("  - ")
	if _, err := w.BeginLookup(); !errors.IsValidation(err) {
		t.Errorf("BeginLookup with empty plate = %v, want validation error", err)
	}
}

func TestBeginLookupResetsVehicleDependentState(t *testing.T) {
	w := NewWizard()
	w.SetPlate("ABC123")
	if _, err := w.BeginLookup(); err != nil {
		t.Fatal(err)
	}
	planID := 2
	w.ApplyLookup(&api.Vehicle{
		VehicleID: 1, MakeModel: "Old Car", VehicleCategoryID: 2,
		PlanActive: true, ClientPlanID: &planID,
	}, true)
	w.Draft().ToggleService(3)

	// Looking up a different plate must not leak the old vehicle's context.
	w.SetPlate("XYZ789")
	plate, err := w.BeginLookup()
	if err != nil {
		t.Fatal(err)
	}
	if plate != "XYZ789" {
		t.Errorf("normalized plate = %q, want XYZ789", plate)
	}

	d := w.Draft()
	if d.MakeModel != "" || d.VehicleCategoryID != 0 || d.PlanActive || d.ClientPlanID != nil {
		t.Errorf("vehicle fields not reset: %+v", d)
	}
	if len(d.SelectedServiceIDs) != 0 {
		t.Error("selected services must be cleared before a new lookup")
	}
	if !w.Resolution().IsUnresolved() {
		t.Error("resolution must return to Unresolved before a new lookup")
	}
}

func TestEditingPlateInvalidatesResolution(t *testing.T) {
	w := NewWizard()
	w.SetPlate("ABC123")
	if _, err := w.BeginLookup(); err != nil {
		t.Fatal(err)
	}
	w.ApplyLookup(&api.Vehicle{VehicleID: 4, VehicleCategoryID: 1}, true)
	if !w.Resolution().IsFound() {
		t.Fatal("lookup should have resolved the vehicle")
	}

	w.SetPlate("ABC124")

	if !w.Resolution().IsUnresolved() {
		t.Error("editing the plate must invalidate the resolution")
	}
	w.Draft().ToggleEmployee(1)
	// Wizard is on step 1 here; walk to step 2 and verify the guard holds.
	if err := w.Next(); err != nil {
		t.Fatal(err)
	}
	if err := w.Next(); !errors.IsValidation(err) {
		t.Errorf("Next after plate edit = %v, want validation error", err)
	}
}

func TestCreateVehicleRequiresCategory(t *testing.T) {
	w := NewWizard()
	w.SetPlate("NEW111")
	if _, err := w.BeginLookup(); err != nil {
		t.Fatal(err)
	}
	w.ApplyLookup(nil, false)
	w.Draft().MakeModel = "Honda Civic"

	if _, err := w.CreateVehicleRequest(); !errors.IsValidation(err) {
		t.Fatalf("CreateVehicleRequest without category = %v, want validation error", err)
	}

	w.Draft().VehicleCategoryID = 2
	req, err := w.CreateVehicleRequest()
	if err != nil {
		t.Fatalf("CreateVehicleRequest: %v", err)
	}
	if req.Plate != "NEW111" || req.CategoryID != 2 || req.MakeModel != "Honda Civic" {
		t.Errorf("request = %+v", req)
	}
}

func TestApplyCreatedForcesPlanInactiveAndAdvances(t *testing.T) {
	w := NewWizard()
	w.Draft().ToggleEmployee(1)
	if err := w.Next(); err != nil {
		t.Fatal(err)
	}
	w.SetPlate("NEW111")
	if _, err := w.BeginLookup(); err != nil {
		t.Fatal(err)
	}
	w.ApplyLookup(nil, false)
	w.Draft().VehicleCategoryID = 2

	planID := 1
	w.ApplyCreated(&api.Vehicle{VehicleID: 10, VehicleCategoryID: 2, PlanActive: true, ClientPlanID: &planID})

	if w.Step() != StepServices {
		t.Errorf("step = %s, want Services (auto-advance after creation)", w.Step())
	}
	if w.Draft().PlanActive {
		t.Error("a newly created vehicle cannot already be on a plan")
	}
	if w.PaymentLocked() {
		t.Error("payment must not be locked for a newly created vehicle")
	}
	if !w.Resolution().IsFound() {
		t.Error("created vehicle must be resolved")
	}
}

func TestCancelFullyClearsDraft(t *testing.T) {
	w := NewWizard()
	advanceToStep(t, w, StepPayment)
	w.Draft().Discount = "5"
	w.Draft().DiscountReason = "loyalty"

	w.Reset()

	if w.Step() != StepStaff {
		t.Errorf("step after Reset = %s, want Staff", w.Step())
	}
	d := w.Draft()
	if len(d.SelectedEmployeeIDs) != 0 || len(d.SelectedServiceIDs) != 0 {
		t.Error("selections must be empty after Reset")
	}
	if d.Plate != "" || d.Discount != "" || d.DiscountReason != "" || d.PaymentMethod != "" {
		t.Errorf("draft not fully cleared: %+v", d)
	}
	if !w.Resolution().IsUnresolved() {
		t.Error("resolution must be Unresolved after Reset")
	}
}

func TestPaymentGuard(t *testing.T) {
	w := NewWizard()
	advanceToStep(t, w, StepPayment)
	w.Draft().PaymentMethod = ""

	if err := w.Next(); !errors.IsValidation(err) {
		t.Fatalf("Next without payment method = %v, want validation error", err)
	}
	if err := w.SetPaymentMethod("bitcoin"); !errors.IsValidation(err) {
		t.Errorf("SetPaymentMethod(bitcoin) = %v, want validation error", err)
	}
	if err := w.SetPaymentMethod(PaymentCard); err != nil {
		t.Fatal(err)
	}
	if err := w.Next(); err != nil {
		t.Fatalf("Next with payment selected: %v", err)
	}
	if w.Step() != StepSummary {
		t.Errorf("step = %s, want Summary", w.Step())
	}
}

func TestServicesGuard(t *testing.T) {
	w := NewWizard()
	advanceToStep(t, w, StepServices)

	if err := w.Next(); !errors.IsValidation(err) {
		t.Fatalf("Next with no services = %v, want validation error", err)
	}
	w.Draft().ToggleService(2)
	if err := w.Next(); err != nil {
		t.Fatal(err)
	}
	if w.Step() != StepAdjustments {
		t.Errorf("step = %s, want Adjustments", w.Step())
	}

	// Adjustments has no guard.
	if err := w.Next(); err != nil {
		t.Errorf("Next from Adjustments with empty fields = %v, want nil", err)
	}
}

func TestPayloadCoercion(t *testing.T) {
	w := NewWizard()
	w.SetServices(nil)
	w.Draft().ToggleEmployee(2)
	w.Draft().ToggleEmployee(5)
	w.SetPlate("ab c-123")
	if _, err := w.BeginLookup(); err != nil {
		t.Fatal(err)
	}
	w.ApplyLookup(&api.Vehicle{VehicleID: 1, VehicleCategoryID: 1}, true)
	w.Draft().ToggleService(3)
	w.Draft().Discount = "5"
	w.Draft().DiscountReason = "regular"
	w.Draft().Fee = "2.50"
	w.Draft().FeeReason = "pet hair"
	if err := w.SetPaymentMethod(PaymentCard); err != nil {
		t.Fatal(err)
	}

	p := w.Payload()

	if p.Plate != "ABC123" {
		t.Errorf("Plate = %q, want ABC123 (normalized)", p.Plate)
	}
	if len(p.EmployeeIDs) != 2 || p.EmployeeIDs[0] != 2 || p.EmployeeIDs[1] != 5 {
		t.Errorf("EmployeeIDs = %v", p.EmployeeIDs)
	}
	if len(p.ServiceIDs) != 1 || p.ServiceIDs[0] != 3 {
		t.Errorf("ServiceIDs = %v", p.ServiceIDs)
	}
	if p.Discount != 5.0 {
		t.Errorf("Discount = %v, want 5.0", p.Discount)
	}
	if p.Fee != 2.5 {
		t.Errorf("Fee = %v, want 2.5", p.Fee)
	}
	if p.PaymentMethod != PaymentCard {
		t.Errorf("PaymentMethod = %q", p.PaymentMethod)
	}
}

func TestNextAtSummaryFails(t *testing.T) {
	w := NewWizard()
	advanceToStep(t, w, StepSummary)

	if err := w.Next(); err == nil {
		t.Error("Next at the final step should fail")
	}
	if w.Step() != StepSummary {
		t.Errorf("step = %s, want Summary", w.Step())
	}
}

func TestPrevStopsAtStepOne(t *testing.T) {
	w := NewWizard()
	w.Prev()
	if w.Step() != StepStaff {
		t.Errorf("Prev at step 1 moved to %s", w.Step())
	}

	advanceToStep(t, w, StepServices)
	w.Prev()
	if w.Step() != StepVehicle {
		t.Errorf("step = %s, want Vehicle", w.Step())
	}
}

func TestToggleHelpers(t *testing.T) {
	d := &Draft{}
	d.ToggleEmployee(1)
	d.ToggleEmployee(2)
	d.ToggleEmployee(1)
	if len(d.SelectedEmployeeIDs) != 1 || d.SelectedEmployeeIDs[0] != 2 {
		t.Errorf("SelectedEmployeeIDs = %v, want [2]", d.SelectedEmployeeIDs)
	}
	if d.HasEmployee(1) || !d.HasEmployee(2) {
		t.Error("HasEmployee mismatch after toggles")
	}
}
