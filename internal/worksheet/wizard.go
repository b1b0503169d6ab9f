// Package worksheet implements the Daily Worksheet wizard: a six-step
// linear flow that records one service transaction against a vehicle. The
// wizard owns the draft form state, gates every forward transition behind a
// step-specific validator, derives the live price from the draft, and
// assembles the submission payload.
package worksheet

import (
	"strconv"

	"github.com/powertrack/powertrack/internal/api"
	"github.com/powertrack/powertrack/internal/errors"
)

// Step identifies one of the six wizard states. Steps are strictly ordered;
// the only transitions are one step forward (guarded), one step back, and a
// full reset.
type Step int

const (
	StepStaff Step = iota + 1
	StepVehicle
	StepServices
	StepAdjustments
	StepPayment
	StepSummary
)

// String returns the display name of the step.
func (s Step) String() string {
	switch s {
	case StepStaff:
		return "Staff"
	case StepVehicle:
		return "Vehicle"
	case StepServices:
		return "Services"
	case StepAdjustments:
		return "Adjustments"
	case StepPayment:
		return "Payment"
	case StepSummary:
		return "Summary"
	default:
		return "Unknown"
	}
}

// Wizard is the worksheet state machine. It is not safe for concurrent use;
// the TUI drives it from a single event loop.
type Wizard struct {
	step       Step
	draft      Draft
	resolution Resolution
	services   []api.Service
}

// NewWizard creates a wizard at step 1 with an empty draft.
func NewWizard() *Wizard {
	return &Wizard{step: StepStaff, resolution: Unresolved()}
}

// SetServices installs the loaded service list used for price derivation.
func (w *Wizard) SetServices(services []api.Service) {
	w.services = services
}

// Step returns the current step.
func (w *Wizard) Step() Step { return w.step }

// Draft exposes the draft for reading and for field edits that need no
// wizard-level bookkeeping (reasons, adjustments, make/model). Plate and
// payment edits must go through SetPlate and SetPaymentMethod.
func (w *Wizard) Draft() *Draft { return &w.draft }

// Resolution returns the current vehicle resolution.
func (w *Wizard) Resolution() Resolution { return w.resolution }

// Reset discards the entire draft and returns to step 1. This is the
// explicit reset transition used by cancel and by post-submit cleanup.
func (w *Wizard) Reset() {
	w.step = StepStaff
	w.draft = Draft{}
	w.resolution = Unresolved()
}

// Next validates the current step's guard and advances on success. A failed
// guard blocks the transition and returns a user-facing validation error;
// it never corrupts state.
func (w *Wizard) Next() error {
	switch w.step {
	case StepStaff:
		if len(w.draft.SelectedEmployeeIDs) == 0 {
			return errors.NewValidationError("staff", "select at least one staff member")
		}
	case StepVehicle:
		if !w.resolution.IsFound() {
			return errors.NewValidationError("vehicle", "look up or register a vehicle first")
		}
	case StepServices:
		if len(w.draft.SelectedServiceIDs) == 0 {
			return errors.NewValidationError("services", "select at least one service")
		}
	case StepAdjustments:
		// Discount, fee, and their reasons are optional.
	case StepPayment:
		if w.draft.PaymentMethod == "" {
			return errors.NewValidationError("payment", "select a payment method")
		}
	case StepSummary:
		return errors.NewValidationError("step", "already at the final step")
	}
	w.step++
	return nil
}

// Prev moves one step back. At step 1 it is a no-op.
func (w *Wizard) Prev() {
	if w.step > StepStaff {
		w.step--
	}
}

// CanAdvance reports whether the current step's guard would pass. The TUI
// uses it to disable the Next control; Next still re-checks the guard, so
// step 2 is double-enforced.
func (w *Wizard) CanAdvance() bool {
	switch w.step {
	case StepStaff:
		return len(w.draft.SelectedEmployeeIDs) > 0
	case StepVehicle:
		return w.resolution.IsFound()
	case StepServices:
		return len(w.draft.SelectedServiceIDs) > 0
	case StepAdjustments:
		return true
	case StepPayment:
		return w.draft.PaymentMethod != ""
	default:
		return false
	}
}

// SetPlate records plate text edits. Any completed lookup is invalidated:
// the resolution returns to Unresolved, so the vehicle-step guard forces a
// fresh lookup before the wizard can leave the step. Input is normalized as
// typed.
func (w *Wizard) SetPlate(plate string) {
	w.draft.Plate = NormalizePlate(plate)
	w.resolution = Unresolved()
}

// BeginLookup validates the plate locally and resets every vehicle-dependent
// draft field before the network call, so stale state from a previous plate
// cannot leak into the new vehicle's context. It returns the normalized
// plate to query.
func (w *Wizard) BeginLookup() (string, error) {
	plate := NormalizePlate(w.draft.Plate)
	if plate == "" {
		return "", errors.NewValidationError("plate", "enter a plate")
	}
	w.draft.Plate = plate
	w.draft.resetVehicleFields()
	w.resolution = Unresolved()
	return plate, nil
}

// ApplyLookup records the outcome of a completed lookup call.
//
// Found: the vehicle fields are populated, and when its billing plan is
// active the payment method is forced to "plan". Not found: the resolution
// moves to NotFound with no vehicle id, which is what reveals the
// create-vehicle form. Errors never reach here; a failed call leaves the
// resolution Unresolved.
func (w *Wizard) ApplyLookup(vehicle *api.Vehicle, found bool) {
	if !found {
		w.resolution = NotFound()
		return
	}

	w.draft.MakeModel = vehicle.MakeModel
	w.draft.VehicleCategoryID = vehicle.VehicleCategoryID
	w.draft.PlanActive = vehicle.PlanActive
	w.draft.ClientPlanID = vehicle.ClientPlanID
	if vehicle.PlanActive {
		w.draft.PaymentMethod = PaymentPlan
	}
	w.resolution = Found(vehicle)
}

// CreateVehicleRequest assembles the create-vehicle call from the draft.
// A category selection is required.
func (w *Wizard) CreateVehicleRequest() (api.CreateVehicleRequest, error) {
	if w.draft.VehicleCategoryID == 0 {
		return api.CreateVehicleRequest{}, errors.NewValidationError("category", "category is required")
	}
	return api.CreateVehicleRequest{
		Plate:      NormalizePlate(w.draft.Plate),
		MakeModel:  w.draft.MakeModel,
		CategoryID: w.draft.VehicleCategoryID,
	}, nil
}

// ApplyCreated binds a freshly created vehicle into the draft and advances
// straight to the services step. A new vehicle cannot already be on a plan,
// so plan-active is forced false.
func (w *Wizard) ApplyCreated(vehicle *api.Vehicle) {
	vehicle.PlanActive = false
	vehicle.ClientPlanID = nil
	w.draft.PlanActive = false
	w.draft.ClientPlanID = nil
	if vehicle.VehicleCategoryID != 0 {
		w.draft.VehicleCategoryID = vehicle.VehicleCategoryID
	}
	w.resolution = Found(vehicle)
	w.step = StepServices
}

// PaymentLocked reports whether the payment selector is locked to "plan"
// because the resolved vehicle has an active billing plan.
func (w *Wizard) PaymentLocked() bool {
	return w.draft.PlanActive
}

// SetPaymentMethod selects the payment method. While the vehicle's plan is
// active the method is locked to "plan" and any other choice is rejected;
// without an active plan, "plan" itself is not selectable.
func (w *Wizard) SetPaymentMethod(method string) error {
	if w.draft.PlanActive && method != PaymentPlan {
		return errors.ErrPaymentLocked
	}
	if !w.draft.PlanActive && method == PaymentPlan {
		return errors.NewValidationError("payment", "plan payment requires an active billing plan")
	}
	switch method {
	case PaymentCash, PaymentCard, PaymentPlan:
		w.draft.PaymentMethod = method
		return nil
	default:
		return errors.NewValidationError("payment", "unknown payment method "+strconv.Quote(method))
	}
}

// LiveTotal derives the current running total from the draft.
func (w *Wizard) LiveTotal() string {
	return LiveTotalString(&w.draft, w.services)
}

// Payload assembles the submission body: the normalized plate (the backend
// re-resolves the vehicle by plate at submit time), integer id lists, and
// float-coerced monetary amounts.
func (w *Wizard) Payload() api.WorksheetPayload {
	return api.WorksheetPayload{
		Plate:          NormalizePlate(w.draft.Plate),
		EmployeeIDs:    append([]int{}, w.draft.SelectedEmployeeIDs...),
		ServiceIDs:     append([]int{}, w.draft.SelectedServiceIDs...),
		Discount:       parseMoney(w.draft.Discount).InexactFloat64(),
		DiscountReason: w.draft.DiscountReason,
		Fee:            parseMoney(w.draft.Fee).InexactFloat64(),
		FeeReason:      w.draft.FeeReason,
		PaymentMethod:  w.draft.PaymentMethod,
	}
}
