package worksheet

import "github.com/powertrack/powertrack/internal/api"

// resolutionKind discriminates the vehicle resolution union.
type resolutionKind int

const (
	kindUnresolved resolutionKind = iota
	kindFound
	kindNotFound
)

// Resolution is the outcome of the step-2 vehicle lookup as a tagged union
// with three variants: Unresolved (no lookup has completed for the current
// plate text), Found (the lookup resolved a vehicle), and NotFound (the
// lookup completed and matched nothing, which is what reveals the
// create-vehicle form). Editing the plate returns the state to Unresolved.
type Resolution struct {
	kind    resolutionKind
	vehicle *api.Vehicle
}

// Unresolved returns the zero resolution: no completed lookup.
func Unresolved() Resolution {
	return Resolution{kind: kindUnresolved}
}

// Found returns a resolution carrying the looked-up or created vehicle.
func Found(v *api.Vehicle) Resolution {
	return Resolution{kind: kindFound, vehicle: v}
}

// NotFound returns the completed-but-empty resolution.
func NotFound() Resolution {
	return Resolution{kind: kindNotFound}
}

// IsUnresolved reports whether no lookup has completed.
func (r Resolution) IsUnresolved() bool { return r.kind == kindUnresolved }

// IsFound reports whether a vehicle is resolved.
func (r Resolution) IsFound() bool { return r.kind == kindFound }

// IsNotFound reports whether the lookup completed without a match.
func (r Resolution) IsNotFound() bool { return r.kind == kindNotFound }

// Vehicle returns the resolved vehicle, or nil unless IsFound.
func (r Resolution) Vehicle() *api.Vehicle {
	if r.kind != kindFound {
		return nil
	}
	return r.vehicle
}
