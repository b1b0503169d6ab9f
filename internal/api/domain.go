package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/powertrack/powertrack/internal/errors"
)

// Login authenticates with the backend and returns the issued bearer token.
// It does not store the token; that is the session's job.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var resp LoginResponse
	err := c.doJSON(ctx, requestSpec{
		method: http.MethodPost,
		path:   "/login",
		body:   LoginRequest{Username: username, Password: password},
		public: true,
	}, &resp)
	if err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", errors.New("login succeeded but no token was returned")
	}
	return resp.AccessToken, nil
}

// ListStaff returns all staff members.
func (c *Client) ListStaff(ctx context.Context) ([]StaffMember, error) {
	var staff []StaffMember
	err := c.doJSON(ctx, requestSpec{
		method: http.MethodGet,
		path:   "/api/staff",
	}, &staff)
	return staff, err
}

// CreateStaff creates a staff member.
func (c *Client) CreateStaff(ctx context.Context, req CreateStaffRequest) (*StaffMember, error) {
	var created StaffMember
	err := c.doJSON(ctx, requestSpec{
		method: http.MethodPost,
		path:   "/api/staff/create",
		body:   req,
	}, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// ToggleStaff flips a staff member's active flag. Staff are never deleted.
func (c *Client) ToggleStaff(ctx context.Context, userID int) (*StaffMember, error) {
	var updated StaffMember
	err := c.doJSON(ctx, requestSpec{
		method: http.MethodPatch,
		path:   fmt.Sprintf("/api/staff/%d/toggle", userID),
	}, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// ListPlans returns all client plans with their vehicle counts.
func (c *Client) ListPlans(ctx context.Context) ([]ClientPlan, error) {
	var plans []ClientPlan
	err := c.doJSON(ctx, requestSpec{
		method: http.MethodGet,
		path:   "/api/plans",
	}, &plans)
	return plans, err
}

// CreatePlan creates a client plan. The request must carry a signature.
func (c *Client) CreatePlan(ctx context.Context, req CreatePlanRequest) (*ClientPlan, error) {
	if req.Signature == "" {
		return nil, errors.NewValidationError("signature", "signature is required")
	}
	var created ClientPlan
	err := c.doJSON(ctx, requestSpec{
		method: http.MethodPost,
		path:   "/api/plans/create",
		body:   req,
	}, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// AddPlanVehicle adds a vehicle to an existing plan.
func (c *Client) AddPlanVehicle(ctx context.Context, planID int, req AddPlanVehicleRequest) (*ClientPlan, error) {
	var updated ClientPlan
	err := c.doJSON(ctx, requestSpec{
		method: http.MethodPost,
		path:   fmt.Sprintf("/api/plans/%d/vehicles", planID),
		body:   req,
	}, &updated)
	if err != nil {
		return nil, err
	}
	return &updated, nil
}

// ListVehicleCategories returns the static category reference data.
func (c *Client) ListVehicleCategories(ctx context.Context) ([]VehicleCategory, error) {
	var cats []VehicleCategory
	err := c.doJSON(ctx, requestSpec{
		method: http.MethodGet,
		path:   "/api/vehicle-categories",
	}, &cats)
	return cats, err
}

// LookupVehicle searches for a vehicle by normalized plate. The outcome is
// three-way: (vehicle, true, nil) when found, (nil, false, nil) when the
// backend answered 404 — absence is not an error, it is what tells the
// wizard to offer vehicle creation — and (nil, false, err) for everything
// else.
func (c *Client) LookupVehicle(ctx context.Context, plate string) (*Vehicle, bool, error) {
	resp, err := c.do(ctx, requestSpec{
		method: http.MethodGet,
		path:   "/api/vehicles/lookup",
		query:  map[string]string{"plate": plate},
	})
	if err != nil {
		return nil, false, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, false, nil
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return nil, false, errors.NewAPIError("/api/vehicles/lookup", resp.StatusCode, nil)
	}

	var vehicle Vehicle
	if err := decodeBody(resp, &vehicle); err != nil {
		return nil, false, err
	}
	return &vehicle, true, nil
}

// CreateVehicle registers a new vehicle.
func (c *Client) CreateVehicle(ctx context.Context, req CreateVehicleRequest) (*Vehicle, error) {
	var created Vehicle
	err := c.doJSON(ctx, requestSpec{
		method: http.MethodPost,
		path:   "/api/vehicles/create",
		body:   req,
	}, &created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// ListActiveServices returns the active services with nested pricing.
func (c *Client) ListActiveServices(ctx context.Context) ([]Service, error) {
	var services []Service
	err := c.doJSON(ctx, requestSpec{
		method: http.MethodGet,
		path:   "/api/services/active",
	}, &services)
	return services, err
}

// PreviewWorksheet asks the backend to price a plate and service set. This
// is optional; submission does not depend on it.
func (c *Client) PreviewWorksheet(ctx context.Context, req PreviewRequest) (*Preview, error) {
	var preview Preview
	err := c.doJSON(ctx, requestSpec{
		method: http.MethodPost,
		path:   "/api/worksheet/preview",
		body:   req,
	}, &preview)
	if err != nil {
		return nil, err
	}
	return &preview, nil
}

// SubmitWorksheet records a worksheet transaction.
func (c *Client) SubmitWorksheet(ctx context.Context, payload WorksheetPayload) (*Transaction, error) {
	var tx Transaction
	err := c.doJSON(ctx, requestSpec{
		method: http.MethodPost,
		path:   "/api/worksheet/submit",
		body:   payload,
	}, &tx)
	if err != nil {
		return nil, err
	}
	return &tx, nil
}
