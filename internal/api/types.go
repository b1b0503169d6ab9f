package api

import "github.com/shopspring/decimal"

// StaffMember is a staff record as returned by the backend.
type StaffMember struct {
	UserID   int    `json:"user_id"`
	FullName string `json:"full_name"`
	Username string `json:"username"`
	Role     string `json:"user_role"`
	IsActive bool   `json:"is_active"`
}

// CreateStaffRequest is the payload for POST /api/staff/create.
type CreateStaffRequest struct {
	FirstName       string `json:"first_name"`
	LastName        string `json:"last_name"`
	Role            string `json:"role"`
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// ClientPlan is a recurring-service subscription tying a client to one or
// more vehicles.
type ClientPlan struct {
	ClientPlanID int    `json:"client_plan_id"`
	ClientName   string `json:"client_name"`
	BillingCycle string `json:"billing_cycle_type"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	IsActive     bool   `json:"is_active"`
	VehicleCount int    `json:"vehicle_count"`
}

// CreatePlanRequest is the payload for POST /api/plans/create. Signature is
// a base64 PNG without a data-URI prefix; the backend rejects plans without
// one, and the client checks before calling.
type CreatePlanRequest struct {
	ClientName   string `json:"client_name"`
	BillingCycle string `json:"billing_cycle"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Signature    string `json:"signature"`
}

// AddPlanVehicleRequest is the payload for POST /api/plans/{id}/vehicles.
type AddPlanVehicleRequest struct {
	Plate      string `json:"plate"`
	CategoryID int    `json:"category_id"`
	MakeModel  string `json:"make_model"`
}

// VehicleCategory is static reference data fetched once per screen.
type VehicleCategory struct {
	VehicleCategoryID int    `json:"vehicle_category_id"`
	CategoryName      string `json:"category_name"`
}

// Vehicle is a vehicle record with its billing-plan linkage, as returned by
// lookup and create.
type Vehicle struct {
	VehicleID         int    `json:"vehicle_id"`
	Plate             string `json:"plate"`
	MakeModel         string `json:"make_model"`
	VehicleCategoryID int    `json:"vehicle_category_id"`
	PlanActive        bool   `json:"plan_active"`
	ClientPlanID      *int   `json:"client_plan_id"`
}

// CreateVehicleRequest is the payload for POST /api/vehicles/create.
type CreateVehicleRequest struct {
	Plate      string `json:"plate"`
	MakeModel  string `json:"make_model"`
	CategoryID int    `json:"category_id"`
}

// ServicePrice is a per-category price entry. A service with no entry for a
// category is unpriced there and contributes zero.
type ServicePrice struct {
	VehicleCategoryID int             `json:"vehicle_category_id"`
	BasePrice         decimal.Decimal `json:"base_price"`
}

// Service is an offered detailing service with category-dependent pricing.
type Service struct {
	ServiceID   int            `json:"service_id"`
	ServiceName string         `json:"service_name"`
	Pricing     []ServicePrice `json:"pricing"`
}

// PriceFor returns the base price of the service at the given category, or
// zero when the service has no price entry for it.
func (s Service) PriceFor(categoryID int) decimal.Decimal {
	for _, p := range s.Pricing {
		if p.VehicleCategoryID == categoryID {
			return p.BasePrice
		}
	}
	return decimal.Zero
}

// WorksheetPayload is the submission body for POST /api/worksheet/submit.
// The backend resolves the vehicle by normalized plate at submit time.
type WorksheetPayload struct {
	Plate          string  `json:"plate"`
	EmployeeIDs    []int   `json:"employee_ids"`
	ServiceIDs     []int   `json:"service_ids"`
	Discount       float64 `json:"discount"`
	DiscountReason string  `json:"discount_reason"`
	Fee            float64 `json:"fee"`
	FeeReason      string  `json:"fee_reason"`
	PaymentMethod  string  `json:"payment_method"`
}

// PreviewRequest is the body for POST /api/worksheet/preview.
type PreviewRequest struct {
	Plate      string `json:"plate"`
	ServiceIDs []int  `json:"service_ids"`
}

// Preview is the server-computed price preview for a plate and service set.
type Preview struct {
	Plate string          `json:"plate"`
	Total decimal.Decimal `json:"total"`
}

// Transaction is the created worksheet transaction. The client only reads
// back the identifier for display.
type Transaction struct {
	TransactionID int `json:"transaction_id"`
}

// LoginRequest is the body for POST /login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	AccessToken string `json:"access_token"`
}
