package dto

// Employee creation modes.
const (
	EmployeeTypeInternal = "internal"
	EmployeeTypeExternal = "external"
)

// CredentialRequest describes the login account provisioned for an
// internal employee.
type CredentialRequest struct {
	Username string `json:"username" binding:"required,min=3,max=150"`
	Email    string `json:"email"    binding:"omitempty,email"`
	Password string `json:"password" binding:"required,min=8,max=128"`
	Role     string `json:"role"     binding:"required,oneof=manager staff"`
}

// CreateEmployeeRequest creates an external or internal employee.
// Credential is required when Type is "internal" (checked by the service).
type CreateEmployeeRequest struct {
	Type       string             `json:"type"       binding:"required,oneof=internal external"`
	FirstName  string             `json:"first_name" binding:"required,min=1,max=100"`
	LastName   string             `json:"last_name"  binding:"required,min=1,max=100"`
	Phone      string             `json:"phone"      binding:"omitempty,max=20"`
	HireDate   string             `json:"hire_date"  binding:"omitempty,datetime=2006-01-02"`
	Credential *CredentialRequest `json:"credential" binding:"omitempty"`
}

// ConvertEmployeeRequest converts an external employee to internal by
// provisioning a login account.
type ConvertEmployeeRequest struct {
	CredentialRequest
}

// UpdateEmployeeRequest edits an employee profile. Nil fields are untouched.
type UpdateEmployeeRequest struct {
	FirstName *string `json:"first_name" binding:"omitempty,min=1,max=100"`
	LastName  *string `json:"last_name"  binding:"omitempty,min=1,max=100"`
	Phone     *string `json:"phone"      binding:"omitempty,max=20"`
	HireDate  *string `json:"hire_date"  binding:"omitempty,datetime=2006-01-02"`
}

// EmployeeListRequest filters the employee listing.
type EmployeeListRequest struct {
	PaginationRequest
	Status  string `form:"status"  binding:"omitempty,oneof=internal external inactive"`
	Keyword string `form:"keyword" binding:"omitempty,max=50"`
}

// EmployeeSearchRequest is the autocomplete query over active employees.
type EmployeeSearchRequest struct {
	Term string `form:"term" binding:"omitempty,max=50"`
}

// EmployeeResponse is the public view of an employee.
type EmployeeResponse struct {
	ID         string           `json:"id"`
	FirstName  string           `json:"first_name"`
	LastName   string           `json:"last_name"`
	FullName   string           `json:"full_name"`
	Phone      string           `json:"phone,omitempty"`
	IsExternal bool             `json:"is_external"`
	IsActive   bool             `json:"is_active"`
	HireDate   string           `json:"hire_date,omitempty"`
	Account    *AccountResponse `json:"account,omitempty"`
	CreatedAt  string           `json:"created_at"`
	UpdatedAt  string           `json:"updated_at"`
}

// EmployeeStats summarizes the roster for the list header.
type EmployeeStats struct {
	Total    int64 `json:"total"`
	Internal int64 `json:"internal"`
	External int64 `json:"external"`
	Inactive int64 `json:"inactive"`
}
