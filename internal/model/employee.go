package model

import "time"

// Employee is a schedulable person — maps to employees.
//
// An employee is in exactly one of two modes: internal (linked to an
// Account) or external (roster-only, no account). The pairing is checked by
// ModeConsistent and backed by a CHECK constraint in the schema.
type Employee struct {
	EmployeeID string     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"employee_id"`
	AccountID  *string    `gorm:"type:uuid;uniqueIndex"                          json:"account_id,omitempty"`
	FirstName  string     `gorm:"type:varchar(100);not null"                     json:"first_name"`
	LastName   string     `gorm:"type:varchar(100);not null"                     json:"last_name"`
	Phone      string     `gorm:"type:varchar(20);not null;default:''"           json:"phone,omitempty"`
	IsExternal bool       `gorm:"not null;default:false"                         json:"is_external"`
	IsActive   bool       `gorm:"not null;default:true"                          json:"is_active"`
	HireDate   *time.Time `gorm:"type:date"                                      json:"hire_date,omitempty"`
	BaseModel

	Account *Account `gorm:"foreignKey:AccountID;references:AccountID" json:"account,omitempty"`
}

// TableName sets the table name.
func (Employee) TableName() string { return "employees" }

// FullName returns "First Last".
func (e *Employee) FullName() string {
	return e.FirstName + " " + e.LastName
}

// DisplayName returns the full name with status markers for listings.
func (e *Employee) DisplayName() string {
	name := e.FullName()
	if e.IsExternal {
		name += " (external)"
	}
	if !e.IsActive {
		name += " (inactive)"
	}
	return name
}

// ModeConsistent reports whether mode and account linkage agree:
// internal employees must carry an account, external ones must not.
func (e *Employee) ModeConsistent() bool {
	hasAccount := e.AccountID != nil && *e.AccountID != ""
	return e.IsExternal != hasAccount
}
