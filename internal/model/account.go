package model

// Account roles.
const (
	RoleManager = "manager"
	RoleStaff   = "staff"
)

// Account is a login credential — maps to accounts.
// Only internal employees carry one; external employees are roster-only.
type Account struct {
	AccountID    string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"account_id"`
	Username     string `gorm:"type:varchar(150);not null;uniqueIndex"         json:"username"`
	Email        string `gorm:"type:varchar(255)"                              json:"email,omitempty"`
	PasswordHash string `gorm:"type:varchar(255);not null"                     json:"-"`
	Role         string `gorm:"type:varchar(20);not null;default:'staff'"      json:"role"` // manager | staff
	IsActive     bool   `gorm:"not null;default:true"                          json:"is_active"`
	BaseModel
}

// TableName sets the table name.
func (Account) TableName() string { return "accounts" }
