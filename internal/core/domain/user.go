package domain

import "time"

// Role defines user permission level within a company
type Role string

const (
	RoleAdmin   Role = "admin"   // Manage company, members, billing
	RoleManager Role = "manager" // Manage chatbots and documents
	RoleMember  Role = "member"  // Use chatbots, upload documents
)

// Valid reports whether the role is one of the known values
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleManager, RoleMember:
		return true
	}
	return false
}

// User represents the authenticated account as returned by the API
type User struct {
	ID            string     `json:"id"`
	Email         string     `json:"email"`
	FullName      string     `json:"full_name"`
	Role          Role       `json:"role"`
	CompanyID     string     `json:"company_id,omitempty"`
	EmailVerified bool       `json:"email_verified"`
	Active        bool       `json:"active"`
	CreatedAt     time.Time  `json:"created_at"`
	LastLoginAt   *time.Time `json:"last_login_at,omitempty"`
}
