package domain

import "time"

// Company represents the tenant the authenticated user belongs to
type Company struct {
	ID             string        `json:"id"`
	Name           string        `json:"name"`
	Slug           string        `json:"slug,omitempty"`
	Description    string        `json:"description,omitempty"`
	Website        string        `json:"website,omitempty"`
	LogoURL        string        `json:"logo_url,omitempty"`
	PrimaryColor   string        `json:"primary_color,omitempty"`
	SecondaryColor string        `json:"secondary_color,omitempty"`
	Usage          *CompanyUsage `json:"usage,omitempty"`
	Limits         *CompanyLimit `json:"limits,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// CompanyUsage holds the tenant's current consumption counters
type CompanyUsage struct {
	Documents     int     `json:"documents"`
	Chatbots      int     `json:"chatbots"`
	TeamMembers   int     `json:"team_members"`
	StorageMB     float64 `json:"storage_mb"`
	MonthlyChats  int     `json:"monthly_chats"`
}

// CompanyLimit holds the tenant's plan limits
type CompanyLimit struct {
	MaxDocuments   int     `json:"max_documents"`
	MaxChatbots    int     `json:"max_chatbots"`
	MaxTeamMembers int     `json:"max_team_members"`
	MaxStorageMB   float64 `json:"max_storage_mb"`
}

// CompanyUpdate carries the editable profile fields. Empty values are
// stripped before being sent so partial updates never blank a field.
type CompanyUpdate struct {
	Name           string `json:"name,omitempty"`
	Description    string `json:"description,omitempty"`
	Website        string `json:"website,omitempty"`
	PrimaryColor   string `json:"primary_color,omitempty"`
	SecondaryColor string `json:"secondary_color,omitempty"`
}

// Fields returns the update as a map holding only the non-empty fields
func (u CompanyUpdate) Fields() map[string]string {
	out := make(map[string]string)
	if u.Name != "" {
		out["name"] = u.Name
	}
	if u.Description != "" {
		out["description"] = u.Description
	}
	if u.Website != "" {
		out["website"] = u.Website
	}
	if u.PrimaryColor != "" {
		out["primary_color"] = u.PrimaryColor
	}
	if u.SecondaryColor != "" {
		out["secondary_color"] = u.SecondaryColor
	}
	return out
}

// TeamMember is a user as listed under a company
type TeamMember struct {
	ID          string     `json:"id"`
	Email       string     `json:"email"`
	FullName    string     `json:"full_name"`
	Role        Role       `json:"role"`
	Active      bool       `json:"active"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	JoinedAt    time.Time  `json:"joined_at"`
}

// MemberUpdate changes a team member's role or active flag
type MemberUpdate struct {
	Role   Role  `json:"role,omitempty"`
	Active *bool `json:"active,omitempty"`
}

// Validate checks the member update before any network call is made
func (u MemberUpdate) Validate() error {
	if u.Role != "" && !u.Role.Valid() {
		return ErrInvalidInput
	}
	return nil
}

// InvitationStatus is the lifecycle state of a team invitation
type InvitationStatus string

const (
	InvitationPending   InvitationStatus = "pending"
	InvitationAccepted  InvitationStatus = "accepted"
	InvitationExpired   InvitationStatus = "expired"
	InvitationCancelled InvitationStatus = "cancelled"
)

// Invitation is a pending offer to join a company
type Invitation struct {
	ID        string           `json:"id"`
	Email     string           `json:"email"`
	Role      Role             `json:"role"`
	Status    InvitationStatus `json:"status"`
	InvitedBy string           `json:"invited_by,omitempty"`
	ExpiresAt time.Time        `json:"expires_at"`
	CreatedAt time.Time        `json:"created_at"`
}

// InvitationRequest creates a new invitation
type InvitationRequest struct {
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Validate checks the invitation before any network call is made
func (r InvitationRequest) Validate() error {
	if !emailPattern.MatchString(r.Email) {
		return ErrInvalidInput
	}
	if !r.Role.Valid() {
		return ErrInvalidInput
	}
	return nil
}
