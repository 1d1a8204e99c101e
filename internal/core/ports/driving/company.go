package driving

import (
	"context"

	"github.com/custodia-labs/botdesk-client/internal/core/domain"
)

// CompanyService drives the company, member and invitation endpoints
type CompanyService interface {
	// Current fetches the authenticated user's company
	Current(ctx context.Context) (*domain.Company, error)

	// Update changes the company profile; empty fields are stripped
	Update(ctx context.Context, companyID string, update domain.CompanyUpdate) (*domain.Company, error)

	// Members lists the company's team members
	Members(ctx context.Context, companyID string) ([]domain.TeamMember, error)

	// UpdateMember changes a member's role or active flag
	UpdateMember(ctx context.Context, companyID, userID string, update domain.MemberUpdate) (*domain.TeamMember, error)

	// RemoveMember removes a member from the company
	RemoveMember(ctx context.Context, companyID, userID string) error

	// CreateInvitation invites an email address to join
	CreateInvitation(ctx context.Context, companyID string, req domain.InvitationRequest) (*domain.Invitation, error)

	// Invitations lists the company's invitations
	Invitations(ctx context.Context, companyID string) ([]domain.Invitation, error)

	// CancelInvitation withdraws a pending invitation
	CancelInvitation(ctx context.Context, companyID, invitationID string) error

	// UploadLogo replaces the company logo
	UploadLogo(ctx context.Context, companyID string, file domain.FileUpload) (*domain.Company, error)
}
