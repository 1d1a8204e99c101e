package services

import (
	"context"
	"net/url"

	"github.com/custodia-labs/botdesk-client/internal/core/domain"
	"github.com/custodia-labs/botdesk-client/internal/core/ports/driven"
	"github.com/custodia-labs/botdesk-client/internal/core/ports/driving"
)

// Ensure companyService implements CompanyService
var _ driving.CompanyService = (*companyService)(nil)

// companyService implements the CompanyService interface
type companyService struct {
	gateway driven.Gateway
}

// NewCompanyService creates a new CompanyService
func NewCompanyService(gateway driven.Gateway) driving.CompanyService {
	return &companyService{gateway: gateway}
}

// Current fetches the authenticated user's company
func (s *companyService) Current(ctx context.Context) (*domain.Company, error) {
	var company domain.Company
	if err := s.gateway.Get(ctx, "/companies/me", &company); err != nil {
		return nil, err
	}
	return &company, nil
}

// Update changes the company profile; empty fields are stripped
func (s *companyService) Update(ctx context.Context, companyID string, update domain.CompanyUpdate) (*domain.Company, error) {
	if companyID == "" {
		return nil, domain.ErrInvalidInput
	}

	fields := update.Fields()
	if len(fields) == 0 {
		return nil, domain.ErrInvalidInput
	}

	var company domain.Company
	if err := s.gateway.Put(ctx, "/companies/"+url.PathEscape(companyID), fields, &company); err != nil {
		return nil, err
	}
	return &company, nil
}

// Members lists the company's team members
func (s *companyService) Members(ctx context.Context, companyID string) ([]domain.TeamMember, error) {
	if companyID == "" {
		return nil, domain.ErrInvalidInput
	}

	var members []domain.TeamMember
	if err := s.gateway.Get(ctx, "/companies/"+url.PathEscape(companyID)+"/members", &members); err != nil {
		return nil, err
	}
	return members, nil
}

// UpdateMember changes a member's role or active flag
func (s *companyService) UpdateMember(ctx context.Context, companyID, userID string, update domain.MemberUpdate) (*domain.TeamMember, error) {
	if companyID == "" || userID == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := update.Validate(); err != nil {
		return nil, err
	}

	var member domain.TeamMember
	path := "/companies/" + url.PathEscape(companyID) + "/members/" + url.PathEscape(userID)
	if err := s.gateway.Put(ctx, path, update, &member); err != nil {
		return nil, err
	}
	return &member, nil
}

// RemoveMember removes a member from the company
func (s *companyService) RemoveMember(ctx context.Context, companyID, userID string) error {
	if companyID == "" || userID == "" {
		return domain.ErrInvalidInput
	}
	path := "/companies/" + url.PathEscape(companyID) + "/members/" + url.PathEscape(userID)
	return s.gateway.Delete(ctx, path, nil)
}

// CreateInvitation invites an email address to join
func (s *companyService) CreateInvitation(ctx context.Context, companyID string, req domain.InvitationRequest) (*domain.Invitation, error) {
	if companyID == "" {
		return nil, domain.ErrInvalidInput
	}
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var inv domain.Invitation
	if err := s.gateway.Post(ctx, "/companies/"+url.PathEscape(companyID)+"/invitations", req, &inv); err != nil {
		return nil, err
	}
	return &inv, nil
}

// Invitations lists the company's invitations
func (s *companyService) Invitations(ctx context.Context, companyID string) ([]domain.Invitation, error) {
	if companyID == "" {
		return nil, domain.ErrInvalidInput
	}

	var invs []domain.Invitation
	if err := s.gateway.Get(ctx, "/companies/"+url.PathEscape(companyID)+"/invitations", &invs); err != nil {
		return nil, err
	}
	return invs, nil
}

// CancelInvitation withdraws a pending invitation
func (s *companyService) CancelInvitation(ctx context.Context, companyID, invitationID string) error {
	if companyID == "" || invitationID == "" {
		return domain.ErrInvalidInput
	}
	path := "/companies/" + url.PathEscape(companyID) + "/invitations/" + url.PathEscape(invitationID)
	return s.gateway.Delete(ctx, path, nil)
}

// UploadLogo replaces the company logo
func (s *companyService) UploadLogo(ctx context.Context, companyID string, file domain.FileUpload) (*domain.Company, error) {
	if companyID == "" || len(file.Data) == 0 {
		return nil, domain.ErrInvalidInput
	}
	if file.Field == "" {
		file.Field = "logo"
	}

	var company domain.Company
	if err := s.gateway.Upload(ctx, "/companies/"+url.PathEscape(companyID)+"/logo", file, &company); err != nil {
		return nil, err
	}
	return &company, nil
}
