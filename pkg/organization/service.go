// Copyright 2026 Produtix Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organization

import (
	"context"
	"errors"
	"fmt"

	"github.com/produtix/org-service/internal/authorization"
	"github.com/produtix/org-service/internal/logging"
	"github.com/produtix/org-service/internal/monitoring"
	"github.com/produtix/org-service/internal/storage"
	"github.com/produtix/org-service/internal/tracing"
	"github.com/produtix/org-service/internal/types"
)

var (
	// ErrNotOwner is returned when a non-owner attempts an owner-only operation.
	ErrNotOwner = errors.New("only the organization owner may perform this operation")
	// ErrForbidden is returned when the caller lacks the required role.
	ErrForbidden = errors.New("forbidden")
)

type Service struct {
	storage            StorageInterface
	authz              AuthzInterface
	kratos             KratosClientInterface
	invitationLifetime string

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	storage StorageInterface,
	authz AuthzInterface,
	kratos KratosClientInterface,
	invitationLifetime string,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage:            storage,
		authz:              authz,
		kratos:             kratos,
		invitationLifetime: invitationLifetime,
		tracer:             tracer,
		monitor:            monitor,
		logger:             logger,
	}
}

// ListAccess resolves every organization the identity may act within,
// split into usable organizations and invitations awaiting a response.
// Owned organizations come first and win over membership rows referencing
// the same organization.
func (s *Service) ListAccess(ctx context.Context, identityID string) (*types.OrgContext, error) {
	ctx, span := s.tracer.Start(ctx, "organization.Service.ListAccess")
	defer span.End()

	email := s.identityEmail(ctx, identityID)

	owned, err := s.storage.ListOwnedOrganizations(ctx, identityID)
	if err != nil {
		return nil, fmt.Errorf("failed to list owned organizations: %w", err)
	}

	rows, err := s.storage.ListMembershipRows(ctx, identityID, email)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}

	access := &types.OrgContext{}
	seen := make(map[string]bool, len(owned))

	for _, o := range owned {
		seen[o.ID] = true
		access.Available = append(access.Available, types.OrgAccess{
			Org:     *o,
			Role:    types.RoleOwner,
			IsOwner: true,
		})
	}

	for _, r := range rows {
		switch r.Status {
		case types.StatusActive:
			if seen[r.Org.ID] {
				continue
			}
			seen[r.Org.ID] = true
			access.Available = append(access.Available, types.OrgAccess{
				Org:     r.Org,
				Role:    r.Role,
				IsOwner: false,
			})
		case types.StatusPending:
			access.Pending = append(access.Pending, types.PendingInvite{
				InviteID:  r.MembershipID,
				Org:       r.Org,
				Role:      r.Role,
				CreatedAt: r.CreatedAt,
			})
		}
	}

	return access, nil
}

func (s *Service) CreateOrganization(ctx context.Context, identityID, name, logoURL string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "organization.Service.CreateOrganization")
	defer span.End()

	o := &types.Organization{
		Name:    name,
		LogoURL: logoURL,
		OwnerID: identityID,
	}

	created, err := s.storage.CreateOrganization(ctx, o)
	if err != nil {
		return nil, fmt.Errorf("failed to create organization: %w", err)
	}

	if err := s.authz.AssignOrgRole(ctx, created.ID, identityID, types.RoleOwner); err != nil {
		s.logger.Errorf("failed to assign owner relation for org %s: %v", created.ID, err)
		// Ownership is implicit in the organization row; the tuple is
		// re-derivable, so creation still succeeds.
	}

	return created, nil
}

func (s *Service) UpdateOrganization(ctx context.Context, identityID string, org *types.Organization, paths []string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "organization.Service.UpdateOrganization")
	defer span.End()

	current, err := s.storage.GetOrganizationByID(ctx, org.ID)
	if err != nil {
		return nil, err
	}

	allowed, err := s.authz.CheckOrgAccess(ctx, org.ID, identityID, authorization.CAN_EDIT_PERMISSION)
	if err != nil {
		return nil, fmt.Errorf("failed to check access: %w", err)
	}
	if !allowed && current.OwnerID != identityID {
		s.logger.Security().AuthzFailure(identityID, authorization.CAN_EDIT_PERMISSION)
		return nil, ErrForbidden
	}

	if err := s.storage.UpdateOrganization(ctx, org, paths); err != nil {
		return nil, fmt.Errorf("failed to update organization: %w", err)
	}

	return s.storage.GetOrganizationByID(ctx, org.ID)
}

// DeleteOrganization removes the organization row; memberships cascade in
// the database. Session hints referencing it are cleared so no stale
// selection survives a reload.
func (s *Service) DeleteOrganization(ctx context.Context, identityID, orgID string) error {
	ctx, span := s.tracer.Start(ctx, "organization.Service.DeleteOrganization")
	defer span.End()

	org, err := s.storage.GetOrganizationByID(ctx, orgID)
	if err != nil {
		return err
	}

	if org.OwnerID != identityID {
		s.logger.Security().AuthzFailure(identityID, authorization.CAN_DELETE_PERMISSION)
		return ErrNotOwner
	}

	if err := s.storage.DeleteOrganization(ctx, orgID); err != nil {
		return fmt.Errorf("failed to delete organization: %w", err)
	}

	if err := s.storage.DeleteSessionHintsByOrg(ctx, orgID); err != nil {
		// Stale hints are revalidated on every resolve, so this is not fatal.
		s.logger.Errorf("failed to clear session hints for org %s: %v", orgID, err)
	}

	if err := s.authz.DeleteOrganization(ctx, orgID); err != nil {
		// Log but don't fail, storage is already deleted.
		s.logger.Errorf("failed to delete org relations from authz: %v", err)
	}

	s.logger.Security().OrgDeleted(identityID, orgID)

	return nil
}

// AcceptInvite flips a pending membership to active and rebinds it to the
// accepting identity. The caller is expected to re-run ListAccess in full
// afterwards rather than patch state incrementally.
func (s *Service) AcceptInvite(ctx context.Context, identityID, inviteID string) error {
	ctx, span := s.tracer.Start(ctx, "organization.Service.AcceptInvite")
	defer span.End()

	m, err := s.inviteForIdentity(ctx, identityID, inviteID)
	if err != nil {
		return err
	}

	if err := s.storage.ActivateMembership(ctx, inviteID, identityID); err != nil {
		return fmt.Errorf("failed to accept invite: %w", err)
	}

	if err := s.authz.AssignOrgRole(ctx, m.OrgID, identityID, m.Role); err != nil {
		return fmt.Errorf("failed to assign role in authz: %w", err)
	}

	return nil
}

func (s *Service) RejectInvite(ctx context.Context, identityID, inviteID string) error {
	ctx, span := s.tracer.Start(ctx, "organization.Service.RejectInvite")
	defer span.End()

	if _, err := s.inviteForIdentity(ctx, identityID, inviteID); err != nil {
		return err
	}

	if err := s.storage.DeleteMembership(ctx, inviteID); err != nil {
		return fmt.Errorf("failed to reject invite: %w", err)
	}

	return nil
}

// inviteForIdentity loads a pending membership and verifies it is
// addressed to the caller, by bound identity id or by email. Anything else
// resolves to not-found so invite ids cannot be probed.
func (s *Service) inviteForIdentity(ctx context.Context, identityID, inviteID string) (*types.Membership, error) {
	m, err := s.storage.GetMembershipByID(ctx, inviteID)
	if err != nil {
		return nil, err
	}

	if m.Status != types.StatusPending {
		return nil, storage.ErrNotFound
	}

	if m.IdentityID == identityID {
		return m, nil
	}

	if email := s.identityEmail(ctx, identityID); email != "" && m.Email == email {
		return m, nil
	}

	return nil, storage.ErrNotFound
}

func (s *Service) InviteMember(ctx context.Context, identityID, orgID, email string, role types.Role) (string, string, error) {
	ctx, span := s.tracer.Start(ctx, "organization.Service.InviteMember")
	defer span.End()

	if !role.Valid() {
		return "", "", fmt.Errorf("unknown role: %s", role)
	}

	org, err := s.storage.GetOrganizationByID(ctx, orgID)
	if err != nil {
		return "", "", err
	}

	allowed, err := s.authz.CheckOrgAccess(ctx, orgID, identityID, authorization.CAN_MANAGE_MEMBERS_PERMISSION)
	if err != nil {
		return "", "", fmt.Errorf("failed to check access: %w", err)
	}
	if !allowed && org.OwnerID != identityID {
		s.logger.Security().AuthzFailure(identityID, authorization.CAN_MANAGE_MEMBERS_PERMISSION)
		return "", "", ErrForbidden
	}

	inviteeID, err := s.kratos.GetIdentityIDByEmail(ctx, email)
	if err != nil {
		s.logger.Errorf("failed to check identity existence: %v", err)
		return "", "", fmt.Errorf("failed to check identity")
	}

	if inviteeID == "" {
		s.logger.Infof("creating new identity for email %s", email)
		inviteeID, err = s.kratos.CreateIdentity(ctx, email)
		if err != nil {
			s.logger.Errorf("failed to create identity: %v", err)
			return "", "", fmt.Errorf("failed to provision user")
		}
	}

	m := &types.Membership{
		OrgID:      orgID,
		IdentityID: inviteeID,
		Email:      email,
		Role:       role,
		Status:     types.StatusPending,
	}

	if _, err := s.storage.AddMembership(ctx, m); err != nil {
		if !errors.Is(err, storage.ErrDuplicateKey) {
			s.logger.Errorf("failed to add membership: %v", err)
			return "", "", fmt.Errorf("failed to add member")
		}
		// Already invited or already a member; proceed to re-issue the
		// recovery link as a re-invite mechanism.
	}

	link, code, err := s.kratos.CreateRecoveryLink(ctx, inviteeID, s.invitationLifetime)
	if err != nil {
		s.logger.Errorf("failed to create recovery link: %v", err)
		return "", "", fmt.Errorf("failed to generate invitation link")
	}

	return link, code, nil
}

func (s *Service) ListMembers(ctx context.Context, identityID, orgID string) ([]*types.Member, error) {
	ctx, span := s.tracer.Start(ctx, "organization.Service.ListMembers")
	defer span.End()

	org, err := s.storage.GetOrganizationByID(ctx, orgID)
	if err != nil {
		return nil, err
	}

	allowed, err := s.authz.CheckOrgAccess(ctx, orgID, identityID, authorization.CAN_VIEW_PERMISSION)
	if err != nil {
		return nil, fmt.Errorf("failed to check access: %w", err)
	}
	if !allowed && org.OwnerID != identityID {
		s.logger.Security().AuthzFailure(identityID, authorization.CAN_VIEW_PERMISSION)
		return nil, ErrForbidden
	}

	memberships, err := s.storage.ListMembersByOrgID(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}

	members := []*types.Member{{
		IdentityID: org.OwnerID,
		Email:      s.identityEmail(ctx, org.OwnerID),
		Role:       types.RoleOwner,
		Status:     types.StatusActive,
	}}

	for _, m := range memberships {
		email := m.Email
		if email == "" && m.IdentityID != "" {
			email = s.identityEmail(ctx, m.IdentityID)
		}
		members = append(members, &types.Member{
			IdentityID: m.IdentityID,
			Email:      email,
			Role:       m.Role,
			Status:     m.Status,
		})
	}

	return members, nil
}

// identityEmail resolves an identity's email from Kratos, empty on any
// failure. Callers treat the email as best effort.
func (s *Service) identityEmail(ctx context.Context, identityID string) string {
	identity, err := s.kratos.GetIdentity(ctx, identityID)
	if err != nil {
		s.logger.Warnf("failed to get identity %s: %v", identityID, err)
		return ""
	}

	if traits, ok := identity.Traits.(map[string]interface{}); ok {
		if e, ok := traits["email"].(string); ok {
			return e
		}
	}

	return ""
}
