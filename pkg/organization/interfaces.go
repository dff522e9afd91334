// Copyright 2026 Produtix Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organization

import (
	"context"

	ory "github.com/ory/client-go"

	"github.com/produtix/org-service/internal/types"
)

type ServiceInterface interface {
	ListAccess(ctx context.Context, identityID string) (*types.OrgContext, error)
	CreateOrganization(ctx context.Context, identityID, name, logoURL string) (*types.Organization, error)
	UpdateOrganization(ctx context.Context, identityID string, org *types.Organization, paths []string) (*types.Organization, error)
	DeleteOrganization(ctx context.Context, identityID, orgID string) error
	AcceptInvite(ctx context.Context, identityID, inviteID string) error
	RejectInvite(ctx context.Context, identityID, inviteID string) error
	InviteMember(ctx context.Context, identityID, orgID, email string, role types.Role) (string, string, error)
	ListMembers(ctx context.Context, identityID, orgID string) ([]*types.Member, error)
}

type StorageInterface interface {
	CreateOrganization(ctx context.Context, o *types.Organization) (*types.Organization, error)
	GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error)
	UpdateOrganization(ctx context.Context, o *types.Organization, paths []string) error
	DeleteOrganization(ctx context.Context, id string) error
	ListOwnedOrganizations(ctx context.Context, identityID string) ([]*types.Organization, error)
	AddMembership(ctx context.Context, mem *types.Membership) (string, error)
	GetMembershipByID(ctx context.Context, id string) (*types.Membership, error)
	ActivateMembership(ctx context.Context, id, identityID string) error
	DeleteMembership(ctx context.Context, id string) error
	ListMembershipRows(ctx context.Context, identityID, email string) ([]*types.MembershipRow, error)
	ListMembersByOrgID(ctx context.Context, orgID string) ([]*types.Membership, error)
	DeleteSessionHintsByOrg(ctx context.Context, orgID string) error
}

type AuthzInterface interface {
	AssignOrgRole(ctx context.Context, orgID, userID string, role types.Role) error
	RemoveOrgRole(ctx context.Context, orgID, userID string, role types.Role) error
	CheckOrgAccess(ctx context.Context, orgID, userID, relation string) (bool, error)
	DeleteOrganization(ctx context.Context, orgID string) error
}

type KratosClientInterface interface {
	GetIdentityIDByEmail(ctx context.Context, email string) (string, error)
	CreateIdentity(ctx context.Context, email string) (string, error)
	GetIdentity(ctx context.Context, id string) (*ory.Identity, error)
	CreateRecoveryLink(ctx context.Context, identityID string, expiresIn string) (string, string, error)
}
