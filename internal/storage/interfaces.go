// Copyright 2025 Produtix Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"

	"github.com/produtix/org-service/internal/types"
)

type StorageInterface interface {
	CreateOrganization(ctx context.Context, o *types.Organization) (*types.Organization, error)
	GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error)
	UpdateOrganization(ctx context.Context, o *types.Organization, paths []string) error
	DeleteOrganization(ctx context.Context, id string) error
	ListOwnedOrganizations(ctx context.Context, identityID string) ([]*types.Organization, error)

	AddMembership(ctx context.Context, m *types.Membership) (string, error)
	GetMembershipByID(ctx context.Context, id string) (*types.Membership, error)
	ActivateMembership(ctx context.Context, id, identityID string) error
	DeleteMembership(ctx context.Context, id string) error
	BindInvitesToIdentity(ctx context.Context, email, identityID string) (int64, error)
	ListMembershipRows(ctx context.Context, identityID, email string) ([]*types.MembershipRow, error)
	ListMembersByOrgID(ctx context.Context, orgID string) ([]*types.Membership, error)

	GetSessionHint(ctx context.Context, identityID string) (string, error)
	UpsertSessionHint(ctx context.Context, identityID, orgID string) error
	DeleteSessionHintsByOrg(ctx context.Context, orgID string) error
}
