// Copyright 2026 Produtix Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"

	"github.com/ory/hydra/v2/oauth2"

	"github.com/produtix/org-service/internal/types"
)

// StorageInterface is the subset of the storage layer the webhook flows
// need.
type StorageInterface interface {
	BindInvitesToIdentity(ctx context.Context, email, identityID string) (int64, error)
	ListOwnedOrganizations(ctx context.Context, identityID string) ([]*types.Organization, error)
	ListMembershipRows(ctx context.Context, identityID, email string) ([]*types.MembershipRow, error)
	GetSessionHint(ctx context.Context, identityID string) (string, error)
}

type ServiceInterface interface {
	HandleRegistration(ctx context.Context, identityID, email string) error
	HandleTokenHook(ctx context.Context, req *oauth2.TokenHookRequest) (*TokenHookResponse, error)
}
