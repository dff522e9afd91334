// Copyright 2026 Produtix Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"

	"github.com/produtix/org-service/internal/types"
)

type ServiceInterface interface {
	Resolve(ctx context.Context, identityID string) (*types.Selection, error)
	Switch(ctx context.Context, identityID, orgID string) (*types.Selection, error)
}

// AccessReaderInterface is the slice of the organization service the
// selector needs.
type AccessReaderInterface interface {
	ListAccess(ctx context.Context, identityID string) (*types.OrgContext, error)
}

type StorageInterface interface {
	GetSessionHint(ctx context.Context, identityID string) (string, error)
	UpsertSessionHint(ctx context.Context, identityID, orgID string) error
}
