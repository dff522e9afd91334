// Copyright 2026 Produtix Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"
	"fmt"

	"github.com/produtix/org-service/internal/logging"
	"github.com/produtix/org-service/internal/monitoring"
	"github.com/produtix/org-service/internal/tracing"
	"github.com/produtix/org-service/internal/types"
)

type Service struct {
	access  AccessReaderInterface
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func NewService(
	access AccessReaderInterface,
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		access:  access,
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// Resolve picks the identity's active organization. The persisted hint is
// honored only while it still maps to a usable organization; otherwise the
// first available one wins, owned organizations ordered first. Returns nil
// when the identity has no usable organization at all.
func (s *Service) Resolve(ctx context.Context, identityID string) (*types.Selection, error) {
	ctx, span := s.tracer.Start(ctx, "session.Service.Resolve")
	defer span.End()

	access, err := s.access.ListAccess(ctx, identityID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve access: %w", err)
	}

	if len(access.Available) == 0 {
		return nil, nil
	}

	hint, err := s.storage.GetSessionHint(ctx, identityID)
	if err != nil {
		// A lost hint only costs the user their previous selection.
		s.logger.Errorf("failed to read session hint for %s: %v", identityID, err)
		hint = ""
	}

	if hint != "" {
		for _, acc := range access.Available {
			if acc.Org.ID == hint {
				return selection(acc), nil
			}
		}
	}

	return selection(access.Available[0]), nil
}

// Switch persists orgID as the identity's selection. An orgID the identity
// cannot use is ignored and the current resolution is returned unchanged.
func (s *Service) Switch(ctx context.Context, identityID, orgID string) (*types.Selection, error) {
	ctx, span := s.tracer.Start(ctx, "session.Service.Switch")
	defer span.End()

	access, err := s.access.ListAccess(ctx, identityID)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve access: %w", err)
	}

	for _, acc := range access.Available {
		if acc.Org.ID != orgID {
			continue
		}

		if err := s.storage.UpsertSessionHint(ctx, identityID, orgID); err != nil {
			return nil, fmt.Errorf("failed to persist session hint: %w", err)
		}

		return selection(acc), nil
	}

	s.logger.Debugf("switch to unavailable org %s ignored for %s", orgID, identityID)

	return s.Resolve(ctx, identityID)
}

func selection(acc types.OrgAccess) *types.Selection {
	return &types.Selection{
		OrgID:   acc.Org.ID,
		Role:    acc.Role,
		IsOwner: acc.IsOwner,
	}
}
