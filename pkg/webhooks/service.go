// Copyright 2026 Produtix Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"fmt"

	"github.com/ory/hydra/v2/oauth2"

	"github.com/produtix/org-service/internal/logging"
	"github.com/produtix/org-service/internal/monitoring"
	"github.com/produtix/org-service/internal/tracing"
	"github.com/produtix/org-service/internal/types"
)

type Service struct {
	storage StorageInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

var _ ServiceInterface = (*Service)(nil)

func NewService(
	storage StorageInterface,
	tracer tracing.TracingInterface,
	monitor monitoring.MonitorInterface,
	logger logging.LoggerInterface,
) *Service {
	return &Service{
		storage: storage,
		tracer:  tracer,
		monitor: monitor,
		logger:  logger,
	}
}

// HandleRegistration runs after a Kratos identity is created. Invites sent
// to the email before the account existed are bound to the new identity so
// they show up as pending on first login.
func (s *Service) HandleRegistration(ctx context.Context, identityID, email string) error {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleRegistration")
	defer span.End()

	if identityID == "" || email == "" {
		return fmt.Errorf("identity id or email is empty")
	}

	bound, err := s.storage.BindInvitesToIdentity(ctx, email, identityID)
	if err != nil {
		return fmt.Errorf("failed to bind invites: %w", err)
	}

	if bound > 0 {
		s.logger.Infof("bound %d pending invite(s) to identity %s", bound, identityID)
	}

	return nil
}

// HandleTokenHook enriches Hydra-issued tokens with the subject's
// organization roles and its currently selected organization.
func (s *Service) HandleTokenHook(ctx context.Context, req *oauth2.TokenHookRequest) (*TokenHookResponse, error) {
	ctx, span := s.tracer.Start(ctx, "webhooks.Service.HandleTokenHook")
	defer span.End()

	if req.Session == nil || req.Session.Subject == "" {
		return nil, fmt.Errorf("token hook request carries no subject")
	}
	subject := req.Session.Subject

	owned, err := s.storage.ListOwnedOrganizations(ctx, subject)
	if err != nil {
		return nil, fmt.Errorf("failed to list owned organizations: %w", err)
	}

	rows, err := s.storage.ListMembershipRows(ctx, subject, "")
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}

	orgs := make(map[string]string, len(owned)+len(rows))
	order := make([]string, 0, len(owned)+len(rows))
	for _, o := range owned {
		orgs[o.ID] = string(types.RoleOwner)
		order = append(order, o.ID)
	}
	for _, r := range rows {
		if r.Status != types.StatusActive {
			continue
		}
		if _, ok := orgs[r.Org.ID]; ok {
			continue
		}
		orgs[r.Org.ID] = string(r.Role)
		order = append(order, r.Org.ID)
	}

	claims := map[string]interface{}{
		"orgs": orgs,
	}

	if len(order) > 0 {
		active := order[0]
		hint, err := s.storage.GetSessionHint(ctx, subject)
		if err != nil {
			s.logger.Errorf("failed to read session hint for %s: %v", subject, err)
		} else if _, ok := orgs[hint]; ok {
			active = hint
		}
		claims["active_org"] = active
	}

	return &TokenHookResponse{
		Session: TokenSession{
			AccessToken: claims,
			IDToken:     claims,
		},
	}, nil
}
