// Copyright 2026 Produtix Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organization

import (
	"context"
	"errors"
	"testing"
	"time"

	ory "github.com/ory/client-go"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/produtix/org-service/internal/authorization"
	"github.com/produtix/org-service/internal/storage"
	"github.com/produtix/org-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package organization -destination ./mock_organization.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package organization -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package organization -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package organization -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

type serviceMocks struct {
	storage  *MockStorageInterface
	authz    *MockAuthzInterface
	kratos   *MockKratosClientInterface
	logger   *MockLoggerInterface
	security *MockSecurityLoggerInterface
}

func newServiceForTest(t *testing.T, spanName string) (*Service, *serviceMocks) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	m := &serviceMocks{
		storage:  NewMockStorageInterface(ctrl),
		authz:    NewMockAuthzInterface(ctrl),
		kratos:   NewMockKratosClientInterface(ctrl),
		logger:   NewMockLoggerInterface(ctrl),
		security: NewMockSecurityLoggerInterface(ctrl),
	}
	mockTracer := NewMockTracingInterface(ctrl)
	mockTracer.EXPECT().Start(gomock.Any(), spanName).
		Return(context.Background(), trace.SpanFromContext(context.Background()))
	mockMonitor := NewMockMonitorInterface(ctrl)

	s := NewService(m.storage, m.authz, m.kratos, "24h", mockTracer, mockMonitor, m.logger)
	return s, m
}

func identityWithEmail(id, email string) *ory.Identity {
	return &ory.Identity{
		Id:     id,
		Traits: map[string]interface{}{"email": email},
	}
}

func TestService_ListAccess(t *testing.T) {
	userID := "user-123"
	email := "user@example.com"

	ownedOrg := &types.Organization{ID: "org-owned", Name: "Owned", OwnerID: userID}
	memberOrg := types.Organization{ID: "org-member", Name: "Member"}
	inviteOrg := types.Organization{ID: "org-invite", Name: "Invite", CreatedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)}
	invitedAt := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)

	s, m := newServiceForTest(t, "organization.Service.ListAccess")

	m.kratos.EXPECT().GetIdentity(gomock.Any(), userID).Return(identityWithEmail(userID, email), nil)
	m.storage.EXPECT().ListOwnedOrganizations(gomock.Any(), userID).Return([]*types.Organization{ownedOrg}, nil)
	m.storage.EXPECT().ListMembershipRows(gomock.Any(), userID, email).Return([]*types.MembershipRow{
		// A membership row on an owned org must not produce a duplicate.
		{MembershipID: "m-0", Role: types.RoleAdmin, Status: types.StatusActive, Org: *ownedOrg},
		{MembershipID: "m-1", Role: types.RoleFinance, Status: types.StatusActive, Org: memberOrg},
		{MembershipID: "m-2", Role: types.RoleStaff, Status: types.StatusPending, CreatedAt: invitedAt, Org: inviteOrg},
	}, nil)

	access, err := s.ListAccess(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(access.Available) != 2 {
		t.Fatalf("expected 2 available orgs, got %d", len(access.Available))
	}
	if access.Available[0].Org.ID != "org-owned" || !access.Available[0].IsOwner || access.Available[0].Role != types.RoleOwner {
		t.Errorf("expected owned org first with owner role, got %+v", access.Available[0])
	}
	if access.Available[1].Org.ID != "org-member" || access.Available[1].Role != types.RoleFinance {
		t.Errorf("unexpected second org: %+v", access.Available[1])
	}
	if len(access.Pending) != 1 || access.Pending[0].InviteID != "m-2" || access.Pending[0].Role != types.RoleStaff {
		t.Errorf("unexpected pending invites: %+v", access.Pending)
	}
	// The invite timestamp is the membership's, not the organization's.
	if !access.Pending[0].CreatedAt.Equal(invitedAt) {
		t.Errorf("expected invite created at %v, got %v", invitedAt, access.Pending[0].CreatedAt)
	}
}

func TestService_ListAccessKratosDownStillResolves(t *testing.T) {
	userID := "user-123"
	s, m := newServiceForTest(t, "organization.Service.ListAccess")

	m.kratos.EXPECT().GetIdentity(gomock.Any(), userID).Return(nil, errors.New("kratos down"))
	m.logger.EXPECT().Warnf(gomock.Any(), gomock.Any(), gomock.Any())
	m.storage.EXPECT().ListOwnedOrganizations(gomock.Any(), userID).Return(nil, nil)
	m.storage.EXPECT().ListMembershipRows(gomock.Any(), userID, "").Return(nil, nil)

	access, err := s.ListAccess(context.Background(), userID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(access.Available) != 0 || len(access.Pending) != 0 {
		t.Errorf("expected empty access, got %+v", access)
	}
}

func TestService_ListAccessStorageError(t *testing.T) {
	userID := "user-123"
	s, m := newServiceForTest(t, "organization.Service.ListAccess")

	m.kratos.EXPECT().GetIdentity(gomock.Any(), userID).Return(identityWithEmail(userID, "user@example.com"), nil)
	m.storage.EXPECT().ListOwnedOrganizations(gomock.Any(), userID).Return(nil, errors.New("storage error"))

	if _, err := s.ListAccess(context.Background(), userID); err == nil {
		t.Error("expected error but got none")
	}
}

func TestService_AcceptInvite(t *testing.T) {
	userID := "user-123"
	inviteID := "invite-1"

	testCases := []struct {
		name        string
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name: "success - invite bound to identity",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetMembershipByID(gomock.Any(), inviteID).Return(&types.Membership{
					ID: inviteID, OrgID: "org-1", IdentityID: userID, Role: types.RoleAdmin, Status: types.StatusPending,
				}, nil)
				m.storage.EXPECT().ActivateMembership(gomock.Any(), inviteID, userID).Return(nil)
				m.authz.EXPECT().AssignOrgRole(gomock.Any(), "org-1", userID, types.RoleAdmin).Return(nil)
			},
		},
		{
			name: "success - invite matched by email",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetMembershipByID(gomock.Any(), inviteID).Return(&types.Membership{
					ID: inviteID, OrgID: "org-1", Email: "user@example.com", Role: types.RoleStaff, Status: types.StatusPending,
				}, nil)
				m.kratos.EXPECT().GetIdentity(gomock.Any(), userID).Return(identityWithEmail(userID, "user@example.com"), nil)
				m.storage.EXPECT().ActivateMembership(gomock.Any(), inviteID, userID).Return(nil)
				m.authz.EXPECT().AssignOrgRole(gomock.Any(), "org-1", userID, types.RoleStaff).Return(nil)
			},
		},
		{
			name: "error - invite already accepted",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetMembershipByID(gomock.Any(), inviteID).Return(&types.Membership{
					ID: inviteID, OrgID: "org-1", IdentityID: userID, Role: types.RoleAdmin, Status: types.StatusActive,
				}, nil)
			},
			expectedErr: storage.ErrNotFound,
		},
		{
			name: "error - invite addressed to someone else",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetMembershipByID(gomock.Any(), inviteID).Return(&types.Membership{
					ID: inviteID, OrgID: "org-1", IdentityID: "other-user", Email: "other@example.com",
					Role: types.RoleAdmin, Status: types.StatusPending,
				}, nil)
				m.kratos.EXPECT().GetIdentity(gomock.Any(), userID).Return(identityWithEmail(userID, "user@example.com"), nil)
			},
			expectedErr: storage.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, m := newServiceForTest(t, "organization.Service.AcceptInvite")
			tc.setupMocks(m)

			err := s.AcceptInvite(context.Background(), userID, inviteID)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected %v, got %v", tc.expectedErr, err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_RejectInvite(t *testing.T) {
	userID := "user-123"
	inviteID := "invite-1"

	s, m := newServiceForTest(t, "organization.Service.RejectInvite")

	m.storage.EXPECT().GetMembershipByID(gomock.Any(), inviteID).Return(&types.Membership{
		ID: inviteID, OrgID: "org-1", IdentityID: userID, Role: types.RoleAdmin, Status: types.StatusPending,
	}, nil)
	m.storage.EXPECT().DeleteMembership(gomock.Any(), inviteID).Return(nil)

	if err := s.RejectInvite(context.Background(), userID, inviteID); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestService_CreateOrganization(t *testing.T) {
	userID := "user-123"

	testCases := []struct {
		name        string
		setupMocks  func(*serviceMocks)
		expectedErr bool
	}{
		{
			name: "success",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().CreateOrganization(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, o *types.Organization) (*types.Organization, error) {
						if o.OwnerID != userID {
							return nil, errors.New("owner not set")
						}
						created := *o
						created.ID = "org-1"
						return &created, nil
					})
				m.authz.EXPECT().AssignOrgRole(gomock.Any(), "org-1", userID, types.RoleOwner).Return(nil)
			},
		},
		{
			name: "success - authz tuple failure is not fatal",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().CreateOrganization(gomock.Any(), gomock.Any()).Return(&types.Organization{ID: "org-1", OwnerID: userID}, nil)
				m.authz.EXPECT().AssignOrgRole(gomock.Any(), "org-1", userID, types.RoleOwner).Return(errors.New("authz down"))
				m.logger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())
			},
		},
		{
			name: "error - storage failure",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().CreateOrganization(gomock.Any(), gomock.Any()).Return(nil, errors.New("storage error"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, m := newServiceForTest(t, "organization.Service.CreateOrganization")
			tc.setupMocks(m)

			org, err := s.CreateOrganization(context.Background(), userID, "My Org", "")

			if tc.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if org.ID != "org-1" {
				t.Errorf("unexpected org: %+v", org)
			}
		})
	}
}

func TestService_DeleteOrganization(t *testing.T) {
	userID := "user-123"
	orgID := "org-1"

	testCases := []struct {
		name        string
		setupMocks  func(*serviceMocks)
		expectedErr error
	}{
		{
			name: "success",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetOrganizationByID(gomock.Any(), orgID).Return(&types.Organization{ID: orgID, OwnerID: userID}, nil)
				m.storage.EXPECT().DeleteOrganization(gomock.Any(), orgID).Return(nil)
				m.storage.EXPECT().DeleteSessionHintsByOrg(gomock.Any(), orgID).Return(nil)
				m.authz.EXPECT().DeleteOrganization(gomock.Any(), orgID).Return(nil)
				m.logger.EXPECT().Security().Return(m.security)
				m.security.EXPECT().OrgDeleted(userID, orgID)
			},
		},
		{
			name: "error - caller is not the owner",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetOrganizationByID(gomock.Any(), orgID).Return(&types.Organization{ID: orgID, OwnerID: "someone-else"}, nil)
				m.logger.EXPECT().Security().Return(m.security)
				m.security.EXPECT().AuthzFailure(userID, authorization.CAN_DELETE_PERMISSION)
			},
			expectedErr: ErrNotOwner,
		},
		{
			name: "error - organization not found",
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetOrganizationByID(gomock.Any(), orgID).Return(nil, storage.ErrNotFound)
			},
			expectedErr: storage.ErrNotFound,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, m := newServiceForTest(t, "organization.Service.DeleteOrganization")
			tc.setupMocks(m)

			err := s.DeleteOrganization(context.Background(), userID, orgID)

			if tc.expectedErr != nil {
				if !errors.Is(err, tc.expectedErr) {
					t.Errorf("expected %v, got %v", tc.expectedErr, err)
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_InviteMember(t *testing.T) {
	userID := "user-123"
	orgID := "org-1"
	email := "invitee@example.com"

	testCases := []struct {
		name        string
		role        types.Role
		setupMocks  func(*serviceMocks)
		expectedErr bool
	}{
		{
			name: "success - existing identity",
			role: types.RoleFinance,
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetOrganizationByID(gomock.Any(), orgID).Return(&types.Organization{ID: orgID, OwnerID: userID}, nil)
				m.authz.EXPECT().CheckOrgAccess(gomock.Any(), orgID, userID, authorization.CAN_MANAGE_MEMBERS_PERMISSION).Return(true, nil)
				m.kratos.EXPECT().GetIdentityIDByEmail(gomock.Any(), email).Return("invitee-id", nil)
				m.storage.EXPECT().AddMembership(gomock.Any(), gomock.Any()).DoAndReturn(
					func(_ context.Context, mem *types.Membership) (string, error) {
						if mem.Status != types.StatusPending || mem.Role != types.RoleFinance {
							return "", errors.New("unexpected membership")
						}
						return "invite-1", nil
					})
				m.kratos.EXPECT().CreateRecoveryLink(gomock.Any(), "invitee-id", "24h").Return("https://link", "code", nil)
			},
		},
		{
			name: "success - new identity provisioned",
			role: types.RoleStaff,
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetOrganizationByID(gomock.Any(), orgID).Return(&types.Organization{ID: orgID, OwnerID: userID}, nil)
				m.authz.EXPECT().CheckOrgAccess(gomock.Any(), orgID, userID, authorization.CAN_MANAGE_MEMBERS_PERMISSION).Return(true, nil)
				m.kratos.EXPECT().GetIdentityIDByEmail(gomock.Any(), email).Return("", nil)
				m.logger.EXPECT().Infof(gomock.Any(), gomock.Any())
				m.kratos.EXPECT().CreateIdentity(gomock.Any(), email).Return("new-id", nil)
				m.storage.EXPECT().AddMembership(gomock.Any(), gomock.Any()).Return("invite-1", nil)
				m.kratos.EXPECT().CreateRecoveryLink(gomock.Any(), "new-id", "24h").Return("https://link", "code", nil)
			},
		},
		{
			name: "success - duplicate invite reissues link",
			role: types.RoleStaff,
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetOrganizationByID(gomock.Any(), orgID).Return(&types.Organization{ID: orgID, OwnerID: userID}, nil)
				m.authz.EXPECT().CheckOrgAccess(gomock.Any(), orgID, userID, authorization.CAN_MANAGE_MEMBERS_PERMISSION).Return(true, nil)
				m.kratos.EXPECT().GetIdentityIDByEmail(gomock.Any(), email).Return("invitee-id", nil)
				m.storage.EXPECT().AddMembership(gomock.Any(), gomock.Any()).Return("", storage.ErrDuplicateKey)
				m.kratos.EXPECT().CreateRecoveryLink(gomock.Any(), "invitee-id", "24h").Return("https://link", "code", nil)
			},
		},
		{
			name:        "error - unknown role",
			role:        types.Role("superuser"),
			setupMocks:  func(m *serviceMocks) {},
			expectedErr: true,
		},
		{
			name: "error - caller may not manage members",
			role: types.RoleStaff,
			setupMocks: func(m *serviceMocks) {
				m.storage.EXPECT().GetOrganizationByID(gomock.Any(), orgID).Return(&types.Organization{ID: orgID, OwnerID: "someone-else"}, nil)
				m.authz.EXPECT().CheckOrgAccess(gomock.Any(), orgID, userID, authorization.CAN_MANAGE_MEMBERS_PERMISSION).Return(false, nil)
				m.logger.EXPECT().Security().Return(m.security)
				m.security.EXPECT().AuthzFailure(userID, authorization.CAN_MANAGE_MEMBERS_PERMISSION)
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			s, m := newServiceForTest(t, "organization.Service.InviteMember")
			tc.setupMocks(m)

			link, code, err := s.InviteMember(context.Background(), userID, orgID, email, tc.role)

			if tc.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if link != "https://link" || code != "code" {
				t.Errorf("unexpected link/code: %s %s", link, code)
			}
		})
	}
}
