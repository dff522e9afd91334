// Copyright 2026 Produtix Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"context"
	"errors"
	"testing"

	"github.com/ory/hydra/v2/oauth2"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/produtix/org-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_webhooks.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package webhooks -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func TestService_HandleRegistration(t *testing.T) {
	identityID := "identity-123"
	email := "user@example.com"

	testCases := []struct {
		name        string
		identityID  string
		email       string
		setupMocks  func(*MockStorageInterface, *MockLoggerInterface)
		expectedErr bool
	}{
		{
			name:       "success - invites bound",
			identityID: identityID,
			email:      email,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().BindInvitesToIdentity(gomock.Any(), email, identityID).Return(int64(2), nil)
				mockLogger.EXPECT().Infof(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expectedErr: false,
		},
		{
			name:       "success - nothing to bind",
			identityID: identityID,
			email:      email,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().BindInvitesToIdentity(gomock.Any(), email, identityID).Return(int64(0), nil)
			},
			expectedErr: false,
		},
		{
			name:        "error - empty identity id",
			identityID:  "",
			email:       email,
			setupMocks:  func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {},
			expectedErr: true,
		},
		{
			name:        "error - empty email",
			identityID:  identityID,
			email:       "",
			setupMocks:  func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {},
			expectedErr: true,
		},
		{
			name:       "error - storage failure",
			identityID: identityID,
			email:      email,
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().BindInvitesToIdentity(gomock.Any(), email, identityID).Return(int64(0), errors.New("storage error"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockStorage, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "webhooks.Service.HandleRegistration").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockLogger)

			err := s.HandleRegistration(context.Background(), tc.identityID, tc.email)

			if tc.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestService_HandleTokenHook(t *testing.T) {
	userID := "user-123"
	ownedOrg := &types.Organization{ID: "org-1", Name: "Owned Org", OwnerID: userID}
	memberRow := &types.MembershipRow{
		Role:   types.RoleFinance,
		Status: types.StatusActive,
		Org:    types.Organization{ID: "org-2", Name: "Member Org"},
	}

	testCases := []struct {
		name         string
		request      *oauth2.TokenHookRequest
		setupMocks   func(*MockStorageInterface, *MockLoggerInterface)
		expectedErr  bool
		validateResp func(*testing.T, *TokenHookResponse)
	}{
		{
			name: "success - hint selects active org",
			request: &oauth2.TokenHookRequest{
				Session: oauth2.NewSession(userID),
			},
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().ListOwnedOrganizations(gomock.Any(), userID).Return([]*types.Organization{ownedOrg}, nil)
				mockStorage.EXPECT().ListMembershipRows(gomock.Any(), userID, "").Return([]*types.MembershipRow{memberRow}, nil)
				mockStorage.EXPECT().GetSessionHint(gomock.Any(), userID).Return("org-2", nil)
			},
			validateResp: func(t *testing.T, resp *TokenHookResponse) {
				if resp == nil {
					t.Fatal("expected response but got nil")
				}
				orgs, ok := resp.Session.AccessToken["orgs"].(map[string]string)
				if !ok {
					t.Fatal("expected orgs claim")
				}
				if orgs["org-1"] != "owner" || orgs["org-2"] != "finance" {
					t.Errorf("unexpected orgs claim: %v", orgs)
				}
				if resp.Session.AccessToken["active_org"] != "org-2" {
					t.Errorf("expected hint to win, got %v", resp.Session.AccessToken["active_org"])
				}
			},
		},
		{
			name: "success - stale hint falls back to first org",
			request: &oauth2.TokenHookRequest{
				Session: oauth2.NewSession(userID),
			},
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().ListOwnedOrganizations(gomock.Any(), userID).Return([]*types.Organization{ownedOrg}, nil)
				mockStorage.EXPECT().ListMembershipRows(gomock.Any(), userID, "").Return(nil, nil)
				mockStorage.EXPECT().GetSessionHint(gomock.Any(), userID).Return("org-gone", nil)
			},
			validateResp: func(t *testing.T, resp *TokenHookResponse) {
				if resp.Session.AccessToken["active_org"] != "org-1" {
					t.Errorf("expected fallback to org-1, got %v", resp.Session.AccessToken["active_org"])
				}
			},
		},
		{
			name: "success - user without orgs",
			request: &oauth2.TokenHookRequest{
				Session: oauth2.NewSession(userID),
			},
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().ListOwnedOrganizations(gomock.Any(), userID).Return(nil, nil)
				mockStorage.EXPECT().ListMembershipRows(gomock.Any(), userID, "").Return(nil, nil)
			},
			validateResp: func(t *testing.T, resp *TokenHookResponse) {
				if _, ok := resp.Session.AccessToken["active_org"]; ok {
					t.Error("expected no active_org claim")
				}
			},
		},
		{
			name:        "error - missing subject",
			request:     &oauth2.TokenHookRequest{},
			setupMocks:  func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {},
			expectedErr: true,
		},
		{
			name: "error - storage failure",
			request: &oauth2.TokenHookRequest{
				Session: oauth2.NewSession(userID),
			},
			setupMocks: func(mockStorage *MockStorageInterface, mockLogger *MockLoggerInterface) {
				mockStorage.EXPECT().ListOwnedOrganizations(gomock.Any(), userID).Return(nil, errors.New("storage error"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockStorage := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockStorage, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "webhooks.Service.HandleTokenHook").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockStorage, mockLogger)

			resp, err := s.HandleTokenHook(context.Background(), tc.request)

			if tc.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.validateResp != nil {
				tc.validateResp(t, resp)
			}
		})
	}
}
