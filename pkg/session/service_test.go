// Copyright 2026 Produtix Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/produtix/org-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package session -destination ./mock_session.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package session -destination ./mock_logger.go -source=../../internal/logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package session -destination ./mock_monitor.go -source=../../internal/monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package session -destination ./mock_tracing.go -source=../../internal/tracing/interfaces.go

func twoOrgAccess(userID string) *types.OrgContext {
	return &types.OrgContext{
		Available: []types.OrgAccess{
			{Org: types.Organization{ID: "org-1", OwnerID: userID}, Role: types.RoleOwner, IsOwner: true},
			{Org: types.Organization{ID: "org-2"}, Role: types.RoleFinance, IsOwner: false},
		},
	}
}

func TestService_Resolve(t *testing.T) {
	userID := "user-123"

	testCases := []struct {
		name        string
		setupMocks  func(*MockAccessReaderInterface, *MockStorageInterface, *MockLoggerInterface)
		expected    *types.Selection
		expectedErr bool
	}{
		{
			name: "hint selects the hinted org",
			setupMocks: func(access *MockAccessReaderInterface, storage *MockStorageInterface, logger *MockLoggerInterface) {
				access.EXPECT().ListAccess(gomock.Any(), userID).Return(twoOrgAccess(userID), nil)
				storage.EXPECT().GetSessionHint(gomock.Any(), userID).Return("org-2", nil)
			},
			expected: &types.Selection{OrgID: "org-2", Role: types.RoleFinance, IsOwner: false},
		},
		{
			name: "stale hint falls back to first available",
			setupMocks: func(access *MockAccessReaderInterface, storage *MockStorageInterface, logger *MockLoggerInterface) {
				access.EXPECT().ListAccess(gomock.Any(), userID).Return(twoOrgAccess(userID), nil)
				storage.EXPECT().GetSessionHint(gomock.Any(), userID).Return("org-deleted", nil)
			},
			expected: &types.Selection{OrgID: "org-1", Role: types.RoleOwner, IsOwner: true},
		},
		{
			name: "missing hint falls back to first available",
			setupMocks: func(access *MockAccessReaderInterface, storage *MockStorageInterface, logger *MockLoggerInterface) {
				access.EXPECT().ListAccess(gomock.Any(), userID).Return(twoOrgAccess(userID), nil)
				storage.EXPECT().GetSessionHint(gomock.Any(), userID).Return("", nil)
			},
			expected: &types.Selection{OrgID: "org-1", Role: types.RoleOwner, IsOwner: true},
		},
		{
			name: "hint read failure is not fatal",
			setupMocks: func(access *MockAccessReaderInterface, storage *MockStorageInterface, logger *MockLoggerInterface) {
				access.EXPECT().ListAccess(gomock.Any(), userID).Return(twoOrgAccess(userID), nil)
				storage.EXPECT().GetSessionHint(gomock.Any(), userID).Return("", errors.New("db error"))
				logger.EXPECT().Errorf(gomock.Any(), gomock.Any(), gomock.Any())
			},
			expected: &types.Selection{OrgID: "org-1", Role: types.RoleOwner, IsOwner: true},
		},
		{
			name: "no organizations resolves to nil",
			setupMocks: func(access *MockAccessReaderInterface, storage *MockStorageInterface, logger *MockLoggerInterface) {
				access.EXPECT().ListAccess(gomock.Any(), userID).Return(&types.OrgContext{}, nil)
			},
			expected: nil,
		},
		{
			name: "access read failure propagates",
			setupMocks: func(access *MockAccessReaderInterface, storage *MockStorageInterface, logger *MockLoggerInterface) {
				access.EXPECT().ListAccess(gomock.Any(), userID).Return(nil, errors.New("boom"))
			},
			expectedErr: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockAccess := NewMockAccessReaderInterface(ctrl)
			mockStorage := NewMockStorageInterface(ctrl)
			mockTracer := NewMockTracingInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			mockMonitor := NewMockMonitorInterface(ctrl)

			s := NewService(mockAccess, mockStorage, mockTracer, mockMonitor, mockLogger)

			mockTracer.EXPECT().Start(gomock.Any(), "session.Service.Resolve").
				Return(context.Background(), trace.SpanFromContext(context.Background()))
			tc.setupMocks(mockAccess, mockStorage, mockLogger)

			sel, err := s.Resolve(context.Background(), userID)

			if tc.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tc.expected == nil {
				if sel != nil {
					t.Errorf("expected nil selection, got %+v", sel)
				}
				return
			}
			if sel == nil || *sel != *tc.expected {
				t.Errorf("expected %+v, got %+v", tc.expected, sel)
			}
		})
	}
}

func TestService_Switch(t *testing.T) {
	userID := "user-123"

	t.Run("switch to an available org persists the hint", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAccess := NewMockAccessReaderInterface(ctrl)
		mockStorage := NewMockStorageInterface(ctrl)
		mockTracer := NewMockTracingInterface(ctrl)
		mockLogger := NewMockLoggerInterface(ctrl)
		mockMonitor := NewMockMonitorInterface(ctrl)

		s := NewService(mockAccess, mockStorage, mockTracer, mockMonitor, mockLogger)

		mockTracer.EXPECT().Start(gomock.Any(), "session.Service.Switch").
			Return(context.Background(), trace.SpanFromContext(context.Background()))
		mockAccess.EXPECT().ListAccess(gomock.Any(), userID).Return(twoOrgAccess(userID), nil)
		mockStorage.EXPECT().UpsertSessionHint(gomock.Any(), userID, "org-2").Return(nil)

		sel, err := s.Switch(context.Background(), userID, "org-2")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if sel == nil || sel.OrgID != "org-2" || sel.Role != types.RoleFinance {
			t.Errorf("unexpected selection: %+v", sel)
		}
	})

	t.Run("switch to an unavailable org is a no-op", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAccess := NewMockAccessReaderInterface(ctrl)
		mockStorage := NewMockStorageInterface(ctrl)
		mockTracer := NewMockTracingInterface(ctrl)
		mockLogger := NewMockLoggerInterface(ctrl)
		mockMonitor := NewMockMonitorInterface(ctrl)

		s := NewService(mockAccess, mockStorage, mockTracer, mockMonitor, mockLogger)

		mockTracer.EXPECT().Start(gomock.Any(), "session.Service.Switch").
			Return(context.Background(), trace.SpanFromContext(context.Background()))
		mockTracer.EXPECT().Start(gomock.Any(), "session.Service.Resolve").
			Return(context.Background(), trace.SpanFromContext(context.Background()))
		mockAccess.EXPECT().ListAccess(gomock.Any(), userID).Return(twoOrgAccess(userID), nil).Times(2)
		mockLogger.EXPECT().Debugf(gomock.Any(), gomock.Any(), gomock.Any())
		mockStorage.EXPECT().GetSessionHint(gomock.Any(), userID).Return("", nil)

		sel, err := s.Switch(context.Background(), userID, "org-unknown")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// The hint is untouched, resolution falls back to the first org.
		if sel == nil || sel.OrgID != "org-1" {
			t.Errorf("unexpected selection: %+v", sel)
		}
	})

	t.Run("hint write failure propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		mockAccess := NewMockAccessReaderInterface(ctrl)
		mockStorage := NewMockStorageInterface(ctrl)
		mockTracer := NewMockTracingInterface(ctrl)
		mockLogger := NewMockLoggerInterface(ctrl)
		mockMonitor := NewMockMonitorInterface(ctrl)

		s := NewService(mockAccess, mockStorage, mockTracer, mockMonitor, mockLogger)

		mockTracer.EXPECT().Start(gomock.Any(), "session.Service.Switch").
			Return(context.Background(), trace.SpanFromContext(context.Background()))
		mockAccess.EXPECT().ListAccess(gomock.Any(), userID).Return(twoOrgAccess(userID), nil)
		mockStorage.EXPECT().UpsertSessionHint(gomock.Any(), userID, "org-1").Return(errors.New("db error"))

		if _, err := s.Switch(context.Background(), userID, "org-1"); err == nil {
			t.Error("expected error but got none")
		}
	})
}
