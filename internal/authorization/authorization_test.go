// Copyright 2026 Produtix Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"context"
	"errors"
	"testing"

	"go.opentelemetry.io/otel/trace"
	"go.uber.org/mock/gomock"

	"github.com/produtix/org-service/internal/openfga"
	"github.com/produtix/org-service/internal/types"
)

//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_interfaces.go -source=./interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_logger.go -source=../logging/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_monitor.go -source=../monitoring/interfaces.go
//go:generate mockgen -build_flags=--mod=mod -package authorization -destination ./mock_tracing.go -source=../tracing/interfaces.go

func setupAuthorizer(t *testing.T, spans ...string) (*Authorizer, *MockAuthzClientInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockClient := NewMockAuthzClientInterface(ctrl)
	mockTracer := NewMockTracingInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)
	mockMonitor := NewMockMonitorInterface(ctrl)

	for _, span := range spans {
		mockTracer.EXPECT().Start(gomock.Any(), span).
			Return(context.Background(), trace.SpanFromContext(context.Background()))
	}

	return NewAuthorizer(mockClient, mockTracer, mockMonitor, mockLogger), mockClient
}

func TestAuthorizer_Check(t *testing.T) {
	testCases := []struct {
		name        string
		allowed     bool
		clientErr   error
		expectedErr bool
	}{
		{name: "allowed", allowed: true},
		{name: "denied", allowed: false},
		{name: "client error", clientErr: errors.New("openfga error"), expectedErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, mockClient := setupAuthorizer(t, "authorization.Authorizer.Check")
			mockClient.EXPECT().Check(gomock.Any(), "user:u1", CAN_VIEW_PERMISSION, "organization:o1").
				Return(tc.allowed, tc.clientErr)

			allowed, err := a.Check(context.Background(), "user:u1", CAN_VIEW_PERMISSION, "organization:o1")

			if tc.expectedErr {
				if err == nil {
					t.Error("expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if allowed != tc.allowed {
				t.Errorf("expected %v, got %v", tc.allowed, allowed)
			}
		})
	}
}

func TestAuthorizer_FilterObjects(t *testing.T) {
	a, mockClient := setupAuthorizer(t,
		"authorization.Authorizer.FilterObjects",
		"authorization.Authorizer.ListObjects",
	)
	mockClient.EXPECT().ListObjects(gomock.Any(), "user:u1", CAN_VIEW_PERMISSION, "organization").
		Return([]string{"organization:o1", "organization:o3"}, nil)

	got, err := a.FilterObjects(
		context.Background(),
		"user:u1",
		CAN_VIEW_PERMISSION,
		"organization",
		[]string{"organization:o1", "organization:o2"},
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 || got[0] != "organization:o1" {
		t.Errorf("unexpected result: %v", got)
	}
}

func TestAuthorizer_ValidateModel(t *testing.T) {
	testCases := []struct {
		name        string
		equal       bool
		clientErr   error
		expectedErr error
	}{
		{name: "model matches", equal: true},
		{name: "model drift", equal: false, expectedErr: ErrInvalidAuthModel},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, mockClient := setupAuthorizer(t, "authorization.Authorizer.ValidateModel")
			mockClient.EXPECT().CompareModel(gomock.Any(), gomock.Any()).Return(tc.equal, tc.clientErr)

			err := a.ValidateModel(context.Background())

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

func TestAuthorizer_AssignOrgRole(t *testing.T) {
	testCases := []struct {
		name             string
		role             types.Role
		expectedRelation string
		expectedErr      bool
	}{
		{name: "owner", role: types.RoleOwner, expectedRelation: OWNER_RELATION},
		{name: "admin", role: types.RoleAdmin, expectedRelation: ADMIN_RELATION},
		{name: "finance", role: types.RoleFinance, expectedRelation: FINANCE_RELATION},
		{name: "staff", role: types.RoleStaff, expectedRelation: STAFF_RELATION},
		{name: "unknown role rejected", role: types.Role("superuser"), expectedErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, mockClient := setupAuthorizer(t, "authorization.Authorizer.AssignOrgRole")
			if !tc.expectedErr {
				mockClient.EXPECT().WriteTuple(gomock.Any(), "user:u1", tc.expectedRelation, "organization:o1").Return(nil)
			}

			err := a.AssignOrgRole(context.Background(), "o1", "u1", tc.role)

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

func TestAuthorizer_RemoveOrgRole(t *testing.T) {
	a, mockClient := setupAuthorizer(t, "authorization.Authorizer.RemoveOrgRole")
	mockClient.EXPECT().DeleteTuple(gomock.Any(), "user:u1", FINANCE_RELATION, "organization:o1").Return(nil)

	if err := a.RemoveOrgRole(context.Background(), "o1", "u1", types.RoleFinance); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestAuthorizer_CheckOrgAccess(t *testing.T) {
	a, mockClient := setupAuthorizer(t, "authorization.Authorizer.CheckOrgAccess")
	mockClient.EXPECT().Check(gomock.Any(), "user:u1", CAN_MANAGE_MEMBERS_PERMISSION, "organization:o1").Return(true, nil)

	allowed, err := a.CheckOrgAccess(context.Background(), "o1", "u1", CAN_MANAGE_MEMBERS_PERMISSION)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !allowed {
		t.Error("expected access to be allowed")
	}
}

func TestAuthorizer_DeleteOrganization(t *testing.T) {
	testCases := []struct {
		name        string
		tuples      []openfga.Tuple
		readErr     error
		expectedErr bool
		setupDelete func(*MockAuthzClientInterface, []openfga.Tuple)
	}{
		{
			name: "deletes all tuples attached to the org",
			tuples: []openfga.Tuple{
				{User: "user:u1", Relation: OWNER_RELATION, Object: "organization:o1"},
				{User: "user:u2", Relation: STAFF_RELATION, Object: "organization:o1"},
			},
			setupDelete: func(mockClient *MockAuthzClientInterface, tuples []openfga.Tuple) {
				mockClient.EXPECT().DeleteTuples(gomock.Any(), tuples[0], tuples[1]).Return(nil)
			},
		},
		{
			name:        "no tuples is a no-op",
			tuples:      nil,
			setupDelete: func(mockClient *MockAuthzClientInterface, tuples []openfga.Tuple) {},
		},
		{
			name:        "read failure propagates",
			readErr:     errors.New("openfga error"),
			expectedErr: true,
			setupDelete: func(mockClient *MockAuthzClientInterface, tuples []openfga.Tuple) {},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			a, mockClient := setupAuthorizer(t, "authorization.Authorizer.DeleteOrganization")
			mockClient.EXPECT().ReadTuplesByObject(gomock.Any(), "organization:o1").Return(tc.tuples, tc.readErr)
			tc.setupDelete(mockClient, tc.tuples)

			err := a.DeleteOrganization(context.Background(), "o1")

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
