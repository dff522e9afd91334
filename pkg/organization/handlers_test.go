// Copyright 2026 Produtix Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organization

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/produtix/org-service/internal/storage"
	"github.com/produtix/org-service/internal/types"
	"github.com/produtix/org-service/pkg/authentication"
)

const testUserID = "user-123"

func newAPIForTest(t *testing.T) (*chi.Mux, *MockServiceInterface, *MockLoggerInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := NewMockServiceInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mux := chi.NewMux()
	NewAPI(mockService, mockLogger).RegisterEndpoints(mux)

	return mux, mockService, mockLogger
}

func doRequest(mux *chi.Mux, method, path, body string, authenticated bool) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}

	req := httptest.NewRequest(method, path, reader)
	if authenticated {
		req = req.WithContext(authentication.WithUserID(req.Context(), testUserID))
	}
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)
	return rec
}

func TestAPI_ListOrgs(t *testing.T) {
	mux, mockService, _ := newAPIForTest(t)

	mockService.EXPECT().ListAccess(gomock.Any(), testUserID).Return(&types.OrgContext{
		Available: []types.OrgAccess{
			{Org: types.Organization{ID: "org-1", Name: "First"}, Role: types.RoleOwner, IsOwner: true},
		},
		Pending: []types.PendingInvite{
			{InviteID: "invite-1", Org: types.Organization{ID: "org-2", Name: "Second"}, Role: types.RoleStaff},
		},
	}, nil)

	rec := doRequest(mux, http.MethodGet, "/api/v0/orgs", "", true)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp OrgContextResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Available) != 1 || resp.Available[0].Org.ID != "org-1" || !resp.Available[0].IsOwner {
		t.Errorf("unexpected available orgs: %+v", resp.Available)
	}
	if len(resp.Pending) != 1 || resp.Pending[0].InviteID != "invite-1" {
		t.Errorf("unexpected pending invites: %+v", resp.Pending)
	}
}

func TestAPI_ListOrgsUnauthenticated(t *testing.T) {
	mux, _, _ := newAPIForTest(t)

	rec := doRequest(mux, http.MethodGet, "/api/v0/orgs", "", false)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected 401, got %d", rec.Code)
	}
}

func TestAPI_CreateOrg(t *testing.T) {
	testCases := []struct {
		name               string
		body               string
		setupMocks         func(*MockServiceInterface, *MockLoggerInterface)
		expectedStatusCode int
	}{
		{
			name: "success",
			body: `{"name": "My Org"}`,
			setupMocks: func(mockService *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockService.EXPECT().CreateOrganization(gomock.Any(), testUserID, "My Org", "").
					Return(&types.Organization{ID: "org-1", Name: "My Org", OwnerID: testUserID}, nil)
			},
			expectedStatusCode: http.StatusCreated,
		},
		{
			name:               "invalid body",
			body:               `{not json`,
			setupMocks:         func(mockService *MockServiceInterface, mockLogger *MockLoggerInterface) {},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name:               "empty name rejected",
			body:               `{"name": ""}`,
			setupMocks:         func(mockService *MockServiceInterface, mockLogger *MockLoggerInterface) {},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name: "service error",
			body: `{"name": "My Org"}`,
			setupMocks: func(mockService *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockService.EXPECT().CreateOrganization(gomock.Any(), testUserID, "My Org", "").
					Return(nil, errors.New("boom"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mux, mockService, mockLogger := newAPIForTest(t)
			tc.setupMocks(mockService, mockLogger)

			rec := doRequest(mux, http.MethodPost, "/api/v0/orgs", tc.body, true)

			if rec.Code != tc.expectedStatusCode {
				t.Errorf("expected status %d, got %d", tc.expectedStatusCode, rec.Code)
			}
		})
	}
}

func TestAPI_DeleteOrg(t *testing.T) {
	testCases := []struct {
		name               string
		serviceErr         error
		expectedStatusCode int
	}{
		{name: "success", serviceErr: nil, expectedStatusCode: http.StatusOK},
		{name: "not owner", serviceErr: ErrNotOwner, expectedStatusCode: http.StatusForbidden},
		{name: "not found", serviceErr: storage.ErrNotFound, expectedStatusCode: http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mux, mockService, _ := newAPIForTest(t)
			mockService.EXPECT().DeleteOrganization(gomock.Any(), testUserID, "org-1").Return(tc.serviceErr)

			rec := doRequest(mux, http.MethodDelete, "/api/v0/orgs/org-1", "", true)

			if rec.Code != tc.expectedStatusCode {
				t.Errorf("expected status %d, got %d", tc.expectedStatusCode, rec.Code)
			}
		})
	}
}

func TestAPI_InviteMember(t *testing.T) {
	mux, mockService, _ := newAPIForTest(t)

	mockService.EXPECT().InviteMember(gomock.Any(), testUserID, "org-1", "invitee@example.com", types.RoleFinance).
		Return("https://link", "code", nil)

	rec := doRequest(mux, http.MethodPost, "/api/v0/orgs/org-1/invites", `{"email": "invitee@example.com", "role": "finance"}`, true)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp InviteMemberResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.InvitationLink != "https://link" {
		t.Errorf("unexpected link: %s", resp.InvitationLink)
	}
}

func TestAPI_InviteMemberBadRole(t *testing.T) {
	mux, _, _ := newAPIForTest(t)

	rec := doRequest(mux, http.MethodPost, "/api/v0/orgs/org-1/invites", `{"email": "invitee@example.com", "role": "superuser"}`, true)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestAPI_AcceptInvite(t *testing.T) {
	testCases := []struct {
		name               string
		serviceErr         error
		expectedStatusCode int
	}{
		{name: "success", serviceErr: nil, expectedStatusCode: http.StatusOK},
		{name: "unknown invite", serviceErr: storage.ErrNotFound, expectedStatusCode: http.StatusNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			mux, mockService, _ := newAPIForTest(t)
			mockService.EXPECT().AcceptInvite(gomock.Any(), testUserID, "invite-1").Return(tc.serviceErr)

			rec := doRequest(mux, http.MethodPost, "/api/v0/invites/invite-1/accept", "", true)

			if rec.Code != tc.expectedStatusCode {
				t.Errorf("expected status %d, got %d", tc.expectedStatusCode, rec.Code)
			}
		})
	}
}

func TestAPI_ListMembers(t *testing.T) {
	mux, mockService, _ := newAPIForTest(t)

	mockService.EXPECT().ListMembers(gomock.Any(), testUserID, "org-1").Return([]*types.Member{
		{IdentityID: testUserID, Email: "owner@example.com", Role: types.RoleOwner, Status: types.StatusActive},
		{Email: "pending@example.com", Role: types.RoleStaff, Status: types.StatusPending},
	}, nil)

	rec := doRequest(mux, http.MethodGet, "/api/v0/orgs/org-1/members", "", true)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp MembersResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(resp.Data) != 2 || resp.Data[0].Role != types.RoleOwner {
		t.Errorf("unexpected members: %+v", resp.Data)
	}
}
