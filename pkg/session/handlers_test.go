// Copyright 2026 Produtix Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"

	"github.com/produtix/org-service/internal/types"
	"github.com/produtix/org-service/pkg/authentication"
)

const testUserID = "user-123"

func newAPIForTest(t *testing.T) (*chi.Mux, *MockServiceInterface) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockService := NewMockServiceInterface(ctrl)
	mockLogger := NewMockLoggerInterface(ctrl)

	mux := chi.NewMux()
	NewAPI(mockService, mockLogger).RegisterEndpoints(mux)

	return mux, mockService
}

func TestAPI_HandleResolve(t *testing.T) {
	t.Run("active org resolved", func(t *testing.T) {
		mux, mockService := newAPIForTest(t)
		mockService.EXPECT().Resolve(gomock.Any(), testUserID).
			Return(&types.Selection{OrgID: "org-1", Role: types.RoleOwner, IsOwner: true}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v0/session", nil)
		req = req.WithContext(authentication.WithUserID(req.Context(), testUserID))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}

		var resp SelectionResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Data == nil || resp.Data.OrgID != "org-1" || !resp.Data.IsOwner {
			t.Errorf("unexpected selection: %+v", resp.Data)
		}
	})

	t.Run("no org yields 204", func(t *testing.T) {
		mux, mockService := newAPIForTest(t)
		mockService.EXPECT().Resolve(gomock.Any(), testUserID).Return(nil, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/v0/session", nil)
		req = req.WithContext(authentication.WithUserID(req.Context(), testUserID))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Errorf("expected 204, got %d", rec.Code)
		}
	})

	t.Run("unauthenticated", func(t *testing.T) {
		mux, _ := newAPIForTest(t)

		req := httptest.NewRequest(http.MethodGet, "/api/v0/session", nil)
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusUnauthorized {
			t.Errorf("expected 401, got %d", rec.Code)
		}
	})
}

func TestAPI_HandleSwitch(t *testing.T) {
	orgID := "018f4f42-7a5a-7bbb-8000-7d4b0a6b8e1f"

	t.Run("switch persists and returns selection", func(t *testing.T) {
		mux, mockService := newAPIForTest(t)
		mockService.EXPECT().Switch(gomock.Any(), testUserID, orgID).
			Return(&types.Selection{OrgID: orgID, Role: types.RoleAdmin}, nil)

		req := httptest.NewRequest(http.MethodPut, "/api/v0/session", strings.NewReader(`{"org_id": "`+orgID+`"}`))
		req = req.WithContext(authentication.WithUserID(req.Context(), testUserID))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", rec.Code)
		}

		var resp SelectionResponse
		if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
			t.Fatalf("failed to decode response: %v", err)
		}
		if resp.Data == nil || resp.Data.OrgID != orgID {
			t.Errorf("unexpected selection: %+v", resp.Data)
		}
	})

	t.Run("invalid org id rejected", func(t *testing.T) {
		mux, _ := newAPIForTest(t)

		req := httptest.NewRequest(http.MethodPut, "/api/v0/session", strings.NewReader(`{"org_id": "not-a-uuid"}`))
		req = req.WithContext(authentication.WithUserID(req.Context(), testUserID))
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("expected 400, got %d", rec.Code)
		}
	})
}
