// Copyright 2026 Produtix Ltd.
// SPDX-License-Identifier: AGPL-3.0

package webhooks

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"go.uber.org/mock/gomock"
)

func TestAPI_HandleRegistration(t *testing.T) {
	testCases := []struct {
		name               string
		body               string
		setupMocks         func(*MockServiceInterface, *MockLoggerInterface)
		expectedStatusCode int
	}{
		{
			name: "success",
			body: `{"id": "identity-123", "traits": {"email": "user@example.com"}}`,
			setupMocks: func(mockService *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockService.EXPECT().HandleRegistration(gomock.Any(), "identity-123", "user@example.com").Return(nil)
			},
			expectedStatusCode: http.StatusOK,
		},
		{
			name:               "invalid body",
			body:               `{not json`,
			setupMocks:         func(mockService *MockServiceInterface, mockLogger *MockLoggerInterface) {},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name: "service error",
			body: `{"id": "identity-123", "traits": {"email": "user@example.com"}}`,
			setupMocks: func(mockService *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockService.EXPECT().HandleRegistration(gomock.Any(), "identity-123", "user@example.com").Return(errors.New("boom"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			tc.setupMocks(mockService, mockLogger)

			mux := chi.NewMux()
			NewAPI(mockService, mockLogger).RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodPost, "/webhooks/registration", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()

			mux.ServeHTTP(rec, req)

			if rec.Code != tc.expectedStatusCode {
				t.Errorf("expected status %d, got %d", tc.expectedStatusCode, rec.Code)
			}
		})
	}
}

func TestAPI_HandleTokenHook(t *testing.T) {
	testCases := []struct {
		name               string
		body               string
		setupMocks         func(*MockServiceInterface, *MockLoggerInterface)
		expectedStatusCode int
		validateBody       func(*testing.T, []byte)
	}{
		{
			name: "success",
			body: `{"session": {"id_token": {"id_token_claims": {"sub": "user-123"}}}}`,
			setupMocks: func(mockService *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockService.EXPECT().HandleTokenHook(gomock.Any(), gomock.Any()).Return(&TokenHookResponse{
					Session: TokenSession{
						AccessToken: map[string]interface{}{"orgs": map[string]string{"org-1": "owner"}},
						IDToken:     map[string]interface{}{"orgs": map[string]string{"org-1": "owner"}},
					},
				}, nil)
			},
			expectedStatusCode: http.StatusOK,
			validateBody: func(t *testing.T, body []byte) {
				var resp TokenHookResponse
				if err := json.Unmarshal(body, &resp); err != nil {
					t.Fatalf("failed to decode response: %v", err)
				}
				if resp.Session.AccessToken["orgs"] == nil {
					t.Error("expected orgs claim in access token")
				}
			},
		},
		{
			name:               "invalid body",
			body:               `{not json`,
			setupMocks:         func(mockService *MockServiceInterface, mockLogger *MockLoggerInterface) {},
			expectedStatusCode: http.StatusBadRequest,
		},
		{
			name: "service error",
			body: `{"session": {}}`,
			setupMocks: func(mockService *MockServiceInterface, mockLogger *MockLoggerInterface) {
				mockService.EXPECT().HandleTokenHook(gomock.Any(), gomock.Any()).Return(nil, errors.New("boom"))
				mockLogger.EXPECT().Errorf(gomock.Any(), gomock.Any())
			},
			expectedStatusCode: http.StatusInternalServerError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockService := NewMockServiceInterface(ctrl)
			mockLogger := NewMockLoggerInterface(ctrl)
			tc.setupMocks(mockService, mockLogger)

			mux := chi.NewMux()
			NewAPI(mockService, mockLogger).RegisterEndpoints(mux)

			req := httptest.NewRequest(http.MethodPost, "/webhooks/token", strings.NewReader(tc.body))
			rec := httptest.NewRecorder()

			mux.ServeHTTP(rec, req)

			if rec.Code != tc.expectedStatusCode {
				t.Errorf("expected status %d, got %d", tc.expectedStatusCode, rec.Code)
			}
			if tc.validateBody != nil {
				tc.validateBody(t, rec.Body.Bytes())
			}
		})
	}
}
