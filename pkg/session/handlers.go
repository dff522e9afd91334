// Copyright 2026 Produtix Ltd.
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/produtix/org-service/internal/logging"
	"github.com/produtix/org-service/internal/types"
	"github.com/produtix/org-service/pkg/authentication"
)

type SwitchRequest struct {
	OrgID string `json:"org_id" validate:"required,uuid"`
}

type SelectionResponse struct {
	Data    *types.Selection `json:"data"`
	Status  int              `json:"status"`
	Message string           `json:"message"`
}

type API struct {
	service  ServiceInterface
	validate *validator.Validate

	logger logging.LoggerInterface
}

func NewAPI(service ServiceInterface, logger logging.LoggerInterface) *API {
	return &API{
		service:  service,
		validate: validator.New(validator.WithRequiredStructEnabled()),
		logger:   logger,
	}
}

func (a *API) RegisterEndpoints(mux chi.Router) {
	mux.Get("/api/v0/session", a.handleResolve)
	mux.Put("/api/v0/session", a.handleSwitch)
}

func (a *API) handleResolve(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		a.writeJSON(w, http.StatusUnauthorized, SelectionResponse{Status: http.StatusUnauthorized, Message: "unauthorized"})
		return
	}

	sel, err := a.service.Resolve(r.Context(), userID)
	if err != nil {
		a.logger.Errorf("failed to resolve session: %v", err)
		a.writeJSON(w, http.StatusInternalServerError, SelectionResponse{Status: http.StatusInternalServerError, Message: "internal server error"})
		return
	}

	if sel == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	a.writeJSON(w, http.StatusOK, SelectionResponse{Data: sel, Status: http.StatusOK})
}

func (a *API) handleSwitch(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		a.writeJSON(w, http.StatusUnauthorized, SelectionResponse{Status: http.StatusUnauthorized, Message: "unauthorized"})
		return
	}

	var req SwitchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.writeJSON(w, http.StatusBadRequest, SelectionResponse{Status: http.StatusBadRequest, Message: "invalid request body"})
		return
	}

	if err := a.validate.Struct(req); err != nil {
		a.writeJSON(w, http.StatusBadRequest, SelectionResponse{Status: http.StatusBadRequest, Message: err.Error()})
		return
	}

	sel, err := a.service.Switch(r.Context(), userID, req.OrgID)
	if err != nil {
		a.logger.Errorf("failed to switch session: %v", err)
		a.writeJSON(w, http.StatusInternalServerError, SelectionResponse{Status: http.StatusInternalServerError, Message: "internal server error"})
		return
	}

	if sel == nil {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	a.writeJSON(w, http.StatusOK, SelectionResponse{Data: sel, Status: http.StatusOK})
}

func (a *API) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.logger.Errorf("failed to write response: %v", err)
	}
}
