// Copyright 2026 Produtix Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organization

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/produtix/org-service/internal/logging"
	"github.com/produtix/org-service/internal/storage"
	"github.com/produtix/org-service/internal/types"
	"github.com/produtix/org-service/pkg/authentication"
)

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
	mux.Get("/api/v0/orgs", a.handleList)
	mux.Post("/api/v0/orgs", a.handleCreate)
	mux.Patch("/api/v0/orgs/{id}", a.handleUpdate)
	mux.Delete("/api/v0/orgs/{id}", a.handleDelete)
	mux.Post("/api/v0/orgs/{id}/invites", a.handleInvite)
	mux.Get("/api/v0/orgs/{id}/members", a.handleListMembers)
	mux.Post("/api/v0/invites/{id}/accept", a.handleAccept)
	mux.Post("/api/v0/invites/{id}/reject", a.handleReject)
}

func (a *API) handleList(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		a.unauthorized(w)
		return
	}

	access, err := a.service.ListAccess(r.Context(), userID)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	resp := OrgContextResponse{
		Available: make([]OrgAccessJSON, 0, len(access.Available)),
		Pending:   make([]PendingInviteJSON, 0, len(access.Pending)),
		Status:    http.StatusOK,
	}
	for _, acc := range access.Available {
		resp.Available = append(resp.Available, OrgAccessJSON{
			Org:     orgJSON(acc.Org),
			Role:    acc.Role,
			IsOwner: acc.IsOwner,
		})
	}
	for _, p := range access.Pending {
		resp.Pending = append(resp.Pending, PendingInviteJSON{
			InviteID: p.InviteID,
			Org:      orgJSON(p.Org),
			Role:     p.Role,
		})
	}

	a.writeJSON(w, http.StatusOK, resp)
}

func (a *API) handleCreate(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		a.unauthorized(w)
		return
	}

	var req CreateOrgRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.badRequest(w, "invalid request body")
		return
	}

	if err := a.validate.Struct(req); err != nil {
		a.badRequest(w, err.Error())
		return
	}

	org, err := a.service.CreateOrganization(r.Context(), userID, req.Name, req.LogoURL)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusCreated, OrgResponse{
		Data:    orgJSON(*org),
		Status:  http.StatusCreated,
		Message: "created",
	})
}

func (a *API) handleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		a.unauthorized(w)
		return
	}

	var req UpdateOrgRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.badRequest(w, "invalid request body")
		return
	}

	if err := a.validate.Struct(req); err != nil {
		a.badRequest(w, err.Error())
		return
	}

	org := &types.Organization{ID: chi.URLParam(r, "id")}
	var paths []string
	if req.Name != "" {
		org.Name = req.Name
		paths = append(paths, "name")
	}
	if req.LogoURL != "" {
		org.LogoURL = req.LogoURL
		paths = append(paths, "logo_url")
	}

	if len(paths) == 0 {
		a.badRequest(w, "nothing to update")
		return
	}

	updated, err := a.service.UpdateOrganization(r.Context(), userID, org, paths)
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, OrgResponse{
		Data:    orgJSON(*updated),
		Status:  http.StatusOK,
		Message: "updated",
	})
}

func (a *API) handleDelete(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		a.unauthorized(w)
		return
	}

	if err := a.service.DeleteOrganization(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, EmptyResponse{
		Status:  http.StatusOK,
		Message: "deleted",
	})
}

func (a *API) handleInvite(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		a.unauthorized(w)
		return
	}

	var req InviteMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		a.badRequest(w, "invalid request body")
		return
	}

	if err := a.validate.Struct(req); err != nil {
		a.badRequest(w, err.Error())
		return
	}

	link, code, err := a.service.InviteMember(r.Context(), userID, chi.URLParam(r, "id"), req.Email, types.Role(req.Role))
	if err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusCreated, InviteMemberResponse{
		InvitationLink: link,
		InvitationCode: code,
		Status:         http.StatusCreated,
		Message:        "invited",
	})
}

func (a *API) handleListMembers(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		a.unauthorized(w)
		return
	}

	members, err := a.service.ListMembers(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		a.serviceError(w, err)
		return
	}

	resp := MembersResponse{
		Data:   make([]MemberJSON, 0, len(members)),
		Status: http.StatusOK,
	}
	for _, m := range members {
		resp.Data = append(resp.Data, MemberJSON{
			IdentityID: m.IdentityID,
			Email:      m.Email,
			Role:       m.Role,
			Status:     m.Status,
		})
	}

	a.writeJSON(w, http.StatusOK, resp)
}

func (a *API) handleAccept(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		a.unauthorized(w)
		return
	}

	if err := a.service.AcceptInvite(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, EmptyResponse{
		Status:  http.StatusOK,
		Message: "accepted",
	})
}

func (a *API) handleReject(w http.ResponseWriter, r *http.Request) {
	userID, ok := authentication.GetUserID(r.Context())
	if !ok {
		a.unauthorized(w)
		return
	}

	if err := a.service.RejectInvite(r.Context(), userID, chi.URLParam(r, "id")); err != nil {
		a.serviceError(w, err)
		return
	}

	a.writeJSON(w, http.StatusOK, EmptyResponse{
		Status:  http.StatusOK,
		Message: "rejected",
	})
}

func (a *API) serviceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, storage.ErrNotFound):
		a.writeJSON(w, http.StatusNotFound, EmptyResponse{Status: http.StatusNotFound, Message: "not found"})
	case errors.Is(err, storage.ErrDuplicateKey):
		a.writeJSON(w, http.StatusConflict, EmptyResponse{Status: http.StatusConflict, Message: "already exists"})
	case errors.Is(err, ErrNotOwner), errors.Is(err, ErrForbidden):
		a.writeJSON(w, http.StatusForbidden, EmptyResponse{Status: http.StatusForbidden, Message: "forbidden"})
	default:
		a.logger.Errorf("request failed: %v", err)
		a.writeJSON(w, http.StatusInternalServerError, EmptyResponse{Status: http.StatusInternalServerError, Message: "internal server error"})
	}
}

func (a *API) unauthorized(w http.ResponseWriter) {
	a.writeJSON(w, http.StatusUnauthorized, EmptyResponse{Status: http.StatusUnauthorized, Message: "unauthorized"})
}

func (a *API) badRequest(w http.ResponseWriter, msg string) {
	a.writeJSON(w, http.StatusBadRequest, EmptyResponse{Status: http.StatusBadRequest, Message: msg})
}

func (a *API) writeJSON(w http.ResponseWriter, status int, body interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		a.logger.Errorf("failed to write response: %v", err)
	}
}
