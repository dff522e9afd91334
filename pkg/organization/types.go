// Copyright 2026 Produtix Ltd.
// SPDX-License-Identifier: AGPL-3.0

package organization

import (
	"time"

	"github.com/produtix/org-service/internal/types"
)

type OrgJSON struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	LogoURL   string    `json:"logo_url,omitempty"`
	OwnerID   string    `json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
}

type OrgAccessJSON struct {
	Org     OrgJSON    `json:"org"`
	Role    types.Role `json:"role"`
	IsOwner bool       `json:"is_owner"`
}

type PendingInviteJSON struct {
	InviteID string     `json:"invite_id"`
	Org      OrgJSON    `json:"org"`
	Role     types.Role `json:"role"`
}

type OrgContextResponse struct {
	Available []OrgAccessJSON     `json:"available"`
	Pending   []PendingInviteJSON `json:"pending"`
	Status    int                 `json:"status"`
	Message   string              `json:"message"`
}

type CreateOrgRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=120"`
	LogoURL string `json:"logo_url" validate:"omitempty,url"`
}

type UpdateOrgRequest struct {
	Name    string `json:"name" validate:"omitempty,min=1,max=120"`
	LogoURL string `json:"logo_url" validate:"omitempty,url"`
}

type OrgResponse struct {
	Data    OrgJSON `json:"data"`
	Status  int     `json:"status"`
	Message string  `json:"message"`
}

type InviteMemberRequest struct {
	Email string `json:"email" validate:"required,email"`
	Role  string `json:"role" validate:"required,oneof=owner admin finance staff"`
}

type InviteMemberResponse struct {
	InvitationLink string `json:"invitation_link"`
	InvitationCode string `json:"invitation_code"`
	Status         int    `json:"status"`
	Message        string `json:"message"`
}

type MemberJSON struct {
	IdentityID string                 `json:"identity_id,omitempty"`
	Email      string                 `json:"email"`
	Role       types.Role             `json:"role"`
	Status     types.MembershipStatus `json:"status"`
}

type MembersResponse struct {
	Data    []MemberJSON `json:"data"`
	Status  int          `json:"status"`
	Message string       `json:"message"`
}

type EmptyResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func orgJSON(o types.Organization) OrgJSON {
	return OrgJSON{
		ID:        o.ID,
		Name:      o.Name,
		LogoURL:   o.LogoURL,
		OwnerID:   o.OwnerID,
		CreatedAt: o.CreatedAt,
	}
}
