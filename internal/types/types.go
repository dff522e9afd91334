// Copyright 2026 Produtix Ltd.
// SPDX-License-Identifier: AGPL-3.0

package types

import (
	"time"
)

// Role is the closed set of roles a member can hold within an organization.
type Role string

const (
	RoleOwner   Role = "owner"
	RoleAdmin   Role = "admin"
	RoleFinance Role = "finance"
	RoleStaff   Role = "staff"
)

func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleFinance, RoleStaff:
		return true
	}
	return false
}

type MembershipStatus string

const (
	StatusActive  MembershipStatus = "active"
	StatusPending MembershipStatus = "pending"
)

type Organization struct {
	ID        string    `db:"id"`
	Name      string    `db:"name"`
	LogoURL   string    `db:"logo_url"`
	OwnerID   string    `db:"owner_id"`
	CreatedAt time.Time `db:"created_at"`
}

// Membership links an identity to an organization. IdentityID is empty
// until the invite is accepted or claimed; Email is the invite key before
// that.
type Membership struct {
	ID         string           `db:"id"`
	OrgID      string           `db:"org_id"`
	IdentityID string           `db:"identity_id"`
	Email      string           `db:"email"`
	Role       Role             `db:"role"`
	Status     MembershipStatus `db:"status"`
	CreatedAt  time.Time        `db:"created_at"`
}

// MembershipRow is a membership joined to its organization, as returned by
// the access queries.
type MembershipRow struct {
	MembershipID string
	Role         Role
	Status       MembershipStatus
	Email        string
	CreatedAt    time.Time
	Org          Organization
}

// OrgAccess is one organization an identity may act within.
type OrgAccess struct {
	Org     Organization
	Role    Role
	IsOwner bool
}

// PendingInvite is a membership awaiting accept or reject. InviteID is the
// membership row id, needed to respond.
type PendingInvite struct {
	InviteID  string
	Org       Organization
	Role      Role
	CreatedAt time.Time
}

// OrgContext is the full access picture for one identity.
type OrgContext struct {
	Available []OrgAccess
	Pending   []PendingInvite
}

// Selection is the organization currently in focus for a session. It is
// served to clients as-is.
type Selection struct {
	OrgID   string `json:"org_id"`
	Role    Role   `json:"role"`
	IsOwner bool   `json:"is_owner"`
}

type Member struct {
	IdentityID string
	Email      string
	Role       Role
	Status     MembershipStatus
}
