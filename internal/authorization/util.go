// Copyright 2025 Produtix Ltd.
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"github.com/produtix/org-service/internal/types"
)

const (
	OWNER_RELATION   = "owner"
	ADMIN_RELATION   = "admin"
	FINANCE_RELATION = "finance"
	STAFF_RELATION   = "staff"

	CAN_VIEW_PERMISSION           = "can_view"
	CAN_EDIT_PERMISSION           = "can_edit"
	CAN_MANAGE_MEMBERS_PERMISSION = "can_manage_members"
	CAN_VIEW_FINANCE_PERMISSION   = "can_view_finance"
	CAN_DELETE_PERMISSION         = "can_delete"
)

func UserTuple(userId string) string {
	return "user:" + userId
}

func OrgTuple(orgId string) string {
	return "organization:" + orgId
}

// RoleRelation maps a stored membership role onto its model relation. The
// role set is closed, so unknown values map to the empty string and fail
// the write downstream.
func RoleRelation(role types.Role) string {
	switch role {
	case types.RoleOwner:
		return OWNER_RELATION
	case types.RoleAdmin:
		return ADMIN_RELATION
	case types.RoleFinance:
		return FINANCE_RELATION
	case types.RoleStaff:
		return STAFF_RELATION
	}
	return ""
}
