// Copyright 2025 Produtix Ltd.
// SPDX-License-Identifier: AGPL-3.0

package openfga

import (
	"encoding/json"
	"fmt"

	fga "github.com/openfga/go-sdk"
	"github.com/openfga/language/pkg/go/transformer"
	"google.golang.org/protobuf/encoding/protojson"
)

// AuthModel is the v0 authorization model. Roles mirror the membership
// roles stored in the database; permission relations are what handlers
// actually check.
const AuthModel = `model
  schema 1.1

type user

type organization
  relations
    define owner: [user]
    define admin: [user]
    define finance: [user]
    define staff: [user]
    define can_view: owner or admin or finance or staff
    define can_edit: owner or admin
    define can_manage_members: owner or admin
    define can_view_finance: owner or admin or finance
    define can_delete: owner
`

// GetAuthModel transforms the DSL into the SDK's model representation.
func GetAuthModel() (*fga.AuthorizationModel, error) {
	protoModel, err := transformer.TransformDSLToProto(AuthModel)
	if err != nil {
		return nil, fmt.Errorf("failed to transform authorization model DSL: %w", err)
	}

	raw, err := protojson.Marshal(protoModel)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal authorization model: %w", err)
	}

	model := new(fga.AuthorizationModel)
	if err := json.Unmarshal(raw, model); err != nil {
		return nil, fmt.Errorf("failed to unmarshal authorization model: %w", err)
	}

	return model, nil
}
