// Copyright 2025 Produtix Ltd
// SPDX-License-Identifier: AGPL-3.0

package authorization

import (
	"fmt"

	"context"
	"slices"

	"github.com/produtix/org-service/internal/logging"
	"github.com/produtix/org-service/internal/monitoring"
	"github.com/produtix/org-service/internal/openfga"
	"github.com/produtix/org-service/internal/tracing"
	"github.com/produtix/org-service/internal/types"
)

var ErrInvalidAuthModel = fmt.Errorf("invalid authorization model schema")

type Authorizer struct {
	client AuthzClientInterface

	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
	logger  logging.LoggerInterface
}

func (a *Authorizer) Check(ctx context.Context, user string, relation string, object string, contextualTuples ...openfga.Tuple) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.Check")
	defer span.End()

	return a.client.Check(ctx, user, relation, object, contextualTuples...)
}

func (a *Authorizer) ListObjects(ctx context.Context, user string, relation string, objectType string) ([]string, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.ListObjects")
	defer span.End()

	return a.client.ListObjects(ctx, user, relation, objectType)
}

func (a *Authorizer) FilterObjects(ctx context.Context, user string, relation string, objectType string, objs []string) ([]string, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.FilterObjects")
	defer span.End()

	allowedObjs, err := a.ListObjects(ctx, user, relation, objectType)
	if err != nil {
		return nil, err
	}

	var ret []string
	for _, obj := range allowedObjs {
		if slices.Contains(objs, obj) {
			ret = append(ret, obj)
		}
	}
	return ret, nil
}

func (a *Authorizer) ValidateModel(ctx context.Context) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.ValidateModel")
	defer span.End()

	model, err := openfga.GetAuthModel()
	if err != nil {
		return err
	}

	eq, err := a.client.CompareModel(ctx, *model)
	if err != nil {
		return err
	}
	if !eq {
		return ErrInvalidAuthModel
	}
	return nil
}

func (a *Authorizer) AssignOrgRole(ctx context.Context, orgId, userId string, role types.Role) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.AssignOrgRole")
	defer span.End()

	relation := RoleRelation(role)
	if relation == "" {
		return fmt.Errorf("unknown role: %s", role)
	}

	return a.client.WriteTuple(ctx, UserTuple(userId), relation, OrgTuple(orgId))
}

func (a *Authorizer) RemoveOrgRole(ctx context.Context, orgId, userId string, role types.Role) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.RemoveOrgRole")
	defer span.End()

	relation := RoleRelation(role)
	if relation == "" {
		return fmt.Errorf("unknown role: %s", role)
	}

	return a.client.DeleteTuple(ctx, UserTuple(userId), relation, OrgTuple(orgId))
}

func (a *Authorizer) CheckOrgAccess(ctx context.Context, orgId, userId, relation string) (bool, error) {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.CheckOrgAccess")
	defer span.End()

	return a.client.Check(ctx, UserTuple(userId), relation, OrgTuple(orgId))
}

// DeleteOrganization removes every tuple attached to the organization
// object so no relation survives the row deletion.
func (a *Authorizer) DeleteOrganization(ctx context.Context, orgId string) error {
	ctx, span := a.tracer.Start(ctx, "authorization.Authorizer.DeleteOrganization")
	defer span.End()

	tuples, err := a.client.ReadTuplesByObject(ctx, OrgTuple(orgId))
	if err != nil {
		return err
	}
	if len(tuples) == 0 {
		return nil
	}

	return a.client.DeleteTuples(ctx, tuples...)
}

func NewAuthorizer(client AuthzClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Authorizer {
	a := new(Authorizer)

	a.client = client

	a.tracer = tracer
	a.monitor = monitor
	a.logger = logger

	return a
}
