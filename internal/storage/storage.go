// Copyright 2025 Produtix Ltd.
// SPDX-License-Identifier: AGPL-3.0

package storage

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/produtix/org-service/internal/db"
	"github.com/produtix/org-service/internal/logging"
	"github.com/produtix/org-service/internal/monitoring"
	"github.com/produtix/org-service/internal/tracing"
	"github.com/produtix/org-service/internal/types"
)

var _ StorageInterface = (*Storage)(nil)

type Storage struct {
	db db.DBClientInterface

	logger  logging.LoggerInterface
	tracer  tracing.TracingInterface
	monitor monitoring.MonitorInterface
}

func NewStorage(c db.DBClientInterface, tracer tracing.TracingInterface, monitor monitoring.MonitorInterface, logger logging.LoggerInterface) *Storage {
	s := new(Storage)

	s.db = c

	s.logger = logger
	s.tracer = tracer
	s.monitor = monitor

	return s
}

func (s *Storage) CreateOrganization(ctx context.Context, o *types.Organization) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.CreateOrganization")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("failed to generate organization ID: %w", err)
	}

	var created types.Organization
	err = s.db.Statement(ctx).
		Insert("organizations").
		Columns("id", "name", "logo_url", "owner_id").
		Values(id.String(), o.Name, o.LogoURL, o.OwnerID).
		Suffix("RETURNING id, name, logo_url, owner_id, created_at").
		QueryRowContext(ctx).
		Scan(&created.ID, &created.Name, &created.LogoURL, &created.OwnerID, &created.CreatedAt)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return nil, ErrDuplicateKey
		}
		return nil, fmt.Errorf("failed to insert organization: %w", err)
	}

	return &created, nil
}

func (s *Storage) GetOrganizationByID(ctx context.Context, id string) (*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetOrganizationByID")
	defer span.End()

	var o types.Organization
	err := s.db.Statement(ctx).
		Select("id", "name", "logo_url", "owner_id", "created_at").
		From("organizations").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&o.ID, &o.Name, &o.LogoURL, &o.OwnerID, &o.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get organization: %w", err)
	}

	return &o, nil
}

// UpdateOrganization updates the fields named in paths, PATCH style.
func (s *Storage) UpdateOrganization(ctx context.Context, o *types.Organization, paths []string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpdateOrganization")
	defer span.End()

	updateMap := make(map[string]interface{})
	for _, p := range paths {
		switch p {
		case "name":
			updateMap["name"] = o.Name
		case "logo_url":
			updateMap["logo_url"] = o.LogoURL
		}
	}

	if len(updateMap) == 0 {
		return nil
	}

	_, err := s.db.Statement(ctx).
		Update("organizations").
		SetMap(updateMap).
		Where(sq.Eq{"id": o.ID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to update organization: %w", err)
	}

	return nil
}

func (s *Storage) DeleteOrganization(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteOrganization")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("organizations").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete organization: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) ListOwnedOrganizations(ctx context.Context, identityID string) ([]*types.Organization, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListOwnedOrganizations")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "name", "logo_url", "owner_id", "created_at").
		From("organizations").
		Where(sq.Eq{"owner_id": identityID}).
		OrderBy("id").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list owned organizations: %w", err)
	}
	defer rows.Close()

	var orgs []*types.Organization
	for rows.Next() {
		var o types.Organization
		if err := rows.Scan(&o.ID, &o.Name, &o.LogoURL, &o.OwnerID, &o.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan organization: %w", err)
		}
		orgs = append(orgs, &o)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return orgs, nil
}

func (s *Storage) AddMembership(ctx context.Context, m *types.Membership) (string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.AddMembership")
	defer span.End()

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("failed to generate membership ID: %w", err)
	}

	var identityID interface{}
	if m.IdentityID != "" {
		identityID = m.IdentityID
	}

	_, err = s.db.Statement(ctx).
		Insert("memberships").
		Columns("id", "org_id", "identity_id", "email", "role", "status").
		Values(id.String(), m.OrgID, identityID, m.Email, m.Role, m.Status).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return "", ErrDuplicateKey
		}
		if IsForeignKeyViolation(err) {
			return "", ErrForeignKeyViolation
		}
		return "", fmt.Errorf("failed to add membership: %w", err)
	}

	return id.String(), nil
}

func (s *Storage) GetMembershipByID(ctx context.Context, id string) (*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetMembershipByID")
	defer span.End()

	var m types.Membership
	err := s.db.Statement(ctx).
		Select("id", "org_id", "COALESCE(identity_id, '')", "email", "role", "status", "created_at").
		From("memberships").
		Where(sq.Eq{"id": id}).
		QueryRowContext(ctx).
		Scan(&m.ID, &m.OrgID, &m.IdentityID, &m.Email, &m.Role, &m.Status, &m.CreatedAt)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get membership: %w", err)
	}

	return &m, nil
}

// ActivateMembership flips a pending row to active and rebinds it to the
// accepting identity.
func (s *Storage) ActivateMembership(ctx context.Context, id, identityID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.ActivateMembership")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("memberships").
		Set("status", types.StatusActive).
		Set("identity_id", identityID).
		Where(sq.Eq{"id": id, "status": types.StatusPending}).
		ExecContext(ctx)

	if err != nil {
		if IsDuplicateKeyError(err) {
			return ErrDuplicateKey
		}
		return fmt.Errorf("failed to activate membership: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

func (s *Storage) DeleteMembership(ctx context.Context, id string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteMembership")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Delete("memberships").
		Where(sq.Eq{"id": id}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete membership: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	return nil
}

// BindInvitesToIdentity attaches still-unbound email-keyed invites to a
// freshly registered identity. Status is untouched, acceptance stays an
// explicit user action.
func (s *Storage) BindInvitesToIdentity(ctx context.Context, email, identityID string) (int64, error) {
	ctx, span := s.tracer.Start(ctx, "storage.BindInvitesToIdentity")
	defer span.End()

	res, err := s.db.Statement(ctx).
		Update("memberships").
		Set("identity_id", identityID).
		Where(sq.Eq{"email": email}).
		Where("identity_id IS NULL").
		ExecContext(ctx)

	if err != nil {
		return 0, fmt.Errorf("failed to bind invites: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check rows affected: %w", err)
	}

	return rows, nil
}

// ListMembershipRows fetches memberships referencing the identity by id or
// by email, joined to their organization. The inner join drops rows whose
// organization has been deleted since the membership was created.
func (s *Storage) ListMembershipRows(ctx context.Context, identityID, email string) ([]*types.MembershipRow, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMembershipRows")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("m.id", "m.role", "m.status", "m.email", "m.created_at",
			"o.id", "o.name", "o.logo_url", "o.owner_id", "o.created_at").
		From("memberships m").
		Join("organizations o ON o.id = m.org_id").
		Where(sq.Or{sq.Eq{"m.identity_id": identityID}, sq.Eq{"m.email": email}}).
		OrderBy("m.id").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list memberships: %w", err)
	}
	defer rows.Close()

	var result []*types.MembershipRow
	for rows.Next() {
		var r types.MembershipRow
		if err := rows.Scan(&r.MembershipID, &r.Role, &r.Status, &r.Email, &r.CreatedAt,
			&r.Org.ID, &r.Org.Name, &r.Org.LogoURL, &r.Org.OwnerID, &r.Org.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan membership row: %w", err)
		}
		result = append(result, &r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

func (s *Storage) ListMembersByOrgID(ctx context.Context, orgID string) ([]*types.Membership, error) {
	ctx, span := s.tracer.Start(ctx, "storage.ListMembersByOrgID")
	defer span.End()

	rows, err := s.db.Statement(ctx).
		Select("id", "org_id", "COALESCE(identity_id, '')", "email", "role", "status", "created_at").
		From("memberships").
		Where(sq.Eq{"org_id": orgID}).
		OrderBy("id").
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	var members []*types.Membership
	for rows.Next() {
		var m types.Membership
		if err := rows.Scan(&m.ID, &m.OrgID, &m.IdentityID, &m.Email, &m.Role, &m.Status, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan member: %w", err)
		}
		members = append(members, &m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return members, nil
}

// GetSessionHint returns the last selected organization id for an
// identity, empty when none was ever persisted.
func (s *Storage) GetSessionHint(ctx context.Context, identityID string) (string, error) {
	ctx, span := s.tracer.Start(ctx, "storage.GetSessionHint")
	defer span.End()

	var orgID string
	err := s.db.Statement(ctx).
		Select("org_id").
		From("session_hints").
		Where(sq.Eq{"identity_id": identityID}).
		QueryRowContext(ctx).
		Scan(&orgID)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get session hint: %w", err)
	}

	return orgID, nil
}

// UpsertSessionHint persists the selection hint, last writer wins.
func (s *Storage) UpsertSessionHint(ctx context.Context, identityID, orgID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.UpsertSessionHint")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Insert("session_hints").
		Columns("identity_id", "org_id").
		Values(identityID, orgID).
		Suffix("ON CONFLICT (identity_id) DO UPDATE SET org_id = EXCLUDED.org_id, updated_at = now()").
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to upsert session hint: %w", err)
	}

	return nil
}

func (s *Storage) DeleteSessionHintsByOrg(ctx context.Context, orgID string) error {
	ctx, span := s.tracer.Start(ctx, "storage.DeleteSessionHintsByOrg")
	defer span.End()

	_, err := s.db.Statement(ctx).
		Delete("session_hints").
		Where(sq.Eq{"org_id": orgID}).
		ExecContext(ctx)

	if err != nil {
		return fmt.Errorf("failed to delete session hints: %w", err)
	}

	return nil
}
