// Netwatch - Network Monitoring Dashboard and Security Events API
// Copyright 2026 Netwatch contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/netwatch-dev/netwatch

package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/netwatch-dev/netwatch/internal/logging"
	"github.com/netwatch-dev/netwatch/internal/metrics"
	"github.com/netwatch-dev/netwatch/internal/models"
)

// Postgres is the PostgreSQL-backed Store implementation using pgx v5
// connection pooling.
type Postgres struct {
	pool *pgxpool.Pool
	now  func() time.Time
}

var _ Store = (*Postgres)(nil)

// NewPostgres connects to PostgreSQL, verifies the connection and
// applies the schema migration.
func NewPostgres(ctx context.Context, dsn string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	p := &Postgres{
		pool: pool,
		now:  func() time.Time { return time.Now().UTC() },
	}
	if err := p.migrate(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	logging.Info().Msg("PostgreSQL store ready")
	return p, nil
}

// migrate creates the schema if it does not exist. bandwidth_metrics and
// security_events carry device_id without a foreign key: device references
// are weak and survive device deletion. password_entries references its
// vault with ON DELETE CASCADE as a second line of defense behind the
// transactional delete.
func (p *Postgres) migrate(ctx context.Context) error {
	const schema = `
CREATE TABLE IF NOT EXISTS devices (
	id            SERIAL PRIMARY KEY,
	name          TEXT NOT NULL,
	type          TEXT NOT NULL,
	ip_address    TEXT NOT NULL UNIQUE,
	status        TEXT NOT NULL DEFAULT 'online',
	bandwidth     DOUBLE PRECISION NOT NULL DEFAULT 0,
	max_bandwidth DOUBLE PRECISION NOT NULL DEFAULT 1000,
	last_activity TIMESTAMPTZ NOT NULL DEFAULT now(),
	model         TEXT,
	location      TEXT
);

CREATE TABLE IF NOT EXISTS bandwidth_metrics (
	id        SERIAL PRIMARY KEY,
	device_id INTEGER,
	timestamp TIMESTAMPTZ NOT NULL DEFAULT now(),
	incoming  DOUBLE PRECISION NOT NULL,
	outgoing  DOUBLE PRECISION NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_bandwidth_metrics_timestamp ON bandwidth_metrics (timestamp DESC);
CREATE INDEX IF NOT EXISTS idx_bandwidth_metrics_device ON bandwidth_metrics (device_id);

CREATE TABLE IF NOT EXISTS system_metrics (
	id              SERIAL PRIMARY KEY,
	timestamp       TIMESTAMPTZ NOT NULL DEFAULT now(),
	active_devices  INTEGER NOT NULL,
	total_bandwidth DOUBLE PRECISION NOT NULL,
	warnings        INTEGER NOT NULL,
	uptime          DOUBLE PRECISION NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_system_metrics_timestamp ON system_metrics (timestamp DESC);

CREATE TABLE IF NOT EXISTS security_events (
	id          SERIAL PRIMARY KEY,
	timestamp   TIMESTAMPTZ NOT NULL DEFAULT now(),
	event_type  TEXT NOT NULL,
	severity    TEXT NOT NULL,
	source_ip   TEXT NOT NULL,
	target_ip   TEXT,
	description TEXT NOT NULL,
	status      TEXT NOT NULL DEFAULT 'new',
	device_id   INTEGER
);
CREATE INDEX IF NOT EXISTS idx_security_events_timestamp ON security_events (timestamp DESC);
CREATE INDEX IF NOT EXISTS idx_security_events_status ON security_events (status);

CREATE TABLE IF NOT EXISTS ids_rules (
	id          SERIAL PRIMARY KEY,
	name        TEXT NOT NULL,
	description TEXT NOT NULL,
	pattern     TEXT NOT NULL,
	severity    TEXT NOT NULL,
	enabled     BOOLEAN NOT NULL DEFAULT TRUE,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS password_vaults (
	id          SERIAL PRIMARY KEY,
	name        TEXT NOT NULL,
	description TEXT,
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS password_entries (
	id                 SERIAL PRIMARY KEY,
	vault_id           INTEGER NOT NULL REFERENCES password_vaults(id) ON DELETE CASCADE,
	title              TEXT NOT NULL,
	username           TEXT,
	email              TEXT,
	encrypted_password TEXT NOT NULL,
	website            TEXT,
	notes              TEXT,
	category           TEXT,
	is_favorite        BOOLEAN NOT NULL DEFAULT FALSE,
	last_used          TIMESTAMPTZ,
	created_at         TIMESTAMPTZ NOT NULL DEFAULT now(),
	updated_at         TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_password_entries_vault ON password_entries (vault_id);
`
	_, err := p.pool.Exec(ctx, schema)
	return err
}

// rowScanner is satisfied by both pgx.Row and pgx.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// observe records the query duration for Prometheus.
func observe(operation, table string, start time.Time) {
	metrics.ObserveStoreQuery(operation, table, time.Since(start))
}

// mapErr converts pgx sentinel errors to store errors.
func mapErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return fmt.Errorf("%s: %w", pgErr.ConstraintName, ErrDuplicate)
	}
	return err
}

// Devices

const deviceColumns = "id, name, type, ip_address, status, bandwidth, max_bandwidth, last_activity, model, location"

func scanDevice(row rowScanner) (models.Device, error) {
	var d models.Device
	err := row.Scan(&d.ID, &d.Name, &d.Type, &d.IPAddress, &d.Status, &d.Bandwidth,
		&d.MaxBandwidth, &d.LastActivity, &d.Model, &d.Location)
	return d, err
}

func (p *Postgres) ListDevices(ctx context.Context) ([]models.Device, error) {
	defer observe("list", "devices", p.now())

	rows, err := p.pool.Query(ctx, `SELECT `+deviceColumns+` FROM devices ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list devices: %w", err)
	}
	defer rows.Close()

	out := []models.Device{}
	for rows.Next() {
		d, err := scanDevice(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan device: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (p *Postgres) GetDevice(ctx context.Context, id int) (models.Device, error) {
	defer observe("get", "devices", p.now())

	row := p.pool.QueryRow(ctx, `SELECT `+deviceColumns+` FROM devices WHERE id = $1`, id)
	d, err := scanDevice(row)
	if err != nil {
		return models.Device{}, mapErr(err)
	}
	return d, nil
}

func (p *Postgres) CreateDevice(ctx context.Context, req models.CreateDeviceRequest) (models.Device, error) {
	defer observe("create", "devices", p.now())

	d := req.Device(p.now())
	row := p.pool.QueryRow(ctx, `
		INSERT INTO devices (name, type, ip_address, status, bandwidth, max_bandwidth, last_activity, model, location)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`,
		d.Name, d.Type, d.IPAddress, d.Status, d.Bandwidth, d.MaxBandwidth, d.LastActivity, d.Model, d.Location)
	if err := row.Scan(&d.ID); err != nil {
		return models.Device{}, fmt.Errorf("failed to insert device: %w", err)
	}
	return d, nil
}

func (p *Postgres) UpdateDevice(ctx context.Context, id int, req models.UpdateDeviceRequest) (models.Device, error) {
	defer observe("update", "devices", p.now())

	d, err := p.GetDevice(ctx, id)
	if err != nil {
		return models.Device{}, err
	}
	req.Apply(&d, p.now())

	_, err = p.pool.Exec(ctx, `
		UPDATE devices
		SET name = $1, type = $2, ip_address = $3, status = $4, bandwidth = $5,
		    max_bandwidth = $6, last_activity = $7, model = $8, location = $9
		WHERE id = $10`,
		d.Name, d.Type, d.IPAddress, d.Status, d.Bandwidth, d.MaxBandwidth,
		d.LastActivity, d.Model, d.Location, id)
	if err != nil {
		return models.Device{}, fmt.Errorf("failed to update device: %w", err)
	}
	return d, nil
}

func (p *Postgres) DeleteDevice(ctx context.Context, id int) (bool, error) {
	defer observe("delete", "devices", p.now())

	tag, err := p.pool.Exec(ctx, `DELETE FROM devices WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete device: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Bandwidth metrics

const bandwidthColumns = "id, device_id, timestamp, incoming, outgoing"

func scanBandwidthMetric(row rowScanner) (models.BandwidthMetric, error) {
	var bm models.BandwidthMetric
	err := row.Scan(&bm.ID, &bm.DeviceID, &bm.Timestamp, &bm.Incoming, &bm.Outgoing)
	return bm, err
}

func (p *Postgres) ListBandwidthMetrics(ctx context.Context, q BandwidthQuery) ([]models.BandwidthMetric, error) {
	defer observe("list", "bandwidth_metrics", p.now())

	limit := q.Limit
	if limit <= 0 {
		limit = DefaultBandwidthLimit
	}

	query := `SELECT ` + bandwidthColumns + ` FROM bandwidth_metrics WHERE 1=1`
	args := []any{}
	if q.DeviceID != nil {
		args = append(args, *q.DeviceID)
		query += fmt.Sprintf(" AND device_id = $%d", len(args))
	}
	if q.Since != nil {
		args = append(args, *q.Since)
		query += fmt.Sprintf(" AND timestamp >= $%d", len(args))
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY timestamp DESC, id ASC LIMIT $%d", len(args))

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list bandwidth metrics: %w", err)
	}
	defer rows.Close()

	out := []models.BandwidthMetric{}
	for rows.Next() {
		bm, err := scanBandwidthMetric(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bandwidth metric: %w", err)
		}
		out = append(out, bm)
	}
	return out, rows.Err()
}

func (p *Postgres) CreateBandwidthMetric(ctx context.Context, req models.CreateBandwidthMetricRequest) (models.BandwidthMetric, error) {
	defer observe("create", "bandwidth_metrics", p.now())

	bm := req.Metric(p.now())
	row := p.pool.QueryRow(ctx, `
		INSERT INTO bandwidth_metrics (device_id, timestamp, incoming, outgoing)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		bm.DeviceID, bm.Timestamp, bm.Incoming, bm.Outgoing)
	if err := row.Scan(&bm.ID); err != nil {
		return models.BandwidthMetric{}, fmt.Errorf("failed to insert bandwidth metric: %w", err)
	}
	return bm, nil
}

// System metrics

const systemColumns = "id, timestamp, active_devices, total_bandwidth, warnings, uptime"

func scanSystemMetric(row rowScanner) (models.SystemMetric, error) {
	var sm models.SystemMetric
	err := row.Scan(&sm.ID, &sm.Timestamp, &sm.ActiveDevices, &sm.TotalBandwidth, &sm.Warnings, &sm.Uptime)
	return sm, err
}

func (p *Postgres) SystemMetricsHistory(ctx context.Context, limit int) ([]models.SystemMetric, error) {
	defer observe("list", "system_metrics", p.now())

	if limit <= 0 {
		limit = DefaultSystemHistoryLimit
	}

	rows, err := p.pool.Query(ctx, `
		SELECT `+systemColumns+` FROM system_metrics
		ORDER BY timestamp DESC, id ASC LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list system metrics: %w", err)
	}
	defer rows.Close()

	out := []models.SystemMetric{}
	for rows.Next() {
		sm, err := scanSystemMetric(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan system metric: %w", err)
		}
		out = append(out, sm)
	}
	return out, rows.Err()
}

func (p *Postgres) LatestSystemMetric(ctx context.Context) (models.SystemMetric, error) {
	defer observe("get", "system_metrics", p.now())

	row := p.pool.QueryRow(ctx, `
		SELECT `+systemColumns+` FROM system_metrics
		ORDER BY timestamp DESC, id ASC LIMIT 1`)
	sm, err := scanSystemMetric(row)
	if err != nil {
		return models.SystemMetric{}, mapErr(err)
	}
	return sm, nil
}

func (p *Postgres) CreateSystemMetric(ctx context.Context, req models.CreateSystemMetricRequest) (models.SystemMetric, error) {
	defer observe("create", "system_metrics", p.now())

	sm := req.Metric(p.now())
	row := p.pool.QueryRow(ctx, `
		INSERT INTO system_metrics (timestamp, active_devices, total_bandwidth, warnings, uptime)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`,
		sm.Timestamp, sm.ActiveDevices, sm.TotalBandwidth, sm.Warnings, sm.Uptime)
	if err := row.Scan(&sm.ID); err != nil {
		return models.SystemMetric{}, fmt.Errorf("failed to insert system metric: %w", err)
	}
	return sm, nil
}

// Security events

const eventColumns = "id, timestamp, event_type, severity, source_ip, target_ip, description, status, device_id"

func scanSecurityEvent(row rowScanner) (models.SecurityEvent, error) {
	var e models.SecurityEvent
	err := row.Scan(&e.ID, &e.Timestamp, &e.EventType, &e.Severity, &e.SourceIP,
		&e.TargetIP, &e.Description, &e.Status, &e.DeviceID)
	return e, err
}

func (p *Postgres) ListSecurityEvents(ctx context.Context, limit int) ([]models.SecurityEvent, error) {
	return p.listSecurityEvents(ctx, "", limit)
}

func (p *Postgres) ListSecurityEventsByStatus(ctx context.Context, status string, limit int) ([]models.SecurityEvent, error) {
	return p.listSecurityEvents(ctx, status, limit)
}

func (p *Postgres) listSecurityEvents(ctx context.Context, status string, limit int) ([]models.SecurityEvent, error) {
	defer observe("list", "security_events", p.now())

	if limit <= 0 {
		limit = DefaultEventLimit
	}

	query := `SELECT ` + eventColumns + ` FROM security_events`
	args := []any{}
	if status != "" {
		args = append(args, status)
		query += " WHERE status = $1"
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY timestamp DESC, id ASC LIMIT $%d", len(args))

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list security events: %w", err)
	}
	defer rows.Close()

	out := []models.SecurityEvent{}
	for rows.Next() {
		e, err := scanSecurityEvent(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan security event: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (p *Postgres) GetSecurityEvent(ctx context.Context, id int) (models.SecurityEvent, error) {
	defer observe("get", "security_events", p.now())

	row := p.pool.QueryRow(ctx, `SELECT `+eventColumns+` FROM security_events WHERE id = $1`, id)
	e, err := scanSecurityEvent(row)
	if err != nil {
		return models.SecurityEvent{}, mapErr(err)
	}
	return e, nil
}

func (p *Postgres) CreateSecurityEvent(ctx context.Context, req models.CreateSecurityEventRequest) (models.SecurityEvent, error) {
	defer observe("create", "security_events", p.now())

	e := req.Event(p.now())
	row := p.pool.QueryRow(ctx, `
		INSERT INTO security_events (timestamp, event_type, severity, source_ip, target_ip, description, status, device_id)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		e.Timestamp, e.EventType, e.Severity, e.SourceIP, e.TargetIP, e.Description, e.Status, e.DeviceID)
	if err := row.Scan(&e.ID); err != nil {
		return models.SecurityEvent{}, fmt.Errorf("failed to insert security event: %w", err)
	}
	return e, nil
}

func (p *Postgres) UpdateSecurityEvent(ctx context.Context, id int, req models.UpdateSecurityEventRequest) (models.SecurityEvent, error) {
	defer observe("update", "security_events", p.now())

	e, err := p.GetSecurityEvent(ctx, id)
	if err != nil {
		return models.SecurityEvent{}, err
	}
	req.Apply(&e)

	_, err = p.pool.Exec(ctx, `
		UPDATE security_events
		SET event_type = $1, severity = $2, source_ip = $3, target_ip = $4,
		    description = $5, status = $6, device_id = $7
		WHERE id = $8`,
		e.EventType, e.Severity, e.SourceIP, e.TargetIP, e.Description, e.Status, e.DeviceID, id)
	if err != nil {
		return models.SecurityEvent{}, fmt.Errorf("failed to update security event: %w", err)
	}
	return e, nil
}

func (p *Postgres) DeleteSecurityEvent(ctx context.Context, id int) (bool, error) {
	defer observe("delete", "security_events", p.now())

	tag, err := p.pool.Exec(ctx, `DELETE FROM security_events WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete security event: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// IDS rules

const ruleColumns = "id, name, description, pattern, severity, enabled, created_at, updated_at"

func scanIdsRule(row rowScanner) (models.IdsRule, error) {
	var r models.IdsRule
	err := row.Scan(&r.ID, &r.Name, &r.Description, &r.Pattern, &r.Severity,
		&r.Enabled, &r.CreatedAt, &r.UpdatedAt)
	return r, err
}

func (p *Postgres) ListIdsRules(ctx context.Context) ([]models.IdsRule, error) {
	defer observe("list", "ids_rules", p.now())

	rows, err := p.pool.Query(ctx, `SELECT `+ruleColumns+` FROM ids_rules ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list IDS rules: %w", err)
	}
	defer rows.Close()

	out := []models.IdsRule{}
	for rows.Next() {
		r, err := scanIdsRule(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan IDS rule: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (p *Postgres) GetIdsRule(ctx context.Context, id int) (models.IdsRule, error) {
	defer observe("get", "ids_rules", p.now())

	row := p.pool.QueryRow(ctx, `SELECT `+ruleColumns+` FROM ids_rules WHERE id = $1`, id)
	r, err := scanIdsRule(row)
	if err != nil {
		return models.IdsRule{}, mapErr(err)
	}
	return r, nil
}

func (p *Postgres) CreateIdsRule(ctx context.Context, req models.CreateIdsRuleRequest) (models.IdsRule, error) {
	defer observe("create", "ids_rules", p.now())

	r := req.Rule(p.now())
	row := p.pool.QueryRow(ctx, `
		INSERT INTO ids_rules (name, description, pattern, severity, enabled, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`,
		r.Name, r.Description, r.Pattern, r.Severity, r.Enabled, r.CreatedAt, r.UpdatedAt)
	if err := row.Scan(&r.ID); err != nil {
		return models.IdsRule{}, fmt.Errorf("failed to insert IDS rule: %w", err)
	}
	return r, nil
}

func (p *Postgres) UpdateIdsRule(ctx context.Context, id int, req models.UpdateIdsRuleRequest) (models.IdsRule, error) {
	defer observe("update", "ids_rules", p.now())

	r, err := p.GetIdsRule(ctx, id)
	if err != nil {
		return models.IdsRule{}, err
	}
	req.Apply(&r, p.now())

	_, err = p.pool.Exec(ctx, `
		UPDATE ids_rules
		SET name = $1, description = $2, pattern = $3, severity = $4, enabled = $5, updated_at = $6
		WHERE id = $7`,
		r.Name, r.Description, r.Pattern, r.Severity, r.Enabled, r.UpdatedAt, id)
	if err != nil {
		return models.IdsRule{}, fmt.Errorf("failed to update IDS rule: %w", err)
	}
	return r, nil
}

func (p *Postgres) DeleteIdsRule(ctx context.Context, id int) (bool, error) {
	defer observe("delete", "ids_rules", p.now())

	tag, err := p.pool.Exec(ctx, `DELETE FROM ids_rules WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete IDS rule: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Password vaults

const vaultColumns = "id, name, description, created_at, updated_at"

func scanPasswordVault(row rowScanner) (models.PasswordVault, error) {
	var v models.PasswordVault
	err := row.Scan(&v.ID, &v.Name, &v.Description, &v.CreatedAt, &v.UpdatedAt)
	return v, err
}

func (p *Postgres) ListPasswordVaults(ctx context.Context) ([]models.PasswordVault, error) {
	defer observe("list", "password_vaults", p.now())

	rows, err := p.pool.Query(ctx, `SELECT `+vaultColumns+` FROM password_vaults ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list password vaults: %w", err)
	}
	defer rows.Close()

	out := []models.PasswordVault{}
	for rows.Next() {
		v, err := scanPasswordVault(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan password vault: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (p *Postgres) GetPasswordVault(ctx context.Context, id int) (models.PasswordVault, error) {
	defer observe("get", "password_vaults", p.now())

	row := p.pool.QueryRow(ctx, `SELECT `+vaultColumns+` FROM password_vaults WHERE id = $1`, id)
	v, err := scanPasswordVault(row)
	if err != nil {
		return models.PasswordVault{}, mapErr(err)
	}
	return v, nil
}

func (p *Postgres) CreatePasswordVault(ctx context.Context, req models.CreatePasswordVaultRequest) (models.PasswordVault, error) {
	defer observe("create", "password_vaults", p.now())

	v := req.Vault(p.now())
	row := p.pool.QueryRow(ctx, `
		INSERT INTO password_vaults (name, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id`,
		v.Name, v.Description, v.CreatedAt, v.UpdatedAt)
	if err := row.Scan(&v.ID); err != nil {
		return models.PasswordVault{}, fmt.Errorf("failed to insert password vault: %w", err)
	}
	return v, nil
}

func (p *Postgres) UpdatePasswordVault(ctx context.Context, id int, req models.UpdatePasswordVaultRequest) (models.PasswordVault, error) {
	defer observe("update", "password_vaults", p.now())

	v, err := p.GetPasswordVault(ctx, id)
	if err != nil {
		return models.PasswordVault{}, err
	}
	req.Apply(&v, p.now())

	_, err = p.pool.Exec(ctx, `
		UPDATE password_vaults SET name = $1, description = $2, updated_at = $3 WHERE id = $4`,
		v.Name, v.Description, v.UpdatedAt, id)
	if err != nil {
		return models.PasswordVault{}, fmt.Errorf("failed to update password vault: %w", err)
	}
	return v, nil
}

// DeletePasswordVault removes the vault and its entries in one
// transaction so concurrent readers never see orphaned entries.
func (p *Postgres) DeletePasswordVault(ctx context.Context, id int) (bool, error) {
	defer observe("delete", "password_vaults", p.now())

	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `DELETE FROM password_entries WHERE vault_id = $1`, id); err != nil {
		return false, fmt.Errorf("failed to delete vault entries: %w", err)
	}
	tag, err := tx.Exec(ctx, `DELETE FROM password_vaults WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete vault: %w", err)
	}
	if err := tx.Commit(ctx); err != nil {
		return false, fmt.Errorf("failed to commit vault delete: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Password entries

const entryColumns = "id, vault_id, title, username, email, encrypted_password, website, notes, category, is_favorite, last_used, created_at, updated_at"

func scanPasswordEntry(row rowScanner) (models.PasswordEntry, error) {
	var e models.PasswordEntry
	err := row.Scan(&e.ID, &e.VaultID, &e.Title, &e.Username, &e.Email,
		&e.EncryptedPassword, &e.Website, &e.Notes, &e.Category,
		&e.IsFavorite, &e.LastUsed, &e.CreatedAt, &e.UpdatedAt)
	return e, err
}

func (p *Postgres) ListPasswordEntries(ctx context.Context, vaultID *int) ([]models.PasswordEntry, error) {
	defer observe("list", "password_entries", p.now())

	query := `SELECT ` + entryColumns + ` FROM password_entries`
	args := []any{}
	if vaultID != nil {
		query += ` WHERE vault_id = $1`
		args = append(args, *vaultID)
	}
	query += ` ORDER BY id`

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list password entries: %w", err)
	}
	defer rows.Close()

	out := []models.PasswordEntry{}
	for rows.Next() {
		e, err := scanPasswordEntry(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan password entry: %w", err)
		}
		out = append(out, e)
	}
	return out, rows.Err()
}

func (p *Postgres) GetPasswordEntry(ctx context.Context, id int) (models.PasswordEntry, error) {
	defer observe("get", "password_entries", p.now())

	row := p.pool.QueryRow(ctx, `SELECT `+entryColumns+` FROM password_entries WHERE id = $1`, id)
	e, err := scanPasswordEntry(row)
	if err != nil {
		return models.PasswordEntry{}, mapErr(err)
	}
	return e, nil
}

func (p *Postgres) CreatePasswordEntry(ctx context.Context, req models.CreatePasswordEntryRequest) (models.PasswordEntry, error) {
	defer observe("create", "password_entries", p.now())

	e := req.Entry(p.now())
	row := p.pool.QueryRow(ctx, `
		INSERT INTO password_entries (vault_id, title, username, email, encrypted_password, website, notes, category, is_favorite, last_used, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id`,
		e.VaultID, e.Title, e.Username, e.Email, e.EncryptedPassword, e.Website,
		e.Notes, e.Category, e.IsFavorite, e.LastUsed, e.CreatedAt, e.UpdatedAt)
	if err := row.Scan(&e.ID); err != nil {
		return models.PasswordEntry{}, fmt.Errorf("failed to insert password entry: %w", err)
	}
	return e, nil
}

func (p *Postgres) UpdatePasswordEntry(ctx context.Context, id int, req models.UpdatePasswordEntryRequest) (models.PasswordEntry, error) {
	defer observe("update", "password_entries", p.now())

	e, err := p.GetPasswordEntry(ctx, id)
	if err != nil {
		return models.PasswordEntry{}, err
	}
	req.Apply(&e, p.now())

	_, err = p.pool.Exec(ctx, `
		UPDATE password_entries
		SET title = $1, username = $2, email = $3, encrypted_password = $4, website = $5,
		    notes = $6, category = $7, is_favorite = $8, last_used = $9, updated_at = $10
		WHERE id = $11`,
		e.Title, e.Username, e.Email, e.EncryptedPassword, e.Website,
		e.Notes, e.Category, e.IsFavorite, e.LastUsed, e.UpdatedAt, id)
	if err != nil {
		return models.PasswordEntry{}, fmt.Errorf("failed to update password entry: %w", err)
	}
	return e, nil
}

func (p *Postgres) DeletePasswordEntry(ctx context.Context, id int) (bool, error) {
	defer observe("delete", "password_entries", p.now())

	tag, err := p.pool.Exec(ctx, `DELETE FROM password_entries WHERE id = $1`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete password entry: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// Ping verifies database connectivity.
func (p *Postgres) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// Close releases the connection pool.
func (p *Postgres) Close() {
	p.pool.Close()
}
