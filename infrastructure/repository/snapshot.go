package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/eme-digital/ads-audit-api/infrastructure/database/postgres"
	"github.com/eme-digital/ads-audit-api/internal/domain"
	"github.com/lib/pq"
)

const snapshotsTable = "snapshots"

type SnapshotRepository interface {
	SaveOrUpdate(entry *domain.SnapshotEntry) error
	GetByDomain(domainName string) (*domain.SnapshotEntry, error)
	List() ([]*domain.SnapshotEntry, error)
}

type snapshotRepository struct {
	conn *postgres.Connection
}

func NewSnapshotRepository(conn *postgres.Connection) SnapshotRepository {
	return &snapshotRepository{
		conn: conn,
	}
}

func (r *snapshotRepository) SaveOrUpdate(entry *domain.SnapshotEntry) error {
	query := squirrel.StatementBuilder.
		Insert(snapshotsTable).
		Columns("domain", "version", "payload", "fetched_at").
		Values(
			entry.Domain,
			entry.Version,
			[]byte(entry.Payload),
			entry.FetchedAt,
		).
		Suffix(`
			ON CONFLICT (domain) DO UPDATE SET
				version = EXCLUDED.version,
				payload = EXCLUDED.payload,
				fetched_at = EXCLUDED.fetched_at
		`).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := query.ToSql()
	if err != nil {
		return fmt.Errorf("building snapshot upsert: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("database error: %w (code: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("executing snapshot upsert: %w", err)
	}

	return nil
}

func (r *snapshotRepository) GetByDomain(domainName string) (*domain.SnapshotEntry, error) {
	query, args, err := squirrel.
		Select("domain", "version", "payload", "fetched_at").
		From(snapshotsTable).
		Where(squirrel.Eq{"domain": domainName}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building snapshot query: %w", err)
	}

	entry := &domain.SnapshotEntry{}
	var payload []byte
	err = r.conn.QueryRow(query, args...).Scan(
		&entry.Domain,
		&entry.Version,
		&payload,
		&entry.FetchedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("scanning snapshot: %w", err)
	}

	entry.Payload = payload
	return entry, nil
}

func (r *snapshotRepository) List() ([]*domain.SnapshotEntry, error) {
	query, args, err := squirrel.
		Select("domain", "version", "payload", "fetched_at").
		From(snapshotsTable).
		OrderBy("domain ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("building snapshot list query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("listing snapshots: %w", err)
	}
	defer rows.Close()

	entries := make([]*domain.SnapshotEntry, 0)
	for rows.Next() {
		entry := &domain.SnapshotEntry{}
		var payload []byte
		if err := rows.Scan(
			&entry.Domain,
			&entry.Version,
			&payload,
			&entry.FetchedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning snapshot row: %w", err)
		}
		entry.Payload = payload
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating snapshot rows: %w", err)
	}

	return entries, nil
}
