package trackingrepo

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/porchman/notification-api/internal/db/migrations"
)

// PostgresRepository stores records in the tracking_records table.
type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const (
	upsertQuery = `INSERT INTO ` + migrations.SchemaName + `.tracking_records (partition_key, row_key, number, track_id, updated_at)
VALUES ($1, $2, $3, $4, now())
ON CONFLICT (partition_key, row_key) DO UPDATE
SET number = EXCLUDED.number, track_id = EXCLUDED.track_id, updated_at = EXCLUDED.updated_at`

	findByNumberQuery = `SELECT partition_key, row_key, number, track_id, updated_at
FROM ` + migrations.SchemaName + `.tracking_records
WHERE number = $1
ORDER BY partition_key, row_key`
)

// Upsert inserts the record or replaces the one with the same keys.
func (r *PostgresRepository) Upsert(ctx context.Context, rec Record) error {
	if err := rec.Validate(); err != nil {
		return err
	}
	_, err := r.db.ExecContext(ctx, upsertQuery, rec.PartitionKey, rec.RowKey, rec.Number, rec.TrackID)
	if err != nil {
		if IsUndefinedTableError(err) {
			return fmt.Errorf("tracking table missing, run migrations: %w", err)
		}
		return fmt.Errorf("failed to upsert tracking record: %w", err)
	}
	return nil
}

// FindByNumber returns every record whose number equals the argument.
func (r *PostgresRepository) FindByNumber(ctx context.Context, number string) ([]Record, error) {
	rows, err := r.db.QueryContext(ctx, findByNumberQuery, number)
	if err != nil {
		if IsUndefinedTableError(err) {
			return nil, fmt.Errorf("tracking table missing, run migrations: %w", err)
		}
		return nil, fmt.Errorf("failed to query tracking records: %w", err)
	}
	defer rows.Close() //nolint:errcheck

	var out []Record
	for rows.Next() {
		var rec Record
		if err := rows.Scan(&rec.PartitionKey, &rec.RowKey, &rec.Number, &rec.TrackID, &rec.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan tracking record: %w", err)
		}
		out = append(out, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tracking records: %w", err)
	}
	return out, nil
}
