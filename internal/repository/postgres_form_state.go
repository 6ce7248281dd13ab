package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"spine-intake/internal/domain"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

// undefinedTable 对应 PostgreSQL 错误码 42P01
const undefinedTable = "42P01"

const schemaSQL = `
CREATE TABLE IF NOT EXISTS assessments (
	session_id  TEXT PRIMARY KEY,
	pain_areas  JSONB NOT NULL DEFAULT '[]'::jsonb,
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
)`

// PostgresFormStateRepo 将 pain_areas 写入 assessments 表的 JSONB 列
// Rows written by the previous front end carry only a notes string per area;
// they are migrated to the structured fields on load.
type PostgresFormStateRepo struct {
	db     *sql.DB
	logger *zap.Logger
}

func NewPostgresFormStateRepo(db *sql.DB, logger *zap.Logger) *PostgresFormStateRepo {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PostgresFormStateRepo{db: db, logger: logger}
}

// EnsureSchema creates the assessments table when it does not exist.
func (r *PostgresFormStateRepo) EnsureSchema(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("ensure assessments schema: %w", err)
	}
	return nil
}

func (r *PostgresFormStateRepo) LoadPainAreas(ctx context.Context, sessionID string) ([]domain.PainArea, error) {
	query := `SELECT pain_areas FROM assessments WHERE session_id = $1`

	var raw []byte
	err := r.db.QueryRowContext(ctx, query, sessionID).Scan(&raw)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return []domain.PainArea{}, nil
		}
		return nil, r.wrap("load", sessionID, err)
	}

	var areas []domain.PainArea
	if len(raw) > 0 {
		if err := json.Unmarshal(raw, &areas); err != nil {
			return nil, fmt.Errorf("decode pain_areas for %s: %w", sessionID, err)
		}
	}
	if areas == nil {
		areas = []domain.PainArea{}
	}
	return areas, nil
}

func (r *PostgresFormStateRepo) SavePainAreas(ctx context.Context, sessionID string, areas []domain.PainArea) error {
	if areas == nil {
		areas = []domain.PainArea{}
	}
	b, err := json.Marshal(areas)
	if err != nil {
		return fmt.Errorf("encode pain_areas for %s: %w", sessionID, err)
	}

	query := `
		INSERT INTO assessments (session_id, pain_areas, updated_at)
		VALUES ($1, $2::jsonb, now())
		ON CONFLICT (session_id)
		DO UPDATE SET pain_areas = EXCLUDED.pain_areas, updated_at = now()`
	if _, err := r.db.ExecContext(ctx, query, sessionID, string(b)); err != nil {
		return r.wrap("save", sessionID, err)
	}
	return nil
}

func (r *PostgresFormStateRepo) ListSessions(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT session_id FROM assessments ORDER BY session_id`)
	if err != nil {
		return nil, r.wrap("list", "", err)
	}
	defer rows.Close()

	ids := []string{}
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (r *PostgresFormStateRepo) DeleteSession(ctx context.Context, sessionID string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM assessments WHERE session_id = $1`, sessionID); err != nil {
		return r.wrap("delete", sessionID, err)
	}
	return nil
}

func (r *PostgresFormStateRepo) wrap(op, sessionID string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && string(pqErr.Code) == undefinedTable {
		r.logger.Error("assessments table missing, run EnsureSchema",
			zap.String("op", op),
			zap.String("session_id", sessionID),
		)
	}
	if sessionID == "" {
		return fmt.Errorf("%s sessions: %w", op, err)
	}
	return fmt.Errorf("%s session %s: %w", op, sessionID, err)
}
