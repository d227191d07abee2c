package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	pgvector "github.com/pgvector/pgvector-go"

	"fortune-api/internal/domain"
)

// MBTIResultRepository persists classifications per user.
type MBTIResultRepository interface {
	Create(ctx context.Context, result domain.MBTIResult) error
	GetByID(ctx context.Context, id string) (domain.MBTIResult, error)
	ListByUser(ctx context.Context, userID string, limit int) ([]domain.MBTIResult, error)
	FindSimilar(ctx context.Context, tendency domain.TendencyVector, excludeID string, k int) ([]domain.MBTIResult, error)
}

type PgMBTIResultRepository struct {
	pool *pgxpool.Pool
}

func NewPgMBTIResultRepository(pool *pgxpool.Pool) *PgMBTIResultRepository {
	return &PgMBTIResultRepository{pool: pool}
}

const mbtiResultColumns = `id, user_id, type_code, display_type, ei, sn, tf, jp, created_at`

func (r *PgMBTIResultRepository) Create(ctx context.Context, result domain.MBTIResult) error {
	const query = `
		INSERT INTO mbti_results (id, user_id, type_code, display_type, ei, sn, tf, jp, tendency, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err := r.pool.Exec(ctx, query,
		result.ID,
		result.UserID,
		string(result.Type),
		result.DisplayType,
		result.Tendency.EI,
		result.Tendency.SN,
		result.Tendency.TF,
		result.Tendency.JP,
		pgvector.NewVector(result.Tendency.Floats()),
		result.CreatedAt,
	)
	return err
}

func (r *PgMBTIResultRepository) GetByID(ctx context.Context, id string) (domain.MBTIResult, error) {
	query := `SELECT ` + mbtiResultColumns + ` FROM mbti_results WHERE id = $1`
	result, err := scanMBTIResult(r.pool.QueryRow(ctx, query, id))
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.MBTIResult{}, err
	}
	return result, err
}

func (r *PgMBTIResultRepository) ListByUser(ctx context.Context, userID string, limit int) ([]domain.MBTIResult, error) {
	if limit <= 0 {
		limit = 20
	}
	query := `
		SELECT ` + mbtiResultColumns + `
		FROM mbti_results
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMBTIResults(rows)
}

// FindSimilar orders saved results by euclidean distance between tendency vectors.
func (r *PgMBTIResultRepository) FindSimilar(ctx context.Context, tendency domain.TendencyVector, excludeID string, k int) ([]domain.MBTIResult, error) {
	if k <= 0 {
		k = 5
	}
	query := `
		SELECT ` + mbtiResultColumns + `
		FROM mbti_results
		WHERE id <> $2
		ORDER BY tendency <-> $1
		LIMIT $3
	`
	rows, err := r.pool.Query(ctx, query, pgvector.NewVector(tendency.Floats()), excludeID, k)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectMBTIResults(rows)
}

func collectMBTIResults(rows pgx.Rows) ([]domain.MBTIResult, error) {
	var results []domain.MBTIResult
	for rows.Next() {
		result, err := scanMBTIResult(rows)
		if err != nil {
			return nil, err
		}
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func scanMBTIResult(row pgx.Row) (domain.MBTIResult, error) {
	var (
		result   domain.MBTIResult
		typeCode string
	)
	err := row.Scan(
		&result.ID,
		&result.UserID,
		&typeCode,
		&result.DisplayType,
		&result.Tendency.EI,
		&result.Tendency.SN,
		&result.Tendency.TF,
		&result.Tendency.JP,
		&result.CreatedAt,
	)
	if err != nil {
		return domain.MBTIResult{}, err
	}
	result.Type = domain.TypeCode(typeCode)
	return result, nil
}
