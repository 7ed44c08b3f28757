package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fitforge/fitforge-api/internal/storage"
)

// PostgresStorage is the pgx-backed Storage implementation.
type PostgresStorage struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, databaseURL string) (*PostgresStorage, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return &PostgresStorage{pool: pool}, nil
}

func (p *PostgresStorage) SaveLastPlan(ctx context.Context, rec storage.PlanRecord) error {
	_, err := p.pool.Exec(ctx, `
		INSERT INTO last_plans (owner_user_id, id, goal, payload, dropped_entries, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (owner_user_id) DO UPDATE SET
			id = EXCLUDED.id,
			goal = EXCLUDED.goal,
			payload = EXCLUDED.payload,
			dropped_entries = EXCLUDED.dropped_entries,
			created_at = EXCLUDED.created_at
	`, rec.OwnerUserID, rec.ID, rec.Goal, rec.Payload, rec.DroppedEntries, rec.CreatedAt)
	return err
}

func (p *PostgresStorage) GetLastPlan(ctx context.Context, ownerUserID string) (storage.PlanRecord, error) {
	var rec storage.PlanRecord
	err := p.pool.QueryRow(ctx, `
		SELECT owner_user_id, id, goal, payload, dropped_entries, created_at
		FROM last_plans
		WHERE owner_user_id = $1
	`, ownerUserID).Scan(&rec.OwnerUserID, &rec.ID, &rec.Goal, &rec.Payload, &rec.DroppedEntries, &rec.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return storage.PlanRecord{}, storage.ErrNotFound
	}
	if err != nil {
		return storage.PlanRecord{}, err
	}
	return rec, nil
}

func (p *PostgresStorage) DeleteLastPlan(ctx context.Context, ownerUserID string) error {
	tag, err := p.pool.Exec(ctx, `DELETE FROM last_plans WHERE owner_user_id = $1`, ownerUserID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func (p *PostgresStorage) SaveLastProfile(ctx context.Context, rec storage.ProfileRecord) error {
	_, err := p.pool.Exec(ctx, `
		INSERT INTO last_profiles (owner_user_id, height_cm, weight_kg, goal, equipment, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (owner_user_id) DO UPDATE SET
			height_cm = EXCLUDED.height_cm,
			weight_kg = EXCLUDED.weight_kg,
			goal = EXCLUDED.goal,
			equipment = EXCLUDED.equipment,
			updated_at = EXCLUDED.updated_at
	`, rec.OwnerUserID, rec.HeightCm, rec.WeightKg, rec.Goal, rec.Equipment, rec.UpdatedAt)
	return err
}

func (p *PostgresStorage) GetLastProfile(ctx context.Context, ownerUserID string) (storage.ProfileRecord, error) {
	var rec storage.ProfileRecord
	err := p.pool.QueryRow(ctx, `
		SELECT owner_user_id, height_cm, weight_kg, goal, equipment, updated_at
		FROM last_profiles
		WHERE owner_user_id = $1
	`, ownerUserID).Scan(&rec.OwnerUserID, &rec.HeightCm, &rec.WeightKg, &rec.Goal, &rec.Equipment, &rec.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return storage.ProfileRecord{}, storage.ErrNotFound
	}
	if err != nil {
		return storage.ProfileRecord{}, err
	}
	return rec, nil
}

func (p *PostgresStorage) Close() error {
	p.pool.Close()
	return nil
}
