package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"spreadScope/internal/model"
)

// Store provides Postgres persistence for sweep results.
type Store struct {
	pool *pgxpool.Pool
}

func NewStore(ctx context.Context, dsn string) (*Store, error) {
	if dsn == "" {
		return nil, fmt.Errorf("pg dsn is required")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// PutSweepBatch inserts or updates evaluated sweep scenarios.
func (s *Store) PutSweepBatch(ctx context.Context, rows []model.SweepRow) error {
	if len(rows) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, row := range rows {
		batch.Queue(`
			INSERT INTO sweep_rows (
				factor, cap, imbalance, base_spread,
				tick_adjustment, fee_adjustment,
				upper_bound, lower_bound, tick_position, fee_tier,
				curve_type, direction, computed_at, created_at, updated_at
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,now(),now())
			ON CONFLICT (factor, cap, imbalance, base_spread)
			DO UPDATE SET
				tick_adjustment = EXCLUDED.tick_adjustment,
				fee_adjustment = EXCLUDED.fee_adjustment,
				upper_bound = EXCLUDED.upper_bound,
				lower_bound = EXCLUDED.lower_bound,
				tick_position = EXCLUDED.tick_position,
				fee_tier = EXCLUDED.fee_tier,
				curve_type = EXCLUDED.curve_type,
				direction = EXCLUDED.direction,
				computed_at = EXCLUDED.computed_at,
				updated_at = now()
		`,
			row.Factor,
			row.Cap,
			row.Imbalance,
			row.BaseSpread,
			row.TickAdjustment,
			row.FeeAdjustment,
			row.UpperBound,
			row.LowerBound,
			row.TickPosition,
			row.FeeTier,
			row.CurveType,
			row.Direction,
			row.ComputedAt,
		)
	}

	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()

	for range rows {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}

// LoadState returns the last processed scenario index for a name.
func (s *Store) LoadState(ctx context.Context, name string) (uint64, bool, error) {
	if name == "" {
		return 0, false, fmt.Errorf("state name required")
	}
	var index uint64
	row := s.pool.QueryRow(ctx, `SELECT last_processed_index FROM sweep_state WHERE name=$1`, name)
	if err := row.Scan(&index); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, err
	}
	return index, true, nil
}

// SaveState upserts the last processed scenario index for a name.
func (s *Store) SaveState(ctx context.Context, name string, index uint64) error {
	if name == "" {
		return fmt.Errorf("state name required")
	}
	_, err := s.pool.Exec(ctx, `
		INSERT INTO sweep_state (name, last_processed_index, updated_at)
		VALUES ($1, $2, now())
		ON CONFLICT (name) DO UPDATE
		SET last_processed_index = EXCLUDED.last_processed_index, updated_at = now()
	`, name, index)
	return err
}
