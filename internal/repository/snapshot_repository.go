package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/nikolayk812/shopledger/internal/db"
	"github.com/nikolayk812/shopledger/internal/port"
)

// snapshotRepository keeps ledger snapshots of a single owner in Postgres.
type snapshotRepository struct {
	q       *db.Queries
	pool    *pgxpool.Pool
	ownerID string
}

func NewSnapshot(pool *pgxpool.Pool, ownerID string) (port.SnapshotRepository, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("ownerID is empty")
	}

	return &snapshotRepository{
		q:       db.New(pool),
		pool:    pool,
		ownerID: ownerID,
	}, nil
}

func NewSnapshotWithTx(tx pgx.Tx, ownerID string) (port.SnapshotRepository, error) {
	if ownerID == "" {
		return nil, fmt.Errorf("ownerID is empty")
	}

	return &snapshotRepository{
		q:       db.New(tx),
		pool:    nil, // use provided transaction instead
		ownerID: ownerID,
	}, nil
}

func (r *snapshotRepository) Get(ctx context.Context, key string) ([]byte, error) {
	if key == "" {
		return nil, fmt.Errorf("key is empty")
	}

	row, err := r.q.GetSnapshot(ctx, db.GetSnapshotParams{
		OwnerID: r.ownerID,
		Key:     key,
	})
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, port.ErrNotFound
		}
		return nil, fmt.Errorf("q.GetSnapshot: %w", err)
	}

	return row.Value, nil
}

func (r *snapshotRepository) Put(ctx context.Context, key string, value []byte) error {
	if key == "" {
		return fmt.Errorf("key is empty")
	}

	return r.inTx(ctx, func(q *db.Queries) error {
		if err := q.TouchOwner(ctx, r.ownerID); err != nil {
			return fmt.Errorf("q.TouchOwner: %w", err)
		}

		err := q.UpsertSnapshot(ctx, db.UpsertSnapshotParams{
			OwnerID: r.ownerID,
			Key:     key,
			Value:   value,
		})
		if err != nil {
			return fmt.Errorf("q.UpsertSnapshot: %w", err)
		}

		return nil
	})
}

func (r *snapshotRepository) Delete(ctx context.Context, key string) (bool, error) {
	if key == "" {
		return false, fmt.Errorf("key is empty")
	}

	rowsAffected, err := r.q.DeleteSnapshot(ctx, db.DeleteSnapshotParams{
		OwnerID: r.ownerID,
		Key:     key,
	})
	if err != nil {
		return false, fmt.Errorf("q.DeleteSnapshot: %w", err)
	}

	return rowsAffected > 0, nil
}

func (r *snapshotRepository) Keys(ctx context.Context) ([]string, error) {
	keys, err := r.q.ListSnapshotKeys(ctx, r.ownerID)
	if err != nil {
		return nil, fmt.Errorf("q.ListSnapshotKeys: %w", err)
	}

	return keys, nil
}
