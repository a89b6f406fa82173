package persistence

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/predusk/profile-api/internal/domain"
	"github.com/predusk/profile-api/pkg/apperror"
	"github.com/predusk/profile-api/pkg/logger"
)

type txContextKey struct{}

// TxManager implements domain.Sessions on top of a pgx pool. The transaction
// handle travels in the context given to fn; stores pick it up transparently,
// so the same repository call works standalone (pool, auto-commit per
// statement) and inside a shared transaction.
type TxManager struct {
	pool   *pgxpool.Pool
	logger logger.Logger
}

func NewTxManager(pool *pgxpool.Pool, log logger.Logger) *TxManager {
	return &TxManager{pool: pool, logger: log}
}

func (m *TxManager) WithinTx(ctx context.Context, fn func(ctx context.Context) error) error {
	tx, err := m.pool.Begin(ctx)
	if err != nil {
		return apperror.NewInternal("failed to begin transaction", err)
	}
	// Rollback after a successful commit is a no-op (pgx.ErrTxClosed).
	defer tx.Rollback(ctx)

	if err := fn(context.WithValue(ctx, txContextKey{}, tx)); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return apperror.NewInternal("failed to commit transaction", err)
	}
	return nil
}

func txFromContext(ctx context.Context) pgx.Tx {
	tx, _ := ctx.Value(txContextKey{}).(pgx.Tx)
	return tx
}

var _ domain.Sessions = (*TxManager)(nil)
