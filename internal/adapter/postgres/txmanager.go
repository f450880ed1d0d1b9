package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// TxManager runs callbacks inside a transaction carried by the context.
// Repositories pick it up through QuerierFromCtx.
type TxManager struct {
	db DB
}

func NewTxManager(db DB) *TxManager {
	return &TxManager{db: db}
}

// RunInTx commits when fn returns nil and rolls back otherwise; a panic in
// fn rolls back and is re-raised. When ctx already carries a transaction,
// fn runs in a savepoint of it, so a failed inner call undoes only its own
// writes.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if outer, ok := txFromCtx(ctx); ok {
		return run(ctx, outer.Begin, fn)
	}
	return run(ctx, m.db.Begin, fn)
}

func run(ctx context.Context, begin func(context.Context) (pgx.Tx, error), fn func(context.Context) error) (err error) {
	tx, err := begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(ctx)
			panic(r)
		}
	}()

	if err := fn(withTx(ctx, tx)); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil && !errors.Is(rbErr, pgx.ErrTxClosed) {
			return errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
