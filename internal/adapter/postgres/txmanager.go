package postgres

import (
	"context"
	"fmt"
)

// TxManager runs callbacks inside a database transaction carried in the
// context. Repositories pick it up via QuerierFromCtx.
type TxManager struct {
	db Beginner
}

// NewTxManager creates a new TxManager.
func NewTxManager(db Beginner) *TxManager {
	return &TxManager{db: db}
}

// RunInTx executes fn within a database transaction at Read Committed.
// A nested call joins the outer transaction instead of opening a second one.
// On error from fn the transaction is rolled back and the error returned.
// On panic it is rolled back and the panic re-raised.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if InTx(ctx) {
		return fn(ctx)
	}

	tx, err := m.db.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", classify(err))
	}
	st := &txState{tx: tx}

	defer func() {
		if r := recover(); r != nil {
			_ = tx.Rollback(context.WithoutCancel(ctx))
			panic(r)
		}
	}()

	if err := fn(withTx(ctx, st)); err != nil {
		if rbErr := tx.Rollback(context.WithoutCancel(ctx)); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original error: %w)", classify(rbErr), err)
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit transaction: %w", classify(err))
	}

	for _, hook := range st.takeHooks() {
		hook()
	}
	return nil
}

// AfterCommit schedules fn to run once the transaction carried by ctx has
// committed. Hooks of a rolled back transaction are dropped. Outside a
// transaction fn runs immediately.
func (m *TxManager) AfterCommit(ctx context.Context, fn func()) {
	if st, ok := stateFromCtx(ctx); ok {
		st.addHook(fn)
		return
	}
	fn()
}
