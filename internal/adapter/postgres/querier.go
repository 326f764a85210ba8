package postgres

import (
	"context"
	"sync"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the common interface implemented by *pgxpool.Pool, pgx.Tx and
// pgxmock pools.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Beginner starts transactions. *pgxpool.Pool satisfies it.
type Beginner interface {
	Begin(ctx context.Context) (pgx.Tx, error)
}

// DB is what repositories hold: something to query outside a transaction.
type DB interface {
	Querier
	Beginner
}

type txCtxKey struct{}

// txState is the transaction carried in a context plus the callbacks to run
// once it commits.
type txState struct {
	tx pgx.Tx

	mu    sync.Mutex
	hooks []func()
}

func (s *txState) addHook(fn func()) {
	s.mu.Lock()
	s.hooks = append(s.hooks, fn)
	s.mu.Unlock()
}

func (s *txState) takeHooks() []func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	hooks := s.hooks
	s.hooks = nil
	return hooks
}

func withTx(ctx context.Context, st *txState) context.Context {
	return context.WithValue(ctx, txCtxKey{}, st)
}

func stateFromCtx(ctx context.Context) (*txState, bool) {
	st, ok := ctx.Value(txCtxKey{}).(*txState)
	return st, ok
}

// QuerierFromCtx returns the transaction carried by ctx if present,
// otherwise db.
func QuerierFromCtx(ctx context.Context, db Querier) Querier {
	if st, ok := stateFromCtx(ctx); ok {
		return st.tx
	}
	return db
}

// InTx reports whether ctx carries a transaction started by TxManager.
func InTx(ctx context.Context) bool {
	_, ok := stateFromCtx(ctx)
	return ok
}
