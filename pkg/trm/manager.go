package trm

import (
	"context"
	"sync"

	"github.com/jmoiron/sqlx"
)

type Transaction interface {
	Commit() error
	Rollback() error
}

type txKey struct{}

type txState struct {
	tx *sqlx.Tx

	mu          sync.Mutex
	afterCommit []func(ctx context.Context)
}

func withTx(ctx context.Context, st *txState) context.Context {
	return context.WithValue(ctx, txKey{}, st)
}

func extractState(ctx context.Context) *txState {
	st, ok := ctx.Value(txKey{}).(*txState)
	if !ok {
		return nil
	}
	return st
}

func ExtractTx(ctx context.Context) *sqlx.Tx {
	if st := extractState(ctx); st != nil {
		return st.tx
	}
	return nil
}

// AfterCommit registers fn to run once the transaction in ctx has committed.
// Without a transaction fn runs immediately.
func AfterCommit(ctx context.Context, fn func(ctx context.Context)) {
	st := extractState(ctx)
	if st == nil {
		fn(ctx)
		return
	}
	st.mu.Lock()
	st.afterCommit = append(st.afterCommit, fn)
	st.mu.Unlock()
}

type Manager interface {
	BeginTx(ctx context.Context) (context.Context, Transaction, error)
	Do(ctx context.Context, callback func(ctx context.Context) error) (err error)
}

type txManager struct {
	db *sqlx.DB
}

func NewManager(db *sqlx.DB) Manager {
	return &txManager{
		db: db,
	}
}

func (t *txManager) BeginTx(ctx context.Context) (context.Context, Transaction, error) {
	tx, err := t.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, nil, err
	}
	return withTx(ctx, &txState{tx: tx}), tx, nil
}

// Do runs callback in a transaction. A callback started inside another Do
// joins the outer transaction.
func (t *txManager) Do(ctx context.Context, callback func(ctx context.Context) error) error {
	if extractState(ctx) != nil {
		return callback(ctx)
	}

	txCtx, tx, err := t.BeginTx(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := callback(txCtx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return err
	}

	st := extractState(txCtx)
	for _, fn := range st.afterCommit {
		fn(ctx)
	}
	return nil
}
