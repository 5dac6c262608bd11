package postgre

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"storefront/pkg/log"
)

type txState int

const (
	txActive txState = iota
	txCommitted
	txRolledBack
)

// Tx is a scoped transaction over one borrowed session. It runs a single
// statement and must end with Release.
type Tx struct {
	h        *Handle
	tx       pgx.Tx
	l        log.Logger
	state    txState
	executed bool
	broken   bool
}

// Begin borrows a session and opens a transaction on it.
func (p *Pool) Begin(ctx context.Context) (*Tx, error) {
	h, err := p.Acquire(ctx)
	if err != nil {
		return nil, err
	}

	tx, err := h.Conn().Begin(ctx)
	if err != nil {
		h.Release()
		return nil, Classify(err)
	}
	return &Tx{h: h, tx: tx, l: p.l}, nil
}

// Query executes the transaction's statement. Arguments are always bound
// positionally ($1, $2, ...).
func (t *Tx) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	if t.state != txActive {
		return nil, ErrTxDone
	}
	if t.executed {
		return nil, ErrTxStatementUsed
	}
	t.executed = true

	rows, err := t.tx.Query(ctx, sql, args...)
	if err != nil {
		return nil, Classify(err)
	}
	return rows, nil
}

// Commit persists the transaction. A failed commit leaves it rolled back.
func (t *Tx) Commit(ctx context.Context) error {
	if t.state != txActive {
		return ErrTxDone
	}
	if err := t.tx.Commit(ctx); err != nil {
		t.state = txRolledBack
		return Classify(err)
	}
	t.state = txCommitted
	return nil
}

// Rollback aborts the transaction. It is a no-op once the transaction has ended.
func (t *Tx) Rollback(ctx context.Context) error {
	if t.state != txActive {
		return nil
	}
	t.state = txRolledBack
	if err := t.tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		t.broken = true
		return Classify(err)
	}
	return nil
}

// Release rolls back an unfinished transaction and hands the session back.
// The rollback ignores caller cancellation. A session whose rollback failed
// is destroyed.
func (t *Tx) Release() {
	if t.state == txActive {
		ctx, cancel := context.WithTimeout(context.Background(), rollbackTimeout)
		defer cancel()
		if err := t.Rollback(ctx); err != nil {
			t.l.Warnf(ctx, "postgre.Tx.Release: rollback: %v", err)
		}
	}
	if t.broken {
		t.h.Destroy()
		return
	}
	t.h.Release()
}

// WithTx runs fn in a scoped transaction: commit when fn succeeds, rollback
// when it fails or panics, and release on every path. The returned error is
// classified.
func (p *Pool) WithTx(ctx context.Context, fn func(ctx context.Context, tx *Tx) error) error {
	tx, err := p.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Release()

	if err := fn(ctx, tx); err != nil {
		rbCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), rollbackTimeout)
		defer cancel()
		if rbErr := tx.Rollback(rbCtx); rbErr != nil {
			p.l.Warnf(ctx, "postgre.WithTx: rollback: %v", rbErr)
		}
		return Classify(err)
	}
	return tx.Commit(ctx)
}
