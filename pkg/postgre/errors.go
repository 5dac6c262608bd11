package postgre

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// Pool-level errors.
	ErrPoolExhausted   = errors.New("postgre: no connection available within acquire timeout")
	ErrPoolClosed      = errors.New("postgre: pool is closed")
	ErrConnectionSetup = errors.New("postgre: connection setup failed")

	// Business-rule violations reported by the store.
	ErrDuplicateKey     = errors.New("postgre: duplicate key")
	ErrInvalidReference = errors.New("postgre: invalid reference")

	// Infrastructure errors.
	ErrMalformedRow     = errors.New("postgre: malformed row")
	ErrStoreUnavailable = errors.New("postgre: store unavailable")

	// Misuse of a scoped transaction.
	ErrTxStatementUsed = errors.New("postgre: transaction already executed its statement")
	ErrTxDone          = errors.New("postgre: transaction already finished")
)

var known = []error{
	ErrPoolExhausted, ErrPoolClosed, ErrConnectionSetup,
	ErrDuplicateKey, ErrInvalidReference,
	ErrMalformedRow, ErrStoreUnavailable,
	ErrTxStatementUsed, ErrTxDone,
}

// ConstraintError reports a constraint violation without exposing the driver error.
type ConstraintError struct {
	Kind       error
	Constraint string
}

func (e *ConstraintError) Error() string {
	if e.Constraint == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%v: constraint %q", e.Kind, e.Constraint)
}

func (e *ConstraintError) Unwrap() error {
	return e.Kind
}

// Classify maps a driver error onto the package taxonomy. Errors that already
// belong to it and caller context errors pass through unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	for _, k := range known {
		if errors.Is(err, k) {
			return err
		}
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return &ConstraintError{Kind: ErrDuplicateKey, Constraint: pgErr.ConstraintName}
		case pgerrcode.ForeignKeyViolation:
			return &ConstraintError{Kind: ErrInvalidReference, Constraint: pgErr.ConstraintName}
		}
	}
	return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
}
