package postgre

import (
	"fmt"

	"github.com/jackc/pgx/v5"
)

// CollectOne maps the single row in rows onto T by column name (db tags) and
// closes rows. No row yields found == false with a nil error. A row whose
// columns don't match T, or a second row, yields ErrMalformedRow. Driver
// errors carried by rows are returned unwrapped.
func CollectOne[T any](rows pgx.Rows) (rec T, found bool, err error) {
	defer rows.Close()

	var zero T
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return zero, false, err
		}
		return zero, false, nil
	}

	rec, err = pgx.RowToStructByName[T](rows)
	if err != nil {
		return zero, false, fmt.Errorf("%w: %w", ErrMalformedRow, err)
	}

	if rows.Next() {
		return zero, false, fmt.Errorf("%w: more than one row returned", ErrMalformedRow)
	}
	if err := rows.Err(); err != nil {
		return zero, false, err
	}
	return rec, true, nil
}
