package postgre

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/internal/user"
	repo "storefront/internal/user/repository"
	"storefront/pkg/log"
	pkgPostgre "storefront/pkg/postgre"
	"storefront/pkg/postgre/postgretest"
)

var userCols = []string{"id", "email", "name", "created_at"}

func newTestRepo(t *testing.T, tx *postgretest.Tx) (*implRepository, *pkgPostgre.Pool) {
	t.Helper()
	fc := &postgretest.Connector{
		BeginFunc: func(ctx context.Context) (pgx.Tx, error) { return tx, nil },
	}
	p, err := pkgPostgre.New(context.Background(), fc.Connect, pkgPostgre.Config{MinConns: 1, MaxConns: 2}, nil)
	require.NoError(t, err)
	t.Cleanup(p.Shutdown)
	return New(p, log.NewNop()).(*implRepository), p
}

func TestCreateUser(t *testing.T) {
	opt := repo.CreateUserOptions{Email: gofakeit.Email(), Name: gofakeit.Name()}
	now := time.Now().UTC()

	tx := &postgretest.Tx{
		QueryFunc: func(ctx context.Context, sql string, args []any) (pgx.Rows, error) {
			return postgretest.NewRows(userCols, []any{int64(3), args[0], args[1], now}), nil
		},
	}
	r, p := newTestRepo(t, tx)

	u, err := r.CreateUser(context.Background(), opt)
	require.NoError(t, err)
	assert.Equal(t, int64(3), u.ID)
	assert.Equal(t, opt.Email, u.Email)
	assert.Equal(t, opt.Name, u.Name)
	assert.Equal(t, now, u.CreatedAt)

	qs := tx.Queries()
	require.Len(t, qs, 1)
	assert.Contains(t, qs[0].SQL, "INSERT INTO users (email, name)")
	assert.Equal(t, []any{opt.Email, opt.Name}, qs[0].Args)
	assert.Equal(t, 1, tx.Commits())
	assert.Equal(t, int32(0), p.Stat().InUse)
}

func TestCreateUser_DuplicateEmail(t *testing.T) {
	tx := &postgretest.Tx{
		QueryFunc: func(ctx context.Context, sql string, args []any) (pgx.Rows, error) {
			return postgretest.ErrRows(postgretest.UniqueViolation("users_email_key")), nil
		},
	}
	r, _ := newTestRepo(t, tx)

	_, err := r.CreateUser(context.Background(), repo.CreateUserOptions{Email: "a@b.co", Name: "A"})
	require.ErrorIs(t, err, user.ErrDuplicateKey)
	require.ErrorIs(t, err, pkgPostgre.ErrDuplicateKey)
	assert.Contains(t, err.Error(), "a@b.co")
	assert.Contains(t, err.Error(), "users_email_key")
	assert.Equal(t, 1, tx.Rollbacks())
}

func TestCreateUser_NoRow(t *testing.T) {
	tx := &postgretest.Tx{
		QueryFunc: func(ctx context.Context, sql string, args []any) (pgx.Rows, error) {
			return postgretest.NewRows(userCols), nil
		},
	}
	r, _ := newTestRepo(t, tx)

	_, err := r.CreateUser(context.Background(), repo.CreateUserOptions{Email: "a@b.co", Name: "A"})
	require.ErrorIs(t, err, pkgPostgre.ErrMalformedRow)
	assert.Equal(t, 0, tx.Commits())
}

func TestGetOneUser(t *testing.T) {
	now := time.Now().UTC()

	tcs := map[string]struct {
		opt      repo.GetOneUserOptions
		wantSQL  string
		wantArgs []any
	}{
		"by id":    {opt: repo.GetOneUserOptions{ID: 9}, wantSQL: "WHERE id = $1", wantArgs: []any{int64(9)}},
		"by email": {opt: repo.GetOneUserOptions{Email: "x@y.io"}, wantSQL: "WHERE email = $1", wantArgs: []any{"x@y.io"}},
		"both":     {opt: repo.GetOneUserOptions{ID: 9, Email: "x@y.io"}, wantSQL: "WHERE id = $1 AND email = $2", wantArgs: []any{int64(9), "x@y.io"}},
	}
	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			tx := &postgretest.Tx{
				QueryFunc: func(ctx context.Context, sql string, args []any) (pgx.Rows, error) {
					return postgretest.NewRows(userCols, []any{int64(9), "x@y.io", "X", now}), nil
				},
			}
			r, _ := newTestRepo(t, tx)

			u, found, err := r.GetOneUser(context.Background(), tc.opt)
			require.NoError(t, err)
			require.True(t, found)
			assert.Equal(t, int64(9), u.ID)

			qs := tx.Queries()
			require.Len(t, qs, 1)
			assert.Contains(t, qs[0].SQL, tc.wantSQL)
			assert.Equal(t, tc.wantArgs, qs[0].Args)
		})
	}

	t.Run("absent", func(t *testing.T) {
		tx := &postgretest.Tx{
			QueryFunc: func(ctx context.Context, sql string, args []any) (pgx.Rows, error) {
				return postgretest.NewRows(userCols), nil
			},
		}
		r, _ := newTestRepo(t, tx)

		_, found, err := r.GetOneUser(context.Background(), repo.GetOneUserOptions{Email: "nobody@example.com"})
		require.NoError(t, err)
		assert.False(t, found)
	})

	t.Run("no filter", func(t *testing.T) {
		r, _ := newTestRepo(t, &postgretest.Tx{})
		_, _, err := r.GetOneUser(context.Background(), repo.GetOneUserOptions{})
		require.ErrorIs(t, err, repo.ErrNoFilter)
	})

	t.Run("two rows", func(t *testing.T) {
		tx := &postgretest.Tx{
			QueryFunc: func(ctx context.Context, sql string, args []any) (pgx.Rows, error) {
				return postgretest.NewRows(userCols,
					[]any{int64(1), "x@y.io", "X", now},
					[]any{int64(2), "x@y.io", "Y", now},
				), nil
			},
		}
		r, _ := newTestRepo(t, tx)

		_, _, err := r.GetOneUser(context.Background(), repo.GetOneUserOptions{Email: "x@y.io"})
		require.ErrorIs(t, err, pkgPostgre.ErrMalformedRow)
		assert.Equal(t, 1, tx.Rollbacks())
	})
}
