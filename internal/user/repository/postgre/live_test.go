package postgre

import (
	"context"
	"sync"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"storefront/config"
	"storefront/internal/user"
	repo "storefront/internal/user/repository"
	"storefront/pkg/log"
	"storefront/pkg/postgre/postgretest"
)

func TestLive_CreateAndGet(t *testing.T) {
	p := postgretest.Live(t, config.ServiceUser, "users", 4)
	r := New(p, log.NewNop())
	ctx := context.Background()

	opt := repo.CreateUserOptions{Email: gofakeit.Email(), Name: gofakeit.Name()}
	created, err := r.CreateUser(ctx, opt)
	require.NoError(t, err)
	assert.Positive(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got, found, err := r.GetOneUser(ctx, repo.GetOneUserOptions{ID: created.ID})
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, created.Email, got.Email)
	assert.Equal(t, created.Name, got.Name)

	_, found, err = r.GetOneUser(ctx, repo.GetOneUserOptions{Email: opt.Email})
	require.NoError(t, err)
	assert.True(t, found)

	_, found, err = r.GetOneUser(ctx, repo.GetOneUserOptions{ID: created.ID + 1000})
	require.NoError(t, err)
	assert.False(t, found)
}

func TestLive_ConcurrentDuplicateEmail(t *testing.T) {
	const workers = 8
	p := postgretest.Live(t, config.ServiceUser, "users", workers)
	r := New(p, log.NewNop())
	email := gofakeit.Email()

	var wg sync.WaitGroup
	errs := make([]error, workers)
	for i := range workers {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = r.CreateUser(context.Background(), repo.CreateUserOptions{Email: email, Name: gofakeit.Name()})
		}(i)
	}
	wg.Wait()

	var ok int
	for _, err := range errs {
		if err == nil {
			ok++
			continue
		}
		assert.ErrorIs(t, err, user.ErrDuplicateKey)
	}
	assert.Equal(t, 1, ok)
	assert.Equal(t, int32(0), p.Stat().InUse)
}
