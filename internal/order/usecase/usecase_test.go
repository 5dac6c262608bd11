package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"storefront/internal/model"
	"storefront/internal/order"
	"storefront/internal/order/mocks"
	repo "storefront/internal/order/repository"
	"storefront/pkg/cache"
	"storefront/pkg/log"
	"storefront/pkg/postgre"
)

type failingCache struct{}

func (failingCache) Get(ctx context.Context, key string) (model.Order, bool, error) {
	return model.Order{}, false, cache.ErrUnavailable
}

func (failingCache) Set(ctx context.Context, key string, v model.Order) error {
	return cache.ErrUnavailable
}

func fakeOrder() model.Order {
	return model.Order{
		ID:        int64(gofakeit.IntRange(1, 1_000_000)),
		UserID:    int64(gofakeit.IntRange(1, 1_000_000)),
		ProductID: int64(gofakeit.IntRange(1, 1_000_000)),
		Quantity:  int32(gofakeit.IntRange(1, 50)),
		Status:    string(model.OrderStatusCreated),
		CreatedAt: time.Now().UTC(),
	}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	want := fakeOrder()
	input := order.CreateInput{UserID: want.UserID, ProductID: want.ProductID, Quantity: want.Quantity}

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := mocks.NewMockRepository(ctrl)
		r.EXPECT().CreateOrder(gomock.Any(), repo.CreateOrderOptions{
			UserID: want.UserID, ProductID: want.ProductID, Quantity: want.Quantity,
		}).Return(want, nil)

		c := cache.NewLRU[model.Order](8, time.Minute)
		uc := New(r, c, log.NewNop())

		out, err := uc.Create(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, want, out.Order)

		cached, ok, _ := c.Get(ctx, cacheKey(want.ID))
		assert.True(t, ok)
		assert.Equal(t, want, cached)
	})

	t.Run("invalid input skips store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := New(mocks.NewMockRepository(ctrl), nil, log.NewNop())

		_, err := uc.Create(ctx, order.CreateInput{UserID: 1, ProductID: 1, Quantity: 0})
		require.ErrorIs(t, err, order.ErrInvalidPayload)
	})

	t.Run("store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := mocks.NewMockRepository(ctrl)
		r.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(model.Order{}, postgre.ErrPoolExhausted)

		uc := New(r, nil, log.NewNop())
		_, err := uc.Create(ctx, input)
		require.ErrorIs(t, err, postgre.ErrPoolExhausted)
	})

	t.Run("cache failure is ignored", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := mocks.NewMockRepository(ctrl)
		r.EXPECT().CreateOrder(gomock.Any(), gomock.Any()).Return(want, nil)

		uc := New(r, failingCache{}, log.NewNop())
		out, err := uc.Create(ctx, input)
		require.NoError(t, err)
		assert.Equal(t, want, out.Order)
	})
}

func TestDetail(t *testing.T) {
	ctx := context.Background()
	want := fakeOrder()

	t.Run("found then cached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := mocks.NewMockRepository(ctrl)
		r.EXPECT().GetOneOrder(gomock.Any(), repo.GetOneOrderOptions{ID: want.ID}).Return(want, true, nil).Times(1)

		uc := New(r, cache.NewLRU[model.Order](8, time.Minute), log.NewNop())

		for range 2 {
			out, err := uc.Detail(ctx, want.ID)
			require.NoError(t, err)
			assert.Equal(t, want, out.Order)
		}
	})

	t.Run("absent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := mocks.NewMockRepository(ctrl)
		r.EXPECT().GetOneOrder(gomock.Any(), repo.GetOneOrderOptions{ID: 99999}).Return(model.Order{}, false, nil)

		uc := New(r, nil, log.NewNop())
		_, err := uc.Detail(ctx, 99999)
		require.ErrorIs(t, err, order.ErrNotFound)
	})

	t.Run("store error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := mocks.NewMockRepository(ctrl)
		storeErr := errors.Join(postgre.ErrStoreUnavailable, errors.New("conn reset"))
		r.EXPECT().GetOneOrder(gomock.Any(), gomock.Any()).Return(model.Order{}, false, storeErr)

		uc := New(r, nil, log.NewNop())
		_, err := uc.Detail(ctx, 1)
		require.ErrorIs(t, err, postgre.ErrStoreUnavailable)
	})

	t.Run("cache failure falls back to store", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		r := mocks.NewMockRepository(ctrl)
		r.EXPECT().GetOneOrder(gomock.Any(), gomock.Any()).Return(want, true, nil).Times(2)

		uc := New(r, failingCache{}, log.NewNop())
		for range 2 {
			_, err := uc.Detail(ctx, want.ID)
			require.NoError(t, err)
		}
	})
}
