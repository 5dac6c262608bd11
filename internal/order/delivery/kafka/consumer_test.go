package kafka

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"storefront/internal/model"
	"storefront/internal/order"
	"storefront/internal/order/mocks"
	"storefront/pkg/log"
	"storefront/pkg/postgre"
)

// fakeReader serves queued messages, then blocks until ctx is done.
type fakeReader struct {
	mu        sync.Mutex
	queue     []kafka.Message
	committed []int64
}

func (f *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	f.mu.Lock()
	if len(f.queue) > 0 {
		m := f.queue[0]
		f.queue = f.queue[1:]
		f.mu.Unlock()
		return m, nil
	}
	f.mu.Unlock()
	<-ctx.Done()
	return kafka.Message{}, ctx.Err()
}

func (f *fakeReader) CommitMessages(ctx context.Context, msgs ...kafka.Message) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range msgs {
		f.committed = append(f.committed, m.Offset)
	}
	return nil
}

func (f *fakeReader) Committed() []int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]int64(nil), f.committed...)
}

func TestHandle(t *testing.T) {
	valid := []byte(`{"user_id":1,"product_id":100,"quantity":2}`)
	input := order.CreateInput{UserID: 1, ProductID: 100, Quantity: 2}

	tcs := map[string]struct {
		value      []byte
		ucErr      error
		callsUC    bool
		wantCommit bool
	}{
		"created":           {value: valid, callsUC: true, wantCommit: true},
		"not json":          {value: []byte("{"), wantCommit: true},
		"invalid payload":   {value: valid, ucErr: order.ErrInvalidPayload, callsUC: true, wantCommit: true},
		"duplicate":         {value: valid, ucErr: fmt.Errorf("%w: x", order.ErrDuplicateKey), callsUC: true, wantCommit: true},
		"invalid reference": {value: valid, ucErr: order.ErrInvalidReference, callsUC: true, wantCommit: true},
		"store unavailable": {value: valid, ucErr: postgre.ErrStoreUnavailable, callsUC: true, wantCommit: false},
		"pool exhausted":    {value: valid, ucErr: postgre.ErrPoolExhausted, callsUC: true, wantCommit: false},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			uc := mocks.NewMockUseCase(ctrl)
			if tc.callsUC {
				uc.EXPECT().Create(gomock.Any(), input).
					Return(order.CreateOutput{Order: model.Order{ID: 1}}, tc.ucErr)
			}

			c := New(&fakeReader{}, uc, log.NewNop())
			got := c.handle(context.Background(), kafka.Message{Offset: 3, Value: tc.value})
			assert.Equal(t, tc.wantCommit, got)
		})
	}
}

func TestStart(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockUseCase(ctrl)

	r := &fakeReader{queue: []kafka.Message{
		{Offset: 0, Value: []byte(`{"user_id":1,"product_id":100,"quantity":2}`)},
		{Offset: 1, Value: []byte(`garbage`)},
		{Offset: 2, Value: []byte(`{"user_id":2,"product_id":100,"quantity":1}`)},
		{Offset: 3, Value: []byte(`{"user_id":3,"product_id":100,"quantity":1}`)},
	}}
	gomock.InOrder(
		uc.EXPECT().Create(gomock.Any(), order.CreateInput{UserID: 1, ProductID: 100, Quantity: 2}).
			Return(order.CreateOutput{Order: model.Order{ID: 10}}, nil),
		uc.EXPECT().Create(gomock.Any(), order.CreateInput{UserID: 2, ProductID: 100, Quantity: 1}).
			Return(order.CreateOutput{}, errors.Join(postgre.ErrStoreUnavailable, errors.New("down"))),
		uc.EXPECT().Create(gomock.Any(), order.CreateInput{UserID: 2, ProductID: 100, Quantity: 1}).
			Return(order.CreateOutput{}, postgre.ErrPoolExhausted),
		uc.EXPECT().Create(gomock.Any(), order.CreateInput{UserID: 2, ProductID: 100, Quantity: 1}).
			Return(order.CreateOutput{Order: model.Order{ID: 12}}, nil),
		uc.EXPECT().Create(gomock.Any(), order.CreateInput{UserID: 3, ProductID: 100, Quantity: 1}).
			Return(order.CreateOutput{Order: model.Order{ID: 11}}, nil),
	)

	c := New(r, uc, log.NewNop())
	c.backoff = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Start(ctx) }()

	assert.Eventually(t, func() bool { return len(r.Committed()) == 4 }, time.Second, 5*time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	assert.Equal(t, []int64{0, 1, 2, 3}, r.Committed())
}

func TestStart_StopsRetryingOnCancel(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockUseCase(ctrl)

	r := &fakeReader{queue: []kafka.Message{
		{Offset: 5, Value: []byte(`{"user_id":2,"product_id":100,"quantity":1}`)},
		{Offset: 6, Value: []byte(`{"user_id":3,"product_id":100,"quantity":1}`)},
	}}
	attempts := make(chan struct{}, 64)
	uc.EXPECT().Create(gomock.Any(), order.CreateInput{UserID: 2, ProductID: 100, Quantity: 1}).
		DoAndReturn(func(ctx context.Context, in order.CreateInput) (order.CreateOutput, error) {
			select {
			case attempts <- struct{}{}:
			default:
			}
			return order.CreateOutput{}, postgre.ErrStoreUnavailable
		}).MinTimes(2)

	c := New(r, uc, log.NewNop())
	c.backoff = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- c.Start(ctx) }()

	assert.Eventually(t, func() bool { return len(attempts) >= 2 }, time.Second, time.Millisecond)
	cancel()
	require.NoError(t, <-done)

	assert.Empty(t, r.Committed())
}
