package handler

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/SergeyBogomolovv/restaurant-pos/internal/entities"
	mocks "github.com/SergeyBogomolovv/restaurant-pos/internal/handler/mocks"
	"github.com/SergeyBogomolovv/restaurant-pos/internal/service"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeReader struct {
	mu        sync.Mutex
	msgs      []kafka.Message
	committed []kafka.Message
}

func (r *fakeReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.msgs) == 0 {
		return kafka.Message{}, io.EOF
	}
	m := r.msgs[0]
	r.msgs = r.msgs[1:]
	return m, nil
}

func (r *fakeReader) CommitMessages(_ context.Context, msgs ...kafka.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.committed = append(r.committed, msgs...)
	return nil
}

func (r *fakeReader) Close() error { return nil }

type fakeWriter struct {
	msgs []kafka.Message
	err  error
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.msgs = append(w.msgs, msgs...)
	return nil
}

func (w *fakeWriter) Close() error { return nil }

func kitchenMessage(t *testing.T, e KitchenEvent) kafka.Message {
	t.Helper()
	value, err := json.Marshal(e)
	require.NoError(t, err)
	return kafka.Message{Topic: "kitchen.item-status", Key: []byte(e.OrderID.String()), Value: value}
}

func TestKafkaHandler_HandleMessage(t *testing.T) {
	event := KitchenEvent{
		OrderID:    uuid.New(),
		ItemID:     uuid.New(),
		Status:     "READY",
		EmployeeID: uuid.New(),
	}
	wantActor, wantIn := KitchenEventToInput(event)

	testCases := []struct {
		name         string
		value        []byte
		mockBehavior func(svc *mocks.MockItemStatusUpdater)
		wantErr      error
		wantFail     bool
	}{
		{
			name: "applied",
			mockBehavior: func(svc *mocks.MockItemStatusUpdater) {
				svc.EXPECT().
					UpdateItemStatus(mock.Anything, wantActor, wantIn).
					Return(entities.OrderItem{Status: entities.ItemStatusReady}, nil).Once()
			},
		},
		{
			name: "concurrent modification is retried",
			mockBehavior: func(svc *mocks.MockItemStatusUpdater) {
				svc.EXPECT().
					UpdateItemStatus(mock.Anything, wantActor, wantIn).
					Return(entities.OrderItem{}, entities.ErrConcurrentModification).Once()
				svc.EXPECT().
					UpdateItemStatus(mock.Anything, wantActor, wantIn).
					Return(entities.OrderItem{Status: entities.ItemStatusReady}, nil).Once()
			},
		},
		{
			name: "invalid transition is final",
			mockBehavior: func(svc *mocks.MockItemStatusUpdater) {
				svc.EXPECT().
					UpdateItemStatus(mock.Anything, wantActor, wantIn).
					Return(entities.OrderItem{}, entities.ErrItemTransition).Once()
			},
			wantErr: entities.ErrItemTransition,
		},
		{
			name:         "malformed json",
			value:        []byte(`{"order_id":`),
			mockBehavior: func(svc *mocks.MockItemStatusUpdater) {},
			wantFail:     true,
		},
		{
			name:         "cancelled is not a kitchen status",
			value:        []byte(`{"order_id":"` + event.OrderID.String() + `","item_id":"` + event.ItemID.String() + `","status":"CANCELLED","employee_id":"` + event.EmployeeID.String() + `"}`),
			mockBehavior: func(svc *mocks.MockItemStatusUpdater) {},
			wantFail:     true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			svc := mocks.NewMockItemStatusUpdater(t)
			tc.mockBehavior(svc)

			h := newKafkaHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), &fakeReader{}, &fakeWriter{}, svc)

			m := kitchenMessage(t, event)
			if tc.value != nil {
				m.Value = tc.value
			}

			err := h.HandleMessage(context.Background(), m)
			switch {
			case tc.wantErr != nil:
				assert.ErrorIs(t, err, tc.wantErr)
			case tc.wantFail:
				assert.Error(t, err)
			default:
				assert.NoError(t, err)
			}
		})
	}
}

func TestKafkaHandler_Consume(t *testing.T) {
	ok := KitchenEvent{OrderID: uuid.New(), ItemID: uuid.New(), Status: "COOKING", EmployeeID: uuid.New()}
	bad := KitchenEvent{OrderID: uuid.New(), ItemID: uuid.New(), Status: "COMPLETED", EmployeeID: uuid.New()}

	reader := &fakeReader{msgs: []kafka.Message{kitchenMessage(t, ok), kitchenMessage(t, bad)}}
	dlq := &fakeWriter{}

	svc := mocks.NewMockItemStatusUpdater(t)
	svc.EXPECT().
		UpdateItemStatus(mock.Anything, mock.Anything, mock.MatchedBy(func(in service.ItemStatusInput) bool {
			return in.OrderID == ok.OrderID
		})).
		Return(entities.OrderItem{}, nil).Once()
	svc.EXPECT().
		UpdateItemStatus(mock.Anything, mock.Anything, mock.MatchedBy(func(in service.ItemStatusInput) bool {
			return in.OrderID == bad.OrderID
		})).
		Return(entities.OrderItem{}, entities.ErrOrderFinished).Once()

	h := newKafkaHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), reader, dlq, svc)
	h.Consume(context.Background())

	assert.Len(t, reader.committed, 2)
	require.Len(t, dlq.msgs, 1)
	assert.Equal(t, "kitchen.item-status-dlq", dlq.msgs[0].Topic)
	assert.Equal(t, []byte(bad.OrderID.String()), dlq.msgs[0].Key)
	assert.NoError(t, h.Close())
}

func TestKafkaHandler_ConsumeSkipsCommitWhenDLQFails(t *testing.T) {
	failed := KitchenEvent{OrderID: uuid.New(), ItemID: uuid.New(), Status: "COMPLETED", EmployeeID: uuid.New()}
	next := KitchenEvent{OrderID: uuid.New(), ItemID: uuid.New(), Status: "COOKING", EmployeeID: uuid.New()}

	reader := &fakeReader{msgs: []kafka.Message{kitchenMessage(t, failed), kitchenMessage(t, next)}}
	dlq := &fakeWriter{err: errors.New("broker unavailable")}

	svc := mocks.NewMockItemStatusUpdater(t)
	svc.EXPECT().
		UpdateItemStatus(mock.Anything, mock.Anything, mock.MatchedBy(func(in service.ItemStatusInput) bool {
			return in.OrderID == failed.OrderID
		})).
		Return(entities.OrderItem{}, entities.ErrStorage).Once()
	svc.EXPECT().
		UpdateItemStatus(mock.Anything, mock.Anything, mock.MatchedBy(func(in service.ItemStatusInput) bool {
			return in.OrderID == next.OrderID
		})).
		Return(entities.OrderItem{}, nil).Once()

	h := newKafkaHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), reader, dlq, svc)
	h.Consume(context.Background())

	assert.Empty(t, dlq.msgs)
	require.Len(t, reader.committed, 1)
	assert.Equal(t, []byte(next.OrderID.String()), reader.committed[0].Key)
}

func TestKafkaHandler_ConsumeStopsOnCancel(t *testing.T) {
	reader := &blockingReader{}
	h := newKafkaHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), reader, &fakeWriter{}, mocks.NewMockItemStatusUpdater(t))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		h.Consume(ctx)
		close(done)
	}()

	cancel()
	<-done
}

type blockingReader struct{ fakeReader }

func (r *blockingReader) FetchMessage(ctx context.Context) (kafka.Message, error) {
	<-ctx.Done()
	return kafka.Message{}, errors.Join(errors.New("fetch aborted"), ctx.Err())
}
