package feed

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/config"
	mocks "github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/feed/mocks"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/repo"
	txMocks "github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/pkg/trm/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestRelay_Flush(t *testing.T) {
	type MockBehavior func(outbox *mocks.MockOutboxRepo)

	pending := []repo.Change{
		{ID: 7, OrderID: "o-1", Version: 1, CorrelationToken: "tok-1", Payload: []byte(`{"a":1}`)},
		{ID: 8, OrderID: "o-1", Version: 2, CorrelationToken: "tok-1", Payload: []byte(`{"a":2}`)},
	}
	dbError := errors.New("db error")

	testCases := []struct {
		name         string
		writeErr     error
		mockBehavior MockBehavior
		want         int
		wantMsgs     int
		wantErr      error
	}{
		{
			name: "publishes and marks",
			mockBehavior: func(outbox *mocks.MockOutboxRepo) {
				outbox.EXPECT().PendingChanges(mock.Anything, 10).Return(pending, nil).Once()
				outbox.EXPECT().MarkPublished(mock.Anything, []int64{7, 8}).Return(nil).Once()
			},
			want:     2,
			wantMsgs: 2,
		},
		{
			name: "nothing pending",
			mockBehavior: func(outbox *mocks.MockOutboxRepo) {
				outbox.EXPECT().PendingChanges(mock.Anything, 10).Return(nil, nil).Once()
			},
		},
		{
			name:     "write fails",
			writeErr: errors.New("broker down"),
			mockBehavior: func(outbox *mocks.MockOutboxRepo) {
				outbox.EXPECT().PendingChanges(mock.Anything, 10).Return(pending, nil).Once()
			},
			wantErr: errors.New("broker down"),
		},
		{
			name: "select fails",
			mockBehavior: func(outbox *mocks.MockOutboxRepo) {
				outbox.EXPECT().PendingChanges(mock.Anything, 10).Return(nil, dbError).Once()
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			outbox := mocks.NewMockOutboxRepo(t)
			tx := txMocks.NewMockManager(t)
			writer := &fakeWriter{err: tc.writeErr}
			logger := slog.New(slog.NewTextHandler(io.Discard, nil))

			tx.EXPECT().
				Do(mock.Anything, mock.Anything).
				RunAndReturn(
					func(ctx context.Context, cb func(ctx context.Context) error) error {
						return cb(ctx)
					})

			tc.mockBehavior(outbox)

			r := NewRelay(logger, tx, outbox, writer, config.Outbox{PollInterval: time.Second, BatchSize: 10})

			n, err := r.Flush(context.Background())
			if tc.wantErr != nil {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.wantErr.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, n)
			assert.Len(t, writer.msgs, tc.wantMsgs)
		})
	}
}

func TestChangeMessageFor(t *testing.T) {
	m := changeMessageFor(repo.Change{ID: 1, OrderID: "o-1", CorrelationToken: "tok", Payload: []byte(`{}`)})

	assert.Equal(t, []byte("o-1"), m.Key)
	assert.Equal(t, []byte(`{}`), m.Value)
	require.Len(t, m.Headers, 1)
	assert.Equal(t, "traceparent", m.Headers[0].Key)
	assert.Equal(t, []byte("tok"), m.Headers[0].Value)
}
