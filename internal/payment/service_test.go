package payment_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/entities"
	"github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/payment"
	mocks "github.com/LGU-SE-Internal/coherence-helidon-sockshop-sample/internal/payment/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func saveAsIs(_ context.Context, a entities.Authorization) (entities.Authorization, error) {
	return a, nil
}

func TestService_Authorize(t *testing.T) {
	type MockBehavior func(repo *mocks.MockRepo)

	stored := entities.Authorization{
		OrderID:        "o-1",
		IdempotencyKey: "o-1/1",
		Payment:        entities.Payment{Authorised: true, Message: "Payment authorised"},
	}
	dbError := errors.New("db error")

	testCases := []struct {
		name         string
		req          entities.PaymentRequest
		mockBehavior MockBehavior
		want         entities.Payment
		wantErr      error
	}{
		{
			name: "authorised",
			req:  entities.PaymentRequest{OrderID: "o-1", Amount: 20, IdempotencyKey: "o-1/1"},
			mockBehavior: func(repo *mocks.MockRepo) {
				repo.EXPECT().GetAuthorization(mock.Anything, "o-1/1").
					Return(entities.Authorization{}, entities.ErrAuthorizationNotFound).Once()
				repo.EXPECT().SaveAuthorization(mock.Anything, mock.MatchedBy(func(a entities.Authorization) bool {
					return a.IdempotencyKey == "o-1/1" && a.OrderID == "o-1" && !a.Time.IsZero()
				})).RunAndReturn(saveAsIs).Once()
			},
			want: entities.Payment{Authorised: true, Message: "Payment authorised"},
		},
		{
			name: "declined over limit",
			req:  entities.PaymentRequest{OrderID: "o-1", Amount: 500, IdempotencyKey: "o-1/1"},
			mockBehavior: func(repo *mocks.MockRepo) {
				repo.EXPECT().GetAuthorization(mock.Anything, "o-1/1").
					Return(entities.Authorization{}, entities.ErrAuthorizationNotFound).Once()
				repo.EXPECT().SaveAuthorization(mock.Anything, mock.Anything).RunAndReturn(saveAsIs).Once()
			},
			want: entities.Payment{Message: "Payment declined: amount exceeds 105.00"},
		},
		{
			name: "repeated key returns stored decision",
			req:  entities.PaymentRequest{OrderID: "o-1", Amount: 500, IdempotencyKey: "o-1/1"},
			mockBehavior: func(repo *mocks.MockRepo) {
				repo.EXPECT().GetAuthorization(mock.Anything, "o-1/1").Return(stored, nil).Once()
			},
			want: entities.Payment{Authorised: true, Message: "Payment authorised"},
		},
		{
			name: "request without key",
			req:  entities.PaymentRequest{OrderID: "o-1", Amount: 20},
			mockBehavior: func(repo *mocks.MockRepo) {
				repo.EXPECT().SaveAuthorization(mock.Anything, mock.MatchedBy(func(a entities.Authorization) bool {
					return a.IdempotencyKey != ""
				})).RunAndReturn(saveAsIs).Once()
			},
			want: entities.Payment{Authorised: true, Message: "Payment authorised"},
		},
		{
			name: "lookup fails",
			req:  entities.PaymentRequest{OrderID: "o-1", Amount: 20, IdempotencyKey: "o-1/1"},
			mockBehavior: func(repo *mocks.MockRepo) {
				repo.EXPECT().GetAuthorization(mock.Anything, "o-1/1").
					Return(entities.Authorization{}, dbError).Once()
			},
			wantErr: dbError,
		},
		{
			name: "save fails",
			req:  entities.PaymentRequest{OrderID: "o-1", Amount: 20, IdempotencyKey: "o-1/1"},
			mockBehavior: func(repo *mocks.MockRepo) {
				repo.EXPECT().GetAuthorization(mock.Anything, "o-1/1").
					Return(entities.Authorization{}, entities.ErrAuthorizationNotFound).Once()
				repo.EXPECT().SaveAuthorization(mock.Anything, mock.Anything).
					Return(entities.Authorization{}, dbError).Once()
			},
			wantErr: dbError,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := mocks.NewMockRepo(t)
			tc.mockBehavior(repo)

			svc := payment.NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), payment.NewAuthorizer(105), repo)

			got, err := svc.Authorize(context.Background(), tc.req)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got.Payment)
		})
	}
}

func TestService_Authorizations(t *testing.T) {
	repo := mocks.NewMockRepo(t)
	repo.EXPECT().FindByOrder(mock.Anything, "o-1").
		Return([]entities.Authorization{{OrderID: "o-1"}}, nil).Once()

	svc := payment.NewService(slog.New(slog.NewTextHandler(io.Discard, nil)), payment.NewAuthorizer(105), repo)

	got, err := svc.Authorizations(context.Background(), "o-1")
	require.NoError(t, err)
	assert.Len(t, got, 1)
}
