package account

import (
	"context"
	"errors"
	"testing"
	"time"

	"sessionpay/internal/controller/apperror"
	"sessionpay/pkg/logger"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func accountService(t *testing.T) (*Service, *MockRepo) {
	t.Helper()

	mockRepo := NewMockRepo(gomock.NewController(t))
	service := NewService(mockRepo, logger.New("error"))

	return service, mockRepo
}

func TestEvent_DeriveStatus(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		event    Event
		expected Status
	}{
		{
			name:     "should be pending before onboarding finishes",
			event:    Event{ChargesEnabled: true, PayoutsEnabled: true},
			expected: StatusPending,
		},
		{
			name:     "should be active with both capabilities on",
			event:    Event{DetailsSubmitted: true, ChargesEnabled: true, PayoutsEnabled: true},
			expected: StatusActive,
		},
		{
			name:     "should be restricted when payouts are off",
			event:    Event{DetailsSubmitted: true, ChargesEnabled: true},
			expected: StatusRestricted,
		},
		{
			name:     "should be restricted when charges are off",
			event:    Event{DetailsSubmitted: true, PayoutsEnabled: true},
			expected: StatusRestricted,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.event.DeriveStatus())
		})
	}
}

func TestService_ApplyUpdated(t *testing.T) {
	t.Parallel()

	service, mockRepo := accountService(t)

	ctx := context.Background()
	older := time.Date(2026, 5, 1, 10, 0, 0, 0, time.UTC)
	newer := older.Add(time.Minute)

	event := Event{
		ProviderAccountID: "acct_1",
		ChargesEnabled:    true,
		PayoutsEnabled:    true,
		DetailsSubmitted:  true,
	}

	storedAt := func(at time.Time) *ConnectAccount {
		return &ConnectAccount{
			ID:                "ACC-1",
			ProviderAccountID: "acct_1",
			Status:            StatusRestricted,
			LastEventAt:       at,
		}
	}

	t.Run("should reject event without id", func(t *testing.T) {
		err := service.ApplyUpdated(ctx, Event{}, newer)

		assert.Equal(t, apperror.KindMalformedPayload, apperror.KindOf(err))
	})

	testCases := []struct {
		name         string
		eventTime    time.Time
		mock         func(*MockTxRepo)
		expectedKind apperror.Kind
	}{
		{
			name:      "should create snapshot for unknown account",
			eventTime: newer,
			mock: func(mockTxRepo *MockTxRepo) {
				mockTxRepo.EXPECT().GetByProviderAccountID(ctx, "acct_1").Return(nil, nil)
				mockTxRepo.EXPECT().Upsert(ctx, Snapshot{
					ProviderAccountID: "acct_1",
					ChargesEnabled:    true,
					PayoutsEnabled:    true,
					DetailsSubmitted:  true,
					Status:            StatusActive,
					LastEventAt:       newer,
				}).Return(nil)
			},
		},
		{
			name:      "should overwrite snapshot when event is newer",
			eventTime: newer,
			mock: func(mockTxRepo *MockTxRepo) {
				mockTxRepo.EXPECT().GetByProviderAccountID(ctx, "acct_1").Return(storedAt(older), nil)
				mockTxRepo.EXPECT().Upsert(ctx, gomock.Any()).Return(nil)
			},
		},
		{
			name:      "should skip stale event delivered after a newer one",
			eventTime: older,
			mock: func(mockTxRepo *MockTxRepo) {
				mockTxRepo.EXPECT().GetByProviderAccountID(ctx, "acct_1").Return(storedAt(newer), nil)
			},
		},
		{
			name:      "should skip redelivery carrying the same event time",
			eventTime: newer,
			mock: func(mockTxRepo *MockTxRepo) {
				mockTxRepo.EXPECT().GetByProviderAccountID(ctx, "acct_1").Return(storedAt(newer), nil)
			},
		},
		{
			name:      "should wrap store failure as retryable",
			eventTime: newer,
			mock: func(mockTxRepo *MockTxRepo) {
				mockTxRepo.EXPECT().GetByProviderAccountID(ctx, "acct_1").Return(nil, errors.New("connection reset"))
			},
			expectedKind: apperror.KindStoreUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			mockTxRepo := NewMockTxRepo(gomock.NewController(t))
			mockRepo.EXPECT().InTransaction(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(repo TxRepo) error) error {
				return fn(mockTxRepo)
			})
			tc.mock(mockTxRepo)

			// when
			err := service.ApplyUpdated(ctx, event, tc.eventTime)

			// then
			if tc.expectedKind == "" {
				assert.NoError(t, err)
			} else {
				assert.Equal(t, tc.expectedKind, apperror.KindOf(err))
			}
		})
	}
}
