package dispute

import (
	"context"
	"errors"
	"testing"

	"sessionpay/internal/controller/apperror"
	"sessionpay/pkg/logger"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func disputeService(t *testing.T) (*Service, *MockRepo, *MockPaymentResolver) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockRepo := NewMockRepo(ctrl)
	mockResolver := NewMockPaymentResolver(ctrl)
	service := NewService(mockRepo, mockResolver, logger.New("error"))

	return service, mockRepo, mockResolver
}

func TestStatus_CanBeUpdatedTo(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		from    Status
		to      Status
		allowed bool
	}{
		{"should allow needs_response to under_review", StatusNeedsResponse, StatusUnderReview, true},
		{"should allow needs_response straight to lost", StatusNeedsResponse, StatusLost, true},
		{"should allow under_review to won", StatusUnderReview, StatusWon, true},
		{"should reject under_review back to needs_response", StatusUnderReview, StatusNeedsResponse, false},
		{"should allow closed to be refined into won", StatusClosed, StatusWon, true},
		{"should allow closed to be refined into lost", StatusClosed, StatusLost, true},
		{"should reject closed back to under_review", StatusClosed, StatusUnderReview, false},
		{"should reject any move out of won", StatusWon, StatusLost, false},
		{"should reject any move out of lost", StatusLost, StatusClosed, false},
		{"should reject transition to same status", StatusUnderReview, StatusUnderReview, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.allowed, tc.from.CanBeUpdatedTo(tc.to))
		})
	}
}

func TestService_ApplyCreated(t *testing.T) {
	t.Parallel()

	service, mockRepo, mockResolver := disputeService(t)

	ctx := context.Background()
	event := Event{
		ProviderDisputeID: "dp_1",
		ChargeID:          "ch_1",
		Amount:            4200,
		Currency:          "usd",
		Reason:            "fraudulent",
	}

	existingDispute := &Dispute{
		ID:                "DISP-1",
		PaymentID:         "PAY-1",
		ProviderDisputeID: "dp_1",
		Status:            StatusNeedsResponse,
	}

	t.Run("should reject event missing identifiers", func(t *testing.T) {
		err := service.ApplyCreated(ctx, Event{ProviderDisputeID: "dp_1"})

		assert.Equal(t, apperror.KindMalformedPayload, apperror.KindOf(err))
	})

	t.Run("should propagate retryable not found from payment resolver", func(t *testing.T) {
		mockResolver.EXPECT().PaymentIDByCharge(ctx, "ch_1").
			Return("", apperror.New(apperror.KindNotFound, "payment for charge ch_1 not visible yet"))

		err := service.ApplyCreated(ctx, event)

		assert.Equal(t, apperror.KindNotFound, apperror.KindOf(err))
	})

	testCases := []struct {
		name         string
		mock         func(*MockTxRepo)
		expectedKind apperror.Kind
	}{
		{
			name: "should create dispute on first delivery",
			mock: func(mockTxRepo *MockTxRepo) {
				mockTxRepo.EXPECT().GetByProviderDisputeID(ctx, "dp_1").Return(nil, nil)
				mockTxRepo.EXPECT().Create(ctx, NewDispute{
					PaymentID:         "PAY-1",
					ProviderDisputeID: "dp_1",
					Amount:            4200,
					Currency:          "usd",
					Reason:            "fraudulent",
					Status:            StatusNeedsResponse,
				}).Return(existingDispute, nil)
			},
		},
		{
			name: "should not create a second row on duplicate delivery",
			mock: func(mockTxRepo *MockTxRepo) {
				mockTxRepo.EXPECT().GetByProviderDisputeID(ctx, "dp_1").Return(existingDispute, nil)
			},
		},
		{
			name: "should wrap store failure as retryable",
			mock: func(mockTxRepo *MockTxRepo) {
				mockTxRepo.EXPECT().GetByProviderDisputeID(ctx, "dp_1").Return(nil, errors.New("connection reset"))
			},
			expectedKind: apperror.KindStoreUnavailable,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			// given
			mockResolver.EXPECT().PaymentIDByCharge(ctx, "ch_1").Return("PAY-1", nil)
			mockTxRepo := NewMockTxRepo(gomock.NewController(t))
			mockRepo.EXPECT().InTransaction(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(repo TxRepo) error) error {
				return fn(mockTxRepo)
			})
			tc.mock(mockTxRepo)

			// when
			err := service.ApplyCreated(ctx, event)

			// then
			if tc.expectedKind == "" {
				assert.NoError(t, err)
			} else {
				assert.Equal(t, tc.expectedKind, apperror.KindOf(err))
			}
		})
	}
}

func TestService_ApplyUpdated(t *testing.T) {
	t.Parallel()

	service, mockRepo, _ := disputeService(t)

	ctx := context.Background()

	underReview := func() *Dispute {
		return &Dispute{
			ID:                "DISP-1",
			PaymentID:         "PAY-1",
			ProviderDisputeID: "dp_1",
			Status:            StatusUnderReview,
		}
	}

	t.Run("should reject unknown status value", func(t *testing.T) {
		err := service.ApplyUpdated(ctx, Event{ProviderDisputeID: "dp_1", Status: "warning_needs_response"})

		assert.Equal(t, apperror.KindMalformedPayload, apperror.KindOf(err))
	})

	testCases := []struct {
		name         string
		event        Event
		mock         func(*MockTxRepo)
		expectedKind apperror.Kind
	}{
		{
			name:  "should move dispute status forward",
			event: Event{ProviderDisputeID: "dp_1", Status: "won"},
			mock: func(mockTxRepo *MockTxRepo) {
				mockTxRepo.EXPECT().GetByProviderDisputeID(ctx, "dp_1").Return(underReview(), nil)
				mockTxRepo.EXPECT().UpdateStatus(ctx, "DISP-1", StatusWon).Return(nil)
			},
		},
		{
			name:  "should treat same status as duplicate delivery",
			event: Event{ProviderDisputeID: "dp_1", Status: "under_review"},
			mock: func(mockTxRepo *MockTxRepo) {
				mockTxRepo.EXPECT().GetByProviderDisputeID(ctx, "dp_1").Return(underReview(), nil)
			},
		},
		{
			name:  "should reject regression out of a final status",
			event: Event{ProviderDisputeID: "dp_1", Status: "under_review"},
			mock: func(mockTxRepo *MockTxRepo) {
				won := underReview()
				won.Status = StatusWon
				mockTxRepo.EXPECT().GetByProviderDisputeID(ctx, "dp_1").Return(won, nil)
			},
			expectedKind: apperror.KindStateConflict,
		},
		{
			name:  "should return retryable not found while created event is in flight",
			event: Event{ProviderDisputeID: "dp_1", Status: "under_review"},
			mock: func(mockTxRepo *MockTxRepo) {
				mockTxRepo.EXPECT().GetByProviderDisputeID(ctx, "dp_1").Return(nil, nil)
			},
			expectedKind: apperror.KindNotFound,
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
			err := service.ApplyUpdated(ctx, tc.event)

			// then
			if tc.expectedKind == "" {
				assert.NoError(t, err)
			} else {
				assert.Equal(t, tc.expectedKind, apperror.KindOf(err))
			}
		})
	}
}

func TestService_ApplyClosed(t *testing.T) {
	t.Parallel()

	service, mockRepo, _ := disputeService(t)

	ctx := context.Background()

	t.Run("should refine a closed dispute into lost", func(t *testing.T) {
		// given
		mockTxRepo := NewMockTxRepo(gomock.NewController(t))
		mockRepo.EXPECT().InTransaction(ctx, gomock.Any()).DoAndReturn(func(ctx context.Context, fn func(repo TxRepo) error) error {
			return fn(mockTxRepo)
		})
		mockTxRepo.EXPECT().GetByProviderDisputeID(ctx, "dp_1").Return(&Dispute{
			ID:                "DISP-1",
			ProviderDisputeID: "dp_1",
			Status:            StatusClosed,
		}, nil)
		mockTxRepo.EXPECT().UpdateStatus(ctx, "DISP-1", StatusLost).Return(nil)

		// when
		err := service.ApplyClosed(ctx, Event{ProviderDisputeID: "dp_1", Status: "lost"})

		// then
		assert.NoError(t, err)
	})
}
