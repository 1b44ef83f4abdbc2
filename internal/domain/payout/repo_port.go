package payout

import "context"

//go:generate mockgen -source repo_port.go -destination mock_repo.go -package payout

type TxRepo interface {
	// GetByProviderPayoutID returns nil, nil when the payout is unknown.
	GetByProviderPayoutID(ctx context.Context, providerPayoutID string) (*Payout, error)
	CreatePayout(ctx context.Context, p NewPayout) (*Payout, error)
	UpdatePayoutStatus(ctx context.Context, id string, status Status) error
	GetPayouts(ctx context.Context, query *PayoutsQuery) ([]Payout, error)

	// CreateTransferIfAbsent reports created=false when a row with the same
	// provider transfer id already exists.
	CreateTransferIfAbsent(ctx context.Context, t NewTransfer) (created bool, err error)
}

type Repo interface {
	TxRepo
	InTransaction(ctx context.Context, fn func(tx TxRepo) error) error
}
