package account

import "context"

//go:generate mockgen -source repo_port.go -destination mock_repo.go -package account

type TxRepo interface {
	// GetByProviderAccountID returns nil, nil for an unknown account.
	GetByProviderAccountID(ctx context.Context, providerAccountID string) (*ConnectAccount, error)
	Upsert(ctx context.Context, s Snapshot) error
}

type Repo interface {
	TxRepo
	InTransaction(ctx context.Context, fn func(tx TxRepo) error) error
}
