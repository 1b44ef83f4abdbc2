package dispute

import "context"

//go:generate mockgen -source repo_port.go -destination mock_repo.go -package dispute

type TxRepo interface {
	// GetByProviderDisputeID returns nil, nil when no dispute exists yet.
	GetByProviderDisputeID(ctx context.Context, providerDisputeID string) (*Dispute, error)
	Create(ctx context.Context, d NewDispute) (*Dispute, error)
	UpdateStatus(ctx context.Context, id string, status Status) error
	GetDisputes(ctx context.Context, query *DisputesQuery) ([]Dispute, error)
}

type Repo interface {
	TxRepo
	InTransaction(ctx context.Context, fn func(tx TxRepo) error) error
}

// PaymentResolver maps a processor charge id to the owning payment. The
// payment domain provides the implementation; disputes only need the id.
type PaymentResolver interface {
	PaymentIDByCharge(ctx context.Context, chargeID string) (string, error)
}
