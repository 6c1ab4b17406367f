package store

import "context"

// TxRunner runs fn so that every repository call made with the context it
// receives belongs to one unit of work, when the backend supports it.
type TxRunner interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// NoTx runs fn directly. Used for standalone mongod deployments, where the
// check-then-write race in the order ledger is accepted.
type NoTx struct{}

func (NoTx) RunInTx(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
