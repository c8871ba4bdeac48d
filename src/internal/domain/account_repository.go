package domain

import "context"

type AccountRepository interface {
	// GetOrCreate returns the session's account of the given type, opening it on
	// first use. created is true only for the call that opened it.
	GetOrCreate(ctx context.Context, accountType AccountType) (account Account, created bool, err error)
	Get(ctx context.Context, accountType AccountType) (Account, error)
	Close()
}
