package memory

import (
	"context"
	"fmt"

	"github.com/api-sage/mybank-console/src/internal/domain"
)

// AccountRepository keeps at most one account per type for a single console
// session. It is not safe for concurrent use.
type AccountRepository struct {
	accounts map[domain.AccountType]domain.Account
}

func NewAccountRepository() *AccountRepository {
	return &AccountRepository{accounts: make(map[domain.AccountType]domain.Account)}
}

func (r *AccountRepository) GetOrCreate(ctx context.Context, accountType domain.AccountType) (domain.Account, bool, error) {
	if err := ctx.Err(); err != nil {
		return nil, false, err
	}

	if account, ok := r.accounts[accountType]; ok {
		return account, false, nil
	}

	account, err := domain.NewAccount(accountType)
	if err != nil {
		return nil, false, fmt.Errorf("open account: %w", err)
	}
	r.accounts[accountType] = account

	return account, true, nil
}

func (r *AccountRepository) Get(ctx context.Context, accountType domain.AccountType) (domain.Account, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	account, ok := r.accounts[accountType]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}

	return account, nil
}

func (r *AccountRepository) Close() {
	clear(r.accounts)
}
