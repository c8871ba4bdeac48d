package service_interfaces

import (
	"context"

	"github.com/api-sage/mybank-console/src/internal/adapter/console/models"
)

type AccountService interface {
	OpenAccount(ctx context.Context, req models.OpenAccountRequest) (models.OpenAccountResponse, error)
	Deposit(ctx context.Context, req models.DepositRequest) (models.DepositResponse, error)
	Withdraw(ctx context.Context, req models.WithdrawRequest) (models.WithdrawResponse, error)
	CheckBalance(ctx context.Context, req models.BalanceRequest) (models.BalanceResponse, error)
}
