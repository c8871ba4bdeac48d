package services_test

import (
	"context"
	"errors"
	"testing"

	"github.com/api-sage/mybank-console/src/internal/adapter/console/models"
	"github.com/api-sage/mybank-console/src/internal/adapter/repository/memory"
	"github.com/api-sage/mybank-console/src/internal/domain"
	"github.com/api-sage/mybank-console/src/internal/usecase/services"
	"github.com/shopspring/decimal"
)

func newOpenedService(t *testing.T, accountType domain.AccountType) *services.AccountService {
	t.Helper()
	svc := services.NewAccountService(memory.NewAccountRepository())
	if _, err := svc.OpenAccount(context.Background(), models.OpenAccountRequest{AccountType: accountType}); err != nil {
		t.Fatalf("open %s: %v", accountType, err)
	}
	return svc
}

func TestAccountServiceOpenAccountReusesInstance(t *testing.T) {
	svc := services.NewAccountService(memory.NewAccountRepository())
	ctx := context.Background()

	resp, err := svc.OpenAccount(ctx, models.OpenAccountRequest{AccountType: domain.AccountTypeSavings})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !resp.Created || !resp.Balance.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("unexpected first open response: %+v", resp)
	}

	resp, err = svc.OpenAccount(ctx, models.OpenAccountRequest{AccountType: domain.AccountTypeSavings})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if resp.Created {
		t.Fatal("expected reopen to reuse the existing account")
	}
}

func TestAccountServiceOpenAccountValidationError(t *testing.T) {
	svc := services.NewAccountService(nil)

	_, err := svc.OpenAccount(context.Background(), models.OpenAccountRequest{})
	if err == nil {
		t.Fatal("expected validation error for missing account type")
	}
}

func TestAccountServiceDepositValidationError(t *testing.T) {
	svc := services.NewAccountService(nil)

	_, err := svc.Deposit(context.Background(), models.DepositRequest{
		AccountType: domain.AccountTypeCurrent,
		Amount:      decimal.Zero,
	})
	if !errors.Is(err, domain.ErrNonPositiveAmount) {
		t.Fatalf("expected ErrNonPositiveAmount, got %v", err)
	}
}

func TestAccountServiceDepositBeforeOpen(t *testing.T) {
	svc := services.NewAccountService(memory.NewAccountRepository())

	_, err := svc.Deposit(context.Background(), models.DepositRequest{
		AccountType: domain.AccountTypeCurrent,
		Amount:      decimal.NewFromInt(10),
	})
	if !errors.Is(err, domain.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound, got %v", err)
	}
}

func TestAccountServiceSavingsScenario(t *testing.T) {
	svc := newOpenedService(t, domain.AccountTypeSavings)
	ctx := context.Background()

	dep, err := svc.Deposit(ctx, models.DepositRequest{AccountType: domain.AccountTypeSavings, Amount: decimal.NewFromInt(500)})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !dep.Balance.Equal(decimal.NewFromInt(1500)) {
		t.Fatalf("expected balance 1500, got %s", dep.Balance)
	}

	wd, err := svc.Withdraw(ctx, models.WithdrawRequest{AccountType: domain.AccountTypeSavings, Amount: decimal.NewFromInt(600)})
	if !errors.Is(err, domain.ErrMinimumBalance) {
		t.Fatalf("expected ErrMinimumBalance, got %v", err)
	}
	if !wd.Balance.Equal(decimal.NewFromInt(1500)) {
		t.Fatalf("expected balance unchanged at 1500, got %s", wd.Balance)
	}
	if !wd.MinimumBalance.Equal(decimal.NewFromInt(1000)) {
		t.Fatalf("expected minimum balance 1000, got %s", wd.MinimumBalance)
	}

	wd, err = svc.Withdraw(ctx, models.WithdrawRequest{AccountType: domain.AccountTypeSavings, Amount: decimal.NewFromInt(500)})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !wd.Balance.Equal(decimal.NewFromInt(1000)) || !wd.WithdrawnAmount.Equal(decimal.NewFromInt(500)) {
		t.Fatalf("unexpected withdraw response: %+v", wd)
	}

	bal, err := svc.CheckBalance(ctx, models.BalanceRequest{AccountType: domain.AccountTypeSavings})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if bal.WithdrawalsAllowed {
		t.Fatal("expected withdrawals not allowed at the savings floor")
	}
}

func TestAccountServiceCurrentScenario(t *testing.T) {
	svc := newOpenedService(t, domain.AccountTypeCurrent)
	ctx := context.Background()

	if _, err := svc.Withdraw(ctx, models.WithdrawRequest{AccountType: domain.AccountTypeCurrent, Amount: decimal.NewFromInt(1)}); !errors.Is(err, domain.ErrWithdrawalsNotAllowed) {
		t.Fatalf("expected ErrWithdrawalsNotAllowed, got %v", err)
	}

	if _, err := svc.Deposit(ctx, models.DepositRequest{AccountType: domain.AccountTypeCurrent, Amount: decimal.NewFromInt(200)}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	wd, err := svc.Withdraw(ctx, models.WithdrawRequest{AccountType: domain.AccountTypeCurrent, Amount: decimal.NewFromInt(250)})
	if !errors.Is(err, domain.ErrAmountExceedsBalance) {
		t.Fatalf("expected ErrAmountExceedsBalance, got %v", err)
	}
	if !wd.Balance.Equal(decimal.NewFromInt(200)) {
		t.Fatalf("expected balance unchanged at 200, got %s", wd.Balance)
	}

	wd, err = svc.Withdraw(ctx, models.WithdrawRequest{AccountType: domain.AccountTypeCurrent, Amount: decimal.NewFromInt(200)})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !wd.Balance.IsZero() {
		t.Fatalf("expected balance 0, got %s", wd.Balance)
	}
}

func TestAccountServiceCheckBalanceDoesNotMutate(t *testing.T) {
	svc := newOpenedService(t, domain.AccountTypeCurrent)
	ctx := context.Background()

	if _, err := svc.Deposit(ctx, models.DepositRequest{AccountType: domain.AccountTypeCurrent, Amount: decimal.NewFromInt(75)}); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	for i := 0; i < 3; i++ {
		bal, err := svc.CheckBalance(ctx, models.BalanceRequest{AccountType: domain.AccountTypeCurrent})
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if !bal.Balance.Equal(decimal.NewFromInt(75)) || !bal.WithdrawalsAllowed {
			t.Fatalf("unexpected balance response: %+v", bal)
		}
	}
}
