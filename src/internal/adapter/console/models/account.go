package models

import (
	"errors"
	"strings"

	"github.com/api-sage/mybank-console/src/internal/domain"
	"github.com/shopspring/decimal"
)

type OpenAccountRequest struct {
	AccountType domain.AccountType `json:"accountType"`
}

func (r OpenAccountRequest) Validate() error {
	return validateAccountType(r.AccountType)
}

type OpenAccountResponse struct {
	AccountType domain.AccountType `json:"accountType"`
	Balance     decimal.Decimal    `json:"balance"`
	Created     bool               `json:"created"`
}

type DepositRequest struct {
	AccountType domain.AccountType `json:"accountType"`
	Amount      decimal.Decimal    `json:"amount"`
}

func (r DepositRequest) Validate() error {
	if err := validateAccountType(r.AccountType); err != nil {
		return err
	}
	if r.Amount.LessThanOrEqual(decimal.Zero) {
		return domain.ErrNonPositiveAmount
	}
	return nil
}

type DepositResponse struct {
	AccountType     domain.AccountType `json:"accountType"`
	DepositedAmount decimal.Decimal    `json:"depositedAmount"`
	Balance         decimal.Decimal    `json:"balance"`
}

type WithdrawRequest struct {
	AccountType domain.AccountType `json:"accountType"`
	Amount      decimal.Decimal    `json:"amount"`
}

func (r WithdrawRequest) Validate() error {
	if err := validateAccountType(r.AccountType); err != nil {
		return err
	}
	if r.Amount.LessThanOrEqual(decimal.Zero) {
		return domain.ErrNonPositiveAmount
	}
	return nil
}

// WithdrawResponse carries the balance after the attempt, which is the
// unchanged balance when the withdrawal was rejected.
type WithdrawResponse struct {
	AccountType     domain.AccountType `json:"accountType"`
	WithdrawnAmount decimal.Decimal    `json:"withdrawnAmount"`
	Balance         decimal.Decimal    `json:"balance"`
	MinimumBalance  decimal.Decimal    `json:"minimumBalance"`
}

type BalanceRequest struct {
	AccountType domain.AccountType `json:"accountType"`
}

func (r BalanceRequest) Validate() error {
	return validateAccountType(r.AccountType)
}

type BalanceResponse struct {
	AccountType        domain.AccountType `json:"accountType"`
	Balance            decimal.Decimal    `json:"balance"`
	MinimumBalance     decimal.Decimal    `json:"minimumBalance"`
	WithdrawalsAllowed bool               `json:"withdrawalsAllowed"`
}

func validateAccountType(accountType domain.AccountType) error {
	if strings.TrimSpace(string(accountType)) == "" {
		return errors.New("accountType is required")
	}
	if !accountType.IsValid() {
		return domain.ErrUnknownAccountType
	}
	return nil
}
