package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type AccountType string

const (
	AccountTypeSavings AccountType = "SAVINGS"
	AccountTypeCurrent AccountType = "CURRENT"
)

func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeSavings, AccountTypeCurrent:
		return true
	}
	return false
}

var (
	SavingsOpeningBalance = decimal.NewFromInt(1000)
	SavingsMinimumBalance = decimal.NewFromInt(1000)
	CurrentOpeningBalance = decimal.Zero
	CurrentMinimumBalance = decimal.Zero
)

// Account is the capability set shared by every account variant. The balance
// only changes through Deposit and Withdraw.
type Account interface {
	Type() AccountType
	Balance() decimal.Decimal
	// MinimumBalance is the floor a withdrawal must not breach.
	MinimumBalance() decimal.Decimal
	// WithdrawalsAllowed reports whether the balance is above the floor.
	WithdrawalsAllowed() bool
	Deposit(amount decimal.Decimal) error
	Withdraw(amount decimal.Decimal) error
}

// NewAccount opens an account of the given type with its fixed opening balance.
func NewAccount(accountType AccountType) (Account, error) {
	switch accountType {
	case AccountTypeSavings:
		return NewSavingsAccount(), nil
	case AccountTypeCurrent:
		return NewCurrentAccount(), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAccountType, accountType)
	}
}

type SavingsAccount struct {
	balance decimal.Decimal
}

func NewSavingsAccount() *SavingsAccount {
	return &SavingsAccount{balance: SavingsOpeningBalance}
}

func (a *SavingsAccount) Type() AccountType               { return AccountTypeSavings }
func (a *SavingsAccount) Balance() decimal.Decimal        { return a.balance }
func (a *SavingsAccount) MinimumBalance() decimal.Decimal { return SavingsMinimumBalance }

func (a *SavingsAccount) WithdrawalsAllowed() bool {
	return a.balance.GreaterThan(SavingsMinimumBalance)
}

func (a *SavingsAccount) Deposit(amount decimal.Decimal) error {
	balance, err := credit(a.balance, amount)
	if err != nil {
		return err
	}
	a.balance = balance
	return nil
}

func (a *SavingsAccount) Withdraw(amount decimal.Decimal) error {
	if !a.WithdrawalsAllowed() {
		return ErrWithdrawalsNotAllowed
	}
	balance, err := debit(a.balance, amount)
	if err != nil {
		return err
	}
	if balance.LessThan(SavingsMinimumBalance) {
		return ErrMinimumBalance
	}
	a.balance = balance
	return nil
}

type CurrentAccount struct {
	balance decimal.Decimal
}

func NewCurrentAccount() *CurrentAccount {
	return &CurrentAccount{balance: CurrentOpeningBalance}
}

func (a *CurrentAccount) Type() AccountType               { return AccountTypeCurrent }
func (a *CurrentAccount) Balance() decimal.Decimal        { return a.balance }
func (a *CurrentAccount) MinimumBalance() decimal.Decimal { return CurrentMinimumBalance }

func (a *CurrentAccount) WithdrawalsAllowed() bool {
	return a.balance.GreaterThan(CurrentMinimumBalance)
}

func (a *CurrentAccount) Deposit(amount decimal.Decimal) error {
	balance, err := credit(a.balance, amount)
	if err != nil {
		return err
	}
	a.balance = balance
	return nil
}

func (a *CurrentAccount) Withdraw(amount decimal.Decimal) error {
	if !a.WithdrawalsAllowed() {
		return ErrWithdrawalsNotAllowed
	}
	balance, err := debit(a.balance, amount)
	if err != nil {
		return err
	}
	a.balance = balance
	return nil
}

func credit(balance decimal.Decimal, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return balance, ErrNonPositiveAmount
	}
	return balance.Add(amount), nil
}

// debit returns the balance after taking amount out, without applying any
// variant floor.
func debit(balance decimal.Decimal, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return balance, ErrNonPositiveAmount
	}
	if amount.GreaterThan(balance) {
		return balance, ErrAmountExceedsBalance
	}
	return balance.Sub(amount), nil
}
