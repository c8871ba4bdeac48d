package console

import (
	"errors"
	"fmt"
	"io"

	"github.com/api-sage/mybank-console/src/internal/adapter/console/models"
	"github.com/api-sage/mybank-console/src/internal/domain"
	"github.com/shopspring/decimal"
)

const banner = "------------------ My Bank ------------------"

var accountBanners = map[domain.AccountType]string{
	domain.AccountTypeSavings: "-------------- Savings Account --------------",
	domain.AccountTypeCurrent: "-------------- Current Account --------------",
}

func money(currency string, amount decimal.Decimal) string {
	return currency + " " + amount.StringFixed(2)
}

func renderMainMenu(out io.Writer) {
	fmt.Fprint(out, banner+"\n\n")
	fmt.Fprintln(out, "Main Menu")
	fmt.Fprintln(out, "\t1 - Savings Account")
	fmt.Fprintln(out, "\t2 - Current Account")
	fmt.Fprintln(out, "\t3 - Exit")
}

func renderSubMenu(out io.Writer) {
	fmt.Fprintln(out, "Sub Menu")
	fmt.Fprintln(out, "\t1 - Deposit")
	fmt.Fprintln(out, "\t2 - Withdraw")
	fmt.Fprintln(out, "\t3 - Check Balance")
	fmt.Fprintln(out, "\t4 - Back")
}

func renderBalance(out io.Writer, currency string, resp models.BalanceResponse) {
	fmt.Fprintln(out, "Balance Inquiry")
	fmt.Fprintf(out, "\tBalance: %s\n", money(currency, resp.Balance))

	if resp.WithdrawalsAllowed {
		fmt.Fprint(out, "\tWithdrawals allowed.\n\n")
		return
	}

	switch resp.AccountType {
	case domain.AccountTypeSavings:
		fmt.Fprintf(out, "\tWithdrawals not allowed.\n\tMinimum balance of %s required.\n\n", money(currency, resp.MinimumBalance))
	default:
		fmt.Fprintf(out, "\tYour account balance is %s.\n\tWithdrawals not allowed.\n\n", money(currency, resp.Balance))
	}
}

func renderDeposit(out io.Writer, currency string, resp models.DepositResponse) {
	fmt.Fprintf(out, "\tDeposit of %s was successful!\n\n", money(currency, resp.DepositedAmount))
}

func renderWithdraw(out io.Writer, currency string, resp models.WithdrawResponse) {
	fmt.Fprintf(out, "\tWithdrawal of %s was successful!\n\n", money(currency, resp.WithdrawnAmount))
}

func renderWithdrawRejection(out io.Writer, currency string, resp models.WithdrawResponse, err error) {
	switch {
	case errors.Is(err, domain.ErrNonPositiveAmount):
		fmt.Fprint(out, "\tInvalid amount!\n\tPlease enter a positive value.\n\n")
	case errors.Is(err, domain.ErrAmountExceedsBalance):
		fmt.Fprint(out, "\tWithdrawal denied!\n\tAmount exceeds current balance.\n\tInput a new amount.\n\n")
	case errors.Is(err, domain.ErrMinimumBalance):
		fmt.Fprint(out, "\tWithdrawal denied!\n\tBalance is insufficient for withdrawal.\n")
		fmt.Fprintf(out, "\tMinimum balance of %s required.\n\tInput a new amount.\n\n", money(currency, resp.MinimumBalance))
	default:
		fmt.Fprint(out, "\tWithdrawal denied!\n\tWithdrawals not allowed.\n\n")
	}
}
