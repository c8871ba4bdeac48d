package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/api-sage/mybank-console/src/internal/adapter/console/models"
	"github.com/api-sage/mybank-console/src/internal/domain"
	"github.com/api-sage/mybank-console/src/internal/usecase/service_interfaces"
)

const (
	subMenuDeposit = iota + 1
	subMenuWithdraw
	subMenuCheckBalance
	subMenuBack
)

type AccountController struct {
	service  service_interfaces.AccountService
	prompter *Prompter
	out      io.Writer
	currency string
	session  string
}

func NewAccountController(service service_interfaces.AccountService, prompter *Prompter, out io.Writer, currency string, session string) *AccountController {
	return &AccountController{
		service:  service,
		prompter: prompter,
		out:      out,
		currency: currency,
		session:  session,
	}
}

// Serve runs the sub-menu for one opened account until the user goes back.
func (c *AccountController) Serve(ctx context.Context, accountType domain.AccountType) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		renderSubMenu(c.out)
		choice, err := c.prompter.ReadMenuChoice(subMenuDeposit, subMenuBack)
		if err != nil {
			return err
		}
		fmt.Fprintln(c.out)
		logMenuSelection(c.session, "sub", choice)

		var operation string
		switch choice {
		case subMenuDeposit:
			operation = "deposit"
			err = c.deposit(ctx, accountType)
		case subMenuWithdraw:
			operation = "withdraw"
			err = c.withdraw(ctx, accountType)
		case subMenuCheckBalance:
			operation = "check balance"
			err = c.checkBalance(ctx, accountType)
		case subMenuBack:
			fmt.Fprint(c.out, "Returning to Main Menu...\n\n")
			return nil
		}

		if err != nil {
			if !errors.Is(err, io.EOF) {
				logOperationError(c.session, accountType, operation, err)
			}
			return err
		}
	}
}

func (c *AccountController) deposit(ctx context.Context, accountType domain.AccountType) error {
	fmt.Fprintln(c.out, "Deposit Money")
	amount, err := c.prompter.ReadAmount(c.currency)
	if err != nil {
		return err
	}

	resp, err := c.service.Deposit(ctx, models.DepositRequest{AccountType: accountType, Amount: amount})
	if err != nil {
		return err
	}

	renderDeposit(c.out, c.currency, resp)
	return nil
}

// withdraw reports the balance and returns immediately when the account is at
// its floor; otherwise it keeps asking until an amount is accepted.
func (c *AccountController) withdraw(ctx context.Context, accountType domain.AccountType) error {
	balance, err := c.service.CheckBalance(ctx, models.BalanceRequest{AccountType: accountType})
	if err != nil {
		return err
	}
	if !balance.WithdrawalsAllowed {
		renderBalance(c.out, c.currency, balance)
		return nil
	}

	for {
		renderBalance(c.out, c.currency, balance)
		fmt.Fprintln(c.out, "Withdraw Money")
		amount, err := c.prompter.ReadAmount(c.currency)
		if err != nil {
			return err
		}

		resp, err := c.service.Withdraw(ctx, models.WithdrawRequest{AccountType: accountType, Amount: amount})
		if err == nil {
			renderWithdraw(c.out, c.currency, resp)
			return nil
		}
		if !errors.Is(err, domain.ErrInvalidUserInput) {
			return err
		}
		renderWithdrawRejection(c.out, c.currency, resp, err)

		balance, err = c.service.CheckBalance(ctx, models.BalanceRequest{AccountType: accountType})
		if err != nil {
			return err
		}
	}
}

func (c *AccountController) checkBalance(ctx context.Context, accountType domain.AccountType) error {
	resp, err := c.service.CheckBalance(ctx, models.BalanceRequest{AccountType: accountType})
	if err != nil {
		return err
	}

	renderBalance(c.out, c.currency, resp)
	return nil
}
