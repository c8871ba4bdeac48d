package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/api-sage/mybank-console/src/internal/adapter/console/models"
	"github.com/api-sage/mybank-console/src/internal/domain"
	"github.com/api-sage/mybank-console/src/internal/logger"
	"github.com/api-sage/mybank-console/src/internal/usecase/service_interfaces"
	"github.com/oklog/ulid/v2"
)

const (
	mainMenuSavings = iota + 1
	mainMenuCurrent
	mainMenuExit
)

// Driver is the interactive main menu. One Driver is one session.
type Driver struct {
	service    service_interfaces.AccountService
	prompter   *Prompter
	controller *AccountController
	out        io.Writer
	session    string
}

func NewDriver(service service_interfaces.AccountService, in io.Reader, out io.Writer, currency string) *Driver {
	session := ulid.Make().String()
	prompter := NewPrompter(in, out, session)

	return &Driver{
		service:    service,
		prompter:   prompter,
		controller: NewAccountController(service, prompter, out, currency, session),
		out:        out,
		session:    session,
	}
}

func (d *Driver) SessionID() string {
	return d.session
}

// Run loops over the main menu until Exit is chosen. Running out of input ends
// the session without an error.
func (d *Driver) Run(ctx context.Context) error {
	logger.Info("console session started", logger.Fields{"sessionId": d.session})

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		renderMainMenu(d.out)
		choice, err := d.prompter.ReadMenuChoice(mainMenuSavings, mainMenuExit)
		if err != nil {
			return d.finish(err)
		}
		fmt.Fprintln(d.out)
		logMenuSelection(d.session, "main", choice)

		switch choice {
		case mainMenuSavings:
			err = d.serve(ctx, domain.AccountTypeSavings)
		case mainMenuCurrent:
			err = d.serve(ctx, domain.AccountTypeCurrent)
		case mainMenuExit:
			fmt.Fprintln(d.out, "Thank you for using My Bank!")
			logger.Info("console session ended", logger.Fields{"sessionId": d.session})
			return nil
		}

		if err != nil {
			return d.finish(err)
		}
	}
}

func (d *Driver) serve(ctx context.Context, accountType domain.AccountType) error {
	fmt.Fprint(d.out, accountBanners[accountType]+"\n\n")

	if _, err := d.service.OpenAccount(ctx, models.OpenAccountRequest{AccountType: accountType}); err != nil {
		return err
	}

	return d.controller.Serve(ctx, accountType)
}

func (d *Driver) finish(err error) error {
	if errors.Is(err, io.EOF) {
		logger.Info("console input closed", logger.Fields{"sessionId": d.session})
		return nil
	}
	return err
}
