package services

import (
	"context"
	"fmt"

	"github.com/api-sage/mybank-console/src/internal/adapter/console/models"
	"github.com/api-sage/mybank-console/src/internal/domain"
	"github.com/api-sage/mybank-console/src/internal/logger"
)

type AccountService struct {
	accountRepo domain.AccountRepository
}

func NewAccountService(accountRepo domain.AccountRepository) *AccountService {
	return &AccountService{accountRepo: accountRepo}
}

func (s *AccountService) OpenAccount(ctx context.Context, req models.OpenAccountRequest) (models.OpenAccountResponse, error) {
	logger.Debug("account service open account request", logger.Fields{
		"accountType": req.AccountType,
	})

	if err := req.Validate(); err != nil {
		logger.Error("account service open account validation failed", err, nil)
		return models.OpenAccountResponse{}, err
	}

	account, created, err := s.accountRepo.GetOrCreate(ctx, req.AccountType)
	if err != nil {
		logger.Error("account service open account repository failed", err, logger.Fields{
			"accountType": req.AccountType,
		})
		return models.OpenAccountResponse{}, fmt.Errorf("open %s account: %w", req.AccountType, err)
	}

	response := models.OpenAccountResponse{
		AccountType: account.Type(),
		Balance:     account.Balance(),
		Created:     created,
	}

	logger.Info("account service open account success", logger.Fields{
		"accountType": response.AccountType,
		"balance":     response.Balance.StringFixed(2),
		"created":     response.Created,
	})

	return response, nil
}

func (s *AccountService) Deposit(ctx context.Context, req models.DepositRequest) (models.DepositResponse, error) {
	logger.Debug("account service deposit request", logger.Fields{
		"accountType": req.AccountType,
		"amount":      req.Amount.String(),
	})

	if err := req.Validate(); err != nil {
		logger.Error("account service deposit validation failed", err, nil)
		return models.DepositResponse{}, err
	}

	account, err := s.accountRepo.Get(ctx, req.AccountType)
	if err != nil {
		logger.Error("account service deposit account lookup failed", err, logger.Fields{
			"accountType": req.AccountType,
		})
		return models.DepositResponse{}, fmt.Errorf("deposit to %s account: %w", req.AccountType, err)
	}

	if err := account.Deposit(req.Amount); err != nil {
		logger.Error("account service deposit failed", err, logger.Fields{
			"accountType": req.AccountType,
			"amount":      req.Amount.String(),
		})
		return models.DepositResponse{AccountType: account.Type(), Balance: account.Balance()}, err
	}

	response := models.DepositResponse{
		AccountType:     account.Type(),
		DepositedAmount: req.Amount,
		Balance:         account.Balance(),
	}

	logger.Info("account service deposit success", logger.Fields{
		"accountType":     response.AccountType,
		"depositedAmount": response.DepositedAmount.StringFixed(2),
		"balance":         response.Balance.StringFixed(2),
	})

	return response, nil
}

func (s *AccountService) Withdraw(ctx context.Context, req models.WithdrawRequest) (models.WithdrawResponse, error) {
	logger.Debug("account service withdraw request", logger.Fields{
		"accountType": req.AccountType,
		"amount":      req.Amount.String(),
	})

	if err := req.Validate(); err != nil {
		logger.Error("account service withdraw validation failed", err, nil)
		return models.WithdrawResponse{}, err
	}

	account, err := s.accountRepo.Get(ctx, req.AccountType)
	if err != nil {
		logger.Error("account service withdraw account lookup failed", err, logger.Fields{
			"accountType": req.AccountType,
		})
		return models.WithdrawResponse{}, fmt.Errorf("withdraw from %s account: %w", req.AccountType, err)
	}

	response := models.WithdrawResponse{
		AccountType:    account.Type(),
		MinimumBalance: account.MinimumBalance(),
	}

	if err := account.Withdraw(req.Amount); err != nil {
		// Rejections are user input mistakes, not failures.
		logger.Info("account service withdraw rejected", logger.Fields{
			"accountType": req.AccountType,
			"amount":      req.Amount.String(),
			"reason":      err.Error(),
		})
		response.Balance = account.Balance()
		return response, err
	}

	response.WithdrawnAmount = req.Amount
	response.Balance = account.Balance()

	logger.Info("account service withdraw success", logger.Fields{
		"accountType":     response.AccountType,
		"withdrawnAmount": response.WithdrawnAmount.StringFixed(2),
		"balance":         response.Balance.StringFixed(2),
	})

	return response, nil
}

func (s *AccountService) CheckBalance(ctx context.Context, req models.BalanceRequest) (models.BalanceResponse, error) {
	if err := req.Validate(); err != nil {
		logger.Error("account service check balance validation failed", err, nil)
		return models.BalanceResponse{}, err
	}

	account, err := s.accountRepo.Get(ctx, req.AccountType)
	if err != nil {
		logger.Error("account service check balance account lookup failed", err, logger.Fields{
			"accountType": req.AccountType,
		})
		return models.BalanceResponse{}, fmt.Errorf("check %s balance: %w", req.AccountType, err)
	}

	response := models.BalanceResponse{
		AccountType:        account.Type(),
		Balance:            account.Balance(),
		MinimumBalance:     account.MinimumBalance(),
		WithdrawalsAllowed: account.WithdrawalsAllowed(),
	}

	logger.Debug("account service check balance success", logger.Fields{
		"accountType":        response.AccountType,
		"balance":            response.Balance.StringFixed(2),
		"withdrawalsAllowed": response.WithdrawalsAllowed,
	})

	return response, nil
}
