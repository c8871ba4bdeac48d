package domain

import (
	"errors"
	"fmt"
)

var ErrRecordNotFound = errors.New("Record not found")
var ErrUnknownAccountType = errors.New("unknown account type")

// ErrInvalidUserInput is the root of every error caused by what the user typed.
// Callers recover from it by asking again.
var ErrInvalidUserInput = errors.New("invalid user input")

var (
	ErrNonNumericInput       = fmt.Errorf("%w: numeric value required", ErrInvalidUserInput)
	ErrChoiceOutOfRange      = fmt.Errorf("%w: choice out of range", ErrInvalidUserInput)
	ErrNonPositiveAmount     = fmt.Errorf("%w: amount must be greater than zero", ErrInvalidUserInput)
	ErrAmountExceedsBalance  = fmt.Errorf("%w: amount exceeds current balance", ErrInvalidUserInput)
	ErrMinimumBalance        = fmt.Errorf("%w: minimum balance required", ErrInvalidUserInput)
	ErrWithdrawalsNotAllowed = fmt.Errorf("%w: withdrawals not allowed", ErrInvalidUserInput)
)
