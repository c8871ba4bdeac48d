package console

import (
	"github.com/api-sage/mybank-console/src/internal/domain"
	"github.com/api-sage/mybank-console/src/internal/logger"
)

func logRejectedInput(session string, field string, raw string, err error) {
	logger.Debug("console input rejected", logger.Fields{
		"sessionId": session,
		"field":     field,
		"input":     raw,
		"reason":    err.Error(),
	})
}

func logMenuSelection(session string, menu string, choice int) {
	logger.Debug("console menu selection", logger.Fields{
		"sessionId": session,
		"menu":      menu,
		"choice":    choice,
	})
}

func logOperationError(session string, accountType domain.AccountType, operation string, err error) {
	logger.Error("console operation failed", err, logger.Fields{
		"sessionId":   session,
		"accountType": accountType,
		"operation":   operation,
	})
}
