package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

const defaultLogLevel = "warn"
const defaultLogFormat = "text"
const defaultCurrencyLabel = "Php"

type Config struct {
	LogLevel      string
	LogFormat     string
	CurrencyLabel string
}

func Default() Config {
	return Config{
		LogLevel:      defaultLogLevel,
		LogFormat:     defaultLogFormat,
		CurrencyLabel: defaultCurrencyLabel,
	}
}

// Load reads MYBANK_* variables. Unset values take defaults; an invalid value
// is replaced by its default and reported in the returned error.
func Load() (Config, error) {
	cfg := Default()
	var problems []string

	if level := strings.ToLower(strings.TrimSpace(os.Getenv("MYBANK_LOG_LEVEL"))); level != "" {
		if _, err := logrus.ParseLevel(level); err != nil {
			problems = append(problems, fmt.Sprintf("MYBANK_LOG_LEVEL %q is not a log level", level))
		} else {
			cfg.LogLevel = level
		}
	}

	if format := strings.ToLower(strings.TrimSpace(os.Getenv("MYBANK_LOG_FORMAT"))); format != "" {
		if format != "text" && format != "json" {
			problems = append(problems, fmt.Sprintf("MYBANK_LOG_FORMAT must be text or json, got %q", format))
		} else {
			cfg.LogFormat = format
		}
	}

	if currency := strings.TrimSpace(os.Getenv("MYBANK_CURRENCY")); currency != "" {
		cfg.CurrencyLabel = currency
	}

	if len(problems) > 0 {
		return cfg, fmt.Errorf("invalid configuration: %s", strings.Join(problems, "; "))
	}

	return cfg, nil
}
