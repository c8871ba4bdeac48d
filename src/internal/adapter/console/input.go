package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"regexp"
	"strconv"

	"github.com/api-sage/mybank-console/src/internal/domain"
	"github.com/shopspring/decimal"
)

// Whole units with at most two fractional digits. No sign, no exponent.
var amountPattern = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

var digitsPattern = regexp.MustCompile(`^\d+$`)

func ParseAmount(raw string) (decimal.Decimal, error) {
	if !amountPattern.MatchString(raw) {
		return decimal.Zero, domain.ErrNonNumericInput
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %v", domain.ErrNonNumericInput, err)
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero, domain.ErrNonPositiveAmount
	}

	return amount, nil
}

// ParseMenuChoice accepts a digit string inside the inclusive range [min, max].
func ParseMenuChoice(raw string, min int, max int) (int, error) {
	if !digitsPattern.MatchString(raw) {
		return 0, domain.ErrNonNumericInput
	}

	choice, err := strconv.Atoi(raw)
	if err != nil {
		// only overflow is possible past the pattern check
		return 0, domain.ErrChoiceOutOfRange
	}
	if choice < min || choice > max {
		return 0, domain.ErrChoiceOutOfRange
	}

	return choice, nil
}

// Prompter reads whitespace-delimited tokens and asks again until the token is
// valid. Reads return io.EOF once the input is exhausted.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
	session string
}

func NewPrompter(in io.Reader, out io.Writer, session string) *Prompter {
	scanner := bufio.NewScanner(in)
	scanner.Split(bufio.ScanWords)
	return &Prompter{scanner: scanner, out: out, session: session}
}

func (p *Prompter) ReadMenuChoice(min int, max int) (int, error) {
	for {
		fmt.Fprint(p.out, "Select Action: ")
		raw, err := p.next()
		if err != nil {
			return 0, err
		}

		choice, err := ParseMenuChoice(raw, min, max)
		if err == nil {
			return choice, nil
		}

		logRejectedInput(p.session, "menu choice", raw, err)
		if errors.Is(err, domain.ErrChoiceOutOfRange) {
			fmt.Fprintf(p.out, "\tInvalid input!\n\tPlease select a number between %d and %d.\n", min, max)
			continue
		}
		fmt.Fprintln(p.out, "\tInvalid input!\n\tPlease enter a numeric value.")
	}
}

func (p *Prompter) ReadAmount(currency string) (decimal.Decimal, error) {
	for {
		fmt.Fprintf(p.out, "\tAmount: %s ", currency)
		raw, err := p.next()
		if err != nil {
			return decimal.Zero, err
		}

		amount, err := ParseAmount(raw)
		if err == nil {
			return amount, nil
		}

		logRejectedInput(p.session, "amount", raw, err)
		if errors.Is(err, domain.ErrNonPositiveAmount) {
			fmt.Fprintln(p.out, "\tPlease enter a positive amount.")
			continue
		}
		fmt.Fprintln(p.out, "\tInvalid input!\n\tPlease enter a numeric value.")
	}
}

func (p *Prompter) next() (string, error) {
	if p.scanner.Scan() {
		return p.scanner.Text(), nil
	}
	if err := p.scanner.Err(); err != nil {
		return "", fmt.Errorf("read input: %w", err)
	}
	return "", io.EOF
}
