// Package money holds the currency rules of the engine: every amount carries
// two decimal places and every comparison rounds to them first.
package money

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Places is the number of decimal places amounts are rounded to.
const Places = 2

func Round(d decimal.Decimal) decimal.Decimal {
	return d.Round(Places)
}

// Equal compares two amounts after rounding both.
func Equal(a, b decimal.Decimal) bool {
	return Round(a).Equal(Round(b))
}

func IsZero(d decimal.Decimal) bool {
	return Round(d).IsZero()
}

func IsPositive(d decimal.Decimal) bool {
	return Round(d).IsPositive()
}

func IsNegative(d decimal.Decimal) bool {
	return Round(d).IsNegative()
}

// Sum adds the given amounts without intermediate rounding.
func Sum(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}

	return total
}

// Parse reads an amount written either as "1234.56" or in the European
// "1.234,56" form.
func Parse(s string) (decimal.Decimal, error) {
	clean := strings.TrimSpace(s)
	if clean == "" {
		return decimal.Zero, fmt.Errorf("empty amount")
	}

	if strings.Contains(clean, ",") {
		clean = strings.ReplaceAll(clean, ".", "")
		clean = strings.ReplaceAll(clean, ",", ".")
	}

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Zero, fmt.Errorf("parsing amount %q: %w", s, err)
	}

	return d, nil
}
