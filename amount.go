package intake

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// amountRE matches a decimal number with an optional k/M magnitude suffix,
// once symbols, grouping commas and spaces have been removed. The base part
// allows a single optional sign and at most one decimal point; anything
// else (scientific notation, bare suffixes, stray characters) is rejected.
var amountRE = regexp.MustCompile(`^([-+]?[0-9]*\.?[0-9]+)([kKmM])?$`)

// Symbols is the allow-list of currency symbols stripped from an amount
// before parsing. Symbols not in the list are left in place and make the
// parse fail, so a typo is reported rather than silently dropped.
type Symbols []string

// NewSymbols builds a Symbols list from ISO currency codes, using each
// currency's printed symbol. Unknown codes are skipped.
func NewSymbols(codes ...string) Symbols {
	var sy Symbols
	for _, code := range codes {
		if cur := money.GetCurrency(code); cur != nil && cur.Grapheme != "" {
			sy = append(sy, cur.Grapheme)
		}
	}
	return sy
}

// DefaultSymbols covers the currencies user input is expected to carry.
var DefaultSymbols = NewSymbols(money.INR, money.USD, money.EUR, money.GBP)

// ParseAmount parses a loosely formatted numeric string into a float using
// DefaultSymbols.
//
// Supported forms:
//
//	"5000", "12000.50", "-100"
//	"₹5,000", "$12,000.50"
//	"5k" (5000), "1.2M" (1200000)
//	"1,20,000" and "120,000" (grouping width is not checked)
//
// The sign is preserved; callers decide whether negative values are
// acceptable.
func ParseAmount(s string) (float64, error) { return DefaultSymbols.ParseAmount(s) }

// ParseAmount parses a loosely formatted numeric string into a float,
// stripping only the symbols in sy.
func (sy Symbols) ParseAmount(s string) (float64, error) {
	raw := strings.TrimSpace(s)
	if raw == "" {
		return 0, fmt.Errorf("no value provided")
	}

	cleaned := strings.NewReplacer(",", "", " ", "").Replace(raw)
	for _, sym := range sy {
		cleaned = strings.ReplaceAll(cleaned, sym, "")
	}

	m := amountRE.FindStringSubmatch(cleaned)
	if m == nil {
		return 0, fmt.Errorf("unrecognized numeric format: %q", raw)
	}

	val, err := decimal.NewFromString(m[1])
	if err != nil {
		// This should not happen given the regex.
		return 0, fmt.Errorf("could not parse number part of %q: %w", raw, err)
	}

	// The suffix shifts the decimal point, so "1.2M" is exactly 1200000.
	switch m[2] {
	case "k", "K":
		val = val.Shift(3)
	case "m", "M":
		val = val.Shift(6)
	}

	return val.InexactFloat64(), nil
}

// round2 rounds a parsed amount to 2 decimal places, the granularity items
// are persisted with.
func round2(v float64) float64 {
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
