package format

import (
	"strconv"
	"strings"

	"github.com/carebridge/healthcore/pkg/locale"
)

// separators holds the thousands and decimal marks for number rendering.
type separators struct {
	thousands string
	decimal   string
}

// defaultSeparators is the rendering used for every country without an
// explicit entry below.
var defaultSeparators = separators{thousands: ",", decimal: "."}

// numberSeparators overrides rendering per country. Adding a locale is a
// data change here, not a code change.
var numberSeparators = map[locale.Country]separators{
	locale.CountryGermany: {thousands: " ", decimal: ","},
	locale.CountryFrance:  {thousands: " ", decimal: ","},
	locale.CountryItaly:   {thousands: " ", decimal: ","},
	locale.CountrySpain:   {thousands: " ", decimal: ","},
}

// Number renders a number with two decimal places and thousands grouping
// using the separator pair registered for the locale country.
func Number(value float64, prefs locale.Preferences) string {
	grouped := groupThousands(strconv.FormatFloat(value, 'f', 2, 64))

	seps, ok := numberSeparators[prefs.Country]
	if !ok {
		seps = defaultSeparators
	}
	if seps == defaultSeparators {
		return grouped
	}
	grouped = strings.ReplaceAll(grouped, ",", seps.thousands)
	return strings.ReplaceAll(grouped, ".", seps.decimal)
}

// currencySymbols maps supported currencies to their display symbol.
var currencySymbols = map[locale.Currency]string{
	locale.CurrencyUSD: "$",
	locale.CurrencyJPY: "¥",
	locale.CurrencyEUR: "€",
	locale.CurrencyGBP: "£",
	locale.CurrencyCNY: "¥",
	locale.CurrencyKRW: "₩",
	locale.CurrencyCAD: "C$",
	locale.CurrencyAUD: "A$",
	locale.CurrencyBRL: "R$",
	locale.CurrencyINR: "₹",
	locale.CurrencyRUB: "₽",
	locale.CurrencySAR: "﷼",
}

// Currency prefixes the locale currency symbol to the formatted amount.
// Japanese Yen drops everything after the decimal mark: a literal cut, not
// a rounding operation.
func Currency(amount float64, prefs locale.Preferences) string {
	symbol, ok := currencySymbols[prefs.Currency]
	if !ok {
		symbol = "$"
	}

	formatted := Number(amount, prefs)
	if prefs.Currency == locale.CurrencyJPY {
		whole, _, _ := strings.Cut(formatted, ".")
		return symbol + whole
	}
	return symbol + formatted
}

// groupThousands inserts comma separators into the integer part of a plain
// fixed-point decimal string such as "-1234567.89".
func groupThousands(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart, fracPart, hasFrac := strings.Cut(s, ".")

	var b strings.Builder
	lead := len(intPart) % 3
	if lead > 0 {
		b.WriteString(intPart[:lead])
	}
	for i := lead; i < len(intPart); i += 3 {
		if b.Len() > 0 {
			b.WriteString(",")
		}
		b.WriteString(intPart[i : i+3])
	}

	out := sign + b.String()
	if hasFrac {
		out += "." + fracPart
	}
	return out
}
