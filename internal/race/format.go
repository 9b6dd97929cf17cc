package race

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Amounts are grouped the Brazilian way: "." for thousands, "," for decimals.
var amountPrinter = message.NewPrinter(language.BrazilianPortuguese)

// FormatAmount renders v with grouped digits and up to three decimals.
func FormatAmount(v float64) string {
	return amountPrinter.Sprint(number.Decimal(v, number.MaxFractionDigits(3)))
}

// FormatValue renders v compactly: 2.5M, 1.5k, or a grouped amount below 1000.
func FormatValue(v float64) string {
	switch {
	case v >= 1_000_000:
		return fmt.Sprintf("%.1fM", v/1_000_000)
	case v >= 1_000:
		return fmt.Sprintf("%.1fk", v/1_000)
	default:
		return FormatAmount(v)
	}
}

// FormatPercent renders p with one decimal, e.g. "150.0%".
func FormatPercent(p float64) string {
	return strconv.FormatFloat(p, 'f', 1, 64) + "%"
}

// FormatThreshold renders a quick-target button label: 1k, 250k, 1M.
func FormatThreshold(v float64) string {
	switch {
	case v >= 1_000_000:
		return trimFloat(v/1_000_000) + "M"
	case v >= 1_000:
		return trimFloat(v/1_000) + "k"
	default:
		return trimFloat(v)
	}
}

func trimFloat(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	return strings.TrimSuffix(s, ".0")
}

// Money prefixes a grouped amount with the currency symbol.
func Money(symbol string, v float64) string {
	if symbol == "" {
		return FormatAmount(v)
	}
	return symbol + " " + FormatAmount(v)
}

// Ordinal renders 1st, 2nd, 3rd, 4th, 11th, 21st...
func Ordinal(n int) string {
	suffix := "th"
	switch n % 100 {
	case 11, 12, 13:
	default:
		switch n % 10 {
		case 1:
			suffix = "st"
		case 2:
			suffix = "nd"
		case 3:
			suffix = "rd"
		}
	}
	return strconv.Itoa(n) + suffix
}

// Medal returns the medal glyph for places 1-3 and the ordinal otherwise.
func Medal(place int) string {
	switch place {
	case 1:
		return "🥇"
	case 2:
		return "🥈"
	case 3:
		return "🥉"
	default:
		return Ordinal(place)
	}
}
