package pos

import (
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	CurrencySymbol = "$"
	priceDecimals  = 2
)

// FormatPrice renders a price as "$1,234.50": two fixed fractional digits,
// rounded half away from zero, with thousands separators.
func FormatPrice(price decimal.Decimal) string {
	return CurrencySymbol + formatAmount(price)
}

func formatAmount(amount decimal.Decimal) string {
	rounded := amount.Round(priceDecimals)
	fixed := rounded.Abs().StringFixed(priceDecimals)

	whole, fraction, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	if rounded.IsNegative() {
		b.WriteByte('-')
	}
	b.WriteString(groupThousands(rounded.Abs().Truncate(0), whole))
	b.WriteByte('.')
	b.WriteString(fraction)
	return b.String()
}

var maxGroupedAmount = decimal.NewFromInt(1 << 62)

// groupThousands inserts separators into the integer part. Amounts too large
// for int64 are printed without grouping.
func groupThousands(whole decimal.Decimal, digits string) string {
	if whole.GreaterThanOrEqual(maxGroupedAmount) {
		return digits
	}
	return message.NewPrinter(language.English).Sprintf("%d", whole.IntPart())
}
