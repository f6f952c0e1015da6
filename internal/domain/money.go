package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FormatAmount renders d in the #,##0.00 pattern: comma thousands separator and
// exactly two decimals. Values are rounded half to even at the second decimal.
func FormatAmount(d decimal.Decimal) string {
	rounded := d.RoundBank(2)

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}

	whole := rounded.Truncate(0)
	cents := rounded.Sub(whole).Shift(2).IntPart()

	return fmt.Sprintf("%s%s.%02d", sign, groupThousands(message.NewPrinter(language.English), whole), cents)
}

var (
	maxGroupedInt = decimal.New(1, 18)
	thousand      = decimal.NewFromInt(1000)
)

// groupThousands formats a non-negative integer d with comma separators.
// Values past int64 are split off in groups of three digits.
func groupThousands(p *message.Printer, d decimal.Decimal) string {
	if d.LessThan(maxGroupedInt) {
		return p.Sprintf("%d", d.IntPart())
	}

	q, r := d.QuoRem(thousand, 0)

	return fmt.Sprintf("%s,%03d", groupThousands(p, q), r.IntPart())
}
