package table

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
)

// CurrencySuffix is appended to every rendered price.
const CurrencySuffix = ",00 €"

// FormatCurrency formats a whole-unit amount as "600,00 €".
func FormatCurrency(amount int) string {
	return fmt.Sprintf("%d%s", amount, CurrencySuffix)
}

// FormatPercent formats a value as "80%".
func FormatPercent(v any) string {
	return fmt.Sprintf("%v%%", v)
}

// displayWidth is the number of terminal cells s occupies.
func displayWidth(s string) int {
	return runewidth.StringWidth(s)
}

// AlignCenter pads s with spaces on both sides to width cells. The extra
// space of an odd remainder goes to the right. Text wider than width is
// returned unchanged.
func AlignCenter(s string, width int) string {
	gap := width - displayWidth(s)
	if gap <= 0 {
		return s
	}
	left := gap / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", gap-left)
}

// AlignLeft pads s on the right to width cells.
func AlignLeft(s string, width int) string {
	gap := width - displayWidth(s)
	if gap <= 0 {
		return s
	}
	return s + strings.Repeat(" ", gap)
}

// Truncate cuts s to at most width cells.
func Truncate(s string, width int) string {
	return runewidth.Truncate(s, width, "")
}
