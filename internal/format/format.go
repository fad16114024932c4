package format

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/message"

	"github.com/development-sample/eceta.com/internal/i18n"
)

func printer(l i18n.Locale) *message.Printer {
	return message.NewPrinter(l.Tag())
}

// Yen formats a whole-yen amount with locale digit grouping, e.g. "¥30,000".
func Yen(amount int64, l i18n.Locale) string {
	if amount < 0 {
		return "-" + printer(l).Sprintf("¥%d", -amount)
	}
	return printer(l).Sprintf("¥%d", amount)
}

// Number formats n with locale digit grouping.
func Number(n int64, l i18n.Locale) string {
	return printer(l).Sprintf("%d", n)
}

// Date formats a date the way the browser's short locale date does: 2025/3/18 for Japanese,
// 3/18/2025 otherwise.
func Date(t time.Time, l i18n.Locale) string {
	if t.IsZero() {
		return ""
	}
	if l.IsJa() {
		return t.Format("2006/1/2")
	}
	return t.Format("1/2/2006")
}

// ISODate formats a date for datetime attributes.
func ISODate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format("2006-01-02")
}

// Template fills a single %d placeholder, as used by dictionary strings such as
// "%d min read".
func Template(pattern string, n int) string {
	if !strings.Contains(pattern, "%d") {
		return pattern
	}
	return fmt.Sprintf(pattern, n)
}

// Percent formats an integer percentage.
func Percent(v int, l i18n.Locale) string {
	return printer(l).Sprintf("%d%%", v)
}
