package formatter

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/alexanderramin/reimagine/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		inner := titleRendered + "\n\n" + content
		return boxStyle.Render(inner)
	}

	return boxStyle.Render(content)
}

// EmptyState renders the dimmed placeholder shown for an empty list.
func EmptyState(msg string) string {
	return Dim(msg)
}

// Currency formats an amount as US dollars with thousands separators and
// two decimals, e.g. $1,234.50 or -$20.00.
func Currency(v float64) string {
	v = domain.Finite(v)
	sign := ""
	if v < 0 {
		sign = "-"
		v = -v
	}
	return sign + "$" + humanize.FormatFloat("#,###.##", v)
}

// Percent formats a percentage with one decimal, e.g. 25.0%.
func Percent(v float64) string {
	return fmt.Sprintf("%.1f%%", domain.Finite(v))
}

// Number formats a quantity without trailing zeros.
func Number(v float64) string {
	return humanize.Ftoa(domain.Finite(v))
}

// Fallback returns s, or a dimmed "--" when s is blank.
func Fallback(s string) string {
	if strings.TrimSpace(s) == "" {
		return Dim("--")
	}
	return s
}

// TruncID returns the first 8 characters of an ID.
func TruncID(id string) string {
	return domain.ShortID(id)
}

// Truncate shortens s to max visible runes, appending an ellipsis.
func Truncate(s string, max int) string {
	r := []rune(s)
	if max <= 1 || len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

// RelativeDateFrom returns a human-friendly relative date string from a reference time.
func RelativeDateFrom(t time.Time, now time.Time) string {
	diff := t.Sub(now)
	days := int(math.Round(diff.Hours() / 24))

	switch {
	case days == 0:
		return "Today"
	case days == 1:
		return "Tomorrow"
	case days == -1:
		return "Yesterday"
	case days > 0 && days < 14:
		return fmt.Sprintf("In %dd", days)
	case days > 0 && days < 60:
		return fmt.Sprintf("In %dw", days/7)
	case days > 0:
		return fmt.Sprintf("In %dmo", days/30)
	case days < 0 && days > -14:
		return fmt.Sprintf("%dd ago", -days)
	case days < 0 && days > -60:
		return fmt.Sprintf("%dw ago", -days/7)
	default:
		return fmt.Sprintf("%dmo ago", -days/30)
	}
}

// TaskDate renders a free-form timeline date. Values in YYYY-MM-DD form get
// a dimmed relative hint; anything else is shown as entered.
func TaskDate(s string, now time.Time) string {
	if strings.TrimSpace(s) == "" {
		return Dim("--")
	}
	t, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(s), now.Location())
	if err != nil {
		return s
	}
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	return s + " " + Dim("("+RelativeDateFrom(t, today)+")")
}
