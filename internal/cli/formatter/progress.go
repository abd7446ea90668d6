package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

func clampPct(pct float64, width int) (float64, int) {
	if pct < 0 || pct != pct {
		pct = 0
	}
	if pct > 1 {
		pct = 1
	}
	if width < 2 {
		width = 2
	}
	return pct, width
}

func progressStyle(pct float64) func(...string) string {
	switch {
	case pct < 0.33:
		return StyleRed.Render
	case pct < 0.66:
		return StyleYellow.Render
	default:
		return StyleGreen.Render
	}
}

func bar(pct float64, width int) string {
	filled := int(pct * float64(width))
	if filled > width {
		filled = width
	}
	return strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
}

// RenderProgress renders a progress bar like [████░░░░] 45%.
// The bar is colored based on percentage: green >66%, yellow 33-66%, red <33%.
func RenderProgress(pct float64, width int) string {
	pct, width = clampPct(pct, width)
	return fmt.Sprintf("[%s] %3.0f%%", progressStyle(pct)(bar(pct, width)), pct*100)
}

// RenderCompactBar renders a bare bar without brackets or percentage, for
// table cells. Dimmed bars are drawn without color.
func RenderCompactBar(pct float64, width int, dim bool) string {
	pct, width = clampPct(pct, width)
	if dim {
		return bar(pct, width)
	}
	return progressStyle(pct)(bar(pct, width))
}

// ScopeFraction returns done/total as a 0..1 ratio; an empty scope is 0.
func ScopeFraction(done, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(done) / float64(total)
}

// RenderScopeProgress renders "d/t" followed by a compact bar.
func RenderScopeProgress(done, total, width int) string {
	label := fmt.Sprintf("%d/%d", done, total)
	if total == 0 {
		return Dim(label)
	}
	return label + " " + RenderCompactBar(ScopeFraction(done, total), width, false)
}
