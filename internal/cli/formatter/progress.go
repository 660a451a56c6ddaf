package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock  = "█"
	partialBlock = "▒"
	emptyBlock   = "░"
)

// RenderProgress renders a progress bar like [████░░░░] 45%.
// pct is a fraction; the bar is green above 2/3, yellow above 1/3, red below.
func RenderProgress(pct float64, width int) string {
	pct = clampUnit(pct)
	if width < 2 {
		width = 2
	}

	filled := int(pct * float64(width))
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleGreen
	switch {
	case pct < 0.33:
		style = StyleRed
	case pct < 0.66:
		style = StyleYellow
	}
	return fmt.Sprintf("[%s] %3.0f%%", style.Render(bar), pct*100)
}

// RenderCompactBar renders a bracketless bar for tight table cells.
func RenderCompactBar(pct float64, width int, dim bool) string {
	pct = clampUnit(pct)
	if width < 2 {
		width = 2
	}
	filled := int(pct * float64(width))
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)
	if dim {
		return StyleDim.Render(bar)
	}
	return StyleBlue.Render(bar)
}

func clampUnit(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
