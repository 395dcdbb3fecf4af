package formatter

import (
	"fmt"
	"strings"
)

const (
	filledBlock = "█"
	emptyBlock  = "░"
)

// RenderProgress renders a progress bar like [████░░░░] 3/6.
// The bar is green when complete, yellow when started and red when empty.
func RenderProgress(done, total, width int) string {
	if width < 2 {
		width = 2
	}
	pct := 1.0
	if total > 0 {
		pct = float64(done) / float64(total)
	}
	pct = min(max(pct, 0), 1)

	filled := int(pct * float64(width))
	bar := strings.Repeat(filledBlock, filled) + strings.Repeat(emptyBlock, width-filled)

	style := StyleYellow
	switch {
	case pct >= 1:
		style = StyleGreen
	case done == 0:
		style = StyleRed
	}
	return fmt.Sprintf("[%s] %d/%d", style.Render(bar), done, total)
}
