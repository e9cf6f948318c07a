// Package progress renders a single-line progress bar to stderr: an
// atomically incremented counter and a render routine that writes through
// the verbose logger rather than raw stdout, so a progress bar and
// -verbose logging never interleave badly.
package progress

import (
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/tgillet1/treeseqalign/internal/vlog"
)

// Bar tracks progress toward Total units of work and renders itself as an
// ASCII bar of width Width (default 80 minus len(Label) if zero).
type Bar struct {
	Label   string
	Total   uint64
	Width   int
	current uint64
}

// NewBar returns a Bar for total units of work.
func NewBar(label string, total uint64) *Bar {
	return &Bar{Label: label, Total: total}
}

// Increment advances the bar by one unit. Safe for concurrent use.
func (b *Bar) Increment() {
	atomic.AddUint64(&b.current, 1)
}

// Render writes the current state of the bar to stderr via vlog, overwriting
// the previous render with a carriage return.
func (b *Bar) Render() {
	width := b.Width
	if width <= 0 {
		width = 80 - len(b.Label)
		if width < 10 {
			width = 10
		}
	}

	current := atomic.LoadUint64(&b.current)
	total := b.Total
	if total == 0 {
		total = 1
	}
	ticks := (uint64(width) * current) / total
	if ticks > uint64(width) {
		ticks = uint64(width)
	}

	var line strings.Builder
	line.WriteString(b.Label)
	line.WriteString(" [")
	line.WriteString(strings.Repeat("=", int(ticks)))
	line.WriteString(strings.Repeat(" ", width-int(ticks)))
	line.WriteString(fmt.Sprintf("] %d / %d", current, b.Total))

	vlog.Vprint("\r" + line.String())
}
