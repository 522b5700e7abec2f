package cssprune

import (
	"fmt"
	"io"
)

const csi = "\x1b["

// progress renders an in-place "done/total [pct%]" meter, rewriting the
// current line with CSI column-reset and erase sequences. A nil writer
// disables it.
type progress struct {
	w     io.Writer
	total int
	index int
}

func newProgress(w io.Writer, total int) *progress {
	p := &progress{w: w, total: total}
	p.render()
	return p
}

// Step advances the meter by one item.
func (p *progress) Step() {
	if p.w == nil {
		return
	}
	p.index++
	p.erase()
	p.render()
}

// Finish pins the meter at 100% and terminates the line.
func (p *progress) Finish() {
	if p.w == nil {
		return
	}
	p.erase()
	fmt.Fprintf(p.w, "%d/%d [100.00%%]\n", p.total, p.total)
}

func (p *progress) erase() {
	fmt.Fprintf(p.w, "%[1]s0G%[1]sK", csi)
}

func (p *progress) render() {
	if p.w == nil || p.total == 0 {
		return
	}
	fmt.Fprintf(p.w, "%d/%d [%.2f%%]", p.index, p.total, 100*float64(p.index)/float64(p.total))
}
