// Package render formats event diffs as colored text lines.
package render

import (
	"fmt"
	"io"
	"sync"

	"github.com/fatih/color"

	"github.com/pocek/udevmonitor-fancy/monitor"
)

// Renderer writes event diffs to a single output stream. The mutex keeps
// one event's lines contiguous when several sources emit concurrently.
type Renderer struct {
	mu  sync.Mutex
	out io.Writer

	header  *color.Color
	added   *color.Color
	removed *color.Color
	reorder *color.Color
}

func New(out io.Writer) *Renderer {
	return &Renderer{
		out:     out,
		header:  color.New(color.FgCyan, color.Bold),
		added:   color.New(color.FgGreen),
		removed: color.New(color.FgRed),
		reorder: color.New(color.FgYellow),
	}
}

func (r *Renderer) Emit(d monitor.EventDiff) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.header.Fprintf(r.out, "%s %s (%s)\n", d.Source, d.DevPath, d.Subsystem)
	for _, rec := range d.Records {
		r.record(rec, d.Initial)
	}
	fmt.Fprintln(r.out)
}

func (r *Renderer) record(rec monitor.Record, initial bool) {
	switch rec.Op {
	case monitor.OpAdd:
		if initial {
			r.value(color.New(), "", rec.Key, rec.New)
		} else {
			r.value(r.added, "+", rec.Key, rec.New)
		}
	case monitor.OpRemove:
		r.value(r.removed, "-", rec.Key, rec.Old)
	case monitor.OpReorder:
		r.reorder.Fprintf(r.out, "%s=%s (new order)\n", rec.Key, rec.New)
	case monitor.OpChange:
		if rec.AddedItems != nil || rec.RemovedItems != nil {
			r.listChange(rec)
			return
		}
		r.removed.Fprintf(r.out, "-%s=%s\n", rec.Key, rec.Old)
		r.added.Fprintf(r.out, "+%s=%s\n", rec.Key, rec.New)
	}
}

// value prints a scalar as prefixKEY=value and a list as a bracketed
// block with one element per line.
func (r *Renderer) value(c *color.Color, prefix, key string, v monitor.Value) {
	l, ok := v.(monitor.List)
	if !ok {
		c.Fprintf(r.out, "%s%s=%s\n", prefix, key, v)
		return
	}
	c.Fprintf(r.out, "%s%s=[\n", prefix, key)
	for _, e := range l {
		c.Fprintf(r.out, "   %s\n", e)
	}
	c.Fprintln(r.out, "]")
}

// listChange itemizes a list-valued change, one signed line per element
// that left or entered the set.
func (r *Renderer) listChange(rec monitor.Record) {
	fmt.Fprintf(r.out, "%s=[\n", rec.Key)
	for _, e := range rec.RemovedItems {
		r.removed.Fprintf(r.out, "  -%s\n", e)
	}
	for _, e := range rec.AddedItems {
		r.added.Fprintf(r.out, "  +%s\n", e)
	}
	fmt.Fprintln(r.out, "]")
}
