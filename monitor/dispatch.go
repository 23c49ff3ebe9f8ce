package monitor

import (
	"context"
	"fmt"
	"log"
)

type Action string

const (
	ActionAdd    Action = "add"
	ActionChange Action = "change"
	ActionRemove Action = "remove"
)

// Event is one device notification delivered by a Source.
type Event struct {
	Action     Action
	DevPath    string
	Subsystem  string
	Properties map[string]string
}

// Source delivers an ordered stream of device events. Listen returns the
// event and error channels; the event channel closes when the source
// stops. Events must arrive on the channel in delivery order.
type Source interface {
	Label() string
	Listen(ctx context.Context) (<-chan Event, <-chan error, error)
}

// EventDiff is one processed event: the header identity plus the
// property records the event produced. Initial marks the first sighting
// of a device through an add event, which renders without '+' prefixes.
type EventDiff struct {
	Source    string
	Action    Action
	DevPath   string
	Subsystem string
	Initial   bool
	Records   []Record
}

// Sink consumes event diffs. Implementations must tolerate calls from
// multiple source goroutines.
type Sink interface {
	Emit(EventDiff)
}

// Dispatcher turns source events into diffs against per-source snapshot
// state and hands them to a sink.
type Dispatcher struct {
	sink Sink
}

func NewDispatcher(sink Sink) *Dispatcher {
	return &Dispatcher{sink: sink}
}

// Run consumes src until the context is cancelled, the source's event
// channel closes, or the source reports an error. A source error is
// fatal: there is no recovery protocol, and silently continuing would
// risk presenting diffs against stale snapshots.
func (d *Dispatcher) Run(ctx context.Context, src Source) error {
	events, errs, err := src.Listen(ctx)
	if err != nil {
		return fmt.Errorf("[%s] failed to start source: %w", src.Label(), err)
	}
	store := NewStore()
	log.Printf("[%s] listening for device events", src.Label())
	for {
		select {
		case <-ctx.Done():
			log.Printf("[%s] stopping, %d devices tracked", src.Label(), store.Len())
			return nil
		case ev, ok := <-events:
			if !ok {
				log.Printf("[%s] source closed, %d devices tracked", src.Label(), store.Len())
				return nil
			}
			d.sink.Emit(handle(src.Label(), store, ev))
		case err := <-errs:
			if err != nil {
				return fmt.Errorf("[%s] source failure: %w", src.Label(), err)
			}
		}
	}
}

// handle applies one event to the source's snapshot store and builds its
// diff. An add always reports the full property set; a change diffs
// against the prior snapshot, falling back to a full report when the
// device was never seen; a remove only drops the snapshot, reporting no
// property records. Any other action carries a full property set just
// like a change and is treated as one.
func handle(label string, store *Store, ev Event) EventDiff {
	diff := EventDiff{
		Source:    label,
		Action:    ev.Action,
		DevPath:   ev.DevPath,
		Subsystem: ev.Subsystem,
	}
	switch ev.Action {
	case ActionRemove:
		store.Delete(ev.DevPath)
	case ActionAdd:
		view := NewView(ev.Properties)
		_, seen := store.Get(ev.DevPath)
		diff.Initial = !seen
		diff.Records = Diff(nil, view)
		store.Put(ev.DevPath, view)
	default:
		view := NewView(ev.Properties)
		old, _ := store.Get(ev.DevPath)
		diff.Records = Diff(old, view)
		store.Put(ev.DevPath, view)
	}
	return diff
}
