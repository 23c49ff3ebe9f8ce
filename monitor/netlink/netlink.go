// Package netlink adapts go-udev netlink monitors to the dispatcher's
// Source interface.
package netlink

import (
	"context"
	"fmt"

	"github.com/jochenvg/go-udev"

	"github.com/pocek/udevmonitor-fancy/monitor"
)

// Source connects to one udev netlink group, "udev" for events that went
// through udev rule processing or "kernel" for raw kernel uevents.
type Source struct {
	group      string
	subsystems []string
}

func New(group string, subsystems []string) *Source {
	return &Source{group: group, subsystems: subsystems}
}

func (s *Source) Label() string {
	return s.group
}

func (s *Source) Listen(ctx context.Context) (<-chan monitor.Event, <-chan error, error) {
	u := udev.Udev{}
	m := u.NewMonitorFromNetlink(s.group)
	for _, sub := range s.subsystems {
		if err := m.FilterAddMatchSubsystem(sub); err != nil {
			return nil, nil, fmt.Errorf("failed to add %s subsystem filter: %w", sub, err)
		}
	}
	deviceChan, errChan, err := m.DeviceChan(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create device channel: %w", err)
	}

	out := make(chan monitor.Event)
	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case device, ok := <-deviceChan:
				if !ok {
					return
				}
				if device == nil {
					continue
				}
				select {
				case out <- convert(device):
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return out, errChan, nil
}

func convert(device *udev.Device) monitor.Event {
	return monitor.Event{
		Action:     monitor.Action(device.Action()),
		DevPath:    device.Devpath(),
		Subsystem:  device.Subsystem(),
		Properties: device.Properties(),
	}
}
