package cmd

import (
	"context"
	"log"
	"os"
	"os/signal"
	"sync"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"golang.org/x/sys/unix"

	"github.com/pocek/udevmonitor-fancy/config"
	"github.com/pocek/udevmonitor-fancy/monitor"
	"github.com/pocek/udevmonitor-fancy/monitor/netlink"
	"github.com/pocek/udevmonitor-fancy/render"
)

func run(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if cfg.NoColor {
		color.NoColor = true
	}

	var sources []monitor.Source
	if cfg.Udev {
		sources = append(sources, netlink.New("udev", cfg.Subsystems))
	}
	if cfg.Kernel {
		sources = append(sources, netlink.New("kernel", cfg.Subsystems))
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, unix.SIGINT, unix.SIGTERM)

	dispatcher := monitor.NewDispatcher(render.New(os.Stdout))

	var wg sync.WaitGroup
	errc := make(chan error, len(sources))
	for _, src := range sources {
		wg.Add(1)
		go func(src monitor.Source) {
			defer wg.Done()
			if err := dispatcher.Run(ctx, src); err != nil {
				errc <- err
			}
		}(src)
	}

	select {
	case s := <-sigc:
		log.Printf("received %s, shutting down", s)
		cancel()
		wg.Wait()
		return nil
	case err := <-errc:
		cancel()
		wg.Wait()
		return err
	}
}
