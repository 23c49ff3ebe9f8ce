package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pocek/udevmonitor-fancy/config"
)

var rootCmd = &cobra.Command{
	Use:     config.AppName,
	Version: config.AppVersion,
	Short:   "Watch device events and print property diffs",
	Long: `udevmonitor-fancy listens for device hotplug and state-change events
and prints a colored diff of each device's properties against its last
known state. With no source flag it watches the udev netlink group;
--kernel adds or selects the raw kernel uevent stream.`,
	SilenceUsage: true,
	RunE:         run,
}

func init() {
	flags := rootCmd.Flags()
	flags.BoolP("kernel", "k", false, "monitor raw kernel uevents")
	flags.BoolP("udev", "u", false, "monitor post-rule udev events (default when no source is selected)")
	flags.StringSliceP("subsystem", "s", nil, "limit monitoring to the given subsystems")
	flags.Bool("no-color", false, "disable colored output")

	viper.BindPFlag("Kernel", flags.Lookup("kernel"))
	viper.BindPFlag("Udev", flags.Lookup("udev"))
	viper.BindPFlag("Subsystems", flags.Lookup("subsystem"))
	viper.BindPFlag("NoColor", flags.Lookup("no-color"))
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err.Error())
		os.Exit(1)
	}
}
