package main

import (
	"github.com/pocek/udevmonitor-fancy/cmd"
)

func main() {
	cmd.Execute()
}
