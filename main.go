package main

import (
	"os"

	"github.com/crazywolf132/statscmd/cmd"
	"github.com/crazywolf132/statscmd/internal/ui"
)

func main() {
	if err := cmd.Execute(); err != nil {
		ui.Error(err.Error())
		os.Exit(1)
	}
}
