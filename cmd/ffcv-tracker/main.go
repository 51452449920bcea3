package main

import (
	"os"
	_ "time/tzdata"

	"github.com/pfrederiksen/ffcv-tracker/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
