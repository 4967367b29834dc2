package main

import (
	"os"

	"github.com/diegoclair/weekend-bot/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
