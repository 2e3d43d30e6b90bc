package main

import (
	"os"

	"github.com/ctfwatch/ctftime-bot/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(cli.ExitError)
	}
}
