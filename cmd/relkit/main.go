package main

import (
	"os"

	"github.com/relkit/relkit/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		cli.ReportError(err)
		os.Exit(cli.ExitCode(err))
	}
}
