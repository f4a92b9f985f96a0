package main

import (
	"os"

	"github.com/projectdiscovery/gologger"

	"github.com/Malyuk-afk/regular-expression-to-NFA/internal/runner"
)

func main() {
	opts := runner.ParseFlags()

	if err := runner.Run(opts, os.Stdout); err != nil {
		gologger.Fatal().Msgf("%s", err)
	}
}
