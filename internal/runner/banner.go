package runner

import (
	"github.com/projectdiscovery/gologger"
)

var banner = (`
                         ___        ____
  ________  ____ ____  _|_  |______/ _/_____ _
 / ___/ _ \/ __ '/ _ \/ __//_  __/ __/ __/ _ '/
/ /  /  __/ /_/ /  __/ /__  / / / / / / / /_/ /
\_/   \___/\__, /\___/\___/ /_/ /_/ /_/  \__,_/
          /____/
`)

var version = "v0.1.0"

// showBanner is used to show the banner to the user
func showBanner() {
	gologger.Print().Msgf("%s\n", banner)
	gologger.Print().Msgf("\t\tregex tree to NFA, and back again\n\n")
}
