// Package runner wires the command-line driver: flag parsing, scenario
// loading and the report loop.
package runner

import (
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-yaml"
	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"
	errorutil "github.com/projectdiscovery/utils/errors"
	fileutil "github.com/projectdiscovery/utils/file"

	regexnfa "github.com/Malyuk-afk/regular-expression-to-NFA"
)

// Options holds the driver configuration.
type Options struct {
	ScenarioFile string // YAML scenario suite; empty means the embedded default
	PrintNFA     bool
	Verbose      bool
	Silent       bool
}

// ParseFlags parses the command line into Options.
func ParseFlags() *Options {
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription(`Compile regular expression trees to NFAs and run inputs against them.`)

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.ScenarioFile, "scenarios", "s", "", "scenario suite to run (yaml, defaults to the built-in suite)"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.BoolVarP(&opts.PrintNFA, "print-nfa", "n", false, "print the compiled state table for every pattern"),
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose output"),
		flagSet.BoolVar(&opts.Silent, "silent", false, "display results only"),
		flagSet.CallbackVar(printVersion, "version", "display driver version"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("Could not read flags: %s\n", err)
	}

	if opts.Silent {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelSilent)
	} else if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}
	if !opts.Silent {
		showBanner()
	}
	return opts
}

func printVersion() {
	gologger.Info().Msgf("Current version: %s", version)
	os.Exit(0)
}

// Run executes every scenario of the configured suite, writing result
// lines to w. It returns the first hard failure; pattern and input
// problems are fatal, as is a suite that cannot be loaded.
func Run(opts *Options, w io.Writer) error {
	suite, err := loadSuite(opts.ScenarioFile)
	if err != nil {
		return err
	}

	for i, scenario := range suite.Scenarios {
		tree, err := scenario.Pattern.Tree()
		if err != nil {
			return errorutil.NewWithErr(err).Msgf("scenario %d (%s): bad pattern", i, scenario.Description)
		}

		gologger.Info().Msgf("pattern: %s", tree.String())
		re, err := regexnfa.Compile(tree)
		if err != nil {
			return errorutil.NewWithErr(err).Msgf("scenario %d (%s): compile failed", i, scenario.Description)
		}
		if opts.PrintNFA {
			fmt.Fprintf(w, "%s", re.NFA().String())
		}

		for _, tc := range scenario.Tests {
			ok, err := re.MatchString(tc.Input)
			if err != nil {
				return errorutil.NewWithErr(err).Msgf("scenario %d (%s): input %q", i, scenario.Description, tc.Input)
			}
			if ok {
				fmt.Fprintf(w, "Yes, %q is %s.\n", tc.Input, scenario.Description)
			} else {
				fmt.Fprintf(w, "No, %q is not %s.\n", tc.Input, scenario.Description)
			}
			if tc.Matches != nil && *tc.Matches != ok {
				gologger.Warning().Msgf("scenario %d (%s): input %q expected matches=%v, got %v",
					i, scenario.Description, tc.Input, *tc.Matches, ok)
			}
		}
	}
	return nil
}

// loadSuite reads the scenario suite from path, or the embedded default
// suite when path is empty.
func loadSuite(path string) (*regexnfa.Suite, error) {
	data := regexnfa.DefaultScenariosBin
	if path != "" {
		if !fileutil.FileExists(path) {
			return nil, errorutil.New("scenario file %q does not exist", path)
		}
		bin, err := os.ReadFile(path)
		if err != nil {
			return nil, errorutil.NewWithErr(err).Msgf("failed to read scenario file %q", path)
		}
		data = bin
	}

	var suite regexnfa.Suite
	if err := yaml.Unmarshal(data, &suite); err != nil {
		gologger.Error().Msgf("scenario yaml syntax error.\n %v\n.", yaml.FormatError(err, true, true))
		return nil, errorutil.NewWithErr(err).Msgf("failed to parse scenario suite")
	}
	if len(suite.Scenarios) == 0 {
		return nil, errorutil.New("scenario suite is empty")
	}
	return &suite, nil
}
