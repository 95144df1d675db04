package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"

	"github.com/ossianhempel/sl-cli/pkg/render"
	"github.com/ossianhempel/sl-cli/pkg/sl"
)

var (
	flagJSON    bool
	flagPlain   bool
	flagQuiet   bool
	flagVerbose bool
	flagNoColor bool
)

var rootCmd = &cobra.Command{
	Use:   "sl",
	Short: "Plan trips and check departures in Stockholm's public transit",
	Long: `sl is a command-line client for SL, Stockholm's public transport network.
It plans trips between stops, addresses and coordinates, shows live
departures for any stop, and remembers your usual places.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if render.Detect(flagJSON, flagPlain) == render.ModeJSON {
			render.New(render.ModeJSON, time.Local, flagNoColor).Error(os.Stdout, err)
		} else {
			render.New(render.ModeHuman, time.Local, flagNoColor).Error(os.Stderr, err)
		}
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&flagJSON, "json", false, "Output machine-readable JSON")
	rootCmd.PersistentFlags().BoolVar(&flagPlain, "plain", false, "Output tab-separated lines")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress progress output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Log outgoing requests to stderr")
	rootCmd.PersistentFlags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.MarkFlagsMutuallyExclusive("json", "plain")
}

// newRenderer builds the renderer the global flags ask for, formatting
// times in loc.
func newRenderer(loc *time.Location) render.Renderer {
	return render.New(render.Detect(flagJSON, flagPlain), loc, flagNoColor)
}

// newClient builds the API client, wired to stderr logging when --verbose.
func newClient() *sl.Client {
	client := sl.NewClient()
	if flagVerbose {
		client.Logf = func(format string, args ...any) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}
	}
	return client
}

// withSpinner runs fn behind a progress spinner in interactive human mode,
// and directly otherwise (quiet, piped, or machine output).
func withSpinner(title string, fn func()) {
	if flagQuiet || render.Detect(flagJSON, flagPlain) != render.ModeHuman {
		fn()
		return
	}
	_ = spinner.New().Title(title).Action(fn).Run()
}
