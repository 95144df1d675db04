package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/ossianhempel/sl-cli/pkg/config"
	"github.com/ossianhempel/sl-cli/pkg/sl"
)

var nextCmd = &cobra.Command{
	Use:   "next",
	Short: "Show upcoming departures for a stop",
	Long: `Show upcoming departures for a stop, found either by name or site ID
(--stop) or by picking the stop closest to a coordinate (--near).`,
	RunE: func(cmd *cobra.Command, args []string) error {
		stop, _ := cmd.Flags().GetString("stop")
		near, _ := cmd.Flags().GetString("near")
		minutes, _ := cmd.Flags().GetInt("minutes")

		if stop == "" && near == "" {
			return fmt.Errorf("must specify a stop with --stop <nameOrId> or --near <lat,lon>")
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		loc, err := cfg.Location()
		if err != nil {
			return err
		}

		client := newClient()

		var site sl.Site
		var deps []sl.Departure
		var fetchErr error
		withSpinner("Fetching live departures...", func() {
			sites, err := client.FetchSites()
			if err != nil {
				fetchErr = err
				return
			}

			if near != "" {
				lat, lon, ok := sl.ParseCoord(near)
				if !ok {
					fetchErr = fmt.Errorf("invalid coordinates %q (expected lat,lon)", near)
					return
				}
				site, ok = sl.NearestSite(lat, lon, sites)
				if !ok {
					fetchErr = fmt.Errorf("no stops with coordinates available")
					return
				}
			} else {
				var ok bool
				site, ok = sl.ResolveSite(stop, sites)
				if !ok {
					fetchErr = fmt.Errorf("no stop matching %q", stop)
					return
				}
			}

			raw, err := client.FetchDepartures(site.ID, minutes)
			if err != nil {
				fetchErr = err
				return
			}
			deps = sl.ParseDepartures(raw, time.Now().In(loc))
		})
		if fetchErr != nil {
			return fetchErr
		}

		return newRenderer(loc).Departures(os.Stdout, site.Name, deps)
	},
}

func init() {
	rootCmd.AddCommand(nextCmd)

	nextCmd.Flags().StringP("stop", "s", "", "Stop name or site ID")
	nextCmd.Flags().String("near", "", "Coordinate \"lat,lon\"; uses the closest stop")
	nextCmd.Flags().IntP("minutes", "m", 60, "Forecast window in minutes")
	nextCmd.MarkFlagsMutuallyExclusive("stop", "near")
}
