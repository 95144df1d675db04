package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ossianhempel/sl-cli/pkg/config"
	"github.com/ossianhempel/sl-cli/pkg/exporter"
	"github.com/ossianhempel/sl-cli/pkg/sl"
)

// optimizeMap translates the user-facing preference names to the planner's
// route types.
var optimizeMap = map[string]sl.Optimize{
	"time":    sl.OptimizeTime,
	"changes": sl.OptimizeChanges,
	"walk":    sl.OptimizeWalk,
}

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Plan a trip between two places",
	Long: `Plan a trip between two places. A place is a stop or station name, an
address, a "lat,lon" coordinate, or one of the configured names "home" and
"work". With no --from, the configured default origin is used.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		to, _ := cmd.Flags().GetString("to")
		from, _ := cmd.Flags().GetString("from")
		at, _ := cmd.Flags().GetString("at")
		arrive, _ := cmd.Flags().GetBool("arrive")
		trips, _ := cmd.Flags().GetInt("trips")
		optimize, _ := cmd.Flags().GetString("optimize")
		maxChanges, _ := cmd.Flags().GetInt("max-changes")
		exportICS, _ := cmd.Flags().GetString("export-ics")

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		loc, err := cfg.Location()
		if err != nil {
			return err
		}

		query := sl.TripQuery{Trips: trips, MaxChanges: maxChanges}

		if optimize != "" {
			routeType, ok := optimizeMap[optimize]
			if !ok {
				return fmt.Errorf("invalid --optimize %q (valid: time, changes, walk)", optimize)
			}
			query.Optimize = routeType
		}

		if at != "" {
			when, err := sl.ParseWhen(at, loc)
			if err != nil {
				return err
			}
			query.When = when
			query.ArriveBy = arrive
		} else if arrive {
			return fmt.Errorf("--arrive requires --at <datetime>")
		}

		if from == "" {
			from = cfg.Origin
		}
		if from == "" {
			return fmt.Errorf("missing --from and no default origin configured (try 'sl config set origin <place>')")
		}

		client := newClient()

		var fromName, toName string
		var proposals []sl.TripProposal
		var planErr error
		withSpinner(fmt.Sprintf("Planning trip to %s...", to), func() {
			var origin, destination sl.Place
			origin, fromName, planErr = resolvePlace(client, cfg, from, "from")
			if planErr != nil {
				return
			}
			destination, toName, planErr = resolvePlace(client, cfg, to, "to")
			if planErr != nil {
				return
			}
			query.From = origin
			query.To = destination

			raws, err := client.FetchTrips(query)
			if err != nil {
				planErr = err
				return
			}
			proposals = sl.ParseJourneys(raws, loc)
		})
		if planErr != nil {
			return planErr
		}

		if err := newRenderer(loc).Trips(os.Stdout, fromName, toName, proposals); err != nil {
			return err
		}

		if exportICS != "" {
			if len(proposals) == 0 {
				return fmt.Errorf("no trip to export")
			}
			file, err := os.Create(exportICS)
			if err != nil {
				return fmt.Errorf("failed to create output file: %w", err)
			}
			defer file.Close()
			if err := exporter.WriteTripICS(proposals[0], fromName, toName, file); err != nil {
				return fmt.Errorf("failed to write calendar: %w", err)
			}
			if !flagQuiet {
				fmt.Fprintf(os.Stderr, "Exported first trip to %s\n", exportICS)
			}
		}
		return nil
	},
}

// resolvePlace turns a place argument into a planner request parameter:
// the configured home/work value, a raw coordinate, or the best stop-finder
// candidate for a text query.
func resolvePlace(client *sl.Client, cfg *config.Config, arg, flagName string) (sl.Place, string, error) {
	if value, named := cfg.Place(arg); named {
		if value == "" {
			return nil, "", fmt.Errorf("%q is not configured (try 'sl config set %s <place>')", arg, arg)
		}
		arg = value
	}

	if lat, lon, ok := sl.ParseCoord(arg); ok {
		return sl.PlaceCoord{Lat: lat, Lon: lon}, arg, nil
	}

	locations, err := client.FindLocations(arg)
	if err != nil {
		return nil, "", err
	}
	best, ok := sl.PickLocation(locations)
	if !ok {
		return nil, "", fmt.Errorf("no stops or addresses found for --%s %q", flagName, arg)
	}
	return sl.PlaceID{ID: best.ID, Name: best.Name}, best.Name, nil
}

func init() {
	rootCmd.AddCommand(planCmd)

	planCmd.Flags().StringP("to", "t", "", "Destination place (required)")
	planCmd.Flags().StringP("from", "f", "", "Origin place (defaults to configured origin)")
	planCmd.Flags().String("at", "", "Target date/time (2006-01-02, 15:04, or 2006-01-02 15:04)")
	planCmd.Flags().Bool("depart", false, "Treat --at as depart-after (default)")
	planCmd.Flags().Bool("arrive", false, "Treat --at as arrive-before")
	planCmd.Flags().IntP("trips", "n", 3, "Number of trip proposals (1-3)")
	planCmd.Flags().String("optimize", "", "Rank proposals by: time, changes, or walk")
	planCmd.Flags().Int("max-changes", -1, "Maximum number of interchanges")
	planCmd.Flags().String("export-ics", "", "Also write the first proposal to an .ics file")
	planCmd.MarkFlagRequired("to")
	planCmd.MarkFlagsMutuallyExclusive("depart", "arrive")
}
