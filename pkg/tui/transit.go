package tui

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"

	"github.com/ossianhempel/sl-cli/pkg/config"
	"github.com/ossianhempel/sl-cli/pkg/render"
	"github.com/ossianhempel/sl-cli/pkg/sl"
)

// runPlanView asks for the two endpoints and prints the trip proposals.
func runPlanView() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	from := cfg.Origin
	var to string

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("From (stop, address, lat,lon, or home/work)").
				Value(&from),
			huh.NewInput().
				Title("To").
				Value(&to),
		),
	).WithTheme(theme())

	if err := form.Run(); err != nil {
		return err
	}
	if to == "" || from == "" {
		fmt.Println(errorStyle.Render("Both places are needed to plan a trip."))
		return nil
	}

	client := sl.NewClient()

	var fromName, toName string
	var trips []sl.TripProposal
	var planErr error
	_ = spinner.New().
		Title(fmt.Sprintf("Planning trip to %s...", to)).
		Action(func() {
			var origin, destination sl.Place
			origin, fromName, planErr = lookupPlace(client, cfg, from)
			if planErr != nil {
				return
			}
			destination, toName, planErr = lookupPlace(client, cfg, to)
			if planErr != nil {
				return
			}

			raws, err := client.FetchTrips(sl.TripQuery{
				From: origin, To: destination, Trips: 3, MaxChanges: -1,
			})
			if err != nil {
				planErr = err
				return
			}
			trips = sl.ParseJourneys(raws, loc)
		}).
		Run()

	if planErr != nil {
		return planErr
	}
	return render.New(render.ModeHuman, loc, false).Trips(os.Stdout, fromName, toName, trips)
}

// runDeparturesView asks for a stop and prints its live departures.
func runDeparturesView() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	loc, err := cfg.Location()
	if err != nil {
		return err
	}

	var query string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Which stop? (name or site ID)").
				Value(&query),
		),
	).WithTheme(theme())

	if err := form.Run(); err != nil {
		return err
	}
	if query == "" {
		fmt.Println(errorStyle.Render("A stop name or ID is needed."))
		return nil
	}

	client := sl.NewClient()

	var site sl.Site
	var deps []sl.Departure
	var fetchErr error
	_ = spinner.New().
		Title("Fetching live departures...").
		Action(func() {
			sites, err := client.FetchSites()
			if err != nil {
				fetchErr = err
				return
			}
			var ok bool
			site, ok = sl.ResolveSite(query, sites)
			if !ok {
				fetchErr = fmt.Errorf("no stop matching %q", query)
				return
			}
			raw, err := client.FetchDepartures(site.ID, 60)
			if err != nil {
				fetchErr = err
				return
			}
			deps = sl.ParseDepartures(raw, time.Now().In(loc))
		}).
		Run()

	if fetchErr != nil {
		return fetchErr
	}
	return render.New(render.ModeHuman, loc, false).Departures(os.Stdout, site.Name, deps)
}

// lookupPlace mirrors the plan command's place resolution for the TUI.
func lookupPlace(client *sl.Client, cfg *config.Config, arg string) (sl.Place, string, error) {
	if value, named := cfg.Place(arg); named {
		if value == "" {
			return nil, "", fmt.Errorf("%q is not configured yet", arg)
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
		return nil, "", fmt.Errorf("no stops or addresses found for %q", arg)
	}
	return sl.PlaceID{ID: best.ID, Name: best.Name}, best.Name, nil
}
