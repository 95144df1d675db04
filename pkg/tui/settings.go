package tui

import (
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/ossianhempel/sl-cli/pkg/config"
)

// runSettingsView edits the persisted configuration interactively.
func runSettingsView() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Default origin").
				Description("Used by 'sl plan' when --from is omitted").
				Value(&cfg.Origin),
			huh.NewInput().
				Title("Home").
				Description("Resolved when you plan to/from \"home\"").
				Value(&cfg.Home),
			huh.NewInput().
				Title("Work").
				Description("Resolved when you plan to/from \"work\"").
				Value(&cfg.Work),
			huh.NewInput().
				Title("Timezone").
				Description("IANA zone, e.g. Europe/Stockholm; empty means local").
				Value(&cfg.Timezone),
		),
	).WithTheme(theme())

	if err := form.Run(); err != nil {
		return err
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render("✅ Settings saved to ~/.sl-cli.json"))
	return nil
}
