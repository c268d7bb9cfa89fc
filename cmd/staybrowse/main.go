// Command staybrowse browses the sample listings in the terminal
package main

import (
	"context"
	"flag"
	"log"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rohanthewiz/logger"

	"staysearch/fixtures"
	"staysearch/models"
	"staysearch/state"
	"staysearch/tui"
)

func main() {
	view := flag.String("view", string(state.DefaultViewMode), "initial view: grid, map or split")
	filters := flag.String("filters", "", "comma separated filter chips to preselect")
	flag.Parse()

	cfg, err := models.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration: ", err)
	}
	if err = cfg.Validate(); err != nil {
		log.Fatal("Invalid configuration: ", err)
	}
	// Log output would draw over the alt screen
	logger.SetLogLevel("error")

	mode, err := state.ParseViewMode(*view)
	if err != nil {
		log.Fatal("Invalid -view: ", err)
	}
	opts := state.HomeOptions{InitialView: mode, PageSize: cfg.PageSize}
	for _, id := range strings.Split(*filters, ",") {
		if id = strings.TrimSpace(id); state.IsFilterChip(id) {
			opts.InitialFilters = append(opts.InitialFilters, id)
		}
	}

	var provider models.ListingProvider = models.NewStaticProvider(fixtures.ExtendedListings())
	if cfg.ListingSource == models.ListingSourceDuckDB {
		duck, err := models.OpenDuckStore()
		if err != nil {
			log.Fatal("Failed to open listing database: ", err)
		}
		defer duck.Close()
		if err = duck.Seed(context.Background(), fixtures.ExtendedListings()); err != nil {
			log.Fatal("Failed to seed listings: ", err)
		}
		provider = duck
	}

	p := tea.NewProgram(tui.New(provider, opts), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatal("Terminal browser failed: ", err)
	}
}
