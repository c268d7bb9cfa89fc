package web

import (
	"staysearch/web/api"

	"github.com/rohanthewiz/rweb"
)

// setupRoutes configures all application routes
func setupRoutes(s *rweb.Server, app *App) {
	// Pages and partials - HTML responses
	s.Get("/", app.HomePage)
	s.Get("/partials/grid", app.GridPartial)

	// UI actions - each applies one state transition to the session
	s.Post("/ui/view/:mode", app.SetViewMode)
	s.Post("/ui/filters/:id/toggle", app.ToggleFilter)
	s.Post("/ui/sidebar/toggle", app.ToggleSidebar)
	s.Post("/ui/sidebar/close", app.CloseSidebar)
	s.Post("/ui/sheet/open", app.OpenSheet)
	s.Post("/ui/sheet/close", app.CloseSheet)
	s.Post("/ui/sheet/price", app.SetSheetPrice)
	s.Post("/ui/sheet/clear", app.ClearSheet)
	s.Post("/ui/search", app.Search)
	s.Post("/ui/map/markers/:id/click", app.ClickMarker)
	s.Post("/ui/map/markers/:id/hover", app.HoverMarker)
	s.Post("/ui/map/hover/clear", app.ClearHover)
	s.Post("/ui/map/zoom/in", app.ZoomIn)
	s.Post("/ui/map/zoom/out", app.ZoomOut)
	s.Post("/ui/grid/display/:mode", app.SetGridDisplay)
	s.Post("/ui/favorites/:id/toggle", app.ToggleFavorite)
	s.Post("/ui/load-more", app.LoadMore)

	// API v1 routes - JSON responses
	h := api.NewHandlers(app.Listings, app)
	s.Get("/api/v1/health", api.Health)
	s.Get("/api/v1/listings", h.ListListings)   // Page of listings with total
	s.Get("/api/v1/listings/:id", h.GetListing) // One listing
	s.Get("/api/v1/state", h.GetState)          // Session UI state
	s.Post("/api/v1/search", h.Search)          // JSON search submission
}
