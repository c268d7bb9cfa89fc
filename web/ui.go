package web

import (
	"net/http"
	"strconv"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"

	"staysearch/state"
	"staysearch/web/pages/listings"
)

// HomePage handles GET / - the full page for the session.
// A new session is created from the query parameters and saved right away.
func (a *App) HomePage(c rweb.Context) error {
	home, err := a.UpdateHome(c, "", func(h *state.Home) error { return nil })
	if err != nil {
		logger.LogErr(err, "failed to load home state")
		setStatus(c, http.StatusInternalServerError)
		return c.WriteHTML("<h1>500 - Internal Server Error</h1>")
	}

	v, err := a.view(home, a.Config.DeferGrid)
	if err != nil {
		logger.LogErr(err, "failed to build home view")
		setStatus(c, http.StatusInternalServerError)
		return c.WriteHTML("<h1>500 - Internal Server Error</h1>")
	}
	return c.WriteHTML(listings.NewPage(v).Render())
}

// GridPartial handles GET /partials/grid - the loaded property grid
func (a *App) GridPartial(c rweb.Context) error {
	home, err := a.CurrentHome(c)
	if err != nil {
		logger.LogErr(err, "failed to load home state")
		setStatus(c, http.StatusInternalServerError)
		return c.WriteHTML("<div>Failed to load properties</div>")
	}
	v, err := a.view(home, false)
	if err != nil {
		logger.LogErr(err, "failed to build grid view")
		setStatus(c, http.StatusInternalServerError)
		return c.WriteHTML("<div>Failed to load properties</div>")
	}
	return c.WriteHTML(listings.RenderGrid(v))
}

// SetViewMode handles POST /ui/view/:mode
func (a *App) SetViewMode(c rweb.Context) error {
	return a.uiAction("view", func(c rweb.Context, h *state.Home) error {
		mode, err := state.ParseViewMode(c.Request().Param("mode"))
		if err != nil {
			return err
		}
		h.SetViewMode(mode)
		return nil
	})(c)
}

// ToggleFilter handles POST /ui/filters/:id/toggle
func (a *App) ToggleFilter(c rweb.Context) error {
	return a.uiAction("filter", func(c rweb.Context, h *state.Home) error {
		id := c.Request().Param("id")
		if !state.IsFilterChip(id) {
			return errUnknownFilter
		}
		selected := h.ToggleFilter(id)
		logger.Debug("Filter toggled", "filter", id, "selected", selected)
		return nil
	})(c)
}

// ToggleSidebar handles POST /ui/sidebar/toggle
func (a *App) ToggleSidebar(c rweb.Context) error {
	return a.uiAction("sidebar", func(c rweb.Context, h *state.Home) error {
		h.ToggleSidebar()
		return nil
	})(c)
}

// CloseSidebar handles POST /ui/sidebar/close
func (a *App) CloseSidebar(c rweb.Context) error {
	return a.uiAction("sidebar", func(c rweb.Context, h *state.Home) error {
		h.SetSidebarOpen(false)
		return nil
	})(c)
}

// OpenSheet handles POST /ui/sheet/open
func (a *App) OpenSheet(c rweb.Context) error {
	return a.uiAction("sheet", func(c rweb.Context, h *state.Home) error {
		h.SetSheetOpen(true)
		return nil
	})(c)
}

// CloseSheet handles POST /ui/sheet/close
func (a *App) CloseSheet(c rweb.Context) error {
	return a.uiAction("sheet", func(c rweb.Context, h *state.Home) error {
		h.SetSheetOpen(false)
		return nil
	})(c)
}

// SetSheetPrice handles POST /ui/sheet/price with form fields min and max
func (a *App) SetSheetPrice(c rweb.Context) error {
	return a.uiAction("sheet_price", func(c rweb.Context, h *state.Home) error {
		lo, errLo := strconv.Atoi(c.Request().FormValue("min"))
		hi, errHi := strconv.Atoi(c.Request().FormValue("max"))
		if errLo != nil || errHi != nil {
			return state.ErrPriceRange
		}
		return h.Sheet.SetPriceRange(lo, hi)
	})(c)
}

// ClearSheet handles POST /ui/sheet/clear
func (a *App) ClearSheet(c rweb.Context) error {
	return a.uiAction("sheet_clear", func(c rweb.Context, h *state.Home) error {
		h.Sheet.ClearAll()
		return nil
	})(c)
}

// Search handles POST /ui/search
func (a *App) Search(c rweb.Context) error {
	return a.uiAction("search", func(c rweb.Context, h *state.Home) error {
		req := c.Request()
		in := state.SearchInput{
			Location: req.FormValue("location"),
			CheckIn:  req.FormValue("check_in"),
			CheckOut: req.FormValue("check_out"),
		}
		if g := req.FormValue("guests"); g != "" {
			n, err := strconv.Atoi(g)
			if err != nil || n == 0 {
				return state.ErrGuestsOutOfRange
			}
			in.Guests = n
		}
		if err := h.Search.Apply(in, a.Now()); err != nil {
			return err
		}
		h.SubmitSearch()
		return nil
	})(c)
}

// ClickMarker handles POST /ui/map/markers/:id/click
func (a *App) ClickMarker(c rweb.Context) error {
	return a.uiAction("marker_click", func(c rweb.Context, h *state.Home) error {
		id := c.Request().Param("id")
		if err := a.listingExists(id); err != nil {
			return err
		}
		h.ClickMarker(id)
		return nil
	})(c)
}

// HoverMarker handles POST /ui/map/markers/:id/hover
func (a *App) HoverMarker(c rweb.Context) error {
	return a.uiAction("marker_hover", func(c rweb.Context, h *state.Home) error {
		id := c.Request().Param("id")
		if err := a.listingExists(id); err != nil {
			return err
		}
		h.Map.Hover(id)
		return nil
	})(c)
}

// ClearHover handles POST /ui/map/hover/clear
func (a *App) ClearHover(c rweb.Context) error {
	return a.uiAction("marker_leave", func(c rweb.Context, h *state.Home) error {
		h.Map.Leave()
		return nil
	})(c)
}

// ZoomIn handles POST /ui/map/zoom/in
func (a *App) ZoomIn(c rweb.Context) error {
	return a.uiAction("zoom", func(c rweb.Context, h *state.Home) error {
		h.ZoomIn()
		return nil
	})(c)
}

// ZoomOut handles POST /ui/map/zoom/out
func (a *App) ZoomOut(c rweb.Context) error {
	return a.uiAction("zoom", func(c rweb.Context, h *state.Home) error {
		h.ZoomOut()
		return nil
	})(c)
}

// SetGridDisplay handles POST /ui/grid/display/:mode
func (a *App) SetGridDisplay(c rweb.Context) error {
	return a.uiAction("grid_display", func(c rweb.Context, h *state.Home) error {
		mode, err := state.ParseDisplayMode(c.Request().Param("mode"))
		if err != nil {
			return err
		}
		h.Grid.Display = mode
		return nil
	})(c)
}

// ToggleFavorite handles POST /ui/favorites/:id/toggle
func (a *App) ToggleFavorite(c rweb.Context) error {
	return a.uiAction("favorite", func(c rweb.Context, h *state.Home) error {
		id := c.Request().Param("id")
		if err := a.listingExists(id); err != nil {
			return err
		}
		h.Grid.ToggleFavorite(id)
		return nil
	})(c)
}

// LoadMore handles POST /ui/load-more - widens the session's listing window by one page
func (a *App) LoadMore(c rweb.Context) error {
	return a.uiAction("load_more", func(c rweb.Context, h *state.Home) error {
		ctx, cancel := requestContext()
		defer cancel()

		total, err := a.Listings.Count(ctx)
		if err != nil {
			return err
		}
		loaded := h.Grid.LoadMore(a.Config.PageSize, total)
		logger.Debug("More listings loaded", "loaded", loaded, "total", total)
		return nil
	})(c)
}
