package web

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"

	"staysearch/metrics"
	"staysearch/models"
	"staysearch/sessions"
	"staysearch/state"
	"staysearch/web/pages/listings"
)

const requestTimeout = 5 * time.Second

var (
	errListingNotFound = errors.New("listing not found")
	errUnknownFilter   = errors.New("unknown filter")
)

// App holds the dependencies of the HTTP handlers
type App struct {
	Config   models.Config
	Listings models.ListingProvider
	Sessions sessions.Store
	locker   sessions.Locker
	clock    func() time.Time
}

func NewApp(cfg models.Config, provider models.ListingProvider, store sessions.Store) *App {
	return &App{Config: cfg, Listings: provider, Sessions: store, clock: time.Now}
}

// Now is the reference time for date validation
func (a *App) Now() time.Time {
	return a.clock()
}

func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), requestTimeout)
}

// initialOptions maps the query parameters of a session's first request to its starting state
func (a *App) initialOptions(c rweb.Context) state.HomeOptions {
	opts := state.HomeOptions{PageSize: a.Config.PageSize}
	req := c.Request()

	if v := req.QueryParam("view"); v != "" {
		if mode, err := state.ParseViewMode(v); err == nil {
			opts.InitialView = mode
		}
	}
	if f := req.QueryParam("filters"); f != "" {
		for _, id := range strings.Split(f, ",") {
			if id = strings.TrimSpace(id); state.IsFilterChip(id) {
				opts.InitialFilters = append(opts.InitialFilters, id)
			}
		}
	}
	if s := req.QueryParam("sidebar"); s != "" {
		opts.ShowFilterSidebar, _ = strconv.ParseBool(s)
	}
	opts.InitialSearchLocation = req.QueryParam("location")
	return opts
}

func (a *App) load(ctx context.Context, c rweb.Context, id string) (*state.Home, error) {
	home, found, err := a.Sessions.Load(ctx, id)
	if err != nil {
		return nil, serr.Wrap(err, "failed to load session state")
	}
	if !found {
		home = state.NewHome(a.initialOptions(c))
	}
	return home, nil
}

// CurrentHome returns the request session's state without changing it
func (a *App) CurrentHome(c rweb.Context) (*state.Home, error) {
	ctx, cancel := requestContext()
	defer cancel()
	return a.load(ctx, c, sessionID(c))
}

// UpdateHome runs one transition on the session's state under the session lock and saves it.
// When fn fails nothing is saved; the partially updated state is still returned for rendering.
func (a *App) UpdateHome(c rweb.Context, event string, fn func(h *state.Home) error) (*state.Home, error) {
	ctx, cancel := requestContext()
	defer cancel()

	id := sessionID(c)
	unlock := a.locker.Lock(id)
	defer unlock()

	home, err := a.load(ctx, c, id)
	if err != nil {
		return nil, err
	}
	if err = fn(home); err != nil {
		return home, err
	}
	if err = a.Sessions.Save(ctx, id, home); err != nil {
		return nil, serr.Wrap(err, "failed to save session state")
	}
	if event != "" {
		metrics.ObserveUI(event)
	}
	return home, nil
}

// view gathers the listings window and totals for one render
func (a *App) view(h *state.Home, loading bool) (listings.View, error) {
	ctx, cancel := requestContext()
	defer cancel()

	ls, err := a.Listings.Listings(ctx, 0, h.Grid.Loaded)
	if err != nil {
		return listings.View{}, serr.Wrap(err, "failed to query listings")
	}
	total, err := a.Listings.Count(ctx)
	if err != nil {
		return listings.View{}, serr.Wrap(err, "failed to count listings")
	}
	return listings.View{Home: h, Listings: ls, Total: total, IsLoading: loading, Now: a.Now()}, nil
}

// listingExists reports whether id names a listing the provider knows
func (a *App) listingExists(id string) error {
	ctx, cancel := requestContext()
	defer cancel()

	_, found, err := a.Listings.Listing(ctx, id)
	if err != nil {
		return serr.Wrap(err, "failed to look up listing")
	}
	if !found {
		return errListingNotFound
	}
	return nil
}

// statusFor maps a transition error to the HTTP status and the message shown to the user
func statusFor(err error) (int, string) {
	switch {
	case errors.Is(err, state.ErrCheckOutBeforeFloor):
		return http.StatusBadRequest, "Check-out can't be before check-in or today."
	case errors.Is(err, state.ErrGuestsOutOfRange):
		return http.StatusBadRequest, "Choose between 1 and 10 guests."
	case errors.Is(err, state.ErrInvalidDate):
		return http.StatusBadRequest, "Dates must look like 2026-01-31."
	case errors.Is(err, state.ErrUnknownViewMode):
		return http.StatusBadRequest, "Unknown view mode."
	case errors.Is(err, state.ErrUnknownDisplayMode):
		return http.StatusBadRequest, "Unknown layout."
	case errors.Is(err, state.ErrPriceRange):
		return http.StatusBadRequest, "Price range must be between $0 and $1000."
	case errors.Is(err, errListingNotFound):
		return http.StatusNotFound, "Listing not found."
	case errors.Is(err, errUnknownFilter):
		return http.StatusNotFound, "Unknown filter."
	}
	return http.StatusInternalServerError, "Something went wrong."
}

func isHTMX(c rweb.Context) bool {
	return headerValue(c.Request().Headers(), "HX-Request") == "true"
}

// setStatus records the status for the logging middleware as well as writing it
func setStatus(c rweb.Context, status int) {
	c.Set(statusKey, status)
	c.SetStatus(status)
}

// respondHome answers a /ui/* action: the #home region for hx requests, otherwise a redirect home.
// A failed plain-form post re-renders the whole page so the message is visible.
func (a *App) respondHome(c rweb.Context, h *state.Home, status int, message string) error {
	if !isHTMX(c) && status < http.StatusBadRequest {
		c.Response().SetHeader("Location", "/")
		setStatus(c, http.StatusSeeOther)
		return nil
	}

	v, err := a.view(h, false)
	if err != nil {
		logger.LogErr(err, "failed to build view")
		setStatus(c, http.StatusInternalServerError)
		return c.WriteHTML("<div id=\"home\">Something went wrong.</div>")
	}
	v.SearchError = message

	setStatus(c, status)
	if isHTMX(c) {
		return c.WriteHTML(listings.RenderHome(v))
	}
	return c.WriteHTML(listings.NewPage(v).Render())
}

// uiAction builds a /ui/* handler around one state transition
func (a *App) uiAction(event string, fn func(c rweb.Context, h *state.Home) error) rweb.Handler {
	return func(c rweb.Context) error {
		home, err := a.UpdateHome(c, event, func(h *state.Home) error {
			return fn(c, h)
		})
		if err != nil {
			status, message := statusFor(err)
			if status == http.StatusInternalServerError || home == nil {
				logger.LogErr(err, "ui action failed", "event", event, "path", c.Request().Path())
				setStatus(c, http.StatusInternalServerError)
				return c.WriteHTML("<div id=\"home\">Something went wrong.</div>")
			}
			logger.Debug("ui action rejected", "event", event, "error", err.Error())
			return a.respondHome(c, home, status, message)
		}
		return a.respondHome(c, home, http.StatusOK, "")
	}
}
