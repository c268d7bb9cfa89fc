// Package api serves the JSON surface of the listing browser: listing reads,
// the session's UI state and search submission.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"

	"staysearch/models"
	"staysearch/state"
)

// StatusKey is the request context key the response status is recorded under
// so that request logging can read it back
const StatusKey = "status"

const lookupTimeout = 5 * time.Second

// APIResponse provides a consistent JSON response structure for all API endpoints.
// Success responses include data, error responses include an error message.
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func writeSuccess(ctx rweb.Context, status int, data interface{}) error {
	ctx.Set(StatusKey, status)
	ctx.SetStatus(status)
	return ctx.WriteJSON(APIResponse{Success: true, Data: data})
}

func writeError(ctx rweb.Context, status int, message string) error {
	ctx.Set(StatusKey, status)
	ctx.SetStatus(status)
	return ctx.WriteJSON(APIResponse{Success: false, Error: message})
}

func requestContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), lookupTimeout)
}

// Sessions gives handlers access to the requesting session's UI state
type Sessions interface {
	CurrentHome(c rweb.Context) (*state.Home, error)
	UpdateHome(c rweb.Context, event string, fn func(h *state.Home) error) (*state.Home, error)
	Now() time.Time
}

// Handlers serves the listing and session endpoints
type Handlers struct {
	listings models.ListingProvider
	sessions Sessions
}

func NewHandlers(listings models.ListingProvider, sessions Sessions) *Handlers {
	return &Handlers{listings: listings, sessions: sessions}
}

// ListingPage is the body of GET /api/v1/listings
type ListingPage struct {
	Listings []models.Listing `json:"listings"`
	Total    int              `json:"total"`
	Offset   int              `json:"offset"`
	Limit    int              `json:"limit"`
}

// Health handles GET /api/v1/health
func Health(ctx rweb.Context) error {
	return writeSuccess(ctx, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "staysearch",
	})
}

// MaxListingsLimit caps the limit parameter of GET /api/v1/listings
const MaxListingsLimit = 500

// ListListings handles GET /api/v1/listings
//
// Query parameters:
//   - limit: Maximum number of results (default: no limit, capped at MaxListingsLimit)
//   - offset: Number of results to skip (default: 0)
func (h *Handlers) ListListings(ctx rweb.Context) error {
	limit := 0 // 0 means no limit
	offset := 0

	if limitStr := ctx.Request().QueryParam("limit"); limitStr != "" {
		parsedLimit, err := strconv.Atoi(limitStr)
		if err != nil || parsedLimit < 0 {
			return writeError(ctx, http.StatusBadRequest, "invalid limit parameter")
		}
		limit = min(parsedLimit, MaxListingsLimit)
	}
	if offsetStr := ctx.Request().QueryParam("offset"); offsetStr != "" {
		parsedOffset, err := strconv.Atoi(offsetStr)
		if err != nil || parsedOffset < 0 {
			return writeError(ctx, http.StatusBadRequest, "invalid offset parameter")
		}
		offset = parsedOffset
	}

	c, cancel := requestContext()
	defer cancel()

	listings, err := h.listings.Listings(c, offset, limit)
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to list listings"), "listing source error")
		return writeError(ctx, http.StatusInternalServerError, "listing source error")
	}
	total, err := h.listings.Count(c)
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to count listings"), "listing source error")
		return writeError(ctx, http.StatusInternalServerError, "listing source error")
	}

	return writeSuccess(ctx, http.StatusOK, ListingPage{Listings: listings, Total: total, Offset: offset, Limit: limit})
}

// GetListing handles GET /api/v1/listings/:id
func (h *Handlers) GetListing(ctx rweb.Context) error {
	id := ctx.Request().Param("id")

	c, cancel := requestContext()
	defer cancel()

	listing, found, err := h.listings.Listing(c, id)
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to get listing"), "listing source error", "id", id)
		return writeError(ctx, http.StatusInternalServerError, "listing source error")
	}
	if !found {
		return writeError(ctx, http.StatusNotFound, "listing not found")
	}
	return writeSuccess(ctx, http.StatusOK, listing)
}

// GetState handles GET /api/v1/state - the session's UI state
func (h *Handlers) GetState(ctx rweb.Context) error {
	home, err := h.sessions.CurrentHome(ctx)
	if err != nil {
		logger.LogErr(err, "failed to load session state")
		return writeError(ctx, http.StatusInternalServerError, "session store error")
	}
	return writeSuccess(ctx, http.StatusOK, home)
}

// Search handles POST /api/v1/search
// The body is a state.SearchInput; the stored search is returned on success.
func (h *Handlers) Search(ctx rweb.Context) error {
	var input state.SearchInput
	if err := json.Unmarshal(ctx.Request().Body(), &input); err != nil {
		logger.LogErr(serr.Wrap(err, "failed to decode request body"), "invalid JSON")
		return writeError(ctx, http.StatusBadRequest, "invalid JSON body")
	}

	var params state.SearchParams
	_, err := h.sessions.UpdateHome(ctx, "search", func(home *state.Home) error {
		if err := home.Search.Apply(input, h.sessions.Now()); err != nil {
			return err
		}
		params = home.SubmitSearch()
		return nil
	})
	if err != nil {
		if msg := validationMessage(err); msg != "" {
			return writeError(ctx, http.StatusBadRequest, msg)
		}
		logger.LogErr(err, "failed to submit search")
		return writeError(ctx, http.StatusInternalServerError, "session store error")
	}
	return writeSuccess(ctx, http.StatusOK, params)
}

// validationMessage names the rejected field, "" when err is not a search validation failure
func validationMessage(err error) string {
	switch {
	case errors.Is(err, state.ErrCheckOutBeforeFloor):
		return "check_out is before the earliest selectable date"
	case errors.Is(err, state.ErrGuestsOutOfRange):
		return "guests must be between 1 and 10"
	case errors.Is(err, state.ErrInvalidDate):
		return "dates must use the YYYY-MM-DD format"
	}
	return ""
}
