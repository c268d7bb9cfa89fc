package state

import (
	"time"

	"github.com/rohanthewiz/serr"
	"github.com/vmihailenco/msgpack/v5"
)

// Encode serializes a Home for a session store
func Encode(h *Home) ([]byte, error) {
	if h == nil {
		return nil, serr.New("cannot encode nil home state")
	}
	data, err := msgpack.Marshal(h)
	if err != nil {
		return nil, serr.Wrap(err, "failed to encode home state")
	}
	return data, nil
}

// Decode restores a Home written by Encode
func Decode(data []byte) (*Home, error) {
	var h Home
	if err := msgpack.Unmarshal(data, &h); err != nil {
		return nil, serr.Wrap(err, "failed to decode home state")
	}
	if h.Filters.IDs == nil {
		h.Filters.IDs = []string{}
	}
	if h.Grid.Favorites == nil {
		h.Grid.Favorites = map[string]bool{}
	}
	if h.ViewMode == "" {
		h.ViewMode = DefaultViewMode
	}
	if h.Grid.Display == "" {
		h.Grid.Display = DisplayGrid
	}
	// msgpack restores times in the local zone; date inputs work in UTC days
	h.Search.CheckIn = utcDate(h.Search.CheckIn)
	h.Search.CheckOut = utcDate(h.Search.CheckOut)
	return &h, nil
}

func formatOptionalDate(d *time.Time) string {
	if d == nil {
		return ""
	}
	return FormatDate(*d)
}

func utcDate(d time.Time) time.Time {
	if d.IsZero() {
		return time.Time{}
	}
	return d.UTC()
}
