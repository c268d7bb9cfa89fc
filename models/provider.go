package models

import (
	"context"

	"github.com/rohanthewiz/serr"
)

// ListingProvider is the data source behind the property grid and map.
// Implementations return listings in a stable order so that paging with
// offset/limit is deterministic across requests.
type ListingProvider interface {
	// Listings returns up to limit listings starting at offset.
	// A limit of 0 means no limit.
	Listings(ctx context.Context, offset, limit int) ([]Listing, error)
	// Listing returns the listing with the given id; found is false when absent
	Listing(ctx context.Context, id string) (listing Listing, found bool, err error)
	// Count returns the total number of listings available
	Count(ctx context.Context) (int, error)
}

// StaticProvider serves listings from a fixed slice held in memory
type StaticProvider struct {
	listings []Listing
}

// NewStaticProvider copies the given listings into a new provider
func NewStaticProvider(listings []Listing) *StaticProvider {
	cp := make([]Listing, len(listings))
	copy(cp, listings)
	return &StaticProvider{listings: cp}
}

func (p *StaticProvider) Listings(ctx context.Context, offset, limit int) ([]Listing, error) {
	if err := ctx.Err(); err != nil {
		return nil, serr.Wrap(err, "listing query canceled")
	}
	if offset < 0 || limit < 0 {
		return nil, serr.New("offset and limit must not be negative")
	}
	return pageOf(p.listings, offset, limit), nil
}

func (p *StaticProvider) Listing(ctx context.Context, id string) (Listing, bool, error) {
	if err := ctx.Err(); err != nil {
		return Listing{}, false, serr.Wrap(err, "listing lookup canceled")
	}
	l, ok := FindListing(p.listings, id)
	return l, ok, nil
}

func (p *StaticProvider) Count(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, serr.Wrap(err, "listing count canceled")
	}
	return len(p.listings), nil
}

// pageOf slices listings[offset:offset+limit] with bounds clamped.
// The returned slice is a copy so callers cannot alias provider storage.
func pageOf(listings []Listing, offset, limit int) []Listing {
	if offset >= len(listings) {
		return []Listing{}
	}
	end := len(listings)
	if limit > 0 && limit < end-offset {
		end = offset + limit
	}
	out := make([]Listing, end-offset)
	copy(out, listings[offset:end])
	return out
}
