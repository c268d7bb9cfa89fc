package models

import (
	"fmt"
	"math"
)

// Coordinates is a latitude/longitude pair in decimal degrees
type Coordinates struct {
	Lat float64 `json:"lat" msgpack:"lat"`
	Lng float64 `json:"lng" msgpack:"lng"`
}

// Listing describes one rentable property.
// Listings are immutable once handed out by a ListingProvider; per-session view state
// (selection, hover, favorites) is tracked by id in the state package instead.
type Listing struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Location    string       `json:"location"`
	Price       float64      `json:"price"`
	Rating      float64      `json:"rating"`
	ReviewCount int          `json:"review_count"`
	Images      []string     `json:"images"`
	IsSuperhost bool         `json:"is_superhost"`
	Dates       string       `json:"dates"`
	Coordinates *Coordinates `json:"coordinates,omitempty"`
}

// HasCoordinates reports whether the listing can be placed on the map
func (l Listing) HasCoordinates() bool {
	return l.Coordinates != nil
}

// PriceLabel renders the nightly price as whole currency units, e.g. "$189"
func (l Listing) PriceLabel() string {
	return fmt.Sprintf("$%d", int64(math.Round(math.Max(l.Price, 0))))
}

// RatingLabel renders the rating with two decimals, e.g. "4.90"
func (l Listing) RatingLabel() string {
	r := math.Min(math.Max(l.Rating, 0), 5)
	return fmt.Sprintf("%.2f", r)
}

// FirstImage returns the first image reference, or "" when the listing has none
func (l Listing) FirstImage() string {
	if len(l.Images) == 0 {
		return ""
	}
	return l.Images[0]
}

// WithCoordinates returns the listings that can be placed on a map, in their original order.
// Listings lacking coordinates are dropped here so that no projection math ever runs on them.
func WithCoordinates(listings []Listing) []Listing {
	out := make([]Listing, 0, len(listings))
	for _, l := range listings {
		if l.HasCoordinates() {
			out = append(out, l)
		}
	}
	return out
}

// FindListing looks up a listing by id in a slice
func FindListing(listings []Listing, id string) (Listing, bool) {
	for _, l := range listings {
		if l.ID == id {
			return l, true
		}
	}
	return Listing{}, false
}
