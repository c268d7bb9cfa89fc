// Package fixtures holds the sample listings used by the demo entry points and tests.
// Nothing in the rendering or state packages falls back to these values.
package fixtures

import "staysearch/models"

// DefaultCenter is the map center the sample set is laid out around
var DefaultCenter = models.Coordinates{Lat: 39.0968, Lng: -120.0324}

// Listings returns the four-listing sample set; every listing carries coordinates
func Listings() []models.Listing {
	return []models.Listing{
		{
			ID:          "1",
			Title:       "Cozy Mountain Cabin",
			Location:    "Lake Tahoe, California",
			Price:       189,
			Rating:      4.92,
			ReviewCount: 128,
			Images: []string{
				"https://images.unsplash.com/photo-1518780664697-55e3ad937233?w=800&q=80",
				"https://images.unsplash.com/photo-1542718610-a1d656d1884c?w=800&q=80",
				"https://images.unsplash.com/photo-1568605114967-8130f3a36994?w=800&q=80",
			},
			IsSuperhost: true,
			Dates:       "Nov 12-17",
			Coordinates: &models.Coordinates{Lat: 39.0968, Lng: -120.0324},
		},
		{
			ID:          "2",
			Title:       "Beachfront Paradise",
			Location:    "Malibu, California",
			Price:       350,
			Rating:      4.85,
			ReviewCount: 96,
			Images: []string{
				"https://images.unsplash.com/photo-1499793983690-e29da59ef1c2?w=800&q=80",
				"https://images.unsplash.com/photo-1520250497591-112f2f40a3f4?w=800&q=80",
				"https://images.unsplash.com/photo-1584132967334-10e028bd69f7?w=800&q=80",
			},
			IsSuperhost: false,
			Dates:       "Dec 1-6",
			Coordinates: &models.Coordinates{Lat: 39.1168, Lng: -120.1124},
		},
		{
			ID:          "3",
			Title:       "Modern Downtown Loft",
			Location:    "New York, New York",
			Price:       275,
			Rating:      4.78,
			ReviewCount: 214,
			Images: []string{
				"https://images.unsplash.com/photo-1502672260266-1c1ef2d93688?w=800&q=80",
				"https://images.unsplash.com/photo-1554995207-c18c203602cb?w=800&q=80",
				"https://images.unsplash.com/photo-1536376072261-38c75010e6c9?w=800&q=80",
			},
			IsSuperhost: true,
			Dates:       "Jan 5-10",
			Coordinates: &models.Coordinates{Lat: 39.0768, Lng: -120.0624},
		},
		{
			ID:          "4",
			Title:       "Rustic Farmhouse Retreat",
			Location:    "Hudson Valley, New York",
			Price:       195,
			Rating:      4.96,
			ReviewCount: 87,
			Images: []string{
				"https://images.unsplash.com/photo-1505843513577-22bb7d21e455?w=800&q=80",
				"https://images.unsplash.com/photo-1510798831971-661eb04b3739?w=800&q=80",
				"https://images.unsplash.com/photo-1575517111839-3a3843ee7f5d?w=800&q=80",
			},
			IsSuperhost: true,
			Dates:       "Oct 20-25",
			Coordinates: &models.Coordinates{Lat: 39.1068, Lng: -120.0824},
		},
	}
}

// ExtendedListings returns the sample set plus two listings without coordinates.
// The extra listings show up in the grid but never on the map.
func ExtendedListings() []models.Listing {
	return append(Listings(),
		models.Listing{
			ID:          "5",
			Title:       "Luxury Penthouse with Views",
			Location:    "Miami, Florida",
			Price:       425,
			Rating:      4.9,
			ReviewCount: 156,
			Images: []string{
				"https://images.unsplash.com/photo-1522708323590-d24dbb6b0267?w=800&q=80",
				"https://images.unsplash.com/photo-1560448204-603b3fc33ddc?w=800&q=80",
				"https://images.unsplash.com/photo-1560185007-c5ca9d2c0862?w=800&q=80",
			},
			IsSuperhost: false,
			Dates:       "Feb 14-19",
		},
		models.Listing{
			ID:          "6",
			Title:       "Charming Cottage",
			Location:    "Portland, Oregon",
			Price:       165,
			Rating:      4.88,
			ReviewCount: 112,
			Images: []string{
				"https://images.unsplash.com/photo-1518733057094-95b53143d2a7?w=800&q=80",
				"https://images.unsplash.com/photo-1523217582562-09d0def993a6?w=800&q=80",
				"https://images.unsplash.com/photo-1484154218962-a197022b5858?w=800&q=80",
			},
			IsSuperhost: true,
			Dates:       "Mar 3-8",
		},
	)
}
