package state

// FilterChip is one category in the horizontal filter bar
type FilterChip struct {
	ID    string
	Label string
}

// FilterChips is the filter bar catalog in display order
var FilterChips = []FilterChip{
	{ID: "houses", Label: "Houses"},
	{ID: "apartments", Label: "Apartments"},
	{ID: "cabins", Label: "Cabins"},
	{ID: "camping", Label: "Camping"},
	{ID: "boats", Label: "Boats"},
	{ID: "castles", Label: "Castles"},
	{ID: "countryside", Label: "Countryside"},
	{ID: "skiing", Label: "Skiing"},
	{ID: "tropical", Label: "Tropical"},
	{ID: "beachfront", Label: "Beachfront"},
	{ID: "breakfast", Label: "Breakfast"},
	{ID: "dining", Label: "Dining"},
}

// IsFilterChip reports whether id is in the chip catalog
func IsFilterChip(id string) bool {
	for _, chip := range FilterChips {
		if chip.ID == id {
			return true
		}
	}
	return false
}
