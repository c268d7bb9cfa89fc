package state

import "errors"

// Mobile filter sheet price slider
const (
	SheetPriceFloor      = 0
	SheetPriceCeiling    = 1000
	SheetPriceStep       = 10
	SheetDefaultPriceMin = 50
	SheetDefaultPriceMax = 500
)

var ErrPriceRange = errors.New("price range must satisfy 0 <= min <= max <= 1000")

// SheetState is the mobile filter sheet's own price range
type SheetState struct {
	PriceMin int `msgpack:"price_min" json:"price_min"`
	PriceMax int `msgpack:"price_max" json:"price_max"`
}

func NewSheetState() SheetState {
	return SheetState{PriceMin: SheetDefaultPriceMin, PriceMax: SheetDefaultPriceMax}
}

// SetPriceRange snaps both ends to the slider step and stores them
func (s *SheetState) SetPriceRange(min, max int) error {
	if min < SheetPriceFloor || max > SheetPriceCeiling || min > max {
		return ErrPriceRange
	}
	s.PriceMin = snapToStep(min)
	s.PriceMax = snapToStep(max)
	return nil
}

// ClearAll restores the default range
func (s *SheetState) ClearAll() {
	*s = NewSheetState()
}

func snapToStep(v int) int {
	return (v + SheetPriceStep/2) / SheetPriceStep * SheetPriceStep
}
