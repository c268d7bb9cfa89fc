package state

import (
	"errors"
	"strconv"
	"time"
)

// Guest count bounds; the selector offers exactly MinGuests..MaxGuests
const (
	MinGuests     = 1
	MaxGuests     = 10
	DefaultGuests = 1
)

// DateLayout is the wire format of date inputs
const DateLayout = "2006-01-02"

var (
	// ErrCheckOutBeforeFloor rejects a check-out earlier than check-in (or than now when no check-in is set)
	ErrCheckOutBeforeFloor = errors.New("check-out date is before the earliest selectable date")

	// ErrGuestsOutOfRange rejects a guest count that is not one of the offered options
	ErrGuestsOutOfRange = errors.New("guest count must be between 1 and 10")

	ErrInvalidDate = errors.New("dates must use the YYYY-MM-DD format")
)

// SearchParams is the payload handed to a SearchHandler on submit
type SearchParams struct {
	Location string     `json:"location"`
	CheckIn  *time.Time `json:"check_in"`
	CheckOut *time.Time `json:"check_out"`
	Guests   int        `json:"guests"`
}

// SearchHandler receives submitted searches
type SearchHandler func(SearchParams)

// SearchForm holds the search bar inputs. Zero dates mean "not selected".
// Values persist across submissions until changed.
type SearchForm struct {
	Location string    `msgpack:"location" json:"location"`
	CheckIn  time.Time `msgpack:"check_in" json:"check_in"`
	CheckOut time.Time `msgpack:"check_out" json:"check_out"`
	Guests   int       `msgpack:"guests" json:"guests"`
}

func NewSearchForm() SearchForm {
	return SearchForm{Guests: DefaultGuests}
}

// GuestOptions returns the selectable guest counts in order
func GuestOptions() []int {
	opts := make([]int, 0, MaxGuests-MinGuests+1)
	for n := MinGuests; n <= MaxGuests; n++ {
		opts = append(opts, n)
	}
	return opts
}

// GuestLabel renders "1 Guest" or "N Guests"
func GuestLabel(n int) string {
	if n == 1 {
		return "1 Guest"
	}
	return strconv.Itoa(n) + " Guests"
}

func (f *SearchForm) SetLocation(location string) {
	f.Location = location
}

// SetGuests accepts only values offered by the guest selector
func (f *SearchForm) SetGuests(n int) error {
	if n < MinGuests || n > MaxGuests {
		return ErrGuestsOutOfRange
	}
	f.Guests = n
	return nil
}

// SetCheckIn selects a check-in date. An already chosen check-out is left untouched.
func (f *SearchForm) SetCheckIn(d time.Time) {
	f.CheckIn = d
}

func (f *SearchForm) ClearCheckIn() {
	f.CheckIn = time.Time{}
}

// checkOutFloor is the instant no selectable check-out may precede
func (f SearchForm) checkOutFloor(now time.Time) time.Time {
	if !f.CheckIn.IsZero() {
		return f.CheckIn
	}
	return now
}

// CheckOutSelectable reports whether d is inside the check-out picker's selectable range
func (f SearchForm) CheckOutSelectable(d, now time.Time) bool {
	return !d.Before(f.checkOutFloor(now))
}

// CheckOutMin returns the earliest selectable calendar day for check-out, at midnight UTC.
// Used as the date input's min attribute.
func (f SearchForm) CheckOutMin(now time.Time) time.Time {
	floor := f.checkOutFloor(now).UTC()
	day := time.Date(floor.Year(), floor.Month(), floor.Day(), 0, 0, 0, 0, time.UTC)
	if day.Before(floor) {
		day = day.AddDate(0, 0, 1)
	}
	return day
}

// SetCheckOut selects a check-out date, rejecting days outside the selectable range
func (f *SearchForm) SetCheckOut(d, now time.Time) error {
	if !f.CheckOutSelectable(d, now) {
		return ErrCheckOutBeforeFloor
	}
	f.CheckOut = d
	return nil
}

func (f *SearchForm) ClearCheckOut() {
	f.CheckOut = time.Time{}
}

// Params packages the current form values
func (f SearchForm) Params() SearchParams {
	p := SearchParams{Location: f.Location, Guests: f.Guests}
	if !f.CheckIn.IsZero() {
		d := f.CheckIn
		p.CheckIn = &d
	}
	if !f.CheckOut.IsZero() {
		d := f.CheckOut
		p.CheckOut = &d
	}
	return p
}

// Submit hands the current values to handler and returns them. The form is not reset.
func (f SearchForm) Submit(handler SearchHandler) SearchParams {
	p := f.Params()
	if handler != nil {
		handler(p)
	}
	return p
}

// FormatDate renders a date for a date input, "" when unset
func FormatDate(d time.Time) string {
	if d.IsZero() {
		return ""
	}
	return d.Format(DateLayout)
}

// ParseDate parses a date input value; "" yields the zero time
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return d, nil
}

// SearchInput is a search as submitted by the form or an API client.
// Empty dates clear the field and Guests 0 leaves the count unchanged.
type SearchInput struct {
	Location string `json:"location"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
	Guests   int    `json:"guests"`
}

// Apply validates and stores in, field by field. The first failure stops it;
// fields before the failing one keep their new values.
func (f *SearchForm) Apply(in SearchInput, now time.Time) error {
	f.SetLocation(in.Location)
	if in.Guests != 0 {
		if err := f.SetGuests(in.Guests); err != nil {
			return err
		}
	}

	checkIn, err := ParseDate(in.CheckIn)
	if err != nil {
		return err
	}
	if checkIn.IsZero() {
		f.ClearCheckIn()
	} else {
		f.SetCheckIn(checkIn)
	}

	checkOut, err := ParseDate(in.CheckOut)
	if err != nil {
		return err
	}
	if checkOut.IsZero() {
		f.ClearCheckOut()
		return nil
	}
	return f.SetCheckOut(checkOut, now)
}
