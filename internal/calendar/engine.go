// Package calendar implements the festival calendar widget state: the month
// cursor, the selected day, and per-event RSVP flags, together with the
// derived month grid the UI renders from.
package calendar

import (
	"time"

	"mandir_server/internal/catalog"
)

// Date is a calendar date at day resolution, no time or timezone component.
type Date struct {
	Year  int        `json:"year"`
	Month time.Month `json:"month"`
	Day   int        `json:"day"`
}

// DateOf truncates a time.Time to its calendar date.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// DayCell is the derived render state for one grid cell.
type DayCell struct {
	// Day is the day-of-month, or 0 for a leading blank cell.
	Day         int    `json:"day"`
	Blank       bool   `json:"blank"`
	IsToday     bool   `json:"isToday"`
	IsSelected  bool   `json:"isSelected"`
	HasEvent    bool   `json:"hasEvent"`
	IsAttending bool   `json:"isAttending"`
	EventID     string `json:"eventId,omitempty"`
	EventTitle  string `json:"eventTitle,omitempty"`
}

// Grid is the derived month view: leading blank cells up to the weekday of
// day 1 (Sunday = 0), then one cell per day of the month.
type Grid struct {
	Year          int        `json:"year"`
	Month         time.Month `json:"month"`
	LeadingBlanks int        `json:"leadingBlanks"`
	DaysInMonth   int        `json:"daysInMonth"`
	Cells         []DayCell  `json:"cells"`
}

// Engine owns the calendar widget state. It is not safe for concurrent use;
// callers serialize access (one widget session handles one interaction at a
// time).
type Engine struct {
	cat *catalog.Catalog
	now func() time.Time

	cursorYear  int
	cursorMonth time.Month
	selected    *Date
	rsvps       map[string]bool
}

// New creates an Engine over the given catalog. The cursor and selection
// initialize to the current date; the RSVP set starts empty. A nil nowFn
// uses time.Now (tests inject a fixed clock).
func New(cat *catalog.Catalog, nowFn func() time.Time) *Engine {
	if nowFn == nil {
		nowFn = time.Now
	}
	today := DateOf(nowFn())
	sel := today
	return &Engine{
		cat:         cat,
		now:         nowFn,
		cursorYear:  today.Year,
		cursorMonth: today.Month,
		selected:    &sel,
		rsvps:       make(map[string]bool),
	}
}

// Cursor returns the (year, month) currently displayed.
func (e *Engine) Cursor() (int, time.Month) {
	return e.cursorYear, e.cursorMonth
}

// Selected returns the selected date, if any.
func (e *Engine) Selected() (Date, bool) {
	if e.selected == nil {
		return Date{}, false
	}
	return *e.selected, true
}

// ChangeMonth moves the cursor by offset months, negative values included.
// time.Date normalizes arbitrary month offsets with year carry. Any month
// change clears the selection.
func (e *Engine) ChangeMonth(offset int) {
	t := time.Date(e.cursorYear, e.cursorMonth+time.Month(offset), 1, 0, 0, 0, 0, time.UTC)
	e.cursorYear = t.Year()
	e.cursorMonth = t.Month()
	e.selected = nil
}

// SelectDate selects the given date and moves the cursor to its month. For
// a date already in the displayed month the cursor move is a no-op; for a
// jump from the upcoming-events list it switches months and selects in one
// action, without clearing RSVP state.
func (e *Engine) SelectDate(d Date) {
	e.cursorYear = d.Year
	e.cursorMonth = d.Month
	sel := d
	e.selected = &sel
}

// ToggleRSVP flips the attendance flag for the given event id, creating the
// entry on first toggle. The entry is retained when flipped back to false.
// Unknown ids are absorbed as orphan entries rather than rejected.
func (e *Engine) ToggleRSVP(eventID string) bool {
	e.rsvps[eventID] = !e.rsvps[eventID]
	return e.rsvps[eventID]
}

// Attending reports the attendance flag for an event id.
func (e *Engine) Attending(eventID string) bool {
	return e.rsvps[eventID]
}

// RSVPs returns a copy of the attendance map.
func (e *Engine) RSVPs() map[string]bool {
	out := make(map[string]bool, len(e.rsvps))
	for id, v := range e.rsvps {
		out[id] = v
	}
	return out
}

// SeedRSVPs primes the attendance map, used when restoring a returning
// visitor's stored flags into a fresh session.
func (e *Engine) SeedRSVPs(flags map[string]bool) {
	for id, v := range flags {
		e.rsvps[id] = v
	}
}

// EventsForMonth filters the catalog to events dated within (year, month),
// preserving catalog order.
func (e *Engine) EventsForMonth(year int, month time.Month) []catalog.Event {
	var out []catalog.Event
	for _, ev := range e.cat.Festivals {
		if ev.When.Year() == year && ev.When.Month() == month {
			out = append(out, ev)
		}
	}
	return out
}

// EventForDay returns the first catalog-order event on the given day of the
// cursor month, or nil. With at most one event per day in the catalog the
// first match is the only match; multiple same-day events are a documented
// limitation.
func (e *Engine) EventForDay(day int) *catalog.Event {
	for _, ev := range e.cat.Festivals {
		if ev.When.Year() == e.cursorYear && ev.When.Month() == e.cursorMonth && ev.When.Day() == day {
			out := ev
			return &out
		}
	}
	return nil
}

// SelectedEvent returns the event on the selected day, if a day is selected
// and an event falls on it.
func (e *Engine) SelectedEvent() *catalog.Event {
	if e.selected == nil {
		return nil
	}
	if e.selected.Year != e.cursorYear || e.selected.Month != e.cursorMonth {
		return nil
	}
	return e.EventForDay(e.selected.Day)
}

// Grid derives the month grid for the current cursor.
func (e *Engine) Grid() Grid {
	first := time.Date(e.cursorYear, e.cursorMonth, 1, 0, 0, 0, 0, time.UTC)
	daysInMonth := first.AddDate(0, 1, -1).Day()
	leading := int(first.Weekday())

	today := DateOf(e.now())

	g := Grid{
		Year:          e.cursorYear,
		Month:         e.cursorMonth,
		LeadingBlanks: leading,
		DaysInMonth:   daysInMonth,
		Cells:         make([]DayCell, 0, leading+daysInMonth),
	}

	for i := 0; i < leading; i++ {
		g.Cells = append(g.Cells, DayCell{Blank: true})
	}

	for d := 1; d <= daysInMonth; d++ {
		cell := DayCell{
			Day: d,
			IsToday: today.Day == d &&
				today.Month == e.cursorMonth &&
				today.Year == e.cursorYear,
			IsSelected: e.selected != nil &&
				e.selected.Day == d &&
				e.selected.Month == e.cursorMonth &&
				e.selected.Year == e.cursorYear,
		}
		if ev := e.EventForDay(d); ev != nil {
			cell.HasEvent = true
			cell.EventID = ev.ID
			cell.EventTitle = ev.Title
			cell.IsAttending = e.rsvps[ev.ID]
		}
		g.Cells = append(g.Cells, cell)
	}

	return g
}
