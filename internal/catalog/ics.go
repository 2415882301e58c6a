package catalog

import (
	"fmt"
	"time"

	ics "github.com/arran4/golang-ical"
)

// ExportICS serializes the festival list as an iCalendar feed of all-day
// events, suitable for subscription from external calendar apps.
func (c *Catalog) ExportICS(now time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//Lakshmi Narayan Temple//Festival Calendar//EN")

	for i := range c.Festivals {
		ev := &c.Festivals[i]
		vev := cal.AddEvent(fmt.Sprintf("festival-%s@mandir", ev.ID))
		vev.SetDtStampTime(now)
		vev.SetAllDayStartAt(ev.When)
		vev.SetAllDayEndAt(ev.When.AddDate(0, 0, 1))
		vev.SetSummary(ev.Title)
		vev.SetDescription(ev.Description)
	}

	return cal.Serialize()
}
