package api

import (
	"time"

	"mandir_server/internal/calendar"
	"mandir_server/internal/catalog"
	"mandir_server/internal/locale"
)

// Sidebar states. "none_selected" and "no_event" are distinct: the first
// means no day is selected at all, the second means a selected day carries
// no festival.
const (
	SidebarNoneSelected = "none_selected"
	SidebarNoEvent      = "no_event"
	SidebarEvent        = "event"
)

var sidebarMessages = map[locale.Language]struct {
	selectPrompt string
	noEvent      string
	noEventNote  string
}{
	locale.LangEnglish: {
		selectPrompt: "Select a date to view details.",
		noEvent:      "No major festival scheduled for this day.",
		noEventNote:  "Daily Aarti at 6:30 AM & 7:00 PM",
	},
	locale.LangHindi: {
		selectPrompt: "विवरण देखने के लिए एक तिथि चुनें।",
		noEvent:      "इस दिन कोई प्रमुख त्यौहार निर्धारित नहीं है।",
		noEventNote:  "दैनिक आरती प्रातः 6:30 और सायं 7:00 बजे",
	},
}

type sidebarView struct {
	State     string         `json:"state"`
	DateLabel string         `json:"dateLabel,omitempty"`
	Message   string         `json:"message,omitempty"`
	Note      string         `json:"note,omitempty"`
	Event     *catalog.Event `json:"event,omitempty"`
	Attending bool           `json:"attending"`
}

type monthEventView struct {
	catalog.Event
	Attending bool   `json:"attending"`
	DateLabel string `json:"dateLabel"`
}

type calendarViewResponse struct {
	SessionID   string           `json:"sessionId"`
	Language    locale.Language  `json:"language"`
	Header      string           `json:"header"`
	Weekdays    []string         `json:"weekdays"`
	Grid        calendar.Grid    `json:"grid"`
	MonthEvents []monthEventView `json:"monthEvents"`
	Sidebar     sidebarView      `json:"sidebar"`
}

// buildCalendarView derives the full widget render state for one session.
func (h *APIHandler) buildCalendarView(s *calendar.Session, lang locale.Language) calendarViewResponse {
	msgs := sidebarMessages[lang]

	var resp calendarViewResponse
	s.Do(func(e *calendar.Engine) {
		year, month := e.Cursor()

		resp.SessionID = s.ID
		resp.Language = lang
		resp.Header = locale.FormatMonthYear(lang, year, month)
		wd := locale.WeekdayLabels(lang)
		resp.Weekdays = wd[:]
		resp.Grid = e.Grid()

		for _, ev := range e.EventsForMonth(year, month) {
			resp.MonthEvents = append(resp.MonthEvents, monthEventView{
				Event:     ev,
				Attending: e.Attending(ev.ID),
				DateLabel: locale.FormatShortDate(lang, ev.When),
			})
		}

		sel, selected := e.Selected()
		if !selected {
			resp.Sidebar = sidebarView{
				State:   SidebarNoneSelected,
				Message: msgs.selectPrompt,
			}
			return
		}

		label := locale.FormatShortDate(lang,
			time.Date(sel.Year, sel.Month, sel.Day, 0, 0, 0, 0, time.UTC))

		if ev := e.SelectedEvent(); ev != nil {
			resp.Sidebar = sidebarView{
				State:     SidebarEvent,
				DateLabel: label,
				Event:     ev,
				Attending: e.Attending(ev.ID),
			}
			return
		}

		resp.Sidebar = sidebarView{
			State:     SidebarNoEvent,
			DateLabel: label,
			Message:   msgs.noEvent,
			Note:      msgs.noEventNote,
		}
	})
	return resp
}
