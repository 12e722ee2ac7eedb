package services

import (
	"time"

	ics "github.com/arran4/golang-ical"

	"clubsite/models"
)

// BuildICS renders normalized entries as an iCalendar feed so members can
// subscribe from their own calendar apps. now becomes the DTSTAMP of every
// component.
func BuildICS(entries []models.CalendarEntry, now time.Time) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//clubsite//events//EN")
	cal.SetXWRCalName("Club Events")

	for _, e := range entries {
		ev := cal.AddEvent(e.ID)
		ev.SetDtStampTime(now)
		ev.SetSummary(e.Title)
		if e.AllDay {
			ev.SetAllDayStartAt(e.Start)
			ev.SetAllDayEndAt(e.End)
		} else {
			ev.SetStartAt(e.Start)
			ev.SetEndAt(e.End)
		}
		if e.ExtendedProps.Location != "" {
			ev.SetLocation(e.ExtendedProps.Location)
		}
		if e.ExtendedProps.Description != "" {
			ev.SetDescription(e.ExtendedProps.Description)
		}
		if e.URL != "" {
			ev.SetURL(e.URL)
		}
		ev.SetProperty(ics.ComponentPropertyCategories, Classify(e.ExtendedProps.EventType).Label)
	}

	return cal.Serialize()
}
