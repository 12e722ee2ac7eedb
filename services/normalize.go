package services

import (
	"errors"
	"log"
	"time"

	"clubsite/models"
	"clubsite/monitoring"
)

// Events with a valid start but no usable end date get this fixed duration.
const defaultEventDuration = 2 * time.Hour

var errUnparseableDate = errors.New("unparseable date")

// NormalizeEvents converts raw event records into canonical calendar
// entries. It is a pure transform: records without a usable start date are
// dropped and counted, every other missing field is defaulted per field, and
// no input ever aborts the batch.
func NormalizeEvents(records []models.RawEventRecord) []models.CalendarEntry {
	entries := make([]models.CalendarEntry, 0, len(records))
	for _, rec := range records {
		entry, ok := normalizeEvent(rec)
		if !ok {
			continue
		}
		entries = append(entries, entry)
	}
	return entries
}

func normalizeEvent(rec models.RawEventRecord) (models.CalendarEntry, bool) {
	if rec.ID == "" {
		monitoring.RecordSkippedRecord("missing_id")
		log.Printf("Skipping event record without id (title=%q)", rec.Title)
		return models.CalendarEntry{}, false
	}

	start, allDay, err := ParseEventTime(rec.StartDate)
	if err != nil {
		monitoring.RecordSkippedRecord("bad_start_date")
		log.Printf("Skipping event %s: unusable start date %q", rec.ID, rec.StartDate)
		return models.CalendarEntry{}, false
	}

	end := start.Add(defaultEventDuration)
	if rec.EndDate != "" {
		if parsed, _, err := ParseEventTime(rec.EndDate); err == nil && !parsed.Before(start) {
			end = parsed
		}
	}

	title := rec.Title
	if title == "" {
		title = "Untitled Event"
	}

	location := rec.Location
	if location == "" {
		location = "Location TBA"
	}

	eventType := rec.EventType
	if eventType == "" {
		eventType = "other"
	}

	slug := rec.Slug.Current
	if slug == "" {
		slug = rec.ID
	}

	return models.CalendarEntry{
		ID:     rec.ID,
		Title:  title,
		Start:  start,
		End:    end,
		URL:    "/events/" + slug,
		Color:  Classify(rec.EventType).Color,
		AllDay: allDay,
		ExtendedProps: models.ExtendedProps{
			Description: rec.Description,
			Location:    location,
			EventType:   eventType,
		},
	}, true
}

// ParseEventTime parses a content-source date value. allDay reports whether
// the value carried no time-of-day component.
func ParseEventTime(value string) (t time.Time, allDay bool, err error) {
	if value == "" {
		return time.Time{}, false, errUnparseableDate
	}

	if t, err := time.Parse("2006-01-02", value); err == nil {
		return t, true, nil
	}

	layouts := []string{
		time.RFC3339,
		"2006-01-02T15:04:05",
		"2006-01-02T15:04",
	}
	for _, layout := range layouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, false, nil
		}
	}

	return time.Time{}, false, errUnparseableDate
}
