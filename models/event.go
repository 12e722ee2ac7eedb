package models

import (
	"time"
)

// RawEventRecord is an event document exactly as the content source returns
// it. Every field besides the id is optional and may be missing or malformed;
// nothing downstream should consume this type directly. The normalizer turns
// it into a CalendarEntry.
type RawEventRecord struct {
	ID                   string    `json:"_id"`
	Title                string    `json:"title"`
	Slug                 Slug      `json:"slug"`
	EventType            string    `json:"eventType"`
	StartDate            string    `json:"startDate"`
	EndDate              string    `json:"endDate"`
	Location             string    `json:"location"`
	Description          string    `json:"description"`
	Image                *ImageRef `json:"image"`
	IsFeatured           bool      `json:"isFeatured"`
	RegistrationURL      string    `json:"registrationUrl"`
	RegistrationRequired bool      `json:"registrationRequired"`
}

// Slug mirrors the content source's slug object shape.
type Slug struct {
	Current string `json:"current"`
}

// ImageRef is an opaque reference to a remote image asset.
type ImageRef struct {
	Asset struct {
		Ref string `json:"_ref"`
	} `json:"asset"`
}

// CalendarEntry is the canonical, validated event shape consumed by the
// calendar widget, the fallback list view and the ICS feed. Once produced it
// is never mutated: Start is always a valid timestamp and End is never before
// Start.
type CalendarEntry struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Start         time.Time     `json:"start"`
	End           time.Time     `json:"end"`
	URL           string        `json:"url"`
	Color         string        `json:"color"`
	AllDay        bool          `json:"allDay"`
	ExtendedProps ExtendedProps `json:"extendedProps"`
}

type ExtendedProps struct {
	Description string `json:"description"`
	Location    string `json:"location"`
	EventType   string `json:"eventType"`
}

// EventDetail is the full event shape served by the detail endpoint.
type EventDetail struct {
	ID                   string    `json:"id"`
	Title                string    `json:"title"`
	Slug                 string    `json:"slug"`
	EventType            string    `json:"eventType"`
	Start                time.Time `json:"start"`
	End                  time.Time `json:"end"`
	AllDay               bool      `json:"allDay"`
	Location             string    `json:"location"`
	Description          string    `json:"description"`
	ImageURL             string    `json:"imageUrl"`
	RegistrationURL      string    `json:"registrationUrl,omitempty"`
	RegistrationRequired bool      `json:"registrationRequired"`
	IsFeatured           bool      `json:"isFeatured"`
}
