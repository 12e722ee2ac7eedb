package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"clubsite/content"
	"clubsite/models"
	"clubsite/status"
)

type EventService struct {
	content *content.Client
}

func NewEventService(contentClient *content.Client) *EventService {
	return &EventService{content: contentClient}
}

// Calendar returns the full normalized entry set for the interactive
// calendar and the ICS feed.
func (s *EventService) Calendar(ctx context.Context) ([]models.CalendarEntry, error) {
	records, err := s.fetchEvents(ctx, "events", content.QueryEvents, nil)
	if err != nil {
		return nil, err
	}
	return NormalizeEvents(records), nil
}

// List returns the upcoming/recent-past partition for the listing page.
func (s *EventService) List(ctx context.Context, now time.Time) (Partitioned, error) {
	entries, err := s.Calendar(ctx)
	if err != nil {
		return Partitioned{}, err
	}
	return Partition(now, entries), nil
}

// Featured returns detail shapes for homepage-featured events, upcoming
// ones only, in start order.
func (s *EventService) Featured(ctx context.Context, now time.Time) ([]models.EventDetail, error) {
	records, err := s.fetchEvents(ctx, "featured_events", content.QueryFeaturedEvents, nil)
	if err != nil {
		return nil, err
	}

	details := make([]models.EventDetail, 0, len(records))
	for _, rec := range records {
		entry, ok := normalizeEvent(rec)
		if !ok || entry.Start.Before(now) {
			continue
		}
		details = append(details, s.toDetail(rec, entry))
	}
	return details, nil
}

// BySlug resolves an event by its exact slug, falling back to the record id
// so entries without a slug still route. A missing document is a distinct
// not-found error, never an empty detail.
func (s *EventService) BySlug(ctx context.Context, slug string) (models.EventDetail, error) {
	raw, err := s.content.Query(ctx, "event_by_slug", content.QueryEventBySlug, map[string]any{"slug": slug})
	if err != nil {
		return models.EventDetail{}, err
	}

	rec, ok := decodeSingleEvent(raw)
	if !ok {
		// Records created before slugs were mandatory are addressed by id.
		raw, err = s.content.Query(ctx, "event_by_id", content.QueryEventByID, map[string]any{"id": slug})
		if err != nil {
			return models.EventDetail{}, err
		}
		if rec, ok = decodeSingleEvent(raw); !ok {
			return models.EventDetail{}, status.ErrEventNotFound
		}
	}

	entry, _ := normalizeEvent(rec)
	return s.toDetail(rec, entry), nil
}

// Posts returns the news posts, newest first.
func (s *EventService) Posts(ctx context.Context) ([]models.Post, error) {
	raw, err := s.content.Query(ctx, "posts", content.QueryPosts, nil)
	if err != nil {
		return nil, err
	}

	var posts []models.Post
	if err := json.Unmarshal(raw, &posts); err != nil {
		return nil, fmt.Errorf("decode posts: %w", err)
	}
	return posts, nil
}

func (s *EventService) fetchEvents(ctx context.Context, name, query string, params map[string]any) ([]models.RawEventRecord, error) {
	raw, err := s.content.Query(ctx, name, query, params)
	if err != nil {
		return nil, err
	}

	var records []models.RawEventRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("decode event records: %w", err)
	}
	return records, nil
}

func decodeSingleEvent(raw json.RawMessage) (models.RawEventRecord, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return models.RawEventRecord{}, false
	}
	var rec models.RawEventRecord
	if err := json.Unmarshal(raw, &rec); err != nil || rec.ID == "" {
		return models.RawEventRecord{}, false
	}
	return rec, true
}

// toDetail applies the normalizer's field defaults but keeps the record even
// when its start date is unusable: the detail page shows such an event with
// zero times instead of hiding it.
func (s *EventService) toDetail(rec models.RawEventRecord, entry models.CalendarEntry) models.EventDetail {
	slug := rec.Slug.Current
	if slug == "" {
		slug = rec.ID
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
	return models.EventDetail{
		ID:                   rec.ID,
		Title:                title,
		Slug:                 slug,
		EventType:            eventType,
		Start:                entry.Start,
		End:                  entry.End,
		AllDay:               entry.AllDay,
		Location:             location,
		Description:          rec.Description,
		ImageURL:             s.content.ImageURL(rec.Image, 800),
		RegistrationURL:      rec.RegistrationURL,
		RegistrationRequired: rec.RegistrationRequired,
		IsFeatured:           rec.IsFeatured,
	}
}
