package services

import (
	"log"
	"sort"
	"time"

	"clubsite/models"
)

// Only the most recent past events are kept for the "recent past" view.
const recentPastLimit = 5

// Partitioned splits a calendar entry set around a reference time.
type Partitioned struct {
	// Upcoming holds entries starting at or after the reference time,
	// ascending by start; ties keep their original relative order.
	Upcoming []models.CalendarEntry `json:"upcoming"`
	// Past holds the most recent entries before the reference time,
	// descending by start, truncated to recentPastLimit.
	Past []models.CalendarEntry `json:"past"`
}

// Partition splits entries into upcoming and recent-past sets relative to
// now.
func Partition(now time.Time, entries []models.CalendarEntry) Partitioned {
	upcoming := make([]models.CalendarEntry, 0, len(entries))
	past := make([]models.CalendarEntry, 0, len(entries))

	for _, e := range entries {
		if e.Start.IsZero() {
			// Normalization guarantees a valid start; treat the
			// anomaly as past rather than crash.
			log.Printf("Entry %s reached partitioner with zero start", e.ID)
			past = append(past, e)
			continue
		}
		if e.Start.Before(now) {
			past = append(past, e)
		} else {
			upcoming = append(upcoming, e)
		}
	}

	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].Start.Before(upcoming[j].Start)
	})
	sort.SliceStable(past, func(i, j int) bool {
		return past[i].Start.After(past[j].Start)
	})

	if len(past) > recentPastLimit {
		past = past[:recentPastLimit]
	}

	return Partitioned{Upcoming: upcoming, Past: past}
}

// DayGroup is one calendar day's worth of entries.
type DayGroup struct {
	Date    time.Time              `json:"date"`
	Entries []models.CalendarEntry `json:"entries"`
}

// GroupByDay buckets entries by the calendar date of their start,
// independent of time of day. Buckets come back in chronological order and
// entries within a bucket ascend by start time, preserving original order
// for ties.
func GroupByDay(entries []models.CalendarEntry) []DayGroup {
	buckets := make(map[time.Time][]models.CalendarEntry)
	for _, e := range entries {
		y, m, d := e.Start.Date()
		day := time.Date(y, m, d, 0, 0, 0, 0, e.Start.Location())
		buckets[day] = append(buckets[day], e)
	}

	days := make([]time.Time, 0, len(buckets))
	for day := range buckets {
		days = append(days, day)
	}
	sort.Slice(days, func(i, j int) bool { return days[i].Before(days[j]) })

	groups := make([]DayGroup, 0, len(days))
	for _, day := range days {
		group := buckets[day]
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].Start.Before(group[j].Start)
		})
		groups = append(groups, DayGroup{Date: day, Entries: group})
	}
	return groups
}
