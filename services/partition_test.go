package services

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"clubsite/models"
)

func entryAt(id string, start time.Time) models.CalendarEntry {
	return models.CalendarEntry{ID: id, Title: id, Start: start, End: start.Add(2 * time.Hour)}
}

func TestPartition_SplitsAroundNow(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	entries := []models.CalendarEntry{
		entryAt("past", now.AddDate(0, 0, -1)),
		entryAt("tomorrow", now.AddDate(0, 0, 1)),
		entryAt("day-after", now.AddDate(0, 0, 2)),
	}

	parts := Partition(now, entries)

	require.Len(t, parts.Upcoming, 2)
	assert.Equal(t, "tomorrow", parts.Upcoming[0].ID)
	assert.Equal(t, "day-after", parts.Upcoming[1].ID)

	require.Len(t, parts.Past, 1)
	assert.Equal(t, "past", parts.Past[0].ID)
}

func TestPartition_StartEqualToNowIsUpcoming(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	parts := Partition(now, []models.CalendarEntry{entryAt("exact", now)})

	require.Len(t, parts.Upcoming, 1)
	assert.Empty(t, parts.Past)
}

func TestPartition_UpcomingAscendingStableForTies(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)
	sameStart := now.AddDate(0, 0, 3)

	entries := []models.CalendarEntry{
		entryAt("second-listed", sameStart),
		entryAt("later", now.AddDate(0, 0, 5)),
		entryAt("third-listed", sameStart),
		entryAt("first", now.AddDate(0, 0, 1)),
	}

	parts := Partition(now, entries)

	require.Len(t, parts.Upcoming, 4)
	assert.Equal(t, "first", parts.Upcoming[0].ID)
	// Ties keep the original relative order.
	assert.Equal(t, "second-listed", parts.Upcoming[1].ID)
	assert.Equal(t, "third-listed", parts.Upcoming[2].ID)
	assert.Equal(t, "later", parts.Upcoming[3].ID)
}

func TestPartition_PastTruncatedToFiveMostRecent(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	var entries []models.CalendarEntry
	for i := 1; i <= 8; i++ {
		entries = append(entries, entryAt(fmt.Sprintf("past-%d", i), now.AddDate(0, 0, -i)))
	}

	parts := Partition(now, entries)

	require.Len(t, parts.Past, 5)
	// Most recent first.
	for i, want := range []string{"past-1", "past-2", "past-3", "past-4", "past-5"} {
		assert.Equal(t, want, parts.Past[i].ID)
	}
}

func TestPartition_ZeroStartTreatedAsPast(t *testing.T) {
	now := time.Date(2024, 6, 15, 12, 0, 0, 0, time.UTC)

	parts := Partition(now, []models.CalendarEntry{{ID: "anomaly"}})

	require.Len(t, parts.Past, 1)
	assert.Empty(t, parts.Upcoming)
}

func TestGroupByDay_SameDateSharesBucket(t *testing.T) {
	morning := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	evening := time.Date(2024, 6, 1, 18, 0, 0, 0, time.UTC)

	groups := GroupByDay([]models.CalendarEntry{
		entryAt("evening", evening),
		entryAt("morning", morning),
	})

	require.Len(t, groups, 1)
	require.Len(t, groups[0].Entries, 2)
	// Ascending by time within the bucket.
	assert.Equal(t, "morning", groups[0].Entries[0].ID)
	assert.Equal(t, "evening", groups[0].Entries[1].ID)
}

func TestGroupByDay_BucketsChronological(t *testing.T) {
	groups := GroupByDay([]models.CalendarEntry{
		entryAt("june-3", time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC)),
		entryAt("june-1", time.Date(2024, 6, 1, 10, 0, 0, 0, time.UTC)),
		entryAt("june-2", time.Date(2024, 6, 2, 10, 0, 0, 0, time.UTC)),
	})

	require.Len(t, groups, 3)
	assert.Equal(t, "june-1", groups[0].Entries[0].ID)
	assert.Equal(t, "june-2", groups[1].Entries[0].ID)
	assert.Equal(t, "june-3", groups[2].Entries[0].ID)

	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), groups[0].Date)
}

func TestGroupByDay_IndependentOfTimeOfDay(t *testing.T) {
	// 23:30 and 00:15 on different dates land in different buckets even
	// though they are 45 minutes apart.
	groups := GroupByDay([]models.CalendarEntry{
		entryAt("late", time.Date(2024, 6, 1, 23, 30, 0, 0, time.UTC)),
		entryAt("early", time.Date(2024, 6, 2, 0, 15, 0, 0, time.UTC)),
	})

	require.Len(t, groups, 2)
}

func TestGroupByDay_Empty(t *testing.T) {
	assert.Empty(t, GroupByDay(nil))
}
