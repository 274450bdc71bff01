//go:build unit

package schedule_test

import (
	"testing"
	"time"

	"slotbook/internal/domain/schedule"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	now := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  schedule.Status
	}{
		{
			name:  "ended earlier today is past, not today",
			start: time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC),
			end:   time.Date(2025, 6, 10, 10, 0, 0, 0, time.UTC),
			want:  schedule.StatusPast,
		},
		{
			name:  "end exactly at now is past",
			start: time.Date(2025, 6, 10, 14, 0, 0, 0, time.UTC),
			end:   now,
			want:  schedule.StatusPast,
		},
		{
			name:  "in progress right now is today",
			start: time.Date(2025, 6, 10, 14, 30, 0, 0, time.UTC),
			end:   time.Date(2025, 6, 10, 15, 30, 0, 0, time.UTC),
			want:  schedule.StatusToday,
		},
		{
			name:  "starts tonight spanning midnight is today",
			start: time.Date(2025, 6, 10, 23, 59, 0, 0, time.UTC),
			end:   time.Date(2025, 6, 11, 0, 30, 0, 0, time.UTC),
			want:  schedule.StatusToday,
		},
		{
			name:  "starts tomorrow is upcoming",
			start: time.Date(2025, 6, 11, 9, 0, 0, 0, time.UTC),
			end:   time.Date(2025, 6, 11, 10, 0, 0, 0, time.UTC),
			want:  schedule.StatusUpcoming,
		},
		{
			name:  "starts next week is upcoming",
			start: time.Date(2025, 6, 17, 9, 0, 0, 0, time.UTC),
			end:   time.Date(2025, 6, 17, 10, 0, 0, 0, time.UTC),
			want:  schedule.StatusUpcoming,
		},
		{
			name:  "ended yesterday is past",
			start: time.Date(2025, 6, 9, 9, 0, 0, 0, time.UTC),
			end:   time.Date(2025, 6, 9, 10, 0, 0, 0, time.UTC),
			want:  schedule.StatusPast,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, schedule.Classify(tt.start, tt.end, now))
		})
	}
}

func TestClassifyEarlyMorningBoundary(t *testing.T) {
	// A booking later today must be "today" even when evaluated just after
	// midnight, and "upcoming" when evaluated the day before.
	start := time.Date(2025, 6, 10, 18, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 10, 19, 0, 0, 0, time.UTC)

	justAfterMidnight := time.Date(2025, 6, 10, 0, 0, 1, 0, time.UTC)
	assert.Equal(t, schedule.StatusToday, schedule.Classify(start, end, justAfterMidnight))

	dayBefore := time.Date(2025, 6, 9, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, schedule.StatusUpcoming, schedule.Classify(start, end, dayBefore))
}

func TestIsPast(t *testing.T) {
	now := time.Date(2025, 6, 10, 15, 0, 0, 0, time.UTC)

	assert.True(t, schedule.IsPast(now.Add(-time.Second), now))
	assert.True(t, schedule.IsPast(now, now), "exact now counts as past")
	assert.False(t, schedule.IsPast(now.Add(time.Second), now))
}

func TestRank(t *testing.T) {
	assert.Less(t, schedule.Rank(schedule.StatusToday), schedule.Rank(schedule.StatusUpcoming))
	assert.Less(t, schedule.Rank(schedule.StatusUpcoming), schedule.Rank(schedule.StatusPast))
}
