//go:build unit

package builder

import (
	"time"

	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"

	"github.com/google/uuid"
)

type SlotBuilder struct {
	ID        string
	StartTime time.Time
	EndTime   time.Time
	IsBooked  bool
	CreatedAt time.Time
}

func NewSlotBuilder(now time.Time) *SlotBuilder {
	start := now.Add(24 * time.Hour)
	return &SlotBuilder{
		ID:        uuid.NewString(),
		StartTime: start,
		EndTime:   start.Add(time.Hour),
		IsBooked:  false,
		CreatedAt: now,
	}
}

func (b *SlotBuilder) WithID(id string) *SlotBuilder {
	b.ID = id
	return b
}

func (b *SlotBuilder) WithWindow(start, end time.Time) *SlotBuilder {
	b.StartTime = start
	b.EndTime = end
	return b
}

func (b *SlotBuilder) AsBooked() *SlotBuilder {
	b.IsBooked = true
	return b
}

func (b *SlotBuilder) BuildSnapshot() *commands.SlotSnapshot {
	return &commands.SlotSnapshot{
		ID:        b.ID,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		IsBooked:  b.IsBooked,
		CreatedAt: b.CreatedAt,
	}
}

func (b *SlotBuilder) BuildView(now time.Time) *queries.SlotView {
	return &queries.SlotView{
		ID:        b.ID,
		StartTime: b.StartTime,
		EndTime:   b.EndTime,
		IsBooked:  b.IsBooked,
		IsPast:    !b.EndTime.After(now),
		CreatedAt: b.CreatedAt,
	}
}
