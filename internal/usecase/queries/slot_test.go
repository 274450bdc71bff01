//go:build unit

package queries_test

import (
	"context"
	"testing"
	"time"

	"slotbook/internal/usecase/queries"
	queriesmock "slotbook/tests/mock/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestSlotQueriesListByDay(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	readStore := queriesmock.NewMockSlotReadStore(ctrl)
	q := queries.NewSlotQueries(readStore)

	day := time.Date(2025, 6, 15, 14, 30, 0, 0, time.UTC)
	dayStart := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.AddDate(0, 0, 1).Add(-time.Nanosecond)

	readStore.EXPECT().ListByRange(gomock.Any(), dayStart, dayEnd).
		Return([]*queries.SlotView{{ID: "slot-1"}}, nil)

	got, err := q.ListByDay(context.Background(), day)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "slot-1", got[0].ID)
}
