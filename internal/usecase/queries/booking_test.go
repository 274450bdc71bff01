//go:build unit

package queries_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"slotbook/internal/domain/user"
	"slotbook/internal/infra"
	"slotbook/internal/pkg/clock"
	"slotbook/internal/usecase/queries"
	queriesmock "slotbook/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingQueriesTestSuite struct {
	suite.Suite
	mockCtrl      *gomock.Controller
	mockReadStore *queriesmock.MockBookingReadStore
	clock         *clock.MockClock
	queries       queries.BookingQueries
}

func (s *BookingQueriesTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockReadStore = queriesmock.NewMockBookingReadStore(s.mockCtrl)
	// Midday so the current day has room on both sides.
	s.clock = clock.NewMockClock(time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC))
	s.queries = queries.NewBookingQueries(s.mockReadStore, s.clock)
}

func (s *BookingQueriesTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingQueriesSuite(t *testing.T) {
	suite.Run(t, new(BookingQueriesTestSuite))
}

func (s *BookingQueriesTestSuite) viewAt(start time.Time) *queries.BookingView {
	return &queries.BookingView{
		ID:         uuid.NewString(),
		TimeSlotID: uuid.NewString(),
		StartTime:  start,
		EndTime:    start.Add(time.Hour),
	}
}

func (s *BookingQueriesTestSuite) TestListForUser() {
	userID := uuid.New()

	s.Run("providers see the full list", func() {
		s.mockReadStore.EXPECT().ListAll(gomock.Any()).Return(nil, nil)

		_, err := s.queries.ListForUser(context.Background(), userID, user.RoleProvider)

		s.NoError(err)
	})

	s.Run("clients see only their own bookings", func() {
		s.mockReadStore.EXPECT().ListByOwner(gomock.Any(), userID).Return(nil, nil)

		_, err := s.queries.ListForUser(context.Background(), userID, user.RoleClient)

		s.NoError(err)
	})

	s.Run("orders today before upcoming before past, earliest first within each", func() {
		now := s.clock.Now()
		pastEarly := s.viewAt(now.Add(-48 * time.Hour))
		pastLate := s.viewAt(now.Add(-24 * time.Hour))
		todayEarly := s.viewAt(now.Add(1 * time.Hour))
		todayLate := s.viewAt(now.Add(3 * time.Hour))
		upcoming := s.viewAt(now.Add(72 * time.Hour))

		s.mockReadStore.EXPECT().ListAll(gomock.Any()).
			Return([]*queries.BookingView{pastLate, upcoming, todayLate, pastEarly, todayEarly}, nil)

		got, err := s.queries.ListForUser(context.Background(), userID, user.RoleProvider)

		s.NoError(err)
		s.Require().Len(got, 5)
		s.Equal([]string{todayEarly.ID, todayLate.ID, upcoming.ID, pastEarly.ID, pastLate.ID},
			[]string{got[0].ID, got[1].ID, got[2].ID, got[3].ID, got[4].ID})
		s.Equal("today", got[0].Status)
		s.Equal("upcoming", got[2].Status)
		s.Equal("past", got[3].Status)
	})

	s.Run("a booking that ended earlier today is past, not today", func() {
		now := s.clock.Now()
		endedToday := s.viewAt(now.Add(-3 * time.Hour))

		s.mockReadStore.EXPECT().ListAll(gomock.Any()).
			Return([]*queries.BookingView{endedToday}, nil)

		got, err := s.queries.ListForUser(context.Background(), userID, user.RoleProvider)

		s.NoError(err)
		s.Require().Len(got, 1)
		s.Equal("past", got[0].Status)
	})
}

func (s *BookingQueriesTestSuite) TestListByDateRange() {
	s.Run("keeps only bookings fully inside the range", func() {
		now := s.clock.Now()
		inside := s.viewAt(now.Add(24 * time.Hour))
		before := s.viewAt(now.Add(-24 * time.Hour))
		after := s.viewAt(now.Add(96 * time.Hour))

		s.mockReadStore.EXPECT().ListAll(gomock.Any()).
			Return([]*queries.BookingView{before, inside, after}, nil)

		got, err := s.queries.ListByDateRange(context.Background(), now, now.Add(48*time.Hour))

		s.NoError(err)
		s.Require().Len(got, 1)
		s.Equal(inside.ID, got[0].ID)
	})
}

func (s *BookingQueriesTestSuite) TestGetByID() {
	s.Run("success: enriches the view with a status", func() {
		view := s.viewAt(s.clock.Now().Add(24 * time.Hour))

		s.mockReadStore.EXPECT().FindByID(gomock.Any(), view.ID).Return(view, nil)

		got, err := s.queries.GetByID(context.Background(), view.ID)

		s.NoError(err)
		s.Equal("upcoming", got.Status)
	})

	s.Run("error: store not-found maps to booking not found", func() {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		storeErr := infra.WrapStoreErr(logger, infra.KindNotFound, "resource not found", nil)

		s.mockReadStore.EXPECT().FindByID(gomock.Any(), "gone").Return(nil, storeErr)

		got, err := s.queries.GetByID(context.Background(), "gone")

		s.Nil(got)
		s.ErrorIs(err, queries.ErrBookingNotFound)
	})
}
