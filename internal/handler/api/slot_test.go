//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"slotbook/internal/handler/api"
	resdto "slotbook/internal/handler/dto/response"
	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"
	"slotbook/tests/common/httptest"
	commandsmock "slotbook/tests/mock/commands"
	queriesmock "slotbook/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type SlotHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockSlotCommands
	mockQueries  *queriesmock.MockSlotQueries
	handler      *api.SlotHandler
}

func (s *SlotHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockSlotCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockSlotQueries(s.mockCtrl)
	s.handler = api.NewSlotHandler(s.mockCommands, s.mockQueries)

	s.router.GET("/slots", s.handler.ListSlots)
	s.router.POST("/slots", s.handler.CreateSlot)
	s.router.DELETE("/slots/:id", s.handler.DeleteSlot)
}

func (s *SlotHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestSlotHandlerSuite(t *testing.T) {
	suite.Run(t, new(SlotHandlerTestSuite))
}

func (s *SlotHandlerTestSuite) TestListSlots() {
	s.Run("success: no range lists everything", func() {
		s.mockQueries.EXPECT().ListAll(gomock.Any()).
			Return([]*queries.SlotView{{ID: "slot-1"}}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/slots", nil, "")

		var response []resdto.SlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response, 1)
	})

	s.Run("success: from and to narrow the listing", func() {
		from := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)
		to := time.Date(2025, 6, 17, 0, 0, 0, 0, time.UTC)

		s.mockQueries.EXPECT().ListByRange(gomock.Any(), from, to).
			Return([]*queries.SlotView{}, nil)

		url := "/slots?from=2025-06-16T00:00:00Z&to=2025-06-17T00:00:00Z"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("success: date gives the calendar day view", func() {
		day := time.Date(2025, 6, 16, 0, 0, 0, 0, time.UTC)

		s.mockQueries.EXPECT().ListByDay(gomock.Any(), day).
			Return([]*queries.SlotView{}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/slots?date=2025-06-16", nil, "")

		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, nil)
	})

	s.Run("error: half a range is a bad request", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/slots?from=2025-06-16T00:00:00Z", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})

	s.Run("error: unparseable bounds are a bad request", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/slots?from=yesterday&to=tomorrow", nil, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *SlotHandlerTestSuite) TestCreateSlot() {
	start := time.Date(2025, 6, 16, 9, 0, 0, 0, time.UTC)
	end := start.Add(time.Hour)
	reqBody := map[string]any{
		"startTime": start.Format(time.RFC3339),
		"endTime":   end.Format(time.RFC3339),
	}

	s.Run("success: returns 201 with the created slot", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), start, end).
			Return(&queries.SlotView{ID: "slot-1", StartTime: start, EndTime: end}, nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/slots", reqBody, "")

		var response resdto.SlotResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal("slot-1", response.ID)
	})

	s.Run("error: 422 for a rejected window", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), start, end).
			Return(nil, commands.ErrInvalidTimeSlot)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/slots", reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnprocessableEntity, "")
	})

	s.Run("error: 400 for a body without times", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/slots", map[string]any{}, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
	})
}

func (s *SlotHandlerTestSuite) TestDeleteSlot() {
	s.Run("success: returns 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), "slot-1").Return(nil)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/slots/slot-1", nil, "")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
		}{
			{name: "not found", commandsError: commands.ErrSlotNotFound, expectedStatus: http.StatusNotFound},
			{name: "still booked", commandsError: commands.ErrSlotBooked, expectedStatus: http.StatusConflict},
			{name: "store failure", commandsError: errors.New("boom"), expectedStatus: http.StatusInternalServerError},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Delete(gomock.Any(), "slot-1").Return(tc.commandsError)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/slots/slot-1", nil, "")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, "")
			})
		}
	})
}
