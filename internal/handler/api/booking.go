package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "slotbook/internal/handler/dto/request"
	resdto "slotbook/internal/handler/dto/response"
	"slotbook/internal/handler/middleware"
	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type BookingHandler struct {
	bookingCommands commands.BookingCommands
	bookingQueries  queries.BookingQueries
}

func NewBookingHandler(bookingCommands commands.BookingCommands, bookingQueries queries.BookingQueries) *BookingHandler {
	return &BookingHandler{
		bookingCommands: bookingCommands,
		bookingQueries:  bookingQueries,
	}
}

// @Summary List bookings
// @Description Providers see every booking, clients only their own; results are
// @Description status-enriched and sorted today, upcoming, past
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param from query string false "Range start (RFC3339)"
// @Param to query string false "Range end (RFC3339)"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /bookings [get]
func (h *BookingHandler) ListBookings(c *gin.Context) {
	fromStr, toStr := c.Query("from"), c.Query("to")
	if fromStr != "" || toStr != "" {
		from, err := time.Parse(time.RFC3339, fromStr)
		var to time.Time
		if err == nil {
			to, err = time.Parse(time.RFC3339, toStr)
		}
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid range format, expected RFC3339 timestamps",
			})
			return
		}
		views, err := h.bookingQueries.ListByDateRange(c.Request.Context(), from, to)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, resdto.FromBookingViews(views))
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}
	role, ok := middleware.GetUserRole(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	views, err := h.bookingQueries.ListForUser(c.Request.Context(), userID, role)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Get booking
// @Description Get a single booking by id, status-enriched
// @Tags bookings
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 200 {object} resdto.BookingResponse
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [get]
func (h *BookingHandler) GetBooking(c *gin.Context) {
	view, err := h.bookingQueries.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, queries.ErrBookingNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Booking not found",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

// @Summary Create booking
// @Description Reserve an available time slot for a customer
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateBookingRequest true "Booking request"
// @Success 201 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /bookings [post]
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	var req reqdto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{
			"error": "User not authenticated",
		})
		return
	}

	view, err := h.bookingCommands.Reserve(c.Request.Context(), req.ToParams(), userID)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resdto.FromBookingView(view))
}

// @Summary Cancel booking
// @Description Delete a booking and release its time slot
// @Tags bookings
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Router /bookings/{id} [delete]
func (h *BookingHandler) CancelBooking(c *gin.Context) {
	if err := h.bookingCommands.Cancel(c.Request.Context(), c.Param("id")); err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// @Summary Reschedule booking
// @Description Move an existing booking to a different available time slot
// @Tags bookings
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking ID"
// @Param request body reqdto.RescheduleBookingRequest true "Target slot"
// @Success 200 {object} resdto.BookingResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /bookings/{id}/reschedule [post]
func (h *BookingHandler) RescheduleBooking(c *gin.Context) {
	var req reqdto.RescheduleBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.bookingCommands.Reschedule(c.Request.Context(), c.Param("id"), req.TimeSlotID)
	if err != nil {
		h.respondCommandError(c, err)
		return
	}

	c.JSON(http.StatusOK, resdto.FromBookingView(view))
}

func (h *BookingHandler) respondCommandError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, commands.ErrSlotNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Time slot not found",
		})
	case errors.Is(err, commands.ErrBookingNotFound):
		c.JSON(http.StatusNotFound, gin.H{
			"error": "Booking not found",
		})
	case errors.Is(err, commands.ErrSlotUnavailable):
		c.JSON(http.StatusConflict, gin.H{
			"error": "Time slot is already booked or in the past",
		})
	case errors.Is(err, commands.ErrDomainValidation):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error": "Invalid booking details",
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
	}
}
