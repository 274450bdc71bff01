package api

import (
	"errors"
	"net/http"
	"time"

	reqdto "slotbook/internal/handler/dto/request"
	resdto "slotbook/internal/handler/dto/response"
	"slotbook/internal/usecase/commands"
	"slotbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type SlotHandler struct {
	slotCommands commands.SlotCommands
	slotQueries  queries.SlotQueries
}

func NewSlotHandler(slotCommands commands.SlotCommands, slotQueries queries.SlotQueries) *SlotHandler {
	return &SlotHandler{
		slotCommands: slotCommands,
		slotQueries:  slotQueries,
	}
}

// @Summary List time slots
// @Description List slots, optionally narrowed to a start-time range
// @Tags slots
// @Produce json
// @Security BearerAuth
// @Param from query string false "Range start (RFC3339)"
// @Param to query string false "Range end (RFC3339)"
// @Param date query string false "Calendar day (YYYY-MM-DD), overrides from/to"
// @Success 200 {array} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /slots [get]
func (h *SlotHandler) ListSlots(c *gin.Context) {
	fromStr, toStr := c.Query("from"), c.Query("to")

	if dateStr := c.Query("date"); dateStr != "" {
		day, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid date format, expected YYYY-MM-DD",
			})
			return
		}
		views, err := h.slotQueries.ListByDay(c.Request.Context(), day)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			return
		}
		c.JSON(http.StatusOK, resdto.FromSlotViews(views))
		return
	}

	var (
		views []*queries.SlotView
		err   error
	)
	switch {
	case fromStr == "" && toStr == "":
		views, err = h.slotQueries.ListAll(c.Request.Context())
	case fromStr != "" && toStr != "":
		var from, to time.Time
		from, err = time.Parse(time.RFC3339, fromStr)
		if err == nil {
			to, err = time.Parse(time.RFC3339, toStr)
		}
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{
				"error": "Invalid range format, expected RFC3339 timestamps",
			})
			return
		}
		views, err = h.slotQueries.ListByRange(c.Request.Context(), from, to)
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Both from and to must be provided for a range query",
		})
		return
	}

	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Internal server error",
		})
		return
	}

	c.JSON(http.StatusOK, resdto.FromSlotViews(views))
}

// @Summary Create time slot
// @Description Publish a new availability window (provider only)
// @Tags slots
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateSlotRequest true "Slot window"
// @Success 201 {object} resdto.SlotResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /slots [post]
func (h *SlotHandler) CreateSlot(c *gin.Context) {
	var req reqdto.CreateSlotRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request format",
		})
		return
	}

	view, err := h.slotCommands.Create(c.Request.Context(), req.StartTime, req.EndTime)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrInvalidTimeSlot):
			c.JSON(http.StatusUnprocessableEntity, gin.H{
				"error": "Time slot must lie in the future and end after it starts",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.FromSlotView(view))
}

// @Summary Delete time slot
// @Description Remove an availability window (provider only, must be unbooked)
// @Tags slots
// @Security BearerAuth
// @Param id path string true "Slot ID"
// @Success 204 "No Content"
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /slots/{id} [delete]
func (h *SlotHandler) DeleteSlot(c *gin.Context) {
	id := c.Param("id")

	if err := h.slotCommands.Delete(c.Request.Context(), id); err != nil {
		switch {
		case errors.Is(err, commands.ErrSlotNotFound):
			c.JSON(http.StatusNotFound, gin.H{
				"error": "Time slot not found",
			})
		case errors.Is(err, commands.ErrSlotBooked):
			c.JSON(http.StatusConflict, gin.H{
				"error": "Time slot has an active booking; cancel the booking first",
			})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
		}
		return
	}

	c.Status(http.StatusNoContent)
}
