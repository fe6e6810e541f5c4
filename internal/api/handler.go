package api

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/bizdays/internal/bizday"
	"github.com/guttosm/bizdays/internal/domain/dto"
	"github.com/guttosm/bizdays/internal/service"
)

const dateLayout = "2006-01-02"

// Handler provides HTTP handlers for business-day endpoints.
//
// Responsibilities:
//   - Validate incoming HTTP query parameters
//   - Interact with the service layer
//   - Translate service results into response DTOs
//   - Return structured JSON responses with appropriate HTTP status codes
type Handler struct {
	svc service.BusinessDayService
}

// NewHandler constructs a new Handler instance.
func NewHandler(svc service.BusinessDayService) *Handler {
	return &Handler{svc: svc}
}

// GetAdvance handles GET /api/v1/business-days/advance requests.
//
// Query Parameters:
//   - calendar (string, required): Calendar short name (e.g., "USNYSE").
//   - date (string, required): Anchor date in YYYY-MM-DD format.
//   - days (int, required): Signed business-day count; may be negative or zero.
//
// GetAdvance godoc
// @Summary      Advance a date by business days
// @Description  Walks the signed number of business days from the anchor date under the given calendar. A non-business-day anchor is first rolled forward, so zero days can still move the date.
// @Tags         business-days
// @Produce      json
// @Param        calendar  query     string  true  "Calendar short name" example(USNYSE)
// @Param        date      query     string  true  "Anchor date in YYYY-MM-DD" example(2023-01-03)
// @Param        days      query     int     true  "Signed business-day count" example(5)
// @Success      200       {object}  dto.AdvanceResponse  "Success"
// @Failure      400       {object}  dto.ErrorResponse    "Bad Request"
// @Failure      404       {object}  dto.ErrorResponse    "Unknown calendar"
// @Router       /api/v1/business-days/advance [get]
func (h *Handler) GetAdvance(c *gin.Context) {
	// ─── Validate "calendar" param ────────────────────────────
	calName := strings.TrimSpace(c.Query("calendar"))
	if calName == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("calendar is required", nil))
		return
	}

	// ─── Parse "date" param ───────────────────────────────────
	anchor, err := time.Parse(dateLayout, c.Query("date"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid date format, expected YYYY-MM-DD", err))
		return
	}

	// ─── Parse "days" param ───────────────────────────────────
	days, err := strconv.ParseInt(c.Query("days"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid days, expected a signed integer", err))
		return
	}

	// ─── Query service (with request context) ─────────────────
	result, err := h.svc.Advance(c.Request.Context(), calName, anchor, days)
	if err != nil {
		if errors.Is(err, bizday.ErrUnknownCalendar) {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse("unknown calendar", err))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to advance date", err))
		return
	}

	// ─── Build and return response DTO ────────────────────────
	c.JSON(http.StatusOK, dto.AdvanceResponse{
		Calendar:     calName,
		Anchor:       anchor.Format(dateLayout),
		BusinessDays: days,
		Result:       result.Format(dateLayout),
	})
}

// GetCount handles GET /api/v1/business-days/count requests.
//
// Query Parameters:
//   - calendar (string, required): Calendar short name.
//   - from (string, required): Range start in YYYY-MM-DD format (inclusive).
//   - to (string, required): Range end in YYYY-MM-DD format (inclusive).
//
// GetCount godoc
// @Summary      Count business days in a date range
// @Description  Returns the number of business days in the inclusive range [from, to] under the given calendar.
// @Tags         business-days
// @Produce      json
// @Param        calendar  query     string  true  "Calendar short name" example(USNYSE)
// @Param        from      query     string  true  "Range start in YYYY-MM-DD" example(2023-01-03)
// @Param        to        query     string  true  "Range end in YYYY-MM-DD" example(2023-01-10)
// @Success      200       {object}  dto.CountResponse  "Success"
// @Failure      400       {object}  dto.ErrorResponse  "Bad Request"
// @Failure      404       {object}  dto.ErrorResponse  "Unknown calendar"
// @Router       /api/v1/business-days/count [get]
func (h *Handler) GetCount(c *gin.Context) {
	calName := strings.TrimSpace(c.Query("calendar"))
	if calName == "" {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("calendar is required", nil))
		return
	}

	from, err := time.Parse(dateLayout, c.Query("from"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid from date, expected YYYY-MM-DD", err))
		return
	}
	to, err := time.Parse(dateLayout, c.Query("to"))
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("invalid to date, expected YYYY-MM-DD", err))
		return
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, dto.NewErrorResponse("from must not be after to", nil))
		return
	}

	count, err := h.svc.Count(c.Request.Context(), calName, from, to)
	if err != nil {
		if errors.Is(err, bizday.ErrUnknownCalendar) {
			c.JSON(http.StatusNotFound, dto.NewErrorResponse("unknown calendar", err))
			return
		}
		c.JSON(http.StatusInternalServerError, dto.NewErrorResponse("failed to count business days", err))
		return
	}

	c.JSON(http.StatusOK, dto.CountResponse{
		Calendar:     calName,
		From:         from.Format(dateLayout),
		To:           to.Format(dateLayout),
		BusinessDays: count,
	})
}

// ListCalendars handles GET /api/v1/calendars requests.
//
// ListCalendars godoc
// @Summary      List registered calendars
// @Description  Returns the short names and descriptions of every registered holiday calendar.
// @Tags         calendars
// @Produce      json
// @Success      200  {array}  models.CalendarInfo  "Success"
// @Router       /api/v1/calendars [get]
func (h *Handler) ListCalendars(c *gin.Context) {
	c.JSON(http.StatusOK, h.svc.Calendars(c.Request.Context()))
}
