package handlers_fiber

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/H1dayet/StoreMonitoring/internal/api"
	"github.com/H1dayet/StoreMonitoring/internal/entities"
	"github.com/H1dayet/StoreMonitoring/internal/mapper"
	"github.com/H1dayet/StoreMonitoring/internal/stats"
)

const dateOnly = "2006-01-02"

// GetStatsSummary computes dashboard metrics. Query parameters:
// store, reason, status, range (today|last7|last30|this_month|
// last_month|custom) and, for custom ranges, start/end as YYYY-MM-DD
// (end inclusive of the whole day).
func (h *Handler) GetStatsSummary(c *fiber.Ctx) error {
	filter := entities.IssueFilter{
		StoreCode: c.Query("store"),
		Reason:    entities.IssueReason(c.Query("reason")),
		Status:    entities.IssueStatus(c.Query("status")),
	}

	rangeKey := stats.RangeKey(c.Query("range", string(stats.RangeAll)))
	switch rangeKey {
	case stats.RangeAll:
	case stats.RangeCustom:
		if start := c.Query("start"); start != "" {
			t, err := time.ParseInLocation(dateOnly, start, time.Local)
			if err != nil {
				return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid start date"))
			}
			from := stats.StartOfDay(t)
			filter.From = &from
		}
		if end := c.Query("end"); end != "" {
			t, err := time.ParseInLocation(dateOnly, end, time.Local)
			if err != nil {
				return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid end date"))
			}
			to := stats.EndOfDay(t)
			filter.To = &to
		}
	case stats.RangeToday, stats.RangeLast7, stats.RangeLast30, stats.RangeThisMonth, stats.RangeLastMonth:
		filter.From, filter.To = stats.RangeBounds(rangeKey, time.Now())
	default:
		return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "unknown range"))
	}

	summary, err := h.uc.StatsSummary(c.Context(), filter)
	if err != nil {
		h.log.Errorw("failed to compute stats", "error", err.Error())
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToAPIStatsSummary(summary))
}
