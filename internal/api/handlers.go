package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/zapponejosh/fourpillars/internal/calendar"
	"github.com/zapponejosh/fourpillars/internal/config"
	"github.com/zapponejosh/fourpillars/internal/logger"
	"github.com/zapponejosh/fourpillars/internal/solarterm"
)

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	calc   *calendar.Calculator
	cfg    *config.Config
	logger *slog.Logger
	now    func() time.Time
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(calc *calendar.Calculator, cfg *config.Config, logger *slog.Logger) *Handlers {
	return &Handlers{
		calc:   calc,
		cfg:    cfg,
		logger: logger,
		now:    time.Now,
	}
}

// DailyGodResponse is the body of GET /api/v1/daily-god.
type DailyGodResponse struct {
	Time        time.Time         `json:"time"`
	DailyGod    calendar.DailyGod `json:"dailyGod"`
	DayBranch   string            `json:"dayBranch"`
	MonthBranch string            `json:"monthBranch"`
}

// DayEntry is one day of GET /api/v1/daily-gods.
type DayEntry struct {
	Date      string            `json:"date"`
	DayPillar string            `json:"dayPillar"`
	DailyGod  calendar.DailyGod `json:"dailyGod"`
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{
		"status": "healthy",
	})
}

// GetPillars handles GET /api/v1/pillars?datetime=...
func (h *Handlers) GetPillars(w http.ResponseWriter, r *http.Request) {
	at, ok := h.datetimeParam(w, r)
	if !ok {
		return
	}
	h.writeAlmanac(w, r, at)
}

// GetPillarsNow handles GET /api/v1/pillars/now
func (h *Handlers) GetPillarsNow(w http.ResponseWriter, r *http.Request) {
	h.writeAlmanac(w, r, h.now())
}

// GetDailyGod handles GET /api/v1/daily-god?datetime=...
func (h *Handlers) GetDailyGod(w http.ResponseWriter, r *http.Request) {
	at, ok := h.datetimeParam(w, r)
	if !ok {
		return
	}

	a, err := h.calc.Almanac(at)
	if err != nil {
		h.writeCalcError(w, r, at, err)
		return
	}

	WriteSuccess(w, DailyGodResponse{
		Time:        a.Time,
		DailyGod:    a.DailyGod,
		DayBranch:   a.Pillars.Day.Branch.DisplayName(),
		MonthBranch: a.Pillars.Month.Branch.DisplayName(),
	})
}

// GetDailyGodRange handles GET /api/v1/daily-gods?start=YYYY-MM-DD&end=YYYY-MM-DD
func (h *Handlers) GetDailyGodRange(w http.ResponseWriter, r *http.Request) {
	startStr := r.URL.Query().Get("start")
	endStr := r.URL.Query().Get("end")

	if startStr == "" || endStr == "" {
		WriteBadRequest(w, "Both start and end date parameters are required")
		return
	}

	startDate, err := calendar.ParseDateString(startStr)
	if err != nil {
		WriteInvalidDatetime(w, fmt.Sprintf("Invalid start date format: %s. Use YYYY-MM-DD", startStr))
		return
	}

	endDate, err := calendar.ParseDateString(endStr)
	if err != nil {
		WriteInvalidDatetime(w, fmt.Sprintf("Invalid end date format: %s. Use YYYY-MM-DD", endStr))
		return
	}

	if startDate.After(endDate) {
		WriteBadRequest(w, "Start date must be before or equal to end date")
		return
	}

	// Both dates are UTC+8 midnights, so the difference is whole days.
	days := int(endDate.Sub(startDate).Hours()/24) + 1
	if days > h.cfg.MaxRangeDays {
		WriteBadRequest(w, fmt.Sprintf("Date range cannot exceed %d days", h.cfg.MaxRangeDays))
		return
	}

	almanacs, err := h.calc.Days(startDate, endDate)
	if err != nil {
		h.writeCalcError(w, r, startDate, err)
		return
	}

	entries := make([]DayEntry, 0, len(almanacs))
	for _, a := range almanacs {
		entries = append(entries, DayEntry{
			Date:      calendar.FormatDate(a.Time),
			DayPillar: a.Pillars.Day.String(),
			DailyGod:  a.DailyGod,
		})
	}

	WriteSuccess(w, map[string]interface{}{
		"start": startStr,
		"end":   endStr,
		"days":  entries,
	})
}

// GetSolarTerms handles GET /api/v1/solar-terms/{year}
func (h *Handlers) GetSolarTerms(w http.ResponseWriter, r *http.Request) {
	yearStr := chi.URLParam(r, "year")
	year, err := strconv.Atoi(yearStr)
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid year: %s", yearStr))
		return
	}

	terms, err := solarterm.Terms(year)
	if err != nil {
		if errors.Is(err, solarterm.ErrOutOfRange) {
			WriteInvalidDatetime(w, fmt.Sprintf("Year must be between %d and %d", solarterm.MinYear, solarterm.MaxYear))
			return
		}
		logger.Error(r.Context(), h.logger, "failed to compute solar terms", err, slog.Int("year", year))
		WriteInternalError(w, "Failed to compute solar terms")
		return
	}

	WriteSuccess(w, map[string]interface{}{
		"year":  year,
		"terms": terms,
	})
}

// datetimeParam reads the required datetime query parameter, writing a 400
// response when it is missing or malformed.
func (h *Handlers) datetimeParam(w http.ResponseWriter, r *http.Request) (time.Time, bool) {
	value := r.URL.Query().Get("datetime")
	if value == "" {
		WriteBadRequest(w, "datetime parameter is required")
		return time.Time{}, false
	}

	at, err := calendar.ParseDatetime(value)
	if err != nil {
		WriteInvalidDatetime(w, fmt.Sprintf("Invalid datetime: %s. Use RFC 3339 or YYYY-MM-DD[ HH:MM[:SS]]", value))
		return time.Time{}, false
	}
	return at, true
}

func (h *Handlers) writeAlmanac(w http.ResponseWriter, r *http.Request, at time.Time) {
	a, err := h.calc.Almanac(at)
	if err != nil {
		h.writeCalcError(w, r, at, err)
		return
	}
	WriteSuccess(w, a)
}

// writeCalcError maps calculator failures onto HTTP responses.
func (h *Handlers) writeCalcError(w http.ResponseWriter, r *http.Request, at time.Time, err error) {
	if errors.Is(err, calendar.ErrInvalidDatetime) || errors.Is(err, solarterm.ErrOutOfRange) {
		WriteInvalidDatetime(w, fmt.Sprintf("Cannot compute pillars for %s: supported years are %d to %d",
			at.Format(time.RFC3339), solarterm.MinYear, solarterm.MaxYear))
		return
	}
	logger.Error(r.Context(), h.logger, "pillar calculation failed", err, slog.Time("datetime", at))
	WriteInternalError(w, "Failed to compute pillars")
}
