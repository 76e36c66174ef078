package performance

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/erichsen0405/footy-trainer-app-voscxg-sub002/internal/auth"
	"github.com/erichsen0405/footy-trainer-app-voscxg-sub002/internal/telemetry/tracing"
	"github.com/erichsen0405/footy-trainer-app-voscxg-sub002/pkg"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=performance_test

type summaryService interface {
	WeeklySummary(ctx context.Context, userID uuid.UUID, today time.Time) (Summary, error)
	Compute(req SnapshotRequest) SnapshotResult
}

type WeekResponse struct {
	Summary
	Today     string `json:"today"`
	WeekStart string `json:"weekStart"`
	WeekEnd   string `json:"weekEnd"`
	// Degraded is set when the statistics could not be loaded and the zero summary is shown.
	Degraded bool `json:"degraded"`
}

type Handler struct {
	service summaryService
	loc     *time.Location
	now     func() time.Time
}

func NewHandler(service summaryService, loc *time.Location) *Handler {
	return &Handler{
		service: service,
		loc:     loc,
		now:     time.Now,
	}
}

func (h *Handler) today(r *http.Request) (time.Time, bool) {
	todayParam := r.URL.Query().Get("today")
	if todayParam == "" {
		now := h.now().In(h.loc)
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, h.loc), true
	}
	today, err := time.ParseInLocation(DayLayout, todayParam, h.loc)
	if err != nil {
		return time.Time{}, false
	}
	return today, true
}

func (h *Handler) HandleWeek(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.performance.week")
	defer span.End()

	userID, err := auth.UserIDFromContext(ctx)
	if err != nil {
		http.Error(w, "missing user", http.StatusUnauthorized)
		return
	}

	today, ok := h.today(r)
	if !ok {
		http.Error(w, "invalid today, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}
	weekStart, weekEnd := WeekBounds(today)

	resp := WeekResponse{
		Today:     FormatDay(today),
		WeekStart: FormatDay(weekStart),
		WeekEnd:   FormatDay(weekEnd.AddDate(0, 0, -1)),
	}

	summary, err := h.service.WeeklySummary(ctx, userID, today)
	if err != nil {
		// the app shows zeroed statistics instead of an error
		log.Errorf("handle performance week for %s: %s", userID, err)
		span.SetStatus(codes.Error, "degraded")
		resp.Summary = ZeroSummary()
		resp.Degraded = true
	} else {
		resp.Summary = summary
	}

	pkg.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) HandleCompute(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.performance.compute")
	defer span.End()

	var req SnapshotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Errorf("performance compute, unmarshal json params: %s", err)
		http.Error(w, "invalid snapshot", http.StatusBadRequest)
		return
	}

	if req.TodayIso == "" {
		req.TodayIso = FormatDay(h.now().In(h.loc))
	} else if _, err := ParseDay(DayKey(req.TodayIso)); err != nil {
		http.Error(w, "invalid todayIso, expected YYYY-MM-DD", http.StatusBadRequest)
		return
	}

	pkg.WriteJSON(w, h.service.Compute(req), http.StatusOK)
}
