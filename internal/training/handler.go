package training

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/erichsen0405/footy-trainer-app-voscxg-sub002/internal/auth"
	"github.com/erichsen0405/footy-trainer-app-voscxg-sub002/internal/performance"
	"github.com/erichsen0405/footy-trainer-app-voscxg-sub002/internal/telemetry/tracing"
	"github.com/erichsen0405/footy-trainer-app-voscxg-sub002/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=handler_mocks_test.go -package=training_test

type service interface {
	ListActivities(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]Activity, error)
	UpdateActivity(ctx context.Context, userID, id uuid.UUID, patch ActivityPatch) (*Activity, error)
	SetTaskCompleted(ctx context.Context, userID, taskID uuid.UUID, completed bool) error
	SetExternalTaskCompleted(ctx context.Context, userID, taskID uuid.UUID, completed bool) error
	SetActivityIntensity(ctx context.Context, userID, activityID uuid.UUID, intensity *int) error
	SetExternalIntensity(ctx context.Context, userID, eventID uuid.UUID, intensity *int) error
	SoftDeleteExternalEvent(ctx context.Context, userID, eventID uuid.UUID) error
	SaveFeedback(ctx context.Context, userID uuid.UUID, input FeedbackInput) (*FeedbackRecord, error)
}

type Handler struct {
	service service
	loc     *time.Location
	now     func() time.Time
}

func NewHandler(service service, loc *time.Location) *Handler {
	return &Handler{
		service: service,
		loc:     loc,
		now:     time.Now,
	}
}

type completedRequest struct {
	Completed *bool `json:"completed"`
}

type intensityRequest struct {
	Intensity *int `json:"intensity"`
}

func (h *Handler) HandleListActivities(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.activities.list")
	defer span.End()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}

	from, to := performance.WeekBounds(h.now().In(h.loc))
	if fromParam := r.URL.Query().Get("from"); fromParam != "" {
		parsed, err := time.ParseInLocation(performance.DayLayout, fromParam, h.loc)
		if err != nil {
			http.Error(w, "invalid from date", http.StatusBadRequest)
			return
		}
		from = parsed
	}
	if toParam := r.URL.Query().Get("to"); toParam != "" {
		parsed, err := time.ParseInLocation(performance.DayLayout, toParam, h.loc)
		if err != nil {
			http.Error(w, "invalid to date", http.StatusBadRequest)
			return
		}
		to = parsed
	}
	if !to.After(from) {
		http.Error(w, "to must be after from", http.StatusBadRequest)
		return
	}

	activities, err := h.service.ListActivities(ctx, userID, from, to)
	if err != nil {
		log.Errorf("list activities for %s: %s", userID, err)
		http.Error(w, "list activities failed", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSON(w, activities, http.StatusOK)
}

func (h *Handler) HandleUpdateActivity(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.activities.update")
	defer span.End()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var patch ActivityPatch
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		log.Errorf("update activity, unmarshal json params: %s", err)
		http.Error(w, "invalid activity update", http.StatusBadRequest)
		return
	}
	if patch.IsEmpty() {
		http.Error(w, "nothing to update", http.StatusBadRequest)
		return
	}
	if patch.Title != nil && *patch.Title == "" {
		http.Error(w, "title must not be empty", http.StatusBadRequest)
		return
	}

	activity, err := h.service.UpdateActivity(ctx, userID, id, patch)
	if err != nil {
		writeServiceError(w, "update activity", err)
		return
	}

	pkg.WriteJSON(w, activity, http.StatusOK)
}

// HandleSetTaskCompleted marks an internal task, or an external one when ?source=external is given.
func (h *Handler) HandleSetTaskCompleted(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.tasks.setcompleted")
	defer span.End()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req completedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.Completed == nil {
		http.Error(w, "completed flag missing", http.StatusBadRequest)
		return
	}

	var err error
	switch r.URL.Query().Get("source") {
	case "", "internal":
		err = h.service.SetTaskCompleted(ctx, userID, id, *req.Completed)
	case "external":
		err = h.service.SetExternalTaskCompleted(ctx, userID, id, *req.Completed)
	default:
		http.Error(w, "unknown task source", http.StatusBadRequest)
		return
	}
	if err != nil {
		writeServiceError(w, "set task completed", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleSetActivityIntensity(w http.ResponseWriter, r *http.Request) {
	h.handleSetIntensity(w, r, "handler.training.activities.setintensity", h.service.SetActivityIntensity)
}

func (h *Handler) HandleSetExternalIntensity(w http.ResponseWriter, r *http.Request) {
	h.handleSetIntensity(w, r, "handler.training.externalintensity.set", h.service.SetExternalIntensity)
}

func (h *Handler) handleSetIntensity(
	w http.ResponseWriter,
	r *http.Request,
	spanName string,
	set func(ctx context.Context, userID, id uuid.UUID, intensity *int) error,
) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), spanName)
	defer span.End()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	var req intensityRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid intensity", http.StatusBadRequest)
		return
	}
	if req.Intensity != nil && (*req.Intensity < 1 || *req.Intensity > 10) {
		http.Error(w, "intensity must be between 1 and 10", http.StatusBadRequest)
		return
	}

	if err := set(ctx, userID, id, req.Intensity); err != nil {
		writeServiceError(w, "set intensity", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleDeleteExternalEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.externalevents.delete")
	defer span.End()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.SoftDeleteExternalEvent(ctx, userID, id); err != nil {
		writeServiceError(w, "delete external event", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) HandleSaveFeedback(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.training.feedback.save")
	defer span.End()

	userID, ok := requestUser(w, r)
	if !ok {
		return
	}

	var input FeedbackInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Errorf("save feedback, unmarshal json params: %s", err)
		http.Error(w, "invalid feedback", http.StatusBadRequest)
		return
	}
	if input.ActivityID == uuid.Nil || input.TemplateID == uuid.Nil {
		http.Error(w, "activity and template ids are required", http.StatusBadRequest)
		return
	}
	if input.Rating != nil && (*input.Rating < 1 || *input.Rating > 10) {
		http.Error(w, "rating must be between 1 and 10", http.StatusBadRequest)
		return
	}

	record, err := h.service.SaveFeedback(ctx, userID, input)
	if err != nil {
		writeServiceError(w, "save feedback", err)
		return
	}

	pkg.WriteJSON(w, record, http.StatusCreated)
}

func requestUser(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	userID, err := auth.UserIDFromContext(r.Context())
	if err != nil {
		http.Error(w, "missing user", http.StatusUnauthorized)
		return uuid.Nil, false
	}
	return userID, true
}

func pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return uuid.Nil, false
	}
	return id, true
}

func writeServiceError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, ErrActivityNotFound),
		errors.Is(err, ErrTaskNotFound),
		errors.Is(err, ErrEventNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	default:
		log.Errorf("%s: %s", op, err)
		http.Error(w, op+" failed", http.StatusInternalServerError)
	}
}
