package training

import (
	"context"
	"fmt"
	"time"

	"github.com/erichsen0405/footy-trainer-app-voscxg-sub002/internal/telemetry/metrics"
	"github.com/erichsen0405/footy-trainer-app-voscxg-sub002/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=training_test

type activitiesRepo interface {
	ListActivities(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]Activity, error)
	GetActivity(ctx context.Context, userID, id uuid.UUID) (*Activity, error)
	UpdateActivity(ctx context.Context, userID uuid.UUID, a *Activity) error
	SetTaskCompleted(ctx context.Context, userID, taskID uuid.UUID, completed bool) error
	SetExternalTaskCompleted(ctx context.Context, userID, taskID uuid.UUID, completed bool) error
	SetActivityIntensity(ctx context.Context, userID, activityID uuid.UUID, intensity *int) error
	SetExternalIntensity(ctx context.Context, userID, eventID uuid.UUID, intensity *int) error
	SoftDeleteExternalEvent(ctx context.Context, userID, eventID uuid.UUID) error
	UpsertFeedback(ctx context.Context, userID uuid.UUID, input FeedbackInput) (*FeedbackRecord, error)
}

// statsInvalidator drops derived statistics of a user after a write.
type statsInvalidator interface {
	Invalidate(ctx context.Context, userID uuid.UUID)
}

type Service struct {
	repo        activitiesRepo
	cache       *ActivityCache
	invalidator statsInvalidator
	metrics     *metrics.Manager
}

func NewService(
	repo activitiesRepo,
	cache *ActivityCache,
	invalidator statsInvalidator,
	metricsManager *metrics.Manager,
) *Service {
	return &Service{
		repo:        repo,
		cache:       cache,
		invalidator: invalidator,
		metrics:     metricsManager,
	}
}

func (s *Service) ListActivities(ctx context.Context, userID uuid.UUID, from, to time.Time) (_ []Activity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.activities.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if activities, ok := s.cache.Get(userID, from, to); ok {
		span.SetAttributes(attribute.Bool("cached", true))
		return activities, nil
	}

	activities, err := s.cache.Refresh(ctx, userID, from, to, func(ctx context.Context) ([]Activity, error) {
		return s.repo.ListActivities(ctx, userID, from, to)
	})
	if err != nil {
		return nil, fmt.Errorf("list activities: %w", err)
	}
	return activities, nil
}

func (s *Service) loadActivity(ctx context.Context, userID, id uuid.UUID) (*Activity, error) {
	if a, ok := s.cache.Find(userID, id); ok {
		return a, nil
	}
	return s.repo.GetActivity(ctx, userID, id)
}

// UpdateActivity applies the patch to the cached activity right away, then
// persists it. A failed write restores the cached activity to its previous state.
func (s *Service) UpdateActivity(ctx context.Context, userID, id uuid.UUID, patch ActivityPatch) (_ *Activity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.activities.update")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("id", id.String()))

	activity, err := s.loadActivity(ctx, userID, id)
	if err != nil {
		return nil, fmt.Errorf("get activity %s: %w", id, err)
	}

	err = s.applyOptimistic(userID, activity, PatchActivity(activity, patch), func() error {
		return s.repo.UpdateActivity(ctx, userID, activity)
	})
	if err != nil {
		return nil, fmt.Errorf("update activity %s: %w", id, err)
	}

	s.invalidator.Invalidate(ctx, userID)
	return activity, nil
}

func (s *Service) SetTaskCompleted(ctx context.Context, userID, taskID uuid.UUID, completed bool) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.tasks.setcompleted")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("id", taskID.String()))

	persist := func() error {
		return s.repo.SetTaskCompleted(ctx, userID, taskID, completed)
	}
	if activity, i, ok := s.cache.FindByTask(userID, taskID); ok {
		err = s.applyOptimistic(userID, activity, setTaskCompleted(activity, i, completed), persist)
	} else {
		err = persist()
	}
	if err != nil {
		return fmt.Errorf("set task %s completed: %w", taskID, err)
	}

	s.invalidator.Invalidate(ctx, userID)
	return nil
}

func (s *Service) SetExternalTaskCompleted(ctx context.Context, userID, taskID uuid.UUID, completed bool) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.externaltasks.setcompleted")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if err := s.repo.SetExternalTaskCompleted(ctx, userID, taskID, completed); err != nil {
		return fmt.Errorf("set external task %s completed: %w", taskID, err)
	}
	s.invalidator.Invalidate(ctx, userID)
	return nil
}

func (s *Service) SetActivityIntensity(ctx context.Context, userID, activityID uuid.UUID, intensity *int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.activities.setintensity")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	persist := func() error {
		return s.repo.SetActivityIntensity(ctx, userID, activityID, intensity)
	}
	if activity, ok := s.cache.Find(userID, activityID); ok {
		err = s.applyOptimistic(userID, activity, setIntensity(activity, intensity), persist)
	} else {
		err = persist()
	}
	if err != nil {
		return fmt.Errorf("set activity %s intensity: %w", activityID, err)
	}

	s.invalidator.Invalidate(ctx, userID)
	return nil
}

func (s *Service) SetExternalIntensity(ctx context.Context, userID, eventID uuid.UUID, intensity *int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.externalintensity.set")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if err := s.repo.SetExternalIntensity(ctx, userID, eventID, intensity); err != nil {
		return fmt.Errorf("set external event %s intensity: %w", eventID, err)
	}
	s.invalidator.Invalidate(ctx, userID)
	return nil
}

func (s *Service) SoftDeleteExternalEvent(ctx context.Context, userID, eventID uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.externalevents.softdelete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	if err := s.repo.SoftDeleteExternalEvent(ctx, userID, eventID); err != nil {
		return fmt.Errorf("delete external event %s: %w", eventID, err)
	}
	s.invalidator.Invalidate(ctx, userID)
	return nil
}

func (s *Service) SaveFeedback(ctx context.Context, userID uuid.UUID, input FeedbackInput) (_ *FeedbackRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.training.feedback.save")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	record, err := s.repo.UpsertFeedback(ctx, userID, input)
	if err != nil {
		return nil, fmt.Errorf("save feedback: %w", err)
	}
	s.invalidator.Invalidate(ctx, userID)
	return record, nil
}

// applyOptimistic publishes the already patched activity to the cache and runs
// persist. On failure it runs undo and publishes the restored activity.
func (s *Service) applyOptimistic(userID uuid.UUID, activity *Activity, undo func(), persist func() error) error {
	s.cache.Replace(userID, *activity)

	if err := persist(); err != nil {
		undo()
		s.cache.Replace(userID, *activity)
		s.metrics.CounterRollbacks.Inc()
		log.Warnf("rolled back activity %s for user %s: %s", activity.ID, userID, err)
		return err
	}
	return nil
}
