package performance

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/erichsen0405/footy-trainer-app-voscxg-sub002/internal/telemetry/metrics"
	"github.com/erichsen0405/footy-trainer-app-voscxg-sub002/internal/telemetry/tracing"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"golang.org/x/sync/errgroup"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=performance_test

// weekReader loads the rows of one user; from/to bound the calendar day as >= from and < to.
type weekReader interface {
	ListInternalTasks(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]InternalTask, error)
	ListExternalTasks(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]ExternalTask, error)
	ListInternalIntensity(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]InternalIntensity, error)
	ListExternalIntensity(ctx context.Context, userID uuid.UUID, from, to time.Time) ([]ExternalIntensity, error)
	ListFeedback(ctx context.Context, userID uuid.UUID, activityIDs []string) ([]Feedback, error)
}

type summaryCache interface {
	Get(ctx context.Context, userID uuid.UUID, todayIso string) (Summary, bool, error)
	// Generation changes on every Delete of the user.
	Generation(ctx context.Context, userID uuid.UUID) (int64, error)
	// Set stores the summary only while the user's generation still equals generation.
	Set(ctx context.Context, userID uuid.UUID, todayIso string, generation int64, summary Summary) (bool, error)
	Delete(ctx context.Context, userID uuid.UUID) error
}

// SnapshotRequest carries rows the client already fetched for one week.
type SnapshotRequest struct {
	InternalTasks         []InternalTask      `json:"internalTasks"`
	ExternalTasks         []ExternalTask      `json:"externalTasks"`
	Feedback              []Feedback          `json:"feedback"`
	InternalIntensityRows []InternalIntensity `json:"internalIntensityRows"`
	ExternalIntensityRows []ExternalIntensity `json:"externalIntensityRows"`
	TodayIso              string              `json:"todayIso"`
}

type SnapshotResult struct {
	Summary         Summary `json:"summary"`
	TaskTotals      Totals  `json:"taskTotals"`
	IntensityTotals Totals  `json:"intensityTotals"`
}

type Service struct {
	reader   weekReader
	cache    summaryCache
	detector FeedbackTemplateDetector
	metrics  *metrics.Manager
}

type ServiceOption func(*Service)

func WithFeedbackDetector(detector FeedbackTemplateDetector) ServiceOption {
	return func(s *Service) {
		s.detector = detector
	}
}

// NewService creates the weekly statistics service. cache may be nil.
func NewService(reader weekReader, cache summaryCache, metricsManager *metrics.Manager, opts ...ServiceOption) *Service {
	s := &Service{
		reader:   reader,
		cache:    cache,
		detector: DetectFeedbackTemplate,
		metrics:  metricsManager,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// WeeklySummary computes the summary for the Monday-based week containing today.
// If any read fails, the zero summary is returned together with the error; a
// partially loaded week is never summarized.
func (s *Service) WeeklySummary(ctx context.Context, userID uuid.UUID, today time.Time) (_ Summary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "service.performance.weeklysummary")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()

	todayIso := FormatDay(today)
	span.SetAttributes(
		attribute.String("user", userID.String()),
		attribute.String("today", todayIso),
	)

	if summary, ok := s.cachedSummary(ctx, userID, todayIso); ok {
		span.SetAttributes(attribute.Bool("cached", true))
		return summary, nil
	}

	// read before loading; a Delete during the load turns Set into a no-op
	generation, cacheable := s.cacheGeneration(ctx, userID)

	start := time.Now()
	summary, err := s.loadAndSummarize(ctx, userID, today)
	s.metrics.HistPerformanceDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		s.metrics.CounterPerformanceFailures.Inc()
		log.Errorf("weekly summary for user %s, day %s: %s", userID, todayIso, err)
		return ZeroSummary(), fmt.Errorf("weekly summary: %w", err)
	}
	s.metrics.CounterPerformanceRuns.WithLabelValues("week").Inc()

	if cacheable {
		stored, err := s.cache.Set(ctx, userID, todayIso, generation, summary)
		if err != nil {
			log.Warnf("cache weekly summary for %s: %s", userID, err)
		} else if !stored {
			log.Debugf("weekly summary for %s changed while computing, not cached", userID)
			s.metrics.CounterSummaryCache.WithLabelValues("stale").Inc()
		}
	}

	return summary, nil
}

func (s *Service) cacheGeneration(ctx context.Context, userID uuid.UUID) (int64, bool) {
	if s.cache == nil {
		return 0, false
	}
	generation, err := s.cache.Generation(ctx, userID)
	if err != nil {
		log.Warnf("get summary cache generation for %s: %s", userID, err)
		return 0, false
	}
	return generation, true
}

func (s *Service) cachedSummary(ctx context.Context, userID uuid.UUID, todayIso string) (Summary, bool) {
	if s.cache == nil {
		return Summary{}, false
	}
	summary, found, err := s.cache.Get(ctx, userID, todayIso)
	if err != nil {
		log.Warnf("get cached weekly summary for %s: %s", userID, err)
		s.metrics.CounterSummaryCache.WithLabelValues("error").Inc()
		return Summary{}, false
	}
	if !found {
		s.metrics.CounterSummaryCache.WithLabelValues("miss").Inc()
		return Summary{}, false
	}
	s.metrics.CounterSummaryCache.WithLabelValues("hit").Inc()
	return summary, true
}

func (s *Service) loadAndSummarize(ctx context.Context, userID uuid.UUID, today time.Time) (Summary, error) {
	from, to := WeekBounds(today)

	var (
		internalTasks     []InternalTask
		externalTasks     []ExternalTask
		feedback          []Feedback
		internalIntensity []InternalIntensity
		externalIntensity []ExternalIntensity
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.reader.ListInternalTasks(gctx, userID, from, to)
		if err != nil {
			return fmt.Errorf("list internal tasks: %w", err)
		}
		internalTasks = rows

		// feedback is scoped to the activities of the loaded tasks
		fb, err := s.reader.ListFeedback(gctx, userID, activityIDs(rows))
		if err != nil {
			return fmt.Errorf("list feedback: %w", err)
		}
		feedback = fb
		return nil
	})
	g.Go(func() error {
		rows, err := s.reader.ListExternalTasks(gctx, userID, from, to)
		if err != nil {
			return fmt.Errorf("list external tasks: %w", err)
		}
		externalTasks = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.reader.ListInternalIntensity(gctx, userID, from, to)
		if err != nil {
			return fmt.Errorf("list internal intensity: %w", err)
		}
		internalIntensity = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.reader.ListExternalIntensity(gctx, userID, from, to)
		if err != nil {
			return fmt.Errorf("list external intensity: %w", err)
		}
		externalIntensity = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return ZeroSummary(), err
	}

	result := s.Compute(SnapshotRequest{
		InternalTasks:         internalTasks,
		ExternalTasks:         externalTasks,
		Feedback:              feedback,
		InternalIntensityRows: internalIntensity,
		ExternalIntensityRows: externalIntensity,
		TodayIso:              FormatDay(today),
	})
	return result.Summary, nil
}

// Compute folds already loaded rows into the summary and both partial totals.
func (s *Service) Compute(req SnapshotRequest) SnapshotResult {
	taskTotals := CalculateTaskPerformanceTotals(TaskInput{
		Internal: req.InternalTasks,
		External: req.ExternalTasks,
		Feedback: req.Feedback,
		TodayIso: req.TodayIso,
		Detector: s.detector,
	})
	intensityTotals := CalculateIntensityPerformanceTotals(IntensityInput{
		Internal: req.InternalIntensityRows,
		External: req.ExternalIntensityRows,
		TodayIso: req.TodayIso,
	})
	return SnapshotResult{
		Summary:         Summarize(taskTotals, intensityTotals),
		TaskTotals:      taskTotals,
		IntensityTotals: intensityTotals,
	}
}

// Invalidate drops every cached summary of the user.
func (s *Service) Invalidate(ctx context.Context, userID uuid.UUID) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, userID); err != nil {
		log.Errorf("invalidate weekly summaries for %s: %s", userID, err)
	}
}

func activityIDs(tasks []InternalTask) []string {
	ids := make([]string, 0, len(tasks))
	for _, task := range tasks {
		if task.ActivityID != "" {
			ids = append(ids, task.ActivityID)
		}
	}
	slices.Sort(ids)
	return slices.Compact(ids)
}
