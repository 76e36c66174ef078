package training

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/erichsen0405/footy-trainer-app-voscxg-sub002/internal/performance"
	"github.com/erichsen0405/footy-trainer-app-voscxg-sub002/internal/telemetry/tracing"
	"github.com/erichsen0405/footy-trainer-app-voscxg-sub002/pkg"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrActivityNotFound = errors.New("activity not found")
	ErrTaskNotFound     = errors.New("task not found")
	ErrEventNotFound    = errors.New("external event not found")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) ListInternalTasks(ctx context.Context, userID uuid.UUID, from, to time.Time) (_ []performance.InternalTask, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.internaltasks.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	spanRange(span, userID, from, to)

	rows, err := r.db.Query(ctx, `
		SELECT t.id::text, t.activity_id::text, t.title, t.description, t.completed,
		       a.activity_date::text,
		       COALESCE(t.task_template_id::text, ''),
		       COALESCE(t.feedback_template_id::text, '')
		FROM activity_task t
		JOIN activity a ON a.id = t.activity_id
		WHERE a.user_id = $1
		  AND a.activity_date >= $2
		  AND a.activity_date < $3
	`, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]performance.InternalTask, 0)
	for rows.Next() {
		var task performance.InternalTask
		var activityDate string
		if err := rows.Scan(
			&task.ID, &task.ActivityID, &task.Title, &task.Description, &task.Completed,
			&activityDate, &task.TaskTemplateID, &task.FeedbackTemplateID,
		); err != nil {
			return nil, err
		}
		task.ActivityDate = performance.DateString(activityDate)
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

func (r *Repo) ListExternalTasks(ctx context.Context, userID uuid.UUID, from, to time.Time) (_ []performance.ExternalTask, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.externaltasks.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	spanRange(span, userID, from, to)

	rows, err := r.db.Query(ctx, `
		SELECT t.id::text, t.completed, e.id::text, e.start_date::text, e.deleted
		FROM external_event_task t
		JOIN external_event e ON e.id = t.external_event_id
		WHERE e.user_id = $1
		  AND e.start_date >= $2
		  AND e.start_date < $3
	`, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]performance.ExternalTask, 0)
	for rows.Next() {
		var task performance.ExternalTask
		var event performance.ExternalEvent
		var startDate *string
		if err := rows.Scan(&task.ID, &task.Completed, &event.ID, &startDate, &event.Deleted); err != nil {
			return nil, err
		}
		if startDate != nil {
			event.StartDate = performance.DateString(*startDate)
		}
		task.Event = performance.RefTo(event)
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}

func (r *Repo) ListInternalIntensity(ctx context.Context, userID uuid.UUID, from, to time.Time) (_ []performance.InternalIntensity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.internalintensity.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	spanRange(span, userID, from, to)

	rows, err := r.db.Query(ctx, `
		SELECT id::text, activity_date::text, intensity_enabled, intensity::float8
		FROM activity
		WHERE user_id = $1
		  AND (intensity_enabled OR intensity IS NOT NULL)
		  AND activity_date >= $2
		  AND activity_date < $3
	`, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]performance.InternalIntensity, 0)
	for rows.Next() {
		var row performance.InternalIntensity
		var activityDate string
		var intensity *float64
		if err := rows.Scan(&row.ID, &activityDate, &row.IntensityEnabled, &intensity); err != nil {
			return nil, err
		}
		row.ActivityDate = performance.DateString(activityDate)
		row.Intensity = numberFromPtr(intensity)
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *Repo) ListExternalIntensity(ctx context.Context, userID uuid.UUID, from, to time.Time) (_ []performance.ExternalIntensity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.externalintensity.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	spanRange(span, userID, from, to)

	rows, err := r.db.Query(ctx, `
		SELECT m.id::text, m.intensity_enabled, m.intensity::float8,
		       e.id::text, e.start_date::text, e.deleted
		FROM external_event_meta m
		JOIN external_event e ON e.id = m.external_event_id
		WHERE m.user_id = $1
		  AND (m.intensity_enabled OR m.intensity IS NOT NULL)
		  AND e.start_date >= $2
		  AND e.start_date < $3
	`, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]performance.ExternalIntensity, 0)
	for rows.Next() {
		var row performance.ExternalIntensity
		var event performance.ExternalEvent
		var intensity *float64
		var startDate *string
		if err := rows.Scan(
			&row.ID, &row.IntensityEnabled, &intensity,
			&event.ID, &startDate, &event.Deleted,
		); err != nil {
			return nil, err
		}
		if startDate != nil {
			event.StartDate = performance.DateString(*startDate)
		}
		row.Intensity = numberFromPtr(intensity)
		row.Event = performance.RefTo(event)
		result = append(result, row)
	}
	return result, rows.Err()
}

func (r *Repo) ListFeedback(ctx context.Context, userID uuid.UUID, activityIDs []string) (_ []performance.Feedback, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.feedback.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("user", userID.String()))
	span.SetAttributes(attribute.Int("activities", len(activityIDs)))

	result := make([]performance.Feedback, 0)
	if len(activityIDs) == 0 {
		return result, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT activity_id::text,
		       COALESCE(task_instance_id::text, ''),
		       template_id::text,
		       rating::float8,
		       COALESCE(note, '')
		FROM task_feedback
		WHERE user_id = $1
		  AND activity_id::text = ANY($2::text[])
	`, userID, activityIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var fb performance.Feedback
		var rating *float64
		if err := rows.Scan(&fb.ActivityID, &fb.TaskInstanceID, &fb.TemplateID, &rating, &fb.Note); err != nil {
			return nil, err
		}
		fb.Rating = numberFromPtr(rating)
		result = append(result, fb)
	}
	return result, rows.Err()
}

func (r *Repo) ListActivities(ctx context.Context, userID uuid.UUID, from, to time.Time) (_ []Activity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.activities.list")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	spanRange(span, userID, from, to)

	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, title, location, activity_date, intensity_enabled, intensity, updated_at
		FROM activity
		WHERE user_id = $1
		  AND activity_date >= $2
		  AND activity_date < $3
		ORDER BY activity_date, created_at
	`, userID, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	activities := make([]Activity, 0)
	byID := make(map[uuid.UUID]int)
	for rows.Next() {
		var a Activity
		if err := rows.Scan(
			&a.ID, &a.UserID, &a.Title, &a.Location, &a.ActivityDate,
			&a.IntensityEnabled, &a.Intensity, &a.UpdatedAt,
		); err != nil {
			return nil, err
		}
		a.Tasks = make([]Task, 0)
		byID[a.ID] = len(activities)
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(activities) == 0 {
		return activities, nil
	}

	ids := make([]uuid.UUID, 0, len(activities))
	for _, a := range activities {
		ids = append(ids, a.ID)
	}
	tasks, err := r.listTasks(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list activity tasks: %w", err)
	}
	for _, task := range tasks {
		if i, ok := byID[task.ActivityID]; ok {
			activities[i].Tasks = append(activities[i].Tasks, task)
		}
	}

	return activities, nil
}

func (r *Repo) GetActivity(ctx context.Context, userID, id uuid.UUID) (_ *Activity, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.activities.get")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("id", id.String()))

	a := &Activity{}
	err = r.db.
		QueryRow(ctx, `
			SELECT id, user_id, title, location, activity_date, intensity_enabled, intensity, updated_at
			FROM activity
			WHERE id = $1 AND user_id = $2
		`, id, userID).
		Scan(&a.ID, &a.UserID, &a.Title, &a.Location, &a.ActivityDate, &a.IntensityEnabled, &a.Intensity, &a.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}

	a.Tasks, err = r.listTasks(ctx, []uuid.UUID{a.ID})
	if err != nil {
		return nil, fmt.Errorf("list activity tasks: %w", err)
	}
	return a, nil
}

func (r *Repo) listTasks(ctx context.Context, activityIDs []uuid.UUID) ([]Task, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, activity_id, title, description, completed, task_template_id, feedback_template_id
		FROM activity_task
		WHERE activity_id = ANY($1)
		ORDER BY created_at
	`, activityIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := make([]Task, 0)
	for rows.Next() {
		var t Task
		if err := rows.Scan(
			&t.ID, &t.ActivityID, &t.Title, &t.Description, &t.Completed,
			&t.TaskTemplateID, &t.FeedbackTemplateID,
		); err != nil {
			return nil, err
		}
		tasks = append(tasks, t)
	}
	return tasks, rows.Err()
}

func (r *Repo) UpdateActivity(ctx context.Context, userID uuid.UUID, a *Activity) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.activities.update")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("id", a.ID.String()))

	tag, err := r.db.Exec(ctx, `
		UPDATE activity
		SET title = $1, location = $2, activity_date = $3, intensity_enabled = $4, updated_at = now()
		WHERE id = $5 AND user_id = $6
	`, a.Title, a.Location, a.ActivityDate, a.IntensityEnabled, a.ID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrActivityNotFound
	}
	return nil
}

func (r *Repo) SetTaskCompleted(ctx context.Context, userID, taskID uuid.UUID, completed bool) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.tasks.setcompleted")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("id", taskID.String()))
	span.SetAttributes(attribute.Bool("completed", completed))

	tag, err := r.db.Exec(ctx, `
		UPDATE activity_task t
		SET completed = $1
		FROM activity a
		WHERE t.id = $2
		  AND a.id = t.activity_id
		  AND a.user_id = $3
	`, completed, taskID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrTaskNotFound
	}
	return nil
}

func (r *Repo) SetExternalTaskCompleted(ctx context.Context, userID, taskID uuid.UUID, completed bool) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.externaltasks.setcompleted")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("id", taskID.String()))

	tag, err := r.db.Exec(ctx, `
		UPDATE external_event_task t
		SET completed = $1
		FROM external_event e
		WHERE t.id = $2
		  AND e.id = t.external_event_id
		  AND e.user_id = $3
		  AND NOT e.deleted
	`, completed, taskID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrTaskNotFound
	}
	return nil
}

// SetActivityIntensity stores the rating of an activity. A nil intensity clears
// the rating while keeping intensity tracking enabled.
func (r *Repo) SetActivityIntensity(ctx context.Context, userID, activityID uuid.UUID, intensity *int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.activities.setintensity")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("id", activityID.String()))

	tag, err := r.db.Exec(ctx, `
		UPDATE activity
		SET intensity = $1, intensity_enabled = true, updated_at = now()
		WHERE id = $2 AND user_id = $3
	`, intensity, activityID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrActivityNotFound
	}
	return nil
}

func (r *Repo) SetExternalIntensity(ctx context.Context, userID, eventID uuid.UUID, intensity *int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.externalintensity.set")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("event", eventID.String()))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	var exists bool
	err = tx.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM external_event WHERE id = $1 AND user_id = $2 AND NOT deleted)
	`, eventID, userID).Scan(&exists)
	if err != nil {
		return err
	}
	if !exists {
		return ErrEventNotFound
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO external_event_meta (user_id, external_event_id, intensity_enabled, intensity)
		VALUES ($1, $2, true, $3)
		ON CONFLICT (user_id, external_event_id)
		DO UPDATE SET intensity_enabled = true, intensity = EXCLUDED.intensity
	`, userID, eventID, intensity)
	if pkg.IsForeignKeyViolationError(err) {
		return ErrEventNotFound
	}
	return err
}

func (r *Repo) SoftDeleteExternalEvent(ctx context.Context, userID, eventID uuid.UUID) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.externalevents.softdelete")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("id", eventID.String()))

	tag, err := r.db.Exec(ctx, `
		UPDATE external_event
		SET deleted = true
		WHERE id = $1 AND user_id = $2
	`, eventID, userID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrEventNotFound
	}
	return nil
}

func (r *Repo) UpsertFeedback(ctx context.Context, userID uuid.UUID, input FeedbackInput) (_ *FeedbackRecord, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.training.feedback.upsert")
	defer func() { tracing.EndSpanWithErrCheck(span, err) }()
	span.SetAttributes(attribute.String("activity", input.ActivityID.String()))

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			if rollbackErr := tx.Rollback(ctx); rollbackErr != nil {
				err = fmt.Errorf("rollback transaction: %w: %w", rollbackErr, err)
			}
		} else {
			err = tx.Commit(ctx)
		}
	}()

	var owned bool
	err = tx.QueryRow(ctx, `
		SELECT EXISTS(SELECT 1 FROM activity WHERE id = $1 AND user_id = $2)
	`, input.ActivityID, userID).Scan(&owned)
	if err != nil {
		return nil, err
	}
	if !owned {
		return nil, ErrActivityNotFound
	}

	record := &FeedbackRecord{FeedbackInput: input}
	var note *string
	if input.Note != "" {
		note = &input.Note
	}
	err = tx.QueryRow(ctx, `
		INSERT INTO task_feedback (user_id, activity_id, task_instance_id, template_id, rating, note)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (activity_id, template_id)
		DO UPDATE SET task_instance_id = EXCLUDED.task_instance_id,
		              rating = EXCLUDED.rating,
		              note = EXCLUDED.note,
		              updated_at = now()
		RETURNING id, updated_at
	`,
		userID, input.ActivityID, input.TaskInstanceID, input.TemplateID, input.Rating, note,
	).Scan(&record.ID, &record.UpdatedAt)
	if err != nil {
		// activity removed between the ownership check and the insert
		if pkg.IsForeignKeyViolationError(err) {
			return nil, ErrActivityNotFound
		}
		return nil, err
	}
	return record, nil
}

func numberFromPtr(v *float64) performance.Number {
	if v == nil {
		return performance.Number{}
	}
	return performance.NewNumber(*v)
}

type attributeSetter interface {
	SetAttributes(kv ...attribute.KeyValue)
}

func spanRange(span attributeSetter, userID uuid.UUID, from, to time.Time) {
	span.SetAttributes(
		attribute.String("user", userID.String()),
		attribute.String("from", from.Format(time.DateOnly)),
		attribute.String("to", to.Format(time.DateOnly)),
	)
}
