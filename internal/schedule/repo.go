package schedule

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/workoutplanner/internal/db"
	"github.com/2beens/workoutplanner/internal/telemetry/tracing"
	"github.com/2beens/workoutplanner/internal/workouts"
	"github.com/2beens/workoutplanner/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrDayExists  = errors.New("day already exists")
	ErrLinkExists = errors.New("workout is already scheduled on this day")
)

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) AddDay(ctx context.Context, dayID string) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.add_day")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("day_id", dayID))

	return db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `INSERT INTO day (day_id) VALUES ($1)`, dayID); err != nil {
			if pkg.IsUniqueViolationError(err) {
				return ErrDayExists
			}
			return fmt.Errorf("add day: %w", err)
		}
		return nil
	})
}

func (r *Repo) Days(ctx context.Context) (_ []Day, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.days")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(ctx, `SELECT day_id FROM day ORDER BY day_id`)
	if err != nil {
		return nil, fmt.Errorf("days [query]: %w", err)
	}
	defer rows.Close()

	days := make([]Day, 0)
	for rows.Next() {
		var d Day
		if err := rows.Scan(&d.ID); err != nil {
			return nil, fmt.Errorf("days [rows scan]: %w", err)
		}
		days = append(days, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("days [rows]: %w", err)
	}

	return days, nil
}

func (r *Repo) WorkoutsByDay(ctx context.Context, dayID string) (_ []WorkoutSummary, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.workouts_by_day")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("day_id", dayID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT w.workout_id, w.name, COALESCE(w.description, ''), COALESCE(w.focus, ''), COALESCE(w.intensity, '')
			FROM workout w
			JOIN workout_on_day wd ON w.workout_id = wd.workout_id
			WHERE wd.day_id = $1
			ORDER BY w.workout_id
		`,
		dayID,
	)
	if err != nil {
		return nil, fmt.Errorf("workouts by day [query]: %w", err)
	}
	defer rows.Close()

	summaries := make([]WorkoutSummary, 0)
	for rows.Next() {
		var s WorkoutSummary
		if err := rows.Scan(&s.WorkoutID, &s.Name, &s.Description, &s.Focus, &s.Intensity); err != nil {
			return nil, fmt.Errorf("workouts by day [rows scan]: %w", err)
		}
		summaries = append(summaries, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("workouts by day [rows]: %w", err)
	}

	return summaries, nil
}

func (r *Repo) DayWorkouts(ctx context.Context, dayID string) (_ []workouts.Workout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.day_workouts")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("day_id", dayID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				w.workout_id, w.name, COALESCE(w.description, ''), COALESCE(w.intensity, ''),
				COALESCE(w.focus, ''), COALESCE(w.rating, $2)
			FROM workout w
			JOIN workout_on_day wd ON w.workout_id = wd.workout_id
			WHERE wd.day_id = $1
			ORDER BY w.workout_id
		`,
		dayID, workouts.DefaultRating,
	)
	if err != nil {
		return nil, fmt.Errorf("day workouts [query]: %w", err)
	}
	defer rows.Close()

	dayWorkouts := make([]workouts.Workout, 0)
	for rows.Next() {
		var w workouts.Workout
		if err := rows.Scan(&w.ID, &w.Name, &w.Description, &w.Intensity, &w.Focus, &w.Rating); err != nil {
			return nil, fmt.Errorf("day workouts [rows scan]: %w", err)
		}
		dayWorkouts = append(dayWorkouts, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("day workouts [rows]: %w", err)
	}

	return dayWorkouts, nil
}

func (r *Repo) LinkWorkout(ctx context.Context, dayID string, workoutID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.link_workout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("day_id", dayID),
		attribute.Int("workout_id", workoutID),
	)

	return db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		var exists bool
		if err := tx.QueryRow(
			ctx,
			`SELECT EXISTS (SELECT 1 FROM workout_on_day WHERE workout_id = $1 AND day_id = $2)`,
			workoutID, dayID,
		).Scan(&exists); err != nil {
			return fmt.Errorf("check link: %w", err)
		}
		if exists {
			return ErrLinkExists
		}

		if _, err := tx.Exec(
			ctx,
			`INSERT INTO workout_on_day (workout_id, day_id) VALUES ($1, $2)`,
			workoutID, dayID,
		); err != nil {
			if pkg.IsUniqueViolationError(err) {
				return ErrLinkExists
			}
			return fmt.Errorf("insert link: %w", err)
		}
		return nil
	})
}

// UnlinkWorkout succeeds whether or not the workout was scheduled on the day.
func (r *Repo) UnlinkWorkout(ctx context.Context, dayID string, workoutID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.unlink_workout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.String("day_id", dayID),
		attribute.Int("workout_id", workoutID),
	)

	return db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		if _, err := tx.Exec(
			ctx,
			`DELETE FROM workout_on_day WHERE workout_id = $1 AND day_id = $2`,
			workoutID, dayID,
		); err != nil {
			return fmt.Errorf("delete link: %w", err)
		}
		return nil
	})
}

func (r *Repo) Schedule(ctx context.Context) (_ []DayWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.schedule.schedule")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT d.day_id, w.workout_id, w.name, COALESCE(w.description, '')
			FROM day d
			JOIN workout_on_day wod ON d.day_id = wod.day_id
			JOIN workout w ON wod.workout_id = w.workout_id
			ORDER BY d.day_id, w.workout_id
		`,
	)
	if err != nil {
		return nil, fmt.Errorf("schedule [query]: %w", err)
	}
	defer rows.Close()

	planned := make([]DayWorkout, 0)
	for rows.Next() {
		var dw DayWorkout
		if err := rows.Scan(&dw.DayID, &dw.WorkoutID, &dw.Name, &dw.Description); err != nil {
			return nil, fmt.Errorf("schedule [rows scan]: %w", err)
		}
		planned = append(planned, dw)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("schedule [rows]: %w", err)
	}
	span.SetAttributes(attribute.Int("rows", len(planned)))

	return planned, nil
}
