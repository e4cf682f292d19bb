package exercises

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/workoutplanner/internal/db"
	"github.com/2beens/workoutplanner/internal/telemetry/tracing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrExerciseNotFound       = errors.New("exercise not found")
	ErrExerciseDetailNotFound = errors.New("exercise detail not found")
)

const exerciseColumns = `
	exercise_id, name, COALESCE(description, ''), COALESCE(muscle_group, ''),
	COALESCE(intensity, ''), rating, exercise_detail_id
`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) List(ctx context.Context, filter Filter) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.String("filter", filter.String()))

	where, args, orderBy := filter.clause()
	rows, err := r.db.Query(
		ctx,
		`SELECT `+exerciseColumns+` FROM exercise `+where+` ORDER BY `+orderBy,
		args...,
	)
	if err != nil {
		return nil, fmt.Errorf("exercises [query]: %w", err)
	}

	return scanExercises(rows)
}

// ListByWorkout returns the exercises linked to the workout.
func (r *Repo) ListByWorkout(ctx context.Context, workoutID int) (_ []Exercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list_by_workout")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout.id", workoutID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT `+exerciseColumns+`
			FROM exercise
			WHERE exercise_id IN (
				SELECT exercise_id FROM exercise_in_workout WHERE workout_id = $1
			)
			ORDER BY exercise_id
		`,
		workoutID,
	)
	if err != nil {
		return nil, fmt.Errorf("workout exercises [query]: %w", err)
	}

	return scanExercises(rows)
}

func scanExercises(rows pgx.Rows) ([]Exercise, error) {
	defer rows.Close()

	exercises := make([]Exercise, 0)
	for rows.Next() {
		var e Exercise
		if err := rows.Scan(
			&e.ID, &e.Name, &e.Description, &e.MuscleGroup,
			&e.Intensity, &e.Rating, &e.DetailID,
		); err != nil {
			return nil, fmt.Errorf("exercises [rows scan]: %w", err)
		}
		exercises = append(exercises, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("exercises [rows]: %w", err)
	}

	return exercises, nil
}

func (r *Repo) ListWithDetails(ctx context.Context) (_ []ExerciseWithDetail, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list_with_details")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				e.exercise_id, e.name, COALESCE(e.description, ''), COALESCE(e.muscle_group, ''),
				COALESCE(e.intensity, ''), e.rating, e.exercise_detail_id,
				ed.exercise_detail_id, COALESCE(ed.description, ''), COALESCE(ed.equipment_needed, ''),
				ed.weight, COALESCE(ed.intensity, ''), ed.rating, ed.sets, ed.reps
			FROM exercise e
			LEFT JOIN exercise_detail ed ON e.exercise_detail_id = ed.exercise_detail_id
			ORDER BY e.exercise_id
		`,
	)
	if err != nil {
		return nil, fmt.Errorf("exercises with details [query]: %w", err)
	}
	defer rows.Close()

	exercises := make([]ExerciseWithDetail, 0)
	for rows.Next() {
		var (
			ewd      ExerciseWithDetail
			detail   ExerciseDetail
			detailID *int
		)
		if err := rows.Scan(
			&ewd.ID, &ewd.Name, &ewd.Description, &ewd.MuscleGroup,
			&ewd.Intensity, &ewd.Rating, &ewd.DetailID,
			&detailID, &detail.Description, &detail.EquipmentNeeded,
			&detail.Weight, &detail.Intensity, &detail.Rating, &detail.Sets, &detail.Reps,
		); err != nil {
			return nil, fmt.Errorf("exercises with details [rows scan]: %w", err)
		}
		if detailID != nil {
			detail.ID = *detailID
			ewd.Detail = &detail
		}
		exercises = append(exercises, ewd)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("exercises with details [rows]: %w", err)
	}

	return exercises, nil
}

func (r *Repo) Add(ctx context.Context, exercise Exercise) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var id int
	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		return tx.QueryRow(
			ctx,
			`
				INSERT INTO exercise (name, description, muscle_group, intensity, rating, exercise_detail_id)
				VALUES ($1, $2, $3, $4, $5, $6)
				RETURNING exercise_id
			`,
			exercise.Name, exercise.Description, exercise.MuscleGroup,
			exercise.Intensity, exercise.Rating, exercise.DetailID,
		).Scan(&id)
	})
	if err != nil {
		return -1, fmt.Errorf("add exercise: %w", err)
	}
	span.SetAttributes(attribute.Int("id", id))

	return id, nil
}

func (r *Repo) Update(ctx context.Context, exercise Exercise) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", exercise.ID))

	return db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(
			ctx,
			`
				UPDATE exercise
				SET name = $1, description = $2, muscle_group = $3, intensity = $4, rating = $5, exercise_detail_id = $6
				WHERE exercise_id = $7
			`,
			exercise.Name, exercise.Description, exercise.MuscleGroup,
			exercise.Intensity, exercise.Rating, exercise.DetailID, exercise.ID,
		)
		if err != nil {
			return fmt.Errorf("update exercise: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrExerciseNotFound
		}
		return nil
	})
}

// Delete removes the exercise row only; workout links to it stay behind.
func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	return db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM exercise WHERE exercise_id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete exercise: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrExerciseNotFound
		}
		return nil
	})
}

func (r *Repo) ListDetails(ctx context.Context) (_ []ExerciseDetail, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.list_details")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				exercise_detail_id, COALESCE(description, ''), COALESCE(equipment_needed, ''),
				weight, COALESCE(intensity, ''), rating, sets, reps
			FROM exercise_detail
			ORDER BY exercise_detail_id
		`,
	)
	if err != nil {
		return nil, fmt.Errorf("exercise details [query]: %w", err)
	}
	defer rows.Close()

	details := make([]ExerciseDetail, 0)
	for rows.Next() {
		var d ExerciseDetail
		if err := rows.Scan(
			&d.ID, &d.Description, &d.EquipmentNeeded,
			&d.Weight, &d.Intensity, &d.Rating, &d.Sets, &d.Reps,
		); err != nil {
			return nil, fmt.Errorf("exercise details [rows scan]: %w", err)
		}
		details = append(details, d)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("exercise details [rows]: %w", err)
	}

	return details, nil
}

func (r *Repo) AddDetail(ctx context.Context, detail ExerciseDetail) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.add_detail")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var id int
	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		return tx.QueryRow(
			ctx,
			`
				INSERT INTO exercise_detail (description, equipment_needed, weight, intensity, rating, sets, reps)
				VALUES ($1, $2, $3, $4, $5, $6, $7)
				RETURNING exercise_detail_id
			`,
			detail.Description, detail.EquipmentNeeded, detail.Weight,
			detail.Intensity, detail.Rating, detail.Sets, detail.Reps,
		).Scan(&id)
	})
	if err != nil {
		return -1, fmt.Errorf("add exercise detail: %w", err)
	}
	span.SetAttributes(attribute.Int("id", id))

	return id, nil
}

func (r *Repo) UpdateDetail(ctx context.Context, detail ExerciseDetail) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.exercises.update_detail")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", detail.ID))

	return db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(
			ctx,
			`
				UPDATE exercise_detail
				SET description = $1, equipment_needed = $2, weight = $3, intensity = $4,
				    rating = $5, sets = $6, reps = $7
				WHERE exercise_detail_id = $8
			`,
			detail.Description, detail.EquipmentNeeded, detail.Weight,
			detail.Intensity, detail.Rating, detail.Sets, detail.Reps, detail.ID,
		)
		if err != nil {
			return fmt.Errorf("update exercise detail: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrExerciseDetailNotFound
		}
		return nil
	})
}
