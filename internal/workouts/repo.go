package workouts

import (
	"context"
	"errors"
	"fmt"

	"github.com/2beens/workoutplanner/internal/db"
	"github.com/2beens/workoutplanner/internal/telemetry/tracing"
	"github.com/2beens/workoutplanner/pkg"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.opentelemetry.io/otel/attribute"
)

var (
	ErrWorkoutNotFound  = errors.New("workout not found")
	ErrWorkoutExists    = errors.New("workout already exists")
	ErrExerciseNotFound = errors.New("exercise not found")
	ErrLinkExists       = errors.New("exercise is already linked to this workout")
)

const joinQuery = `
	SELECT
		w.workout_id, w.name, w.description, w.intensity, w.focus,
		e.exercise_id, e.name, e.description, e.muscle_group,
		ed.exercise_detail_id, ed.description, ed.equipment_needed, ed.weight,
		ed.intensity, ed.rating, ed.sets, ed.reps
	FROM workout w
	LEFT JOIN exercise_in_workout eiw ON w.workout_id = eiw.workout_id
	LEFT JOIN exercise e ON eiw.exercise_id = e.exercise_id
	LEFT JOIN exercise_detail ed ON e.exercise_detail_id = ed.exercise_detail_id
`

type Repo struct {
	db *pgxpool.Pool
}

func NewRepo(db *pgxpool.Pool) *Repo {
	return &Repo{
		db: db,
	}
}

func (r *Repo) ListShaped(ctx context.Context) (_ []ShapedWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.list_shaped")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	joinRows, err := r.queryJoinRows(ctx, joinQuery+` ORDER BY w.workout_id, e.exercise_id`)
	if err != nil {
		return nil, err
	}
	span.SetAttributes(attribute.Int("rows", len(joinRows)))

	shaped, err := Shape(joinRows)
	if err != nil {
		return nil, fmt.Errorf("shape workouts: %w", err)
	}

	return shaped, nil
}

func (r *Repo) GetShaped(ctx context.Context, id int) (_ *ShapedWorkout, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.get_shaped")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	joinRows, err := r.queryJoinRows(ctx, joinQuery+` WHERE w.workout_id = $1 ORDER BY e.exercise_id`, id)
	if err != nil {
		return nil, err
	}

	shaped, err := Shape(joinRows)
	if err != nil {
		return nil, fmt.Errorf("shape workout: %w", err)
	}
	if len(shaped) == 0 {
		return nil, ErrWorkoutNotFound
	}

	return &shaped[0], nil
}

func (r *Repo) queryJoinRows(ctx context.Context, query string, args ...any) ([]JoinRow, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("join rows [query]: %w", err)
	}
	defer rows.Close()

	var joinRows []JoinRow
	for rows.Next() {
		var jr JoinRow
		if err := rows.Scan(
			&jr.WorkoutID, &jr.WorkoutName, &jr.WorkoutDescription, &jr.WorkoutIntensity, &jr.WorkoutFocus,
			&jr.ExerciseID, &jr.ExerciseName, &jr.ExerciseDescription, &jr.MuscleGroup,
			&jr.DetailID, &jr.DetailDescription, &jr.EquipmentNeeded, &jr.Weight,
			&jr.DetailIntensity, &jr.DetailRating, &jr.Sets, &jr.Reps,
		); err != nil {
			return nil, fmt.Errorf("join rows [rows scan]: %w", err)
		}
		joinRows = append(joinRows, jr)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("join rows [rows]: %w", err)
	}

	return joinRows, nil
}

func (r *Repo) Add(ctx context.Context, workout Workout) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var id int
	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		return tx.QueryRow(
			ctx,
			`
				INSERT INTO workout (name, description, intensity, focus, rating)
				VALUES ($1, $2, $3, $4, $5)
				RETURNING workout_id
			`,
			workout.Name, workout.Description, workout.Intensity, workout.Focus, workout.Rating,
		).Scan(&id)
	})
	if err != nil {
		return -1, fmt.Errorf("add workout: %w", err)
	}
	span.SetAttributes(attribute.Int("id", id))

	return id, nil
}

// AddWithID inserts a workout under an id reserved earlier with NextID.
func (r *Repo) AddWithID(ctx context.Context, workout Workout) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add_with_id")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", workout.ID))

	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		_, err := tx.Exec(
			ctx,
			`
				INSERT INTO workout (workout_id, name, description, intensity, focus, rating)
				VALUES ($1, $2, $3, $4, $5, $6)
			`,
			workout.ID, workout.Name, workout.Description, workout.Intensity, workout.Focus, workout.Rating,
		)
		return err
	})
	if pkg.IsUniqueViolationError(err) {
		return ErrWorkoutExists
	}
	if err != nil {
		return fmt.Errorf("add workout with id: %w", err)
	}

	return nil
}

// AddPlaceholder creates an empty named workout to be edited later.
func (r *Repo) AddPlaceholder(ctx context.Context) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.add_placeholder")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var id int
	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		return tx.QueryRow(
			ctx,
			`INSERT INTO workout (name, description) VALUES ($1, $2) RETURNING workout_id`,
			PlaceholderWorkoutName, PlaceholderWorkoutDetails,
		).Scan(&id)
	})
	if err != nil {
		return -1, fmt.Errorf("add placeholder workout: %w", err)
	}

	return id, nil
}

// NextID reserves a workout id from the table's sequence.
func (r *Repo) NextID(ctx context.Context) (_ int, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.next_id")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	var id int64
	if err := r.db.QueryRow(
		ctx,
		`SELECT nextval(pg_get_serial_sequence('workout', 'workout_id'))`,
	).Scan(&id); err != nil {
		return -1, fmt.Errorf("next workout id: %w", err)
	}

	return int(id), nil
}

func (r *Repo) Update(ctx context.Context, workout Workout) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.update")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", workout.ID))

	return db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(
			ctx,
			`
				UPDATE workout
				SET name = $1, description = $2, rating = $3, focus = $4, intensity = $5
				WHERE workout_id = $6
			`,
			workout.Name, workout.Description, workout.Rating, workout.Focus, workout.Intensity, workout.ID,
		)
		if err != nil {
			return fmt.Errorf("update workout: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrWorkoutNotFound
		}
		return nil
	})
}

// Delete removes the workout row only. Link rows pointing at it are left
// in place and no longer show up in any join.
func (r *Repo) Delete(ctx context.Context, id int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.delete")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("id", id))

	return db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM workout WHERE workout_id = $1`, id)
		if err != nil {
			return fmt.Errorf("delete workout: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return ErrWorkoutNotFound
		}
		return nil
	})
}

// LinkExercise adds the exercise to the workout and returns the linked
// exercise. An existing link is rejected with ErrLinkExists.
func (r *Repo) LinkExercise(ctx context.Context, workoutID, exerciseID int) (_ *LinkedExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.link_exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("workout_id", workoutID),
		attribute.Int("exercise_id", exerciseID),
	)

	var linked LinkedExercise
	err = db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		var exists bool
		if err := tx.QueryRow(
			ctx,
			`SELECT EXISTS (SELECT 1 FROM exercise_in_workout WHERE workout_id = $1 AND exercise_id = $2)`,
			workoutID, exerciseID,
		).Scan(&exists); err != nil {
			return fmt.Errorf("check link: %w", err)
		}
		if exists {
			return ErrLinkExists
		}

		if _, err := tx.Exec(
			ctx,
			`INSERT INTO exercise_in_workout (workout_id, exercise_id) VALUES ($1, $2)`,
			workoutID, exerciseID,
		); err != nil {
			if pkg.IsUniqueViolationError(err) {
				return ErrLinkExists
			}
			return fmt.Errorf("insert link: %w", err)
		}

		err := tx.QueryRow(
			ctx,
			`
				SELECT
					e.exercise_id, e.name, COALESCE(e.description, ''), COALESCE(e.muscle_group, ''),
					COALESCE(e.intensity, ''), e.rating, e.exercise_detail_id, eiw.workout_id
				FROM exercise e
				JOIN exercise_in_workout eiw ON e.exercise_id = eiw.exercise_id
				WHERE e.exercise_id = $1 AND eiw.workout_id = $2
			`,
			exerciseID, workoutID,
		).Scan(
			&linked.ExerciseID, &linked.Name, &linked.Description, &linked.MuscleGroup,
			&linked.Intensity, &linked.Rating, &linked.ExerciseDetailID, &linked.WorkoutID,
		)
		if errors.Is(err, pgx.ErrNoRows) {
			// rolls the link back as well
			return ErrExerciseNotFound
		}
		if err != nil {
			return fmt.Errorf("linked exercise: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &linked, nil
}

// UnlinkExercise removes the link; removing a link that does not exist is
// not an error.
func (r *Repo) UnlinkExercise(ctx context.Context, workoutID, exerciseID int) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.unlink_exercise")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(
		attribute.Int("workout_id", workoutID),
		attribute.Int("exercise_id", exerciseID),
	)

	return db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		tag, err := tx.Exec(
			ctx,
			`DELETE FROM exercise_in_workout WHERE workout_id = $1 AND exercise_id = $2`,
			workoutID, exerciseID,
		)
		if err != nil {
			return fmt.Errorf("delete link: %w", err)
		}
		span.SetAttributes(attribute.Int64("removed", tag.RowsAffected()))
		return nil
	})
}

func (r *Repo) ExerciseSelection(ctx context.Context, workoutID int) (_ []ExerciseSelection, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.exercise_selection")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout_id", workoutID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				e.exercise_id, e.name, COALESCE(e.intensity, ''), COALESCE(e.muscle_group, ''),
				eiw.workout_id IS NOT NULL AS is_selected
			FROM exercise e
			LEFT JOIN exercise_in_workout eiw ON e.exercise_id = eiw.exercise_id AND eiw.workout_id = $1
			ORDER BY e.exercise_id
		`,
		workoutID,
	)
	if err != nil {
		return nil, fmt.Errorf("exercise selection [query]: %w", err)
	}
	defer rows.Close()

	selection := make([]ExerciseSelection, 0)
	for rows.Next() {
		var s ExerciseSelection
		if err := rows.Scan(&s.ExerciseID, &s.ExerciseName, &s.Intensity, &s.MuscleGroup, &s.IsSelected); err != nil {
			return nil, fmt.Errorf("exercise selection [rows scan]: %w", err)
		}
		selection = append(selection, s)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("exercise selection [rows]: %w", err)
	}

	return selection, nil
}

// JoinedExercises lists the workout's exercises that have a detail row.
func (r *Repo) JoinedExercises(ctx context.Context, workoutID int) (_ []JoinedExercise, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.joined_exercises")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout_id", workoutID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT
				e.exercise_id, e.name, COALESCE(e.description, ''), COALESCE(e.muscle_group, ''),
				COALESCE(e.intensity, ''), e.rating,
				ed.exercise_detail_id, COALESCE(ed.description, ''), COALESCE(ed.equipment_needed, ''),
				ed.weight, COALESCE(ed.intensity, ''), ed.rating, ed.sets, ed.reps
			FROM exercise e
			JOIN exercise_detail ed ON e.exercise_detail_id = ed.exercise_detail_id
			JOIN exercise_in_workout eiw ON e.exercise_id = eiw.exercise_id
			WHERE eiw.workout_id = $1
			ORDER BY e.exercise_id
		`,
		workoutID,
	)
	if err != nil {
		return nil, fmt.Errorf("joined exercises [query]: %w", err)
	}
	defer rows.Close()

	joined := make([]JoinedExercise, 0)
	for rows.Next() {
		var je JoinedExercise
		if err := rows.Scan(
			&je.ExerciseID, &je.Name, &je.Description, &je.MuscleGroup,
			&je.Intensity, &je.Rating,
			&je.ExerciseDetailID, &je.DetailDescription, &je.EquipmentNeeded,
			&je.Weight, &je.DetailIntensity, &je.DetailRating, &je.Sets, &je.Reps,
		); err != nil {
			return nil, fmt.Errorf("joined exercises [rows scan]: %w", err)
		}
		joined = append(joined, je)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("joined exercises [rows]: %w", err)
	}

	return joined, nil
}

func (r *Repo) ExerciseWorkoutNames(ctx context.Context, workoutID int) (_ []ExerciseWorkoutName, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "repo.workouts.exercise_workout_names")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()
	span.SetAttributes(attribute.Int("workout_id", workoutID))

	rows, err := r.db.Query(
		ctx,
		`
			SELECT e.name, w.name
			FROM exercise e
			JOIN exercise_in_workout eiw ON e.exercise_id = eiw.exercise_id
			JOIN workout w ON eiw.workout_id = w.workout_id
			WHERE w.workout_id = $1
			ORDER BY e.exercise_id
		`,
		workoutID,
	)
	if err != nil {
		return nil, fmt.Errorf("exercise workout names [query]: %w", err)
	}
	defer rows.Close()

	names := make([]ExerciseWorkoutName, 0)
	for rows.Next() {
		var n ExerciseWorkoutName
		if err := rows.Scan(&n.ExerciseName, &n.WorkoutName); err != nil {
			return nil, fmt.Errorf("exercise workout names [rows scan]: %w", err)
		}
		names = append(names, n)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("exercise workout names [rows]: %w", err)
	}

	return names, nil
}
