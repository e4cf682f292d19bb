package workouts

import "fmt"

// JoinRow is one row of
//
//	workout LEFT JOIN exercise_in_workout LEFT JOIN exercise LEFT JOIN exercise_detail
//
// ordered by workout id, then exercise id. Every column may come back NULL.
type JoinRow struct {
	WorkoutID          *int
	WorkoutName        *string
	WorkoutDescription *string
	WorkoutIntensity   *string
	WorkoutFocus       *string

	ExerciseID          *int
	ExerciseName        *string
	ExerciseDescription *string
	MuscleGroup         *string

	DetailID          *int
	DetailDescription *string
	EquipmentNeeded   *string
	Weight            *float64
	DetailIntensity   *string
	DetailRating      *int
	Sets              *int
	Reps              *int
}

type ShapedWorkout struct {
	ID          int              `json:"workout_id"`
	Name        string           `json:"name"`
	Description *string          `json:"description"`
	Intensity   *string          `json:"intensity"`
	Focus       *string          `json:"focus"`
	Exercises   []ShapedExercise `json:"exercises"`
}

type ShapedExercise struct {
	ID          int           `json:"exercise_id"`
	Name        string        `json:"name"`
	Description *string       `json:"description"`
	MuscleGroup *string       `json:"muscle_group"`
	Details     ShapedDetails `json:"details"`
}

// ShapedDetails carries the detail row of an exercise; all fields are null
// when the exercise has none.
type ShapedDetails struct {
	ID              *int     `json:"exercise_detail_id"`
	Description     *string  `json:"description"`
	EquipmentNeeded *string  `json:"equipment_needed"`
	Weight          *float64 `json:"weight"`
	Intensity       *string  `json:"intensity"`
	Rating          *int     `json:"rating"`
	Sets            *int     `json:"sets"`
	Reps            *int     `json:"reps"`
}

// MissingFieldError reports a join row lacking a column the shaper needs.
type MissingFieldError struct {
	Row   int
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("join row %d: missing field %s", e.Row, e.Field)
}

// Shape groups join rows into one workout per distinct workout id, in the
// order the ids are first seen. Header fields come from the first row of a
// workout; later rows of the same workout only contribute exercises.
func Shape(rows []JoinRow) ([]ShapedWorkout, error) {
	shaped := make([]ShapedWorkout, 0)
	indexByID := make(map[int]int)

	for i, row := range rows {
		if row.WorkoutID == nil {
			return nil, &MissingFieldError{Row: i, Field: "workout_id"}
		}

		idx, seen := indexByID[*row.WorkoutID]
		if !seen {
			if row.WorkoutName == nil {
				return nil, &MissingFieldError{Row: i, Field: "name"}
			}
			shaped = append(shaped, ShapedWorkout{
				ID:          *row.WorkoutID,
				Name:        *row.WorkoutName,
				Description: row.WorkoutDescription,
				Intensity:   row.WorkoutIntensity,
				Focus:       row.WorkoutFocus,
				Exercises:   make([]ShapedExercise, 0),
			})
			idx = len(shaped) - 1
			indexByID[*row.WorkoutID] = idx
		}

		if row.ExerciseID == nil {
			continue
		}
		if row.ExerciseName == nil {
			return nil, &MissingFieldError{Row: i, Field: "exercise_name"}
		}

		shaped[idx].Exercises = append(shaped[idx].Exercises, ShapedExercise{
			ID:          *row.ExerciseID,
			Name:        *row.ExerciseName,
			Description: row.ExerciseDescription,
			MuscleGroup: row.MuscleGroup,
			Details: ShapedDetails{
				ID:              row.DetailID,
				Description:     row.DetailDescription,
				EquipmentNeeded: row.EquipmentNeeded,
				Weight:          row.Weight,
				Intensity:       row.DetailIntensity,
				Rating:          row.DetailRating,
				Sets:            row.Sets,
				Reps:            row.Reps,
			},
		})
	}

	return shaped, nil
}
