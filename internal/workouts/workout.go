package workouts

const (
	DefaultRating             = 5
	DefaultCreateDescription  = "No description provided"
	PlaceholderWorkoutName    = "New Workout"
	PlaceholderWorkoutDetails = "Description"
)

type Workout struct {
	ID          int    `json:"workout_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Intensity   string `json:"intensity"`
	Focus       string `json:"focus"`
	Rating      int    `json:"rating"`
}

// WorkoutInput is the body of create and update requests. Pointers tell a
// missing field apart from an empty one.
type WorkoutInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Intensity   *string `json:"intensity"`
	Focus       *string `json:"focus"`
	Rating      *int    `json:"rating"`
}

func (in WorkoutInput) hasRequired() bool {
	return in.Name != nil && in.Intensity != nil && in.Focus != nil
}

// toWorkout fills the optional fields with the given defaults.
func (in WorkoutInput) toWorkout(defaultDescription string) Workout {
	w := Workout{
		Name:        *in.Name,
		Description: defaultDescription,
		Intensity:   *in.Intensity,
		Focus:       *in.Focus,
		Rating:      DefaultRating,
	}
	if in.Description != nil {
		w.Description = *in.Description
	}
	if in.Rating != nil {
		w.Rating = *in.Rating
	}
	return w
}

// ExerciseSelection is one catalog exercise, flagged when it is linked to
// the workout in question.
type ExerciseSelection struct {
	ExerciseID   int    `json:"exercise_id"`
	ExerciseName string `json:"exercise_name"`
	Intensity    string `json:"intensity"`
	MuscleGroup  string `json:"muscle_group"`
	IsSelected   bool   `json:"is_selected"`
}

// LinkedExercise is an exercise row together with the workout it was linked to.
type LinkedExercise struct {
	ExerciseID       int    `json:"exercise_id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	MuscleGroup      string `json:"muscle_group"`
	Intensity        string `json:"intensity"`
	Rating           *int   `json:"rating"`
	ExerciseDetailID *int   `json:"exercise_detail_id"`
	WorkoutID        int    `json:"workout_id"`
}

// JoinedExercise is a linked exercise that has a detail row.
type JoinedExercise struct {
	ExerciseID        int      `json:"exercise_id"`
	Name              string   `json:"name"`
	Description       string   `json:"description"`
	MuscleGroup       string   `json:"muscle_group"`
	Intensity         string   `json:"intensity"`
	Rating            *int     `json:"rating"`
	ExerciseDetailID  int      `json:"exercise_detail_id"`
	DetailDescription string   `json:"detail_description"`
	EquipmentNeeded   string   `json:"equipment_needed"`
	Weight            *float64 `json:"weight"`
	DetailIntensity   string   `json:"detail_intensity"`
	DetailRating      *int     `json:"detail_rating"`
	Sets              *int     `json:"sets"`
	Reps              *int     `json:"reps"`
}

type ExerciseWorkoutName struct {
	ExerciseName string `json:"exercise_name"`
	WorkoutName  string `json:"workout_name"`
}
