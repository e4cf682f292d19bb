package exercises

type Exercise struct {
	ID          int    `json:"exercise_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	MuscleGroup string `json:"muscle_group"`
	Intensity   string `json:"intensity"`
	Rating      *int   `json:"rating"`
	DetailID    *int   `json:"exercise_detail_id"`
}

type ExerciseDetail struct {
	ID              int      `json:"exercise_detail_id"`
	Description     string   `json:"description"`
	EquipmentNeeded string   `json:"equipment_needed"`
	Weight          *float64 `json:"weight"`
	Intensity       string   `json:"intensity"`
	Rating          *int     `json:"rating"`
	Sets            *int     `json:"sets"`
	Reps            *int     `json:"reps"`
}

// ExerciseWithDetail is an exercise and its detail row, if it has one.
type ExerciseWithDetail struct {
	Exercise
	Detail *ExerciseDetail `json:"detail"`
}

// ExerciseInput is the body of exercise create and update requests.
type ExerciseInput struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	MuscleGroup *string `json:"muscle_group"`
	Intensity   *string `json:"intensity"`
	Rating      *int    `json:"rating"`
	DetailID    *int    `json:"exercise_detail_id"`
}

func (in ExerciseInput) hasRequired() bool {
	return in.Name != nil && *in.Name != "" && in.MuscleGroup != nil && *in.MuscleGroup != ""
}

func (in ExerciseInput) toExercise() Exercise {
	e := Exercise{
		Name:        *in.Name,
		MuscleGroup: *in.MuscleGroup,
		Rating:      in.Rating,
		DetailID:    in.DetailID,
	}
	if in.Description != nil {
		e.Description = *in.Description
	}
	if in.Intensity != nil {
		e.Intensity = *in.Intensity
	}
	return e
}

// ExerciseDetailInput is the body of detail create and update requests;
// every field is required.
type ExerciseDetailInput struct {
	Description     *string  `json:"description"`
	EquipmentNeeded *string  `json:"equipment_needed"`
	Weight          *float64 `json:"weight"`
	Intensity       *string  `json:"intensity"`
	Rating          *int     `json:"rating"`
	Sets            *int     `json:"sets"`
	Reps            *int     `json:"reps"`
}

func (in ExerciseDetailInput) hasRequired() bool {
	return in.Description != nil &&
		in.EquipmentNeeded != nil &&
		in.Weight != nil &&
		in.Intensity != nil &&
		in.Rating != nil &&
		in.Sets != nil &&
		in.Reps != nil
}

func (in ExerciseDetailInput) toDetail() ExerciseDetail {
	return ExerciseDetail{
		Description:     *in.Description,
		EquipmentNeeded: *in.EquipmentNeeded,
		Weight:          in.Weight,
		Intensity:       *in.Intensity,
		Rating:          in.Rating,
		Sets:            in.Sets,
		Reps:            in.Reps,
	}
}
