package schedule

import "unicode/utf8"

// MaxDayIDLength is the width of the day_id columns.
const MaxDayIDLength = 64

type Day struct {
	ID string `json:"day_id"`
}

func dayIDTooLong(id string) bool {
	return utf8.RuneCountInString(id) > MaxDayIDLength
}

// WorkoutSummary is a workout scheduled on a day, without its rating.
type WorkoutSummary struct {
	WorkoutID   int    `json:"workout_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Focus       string `json:"focus"`
	Intensity   string `json:"intensity"`
}

// DayWorkout is one row of the schedule: a day and a workout planned on it.
type DayWorkout struct {
	DayID       string `json:"day_id"`
	WorkoutID   int    `json:"workout_id"`
	Name        string `json:"workout_name"`
	Description string `json:"workout_description"`
}
