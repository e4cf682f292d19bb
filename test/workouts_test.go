//go:build e2e_test || all_tests

package test

import (
	"context"
	"fmt"
	"net/http"

	"github.com/2beens/workoutplanner/internal/exercises"
	"github.com/2beens/workoutplanner/internal/workouts"
)

func (s *IntegrationTestSuite) addExercise(ctx context.Context, name, muscleGroup string, detailID *int) int {
	var created exercises.CreateExerciseResponse
	s.doJSON(ctx, "POST", "/api/exercises", map[string]any{
		"name":               name,
		"muscle_group":       muscleGroup,
		"exercise_detail_id": detailID,
	}, http.StatusCreated, &created)
	s.Require().True(created.Success)
	return created.ExerciseID
}

func (s *IntegrationTestSuite) addWorkout(ctx context.Context, name string) int {
	var created workouts.CreateWorkoutResponse
	s.doJSON(ctx, "POST", "/api/workouts", map[string]any{
		"name":      name,
		"intensity": "Moderate",
		"focus":     "Strength",
	}, http.StatusCreated, &created)
	s.Require().True(created.Success)
	return created.WorkoutID
}

func (s *IntegrationTestSuite) TestWorkouts_ShapedListing() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var detail exercises.CreateDetailResponse
	s.doJSON(ctx, "POST", "/api/add-exercise-detail", map[string]any{
		"description":      "Back squat",
		"equipment_needed": "Barbell",
		"weight":           100,
		"intensity":        "Vigorous",
		"rating":           5,
		"sets":             5,
		"reps":             5,
	}, http.StatusCreated, &detail)

	squatID := s.addExercise(ctx, "Squat", "Legs", &detail.ExerciseDetailID)
	lungeID := s.addExercise(ctx, "Lunge", "Legs", nil)

	legDayID := s.addWorkout(ctx, "Leg Day")
	armsID := s.addWorkout(ctx, "Arms")

	var linked workouts.LinkExerciseResponse
	s.doJSON(ctx, "POST", fmt.Sprintf("/api/exercise-to-workout/add/%d/%d", legDayID, squatID), nil, http.StatusOK, &linked)
	s.True(linked.Success)
	s.Equal("Squat", linked.ExerciseInWorkout.Name)
	s.doJSON(ctx, "POST", fmt.Sprintf("/api/exercise-to-workout/add/%d/%d", legDayID, lungeID), nil, http.StatusOK, nil)

	// duplicate link is rejected
	status, body := s.do(ctx, "POST", fmt.Sprintf("/api/exercise-to-workout/add/%d/%d", legDayID, squatID), nil)
	s.Equal(http.StatusBadRequest, status)
	s.JSONEq(`{"success":false,"error":"Exercise is already linked to this workout."}`, string(body))

	var shaped []workouts.ShapedWorkout
	s.doJSON(ctx, "GET", "/api/workouts", nil, http.StatusOK, &shaped)
	s.Require().Len(shaped, 2)

	s.Equal(legDayID, shaped[0].ID)
	s.Require().Len(shaped[0].Exercises, 2)
	s.Equal("Squat", shaped[0].Exercises[0].Name)
	s.Require().NotNil(shaped[0].Exercises[0].Details.EquipmentNeeded)
	s.Equal("Barbell", *shaped[0].Exercises[0].Details.EquipmentNeeded)
	s.Nil(shaped[0].Exercises[1].Details.ID)

	s.Equal(armsID, shaped[1].ID)
	s.Empty(shaped[1].Exercises)

	// deleting a workout with links still succeeds
	s.doJSON(ctx, "DELETE", fmt.Sprintf("/api/workouts/%d", legDayID), nil, http.StatusOK, nil)
	status, _ = s.do(ctx, "GET", fmt.Sprintf("/api/workouts/%d", legDayID), nil)
	s.Equal(http.StatusNotFound, status)

	status, _ = s.do(ctx, "PUT", fmt.Sprintf("/api/workouts/%d", legDayID), map[string]any{
		"name": "x", "intensity": "Light", "focus": "y",
	})
	s.Equal(http.StatusNotFound, status)
}

func (s *IntegrationTestSuite) TestWorkouts_LinkToggle() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	exerciseID := s.addExercise(ctx, "Curl", "Arms", nil)
	workoutID := s.addWorkout(ctx, "Arms")

	var selection []workouts.ExerciseSelection
	s.doJSON(ctx, "GET", fmt.Sprintf("/api/exercises-in-workouts/%d", workoutID), nil, http.StatusOK, &selection)
	s.Require().Len(selection, 1)
	s.False(selection[0].IsSelected)

	s.doJSON(ctx, "POST", fmt.Sprintf("/api/exercise-to-workout/add/%d/%d", workoutID, exerciseID), nil, http.StatusOK, nil)
	s.doJSON(ctx, "GET", fmt.Sprintf("/api/exercises-in-workouts/%d", workoutID), nil, http.StatusOK, &selection)
	s.True(selection[0].IsSelected)

	s.doJSON(ctx, "DELETE", fmt.Sprintf("/api/exercise-to-workout/remove/%d/%d", workoutID, exerciseID), nil, http.StatusOK, nil)
	// removing again is a no-op
	s.doJSON(ctx, "POST", fmt.Sprintf("/api/exercise-to-workout/remove/%d/%d", workoutID, exerciseID), nil, http.StatusOK, nil)

	s.doJSON(ctx, "GET", fmt.Sprintf("/api/exercises-in-workouts/%d", workoutID), nil, http.StatusOK, &selection)
	s.False(selection[0].IsSelected)
}
