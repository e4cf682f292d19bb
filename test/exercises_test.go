//go:build e2e_test || all_tests

package test

import (
	"context"
	"fmt"
	"net/http"

	"github.com/2beens/workoutplanner/internal/exercises"
)

func (s *IntegrationTestSuite) TestExercises_FilterAndCache() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	benchID := s.addExercise(ctx, "Bench Press", "Chest", nil)
	s.addExercise(ctx, "Deadlift", "Lower Back", nil)

	var listed []exercises.Exercise
	s.doJSON(ctx, "GET", "/api/exercises?filter=muscle_lower_back", nil, http.StatusOK, &listed)
	s.Require().Len(listed, 1)
	s.Equal("Deadlift", listed[0].Name)

	status, body := s.do(ctx, "GET", "/api/exercises?filter=bogus", nil)
	s.Equal(http.StatusBadRequest, status)
	s.JSONEq(`{"success":false,"error":"Invalid filter option"}`, string(body))

	// warm the cache, then make sure a write is visible on the next read
	s.doJSON(ctx, "GET", "/api/exercises", nil, http.StatusOK, &listed)
	s.Require().Len(listed, 2)

	s.doJSON(ctx, "PUT", fmt.Sprintf("/api/exercises/%d", benchID), map[string]any{
		"name":         "Incline Bench Press",
		"muscle_group": "Chest",
	}, http.StatusOK, nil)

	s.doJSON(ctx, "GET", "/api/exercises", nil, http.StatusOK, &listed)
	s.Require().Len(listed, 2)
	s.Equal("Incline Bench Press", listed[0].Name)

	s.doJSON(ctx, "DELETE", fmt.Sprintf("/api/exercises/%d", benchID), nil, http.StatusOK, nil)
	status, _ = s.do(ctx, "DELETE", fmt.Sprintf("/api/exercises/%d", benchID), nil)
	s.Equal(http.StatusNotFound, status)

	var all []exercises.ExerciseWithDetail
	s.doJSON(ctx, "GET", "/api/all-exercises", nil, http.StatusOK, &all)
	s.Require().Len(all, 1)
	s.Nil(all[0].Detail)
}

func (s *IntegrationTestSuite) TestExercises_Details() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	detail := map[string]any{
		"description":      "Seated curl",
		"equipment_needed": "Dumbbells",
		"weight":           12.5,
		"intensity":        "Moderate",
		"rating":           4,
		"sets":             3,
		"reps":             10,
	}
	var created exercises.CreateDetailResponse
	s.doJSON(ctx, "POST", "/api/add-exercise-detail", detail, http.StatusCreated, &created)

	detail["reps"] = 12
	status, _ := s.do(ctx, "PUT", fmt.Sprintf("/api/exercise-details/%d", created.ExerciseDetailID), detail)
	s.Equal(http.StatusNoContent, status)

	status, _ = s.do(ctx, "PUT", "/api/exercise-details/999", detail)
	s.Equal(http.StatusNotFound, status)

	var details []exercises.ExerciseDetail
	s.doJSON(ctx, "GET", "/api/exercise-details", nil, http.StatusOK, &details)
	s.Require().Len(details, 1)
	s.Equal(12, *details[0].Reps)
	s.InDelta(12.5, *details[0].Weight, 0.001)
}
