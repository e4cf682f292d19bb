//go:build e2e_test || all_tests

package test

import (
	"context"
	"fmt"
	"net/http"

	"github.com/2beens/workoutplanner/internal/schedule"
)

func (s *IntegrationTestSuite) TestSchedule() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var generated schedule.DayIDResponse
	s.doJSON(ctx, "GET", "/api/generate-day-id", nil, http.StatusOK, &generated)
	s.Require().NotEmpty(generated.DayID)
	dayID := generated.DayID

	s.doJSON(ctx, "POST", "/api/add-day", map[string]any{"day_id": dayID}, http.StatusOK, nil)
	status, _ := s.do(ctx, "POST", "/api/add-day", map[string]any{"day_id": dayID})
	s.Equal(http.StatusBadRequest, status)
	status, _ = s.do(ctx, "POST", "/api/add-day", map[string]any{})
	s.Equal(http.StatusBadRequest, status)

	workoutID := s.addWorkout(ctx, "Leg Day")

	s.doJSON(ctx, "POST", fmt.Sprintf("/api/workout-to-day/%s/%d", dayID, workoutID), nil, http.StatusOK, nil)
	status, _ = s.do(ctx, "POST", fmt.Sprintf("/api/schedule-workout/%s/%d", dayID, workoutID), nil)
	s.Equal(http.StatusBadRequest, status)

	var summaries []schedule.WorkoutSummary
	s.doJSON(ctx, "GET", "/api/workouts-by-day/"+dayID, nil, http.StatusOK, &summaries)
	s.Require().Len(summaries, 1)
	s.Equal("Leg Day", summaries[0].Name)

	var planned []schedule.DayWorkout
	s.doJSON(ctx, "GET", "/api/schedule", nil, http.StatusOK, &planned)
	s.Equal([]schedule.DayWorkout{{DayID: dayID, WorkoutID: workoutID, Name: "Leg Day", Description: "No description provided"}}, planned)

	s.doJSON(ctx, "DELETE", fmt.Sprintf("/api/workout-to-day/%s/%d", dayID, workoutID), nil, http.StatusOK, nil)
	s.doJSON(ctx, "DELETE", fmt.Sprintf("/api/workout-to-day/%s/%d", dayID, workoutID), nil, http.StatusOK, nil)

	s.doJSON(ctx, "GET", "/api/day-workouts/"+dayID, nil, http.StatusOK, &summaries)
	s.Empty(summaries)

	var days []schedule.Day
	s.doJSON(ctx, "GET", "/api/days", nil, http.StatusOK, &days)
	s.Equal([]schedule.Day{{ID: dayID}}, days)
}

func (s *IntegrationTestSuite) TestMisc() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	status, body := s.do(ctx, "GET", "/version", nil)
	s.Equal(http.StatusOK, status)
	s.Equal("test-version-info", string(body))

	status, body = s.do(ctx, "GET", "/ready", nil)
	s.Equal(http.StatusOK, status)
	s.JSONEq(`{"ready":true,"postgres":"ok","redis":"ok"}`, string(body))
}
