package schedule

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/workoutplanner/internal/telemetry/metrics"
	"github.com/2beens/workoutplanner/internal/telemetry/tracing"
	"github.com/2beens/workoutplanner/internal/workouts"
	"github.com/2beens/workoutplanner/pkg"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=schedule_mocks_test.go -package=schedule_test

type scheduleRepo interface {
	AddDay(ctx context.Context, dayID string) error
	Days(ctx context.Context) ([]Day, error)
	WorkoutsByDay(ctx context.Context, dayID string) ([]WorkoutSummary, error)
	DayWorkouts(ctx context.Context, dayID string) ([]workouts.Workout, error)
	LinkWorkout(ctx context.Context, dayID string, workoutID int) error
	UnlinkWorkout(ctx context.Context, dayID string, workoutID int) error
	Schedule(ctx context.Context) ([]DayWorkout, error)
}

type DayIDResponse struct {
	DayID string `json:"day_id"`
}

type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type Handler struct {
	repo           scheduleRepo
	metricsManager *metrics.Manager
}

func NewHandler(repo scheduleRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/api/generate-day-id", handler.HandleGenerateDayID).Methods("GET", "OPTIONS").Name("generate-day-id")
	r.HandleFunc("/api/add-day", handler.HandleAddDay).Methods("POST", "OPTIONS").Name("new-day")
	r.HandleFunc("/api/days", handler.HandleDays).Methods("GET", "OPTIONS").Name("list-days")
	r.HandleFunc("/api/workouts-by-day/{day_id}", handler.HandleWorkoutsByDay).Methods("GET", "OPTIONS").Name("workouts-by-day")
	r.HandleFunc("/api/day-workouts/{day_id}", handler.HandleDayWorkouts).Methods("GET", "OPTIONS").Name("day-workouts")
	r.HandleFunc("/api/workout-to-day/{day_id}/{workout_id:[0-9]+}", handler.HandleLinkWorkout).Methods("POST", "OPTIONS").Name("workout-to-day")
	r.HandleFunc("/api/workout-to-day/{day_id}/{workout_id:[0-9]+}", handler.HandleUnlinkWorkout).Methods("DELETE", "OPTIONS").Name("remove-workout-from-day")
	r.HandleFunc("/api/schedule-workout/{day_id}/{workout_id:[0-9]+}", handler.HandleLinkWorkout).Methods("POST", "OPTIONS").Name("schedule-workout")
	r.HandleFunc("/api/schedule", handler.HandleSchedule).Methods("GET", "OPTIONS").Name("schedule")
}

func (handler *Handler) HandleGenerateDayID(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.generate_day_id")
	defer span.End()

	pkg.WriteJSONOK(w, DayIDResponse{DayID: uuid.NewString()})
}

func (handler *Handler) HandleAddDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.add_day")
	defer span.End()

	var in Day
	if r.Body != nil {
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			log.Tracef("add day, unmarshal json: %s", err)
		}
	}
	if in.ID == "" {
		pkg.WriteJSONError(w, "No day ID provided", http.StatusBadRequest)
		return
	}
	if dayIDTooLong(in.ID) {
		pkg.WriteJSONError(w, "Day ID is too long", http.StatusBadRequest)
		return
	}

	if err := handler.repo.AddDay(ctx, in.ID); err != nil {
		writeRepoError(w, "add day", err)
		return
	}

	log.Debugf("new day added: %s", in.ID)
	pkg.WriteJSONOK(w, SuccessResponse{Success: true})
}

func (handler *Handler) HandleDays(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.days")
	defer span.End()

	days, err := handler.repo.Days(ctx)
	if err != nil {
		writeRepoError(w, "list days", err)
		return
	}

	pkg.WriteJSONOK(w, days)
}

func (handler *Handler) HandleWorkoutsByDay(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.workouts_by_day")
	defer span.End()

	summaries, err := handler.repo.WorkoutsByDay(ctx, mux.Vars(r)["day_id"])
	if err != nil {
		writeRepoError(w, "workouts by day", err)
		return
	}

	pkg.WriteJSONOK(w, summaries)
}

func (handler *Handler) HandleDayWorkouts(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.day_workouts")
	defer span.End()

	dayWorkouts, err := handler.repo.DayWorkouts(ctx, mux.Vars(r)["day_id"])
	if err != nil {
		writeRepoError(w, "day workouts", err)
		return
	}

	pkg.WriteJSONOK(w, dayWorkouts)
}

func (handler *Handler) HandleLinkWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.link_workout")
	defer span.End()

	dayID := mux.Vars(r)["day_id"]
	if dayIDTooLong(dayID) {
		pkg.WriteJSONError(w, "Day ID is too long", http.StatusBadRequest)
		return
	}
	workoutID, err := strconv.Atoi(mux.Vars(r)["workout_id"])
	if err != nil {
		pkg.WriteJSONError(w, "error, workout_id NaN", http.StatusBadRequest)
		return
	}

	if err := handler.repo.LinkWorkout(ctx, dayID, workoutID); err != nil {
		writeRepoError(w, "link workout", err)
		return
	}

	handler.metricsManager.CounterLinkChanges.WithLabelValues("workout_on_day", "add").Inc()
	pkg.WriteJSONOK(w, SuccessResponse{
		Success: true,
		Message: "Workout added to day successfully",
	})
}

func (handler *Handler) HandleUnlinkWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.unlink_workout")
	defer span.End()

	dayID := mux.Vars(r)["day_id"]
	if dayIDTooLong(dayID) {
		pkg.WriteJSONError(w, "Day ID is too long", http.StatusBadRequest)
		return
	}
	workoutID, err := strconv.Atoi(mux.Vars(r)["workout_id"])
	if err != nil {
		pkg.WriteJSONError(w, "error, workout_id NaN", http.StatusBadRequest)
		return
	}

	if err := handler.repo.UnlinkWorkout(ctx, dayID, workoutID); err != nil {
		writeRepoError(w, "unlink workout", err)
		return
	}

	handler.metricsManager.CounterLinkChanges.WithLabelValues("workout_on_day", "remove").Inc()
	pkg.WriteJSONOK(w, SuccessResponse{
		Success: true,
		Message: "Workout removed from day successfully",
	})
}

func (handler *Handler) HandleSchedule(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.schedule.schedule")
	defer span.End()

	planned, err := handler.repo.Schedule(ctx)
	if err != nil {
		writeRepoError(w, "schedule", err)
		return
	}

	pkg.WriteJSONOK(w, planned)
}

func writeRepoError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, ErrDayExists):
		pkg.WriteJSONError(w, "Day already exists", http.StatusBadRequest)
	case errors.Is(err, ErrLinkExists):
		pkg.WriteJSONError(w, "Workout is already scheduled on this day.", http.StatusBadRequest)
	case pkg.IsIntegrityError(err):
		log.Warnf("%s: %s", op, err)
		pkg.WriteJSONError(w, pkg.PgErrorMessage(err), http.StatusBadRequest)
	default:
		log.Errorf("%s: %s", op, err)
		pkg.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
	}
}
