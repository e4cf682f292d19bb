package workouts

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/workoutplanner/internal/telemetry/metrics"
	"github.com/2beens/workoutplanner/internal/telemetry/tracing"
	"github.com/2beens/workoutplanner/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=workouts_mocks_test.go -package=workouts_test

type workoutsRepo interface {
	ListShaped(ctx context.Context) ([]ShapedWorkout, error)
	GetShaped(ctx context.Context, id int) (*ShapedWorkout, error)
	Add(ctx context.Context, workout Workout) (int, error)
	AddWithID(ctx context.Context, workout Workout) error
	AddPlaceholder(ctx context.Context) (int, error)
	NextID(ctx context.Context) (int, error)
	Update(ctx context.Context, workout Workout) error
	Delete(ctx context.Context, id int) error
	LinkExercise(ctx context.Context, workoutID, exerciseID int) (*LinkedExercise, error)
	UnlinkExercise(ctx context.Context, workoutID, exerciseID int) error
	ExerciseSelection(ctx context.Context, workoutID int) ([]ExerciseSelection, error)
	JoinedExercises(ctx context.Context, workoutID int) ([]JoinedExercise, error)
	ExerciseWorkoutNames(ctx context.Context, workoutID int) ([]ExerciseWorkoutName, error)
}

type CreateWorkoutResponse struct {
	Success   bool `json:"success"`
	WorkoutID int  `json:"workout_id"`
}

type WorkoutIDResponse struct {
	WorkoutID int `json:"workout_id"`
}

type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type LinkExerciseResponse struct {
	Success           bool            `json:"success"`
	ExerciseInWorkout *LinkedExercise `json:"exercise_in_workout"`
}

type Handler struct {
	repo           workoutsRepo
	metricsManager *metrics.Manager
}

func NewHandler(repo workoutsRepo, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		repo:           repo,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/api/workouts", handler.HandleList).Methods("GET", "OPTIONS").Name("list-workouts")
	r.HandleFunc("/api/workouts", handler.HandleAdd).Methods("POST", "OPTIONS").Name("new-workout")
	r.HandleFunc("/api/workouts/new", handler.HandleAddPlaceholder).Methods("POST", "OPTIONS").Name("new-placeholder-workout")
	r.HandleFunc("/api/workouts/{id:[0-9]+}", handler.HandleGet).Methods("GET", "OPTIONS").Name("get-workout")
	r.HandleFunc("/api/workouts/{id:[0-9]+}", handler.HandleAddWithID).Methods("POST", "OPTIONS").Name("insert-workout")
	r.HandleFunc("/api/workouts/{id:[0-9]+}", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-workout")
	r.HandleFunc("/api/workouts/{id:[0-9]+}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-workout")
	r.HandleFunc("/api/generate-workout-id", handler.HandleGenerateID).Methods("GET", "OPTIONS").Name("generate-workout-id")

	r.HandleFunc("/api/exercise-to-workout/{action}/{workout_id:[0-9]+}/{exercise_id:[0-9]+}", handler.HandleExerciseLink).
		Methods("POST", "OPTIONS").Name("exercise-to-workout")
	r.HandleFunc("/api/exercise-to-workout/remove/{workout_id:[0-9]+}/{exercise_id:[0-9]+}", handler.HandleExerciseUnlink).
		Methods("DELETE", "OPTIONS").Name("remove-exercise-from-workout")
	r.HandleFunc("/api/exercises-in-workouts/{workout_id:[0-9]+}", handler.HandleExerciseSelection).Methods("GET", "OPTIONS").Name("exercises-in-workouts")
	r.HandleFunc("/api/joined-exercises/{workout_id:[0-9]+}", handler.HandleJoinedExercises).Methods("GET", "OPTIONS").Name("joined-exercises")
	r.HandleFunc("/api/exercises-with-workouts/{workout_id:[0-9]+}", handler.HandleExerciseWorkoutNames).Methods("GET", "OPTIONS").Name("exercises-with-workouts")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.list")
	defer span.End()

	shaped, err := handler.repo.ListShaped(ctx)
	if err != nil {
		log.Errorf("list workouts: %s", err)
		pkg.WriteJSONError(w, "Failed to fetch workouts due to a database error", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOK(w, shaped)
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.get")
	defer span.End()

	id, ok := intPathVar(w, r, "id")
	if !ok {
		return
	}

	workout, err := handler.repo.GetShaped(ctx, id)
	if err != nil {
		writeRepoError(w, "get workout", err)
		return
	}

	pkg.WriteJSONOK(w, workout)
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.new")
	defer span.End()

	in, ok := decodeWorkoutInput(w, r)
	if !ok {
		return
	}

	id, err := handler.repo.Add(ctx, in.toWorkout(DefaultCreateDescription))
	if err != nil {
		writeRepoError(w, "add workout", err)
		return
	}

	handler.metricsManager.CounterWorkoutsCreated.Inc()
	log.Debugf("new workout added: %d", id)
	pkg.WriteJSON(w, CreateWorkoutResponse{Success: true, WorkoutID: id}, http.StatusCreated)
}

func (handler *Handler) HandleAddWithID(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.insert")
	defer span.End()

	id, ok := intPathVar(w, r, "id")
	if !ok {
		return
	}

	in, ok := decodeWorkoutInput(w, r)
	if !ok {
		return
	}

	workout := in.toWorkout("")
	workout.ID = id
	if err := handler.repo.AddWithID(ctx, workout); err != nil {
		writeRepoError(w, "add workout with id", err)
		return
	}

	handler.metricsManager.CounterWorkoutsCreated.Inc()
	pkg.WriteJSON(w, CreateWorkoutResponse{Success: true, WorkoutID: id}, http.StatusCreated)
}

func (handler *Handler) HandleAddPlaceholder(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.new_placeholder")
	defer span.End()

	id, err := handler.repo.AddPlaceholder(ctx)
	if err != nil {
		writeRepoError(w, "add placeholder workout", err)
		return
	}

	handler.metricsManager.CounterWorkoutsCreated.Inc()
	pkg.WriteJSONOK(w, WorkoutIDResponse{WorkoutID: id})
}

func (handler *Handler) HandleGenerateID(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.generate_id")
	defer span.End()

	id, err := handler.repo.NextID(ctx)
	if err != nil {
		writeRepoError(w, "generate workout id", err)
		return
	}

	pkg.WriteJSONOK(w, WorkoutIDResponse{WorkoutID: id})
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.update")
	defer span.End()

	id, ok := intPathVar(w, r, "id")
	if !ok {
		return
	}

	in, ok := decodeWorkoutInput(w, r)
	if !ok {
		return
	}

	workout := in.toWorkout("")
	workout.ID = id
	if err := handler.repo.Update(ctx, workout); err != nil {
		writeRepoError(w, "update workout", err)
		return
	}

	pkg.WriteJSONOK(w, SuccessResponse{Success: true})
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.delete")
	defer span.End()

	id, ok := intPathVar(w, r, "id")
	if !ok {
		return
	}

	if err := handler.repo.Delete(ctx, id); err != nil {
		writeRepoError(w, "delete workout", err)
		return
	}

	log.Debugf("workout %d deleted", id)
	pkg.WriteJSONOK(w, SuccessResponse{Success: true})
}

func (handler *Handler) HandleExerciseLink(w http.ResponseWriter, r *http.Request) {
	switch action := mux.Vars(r)["action"]; action {
	case "add":
		handler.linkExercise(w, r)
	case "remove":
		handler.HandleExerciseUnlink(w, r)
	default:
		log.Tracef("exercise to workout: unknown action [%s]", action)
		pkg.WriteJSONError(w, "Invalid action", http.StatusBadRequest)
	}
}

func (handler *Handler) linkExercise(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.link_exercise")
	defer span.End()

	workoutID, ok := intPathVar(w, r, "workout_id")
	if !ok {
		return
	}
	exerciseID, ok := intPathVar(w, r, "exercise_id")
	if !ok {
		return
	}

	linked, err := handler.repo.LinkExercise(ctx, workoutID, exerciseID)
	if err != nil {
		writeRepoError(w, "link exercise", err)
		return
	}

	handler.metricsManager.CounterLinkChanges.WithLabelValues("exercise_in_workout", "add").Inc()
	pkg.WriteJSONOK(w, LinkExerciseResponse{Success: true, ExerciseInWorkout: linked})
}

func (handler *Handler) HandleExerciseUnlink(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.unlink_exercise")
	defer span.End()

	workoutID, ok := intPathVar(w, r, "workout_id")
	if !ok {
		return
	}
	exerciseID, ok := intPathVar(w, r, "exercise_id")
	if !ok {
		return
	}

	if err := handler.repo.UnlinkExercise(ctx, workoutID, exerciseID); err != nil {
		writeRepoError(w, "unlink exercise", err)
		return
	}

	handler.metricsManager.CounterLinkChanges.WithLabelValues("exercise_in_workout", "remove").Inc()
	pkg.WriteJSONOK(w, SuccessResponse{
		Success: true,
		Message: "Exercise removed from workout successfully",
	})
}

func (handler *Handler) HandleExerciseSelection(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.exercise_selection")
	defer span.End()

	workoutID, ok := intPathVar(w, r, "workout_id")
	if !ok {
		return
	}

	selection, err := handler.repo.ExerciseSelection(ctx, workoutID)
	if err != nil {
		writeRepoError(w, "exercise selection", err)
		return
	}

	pkg.WriteJSONOK(w, selection)
}

func (handler *Handler) HandleJoinedExercises(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.joined_exercises")
	defer span.End()

	workoutID, ok := intPathVar(w, r, "workout_id")
	if !ok {
		return
	}

	joined, err := handler.repo.JoinedExercises(ctx, workoutID)
	if err != nil {
		writeRepoError(w, "joined exercises", err)
		return
	}

	pkg.WriteJSONOK(w, joined)
}

func (handler *Handler) HandleExerciseWorkoutNames(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.workouts.exercise_workout_names")
	defer span.End()

	workoutID, ok := intPathVar(w, r, "workout_id")
	if !ok {
		return
	}

	names, err := handler.repo.ExerciseWorkoutNames(ctx, workoutID)
	if err != nil {
		writeRepoError(w, "exercise workout names", err)
		return
	}

	pkg.WriteJSONOK(w, names)
}

func decodeWorkoutInput(w http.ResponseWriter, r *http.Request) (WorkoutInput, bool) {
	var in WorkoutInput
	if r.Body == nil {
		pkg.WriteJSONError(w, "No data provided", http.StatusBadRequest)
		return in, false
	}
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		log.Tracef("workout input, unmarshal json: %s", err)
		pkg.WriteJSONError(w, "No data provided", http.StatusBadRequest)
		return in, false
	}
	if !in.hasRequired() {
		pkg.WriteJSONError(w, "Missing required data fields", http.StatusBadRequest)
		return in, false
	}
	return in, true
}

func intPathVar(w http.ResponseWriter, r *http.Request, name string) (int, bool) {
	val, err := strconv.Atoi(mux.Vars(r)[name])
	if err != nil {
		pkg.WriteJSONError(w, "error, "+name+" NaN", http.StatusBadRequest)
		return 0, false
	}
	return val, true
}

func writeRepoError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, ErrWorkoutNotFound):
		pkg.WriteJSONError(w, "Workout not found", http.StatusNotFound)
	case errors.Is(err, ErrExerciseNotFound):
		pkg.WriteJSONError(w, "Exercise not found", http.StatusNotFound)
	case errors.Is(err, ErrLinkExists):
		pkg.WriteJSONError(w, "Exercise is already linked to this workout.", http.StatusBadRequest)
	case errors.Is(err, ErrWorkoutExists):
		pkg.WriteJSONError(w, "Workout already exists", http.StatusBadRequest)
	case pkg.IsIntegrityError(err):
		log.Warnf("%s: %s", op, err)
		pkg.WriteJSONError(w, pkg.PgErrorMessage(err), http.StatusBadRequest)
	default:
		log.Errorf("%s: %s", op, err)
		pkg.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
	}
}
