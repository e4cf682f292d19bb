package exercises

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

//go:generate mockgen -source=$GOFILE -destination=exercises_mocks_test.go -package=exercises_test

type exercisesRepo interface {
	List(ctx context.Context, filter Filter) ([]Exercise, error)
	ListByWorkout(ctx context.Context, workoutID int) ([]Exercise, error)
	ListWithDetails(ctx context.Context) ([]ExerciseWithDetail, error)
	Add(ctx context.Context, exercise Exercise) (int, error)
	Update(ctx context.Context, exercise Exercise) error
	Delete(ctx context.Context, id int) error
	ListDetails(ctx context.Context) ([]ExerciseDetail, error)
	AddDetail(ctx context.Context, detail ExerciseDetail) (int, error)
	UpdateDetail(ctx context.Context, detail ExerciseDetail) error
}

type CreateExerciseResponse struct {
	Success    bool `json:"success"`
	ExerciseID int  `json:"exercise_id"`
}

type CreateDetailResponse struct {
	Success          bool `json:"success"`
	ExerciseDetailID int  `json:"exercise_detail_id"`
}

type SuccessResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

type Handler struct {
	repo           exercisesRepo
	cache          *CatalogCache
	metricsManager *metrics.Manager
}

func NewHandler(
	repo exercisesRepo,
	cache *CatalogCache,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		repo:           repo,
		cache:          cache,
		metricsManager: metricsManager,
	}
}

func (handler *Handler) SetupRoutes(r *mux.Router) {
	r.HandleFunc("/api/exercises", handler.HandleList).Methods("GET", "OPTIONS").Name("list-exercises")
	r.HandleFunc("/api/exercises", handler.HandleAdd).Methods("POST", "OPTIONS").Name("new-exercise")
	r.HandleFunc("/api/exercises/{id:[0-9]+}", handler.HandleListByWorkout).Methods("GET", "OPTIONS").Name("workout-exercises")
	r.HandleFunc("/api/exercises/{id:[0-9]+}", handler.HandleUpdate).Methods("PUT", "OPTIONS").Name("update-exercise")
	r.HandleFunc("/api/exercises/{id:[0-9]+}", handler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-exercise")
	r.HandleFunc("/api/all-exercises", handler.HandleListWithDetails).Methods("GET", "OPTIONS").Name("all-exercises")
	r.HandleFunc("/api/exercise-details", handler.HandleListDetails).Methods("GET", "OPTIONS").Name("exercise-details")
	r.HandleFunc("/api/add-exercise-detail", handler.HandleAddDetail).Methods("POST", "OPTIONS").Name("new-exercise-detail")
	r.HandleFunc("/api/exercise-details/{id:[0-9]+}", handler.HandleUpdateDetail).Methods("PUT", "OPTIONS").Name("update-exercise-detail")
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list")
	defer span.End()

	filter, err := ParseFilter(r.URL.Query().Get("filter"))
	if err != nil {
		log.Tracef("list exercises: %s", err)
		pkg.WriteJSONError(w, "Invalid filter option", http.StatusBadRequest)
		return
	}

	handler.serveCached(w, "exercises:"+filter.String(), func() (any, error) {
		return handler.repo.List(ctx, filter)
	})
}

// HandleListByWorkout serves the exercises linked to a workout. The id in
// the path is a workout id here. Links change outside this package, so the
// result is not cached.
func (handler *Handler) HandleListByWorkout(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list_by_workout")
	defer span.End()

	workoutID, ok := intPathVar(w, r, "id")
	if !ok {
		return
	}

	exercises, err := handler.repo.ListByWorkout(ctx, workoutID)
	if err != nil {
		log.Errorf("list workout exercises: %s", err)
		pkg.WriteJSONError(w, "Failed to fetch exercises due to a database error", http.StatusInternalServerError)
		return
	}

	pkg.WriteJSONOK(w, exercises)
}

func (handler *Handler) HandleListWithDetails(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list_with_details")
	defer span.End()

	handler.serveCached(w, "all-exercises", func() (any, error) {
		return handler.repo.ListWithDetails(ctx)
	})
}

func (handler *Handler) HandleListDetails(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.list_details")
	defer span.End()

	handler.serveCached(w, "exercise-details", func() (any, error) {
		return handler.repo.ListDetails(ctx)
	})
}

func (handler *Handler) HandleAdd(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.new")
	defer span.End()

	var in ExerciseInput
	if !decodeInput(w, r, &in) {
		return
	}
	if !in.hasRequired() {
		pkg.WriteJSONError(w, "Missing required data fields", http.StatusBadRequest)
		return
	}

	id, err := handler.repo.Add(ctx, in.toExercise())
	if err != nil {
		writeRepoError(w, "add exercise", err)
		return
	}

	handler.cache.Clear()
	handler.metricsManager.CounterExercisesCreated.Inc()
	log.Debugf("new exercise added: %d", id)
	pkg.WriteJSON(w, CreateExerciseResponse{Success: true, ExerciseID: id}, http.StatusCreated)
}

func (handler *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.update")
	defer span.End()

	id, ok := intPathVar(w, r, "id")
	if !ok {
		return
	}

	var in ExerciseInput
	if !decodeInput(w, r, &in) {
		return
	}
	if !in.hasRequired() {
		pkg.WriteJSONError(w, "Missing required data fields", http.StatusBadRequest)
		return
	}

	exercise := in.toExercise()
	exercise.ID = id
	if err := handler.repo.Update(ctx, exercise); err != nil {
		writeRepoError(w, "update exercise", err)
		return
	}

	handler.cache.Clear()
	pkg.WriteJSONOK(w, SuccessResponse{Success: true})
}

func (handler *Handler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.delete")
	defer span.End()

	id, ok := intPathVar(w, r, "id")
	if !ok {
		return
	}

	if err := handler.repo.Delete(ctx, id); err != nil {
		writeRepoError(w, "delete exercise", err)
		return
	}

	handler.cache.Clear()
	log.Debugf("exercise %d deleted", id)
	pkg.WriteJSONOK(w, SuccessResponse{Success: true})
}

func (handler *Handler) HandleAddDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.new_detail")
	defer span.End()

	var in ExerciseDetailInput
	if !decodeInput(w, r, &in) {
		return
	}
	if !in.hasRequired() {
		pkg.WriteJSONError(w, "Missing required data fields", http.StatusBadRequest)
		return
	}

	id, err := handler.repo.AddDetail(ctx, in.toDetail())
	if err != nil {
		writeRepoError(w, "add exercise detail", err)
		return
	}

	handler.cache.Clear()
	pkg.WriteJSON(w, CreateDetailResponse{Success: true, ExerciseDetailID: id}, http.StatusCreated)
}

func (handler *Handler) HandleUpdateDetail(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.exercises.update_detail")
	defer span.End()

	id, ok := intPathVar(w, r, "id")
	if !ok {
		return
	}

	var in ExerciseDetailInput
	if !decodeInput(w, r, &in) {
		return
	}
	if !in.hasRequired() {
		pkg.WriteJSONError(w, "Missing required data fields", http.StatusBadRequest)
		return
	}

	detail := in.toDetail()
	detail.ID = id
	if err := handler.repo.UpdateDetail(ctx, detail); err != nil {
		writeRepoError(w, "update exercise detail", err)
		return
	}

	handler.cache.Clear()
	w.WriteHeader(http.StatusNoContent)
}

// serveCached writes the cached listing under key, or loads, caches and
// writes a fresh one.
func (handler *Handler) serveCached(w http.ResponseWriter, key string, load func() (any, error)) {
	if cached, ok := handler.cache.Get(key); ok {
		pkg.WriteResponseBytes(w, pkg.ContentType.JSON, cached, http.StatusOK)
		return
	}

	val, err := load()
	if err != nil {
		log.Errorf("load [%s]: %s", key, err)
		pkg.WriteJSONError(w, "Failed to fetch exercises due to a database error", http.StatusInternalServerError)
		return
	}

	resBytes, err := json.Marshal(val)
	if err != nil {
		log.Errorf("marshal [%s]: %s", key, err)
		pkg.WriteJSONError(w, "internal error", http.StatusInternalServerError)
		return
	}

	handler.cache.Set(key, resBytes)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, resBytes, http.StatusOK)
}

func decodeInput(w http.ResponseWriter, r *http.Request, in any) bool {
	if r.Body == nil {
		pkg.WriteJSONError(w, "No data provided", http.StatusBadRequest)
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(in); err != nil {
		log.Tracef("exercise input, unmarshal json: %s", err)
		pkg.WriteJSONError(w, "No data provided", http.StatusBadRequest)
		return false
	}
	return true
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
	case errors.Is(err, ErrExerciseNotFound):
		pkg.WriteJSONError(w, "Exercise not found", http.StatusNotFound)
	case errors.Is(err, ErrExerciseDetailNotFound):
		pkg.WriteJSONError(w, "Exercise detail not found", http.StatusNotFound)
	case pkg.IsIntegrityError(err):
		log.Warnf("%s: %s", op, err)
		pkg.WriteJSONError(w, pkg.PgErrorMessage(err), http.StatusBadRequest)
	default:
		log.Errorf("%s: %s", op, err)
		pkg.WriteJSONError(w, err.Error(), http.StatusInternalServerError)
	}
}
