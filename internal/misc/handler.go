package misc

import (
	"context"
	"net/http"
	"time"

	"github.com/2beens/workoutplanner/internal/telemetry/tracing"
	"github.com/2beens/workoutplanner/pkg"

	"github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
)

const readinessTimeout = 2 * time.Second

type dbPinger interface {
	Ping(ctx context.Context) error
}

type ReadinessResponse struct {
	Ready    bool   `json:"ready"`
	Postgres string `json:"postgres"`
	Redis    string `json:"redis"`
}

type Handler struct {
	versionInfo string
	db          dbPinger
	redisClient *redis.Client
}

// NewHandler creates the misc handler. db and redisClient may be nil, in
// which case readiness reports them as disabled.
func NewHandler(
	versionInfo string,
	db dbPinger,
	redisClient *redis.Client,
) *Handler {
	return &Handler{
		versionInfo: versionInfo,
		db:          db,
		redisClient: redisClient,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET", "POST", "OPTIONS").Name("root")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")
	mainRouter.HandleFunc("/ready", handler.handleReady).Methods("GET").Name("ready")
}

func (handler *Handler) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, "I'm OK, thanks ;)")
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}

func (handler *Handler) handleReady(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "miscHandler.ready")
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, readinessTimeout)
	defer cancel()

	res := ReadinessResponse{
		Ready:    true,
		Postgres: "disabled",
		Redis:    "disabled",
	}

	if handler.db != nil {
		res.Postgres = "ok"
		if err := handler.db.Ping(ctx); err != nil {
			log.Errorf("readiness, postgres ping: %s", err)
			res.Postgres = err.Error()
			res.Ready = false
		}
	}

	if handler.redisClient != nil {
		res.Redis = "ok"
		if err := handler.redisClient.Ping(ctx).Err(); err != nil {
			log.Errorf("readiness, redis ping: %s", err)
			res.Redis = err.Error()
			res.Ready = false
		}
	}

	span.SetAttributes(attribute.Bool("ready", res.Ready))
	if !res.Ready {
		pkg.WriteJSON(w, res, http.StatusServiceUnavailable)
		return
	}
	pkg.WriteJSONOK(w, res)
}
