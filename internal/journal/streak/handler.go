package streak

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/strengthside/journal/internal/journal/schedule"
	"github.com/strengthside/journal/internal/telemetry/metrics"
	"github.com/strengthside/journal/internal/telemetry/tracing"
	"github.com/strengthside/journal/pkg"

	"github.com/go-redis/redis/v8"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/codes"
)

//go:generate mockgen -source=$GOFILE -destination=streak_mocks_test.go -package=streak_test

type activityDaysRepo interface {
	ListDays(ctx context.Context) ([]string, error)
}

type settingsRepo interface {
	Get(ctx context.Context) (*schedule.Settings, error)
}

const streakCacheKeyPrefix = "journal-streak-state||"

type Handler struct {
	checkIns       activityDaysRepo
	sessions       activityDaysRepo
	settings       settingsRepo
	redisClient    *redis.Client
	cacheTTL       time.Duration
	metricsManager *metrics.Manager

	// injectable clock for tests
	NowFunc func() time.Time
}

func NewHandler(
	checkIns activityDaysRepo,
	sessions activityDaysRepo,
	settings settingsRepo,
	redisClient *redis.Client,
	cacheTTL time.Duration,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		checkIns:       checkIns,
		sessions:       sessions,
		settings:       settings,
		redisClient:    redisClient,
		cacheTTL:       cacheTTL,
		metricsManager: metricsManager,
		NowFunc:        time.Now,
	}
}

func (handler *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.streak.get")
	defer span.End()

	now := handler.NowFunc()
	// cache key carries the day so a cached state never leaks across midnight
	cacheKey := streakCacheKeyPrefix + now.Format(dayFormat)

	if handler.cacheEnabled() {
		cached, err := handler.redisClient.Get(ctx, cacheKey).Result()
		if err == nil {
			span.SetStatus(codes.Ok, "cache-hit")
			pkg.WriteJSONResponseOK(w, cached)
			return
		}
		if err != redis.Nil {
			log.Warnf("streak state cache get: %s", err)
		}
	}

	state, err := handler.calculate(ctx, now)
	if err != nil {
		log.Errorf("failed to calculate streak state: %s", err)
		http.Error(w, "error, failed to calculate streak", http.StatusInternalServerError)
		span.RecordError(err)
		return
	}

	stateJson, err := json.Marshal(state)
	if err != nil {
		log.Errorf("failed to marshal streak state: %s", err)
		http.Error(w, "error, failed to calculate streak", http.StatusInternalServerError)
		return
	}

	if handler.cacheEnabled() {
		if err := handler.redisClient.Set(ctx, cacheKey, stateJson, handler.cacheTTL).Err(); err != nil {
			log.Warnf("streak state cache set: %s", err)
		}
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, stateJson)
}

func (handler *Handler) calculate(ctx context.Context, now time.Time) (State, error) {
	checkInDays, err := handler.checkIns.ListDays(ctx)
	if err != nil {
		return State{}, err
	}
	sessionDays, err := handler.sessions.ListDays(ctx)
	if err != nil {
		return State{}, err
	}
	settings, err := handler.settings.Get(ctx)
	if err != nil {
		return State{}, err
	}

	handler.metricsManager.CounterStreakCalculations.Inc()
	return Calculate(checkInDays, sessionDays, settings.TrainingDays, now), nil
}

func (handler *Handler) cacheEnabled() bool {
	return handler.redisClient != nil && handler.cacheTTL > 0
}
