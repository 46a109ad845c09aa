package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/strengthside/journal/internal/auth"
	"github.com/strengthside/journal/internal/config"
	"github.com/strengthside/journal/internal/db"
	"github.com/strengthside/journal/internal/journal/checkin"
	"github.com/strengthside/journal/internal/journal/schedule"
	"github.com/strengthside/journal/internal/journal/sessions"
	"github.com/strengthside/journal/internal/journal/streak"
	"github.com/strengthside/journal/internal/middleware"
	"github.com/strengthside/journal/internal/misc"
	"github.com/strengthside/journal/internal/reminders"
	"github.com/strengthside/journal/internal/telemetry/metrics"
	"github.com/strengthside/journal/internal/telemetry/tracing"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	versionInfo       string

	config *config.Config
	dbPool *pgxpool.Pool

	redisClient  *redis.Client
	loginChecker *auth.LoginChecker
	authService  *auth.Service

	notifier          reminders.Notifier
	reminderScheduler *reminders.Scheduler

	// telemetry
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	VersionInfo             string
	AdminUsername           string
	AdminPasswordHash       string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": "journal_db"},
	)
	promRegistry := metrics.SetupPrometheus(pgxpoolCollector)
	metricsManager := metrics.NewManager("journal", "main", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0) // will be set to 1 when all is set and ran

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	authService := auth.NewAuthService(&auth.Admin{
		Username:     params.AdminUsername,
		PasswordHash: params.AdminPasswordHash,
	}, auth.DefaultTTL, rdb)
	go func() {
		for range time.Tick(time.Hour * 8) {
			authService.ScanAndClean(ctx)
		}
	}()

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "journal-backend", rdb)
	if err != nil {
		return nil, err
	}

	tracedHttpClient := &http.Client{
		Transport: otelhttp.NewTransport(http.DefaultTransport),
		Timeout:   30 * time.Second,
	}

	notifier := reminders.NewPushGatewayNotifier(
		params.Config.PushGatewayBaseURL,
		tracedHttpClient,
	)

	s := &Server{
		config:      params.Config,
		dbPool:      dbPool,
		versionInfo: params.VersionInfo,

		redisClient:  rdb,
		authService:  authService,
		loginChecker: auth.NewLoginChecker(auth.DefaultTTL, rdb),

		notifier: notifier,
		reminderScheduler: reminders.NewScheduler(
			notifier,
			schedule.NewRepo(dbPool),
			metricsManager,
		),

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}

	return s, nil
}

func (s *Server) routerSetup() *mux.Router {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("main-router"))

	reqRateLimiter := redis_rate.NewLimiter(s.redisClient)

	miscHandler := misc.NewHandler(s.versionInfo, s.authService)
	miscHandler.SetupRoutes(r, reqRateLimiter, s.config.LoginRateLimitAllowedPerMin, s.metricsManager)

	journalRateLimit := middleware.RateLimit(
		reqRateLimiter, "journal",
		s.config.JournalRateLimitAllowedPerMin,
		s.metricsManager,
	)

	checkInsRepo := checkin.NewRepo(s.dbPool)
	checkInsHandler := checkin.NewHandler(checkInsRepo, s.metricsManager)
	checkInsRouter := r.PathPrefix("/checkins").Subrouter()
	checkInsRouter.HandleFunc("", checkInsHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-checkin")
	checkInsRouter.HandleFunc("", checkInsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-checkins")
	checkInsRouter.HandleFunc("/scores", checkInsHandler.HandleScores).Methods("GET", "OPTIONS").Name("checkin-scores")
	checkInsRouter.HandleFunc("/{id}", checkInsHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-checkin")
	checkInsRouter.HandleFunc("/{id}", checkInsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-checkin")
	checkInsRouter.Use(journalRateLimit)

	sessionsRepo := sessions.NewRepo(s.dbPool)
	sessionsHandler := sessions.NewHandler(sessionsRepo, s.metricsManager)
	sessionsRouter := r.PathPrefix("/sessions").Subrouter()
	sessionsRouter.HandleFunc("", sessionsHandler.HandleAdd).Methods("POST", "OPTIONS").Name("new-session-report")
	sessionsRouter.HandleFunc("", sessionsHandler.HandleList).Methods("GET", "OPTIONS").Name("list-session-reports")
	sessionsRouter.HandleFunc("/{id}", sessionsHandler.HandleDelete).Methods("DELETE", "OPTIONS").Name("delete-session-report")
	sessionsRouter.Use(journalRateLimit)

	settingsRepo := schedule.NewRepo(s.dbPool)
	streakHandler := streak.NewHandler(
		checkInsRepo,
		sessionsRepo,
		settingsRepo,
		s.redisClient,
		time.Duration(s.config.StreakCacheTTLSeconds)*time.Second,
		s.metricsManager,
	)
	r.HandleFunc("/streak", streakHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-streak")

	scheduleHandler := schedule.NewHandler(settingsRepo, s.reminderScheduler)
	scheduleRouter := r.PathPrefix("/schedule").Subrouter()
	scheduleRouter.HandleFunc("", scheduleHandler.HandleGet).Methods("GET", "OPTIONS").Name("get-schedule")
	scheduleRouter.HandleFunc("", scheduleHandler.HandleUpdateTrainingDays).Methods("PUT", "OPTIONS").Name("update-schedule")
	scheduleRouter.HandleFunc("/meet", scheduleHandler.HandleUpdateMeet).Methods("PUT", "OPTIONS").Name("update-meet")
	scheduleRouter.HandleFunc("/notifications", scheduleHandler.HandleUpdateNotifications).Methods("PUT", "OPTIONS").Name("update-notifications")
	scheduleRouter.Use(journalRateLimit)

	remindersHandler := reminders.NewHandler(s.notifier, s.reminderScheduler)
	remindersRouter := r.PathPrefix("/reminders").Subrouter()
	remindersRouter.HandleFunc("/permission", remindersHandler.HandleGetPermission).Methods("GET", "OPTIONS").Name("get-reminders-permission")
	remindersRouter.HandleFunc("/permission", remindersHandler.HandleRequestPermission).Methods("POST", "OPTIONS").Name("request-reminders-permission")
	remindersRouter.HandleFunc("/reschedule", remindersHandler.HandleReschedule).Methods("POST", "OPTIONS").Name("reschedule-reminders")
	remindersRouter.Use(journalRateLimit)

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(s.loginChecker)

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.DrainAndCloseRequest())

	return r
}

func (s *Server) Serve(_ context.Context, host string, port int) {
	router := s.routerSetup()

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      router,
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
		ConnState:    s.connStateMetrics,
	}

	metricsRouter := mux.NewRouter()
	metricsRouter.Handle("/metrics", promhttp.HandlerFor(
		s.promRegistry,
		promhttp.HandlerOpts{},
	))
	metricsAddr := net.JoinHostPort(s.config.PrometheusMetricsHost, s.config.PrometheusMetricsPort)
	s.metricsHttpServer = &http.Server{
		Addr:    metricsAddr,
		Handler: metricsRouter,
	}

	go func() {
		log.Infof(" > server listening on: [%s]", ipAndPort)
		err := s.httpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("main service, listen and serve: %s", err)
		}
	}()

	go func() {
		log.Debugf(" > metrics listening on: [%s]", metricsAddr)
		err := s.metricsHttpServer.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("metrics service, listen and serve: %s", err)
		}
	}()

	s.metricsManager.GaugeLifeSignal.Set(1)
}

func (s *Server) GracefulShutdown() {
	log.Debug("graceful shutdown initiated ...")

	s.metricsManager.GaugeLifeSignal.Set(0)

	s.otelShutdown()
	log.Trace("otel shut down ...")

	if s.redisClient != nil {
		if err := s.redisClient.Close(); err != nil {
			log.Errorf("failed to close redis client conn: %s", err)
		}
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown http server")
	}
	log.Warnln("server shut down")

	if err := s.metricsHttpServer.Shutdown(ctx); err != nil {
		log.Error(" >>> failed to gracefully shutdown metrics http server")
	}
	log.Warnln("metrics server shut down")
}

func (s *Server) connStateMetrics(_ net.Conn, state http.ConnState) {
	switch state {
	case http.StateNew:
		s.metricsManager.GaugeRequests.Add(1)
	case http.StateClosed:
		s.metricsManager.GaugeRequests.Add(-1)
	default:
		// do nothing
	}
}
