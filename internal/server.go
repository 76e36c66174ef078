package internal

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/erichsen0405/footy-trainer-app-voscxg-sub002/internal/auth"
	"github.com/erichsen0405/footy-trainer-app-voscxg-sub002/internal/config"
	"github.com/erichsen0405/footy-trainer-app-voscxg-sub002/internal/db"
	"github.com/erichsen0405/footy-trainer-app-voscxg-sub002/internal/middleware"
	"github.com/erichsen0405/footy-trainer-app-voscxg-sub002/internal/performance"
	"github.com/erichsen0405/footy-trainer-app-voscxg-sub002/internal/telemetry/metrics"
	"github.com/erichsen0405/footy-trainer-app-voscxg-sub002/internal/telemetry/tracing"
	"github.com/erichsen0405/footy-trainer-app-voscxg-sub002/internal/training"
	"github.com/erichsen0405/footy-trainer-app-voscxg-sub002/pkg"

	"github.com/IBM/pgxpoolprometheus"
	"github.com/getsentry/sentry-go"
	"github.com/go-redis/redis/extra/redisotel/v8"
	"github.com/go-redis/redis/v8"
	"github.com/go-redis/redis_rate/v9"
	"github.com/gorilla/mux"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gorilla/mux/otelmux"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.uber.org/multierr"
)

const maxRequestBodyBytes = 1 << 20

type Server struct {
	httpServer        *http.Server
	metricsHttpServer *http.Server
	appSecret         string // shared secret of the mobile app
	versionInfo       string

	config      *config.Config
	location    *time.Location
	dbPool      *pgxpool.Pool
	redisClient *redis.Client

	// metrics
	metricsManager *metrics.Manager
	promRegistry   *prometheus.Registry
	otelShutdown   func()
}

type NewServerParams struct {
	Config                  *config.Config
	AppSecret               string
	VersionInfo             string
	PostgresUser            string
	PostgresPassword        string
	RedisPassword           string
	HoneycombTracingEnabled bool
}

func NewServer(
	ctx context.Context,
	params NewServerParams,
) (*Server, error) {
	location, err := params.Config.Location()
	if err != nil {
		return nil, err
	}

	dbPool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
		DBHost:         params.Config.PostgresHost,
		DBPort:         params.Config.PostgresPort,
		DBName:         params.Config.PostgresDBName,
		DBUser:         params.PostgresUser,
		DBPassword:     params.PostgresPassword,
		TracingEnabled: params.HoneycombTracingEnabled,
	})
	if err != nil {
		return nil, fmt.Errorf("new db pool: %w", err)
	}

	if err := dbPool.Ping(ctx); err != nil {
		log.Warnf("failed to ping db: %s", err)
	} else if _, err := dbPool.Exec(ctx, training.Schema); err != nil {
		return nil, fmt.Errorf("apply schema: %w", err)
	}

	pgxpoolCollector := pgxpoolprometheus.NewCollector(
		dbPool,
		map[string]string{"db_name": params.Config.PostgresDBName},
	)
	promRegistry := metrics.SetupPrometheus(params.VersionInfo, pgxpoolCollector)
	metricsManager := metrics.NewManager("backend", "training", promRegistry)
	metricsManager.GaugeLifeSignal.Set(0)

	rdb := redis.NewClient(&redis.Options{
		Addr:     net.JoinHostPort(params.Config.RedisHost, params.Config.RedisPort),
		Password: params.RedisPassword,
		DB:       0, // use default DB
	})
	if params.HoneycombTracingEnabled {
		rdb.AddHook(redisotel.NewTracingHook())
	}

	rdbStatus := rdb.Ping(ctx)
	if err := rdbStatus.Err(); err != nil {
		log.Errorf("--> failed to ping redis: %s", err)
	} else {
		log.Debugf("redis ping: %s", rdbStatus.Val())
	}

	// use honeycomb distro to setup OpenTelemetry SDK
	otelShutdown, err := tracing.HoneycombSetup(params.HoneycombTracingEnabled, "training-backend")
	if err != nil {
		return nil, err
	}

	return &Server{
		config:      params.Config,
		location:    location,
		dbPool:      dbPool,
		redisClient: rdb,
		appSecret:   params.AppSecret,
		versionInfo: params.VersionInfo,

		// telemetry
		metricsManager: metricsManager,
		promRegistry:   promRegistry,
		otelShutdown:   otelShutdown,
	}, nil
}

func (s *Server) routerSetup() (*mux.Router, error) {
	r := mux.NewRouter()
	r.Use(otelmux.Middleware("training-router"))

	r.HandleFunc("/", s.handleRoot).Methods("GET")
	r.HandleFunc("/version", s.handleVersion).Methods("GET")

	repo := training.NewRepo(s.dbPool)
	performanceService := performance.NewService(
		repo,
		performance.NewSummaryCache(s.redisClient, s.config.PerformanceCacheTTL.Duration),
		s.metricsManager,
	)

	performanceHandler := performance.NewHandler(performanceService, s.location)
	performanceRouter := r.PathPrefix("/performance").Subrouter()
	performanceRouter.HandleFunc("/week", performanceHandler.HandleWeek).Methods("GET", "OPTIONS").Name("performance-week")
	performanceRouter.HandleFunc("/compute", performanceHandler.HandleCompute).Methods("POST", "OPTIONS").Name("performance-compute")
	performanceRouter.Use(middleware.RateLimit(
		redis_rate.NewLimiter(s.redisClient),
		"performance",
		s.config.PerformanceRateLimitPerMin,
		s.metricsManager,
	))

	trainingHandler := training.NewHandler(
		training.NewService(
			repo,
			training.NewActivityCache(s.config.ActivityCacheSizeMegabytes, s.config.ActivityCacheExpirySeconds),
			performanceService,
			s.metricsManager,
		),
		s.location,
	)
	r.HandleFunc("/activities", trainingHandler.HandleListActivities).Methods("GET", "OPTIONS").Name("list-activities")
	r.HandleFunc("/activities/{id}", trainingHandler.HandleUpdateActivity).Methods("PATCH", "OPTIONS").Name("update-activity")
	r.HandleFunc("/activities/{id}/intensity", trainingHandler.HandleSetActivityIntensity).Methods("PUT", "OPTIONS").Name("set-activity-intensity")
	r.HandleFunc("/tasks/{id}/completed", trainingHandler.HandleSetTaskCompleted).Methods("PUT", "OPTIONS").Name("set-task-completed")
	r.HandleFunc("/external-events/{id}/intensity", trainingHandler.HandleSetExternalIntensity).Methods("PUT", "OPTIONS").Name("set-external-intensity")
	r.HandleFunc("/external-events/{id}", trainingHandler.HandleDeleteExternalEvent).Methods("DELETE", "OPTIONS").Name("delete-external-event")
	r.HandleFunc("/feedback", trainingHandler.HandleSaveFeedback).Methods("POST", "OPTIONS").Name("save-feedback")

	// all the rest - unhandled paths
	r.HandleFunc("/{unknown}", func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}).Methods("GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS").Name("unknown")

	authMiddleware := middleware.NewAuthMiddlewareHandler(auth.NewSecretChecker(s.appSecret))

	r.Use(middleware.PanicRecovery(s.metricsManager))
	r.Use(middleware.LogRequest())
	r.Use(middleware.RequestMetrics(s.metricsManager))
	r.Use(middleware.Cors())
	r.Use(authMiddleware.AuthCheck())
	r.Use(middleware.RequestBody(maxRequestBodyBytes))

	return r, nil
}

func (s *Server) handleRoot(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteResponseBytes(w, pkg.ContentType.Text, []byte("I'm OK, thanks ;)"), http.StatusOK)
}

func (s *Server) handleVersion(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteResponseBytes(w, pkg.ContentType.Text, []byte(s.versionInfo), http.StatusOK)
}

func (s *Server) Serve(host string, port int) {
	router, err := s.routerSetup()
	if err != nil {
		log.Fatalf("failed to setup router: %s", err)
	}

	ipAndPort := net.JoinHostPort(host, strconv.Itoa(port))
	s.httpServer = &http.Server{
		Handler:      otelhttp.NewHandler(router, "training-server"),
		Addr:         ipAndPort,
		WriteTimeout: time.Minute,
		ReadTimeout:  time.Minute,
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

	maxWaitDuration := time.Second * 15
	ctx, timeoutCancel := context.WithTimeout(context.Background(), maxWaitDuration)
	defer timeoutCancel()

	// stop taking requests before the stores go away
	var shutdownErr error
	if s.httpServer != nil {
		shutdownErr = multierr.Append(shutdownErr, s.httpServer.Shutdown(ctx))
	}
	if s.metricsHttpServer != nil {
		shutdownErr = multierr.Append(shutdownErr, s.metricsHttpServer.Shutdown(ctx))
	}
	if s.redisClient != nil {
		shutdownErr = multierr.Append(shutdownErr, s.redisClient.Close())
	}
	for _, err := range multierr.Errors(shutdownErr) {
		log.Errorf(" >>> shutdown: %s", err)
	}

	if s.dbPool != nil {
		log.Debugln("closing db pool ...")
		s.dbPool.Close() // blocking operation
		log.Debugln("db pool closed")
	}

	if s.otelShutdown != nil {
		s.otelShutdown()
		log.Trace("otel shut down ...")
	}

	if ok := sentry.Flush(5 * time.Second); ok {
		log.Debugf("sentry flush ok: %t", ok)
	}

	log.Warnln("server shut down")
}
