package consultingapp

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"hospital-manager-api/config"
	"hospital-manager-api/internal/application/services"
	"hospital-manager-api/internal/infrastructure/db/postgres"
	consultationRepo "hospital-manager-api/internal/infrastructure/db/postgres/consultation"
	patientRepo "hospital-manager-api/internal/infrastructure/db/postgres/patient"
	"hospital-manager-api/internal/infrastructure/metrics"
	"hospital-manager-api/internal/infrastructure/peers"
	"hospital-manager-api/internal/interface/api/rest"
	"hospital-manager-api/internal/interface/api/rest/middleware"
)

// App is the consulting service: patients and medical consultations, plus
// the probe endpoints the admin service's delete sagas depend on.
type App struct {
	logger   *zap.Logger
	cfg      config.Config
	db       *pgxpool.Pool
	httpSrv  *http.Server
	router   *gin.Engine
	mCounter *prometheus.CounterVec
}

func NewApp(ctx context.Context) (*App, error) {
	// logger
	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("cannot initialize zap logger: %v", err)
	}
	defer logger.Sync()

	// config
	if err = godotenv.Load(".env"); err != nil {
		logger.Fatal("error loading .env file", zap.Error(err))
	}
	cfg := config.Load()

	// metrics
	mCounter := metrics.NewCounter()

	// router
	switch cfg.App.Env {
	case gin.ReleaseMode, "prod", "production":
		gin.SetMode(gin.ReleaseMode)
	case gin.TestMode:
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.DebugMode)
	}
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Identity(logger))
	r.Use(middleware.RequestLogGin(logger, mCounter))

	// httpServer
	httpSrv := &http.Server{
		Addr:    ":" + cfg.App.Port,
		Handler: r,
	}

	// db
	dbDsn, err := cfg.DBDSN()
	if err != nil {
		logger.Fatal("DB config error", zap.Error(err))
	}
	dbPool, err := postgres.New(ctx, logger, dbDsn)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}

	return &App{
		logger:   logger,
		cfg:      cfg,
		db:       dbPool,
		httpSrv:  httpSrv,
		router:   r,
		mCounter: mCounter,
	}, nil
}

func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
	if a.logger != nil {
		_ = a.logger.Sync()
	}
}

func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGUSR1)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		a.logger.Info("starting "+a.cfg.App.Name, zap.String("addr", a.cfg.App.Host+":"+a.cfg.App.Port))
		if err := a.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server "+a.cfg.App.Name+" error: %w", err)
		}

		return nil
	})

	<-ctx.Done()

	a.logger.Info("shutting down " + a.cfg.App.Name + " gracefully...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if a.httpSrv != nil {
		if err := a.httpSrv.Shutdown(shutdownCtx); err != nil {
			a.logger.Error("http server shutdown "+a.cfg.App.Name+" error", zap.Error(err))
			return err
		}
	}

	if err := g.Wait(); err != nil {
		a.logger.Error(a.cfg.App.Name+" returning an error", zap.Error(err))
		return err
	}

	a.logger.Info(a.cfg.App.Name + " gracefully stopped")

	return nil
}

func (a *App) InitControllers() {
	// repos
	patients := patientRepo.NewRepository(a.db)
	consultations := consultationRepo.NewRepository(a.db)

	// peer clients
	adminClient := peers.NewAdmin(a.cfg.Peers.Admin, a.logger)

	// services
	patientService := services.NewPatientService(patients, adminClient, a.logger, a.mCounter)
	consultationService := services.NewConsultationService(consultations, patients, adminClient, a.logger, a.mCounter)

	// controllers
	rest.NewPatientController(a.router, patientService, a.logger)
	rest.NewConsultationController(a.router, consultationService, a.logger)

	// ops
	a.router.GET(rest.RouteHealth, func(c *gin.Context) { c.Status(http.StatusOK) })
	a.router.GET(rest.RouteMetrics, gin.WrapH(promhttp.Handler()))
}

func (a *App) Logger() *zap.Logger { return a.logger }
