package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/barber-availability/internal/audit"
	"github.com/BruksfildServices01/barber-availability/internal/config"
	dbpkg "github.com/BruksfildServices01/barber-availability/internal/db"
	domain "github.com/BruksfildServices01/barber-availability/internal/domain/availability"
	"github.com/BruksfildServices01/barber-availability/internal/infra/cache"
	"github.com/BruksfildServices01/barber-availability/internal/infra/lock"
	"github.com/BruksfildServices01/barber-availability/internal/infra/memory"
	"github.com/BruksfildServices01/barber-availability/internal/infra/notify"
	infraRepo "github.com/BruksfildServices01/barber-availability/internal/infra/repository"
	"github.com/BruksfildServices01/barber-availability/internal/logger"
	"github.com/BruksfildServices01/barber-availability/internal/middleware"
	"github.com/BruksfildServices01/barber-availability/internal/routes"
	"github.com/BruksfildServices01/barber-availability/internal/timezone"
	ucWaitlist "github.com/BruksfildServices01/barber-availability/internal/usecase/waitlist"
)

const demoProviderID = "demo"

func main() {

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	zl, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	clock := timezone.SystemClock{}
	deps := routes.Deps{
		Config: cfg,
		Log:    zl,
		Clock:  clock,
	}

	// ======================================================
	// STORAGE
	// ======================================================
	var sink audit.Sink

	switch cfg.StorageDriver {
	case config.DriverPostgres:
		db, err := dbpkg.NewDB(cfg, zl)
		if err != nil {
			zl.Fatal("database", zap.Error(err))
		}

		deps.Providers = infraRepo.NewProviderGormRepository(db)
		deps.Availability = infraRepo.NewAvailabilityGormRepository(db)
		deps.Appointments = infraRepo.NewAppointmentGormRepository(db)
		deps.Waitlist = infraRepo.NewWaitlistGormRepository(db)
		sink = audit.NewGormSink(db)

	case config.DriverMemory:
		store := memory.NewStore()
		store.PutProvider(domain.Provider{
			ID:       demoProviderID,
			Name:     "Demo",
			Timezone: cfg.DefaultTimezone,
		})
		zl.Warn("using in-memory storage, data is lost on restart",
			zap.String("provider_id", demoProviderID),
		)

		deps.Providers = store
		deps.Availability = store
		deps.Appointments = store
		deps.Waitlist = store
		sink = audit.NewLogSink(zl)
	}

	// ======================================================
	// REDIS (CACHE, LOCK, NOTIFICATIONS)
	// ======================================================
	var asynqClient *asynq.Client

	if cfg.RedisEnabled() {
		rdb, err := cache.NewRedisClient(cfg, zl)
		if err != nil {
			zl.Fatal("redis", zap.Error(err))
		}
		defer rdb.Close()

		deps.Availability = cache.NewAvailabilityCache(rdb, deps.Availability, cfg.AvailabilityCacheTTL, zl)
		deps.Locker = lock.NewRedisLocker(rdb, cfg.BookingLockTTL, zl)

		asynqClient = asynq.NewClient(asynq.RedisClientOpt{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		deps.Notifier = notify.NewAsynqNotifier(asynqClient, cfg.NotifyQueue, clock, zl)
	} else {
		deps.Locker = lock.NewLocalLocker()
		deps.Notifier = notify.NewLogNotifier(zl)
	}

	dispatcher := audit.NewDispatcher(sink, zl)
	deps.Audit = dispatcher

	// ======================================================
	// BACKGROUND
	// ======================================================
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sweeper := ucWaitlist.NewSweeper(
		ucWaitlist.NewCleanupExpired(deps.Providers, deps.Waitlist, clock, cfg.DefaultTimezone),
		cfg.WaitlistSweepInterval,
		zl,
	)
	go sweeper.Run(ctx)

	// ======================================================
	// HTTP
	// ======================================================
	if cfg.LogLevel != "debug" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.AccessLog(zl))
	r.Use(middleware.CORSMiddleware())

	routes.RegisterRoutes(r, deps)

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		zl.Info("server running", zap.String("addr", cfg.Addr()), zap.String("storage", cfg.StorageDriver))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zl.Fatal("listen", zap.Error(err))
		}
	}()

	<-ctx.Done()
	zl.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Error("server shutdown", zap.Error(err))
	}

	dispatcher.Close()

	if asynqClient != nil {
		if err := asynqClient.Close(); err != nil {
			zl.Warn("asynq close", zap.Error(err))
		}
	}
}
