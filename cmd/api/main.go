package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/blackline-studio/tattoo-scheduler/internal/cache"
	"github.com/blackline-studio/tattoo-scheduler/internal/config"
	dbpkg "github.com/blackline-studio/tattoo-scheduler/internal/db"
	infraRepo "github.com/blackline-studio/tattoo-scheduler/internal/infra/repository"
	"github.com/blackline-studio/tattoo-scheduler/internal/jobs"
	"github.com/blackline-studio/tattoo-scheduler/internal/mailer"
	"github.com/blackline-studio/tattoo-scheduler/internal/middleware"
	"github.com/blackline-studio/tattoo-scheduler/internal/routes"
	"github.com/blackline-studio/tattoo-scheduler/internal/storage"
	"github.com/blackline-studio/tattoo-scheduler/internal/timezone"
	usecase "github.com/blackline-studio/tattoo-scheduler/internal/usecase/schedule"
)

func main() {

	cfg := config.Load()

	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	db := dbpkg.NewDB(cfg)
	loc := timezone.Location(cfg.Timezone)

	deps := routes.Deps{
		Log: logger,
		Loc: loc,
	}

	if cfg.RedisAddr != "" {
		redisCache := cache.New(cfg.RedisAddr, cfg.RedisPassword, logger)

		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisCache.Ping(ctx); err != nil {
			logger.Warn("redis unreachable, running without cache", zap.Error(err))
		} else {
			deps.Cache = redisCache
		}
		cancel()
	}

	if cfg.S3Bucket != "" {
		deps.Store = storage.NewImageStore(storage.Options{
			Region:        cfg.S3Region,
			Bucket:        cfg.S3Bucket,
			Endpoint:      cfg.S3Endpoint,
			AccessKey:     cfg.S3AccessKey,
			SecretKey:     cfg.S3SecretKey,
			PublicBaseURL: cfg.S3PublicBaseURL,
		})
	}

	var studioMailer *mailer.Mailer
	if cfg.SMTPHost != "" {
		studioMailer = mailer.New(
			cfg.SMTPHost,
			cfg.SMTPPort,
			cfg.SMTPUser,
			cfg.SMTPPassword,
			cfg.MailFrom,
			cfg.StudioName,
			logger,
		)
		deps.Notifier = studioMailer
	}

	// nightly jobs: disabled-dates refresh + reminders
	scheduleRepo := infraRepo.NewScheduleGormRepository(db)
	disabledDatesUC := usecase.NewGetDisabledDates(scheduleRepo, deps.Cache, nil)

	var reminder jobs.Reminder
	if studioMailer != nil {
		reminder = studioMailer
	}

	runner := jobs.NewRunner(db, disabledDatesUC, reminder, loc, logger)
	runner.Start()
	defer runner.Stop()

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, cfg, deps)

	logger.Info("server starting", zap.String("addr", cfg.Addr()))
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
