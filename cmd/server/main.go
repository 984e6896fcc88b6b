package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/fadilmartias/starplan/internal/config"
	"github.com/fadilmartias/starplan/internal/domain/fiber/handler"
	"github.com/fadilmartias/starplan/internal/middleware"
	"github.com/fadilmartias/starplan/internal/renderer"
	"github.com/fadilmartias/starplan/internal/repository"
	"github.com/fadilmartias/starplan/internal/scheduler"
	"github.com/fadilmartias/starplan/internal/service"
	"github.com/fadilmartias/starplan/internal/storage"
	"github.com/fadilmartias/starplan/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/healthcheck"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/pprof"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	ctx := context.Background()
	if err := godotenv.Load(); err != nil {
		log.Println("Could not load .env file")
	}

	appConfig := config.LoadAppConfig()

	app := fiber.New(fiber.Config{
		AppName:   appConfig.Name,
		BodyLimit: 12 * 1024 * 1024,
		ErrorHandler: func(ctx *fiber.Ctx, err error) error {
			code := fiber.StatusInternalServerError

			var e *fiber.Error
			if errors.As(err, &e) {
				code = e.Code
			}

			message := err.Error()
			if code == fiber.StatusRequestEntityTooLarge {
				message = "File too large (max 10MB)"
			}
			if message == "" {
				message = "Internal Server Error"
			}

			return ctx.Status(code).JSON(fiber.Map{"error": message})
		},
	})
	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))
	app.Use(recover.New(recover.Config{
		EnableStackTrace: !appConfig.IsProduction(),
	}))
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(pprof.New(pprof.Config{
		Next: func(c *fiber.Ctx) bool {
			return appConfig.IsProduction()
		},
	}))
	app.Use(healthcheck.New())
	app.Use(helmet.New(helmet.Config{
		CrossOriginResourcePolicy: "cross-origin",
	}))

	var rdb *redis.Client
	var limiterStorage fiber.Storage
	if config.LoadRedisConfig().Enabled() {
		client, err := repository.ConnectRedis(ctx)
		if err != nil {
			log.Printf("Redis unavailable, using in-memory chat history and limiter: %v", err)
		} else {
			rdb = client
			limiterStorage = repository.NewRedisStorage(rdb, "limiter:")
		}
	}
	app.Use(middleware.RateLimiter(appConfig.RateLimitMax, 1*time.Minute, limiterStorage))
	uploadLimiter := middleware.RateLimiter(10, 1*time.Minute, limiterStorage)

	providers := service.NewProviders(ctx)

	var resumeRepo repository.ResumeRepositoryInterface = repository.NewMemoryResumeRepository()
	if config.LoadDBConfig().Enabled() {
		db, err := repository.ConnectDB()
		if err != nil {
			log.Fatalf("Could not connect to database: %v", err)
		}
		resumeRepo = repository.NewResumeRepository(db)
		if providers.Jobs == nil {
			providers.Jobs = repository.NewJobRepository(db)
			log.Println("Serving jobs from Postgres")
		}
	} else {
		log.Println("DB_HOST not set, resumes are kept in memory")
	}

	var chatHistory repository.ChatHistoryRepositoryInterface = repository.NewMemoryChatHistoryRepository()
	if rdb != nil {
		chatHistory = repository.NewChatHistoryRepository(rdb)
	}

	var objectStore storage.ObjectStore = storage.NewLocalStore(appConfig.UploadDir, "/uploads")
	if storageConfig := config.LoadStorageConfig(); storageConfig.Enabled() {
		s3Store, err := storage.NewS3Store(ctx, storageConfig)
		if err != nil {
			log.Printf("S3 storage disabled: %v", err)
		} else {
			objectStore = s3Store
			log.Printf("Archiving resumes to bucket %s", storageConfig.Bucket)
		}
	}

	var pdfRenderer renderer.PDFRenderer
	if rendererConfig := config.LoadRendererConfig(); rendererConfig.Enabled {
		pdfRenderer = renderer.NewChromedpRenderer(rendererConfig.ChromePath)
	}

	matchUsecase := usecase.NewMatchUsecase(providers.Embedder)
	jobUsecase := usecase.NewJobUsecase(providers.Jobs, matchUsecase)
	resumeUsecase := usecase.NewResumeUsecase(usecase.ResumeDeps{
		Chat:         providers.Chat,
		Embedder:     providers.Embedder,
		Repo:         resumeRepo,
		Store:        objectStore,
		Renderer:     pdfRenderer,
		Jobs:         jobUsecase,
		Matcher:      matchUsecase,
		GeneratedDir: appConfig.GeneratedDir,
	})

	handler.NewChatHandler(usecase.NewChatUsecase(providers.Chat, providers.Transcriber, chatHistory), appConfig.UploadDir, uploadLimiter).RegisterRoutes(app)
	handler.NewJobHandler(jobUsecase).RegisterRoutes(app)
	handler.NewProfileHandler(usecase.NewProfileUsecase(providers.Profiles)).RegisterRoutes(app)
	handler.NewResumeHandler(resumeUsecase, appConfig.UploadDir, uploadLimiter).RegisterRoutes(app)
	handler.NewTemplateHandler(usecase.NewTemplateUsecase()).RegisterRoutes(app)

	for _, dir := range []string{appConfig.UploadDir, filepath.Join(appConfig.UploadDir, "audio"), appConfig.GeneratedDir} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatalf("Could not create %s: %v", dir, err)
		}
	}
	app.Static("/uploads", appConfig.UploadDir, fiber.Static{Browse: false})
	app.Static("/generated", appConfig.GeneratedDir, fiber.Static{Browse: false})

	schedulerConfig := config.LoadSchedulerConfig()
	cleanup := scheduler.New(schedulerConfig.CleanupSpec, schedulerConfig.UploadRetention,
		appConfig.UploadDir, filepath.Join(appConfig.UploadDir, "audio"), appConfig.GeneratedDir)
	if err := cleanup.Start(); err != nil {
		log.Fatalf("Could not start cleanup job: %v", err)
	}

	go func() {
		log.Println("Server running on", appConfig.Port)
		if err := app.Listen(appConfig.Port); err != nil {
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down...")

	cleanup.Stop()
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("Server shutdown: %v", err)
	}
	if rdb != nil {
		if err := rdb.Close(); err != nil {
			log.Printf("Redis close: %v", err)
		}
	}
}
