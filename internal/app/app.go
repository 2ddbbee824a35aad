package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"exam_platform_backend/internal/config"
	"exam_platform_backend/internal/controller"
	"exam_platform_backend/internal/repository"
	"exam_platform_backend/internal/service"
	"exam_platform_backend/pkg/configwatcher"
	"exam_platform_backend/pkg/database"
	"exam_platform_backend/pkg/logger"
	"exam_platform_backend/pkg/monitoring"
	"exam_platform_backend/pkg/security"
	"exam_platform_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config  *config.Config
	Router  *gin.Engine
	DB      *gorm.DB
	Redis   *redis.Client
	origins *security.OriginSet
	tracer  *sdktrace.TracerProvider
}

type repositories struct {
	exam       *repository.ExamRepository
	question   *repository.QuestionRepository
	student    *repository.StudentRepository
	submission *repository.SubmissionRepository
}

type services struct {
	submission *service.SubmissionService
	exam       *service.ExamService
	question   *service.QuestionService
	student    *service.StudentService
}

type controllers struct {
	submission *controller.SubmissionController
	exam       *controller.ExamController
	question   *controller.QuestionController
	student    *controller.StudentController
	health     *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		exam:       repository.NewExamRepository(db),
		question:   repository.NewQuestionRepository(db),
		student:    repository.NewStudentRepository(db),
		submission: repository.NewSubmissionRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *services {
	schemaCache := service.NewExamSchemaCache(rdb, time.Duration(cfg.Cache.ExamSchemaTTLMinutes)*time.Minute)

	return &services{
		submission: service.NewSubmissionService(repos.exam, repos.student, repos.question, repos.submission, schemaCache),
		exam:       service.NewExamService(repos.exam, repos.question, schemaCache),
		question:   service.NewQuestionService(repos.question),
		student:    service.NewStudentService(repos.student),
	}
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		submission: controller.NewSubmissionController(s.submission),
		exam:       controller.NewExamController(s.exam),
		question:   controller.NewQuestionController(s.question),
		student:    controller.NewStudentController(s.student),
		health:     controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	a.origins = security.NewOriginSet(cfg.CORS.AllowedOrigins)

	router.Use(security.CORS(a.origins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

// watchConfig applies the reloadable subset of the config on file change.
func (a *App) watchConfig() {
	go configwatcher.WatchConfig("configs/config.yaml", func(cfg *config.Config) {
		a.origins.Replace(cfg.CORS.AllowedOrigins)
		logger.Log.Info("Config reloaded",
			zap.Strings("allowedOrigins", cfg.CORS.AllowedOrigins))
	})
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
	}

	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg, rdb)
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("exam-platform", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}

	app.registerRoutes(router, controllers)

	app.watchConfig()

	return app
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		log.Printf("Server running on port %s", a.Config.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}

	log.Println("Server exiting")
}
