package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sprint_edu_backend/internal/config"
	"sprint_edu_backend/internal/controller"
	"sprint_edu_backend/internal/middleware"
	"sprint_edu_backend/internal/repository"
	"sprint_edu_backend/internal/service"
	"sprint_edu_backend/pkg/database"
	"sprint_edu_backend/pkg/logger"
	"sprint_edu_backend/pkg/monitoring"
	"sprint_edu_backend/pkg/security"
	"sprint_edu_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config *config.Config
	Router *gin.Engine
	DB     *gorm.DB
}

type repositories struct {
	user       *repository.UserRepository
	sprint     *repository.SprintRepository
	lesson     *repository.LessonRepository
	category   *repository.CategoryRepository
	progress   *repository.ProgressRepository
	note       *repository.NoteRepository
	reflection *repository.ReflectionRepository
}

type services struct {
	auth       *service.AuthService
	user       *service.UserService
	sprint     *service.SprintService
	lesson     *service.LessonService
	category   *service.CategoryService
	progress   *service.ProgressService
	note       *service.NoteService
	reflection *service.ReflectionService
	storage    *service.StorageService
}

type controllers struct {
	auth       *controller.AuthController
	user       *controller.UserController
	sprint     *controller.SprintController
	lesson     *controller.LessonController
	category   *controller.CategoryController
	progress   *controller.ProgressController
	note       *controller.NoteController
	reflection *controller.ReflectionController
	media      *controller.MediaController
	health     *controller.HealthController
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		sprint:     repository.NewSprintRepository(db),
		lesson:     repository.NewLessonRepository(db),
		category:   repository.NewCategoryRepository(db),
		progress:   repository.NewProgressRepository(db),
		note:       repository.NewNoteRepository(db),
		reflection: repository.NewReflectionRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.user, cfg)
	s.user = service.NewUserService(repos.user)
	s.sprint = service.NewSprintService(repos.sprint)
	s.lesson = service.NewLessonService(repos.lesson)
	s.category = service.NewCategoryService(repos.category)
	s.progress = service.NewProgressService(repos.progress)
	s.note = service.NewNoteService(repos.note)
	s.reflection = service.NewReflectionService(repos.reflection)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth),
		user:       controller.NewUserController(s.user),
		sprint:     controller.NewSprintController(s.sprint, s.storage),
		lesson:     controller.NewLessonController(s.lesson),
		category:   controller.NewCategoryController(s.category),
		progress:   controller.NewProgressController(s.progress),
		note:       controller.NewNoteController(s.note),
		reflection: controller.NewReflectionController(s.reflection),
		media:      controller.NewMediaController(a.Config),
		health:     controller.NewHealthController(db),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS())
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 100000
	}
	window := time.Duration(cfg.RateLimit.WindowMinutes) * time.Minute
	if window <= 0 {
		window = time.Minute
	}
	router.Use(security.RateLimiter(maxRequests, window))

	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		logger.Log.Fatal("failed to initialize database", zap.Error(err))
	}

	// Release deployments migrate only when asked to; everything else
	// migrates on every boot.
	if cfg.Server.Mode != "release" || cfg.ForceMigrate {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("failed to run migrations", zap.Error(err))
		}
	}
	if cfg.MigrateOnly {
		logger.Log.Info("migrations applied, exiting")
		os.Exit(0)
	}

	app := &App{
		Config: cfg,
		DB:     db,
	}

	repos := app.initRepositories(db)
	services := app.initServices(repos, cfg)
	controllers := app.initControllers(services, db)

	monitoring.Init()

	gin.SetMode(ginMode(cfg))
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("sprint-edu-backend", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, repos, cfg)

	return app
}

func ginMode(cfg *config.Config) string {
	if cfg.Server.Mode == "release" {
		return gin.ReleaseMode
	}
	return gin.DebugMode
}

func (a *App) authMiddleware() gin.HandlerFunc {
	return middleware.AuthMiddleware(middleware.NewAuthenticator(a.Config))
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	go func() {
		logger.Log.Info("server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("server forced to shutdown:", err)
	}

	logger.Log.Info("server exiting")
	logger.Log.Sync()
}
