package app

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"acadplan_backend/internal/config"
	"acadplan_backend/internal/controller"
	"acadplan_backend/internal/repository"
	"acadplan_backend/internal/service"
	"acadplan_backend/pkg/database"
	"acadplan_backend/pkg/logger"
	"acadplan_backend/pkg/monitoring"
	"acadplan_backend/pkg/security"
	"acadplan_backend/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user     *repository.UserRepository
	plan     *repository.PlanRepository
	progress *repository.ProgressRepository
	evidence *repository.EvidenceRepository
	checkin  *repository.CheckinRepository
	report   *repository.ReportRepository
}

type services struct {
	auth         *service.AuthService
	user         *service.UserService
	storage      *service.StorageService
	notification *service.NotificationService
	plan         *service.PlanService
	progress     *service.ProgressService
	evidence     *service.EvidenceService
	checkin      *service.CheckinService
	report       *service.ReportService
	export       *service.ExportService
}

type controllers struct {
	auth     *controller.AuthController
	user     *controller.UserController
	plan     *controller.PlanController
	progress *controller.ProgressController
	evidence *controller.EvidenceController
	checkin  *controller.CheckinController
	report   *controller.ReportController
	health   *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

// OnConfigReload applies a freshly loaded config and notifies subscribers.
func (a *App) OnConfigReload(cfg *config.Config) {
	a.Config = cfg
	for _, callback := range a.configCallbacks {
		callback(cfg)
	}
	logger.Log.Info("Configuration reloaded")
}

func (a *App) initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:     repository.NewUserRepository(db),
		plan:     repository.NewPlanRepository(db),
		progress: repository.NewProgressRepository(db),
		evidence: repository.NewEvidenceRepository(db),
		checkin:  repository.NewCheckinRepository(db),
		report:   repository.NewReportRepository(db),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) (*services, error) {
	storage, err := service.NewStorageService(cfg)
	if err != nil {
		return nil, err
	}

	notification := service.NewNotificationService(cfg)
	if err := notification.Init(); err != nil {
		return nil, err
	}

	s := &services{
		auth:         service.NewAuthService(repos.user, cfg),
		user:         service.NewUserService(repos.user, rdb),
		storage:      storage,
		notification: notification,
		progress:     service.NewProgressService(repos.progress),
		evidence:     service.NewEvidenceService(repos.evidence, storage),
		checkin:      service.NewCheckinService(repos.checkin),
		report:       service.NewReportService(repos.report),
		export:       service.NewExportService(),
	}
	s.plan = service.NewPlanService(repos.plan, repos.user, notification)

	return s, nil
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:     controller.NewAuthController(s.auth, s.user),
		user:     controller.NewUserController(s.user),
		plan:     controller.NewPlanController(s.plan),
		progress: controller.NewProgressController(s.progress),
		evidence: controller.NewEvidenceController(s.evidence),
		checkin:  controller.NewCheckinController(s.checkin),
		report:   controller.NewReportController(s.report, s.export, s.user),
		health:   controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())

	maxRequests := cfg.RateLimit.MaxRequests
	if maxRequests <= 0 {
		maxRequests = 1000
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

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database)
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
	services, err := app.initServices(repos, cfg, rdb)
	if err != nil {
		logger.Log.Fatal("Failed to initialize services", zap.Error(err))
	}
	app.services = services
	controllers := app.initControllers(services, db, rdb)

	monitoring.Init()

	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()
	app.Router = router

	app.setupMiddlewares(router, cfg)

	if cfg.Tracing.Enabled {
		if _, err := tracing.InitTracer("academic-planning", cfg.Tracing.CollectorEndpoint); err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
	}

	app.registerRoutes(router, controllers, cfg)

	if cfg.Storage.Type == "local" {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

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

	log.Println("Server exiting")
}
