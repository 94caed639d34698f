package app

import (
	"context"
	"course_backend/internal/config"
	"course_backend/internal/controller"
	"course_backend/internal/repository"
	"course_backend/internal/service"
	"course_backend/internal/util"
	"course_backend/pkg/configwatcher"
	"course_backend/pkg/database"
	"course_backend/pkg/logger"
	"course_backend/pkg/monitoring"
	"course_backend/pkg/security"
	"course_backend/pkg/tracing"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type App struct {
	Config          *config.Config
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	services        *services
	origins         *security.OriginPolicy
	limiter         *security.RateLimiter
	tracer          *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
	stopWatch       chan struct{}
}

type repositories struct {
	teacher    *repository.TeacherRepository
	user       *repository.UserRepository
	course     *repository.CourseRepository
	assignment *repository.AssignmentRepository
	quiz       *repository.QuizRepository
	submission *repository.SubmissionRepository
	cascade    *repository.CascadeRepository
	denylist   *repository.TokenDenylist
}

type services struct {
	auth       *service.AuthService
	storage    *service.StorageService
	course     *service.CourseService
	assignment *service.AssignmentService
	quiz       *service.QuizService
	submission *service.SubmissionService
}

type controllers struct {
	auth       *controller.AuthController
	course     *controller.CourseController
	assignment *controller.AssignmentController
	quiz       *controller.QuizController
	submission *controller.SubmissionController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func (a *App) initRepositories(db *gorm.DB, rdb *redis.Client, cfg *config.Config) *repositories {
	store := repository.NewStore(db, cfg.Database.QueryTimeout)
	return &repositories{
		teacher:    repository.NewTeacherRepository(store),
		user:       repository.NewUserRepository(store),
		course:     repository.NewCourseRepository(store),
		assignment: repository.NewAssignmentRepository(store),
		quiz:       repository.NewQuizRepository(store),
		submission: repository.NewSubmissionRepository(store),
		cascade:    repository.NewCascadeRepository(store),
		denylist:   repository.NewTokenDenylist(rdb),
	}
}

func (a *App) initServices(repos *repositories, cfg *config.Config) *services {
	s := &services{}

	s.storage = service.NewStorageService(cfg)
	s.auth = service.NewAuthService(repos.teacher, repos.user, repos.denylist, cfg)
	s.course = service.NewCourseService(repos.course, repos.cascade, s.storage)
	s.assignment = service.NewAssignmentService(repos.assignment, repos.course, repos.submission, repos.cascade)
	s.quiz = service.NewQuizService(repos.quiz, repos.course, repos.submission, repos.cascade)
	s.submission = service.NewSubmissionService(repos.assignment, repos.quiz, repos.submission)

	return s
}

func (a *App) initControllers(s *services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.auth),
		course:     controller.NewCourseController(s.course),
		assignment: controller.NewAssignmentController(s.assignment),
		quiz:       controller.NewQuizController(s.quiz),
		submission: controller.NewSubmissionController(s.submission),
		health:     controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	a.origins = security.NewOriginPolicy(cfg.CORS.AllowedOrigins)
	a.limiter = security.NewRateLimiter(cfg.RateLimit.MaxRequests, cfg.RateLimit.Window())
	a.limiter.StartCleanup()

	router.Use(security.CORS(a.origins))
	router.Use(security.Secure())
	router.Use(a.limiter.Middleware())

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())

	a.RegisterConfigCallback(func(newCfg *config.Config) {
		a.origins.Set(newCfg.CORS.AllowedOrigins)
		a.limiter.Update(newCfg.RateLimit.MaxRequests, newCfg.RateLimit.Window())
		logger.SetMode(newCfg.Server.Mode)
	})
}

// build 组装依赖与路由，测试直接传入数据库
func build(cfg *config.Config, db *gorm.DB, rdb *redis.Client) *App {
	app := &App{
		Config: cfg,
		DB:     db,
		Redis:  rdb,
	}

	repos := app.initRepositories(db, rdb, cfg)
	svcs := app.initServices(repos, cfg)
	app.services = svcs
	ctrls := app.initControllers(svcs, db, rdb)

	// 监控初始化
	monitoring.Init()

	gin.SetMode(cfg.Server.Mode)
	router := gin.New()
	router.Use(gin.Recovery())
	if cfg.Server.Mode == gin.DebugMode {
		router.Use(gin.Logger())
	}
	app.Router = router

	app.setupMiddlewares(router, cfg)
	app.registerRoutes(router, ctrls, svcs, cfg)

	if cfg.Storage.Type == util.StorageLocal {
		router.Static("/uploads", cfg.Storage.LocalPath)
	}

	return app
}

func NewApp(cfg *config.Config) *App {
	logger.InitLogger(cfg)
	defer logger.Log.Sync()

	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database, cfg.Server.Mode)
	if err != nil {
		logger.Log.Fatal("Failed to initialize database", zap.Error(err))
		log.Fatalf("Failed to initialize database: %v", err)
	}

	// release 模式下只有显式要求才迁移
	if cfg.Server.Mode != gin.ReleaseMode || cfg.ForceMigrate {
		if err := database.Migrate(db); err != nil {
			logger.Log.Fatal("Failed to migrate database", zap.Error(err))
		}
	}
	if cfg.MigrateOnly {
		return &App{Config: cfg, DB: db}
	}

	var rdb *redis.Client
	if cfg.Redis.Enabled() {
		rdb, err = database.InitRedis(&cfg.Redis)
		if err != nil {
			logger.Log.Fatal("Failed to initialize redis", zap.Error(err))
		}
	} else {
		logger.Log.Info("Redis disabled, token denylist is off")
	}

	app := build(cfg, db, rdb)

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer("course-backend", cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Fatal("Failed to initialize tracing", zap.Error(err))
		}
		app.tracer = tp
	}

	return app
}

// WatchConfig 配置文件变化时依次执行已注册的回调
func (a *App) WatchConfig(configDir string) {
	a.stopWatch = make(chan struct{})
	configFile := filepath.Join(configDir, "config.yaml")
	err := configwatcher.WatchConfig(configFile, func(newCfg *config.Config) {
		for _, cb := range a.configCallbacks {
			cb(newCfg)
		}
	}, a.stopWatch)
	if err != nil {
		logger.Log.Warn("Config hot reload disabled", zap.Error(err))
	}
}

func (a *App) Run() {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	// 启动服务器
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	if a.stopWatch != nil {
		close(a.stopWatch)
	}
	if a.limiter != nil {
		a.limiter.Stop()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", zap.Error(err))
	}

	if a.tracer != nil {
		if err := a.tracer.Shutdown(ctx); err != nil {
			logger.Log.Error("Failed to shutdown tracer provider", zap.Error(err))
		}
	}
	if a.Redis != nil {
		a.Redis.Close()
	}
	if sqlDB, err := a.DB.DB(); err == nil {
		sqlDB.Close()
	}

	logger.Log.Info("Server exiting")
}
