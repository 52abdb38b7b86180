package app

import (
	"context"
	"errors"
	"interview_readiness_backend/internal/config"
	"interview_readiness_backend/internal/controller"
	"interview_readiness_backend/internal/repository"
	"interview_readiness_backend/internal/service"
	"interview_readiness_backend/pkg/configwatcher"
	"interview_readiness_backend/pkg/database"
	"interview_readiness_backend/pkg/logger"
	"interview_readiness_backend/pkg/monitoring"
	"interview_readiness_backend/pkg/security"
	"interview_readiness_backend/pkg/tracing"
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
	gormlogger "gorm.io/gorm/logger"
)

type App struct {
	Config          *config.Config
	ConfigDir       string
	Router          *gin.Engine
	DB              *gorm.DB
	Redis           *redis.Client
	Services        *Services
	tracer          *sdktrace.TracerProvider
	configCallbacks []func(*config.Config)
}

type repositories struct {
	user       *repository.UserRepository
	skill      *repository.SkillRepository
	history    *repository.SkillHistoryRepository
	readiness  *repository.ReadinessRepository
	activity   *repository.ActivityRepository
	streak     *repository.StreakRepository
	summary    *repository.SummaryRepository
	suggestion *repository.SuggestionRepository
	question   *repository.QuestionRepository
	task       *repository.TaskRepository
	motivation *repository.MotivationRepository
}

// Services 对外暴露，命令行子命令直接复用
type Services struct {
	Auth       *service.AuthService
	Readiness  *service.ReadinessService
	Streak     *service.StreakService
	Skill      *service.SkillService
	Task       *service.TaskService
	Analytics  *service.AnalyticsService
	Suggestion *service.SuggestionService
	Question   *service.QuestionService
	Motivation *service.MotivationService
}

type controllers struct {
	auth       *controller.AuthController
	skill      *controller.SkillController
	task       *controller.TaskController
	question   *controller.QuestionController
	streak     *controller.StreakController
	suggestion *controller.SuggestionController
	motivation *controller.MotivationController
	analytics  *controller.AnalyticsController
	health     *controller.HealthController
}

func (a *App) RegisterConfigCallback(callback func(*config.Config)) {
	a.configCallbacks = append(a.configCallbacks, callback)
}

func initRepositories(db *gorm.DB) *repositories {
	return &repositories{
		user:       repository.NewUserRepository(db),
		skill:      repository.NewSkillRepository(db),
		history:    repository.NewSkillHistoryRepository(db),
		readiness:  repository.NewReadinessRepository(db),
		activity:   repository.NewActivityRepository(db),
		streak:     repository.NewStreakRepository(db),
		summary:    repository.NewSummaryRepository(db),
		suggestion: repository.NewSuggestionRepository(db),
		question:   repository.NewQuestionRepository(db),
		task:       repository.NewTaskRepository(db),
		motivation: repository.NewMotivationRepository(db),
	}
}

func initServices(repos *repositories, cfg *config.Config, rdb *redis.Client) *Services {
	s := &Services{}

	s.Auth = service.NewAuthService(repos.user, cfg)
	s.Readiness = service.NewReadinessService(repos.skill, repos.readiness)
	s.Streak = service.NewStreakService(repos.streak, repos.activity)
	s.Skill = service.NewSkillService(repos.skill, repos.history, s.Readiness, s.Streak)
	s.Task = service.NewTaskService(repos.task, s.Streak)
	s.Analytics = service.NewAnalyticsService(repos.skill, repos.history, repos.summary)
	s.Suggestion = service.NewSuggestionService(repos.suggestion, repos.skill, repos.question, repos.readiness, rdb)
	s.Question = service.NewQuestionService(repos.question, s.Streak, service.NewQuestionGatewayFromConfig(cfg.AI))
	s.Motivation = service.NewMotivationService(repos.motivation, repos.readiness)

	return s
}

func initControllers(s *Services, db *gorm.DB, rdb *redis.Client) *controllers {
	return &controllers{
		auth:       controller.NewAuthController(s.Auth),
		skill:      controller.NewSkillController(s.Skill),
		task:       controller.NewTaskController(s.Task),
		question:   controller.NewQuestionController(s.Question),
		streak:     controller.NewStreakController(s.Streak),
		suggestion: controller.NewSuggestionController(s.Suggestion),
		motivation: controller.NewMotivationController(s.Motivation),
		analytics:  controller.NewAnalyticsController(s.Analytics),
		health:     controller.NewHealthController(db, rdb),
	}
}

func (a *App) setupMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(security.CORS(cfg.CORS.AllowedOrigins))
	router.Use(security.Secure())
	router.Use(security.RateLimiter(cfg.RateLimit.MaxRequests, time.Duration(cfg.RateLimit.WindowMinutes)*time.Minute))

	// 分布式追踪中间件
	if cfg.Tracing.Enabled {
		router.Use(tracing.GinMiddleware())
	}

	router.Use(monitoring.MetricsMiddleware())
}

func gormLogLevel(mode string) gormlogger.LogLevel {
	if mode == "debug" {
		return gormlogger.Info
	}
	return gormlogger.Warn
}

func (a *App) buildRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())

	a.setupMiddlewares(router, a.Config)
	a.registerRoutes(router, initControllers(a.Services, a.DB, a.Redis), a.Config)
	return router
}

// Bootstrap 初始化日志、数据库与 Redis，返回尚未注册路由的 App
func Bootstrap(cfg *config.Config, configDir string) (*App, error) {
	logger.InitLogger(cfg)
	logger.Log.Info("Logger initialized successfully")

	db, err := database.InitDB(&cfg.Database, gormLogLevel(cfg.Server.Mode))
	if err != nil {
		logger.Log.Error("Failed to initialize database", zap.Error(err))
		return nil, err
	}

	rdb, err := database.InitRedis(&cfg.Redis)
	if err != nil {
		// Redis 只做缓存，连接失败时继续运行
		logger.Log.Warn("Redis unavailable, suggestion cache disabled", zap.Error(err))
		rdb = nil
	}

	app := &App{
		Config:    cfg,
		ConfigDir: configDir,
		DB:        db,
		Redis:     rdb,
	}
	app.Services = initServices(initRepositories(db), cfg, rdb)
	return app, nil
}

func NewApp(cfg *config.Config, configDir string) (*App, error) {
	app, err := Bootstrap(cfg, configDir)
	if err != nil {
		return nil, err
	}

	// 监控初始化
	monitoring.Init()

	if cfg.Tracing.Enabled {
		tp, err := tracing.InitTracer(tracing.ServiceName, cfg.Tracing.CollectorEndpoint)
		if err != nil {
			logger.Log.Error("Failed to initialize tracing", zap.Error(err))
		} else {
			app.tracer = tp
		}
	}

	gin.SetMode(cfg.Server.Mode)
	app.Router = app.buildRouter()

	// 配置变更时按新的 AI 配置替换出题网关
	app.RegisterConfigCallback(func(newCfg *config.Config) {
		app.Services.Question.SwapGateway(service.NewQuestionGatewayFromConfig(newCfg.AI))
		logger.Log.Info("Question gateway reloaded", zap.String("provider", newCfg.AI.ProviderName()))
	})

	return app, nil
}

func (a *App) watchConfig(ctx context.Context) {
	configFile := filepath.Join(a.ConfigDir, "config.yaml")
	err := configwatcher.WatchConfig(ctx, configFile, func(newCfg *config.Config) {
		for _, cb := range a.configCallbacks {
			cb(newCfg)
		}
	})
	if err != nil {
		logger.Log.Warn("Config watcher stopped", zap.Error(err))
	}
}

// Close 释放数据库、Redis 与 tracer
func (a *App) Close() {
	if a.tracer != nil {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
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
	logger.Log.Sync()
}

func (a *App) Run() error {
	srv := &http.Server{
		Addr:    ":" + a.Config.Server.Port,
		Handler: a.Router,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go a.watchConfig(ctx)

	// 启动服务器
	errCh := make(chan error, 1)
	go func() {
		logger.Log.Info("Server running", zap.String("port", a.Config.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// 等待中断信号优雅地关闭服务器（设置5秒的超时时间）
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return err
	case <-quit:
	}
	logger.Log.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}

	logger.Log.Info("Server exiting")
	return nil
}
