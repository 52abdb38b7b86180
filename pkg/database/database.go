package database

import (
	_ "embed"
	"fmt"
	"interview_readiness_backend/internal/config"
	"interview_readiness_backend/internal/model"
	"log"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

//go:embed quotes.yaml
var quotesYAML []byte

// Models 返回需要自动迁移的全部模型
func Models() []interface{} {
	return []interface{}{
		&model.User{},
		&model.Skill{},
		&model.SkillHistory{},
		&model.ReadinessScore{},
		&model.UserActivity{},
		&model.UserStreak{},
		&model.PerformanceSummary{},
		&model.DailySuggestion{},
		&model.GeneratedQuestionSet{},
		&model.QuestionAttempt{},
		&model.Task{},
		&model.Motivation{},
	}
}

func dialector(cfg *config.DatabaseConfig) (gorm.Dialector, error) {
	switch cfg.Driver {
	case "mysql":
		dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=UTC",
			cfg.User,
			cfg.Password,
			cfg.Host,
			cfg.Port,
			cfg.DBName,
			cfg.Charset,
			cfg.ParseTime,
		)
		return mysql.Open(dsn), nil
	case "postgres":
		dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s TimeZone=UTC",
			cfg.Host,
			cfg.Port,
			cfg.User,
			cfg.Password,
			cfg.DBName,
			cfg.SSLMode,
		)
		return postgres.Open(dsn), nil
	case "sqlite":
		if dir := filepath.Dir(cfg.Path); dir != "." && !filepath.IsAbs(cfg.Path) {
			if _, err := os.Stat(dir); os.IsNotExist(err) {
				os.MkdirAll(dir, 0755)
			}
		}
		return sqlite.Open(cfg.Path), nil
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

// Open 建立连接但不做迁移
func Open(cfg *config.DatabaseConfig, logLevel logger.LogLevel) (*gorm.DB, error) {
	d, err := dialector(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(d, &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
		// 唯一索引冲突统一翻译为 gorm.ErrDuplicatedKey
		TranslateError: true,
		// 统一以 UTC 写入时间，按天统计依赖于此
		NowFunc: func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, err
	}

	if cfg.Driver == "sqlite" {
		sqlDB, err := db.DB()
		if err != nil {
			return nil, err
		}
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(Models()...)
}

// Seed 写入默认的激励短句
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&model.Motivation{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	var seed struct {
		Quotes []string `yaml:"quotes"`
	}
	if err := yaml.Unmarshal(quotesYAML, &seed); err != nil {
		return fmt.Errorf("parse quotes seed: %w", err)
	}

	for _, content := range seed.Quotes {
		if err := db.Create(&model.Motivation{Content: content, IsEnabled: true}).Error; err != nil {
			return err
		}
	}
	return nil
}

func InitDB(cfg *config.DatabaseConfig, logLevel logger.LogLevel) (*gorm.DB, error) {
	db, err := Open(cfg, logLevel)
	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	if err := Migrate(db); err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	if err := Seed(db); err != nil {
		return nil, err
	}

	return db, nil
}
