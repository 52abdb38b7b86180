package service

import (
	"context"
	"fmt"
	"interview_readiness_backend/internal/config"
	"interview_readiness_backend/internal/model"
	"interview_readiness_backend/internal/repository"
	"interview_readiness_backend/pkg/database"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var dbSeq int64

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	path := fmt.Sprintf("file:%s_%d?mode=memory&cache=shared", name, atomic.AddInt64(&dbSeq, 1))

	db, err := database.InitDB(&config.DatabaseConfig{Driver: "sqlite", Path: path}, gormlogger.Silent)
	if err != nil {
		t.Fatalf("init test db: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// testEnv 所有服务共享同一个可调时钟
type testEnv struct {
	db  *gorm.DB
	now time.Time

	skillRepo    *repository.SkillRepository
	historyRepo  *repository.SkillHistoryRepository
	activityRepo *repository.ActivityRepository
	questionRepo *repository.QuestionRepository
	taskRepo     *repository.TaskRepository

	readiness  *ReadinessService
	streak     *StreakService
	analytics  *AnalyticsService
	suggestion *SuggestionService
	skills     *SkillService
	tasks      *TaskService
	motivation *MotivationService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)
	env := &testEnv{db: db, now: time.Now().UTC()}
	clock := func() time.Time { return env.now }

	env.skillRepo = repository.NewSkillRepository(db)
	env.historyRepo = repository.NewSkillHistoryRepository(db)
	env.activityRepo = repository.NewActivityRepository(db)
	env.questionRepo = repository.NewQuestionRepository(db)
	env.taskRepo = repository.NewTaskRepository(db)
	readinessRepo := repository.NewReadinessRepository(db)

	env.readiness = NewReadinessService(env.skillRepo, readinessRepo)
	env.readiness.now = clock

	env.streak = NewStreakService(repository.NewStreakRepository(db), env.activityRepo)
	env.streak.now = clock

	env.analytics = NewAnalyticsService(env.skillRepo, env.historyRepo, repository.NewSummaryRepository(db))
	env.analytics.now = clock

	env.suggestion = NewSuggestionService(repository.NewSuggestionRepository(db), env.skillRepo, env.questionRepo, readinessRepo, nil)
	env.suggestion.now = clock

	env.skills = NewSkillService(env.skillRepo, env.historyRepo, env.readiness, env.streak)
	env.skills.now = clock

	env.tasks = NewTaskService(env.taskRepo, env.streak)
	env.tasks.now = clock

	env.motivation = NewMotivationService(repository.NewMotivationRepository(db), readinessRepo)
	env.motivation.pick = func(n int) int { return 0 }

	return env
}

func (e *testEnv) addSkill(t *testing.T, ownerID, name string, category model.SkillCategory, confidence int) *model.Skill {
	t.Helper()
	res, err := e.skills.Create(context.Background(), ownerID, CreateSkillInput{
		SkillName:       name,
		Category:        category,
		Level:           model.LevelIntermediate,
		ConfidenceScore: confidence,
	})
	if err != nil {
		t.Fatalf("create skill %s: %v", name, err)
	}
	return res.Skill
}

// addHistory 直接写入一条置信度变化记录
func (e *testEnv) addHistory(t *testing.T, ownerID string, at time.Time, oldC, newC int) {
	t.Helper()
	at = at.UTC()
	err := e.historyRepo.Create(context.Background(), &model.SkillHistory{
		OwnerID:       ownerID,
		SkillID:       model.GenerateUUID(),
		OldConfidence: oldC,
		NewConfidence: newC,
		ChangeDate:    at,
		ChangeDay:     at.Format("2006-01-02"),
	})
	if err != nil {
		t.Fatalf("create history: %v", err)
	}
}

func boolPtr(b bool) *bool    { return &b }
func intPtr(i int) *int       { return &i }
func strPtr(s string) *string { return &s }
func newOwner() string        { return model.GenerateUUID() }

// raceCreate 在目标类型的第一次 Create 开启事务前，先用独立会话写入 winner，模拟并发请求抢先落库
func raceCreate[T any](t *testing.T, db *gorm.DB, winner func() *T) {
	t.Helper()

	var fired atomic.Bool
	err := db.Callback().Create().Before("gorm:begin_transaction").Register("test:race_"+t.Name(), func(tx *gorm.DB) {
		if _, ok := tx.Statement.Dest.(*T); !ok || !fired.CompareAndSwap(false, true) {
			return
		}
		if err := db.Session(&gorm.Session{NewDB: true}).Create(winner()).Error; err != nil {
			t.Errorf("insert winner: %v", err)
		}
	})
	if err != nil {
		t.Fatalf("register race callback: %v", err)
	}
}
