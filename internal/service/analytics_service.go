package service

import (
	"context"
	"interview_readiness_backend/internal/model"
	"interview_readiness_backend/internal/repository"
	"interview_readiness_backend/internal/util"
	"time"

	"golang.org/x/sync/errgroup"
)

const (
	historyWindowDays    = 30
	stagnationWindowDays = 14
	weakSkillLimit       = 3
	defaultTrendDays     = 30
	maxTrendDays         = 365
)

// AnalyticsService 基于置信度变化历史计算表现指标
type AnalyticsService struct {
	SkillRepo   *repository.SkillRepository
	HistoryRepo *repository.SkillHistoryRepository
	SummaryRepo *repository.SummaryRepository
	now         func() time.Time
}

func NewAnalyticsService(
	skillRepo *repository.SkillRepository,
	historyRepo *repository.SkillHistoryRepository,
	summaryRepo *repository.SummaryRepository,
) *AnalyticsService {
	return &AnalyticsService{
		SkillRepo:   skillRepo,
		HistoryRepo: historyRepo,
		SummaryRepo: summaryRepo,
		now:         time.Now,
	}
}

// improvementRateFromDeltas 平均变化量占 5 分制的百分比
func improvementRateFromDeltas(totalDelta float64, count int64) float64 {
	if count == 0 {
		return 0
	}
	return util.Round2(totalDelta / float64(count) / maxConfidence * 100)
}

// isStagnant 窗口内没有记录，或没有任何一次提升
func isStagnant(totals repository.WindowTotals) bool {
	return totals.Total == 0 || totals.Improving == 0
}

func consistencyPercent(activeDays, windowDays int) float64 {
	if windowDays <= 0 {
		return 0
	}
	return util.Round2(float64(activeDays) / float64(windowDays) * 100)
}

func (s *AnalyticsService) ImprovementRate(ctx context.Context, ownerID string) (float64, error) {
	totals, err := s.HistoryRepo.DeltaTotals(ctx, ownerID)
	if err != nil {
		return 0, err
	}
	return improvementRateFromDeltas(totals.TotalDelta, totals.Count), nil
}

func (s *AnalyticsService) WeakSkills(ctx context.Context, ownerID string) ([]string, error) {
	return s.SkillRepo.WeakestNames(ctx, ownerID, weakSkillLimit)
}

// HistoryConsistency 最近 30 天有置信度变化的天数占比
func (s *AnalyticsService) HistoryConsistency(ctx context.Context, ownerID string) (float64, error) {
	today := util.NormalizeDay(s.now())
	from := today.AddDate(0, 0, -(historyWindowDays - 1))

	days, err := s.HistoryRepo.CountDistinctDays(ctx, ownerID, util.DayKey(from), util.DayKey(today))
	if err != nil {
		return 0, err
	}
	return consistencyPercent(int(days), historyWindowDays), nil
}

func (s *AnalyticsService) DetectStagnation(ctx context.Context, ownerID string) (bool, error) {
	since := s.now().AddDate(0, 0, -stagnationWindowDays)
	totals, err := s.HistoryRepo.WindowTotals(ctx, ownerID, since)
	if err != nil {
		return false, err
	}
	return isStagnant(totals), nil
}

// Trends 按天聚合最近 days 天的变化，没有记录的日期不输出
func (s *AnalyticsService) Trends(ctx context.Context, ownerID string, days int) ([]model.TrendPoint, error) {
	days = normalizeTrendDays(days)
	today := util.NormalizeDay(s.now())
	from := today.AddDate(0, 0, -(days - 1))

	rows, err := s.HistoryRepo.DailyDeltas(ctx, ownerID, util.DayKey(from))
	if err != nil {
		return nil, err
	}

	points := make([]model.TrendPoint, 0, len(rows))
	for _, row := range rows {
		if row.UpdatesCount == 0 {
			continue
		}
		points = append(points, model.TrendPoint{
			Date:         row.Day,
			AverageDelta: util.Round2(row.TotalDelta / float64(row.UpdatesCount)),
			UpdatesCount: row.UpdatesCount,
		})
	}
	return points, nil
}

func normalizeTrendDays(days int) int {
	if days <= 0 {
		return defaultTrendDays
	}
	return util.Clamp(days, 1, maxTrendDays)
}

// GenerateSummary 并发计算四项指标后整体覆盖快照
func (s *AnalyticsService) GenerateSummary(ctx context.Context, ownerID string) (*model.PerformanceSummary, error) {
	var (
		rate        float64
		weakest     []string
		consistency float64
		stagnant    bool
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		rate, err = s.ImprovementRate(gctx, ownerID)
		return
	})
	g.Go(func() (err error) {
		weakest, err = s.WeakSkills(gctx, ownerID)
		return
	})
	g.Go(func() (err error) {
		consistency, err = s.HistoryConsistency(gctx, ownerID)
		return
	})
	g.Go(func() (err error) {
		stagnant, err = s.DetectStagnation(gctx, ownerID)
		return
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return s.SummaryRepo.Upsert(ctx, &model.PerformanceSummary{
		OwnerID:          ownerID,
		ImprovementRate:  rate,
		WeakestSkills:    weakest,
		ConsistencyScore: consistency,
		StagnationFlag:   stagnant,
		LastAnalyzed:     s.now(),
	})
}

func (s *AnalyticsService) WeakAreas(ctx context.Context, ownerID string) (*model.WeakAreas, error) {
	areas := &model.WeakAreas{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		areas.WeakestSkills, err = s.WeakSkills(gctx, ownerID)
		return
	})
	g.Go(func() (err error) {
		areas.StagnationFlag, err = s.DetectStagnation(gctx, ownerID)
		return
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return areas, nil
}

func (s *AnalyticsService) TrendReport(ctx context.Context, ownerID string, days int) (*model.TrendReport, error) {
	report := &model.TrendReport{Days: normalizeTrendDays(days)}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		report.Trends, err = s.Trends(gctx, ownerID, report.Days)
		return
	})
	g.Go(func() (err error) {
		report.Metrics.ImprovementRate, err = s.ImprovementRate(gctx, ownerID)
		return
	})
	g.Go(func() (err error) {
		report.Metrics.ConsistencyScore, err = s.HistoryConsistency(gctx, ownerID)
		return
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return report, nil
}
