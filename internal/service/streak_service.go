package service

import (
	"context"
	"errors"
	"fmt"
	"interview_readiness_backend/internal/model"
	"interview_readiness_backend/internal/repository"
	"interview_readiness_backend/internal/util"
	"time"
)

const (
	activityWindowDays  = 30
	activityHistorySize = 60
)

type StreakService struct {
	StreakRepo   *repository.StreakRepository
	ActivityRepo *repository.ActivityRepository
	now          func() time.Time
}

func NewStreakService(streakRepo *repository.StreakRepository, activityRepo *repository.ActivityRepository) *StreakService {
	return &StreakService{
		StreakRepo:   streakRepo,
		ActivityRepo: activityRepo,
		now:          time.Now,
	}
}

// AdvanceStreak 计算 today 的连续状态；changed 为 false 表示无需写回
// today 必须已归一化到 UTC 零点
func AdvanceStreak(prev *model.UserStreak, today time.Time) (next model.UserStreak, changed bool) {
	if prev == nil {
		last := today
		return model.UserStreak{
			CurrentStreak:   1,
			LongestStreak:   1,
			LastActiveDate:  &last,
			TotalActiveDays: 1,
		}, true
	}

	next = *prev
	if prev.LastActiveDate != nil {
		lastDay := util.NormalizeDay(*prev.LastActiveDate)
		// 同一天重复或更早的事件不改变状态
		if !today.After(lastDay) {
			return next, false
		}
		if lastDay.AddDate(0, 0, 1).Equal(today) {
			next.CurrentStreak = prev.CurrentStreak + 1
		} else {
			next.CurrentStreak = 1
		}
	} else {
		next.CurrentStreak = 1
	}

	if next.CurrentStreak > next.LongestStreak {
		next.LongestStreak = next.CurrentStreak
	}
	next.TotalActiveDays = prev.TotalActiveDays + 1
	last := today
	next.LastActiveDate = &last
	return next, true
}

// Advance 推进 owner 的连续天数
func (s *StreakService) Advance(ctx context.Context, ownerID string, eventDate time.Time) (*model.UserStreak, error) {
	today := util.NormalizeDay(eventDate)

	prev, err := s.StreakRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if prev == nil {
		next, _ := AdvanceStreak(nil, today)
		next.OwnerID = ownerID
		err := s.StreakRepo.Create(ctx, &next)
		if err == nil {
			return &next, nil
		}
		if !errors.Is(err, util.ErrConflict) {
			return nil, err
		}
		// 并发的首次活动，读取胜出的记录后继续推进
		prev, err = s.StreakRepo.FindByOwner(ctx, ownerID)
		if err != nil {
			return nil, err
		}
		if prev == nil {
			return nil, fmt.Errorf("streak for %s vanished after conflict", ownerID)
		}
	}

	next, changed := AdvanceStreak(prev, today)
	if !changed {
		return prev, nil
	}
	if err := s.StreakRepo.Save(ctx, &next); err != nil {
		return nil, err
	}
	return &next, nil
}

// RecordActivity 追加一条当天活动并推进连续天数；非法的 referenceID 置空
func (s *StreakService) RecordActivity(ctx context.Context, ownerID string, activityType model.ActivityType, referenceID string) (*model.ActivityResult, error) {
	if !activityType.Valid() {
		return nil, util.NewValidationError(fmt.Sprintf("invalid activityType %q", activityType))
	}

	now := s.now()
	activity := &model.UserActivity{
		OwnerID:      ownerID,
		ActivityType: activityType,
		ActivityDate: util.NormalizeDay(now),
		ActivityDay:  util.DayKey(now),
	}
	if referenceID != "" && util.IsUUID(referenceID) {
		ref := referenceID
		activity.ReferenceID = &ref
	}

	if err := s.ActivityRepo.Create(ctx, activity); err != nil {
		return nil, err
	}

	streak, err := s.Advance(ctx, ownerID, now)
	if err != nil {
		return nil, err
	}

	return &model.ActivityResult{Activity: activity, Streak: streak}, nil
}

// ActivityConsistency 最近 30 天（含今天）有活动的天数占比
func (s *StreakService) ActivityConsistency(ctx context.Context, ownerID string) (*model.ConsistencyScore, error) {
	today := util.NormalizeDay(s.now())
	from := today.AddDate(0, 0, -(activityWindowDays - 1))

	active, err := s.ActivityRepo.CountDistinctDays(ctx, ownerID, util.DayKey(from), util.DayKey(today))
	if err != nil {
		return nil, err
	}

	return &model.ConsistencyScore{
		Score:      consistencyPercent(int(active), activityWindowDays),
		ActiveDays: int(active),
		WindowDays: activityWindowDays,
	}, nil
}

// GetStreak 尚无记录时返回零值状态
func (s *StreakService) GetStreak(ctx context.Context, ownerID string) (*model.UserStreak, error) {
	streak, err := s.StreakRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	if streak == nil {
		return &model.UserStreak{OwnerID: ownerID}, nil
	}
	return streak, nil
}

func (s *StreakService) History(ctx context.Context, ownerID string) ([]model.UserActivity, error) {
	return s.ActivityRepo.ListRecent(ctx, ownerID, activityHistorySize)
}
