package service

import (
	"context"
	"interview_readiness_backend/internal/repository"
	"math/rand"
)

const (
	lowReadinessQuote  = "Don't worry about being ready. Worry about improving 1% today."
	highReadinessQuote = "You're closer than you think—now sharpen execution and stay consistent."
	defaultQuote       = "Consistency beats intensity. Show up today."
)

type MotivationQuote struct {
	Quote            string `json:"quote"`
	Type             string `json:"type"`
	ReadinessPercent int    `json:"readinessPercent"`
}

// MotivationService 根据就绪度选择激励短句
type MotivationService struct {
	MotivationRepo *repository.MotivationRepository
	ReadinessRepo  *repository.ReadinessRepository
	pick           func(n int) int
}

func NewMotivationService(motivationRepo *repository.MotivationRepository, readinessRepo *repository.ReadinessRepository) *MotivationService {
	return &MotivationService{
		MotivationRepo: motivationRepo,
		ReadinessRepo:  readinessRepo,
		pick:           rand.Intn,
	}
}

// Quote 低于 50% 或不低于 80% 时返回固定短句，其余随机
func (s *MotivationService) Quote(ctx context.Context, ownerID string) (*MotivationQuote, error) {
	readiness, err := s.ReadinessRepo.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	percent := ReadinessPercent(readiness)

	switch {
	case percent < 50:
		return &MotivationQuote{Quote: lowReadinessQuote, Type: "context-aware", ReadinessPercent: percent}, nil
	case percent >= 80:
		return &MotivationQuote{Quote: highReadinessQuote, Type: "context-aware", ReadinessPercent: percent}, nil
	}

	quotes, err := s.MotivationRepo.GetEnabled(ctx)
	if err != nil {
		return nil, err
	}
	quote := defaultQuote
	if len(quotes) > 0 {
		quote = quotes[s.pick(len(quotes))].Content
	}
	return &MotivationQuote{Quote: quote, Type: "random", ReadinessPercent: percent}, nil
}
