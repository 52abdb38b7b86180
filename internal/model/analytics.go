package model

import (
	"time"

	"gorm.io/datatypes"
)

// PerformanceSummary 分析快照，每次整体替换
// swagger:model PerformanceSummary
type PerformanceSummary struct {
	UUIDBase
	OwnerID          string                      `gorm:"type:varchar(36);not null;uniqueIndex" json:"ownerId"`
	ImprovementRate  float64                     `json:"improvementRate"`
	WeakestSkills    datatypes.JSONSlice[string] `json:"weakestSkills"`
	ConsistencyScore float64                     `json:"consistencyScore"`
	StagnationFlag   bool                        `json:"stagnationFlag"`
	LastAnalyzed     time.Time                   `json:"lastAnalyzed"`
}

func (PerformanceSummary) TableName() string {
	return "performance_summaries"
}
