package model

import "time"

// ReadinessScore 每个用户一条，技能变化后整体重算
// swagger:model ReadinessScore
type ReadinessScore struct {
	UUIDBase
	OwnerID        string    `gorm:"type:varchar(36);not null;uniqueIndex" json:"ownerId"`
	TechnicalScore float64   `json:"technicalScore"`
	HRScore        float64   `gorm:"column:hr_score" json:"hrScore"`
	OverallScore   float64   `json:"overallScore"`
	LastUpdated    time.Time `json:"lastUpdated"`
}

func (ReadinessScore) TableName() string {
	return "readiness_scores"
}
