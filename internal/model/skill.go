package model

import "time"

type SkillCategory string

const (
	CategoryTechnical  SkillCategory = "Technical"
	CategoryHR         SkillCategory = "HR"
	CategoryBehavioral SkillCategory = "Behavioral"
)

type SkillLevel string

const (
	LevelBeginner     SkillLevel = "Beginner"
	LevelIntermediate SkillLevel = "Intermediate"
	LevelAdvanced     SkillLevel = "Advanced"
)

// Skill 用户自评技能，置信度 1-5
// swagger:model Skill
type Skill struct {
	UUIDBase
	OwnerID         string        `gorm:"type:varchar(36);not null;uniqueIndex:idx_skill_owner_name" json:"ownerId"`
	SkillName       string        `gorm:"size:120;not null;uniqueIndex:idx_skill_owner_name" json:"skillName"`
	Category        SkillCategory `gorm:"type:varchar(20);not null" json:"category"`
	Level           SkillLevel    `gorm:"type:varchar(20);not null" json:"level"`
	ConfidenceScore int           `gorm:"not null" json:"confidenceScore"`
}

func (Skill) TableName() string {
	return "skills"
}

// SkillHistory 置信度变化记录，只追加
type SkillHistory struct {
	UUIDBase
	OwnerID       string    `gorm:"type:varchar(36);not null;index:idx_history_owner_day" json:"ownerId"`
	SkillID       string    `gorm:"type:varchar(36);not null;index" json:"skillId"`
	OldConfidence int       `gorm:"not null" json:"oldConfidence"`
	NewConfidence int       `gorm:"not null" json:"newConfidence"`
	ChangeDate    time.Time `gorm:"not null;index" json:"changeDate"`
	ChangeDay     string    `gorm:"type:varchar(10);not null;index:idx_history_owner_day" json:"changeDay"`
}

func (SkillHistory) TableName() string {
	return "skill_histories"
}
