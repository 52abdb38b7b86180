package model

import "time"

type SuggestionType string

const (
	SuggestionSkill      SuggestionType = "Skill"
	SuggestionPractice   SuggestionType = "Practice"
	SuggestionMotivation SuggestionType = "Motivation"
)

// DailySuggestion 每个用户每个 UTC 日最多一条
// swagger:model DailySuggestion
type DailySuggestion struct {
	UUIDBase
	OwnerID        string         `gorm:"type:varchar(36);not null;uniqueIndex:idx_suggestion_owner_day" json:"ownerId"`
	Day            string         `gorm:"type:varchar(10);not null;uniqueIndex:idx_suggestion_owner_day" json:"-"`
	Date           time.Time      `gorm:"not null" json:"date"`
	SuggestionText string         `gorm:"type:text;not null" json:"suggestionText"`
	Type           SuggestionType `gorm:"type:varchar(20);not null" json:"type"`
	GeneratedFrom  string         `gorm:"size:255" json:"generatedFrom"`
}

func (DailySuggestion) TableName() string {
	return "daily_suggestions"
}
