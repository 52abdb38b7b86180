package model

import "time"

type ActivityType string

const (
	ActivitySkillUpdate     ActivityType = "SkillUpdate"
	ActivityQuestionAttempt ActivityType = "QuestionAttempt"
	ActivityTaskComplete    ActivityType = "TaskComplete"
	ActivityAIPractice      ActivityType = "AIPractice"
)

func (t ActivityType) Valid() bool {
	switch t {
	case ActivitySkillUpdate, ActivityQuestionAttempt, ActivityTaskComplete, ActivityAIPractice:
		return true
	}
	return false
}

// UserActivity 按天归档的用户行为
// swagger:model UserActivity
type UserActivity struct {
	UUIDBase
	OwnerID      string       `gorm:"type:varchar(36);not null;index:idx_activity_owner_date" json:"ownerId"`
	ActivityType ActivityType `gorm:"type:varchar(30);not null" json:"activityType"`
	ReferenceID  *string      `gorm:"type:varchar(36)" json:"referenceId"`
	ActivityDate time.Time    `gorm:"not null;index:idx_activity_owner_date" json:"activityDate"`
	ActivityDay  string       `gorm:"type:varchar(10);not null;index" json:"activityDay"`
}

func (UserActivity) TableName() string {
	return "user_activities"
}

// UserStreak 连续打卡状态
// swagger:model UserStreak
type UserStreak struct {
	UUIDBase
	OwnerID         string     `gorm:"type:varchar(36);not null;uniqueIndex" json:"ownerId"`
	CurrentStreak   int        `gorm:"not null;default:0" json:"currentStreak"`
	LongestStreak   int        `gorm:"not null;default:0" json:"longestStreak"`
	LastActiveDate  *time.Time `json:"lastActiveDate"`
	TotalActiveDays int        `gorm:"not null;default:0" json:"totalActiveDays"`
}

func (UserStreak) TableName() string {
	return "user_streaks"
}
