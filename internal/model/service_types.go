package model

import "time"

// ConsistencyScore 滑动窗口内的活跃天数占比
type ConsistencyScore struct {
	Score      float64 `json:"score"`
	ActiveDays int     `json:"activeDays"`
	WindowDays int     `json:"windowDays"`
}

// ActivityResult 记录一次行为后的活动与连续状态
type ActivityResult struct {
	Activity *UserActivity `json:"activity"`
	Streak   *UserStreak   `json:"streak"`
}

// DayDelta 按日聚合的置信度变化
type DayDelta struct {
	Day          string  `json:"day"`
	TotalDelta   float64 `json:"totalDelta"`
	UpdatesCount int     `json:"updatesCount"`
}

// TrendPoint 单日趋势
type TrendPoint struct {
	Date         string  `json:"date"`
	AverageDelta float64 `json:"averageDelta"`
	UpdatesCount int     `json:"updatesCount"`
}

type TrendMetrics struct {
	ImprovementRate  float64 `json:"improvementRate"`
	ConsistencyScore float64 `json:"consistencyScore"`
}

type TrendReport struct {
	Days    int          `json:"days"`
	Trends  []TrendPoint `json:"trends"`
	Metrics TrendMetrics `json:"metrics"`
}

type WeakAreas struct {
	WeakestSkills  []string `json:"weakestSkills"`
	StagnationFlag bool     `json:"stagnationFlag"`
}

// SkillWithReadiness 技能变更后的返回体
type SkillWithReadiness struct {
	Skill     *Skill          `json:"skill"`
	Readiness *ReadinessScore `json:"readiness"`
}

type SkillList struct {
	Skills    []Skill         `json:"skills"`
	Readiness *ReadinessScore `json:"readiness"`
}

type Pagination struct {
	Page               int   `json:"page"`
	Limit              int   `json:"limit"`
	TotalFilteredTasks int64 `json:"totalFilteredTasks"`
	TotalPages         int   `json:"totalPages"`
}

type TaskMetrics struct {
	TotalTasks          int64   `json:"totalTasks"`
	CompletedTasks      int64   `json:"completedTasks"`
	CompletedPercentage float64 `json:"completedPercentage"`
	OverdueTasks        int64   `json:"overdueTasks"`
}

type TaskPage struct {
	Tasks      []Task      `json:"tasks"`
	Pagination Pagination  `json:"pagination"`
	Metrics    TaskMetrics `json:"metrics"`
}

// TaskQuery 列表查询条件
type TaskQuery struct {
	Status    TaskStatus
	SortBy    string
	SortOrder string
	Page      int
	Limit     int
}

type AuthResult struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
	User      *User     `json:"user"`
}
