package model

import "gorm.io/datatypes"

type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

func (d Difficulty) Valid() bool {
	switch d {
	case DifficultyBeginner, DifficultyIntermediate, DifficultyAdvanced:
		return true
	}
	return false
}

type QuestionType string

const (
	QuestionMCQ    QuestionType = "MCQ"
	QuestionTheory QuestionType = "Theory"
	QuestionCoding QuestionType = "Coding"
	QuestionMixed  QuestionType = "Mixed"
)

func (t QuestionType) Valid() bool {
	switch t {
	case QuestionMCQ, QuestionTheory, QuestionCoding, QuestionMixed:
		return true
	}
	return false
}

// GeneratedQuestion 归一化后的单道题目
type GeneratedQuestion struct {
	ID          string   `json:"id"`
	Question    string   `json:"question"`
	Type        string   `json:"type"`
	Options     []string `json:"options"`
	Answer      string   `json:"answer"`
	Explanation string   `json:"explanation"`
}

// GeneratedQuestionSet 一次生成调用的结果，创建后不再修改
// swagger:model GeneratedQuestionSet
type GeneratedQuestionSet struct {
	UUIDBase
	OwnerID       string                                 `gorm:"type:varchar(36);not null;index" json:"ownerId"`
	Skill         string                                 `gorm:"size:120;not null" json:"skill"`
	Difficulty    Difficulty                             `gorm:"type:varchar(20);not null" json:"difficulty"`
	Type          QuestionType                           `gorm:"type:varchar(20);not null" json:"type"`
	Provider      string                                 `gorm:"size:20" json:"provider"`
	UsedFallback  bool                                   `json:"usedFallback"`
	ProviderError string                                 `gorm:"type:text" json:"providerError,omitempty"`
	Questions     datatypes.JSONSlice[GeneratedQuestion] `json:"questions"`
}

func (GeneratedQuestionSet) TableName() string {
	return "generated_question_sets"
}

// QuestionAttempt 每个 (用户, 题目) 一条，重复作答累加次数
// swagger:model QuestionAttempt
type QuestionAttempt struct {
	UUIDBase
	OwnerID      string `gorm:"type:varchar(36);not null;uniqueIndex:idx_attempt_owner_question" json:"ownerId"`
	QuestionID   string `gorm:"size:120;not null;uniqueIndex:idx_attempt_owner_question" json:"questionId"`
	UserAnswer   string `gorm:"type:text" json:"userAnswer"`
	IsCorrect    bool   `gorm:"not null;default:false;index" json:"isCorrect"`
	AttemptCount int    `gorm:"not null;default:1" json:"attemptCount"`
}

func (QuestionAttempt) TableName() string {
	return "question_attempts"
}
