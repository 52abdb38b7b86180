package model

// Motivation 激励短句
type Motivation struct {
	UUIDBase
	Content   string `gorm:"type:text;not null" json:"content"`
	IsEnabled bool   `gorm:"default:true" json:"isEnabled"`
}

func (Motivation) TableName() string {
	return "motivations"
}
