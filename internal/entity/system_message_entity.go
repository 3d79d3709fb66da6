package entity

import "time"

// SystemMessage holds the localized text of one result code.
type SystemMessage struct {
	MsgId          string    `gorm:"type:varchar(50);primaryKey"`
	EnglishText    string    `gorm:"type:varchar(1500);not null"`
	VietnameseText string    `gorm:"type:varchar(1500)"`
	CreatedAt      time.Time `gorm:"autoCreateTime"`
	UpdatedAt      time.Time `gorm:"autoUpdateTime"`
}

func (SystemMessage) TableName() string {
	return "system_messages"
}
