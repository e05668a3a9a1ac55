package model

import (
	"time"

	"github.com/google/uuid"
)

type ChatSettings struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex"` // at most one settings row per user
	MaxTokens int       `gorm:"not null;default:50"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (ChatSettings) TableName() string {
	return "chat_settings"
}

// ChatHistory rows are append-only. The auto-incremented primary key is the
// insertion-order sequence the history view sorts by.
type ChatHistory struct {
	Id        uint64    `gorm:"primaryKey;autoIncrement"`
	UserId    uuid.UUID `gorm:"type:uuid;not null;index"`
	Message   string    `gorm:"type:text;not null"`
	Response  string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (ChatHistory) TableName() string {
	return "chat_histories"
}
