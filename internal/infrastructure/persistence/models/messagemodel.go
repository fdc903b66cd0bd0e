package models

import (
	"time"

	"github.com/parley-chat/parley/internal/shared/constants"
)

type MessageModel struct {
	ID         uint      `gorm:"primarykey"`
	SenderID   uint      `gorm:"not null;index:idx_messages_pair,priority:1"`
	ReceiverID uint      `gorm:"not null;index:idx_messages_pair,priority:2"`
	Content    *string   `gorm:"type:text"`
	ImageURL   *string   `gorm:"size:500"`
	ImageID    *string   `gorm:"size:255"`
	CreatedAt  time.Time `gorm:"index:idx_messages_created_at"`
	UpdatedAt  time.Time
}

func (MessageModel) TableName() string {
	return constants.TableMessages
}
