// internals/features/connect/messages/model/message_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type MessageModel struct {
	MessageID        uuid.UUID  `gorm:"column:message_id;type:uuid;primaryKey" json:"message_id"`
	MessageChannelID uuid.UUID  `gorm:"column:message_channel_id;type:uuid;not null;index" json:"message_channel_id"`
	MessageSenderID  uuid.UUID  `gorm:"column:message_sender_id;type:uuid;not null;index" json:"message_sender_id"`
	MessageBody      string     `gorm:"column:message_body;type:text;not null" json:"message_body"`
	MessageCreatedAt time.Time  `gorm:"column:message_created_at;autoCreateTime;index" json:"message_created_at"`
	MessageEditedAt  *time.Time `gorm:"column:message_edited_at" json:"message_edited_at,omitempty"`
	MessageDeletedAt *time.Time `gorm:"column:message_deleted_at;index" json:"-"`
}

func (MessageModel) TableName() string {
	return "connect_messages"
}

func (m *MessageModel) BeforeCreate(tx *gorm.DB) error {
	if m.MessageID == uuid.Nil {
		m.MessageID = uuid.New()
	}
	return nil
}
