// internals/features/connect/channels/model/channel_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChannelModel struct {
	ChannelID          uuid.UUID `gorm:"column:channel_id;type:uuid;primaryKey" json:"channel_id"`
	ChannelName        string    `gorm:"column:channel_name;type:varchar(100);not null;uniqueIndex" json:"channel_name"`
	ChannelDescription *string   `gorm:"column:channel_description;type:text" json:"channel_description,omitempty"`
	ChannelCreatedBy   uuid.UUID `gorm:"column:channel_created_by;type:uuid;not null" json:"channel_created_by"`
	ChannelIsArchived  bool      `gorm:"column:channel_is_archived;not null;default:false" json:"channel_is_archived"`
	ChannelCreatedAt   time.Time `gorm:"column:channel_created_at;autoCreateTime" json:"channel_created_at"`
	ChannelUpdatedAt   time.Time `gorm:"column:channel_updated_at;autoUpdateTime" json:"channel_updated_at"`
}

func (ChannelModel) TableName() string {
	return "connect_channels"
}

func (m *ChannelModel) BeforeCreate(tx *gorm.DB) error {
	if m.ChannelID == uuid.Nil {
		m.ChannelID = uuid.New()
	}
	return nil
}
