package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TokenBlacklist holds access tokens invalidated by logout until they
// would have expired anyway.
type TokenBlacklist struct {
	TokenBlacklistID uuid.UUID `json:"token_blacklist_id" gorm:"column:token_blacklist_id;type:uuid;primaryKey"`

	Token     string    `json:"token" gorm:"column:token;type:text;not null;index:idx_token_blacklist_token"`
	ExpiredAt time.Time `json:"expired_at" gorm:"column:expired_at;not null"`

	CreatedAt time.Time      `json:"created_at" gorm:"column:created_at;not null;autoCreateTime"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"column:deleted_at;index"`
}

func (TokenBlacklist) TableName() string { return "token_blacklist" }

func (m *TokenBlacklist) BeforeCreate(tx *gorm.DB) error {
	if m.TokenBlacklistID == uuid.Nil {
		m.TokenBlacklistID = uuid.New()
	}
	return nil
}
