package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"elevencentral_backend/internals/features/university/status"
)

/* =======================================================
   modules
======================================================= */

type ModuleModel struct {
	ModuleID       uuid.UUID `json:"module_id" gorm:"column:module_id;type:uuid;primaryKey"`
	ModuleLessonID uuid.UUID `json:"module_lesson_id" gorm:"column:module_lesson_id;type:uuid;not null;index:idx_modules_lesson"`

	ModuleTitle   string  `json:"module_title" gorm:"column:module_title;type:varchar(200);not null"`
	ModuleContent *string `json:"module_content,omitempty" gorm:"column:module_content;type:text"`

	ModuleVideoURL  *string        `json:"module_video_url,omitempty" gorm:"column:module_video_url;type:text"`
	ModuleVideoMeta datatypes.JSON `json:"module_video_meta,omitempty" gorm:"column:module_video_meta"`

	ModuleSequenceOrder int `json:"module_sequence_order" gorm:"column:module_sequence_order;not null;default:1"`

	ModuleStatus status.Status `json:"module_status" gorm:"column:module_status;type:varchar(20);not null;default:'draft'"`

	ModuleCreatedAt time.Time `json:"module_created_at" gorm:"column:module_created_at;not null;autoCreateTime"`
	ModuleUpdatedAt time.Time `json:"module_updated_at" gorm:"column:module_updated_at;not null;autoUpdateTime"`
}

func (ModuleModel) TableName() string { return "modules" }

func (m *ModuleModel) BeforeCreate(tx *gorm.DB) error {
	if m.ModuleID == uuid.Nil {
		m.ModuleID = uuid.New()
	}
	if m.ModuleStatus == "" {
		m.ModuleStatus = status.Draft
	}
	return nil
}
