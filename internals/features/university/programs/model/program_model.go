package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"elevencentral_backend/internals/features/university/status"
)

/* =======================================================
   programs
======================================================= */

type ProgramModel struct {
	ProgramID uuid.UUID `json:"program_id" gorm:"column:program_id;type:uuid;primaryKey"`

	ProgramTitle        string  `json:"program_title" gorm:"column:program_title;type:varchar(200);not null"`
	ProgramDescription  *string `json:"program_description,omitempty" gorm:"column:program_description;type:text"`
	ProgramThumbnailURL *string `json:"program_thumbnail_url,omitempty" gorm:"column:program_thumbnail_url;type:text"`

	ProgramStatus status.Status `json:"program_status" gorm:"column:program_status;type:varchar(20);not null;default:'draft'"`

	ProgramCreatedAt time.Time `json:"program_created_at" gorm:"column:program_created_at;not null;autoCreateTime"`
	ProgramUpdatedAt time.Time `json:"program_updated_at" gorm:"column:program_updated_at;not null;autoUpdateTime"`
}

func (ProgramModel) TableName() string { return "programs" }

func (m *ProgramModel) BeforeCreate(tx *gorm.DB) error {
	if m.ProgramID == uuid.Nil {
		m.ProgramID = uuid.New()
	}
	if m.ProgramStatus == "" {
		m.ProgramStatus = status.Draft
	}
	return nil
}
