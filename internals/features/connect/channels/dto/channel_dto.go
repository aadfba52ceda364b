// internals/features/connect/channels/dto/channel_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "elevencentral_backend/internals/features/connect/channels/model"
)

type ChannelCreateRequest struct {
	ChannelName        string  `json:"channel_name" validate:"required,min=2,max=100"`
	ChannelDescription *string `json:"channel_description" validate:"omitempty"`
}

func (r *ChannelCreateRequest) Normalize() {
	r.ChannelName = strings.TrimSpace(r.ChannelName)
	r.ChannelDescription = trimPtr(r.ChannelDescription)
}

func (r *ChannelCreateRequest) ToModel(createdBy uuid.UUID) *model.ChannelModel {
	return &model.ChannelModel{
		ChannelName:        r.ChannelName,
		ChannelDescription: r.ChannelDescription,
		ChannelCreatedBy:   createdBy,
	}
}

type ChannelUpdateRequest struct {
	ChannelName        *string `json:"channel_name" validate:"omitempty,min=2,max=100"`
	ChannelDescription *string `json:"channel_description" validate:"omitempty"`
	ChannelIsArchived  *bool   `json:"channel_is_archived" validate:"omitempty"`
}

func (r *ChannelUpdateRequest) Normalize() {
	r.ChannelName = trimPtr(r.ChannelName)
	r.ChannelDescription = trimPtr(r.ChannelDescription)
}

func (r *ChannelUpdateRequest) Apply(m *model.ChannelModel) {
	if r.ChannelName != nil {
		m.ChannelName = *r.ChannelName
	}
	if r.ChannelDescription != nil {
		m.ChannelDescription = r.ChannelDescription
	}
	if r.ChannelIsArchived != nil {
		m.ChannelIsArchived = *r.ChannelIsArchived
	}
}

type ChannelResponse struct {
	ChannelID          uuid.UUID `json:"channel_id"`
	ChannelName        string    `json:"channel_name"`
	ChannelDescription *string   `json:"channel_description,omitempty"`
	ChannelCreatedBy   uuid.UUID `json:"channel_created_by"`
	ChannelIsArchived  bool      `json:"channel_is_archived"`
	ChannelCreatedAt   time.Time `json:"channel_created_at"`
	ChannelUpdatedAt   time.Time `json:"channel_updated_at"`
}

func ToChannelResponse(m *model.ChannelModel) ChannelResponse {
	return ChannelResponse{
		ChannelID:          m.ChannelID,
		ChannelName:        m.ChannelName,
		ChannelDescription: m.ChannelDescription,
		ChannelCreatedBy:   m.ChannelCreatedBy,
		ChannelIsArchived:  m.ChannelIsArchived,
		ChannelCreatedAt:   m.ChannelCreatedAt,
		ChannelUpdatedAt:   m.ChannelUpdatedAt,
	}
}

func ToChannelResponses(models []model.ChannelModel) []ChannelResponse {
	out := make([]ChannelResponse, 0, len(models))
	for i := range models {
		out = append(out, ToChannelResponse(&models[i]))
	}
	return out
}

func trimPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}
