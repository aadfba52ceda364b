// internals/features/connect/messages/dto/message_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	model "elevencentral_backend/internals/features/connect/messages/model"
)

type MessageCreateRequest struct {
	MessageChannelID uuid.UUID `json:"message_channel_id" validate:"required"`
	MessageBody      string    `json:"message_body" validate:"required,min=1,max=4000"`
}

func (r *MessageCreateRequest) Normalize() {
	r.MessageBody = strings.TrimSpace(r.MessageBody)
}

func (r *MessageCreateRequest) ToModel(senderID uuid.UUID) *model.MessageModel {
	return &model.MessageModel{
		MessageChannelID: r.MessageChannelID,
		MessageSenderID:  senderID,
		MessageBody:      r.MessageBody,
	}
}

type MessageEditRequest struct {
	MessageBody string `json:"message_body" validate:"required,min=1,max=4000"`
}

type MessageResponse struct {
	MessageID        uuid.UUID  `json:"message_id"`
	MessageChannelID uuid.UUID  `json:"message_channel_id"`
	MessageSenderID  uuid.UUID  `json:"message_sender_id"`
	MessageBody      string     `json:"message_body"`
	MessageCreatedAt time.Time  `json:"message_created_at"`
	MessageEditedAt  *time.Time `json:"message_edited_at,omitempty"`
}

func ToMessageResponse(m *model.MessageModel) MessageResponse {
	return MessageResponse{
		MessageID:        m.MessageID,
		MessageChannelID: m.MessageChannelID,
		MessageSenderID:  m.MessageSenderID,
		MessageBody:      m.MessageBody,
		MessageCreatedAt: m.MessageCreatedAt,
		MessageEditedAt:  m.MessageEditedAt,
	}
}

func ToMessageResponses(models []model.MessageModel) []MessageResponse {
	out := make([]MessageResponse, 0, len(models))
	for i := range models {
		out = append(out, ToMessageResponse(&models[i]))
	}
	return out
}
