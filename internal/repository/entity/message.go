package entity

import (
	"time"

	"github.com/aioseoassistant/SMSApp/internal/domain"
)

type Message struct {
	Id                int64     `gorm:"primaryKey;autoIncrement"`
	Direction         string    `gorm:"size:16;not null"`
	FromNumber        string    `gorm:"size:32"`
	ToNumber          string    `gorm:"size:32;not null"`
	Body              string    `gorm:"type:text"`
	Status            string    `gorm:"size:64;not null"`
	ProviderMessageId *string   `gorm:"size:255;index:idx_messages_provider_message_id"`
	CreatedAt         time.Time `gorm:"autoCreateTime"`
}

func (Message) TableName() string {
	return "messages"
}

func (m Message) ToDomain() domain.MessageRecord {
	return domain.MessageRecord{
		ID:                m.Id,
		Direction:         domain.Direction(m.Direction),
		FromNumber:        m.FromNumber,
		ToNumber:          m.ToNumber,
		Body:              m.Body,
		Status:            m.Status,
		ProviderMessageID: m.ProviderMessageId,
		CreatedAt:         m.CreatedAt,
	}
}

func FromDomain(r domain.MessageRecord) Message {
	return Message{
		Direction:         string(r.Direction),
		FromNumber:        r.FromNumber,
		ToNumber:          r.ToNumber,
		Body:              r.Body,
		Status:            r.Status,
		ProviderMessageId: r.ProviderMessageID,
	}
}
