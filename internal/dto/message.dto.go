package dto

import (
	"time"

	"github.com/BruksfildServices01/home-listing/internal/models"
)

type BuyerDTO struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type MessageDTO struct {
	Message string   `json:"message"`
	Buyer   BuyerDTO `json:"buyer"`
}

func NewMessageDTO(m *models.Message) MessageDTO {
	return MessageDTO{
		Message: m.Message,
		Buyer: BuyerDTO{
			Name:  m.Buyer.Name,
			Phone: m.Buyer.Phone,
			Email: m.Buyer.Email,
		},
	}
}

type InquiryDTO struct {
	ID        uint      `json:"id"`
	Message   string    `json:"message"`
	HomeID    uint      `json:"homeId"`
	BuyerID   uint      `json:"buyerId"`
	RealtorID uint      `json:"realtorId"`
	CreatedAt time.Time `json:"createdAt"`
}

func NewInquiryDTO(m *models.Message) InquiryDTO {
	return InquiryDTO{
		ID:        m.ID,
		Message:   m.Message,
		HomeID:    m.HomeID,
		BuyerID:   m.BuyerID,
		RealtorID: m.RealtorID,
		CreatedAt: m.CreatedAt,
	}
}
