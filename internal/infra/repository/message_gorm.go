package repository

import (
	"context"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/home-listing/internal/domain/inquiry"
	"github.com/BruksfildServices01/home-listing/internal/models"
)

type MessageGormRepository struct {
	db *gorm.DB
}

func NewMessageGormRepository(db *gorm.DB) *MessageGormRepository {
	return &MessageGormRepository{db: db}
}

func (r *MessageGormRepository) CreateMessage(
	ctx context.Context,
	m *models.Message,
) error {
	return r.db.WithContext(ctx).
		Omit("Home", "Buyer", "Realtor").
		Create(m).Error
}

func (r *MessageGormRepository) ListMessagesByHome(
	ctx context.Context,
	homeID uint,
) ([]models.Message, error) {

	var msgs []models.Message
	if err := r.db.WithContext(ctx).
		Preload("Buyer").
		Where("home_id = ?", homeID).
		Order("created_at ASC, id ASC").
		Find(&msgs).Error; err != nil {
		return nil, err
	}

	return msgs, nil
}

// Compile-time check
var _ domain.Repository = (*MessageGormRepository)(nil)
