package inquiry

import (
	"context"

	"github.com/BruksfildServices01/home-listing/internal/models"
)

type Repository interface {
	CreateMessage(
		ctx context.Context,
		m *models.Message,
	) error

	// ListMessagesByHome loads each message with its buyer.
	ListMessagesByHome(
		ctx context.Context,
		homeID uint,
	) ([]models.Message, error)
}
