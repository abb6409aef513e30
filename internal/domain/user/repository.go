package user

import (
	"context"

	"github.com/BruksfildServices01/home-listing/internal/models"
)

// Repository lookups return (nil, nil) when no row matches.
type Repository interface {
	FindByEmail(
		ctx context.Context,
		email string,
	) (*models.User, error)

	FindByID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	Create(
		ctx context.Context,
		u *models.User,
	) error
}
