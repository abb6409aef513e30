package home

import (
	"context"

	"github.com/BruksfildServices01/home-listing/internal/dto"
	"github.com/BruksfildServices01/home-listing/internal/models"
)

// Repository lookups by id return (nil, nil) when the home does not exist.
type Repository interface {
	// -------- Queries --------
	ListHomes(
		ctx context.Context,
		filter Filter,
	) ([]models.Home, error)

	GetHomeDetail(
		ctx context.Context,
		id uint,
	) (*models.Home, error)

	GetHome(
		ctx context.Context,
		id uint,
	) (*models.Home, error)

	GetRealtorByHomeID(
		ctx context.Context,
		id uint,
	) (*models.User, error)

	// -------- Mutations --------
	CreateHomeWithImages(
		ctx context.Context,
		h *models.Home,
		imageURLs []string,
	) error

	UpdateHome(
		ctx context.Context,
		id uint,
		columns map[string]any,
	) (*models.Home, error)

	// DeleteHomeWithImages removes every image of the home before the home row.
	DeleteHomeWithImages(
		ctx context.Context,
		id uint,
	) error
}

// Cache holds rendered home details keyed by id.
type Cache interface {
	Get(ctx context.Context, id uint) (*dto.HomeDTO, bool)
	Set(ctx context.Context, id uint, h *dto.HomeDTO)
	Invalidate(ctx context.Context, id uint)
}

type NoopCache struct{}

func (NoopCache) Get(context.Context, uint) (*dto.HomeDTO, bool) { return nil, false }
func (NoopCache) Set(context.Context, uint, *dto.HomeDTO)        {}
func (NoopCache) Invalidate(context.Context, uint)               {}
