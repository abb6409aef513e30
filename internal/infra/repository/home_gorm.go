package repository

import (
	"context"
	"errors"

	"gorm.io/gorm"

	domain "github.com/BruksfildServices01/home-listing/internal/domain/home"
	"github.com/BruksfildServices01/home-listing/internal/models"
)

type HomeGormRepository struct {
	db *gorm.DB
}

func NewHomeGormRepository(db *gorm.DB) *HomeGormRepository {
	return &HomeGormRepository{db: db}
}

func orderImages(db *gorm.DB) *gorm.DB {
	return db.Order("images.id ASC")
}

// firstImage keeps only the lowest-id image of each home.
func firstImage(db *gorm.DB) *gorm.DB {
	return db.Where(
		"images.id = (SELECT MIN(img0.id) FROM images AS img0 WHERE img0.home_id = images.home_id)",
	)
}

// --------------------------------------------------
// Queries
// --------------------------------------------------

func (r *HomeGormRepository) ListHomes(
	ctx context.Context,
	filter domain.Filter,
) ([]models.Home, error) {

	q := r.db.WithContext(ctx).Model(&models.Home{})

	if filter.City != "" {
		q = q.Where("city = ?", filter.City)
	}
	if filter.MinPrice != nil {
		q = q.Where("price >= ?", *filter.MinPrice)
	}
	if filter.MaxPrice != nil {
		q = q.Where("price <= ?", *filter.MaxPrice)
	}
	if filter.PropertyType != "" {
		q = q.Where("property_type = ?", filter.PropertyType)
	}

	var homes []models.Home
	if err := q.
		Preload("Images", firstImage).
		Order("id ASC").
		Find(&homes).Error; err != nil {
		return nil, err
	}

	return homes, nil
}

func (r *HomeGormRepository) GetHomeDetail(
	ctx context.Context,
	id uint,
) (*models.Home, error) {

	var h models.Home
	err := r.db.WithContext(ctx).
		Preload("Images", orderImages).
		Preload("Realtor").
		First(&h, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *HomeGormRepository) GetHome(
	ctx context.Context,
	id uint,
) (*models.Home, error) {

	var h models.Home
	err := r.db.WithContext(ctx).First(&h, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (r *HomeGormRepository) GetRealtorByHomeID(
	ctx context.Context,
	id uint,
) (*models.User, error) {

	var h models.Home
	err := r.db.WithContext(ctx).
		Select("id", "realtor_id").
		Preload("Realtor").
		First(&h, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &h.Realtor, nil
}

// --------------------------------------------------
// Mutations
// --------------------------------------------------

func (r *HomeGormRepository) CreateHomeWithImages(
	ctx context.Context,
	h *models.Home,
	imageURLs []string,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Images", "Realtor").Create(h).Error; err != nil {
			return err
		}

		if len(imageURLs) == 0 {
			return nil
		}

		images := make([]models.Image, 0, len(imageURLs))
		for _, url := range imageURLs {
			images = append(images, models.Image{URL: url, HomeID: h.ID})
		}

		if err := tx.Create(&images).Error; err != nil {
			return err
		}

		h.Images = images
		return nil
	})
}

func (r *HomeGormRepository) UpdateHome(
	ctx context.Context,
	id uint,
	columns map[string]any,
) (*models.Home, error) {

	if len(columns) > 0 {
		if err := r.db.WithContext(ctx).
			Model(&models.Home{ID: id}).
			Updates(columns).Error; err != nil {
			return nil, err
		}
	}

	return r.GetHome(ctx, id)
}

func (r *HomeGormRepository) DeleteHomeWithImages(
	ctx context.Context,
	id uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("home_id = ?", id).
			Delete(&models.Image{}).Error; err != nil {
			return err
		}

		return tx.Delete(&models.Home{}, id).Error
	})
}

// Compile-time check
var _ domain.Repository = (*HomeGormRepository)(nil)
