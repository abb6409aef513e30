package home

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/home-listing/internal/audit"
	domain "github.com/BruksfildServices01/home-listing/internal/domain/home"
	"github.com/BruksfildServices01/home-listing/internal/dto"
	"github.com/BruksfildServices01/home-listing/internal/httperr"
	"github.com/BruksfildServices01/home-listing/internal/models"
)

// ======================================================
// INPUT
// ======================================================

type CreateHomeInput struct {
	Address           string
	City              string
	Price             float64
	LandSize          float64
	PropertyType      models.PropertyType
	NumberOfBedrooms  int
	NumberOfBathrooms float64
	ImageURLs         []string
}

// ======================================================
// USE CASE
// ======================================================

type CreateHome struct {
	repo  domain.Repository
	audit audit.Sink
}

func NewCreateHome(
	repo domain.Repository,
	audit audit.Sink,
) *CreateHome {
	return &CreateHome{
		repo:  repo,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateHome) Execute(
	ctx context.Context,
	in CreateHomeInput,
	realtorID uint,
) (*dto.HomeDTO, error) {

	h := &models.Home{
		Address:           in.Address,
		City:              in.City,
		Price:             in.Price,
		LandSize:          in.LandSize,
		PropertyType:      in.PropertyType,
		NumberOfBedrooms:  in.NumberOfBedrooms,
		NumberOfBathrooms: in.NumberOfBathrooms,
		RealtorID:         realtorID,
	}

	if err := uc.repo.CreateHomeWithImages(ctx, h, in.ImageURLs); err != nil {
		return nil, httperr.TranslateConstraint(err)
	}

	logrus.WithFields(logrus.Fields{
		"home_id":    h.ID,
		"realtor_id": realtorID,
		"images":     len(in.ImageURLs),
	}).Info("home created")

	uc.audit.Dispatch(audit.Event{
		UserID:   &realtorID,
		Action:   audit.ActionHomeCreated,
		Entity:   "home",
		EntityID: &h.ID,
		Metadata: map[string]any{"city": h.City, "images": len(in.ImageURLs)},
	})

	out := dto.NewHomeDTO(h)
	out.Images = make([]dto.ImageDTO, 0, len(h.Images))
	for _, img := range h.Images {
		out.Images = append(out.Images, dto.ImageDTO{URL: img.URL})
	}
	return &out, nil
}
