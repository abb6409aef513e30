package home

import (
	"context"

	domain "github.com/BruksfildServices01/home-listing/internal/domain/home"
	"github.com/BruksfildServices01/home-listing/internal/dto"
	"github.com/BruksfildServices01/home-listing/internal/httperr"
)

type GetRealtor struct {
	repo domain.Repository
}

func NewGetRealtor(repo domain.Repository) *GetRealtor {
	return &GetRealtor{repo: repo}
}

func (uc *GetRealtor) Execute(
	ctx context.Context,
	homeID uint,
) (*dto.RealtorDTO, error) {

	realtor, err := uc.repo.GetRealtorByHomeID(ctx, homeID)
	if err != nil {
		return nil, httperr.TranslateConstraint(err)
	}
	if realtor == nil {
		return nil, homeNotFound(homeID)
	}

	out := dto.NewRealtorDTO(realtor)
	return &out, nil
}
