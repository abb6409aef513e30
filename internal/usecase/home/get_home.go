package home

import (
	"context"
	"fmt"

	domain "github.com/BruksfildServices01/home-listing/internal/domain/home"
	"github.com/BruksfildServices01/home-listing/internal/dto"
	"github.com/BruksfildServices01/home-listing/internal/httperr"
)

type GetHome struct {
	repo  domain.Repository
	cache domain.Cache
}

func NewGetHome(repo domain.Repository, cache domain.Cache) *GetHome {
	return &GetHome{repo: repo, cache: cache}
}

func (uc *GetHome) Execute(
	ctx context.Context,
	id uint,
) (*dto.HomeDTO, error) {

	if cached, ok := uc.cache.Get(ctx, id); ok {
		return cached, nil
	}

	h, err := uc.repo.GetHomeDetail(ctx, id)
	if err != nil {
		return nil, httperr.TranslateConstraint(err)
	}
	if h == nil {
		return nil, homeNotFound(id)
	}

	out := dto.NewHomeDetail(h)
	uc.cache.Set(ctx, id, &out)
	return &out, nil
}

func homeNotFound(id uint) error {
	return httperr.NotFoundErr("home_not_found", fmt.Sprintf("No home with this id %d", id))
}
