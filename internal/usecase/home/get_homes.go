package home

import (
	"context"

	domain "github.com/BruksfildServices01/home-listing/internal/domain/home"
	"github.com/BruksfildServices01/home-listing/internal/dto"
	"github.com/BruksfildServices01/home-listing/internal/httperr"
)

type GetHomes struct {
	repo domain.Repository
}

func NewGetHomes(repo domain.Repository) *GetHomes {
	return &GetHomes{repo: repo}
}

// Execute returns each matching home with its first image only. An empty
// result is a not_found error.
func (uc *GetHomes) Execute(
	ctx context.Context,
	filter domain.Filter,
) ([]dto.HomeDTO, error) {

	homes, err := uc.repo.ListHomes(ctx, filter)
	if err != nil {
		return nil, httperr.TranslateConstraint(err)
	}

	if len(homes) == 0 {
		return nil, httperr.NotFoundErr("homes_not_found", "No homes match the given filters")
	}

	out := make([]dto.HomeDTO, 0, len(homes))
	for i := range homes {
		out = append(out, dto.NewHomeListItem(&homes[i]))
	}
	return out, nil
}
