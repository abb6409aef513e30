package inquiry

import (
	"context"

	domain "github.com/BruksfildServices01/home-listing/internal/domain/inquiry"
	"github.com/BruksfildServices01/home-listing/internal/dto"
	"github.com/BruksfildServices01/home-listing/internal/httperr"
)

type ListMessages struct {
	repo domain.Repository
}

func NewListMessages(repo domain.Repository) *ListMessages {
	return &ListMessages{repo: repo}
}

// Execute returns an empty list for a home with no messages or no row at all.
func (uc *ListMessages) Execute(
	ctx context.Context,
	homeID uint,
) ([]dto.MessageDTO, error) {

	msgs, err := uc.repo.ListMessagesByHome(ctx, homeID)
	if err != nil {
		return nil, httperr.TranslateConstraint(err)
	}

	out := make([]dto.MessageDTO, 0, len(msgs))
	for i := range msgs {
		out = append(out, dto.NewMessageDTO(&msgs[i]))
	}
	return out, nil
}
