package home

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/home-listing/internal/audit"
	domain "github.com/BruksfildServices01/home-listing/internal/domain/home"
	"github.com/BruksfildServices01/home-listing/internal/httperr"
)

type DeleteHome struct {
	repo  domain.Repository
	cache domain.Cache
	audit audit.Sink
}

func NewDeleteHome(
	repo domain.Repository,
	cache domain.Cache,
	audit audit.Sink,
) *DeleteHome {
	return &DeleteHome{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

// Execute does not check that the home exists; deleting a missing id is a
// no-op. Callers that need not_found must look the home up first.
func (uc *DeleteHome) Execute(
	ctx context.Context,
	actorID uint,
	id uint,
) error {

	if err := uc.repo.DeleteHomeWithImages(ctx, id); err != nil {
		return httperr.TranslateConstraint(err)
	}

	uc.cache.Invalidate(ctx, id)

	logrus.WithFields(logrus.Fields{
		"home_id": id,
		"user_id": actorID,
	}).Info("home deleted")

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   audit.ActionHomeDeleted,
		Entity:   "home",
		EntityID: &id,
	})

	return nil
}
