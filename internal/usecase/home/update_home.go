package home

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/home-listing/internal/audit"
	domain "github.com/BruksfildServices01/home-listing/internal/domain/home"
	"github.com/BruksfildServices01/home-listing/internal/dto"
	"github.com/BruksfildServices01/home-listing/internal/httperr"
)

type UpdateHome struct {
	repo  domain.Repository
	cache domain.Cache
	audit audit.Sink
}

func NewUpdateHome(
	repo domain.Repository,
	cache domain.Cache,
	audit audit.Sink,
) *UpdateHome {
	return &UpdateHome{
		repo:  repo,
		cache: cache,
		audit: audit,
	}
}

func (uc *UpdateHome) Execute(
	ctx context.Context,
	actorID uint,
	id uint,
	changes domain.Changes,
) (*dto.HomeDTO, error) {

	existing, err := uc.repo.GetHome(ctx, id)
	if err != nil {
		return nil, httperr.TranslateConstraint(err)
	}
	if existing == nil {
		return nil, homeNotFound(id)
	}

	cols := changes.Columns()

	updated, err := uc.repo.UpdateHome(ctx, id, cols)
	if err != nil {
		return nil, httperr.TranslateConstraint(err)
	}
	if updated == nil {
		return nil, homeNotFound(id)
	}

	uc.cache.Invalidate(ctx, id)

	fields := make([]string, 0, len(cols))
	for k := range cols {
		fields = append(fields, k)
	}

	logrus.WithFields(logrus.Fields{
		"home_id": id,
		"user_id": actorID,
		"fields":  fields,
	}).Info("home updated")

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorID,
		Action:   audit.ActionHomeUpdated,
		Entity:   "home",
		EntityID: &id,
		Metadata: map[string]any{"fields": fields},
	})

	out := dto.NewHomeDTO(updated)
	return &out, nil
}
