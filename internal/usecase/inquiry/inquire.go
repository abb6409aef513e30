package inquiry

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/home-listing/internal/audit"
	domain "github.com/BruksfildServices01/home-listing/internal/domain/inquiry"
	"github.com/BruksfildServices01/home-listing/internal/dto"
	"github.com/BruksfildServices01/home-listing/internal/httperr"
	"github.com/BruksfildServices01/home-listing/internal/models"
)

// RealtorResolver finds the realtor that owns a home.
type RealtorResolver interface {
	Execute(ctx context.Context, homeID uint) (*dto.RealtorDTO, error)
}

type Inquire struct {
	repo     domain.Repository
	realtors RealtorResolver
	audit    audit.Sink
}

func NewInquire(
	repo domain.Repository,
	realtors RealtorResolver,
	audit audit.Sink,
) *Inquire {
	return &Inquire{
		repo:     repo,
		realtors: realtors,
		audit:    audit,
	}
}

// Execute stores a message from the buyer to the realtor who listed the home.
func (uc *Inquire) Execute(
	ctx context.Context,
	buyerID uint,
	homeID uint,
	message string,
) (*dto.InquiryDTO, error) {

	realtor, err := uc.realtors.Execute(ctx, homeID)
	if err != nil {
		return nil, err
	}

	m := &models.Message{
		Message:   message,
		HomeID:    homeID,
		BuyerID:   buyerID,
		RealtorID: realtor.ID,
	}

	if err := uc.repo.CreateMessage(ctx, m); err != nil {
		return nil, httperr.TranslateConstraint(err)
	}

	logrus.WithFields(logrus.Fields{
		"message_id": m.ID,
		"home_id":    homeID,
		"buyer_id":   buyerID,
		"realtor_id": realtor.ID,
	}).Info("inquiry sent")

	uc.audit.Dispatch(audit.Event{
		UserID:   &buyerID,
		Action:   audit.ActionInquirySent,
		Entity:   "message",
		EntityID: &m.ID,
		Metadata: map[string]any{"home_id": homeID},
	})

	out := dto.NewInquiryDTO(m)
	return &out, nil
}
