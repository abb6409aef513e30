package auth

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/BruksfildServices01/home-listing/internal/audit"
	domain "github.com/BruksfildServices01/home-listing/internal/domain/user"
	"github.com/BruksfildServices01/home-listing/internal/dto"
	"github.com/BruksfildServices01/home-listing/internal/httperr"
	"github.com/BruksfildServices01/home-listing/internal/models"
	"github.com/BruksfildServices01/home-listing/internal/validators"
)

// ======================================================
// INPUT
// ======================================================

type SignupInput struct {
	Name            string
	Email           string
	Phone           string
	Password        string
	PasswordConfirm string
}

// EmailDomainCheck reports whether an address can receive mail.
type EmailDomainCheck func(ctx context.Context, email string) bool

// ======================================================
// USE CASE
// ======================================================

type Signup struct {
	repo        domain.Repository
	hasher      domain.PasswordHasher
	tokens      *domain.TokenIssuer
	audit       audit.Sink
	checkDomain EmailDomainCheck
}

func NewSignup(
	repo domain.Repository,
	hasher domain.PasswordHasher,
	tokens *domain.TokenIssuer,
	audit audit.Sink,
	checkDomain EmailDomainCheck,
) *Signup {
	return &Signup{
		repo:        repo,
		hasher:      hasher,
		tokens:      tokens,
		audit:       audit,
		checkDomain: checkDomain,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *Signup) Execute(
	ctx context.Context,
	in SignupInput,
	userType models.UserType,
) (*dto.AuthDTO, error) {

	email := validators.NormalizeEmail(in.Email)

	found, err := uc.repo.FindByEmail(ctx, email)
	if err != nil {
		return nil, httperr.TranslateConstraint(err)
	}
	if found != nil {
		return nil, httperr.Conflict("email_taken", "Email already used!")
	}

	if in.Password != in.PasswordConfirm {
		return nil, httperr.BadInput("password_mismatch", "Passwords does not match!")
	}

	if uc.checkDomain != nil && !uc.checkDomain(ctx, email) {
		return nil, httperr.BadInput("invalid_email_domain", "The email domain does not look valid.")
	}

	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	u := &models.User{
		Name:         in.Name,
		Email:        email,
		Phone:        in.Phone,
		PasswordHash: hash,
		UserType:     userType,
	}

	if err := uc.repo.Create(ctx, u); err != nil {
		return nil, httperr.TranslateConstraint(err)
	}

	token, err := uc.tokens.Sign(u.Name, u.ID)
	if err != nil {
		return nil, err
	}

	logrus.WithFields(logrus.Fields{
		"user_id":   u.ID,
		"user_type": u.UserType,
	}).Info("user signed up")

	uc.audit.Dispatch(audit.Event{
		UserID:   &u.ID,
		Action:   audit.ActionUserSignedUp,
		Entity:   "user",
		EntityID: &u.ID,
		Metadata: map[string]any{"user_type": u.UserType},
	})

	return &dto.AuthDTO{
		Status: "success",
		Token:  token,
		User:   dto.NewUserDTO(u),
	}, nil
}
