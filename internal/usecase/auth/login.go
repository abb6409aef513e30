package auth

import (
	"context"

	domain "github.com/BruksfildServices01/home-listing/internal/domain/user"
	"github.com/BruksfildServices01/home-listing/internal/dto"
	"github.com/BruksfildServices01/home-listing/internal/httperr"
	"github.com/BruksfildServices01/home-listing/internal/validators"
)

type LoginInput struct {
	Email    string
	Password string
}

type Login struct {
	repo   domain.Repository
	hasher domain.PasswordHasher
	tokens *domain.TokenIssuer
}

func NewLogin(
	repo domain.Repository,
	hasher domain.PasswordHasher,
	tokens *domain.TokenIssuer,
) *Login {
	return &Login{
		repo:   repo,
		hasher: hasher,
		tokens: tokens,
	}
}

// Execute never tells the caller whether the email or the password was wrong.
func (uc *Login) Execute(
	ctx context.Context,
	in LoginInput,
) (*dto.AuthDTO, error) {

	u, err := uc.repo.FindByEmail(ctx, validators.NormalizeEmail(in.Email))
	if err != nil {
		return nil, httperr.TranslateConstraint(err)
	}

	if u == nil || !uc.hasher.Verify(in.Password, u.PasswordHash) {
		return nil, httperr.Forbidden("invalid_credentials", "Incorrect email or password")
	}

	token, err := uc.tokens.Sign(u.Name, u.ID)
	if err != nil {
		return nil, err
	}

	return &dto.AuthDTO{
		Status: "success",
		Token:  token,
		User:   dto.NewUserDTO(u),
	}, nil
}
