package dto

import (
	"time"

	"github.com/BruksfildServices01/home-listing/internal/models"
)

// UserDTO never carries the password hash.
type UserDTO struct {
	ID        uint            `json:"id"`
	Name      string          `json:"name"`
	Email     string          `json:"email"`
	Phone     string          `json:"phone"`
	UserType  models.UserType `json:"userType"`
	CreatedAt time.Time       `json:"createdAt"`
}

func NewUserDTO(u *models.User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Phone:     u.Phone,
		UserType:  u.UserType,
		CreatedAt: u.CreatedAt,
	}
}

type AuthDTO struct {
	Status string  `json:"status"`
	Token  string  `json:"token"`
	User   UserDTO `json:"user"`
}
