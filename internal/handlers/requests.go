package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/home-listing/internal/domain/home"
	"github.com/BruksfildServices01/home-listing/internal/httperr"
	"github.com/BruksfildServices01/home-listing/internal/models"
	"github.com/BruksfildServices01/home-listing/internal/validators"
)

// ======================================================
// REQUESTS
// ======================================================

type SignupRequest struct {
	Name            string `json:"name" validate:"required"`
	Email           string `json:"email" validate:"required,email"`
	Password        string `json:"password" validate:"required,min=8"`
	PasswordConfirm string `json:"passwordConfirm" validate:"required"`
	Phone           string `json:"phone" validate:"required,egphone"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type ImageRequest struct {
	URL string `json:"url" validate:"required"`
}

type CreateHomeRequest struct {
	Address           string         `json:"address" validate:"required"`
	City              string         `json:"city" validate:"required"`
	Price             float64        `json:"price" validate:"gt=0"`
	LandSize          float64        `json:"landSize" validate:"gt=0"`
	PropertyType      string         `json:"propertyType" validate:"required,oneof=RESIDENTIAL CONDO"`
	NumberOfBedrooms  int            `json:"numberOfBedrooms" validate:"gt=0"`
	NumberOfBathrooms float64        `json:"numberOfBathrooms" validate:"gt=0"`
	Images            []ImageRequest `json:"images" validate:"required,dive"`
}

// UpdateHomeRequest fields are all optional, but a supplied field must still
// be valid.
type UpdateHomeRequest struct {
	Address           *string  `json:"address" validate:"omitnil,required"`
	City              *string  `json:"city" validate:"omitnil,required"`
	Price             *float64 `json:"price" validate:"omitnil,gt=0"`
	LandSize          *float64 `json:"landSize" validate:"omitnil,gt=0"`
	PropertyType      *string  `json:"propertyType" validate:"omitnil,oneof=RESIDENTIAL CONDO"`
	NumberOfBedrooms  *int     `json:"numberOfBedrooms" validate:"omitnil,gt=0"`
	NumberOfBathrooms *float64 `json:"numberOfBathrooms" validate:"omitnil,gt=0"`
}

func (r UpdateHomeRequest) Changes() domain.Changes {
	ch := domain.Changes{
		Address:           r.Address,
		City:              r.City,
		Price:             r.Price,
		LandSize:          r.LandSize,
		NumberOfBedrooms:  r.NumberOfBedrooms,
		NumberOfBathrooms: r.NumberOfBathrooms,
	}
	if r.PropertyType != nil {
		pt := models.PropertyType(*r.PropertyType)
		ch.PropertyType = &pt
	}
	return ch
}

type InquireRequest struct {
	Message string `json:"message" validate:"required"`
}

// ======================================================
// HELPERS
// ======================================================

// bindJSON decodes the body into dst and runs its validation rules. On
// failure the response is already written.
func bindJSON(c *gin.Context, dst any) bool {
	if err := c.ShouldBindJSON(dst); err != nil {
		httperr.BadRequest(c, "invalid_request", "Request body is not valid JSON.")
		return false
	}

	if err := validators.Struct(dst); err != nil {
		httperr.Respond(c, err)
		return false
	}

	return true
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil || id == 0 {
		httperr.BadRequest(c, "invalid_id", "Validation failed (numeric string is expected)")
		return 0, false
	}
	return uint(id), true
}
