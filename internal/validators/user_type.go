package validators

import (
	"fmt"
	"strings"

	"github.com/BruksfildServices01/home-listing/internal/httperr"
	"github.com/BruksfildServices01/home-listing/internal/models"
)

var allowedUserTypes = []models.UserType{
	models.UserTypeBuyer,
	models.UserTypeRealtor,
	models.UserTypeAdmin,
}

// ParseUserType upper-cases raw and checks it against the known user types.
func ParseUserType(raw string) (models.UserType, error) {
	candidate := models.UserType(strings.ToUpper(strings.TrimSpace(raw)))

	for _, t := range allowedUserTypes {
		if t == candidate {
			return t, nil
		}
	}

	return "", httperr.BadInput("invalid_user_type", fmt.Sprintf("%s is an invalid type!", raw))
}

var allowedPropertyTypes = []models.PropertyType{
	models.PropertyTypeResidential,
	models.PropertyTypeCondo,
}

func ParsePropertyType(raw string) (models.PropertyType, error) {
	candidate := models.PropertyType(strings.ToUpper(strings.TrimSpace(raw)))

	for _, t := range allowedPropertyTypes {
		if t == candidate {
			return t, nil
		}
	}

	return "", httperr.BadInput("invalid_property_type", fmt.Sprintf("%s is an invalid property type!", raw))
}
