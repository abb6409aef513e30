package validators

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BruksfildServices01/home-listing/internal/httperr"
	"github.com/BruksfildServices01/home-listing/internal/models"
)

type imageInput struct {
	URL string `json:"url" validate:"required"`
}

type homeInput struct {
	Address      string       `json:"address" validate:"required"`
	City         string       `json:"city" validate:"required"`
	Price        float64      `json:"price" validate:"gt=0"`
	PropertyType string       `json:"propertyType" validate:"required,oneof=RESIDENTIAL CONDO"`
	Images       []imageInput `json:"images" validate:"required,dive"`
}

type signupInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Phone    string `json:"phone" validate:"required,egphone"`
}

func messagesOf(t *testing.T, err error) []string {
	t.Helper()
	require.Error(t, err)
	require.True(t, httperr.IsKind(err, httperr.KindBadInput))
	be, ok := err.(httperr.BusinessError)
	require.True(t, ok)
	return be.Messages
}

func TestStructValid(t *testing.T) {
	err := Struct(&homeInput{
		Address:      "12 Nile St",
		City:         "Cairo",
		Price:        500000,
		PropertyType: "CONDO",
		Images:       []imageInput{{URL: "a.jpg"}, {URL: "b.jpg"}},
	})
	assert.NoError(t, err)
}

func TestStructCollectsEveryViolation(t *testing.T) {
	msgs := messagesOf(t, Struct(&homeInput{
		Price:        -1,
		PropertyType: "CASTLE",
		Images:       []imageInput{{URL: "a.jpg"}, {URL: ""}},
	}))

	assert.Contains(t, msgs, "Please provide the address of home!")
	assert.Contains(t, msgs, "Please provide the city of home!")
	assert.Contains(t, msgs, "price must be a positive number")
	assert.Contains(t, msgs, "propertyType must be one of the following values: RESIDENTIAL, CONDO")
	assert.Contains(t, msgs, "images[1].url should not be empty")
	assert.Len(t, msgs, 5)
}

func TestStructSignupMessages(t *testing.T) {
	msgs := messagesOf(t, Struct(&signupInput{
		Name:     "Mona",
		Email:    "not-an-email",
		Password: "short",
		Phone:    "12345",
	}))

	assert.ElementsMatch(t, []string{
		"Please provide a valid email!",
		"Password must be at least 8 characters long!",
		"Phone number must contains 11 digits!",
	}, msgs)
}

func TestPhoneRule(t *testing.T) {
	type phoneInput struct {
		Phone string `json:"phone" validate:"egphone"`
	}

	for _, ok := range []string{"01012345678", "+201112345678", "00201512345678"} {
		assert.NoError(t, Struct(&phoneInput{Phone: ok}), ok)
	}

	for _, bad := range []string{"0101234567", "01312345678", "1012345678"} {
		assert.Equal(t,
			[]string{"Phone number must contains 11 digits!"},
			messagesOf(t, Struct(&phoneInput{Phone: bad})),
			bad,
		)
	}
}

func TestParseUserType(t *testing.T) {
	got, err := ParseUserType("buyer")
	require.NoError(t, err)
	assert.Equal(t, models.UserTypeBuyer, got)

	got, err = ParseUserType("BUYER")
	require.NoError(t, err)
	assert.Equal(t, models.UserTypeBuyer, got)

	got, err = ParseUserType("Realtor")
	require.NoError(t, err)
	assert.Equal(t, models.UserTypeRealtor, got)

	_, err = ParseUserType("ghost")
	require.Error(t, err)
	assert.True(t, httperr.IsKind(err, httperr.KindBadInput))
	assert.Contains(t, err.Error(), "ghost is an invalid type!")
}

func TestParsePropertyType(t *testing.T) {
	got, err := ParsePropertyType("condo")
	require.NoError(t, err)
	assert.Equal(t, models.PropertyTypeCondo, got)

	_, err = ParsePropertyType("castle")
	assert.True(t, httperr.IsKind(err, httperr.KindBadInput))
}

func TestEmailHelpers(t *testing.T) {
	assert.Equal(t, "mona@example.com", NormalizeEmail("  Mona@Example.COM "))
	assert.False(t, IsEmailDomainValid(context.Background(), "no-at-sign"))
	assert.False(t, IsEmailDomainValid(context.Background(), "trailing@"))
	assert.False(t, IsEmailDomainValid(context.Background(), "@leading.com"))
}
