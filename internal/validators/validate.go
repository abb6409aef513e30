package validators

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/BruksfildServices01/home-listing/internal/httperr"
)

// Egyptian mobile numbers, national or international form.
var egPhonePattern = regexp.MustCompile(`^(?:\+20|0020|0)1[0125][0-9]{8}$`)

// fieldMessages overrides the generated message for a "<field>.<tag>" pair.
var fieldMessages = map[string]string{
	"name.required":            "Please provide your name!",
	"email.required":           "Please provide a valid email!",
	"email.email":              "Please provide a valid email!",
	"password.min":             "Password must be at least 8 characters long!",
	"passwordConfirm.required": "Please provide your password confirm!",
	"phone.required":           "Phone number must contains 11 digits!",
	"phone.egphone":            "Phone number must contains 11 digits!",
	"address.required":         "Please provide the address of home!",
	"city.required":            "Please provide the city of home!",
	"message.required":         "Please, write your Message",
}

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})

		_ = v.RegisterValidation("egphone", func(fl validator.FieldLevel) bool {
			return egPhonePattern.MatchString(fl.Field().String())
		})

		validate = v
	})
	return validate
}

// Struct runs every rule declared on s and returns a bad_input error listing
// one message per violated field, or nil.
func Struct(s any) error {
	err := instance().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, messageFor(fe))
	}
	return httperr.Validation(messages)
}

func messageFor(fe validator.FieldError) string {
	if msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}

	field := fieldPath(fe)

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s should not be empty", field)
	case "gt":
		return fmt.Sprintf("%s must be a positive number", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters long", field, fe.Param())
		}
		return fmt.Sprintf("%s must not be less than %s", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of the following values: %s",
			field, strings.ReplaceAll(fe.Param(), " ", ", "))
	case "email":
		return fmt.Sprintf("%s must be an email", field)
	case "url":
		return fmt.Sprintf("%s must be a URL address", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}

// fieldPath drops the top-level struct name so nested fields read as
// "images[1].url".
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}
