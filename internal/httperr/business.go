package httperr

import (
	"errors"
	"net/http"
)

type Kind string

const (
	KindBadInput  Kind = "bad_input"
	KindConflict  Kind = "conflict"
	KindForbidden Kind = "forbidden"
	KindNotFound  Kind = "not_found"
	KindInternal  Kind = "internal"
)

func (k Kind) Status() int {
	switch k {
	case KindBadInput:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

type BusinessError struct {
	Kind    Kind
	Code    string
	Message string

	// Messages holds one entry per violated field for validation failures.
	Messages []string
}

func (e BusinessError) Error() string {
	if e.Message != "" {
		return e.Code + ": " + e.Message
	}
	return e.Code
}

func New(kind Kind, code, message string) error {
	return BusinessError{Kind: kind, Code: code, Message: message}
}

func BadInput(code, message string) error {
	return New(KindBadInput, code, message)
}

func Conflict(code, message string) error {
	return New(KindConflict, code, message)
}

func Forbidden(code, message string) error {
	return New(KindForbidden, code, message)
}

func NotFoundErr(code, message string) error {
	return New(KindNotFound, code, message)
}

func InternalErr(code, message string) error {
	return New(KindInternal, code, message)
}

func Validation(messages []string) error {
	return BusinessError{
		Kind:     KindBadInput,
		Code:     "validation_failed",
		Message:  "request validation failed",
		Messages: messages,
	}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func IsKind(err error, kind Kind) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind == kind
	}
	return false
}
