// Package apierror defines the error responses returned by the API. Every
// error carries the HTTP status it maps to, so routes can do
// c.JSON(err.Code(), err) without knowing what went wrong.
package apierror

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

type ErrorResponse interface {
	error
	Code() int
}

type response struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
}

func (r *response) Error() string { return r.Message }
func (r *response) Code() int     { return r.Status }

var (
	InternalServerError = NewSimple(http.StatusInternalServerError, "Internal server error")
	MalformedBodyError  = NewSimple(http.StatusBadRequest, "Could not understand request body")
	NotFoundError       = NewSimple(http.StatusNotFound, "Resource not found")
	BillAlreadyPaidError = NewSimple(http.StatusConflict, "The bill already has a payment")
)

func NewSimple(code int, message string) ErrorResponse {
	return &response{Status: code, Message: message}
}

func NewMissingParamError(name string) ErrorResponse {
	return NewSimple(http.StatusBadRequest, fmt.Sprintf("Missing required parameter: %s", name))
}

// NewNotFound reports that no entity of the given kind has the requested id.
func NewNotFound(kind string) ErrorResponse {
	return NewSimple(http.StatusNotFound, fmt.Sprintf("%s with given id not found", kind))
}

// FromValidationError turns a validator failure into a 400 naming the
// violated constraints.
func FromValidationError(err error) ErrorResponse {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return MalformedBodyError
	}

	violations := make([]string, len(verrs))
	for i, ve := range verrs {
		violations[i] = fmt.Sprintf("%s violates '%s'", ve.Field(), ve.Tag())
	}
	return NewSimple(http.StatusBadRequest, "Validation failed: "+strings.Join(violations, "; "))
}

// FromDomainError surfaces a domain mutator rejection with its own message.
func FromDomainError(err error) ErrorResponse {
	return NewSimple(http.StatusBadRequest, err.Error())
}
