package shared

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validatable is implemented by request types that carry their own
// validation rules beyond struct tags.
type Validatable interface {
	Validate() error
}

// DecodeJSON decodes the request body into the given value.
// Unknown fields are rejected so malformed clients fail loudly.
func DecodeJSON(r *http.Request, v interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("invalid request body: %w", err)
	}
	return nil
}

// ValidateRequest runs validation on a decoded request. Types implementing
// Validatable are asked first; otherwise struct tags are enforced.
func ValidateRequest(v interface{}) error {
	if validatable, ok := v.(Validatable); ok {
		return validatable.Validate()
	}
	return validate.Struct(v)
}

// DecodeAndValidate combines DecodeJSON and ValidateRequest.
func DecodeAndValidate(r *http.Request, v interface{}) error {
	if err := DecodeJSON(r, v); err != nil {
		return err
	}
	return ValidateRequest(v)
}
