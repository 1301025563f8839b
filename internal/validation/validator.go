// Wayfarer - Tourism Recommendation and Itinerary Planning
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/wayfarer

package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/tomtom215/wayfarer/internal/models"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

// RequestValidationError collects every failed field of one struct.
type RequestValidationError struct {
	fields []models.FieldError
}

// Errors returns the failed fields in declaration order.
func (ve *RequestValidationError) Errors() []models.FieldError {
	return ve.fields
}

func (ve *RequestValidationError) Error() string {
	if len(ve.fields) == 0 {
		return "validation failed"
	}
	messages := make([]string, len(ve.fields))
	for i, f := range ve.fields {
		messages[i] = f.Message
	}
	return strings.Join(messages, "; ")
}

// ToModelError converts the collection to the engine's *models.ValidationError.
// The first failing field becomes Field and Message; all failures are listed
// in Fields.
func (ve *RequestValidationError) ToModelError() *models.ValidationError {
	out := &models.ValidationError{Err: ve, Message: "validation failed"}
	if len(ve.fields) == 0 {
		return out
	}
	out.Field = ve.fields[0].Field
	out.Message = ve.fields[0].Message
	out.Fields = append([]models.FieldError(nil), ve.fields...)
	return out
}

// GetValidator returns the shared validator with the vocabulary tags
// registered. Safe for concurrent use.
func GetValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())

		// Report fields by their JSON names so messages match request bodies.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})

		// Registration only fails for empty tags or nil functions.
		_ = validate.RegisterValidation("interest", func(fl validator.FieldLevel) bool {
			_, ok := models.ParseInterest(fl.Field().String())
			return ok
		})
		_ = validate.RegisterValidation("season", func(fl validator.FieldLevel) bool {
			s := models.ParseSeason(fl.Field().String())
			return s == models.SeasonAny || s.Rank() < len(models.Seasons)
		})
		_ = validate.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
			_, err := time.Parse(models.DateLayout, fl.Field().String())
			return err == nil
		})
	})
	return validate
}

// ValidateStruct validates s against its validate tags. It returns nil or a
// *RequestValidationError.
func ValidateStruct(s interface{}) *RequestValidationError {
	err := GetValidator().Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return &RequestValidationError{fields: []models.FieldError{
			{Field: "unknown", Tag: "unknown", Message: err.Error()},
		}}
	}

	out := make([]models.FieldError, len(fieldErrs))
	for i, fe := range fieldErrs {
		out[i] = models.FieldError{Field: fieldName(fe), Tag: fe.Tag(), Message: message(fe)}
	}
	return &RequestValidationError{fields: out}
}

// ValidateProfile normalizes and validates a tourist profile in place.
// It returns nil or a *models.ValidationError.
func ValidateProfile(p *models.TouristProfile) error {
	if p == nil {
		return &models.ValidationError{Field: "profile", Message: "profile is required"}
	}
	p.Normalize()
	if verr := ValidateStruct(p); verr != nil {
		return verr.ToModelError()
	}
	return nil
}

// fieldName reports dive errors as "interests[1]" rather than "[1]".
func fieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}
	return fe.Field()
}

// Messages for tags without a parameter; %s is the field name.
var fixedMessages = map[string]string{
	"required": "%s is required",
	"interest": "%s must be one of: Art, History, Architecture, Cultural, Nature",
	"season":   "%s must be one of: Any, Spring, Summer, Autumn, Winter",
	"isodate":  "%s must be a date in YYYY-MM-DD format",
	"uuid":     "%s must be a valid UUID",
}

// Messages for comparison tags; the second %s is the parameter.
var paramMessages = map[string]string{
	"oneof": "%s must be one of: %s",
	"gte":   "%s must be greater than or equal to %s",
	"lte":   "%s must be less than or equal to %s",
	"gt":    "%s must be greater than %s",
	"lt":    "%s must be less than %s",
}

func message(fe validator.FieldError) string {
	field, tag, param := fieldName(fe), fe.Tag(), fe.Param()
	if tmpl, ok := fixedMessages[tag]; ok {
		return fmt.Sprintf(tmpl, field)
	}
	if tmpl, ok := paramMessages[tag]; ok {
		return fmt.Sprintf(tmpl, field, param)
	}

	bound := map[string]string{"min": "at least", "max": "at most"}[tag]
	if bound == "" {
		return fmt.Sprintf("%s failed %s validation", field, tag)
	}
	switch fe.Kind() {
	case reflect.String:
		return fmt.Sprintf("%s must be %s %s characters", field, bound, param)
	case reflect.Slice, reflect.Array, reflect.Map:
		return fmt.Sprintf("%s must contain %s %s item(s)", field, bound, param)
	default:
		return fmt.Sprintf("%s must be %s %s", field, bound, param)
	}
}
