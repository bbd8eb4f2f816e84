package validator

import (
	"encoding/json"
	"fmt"
	"hotel/shared/constant"
	"hotel/shared/failure"
	"io"
	"regexp"
	"time"

	val "github.com/go-playground/validator/v10"
)

var (
	validate *val.Validate

	timeSlotPattern = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d-([01]\d|2[0-3]):[0-5]\d$`)
)

// validateDateOnly accepts YYYY-MM-DD calendar dates.
func validateDateOnly(field val.FieldLevel) bool {
	_, err := time.Parse(constant.DateOnlyFormat, field.Field().String())

	return err == nil
}

// validateTimeSlot accepts slot labels such as "09:00-10:00".
func validateTimeSlot(field val.FieldLevel) bool {
	return timeSlotPattern.MatchString(field.Field().String())
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	validations := map[string]val.Func{
		"empty": func(fl val.FieldLevel) bool {
			return fl.Field().IsZero()
		},
		"dateonly": validateDateOnly,
		"timeslot": validateTimeSlot,
	}

	for tag, fn := range validations {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}

// Validate decodes JSON from r into data and validates the result.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)

	if err := decoder.Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)
	if err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)
	if err != nil {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return nil
}
