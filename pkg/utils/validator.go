package util

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/teambition/rrule-go"

	"Employee-Attendance-Portal/models"
)

var Validate *validator.Validate

func init() {
	Validate = validator.New()

	Validate.RegisterValidation("designation", validateDesignation)
	Validate.RegisterValidation("clock", validateClock)
	Validate.RegisterValidation("rrule", validateRRule)
}

func validateDesignation(fl validator.FieldLevel) bool {
	_, err := models.ParseDesignation(fl.Field().String())
	return err == nil
}

func validateClock(fl validator.FieldLevel) bool {
	_, err := NormalizeClock(fl.Field().String())
	return err == nil
}

func validateRRule(fl validator.FieldLevel) bool {
	_, err := rrule.StrToROption(strings.TrimSpace(fl.Field().String()))
	return err == nil
}

// ValidateStruct returns one entry per failed field, or nil when s is valid.
func ValidateStruct(s interface{}) []*models.FieldError {
	var errors []*models.FieldError
	err := Validate.Struct(s)
	if err != nil {
		verrs, ok := err.(validator.ValidationErrors)
		if !ok {
			return []*models.FieldError{{Field: "", Tag: "invalid", Message: err.Error()}}
		}
		for _, err := range verrs {
			var element models.FieldError
			element.Field = err.Field()
			element.Tag = err.Tag()

			switch err.Tag() {
			case "required":
				element.Message = fmt.Sprintf("Field '%s' is required.", element.Field)
			case "min":
				element.Message = fmt.Sprintf("Field '%s' must be at least %s characters.", element.Field, err.Param())
			case "max":
				element.Message = fmt.Sprintf("Field '%s' must be at most %s characters.", element.Field, err.Param())
			case "eqfield":
				element.Message = fmt.Sprintf("Field '%s' must match '%s'.", element.Field, err.Param())
			case "oneof":
				element.Message = fmt.Sprintf("Field '%s' must be one of: %s.", element.Field, err.Param())
			case "datetime":
				element.Message = fmt.Sprintf("Field '%s' must use the format %s.", element.Field, err.Param())
			case "designation":
				element.Message = "Designation must be one of ADMIN, HR, TRAINER, EMPLOYEE."
			case "clock":
				element.Message = fmt.Sprintf("Field '%s' must be a time of day as HH:MM or HH:MM:SS.", element.Field)
			case "ip":
				element.Message = fmt.Sprintf("'%v' is not a valid IP address.", err.Value())
			case "rrule":
				element.Message = "Recurrence must be an RFC 5545 rule such as FREQ=YEARLY."
			default:
				element.Message = fmt.Sprintf("Field '%s' failed validation on tag '%s'.", element.Field, element.Tag)
			}
			errors = append(errors, &element)
		}
	}
	return errors
}
