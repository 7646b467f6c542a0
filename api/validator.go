package api

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/Adityakk9031/FirAgent/models"
)

var registerValidatorsOnce sync.Once

// registerValidators makes binding errors name fields as the client sent them and adds the fir_id tag.
func registerValidators() {
	registerValidatorsOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			return
		}
		v.RegisterTagNameFunc(fieldNameFromTag)
		_ = v.RegisterValidation("fir_id", func(fl validator.FieldLevel) bool {
			return models.ValidateFirId(fl.Field().String())
		})
	})
}

func fieldNameFromTag(fld reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(fld.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return ""
}

// adaptBindingError turns gin binding failures into the validation errors the API renders with details.
func adaptBindingError(err error) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := models.FieldValidationError{}
		for _, fe := range validationErrors {
			fields.Add(fe.Field(), fieldErrorMessage(fe))
		}
		return fields
	}

	var typeError *json.UnmarshalTypeError
	if errors.As(err, &typeError) {
		return models.FieldValidationError{typeError.Field: fmt.Sprintf("must be a %s", typeError.Type)}
	}

	return errors.Wrap(models.BadParameterError, err.Error())
}

func fieldErrorMessage(fe validator.FieldError) string {
	switch fe.ActualTag() {
	case "required":
		return "is required"
	case "min":
		if fe.Kind() == reflect.Slice {
			return fmt.Sprintf("must have at least %s items", fe.Param())
		}
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of %s", strings.Join(strings.Split(fe.Param(), " "), ", "))
	case "uuid":
		return "should be a UUID"
	case "email":
		return "is not a valid address"
	case "url":
		return "should be a URL"
	case "latitude":
		return "must be between -90 and 90"
	case "longitude":
		return "must be between -180 and 180"
	case "fir_id":
		return "must match FIR-YYYYMMDD-NNN"
	}
	return "is invalid"
}
