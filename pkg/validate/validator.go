package validate

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var phoneRe = regexp.MustCompile(`^\d{11}$`)

func IsPhone(s string) bool {
	return phoneRe.MatchString(s)
}

var (
	once     sync.Once
	instance *validator.Validate
)

func get() *validator.Validate {
	once.Do(func() {
		instance = validator.New(validator.WithRequiredStructEnabled())
		instance.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return fld.Name
			}
			return name
		})
		_ = instance.RegisterValidation("phone11", func(fl validator.FieldLevel) bool {
			return IsPhone(fl.Field().String())
		})
		_ = instance.RegisterValidation("luhn", func(fl validator.FieldLevel) bool {
			return IsLuhn(fl.Field().String())
		})
	})
	return instance
}

// Struct validates s against its `validate` tags and returns one readable
// message per failed field, named after the field's JSON key.
func Struct(s any) []string {
	err := get().Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, message(fe))
	}
	return messages
}

func message(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "email":
		return fmt.Sprintf("%s must be a valid email", field)
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "phone11":
		return fmt.Sprintf("%s is required and must be 11 digits.", field)
	case "luhn":
		return fmt.Sprintf("%s is not a valid card number", field)
	case "len":
		return fmt.Sprintf("%s must be %s characters long", field, fe.Param())
	case "hexadecimal":
		return fmt.Sprintf("%s must be hexadecimal", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
