package employee

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldErrors maps a field key to its validation message. Empty means valid.
type FieldErrors map[string]string

// Has reports whether key has an error.
func (fe FieldErrors) Has(key string) bool {
	_, ok := fe[key]
	return ok
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report json names so errors line up with Field.Key.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the minimum-length rules of every descriptive field.
func Validate(e Employee) FieldErrors {
	errs := FieldErrors{}
	err := validate.Struct(e)
	if err == nil {
		return errs
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		// Only reachable on a programming error in the struct tags.
		errs["_"] = err.Error()
		return errs
	}
	for _, fe := range verrs {
		errs[fe.Field()] = message(fe)
	}
	return errs
}

func message(fe validator.FieldError) string {
	f, ok := FieldByKey(fe.Field())
	if !ok {
		return fmt.Sprintf("%s is invalid", fe.Field())
	}
	switch fe.Tag() {
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", sentenceCase(f.Label), fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", sentenceCase(f.Label))
	}
}

// sentenceCase turns "First Name" into "First name"; "State/Province" is kept.
func sentenceCase(label string) string {
	if strings.Contains(label, "/") {
		return label
	}
	words := strings.Fields(label)
	for i := 1; i < len(words); i++ {
		words[i] = strings.ToLower(words[i])
	}
	return strings.Join(words, " ")
}
