package validate

import (
	"errors"
	"reflect"
	"strings"

	"github.com/5w1tchy/library-catalog/internal/api/apperr"
	"github.com/5w1tchy/library-catalog/internal/models"
	"github.com/go-playground/validator/v10"
)

var bookValidate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields by their form names, not Go names
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	return v
}

// Book checks d against the catalog rules. Rules see each field with
// surrounding whitespace trimmed; d itself is never changed, so stores persist
// exactly what was submitted. Failures come back as *apperr.ValidationError,
// one entry per violated rule.
func Book(d models.Draft) error {
	err := bookValidate.Struct(models.Draft{
		Title:  strings.TrimSpace(d.Title),
		Author: strings.TrimSpace(d.Author),
		Genre:  strings.TrimSpace(d.Genre),
		Year:   strings.TrimSpace(d.Year),
	})
	if err == nil {
		return nil
	}
	var ves validator.ValidationErrors
	if !errors.As(err, &ves) {
		return err
	}
	out := &apperr.ValidationError{Fields: make([]apperr.FieldError, 0, len(ves))}
	for _, fe := range ves {
		out.Fields = append(out.Fields, apperr.FieldError{
			Field:   fe.Field(),
			Code:    fe.Tag(),
			Message: message(fe),
		})
	}
	return out
}

func message(fe validator.FieldError) string {
	label := strings.ToUpper(fe.Field()[:1]) + fe.Field()[1:]
	switch fe.Tag() {
	case "required":
		return `Please provide a value for "` + label + `"`
	case "max":
		return label + " must be at most " + fe.Param() + " characters"
	case "numeric":
		return label + " must be a number"
	default:
		return label + " is invalid"
	}
}
