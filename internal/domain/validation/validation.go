// Package validation holds the validator shared by the admin save path and the HTTP layer.
package validation

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode/utf8"

	"profilecard/internal/domain/entity"
	"profilecard/internal/errors"

	"github.com/go-playground/validator/v10"
)

// UsernameMinLength is the shortest accepted username.
const UsernameMinLength = 3

var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)

// New returns a validator with the profile rules registered:
// `username` (letters, digits, hyphen, underscore; at least three characters),
// `platform` (a supported social platform) and `weekday` (a day name, any case).
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonFieldName)
	_ = v.RegisterValidation("username", validateUsername)
	_ = v.RegisterValidation("platform", validatePlatform)
	_ = v.RegisterValidation("weekday", validateWeekday)

	return v
}

// jsonFieldName reports fields by their JSON name so messages match the request body.
func jsonFieldName(fld reflect.StructField) string {
	name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
	if name == "-" {
		return ""
	}

	return name
}

// ValidUsername reports whether s is an acceptable username.
func ValidUsername(s string) bool {
	return utf8.RuneCountInString(s) >= UsernameMinLength && usernamePattern.MatchString(s)
}

func validateUsername(fl validator.FieldLevel) bool {
	return ValidUsername(fl.Field().String())
}

func validatePlatform(fl validator.FieldLevel) bool {
	_, ok := entity.ParsePlatform(fl.Field().String())

	return ok
}

func validateWeekday(fl validator.FieldLevel) bool {
	_, ok := entity.ParseWeekday(fl.Field().String())

	return ok
}

// Describe turns validator errors into short human messages, one per failed field.
// Errors of any other type are returned as their message.
func Describe(err error) []string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		out = append(out, describeField(fe))
	}

	return out
}

func describeField(fe validator.FieldError) string {
	field := fieldPath(fe)
	switch fe.Tag() {
	case "required":
		return field + " is required"
	case "username":
		return fmt.Sprintf("%s must be at least %d characters of letters, numbers, hyphens or underscores", field, UsernameMinLength)
	case "platform":
		return fmt.Sprintf("%s is not a supported platform", field)
	case "weekday":
		return field + " must be a day of the week"
	case "url":
		return field + " must be a valid URL"
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	default:
		return fmt.Sprintf("%s failed %s validation", field, fe.Tag())
	}
}

// fieldPath drops the top-level struct name from the namespace: ProfileInput.socialLinks[0].url -> socialLinks[0].url
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.IndexByte(ns, '.'); i >= 0 {
		return ns[i+1:]
	}

	return fe.Field()
}
