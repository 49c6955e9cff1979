package groupbackend

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/h44z/groupbackend-portal/internal"
	"github.com/h44z/groupbackend-portal/internal/domain"
)

// Translation keys of the validation messages.
const (
	MsgFilterWrapped   = "The filter must not be wrapped in parantheses."
	MsgFilterSyntax    = "The filter is not a valid LDAP expression."
	MsgInvalidDn       = "The value is not a valid distinguished name."
	MsgRequired        = "The value is required."
	MsgUnknownOption   = "The value is not one of the available options."
	MsgNoLdapResources = "No LDAP resources available. Please configure an LDAP resource first."
)

var (
	ErrFilterWrapped = errors.New("filter must not be wrapped in parentheses")
	ErrFilterSyntax  = errors.New("filter is not a valid ldap expression")
)

// ValidateFilter checks a group or user filter. Filters are stored without their outer parentheses,
// an empty filter is valid.
func ValidateFilter(v string) error {
	if v == "" {
		return nil
	}
	if strings.HasPrefix(v, "(") {
		return ErrFilterWrapped
	}
	if err := internal.LdapCompileFilter(v); err != nil {
		return fmt.Errorf("%w: %w", ErrFilterSyntax, err)
	}
	return nil
}

var unwrappedFilter validator.Func = func(fl validator.FieldLevel) bool {
	return !errors.Is(ValidateFilter(fl.Field().String()), ErrFilterWrapped)
}

var ldapFilter validator.Func = func(fl validator.FieldLevel) bool {
	return ValidateFilter(fl.Field().String()) == nil
}

var ldapDn validator.Func = func(fl validator.FieldLevel) bool {
	return internal.LdapParseDN(fl.Field().String()) == nil
}

// tagMessages maps a failed validation tag to its translation key.
var tagMessages = map[string]string{
	"required":             MsgRequired,
	"ldapfilter_unwrapped": MsgFilterWrapped,
	"ldapfilter":           MsgFilterSyntax,
	"ldapdn":               MsgInvalidDn,
}

// NewValidator returns a validator that knows the ldap specific tags. Field names in
// validation errors are the form field names.
func NewValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("form"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	internal.AssertNoError(v.RegisterValidation("ldapfilter_unwrapped", unwrappedFilter))
	internal.AssertNoError(v.RegisterValidation("ldapfilter", ldapFilter))
	internal.AssertNoError(v.RegisterValidation("ldapdn", ldapDn))

	return v
}

// validateValues runs the struct validation and converts the result to translated field errors.
func validateValues(v *validator.Validate, loc Localizer, values FormValues) (domain.FieldErrors, error) {
	fieldErrs := domain.FieldErrors{}

	err := v.Struct(values)
	if err == nil {
		return fieldErrs, nil
	}

	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return nil, fmt.Errorf("failed to validate values: %w", err)
	}

	for _, fe := range validationErrs {
		key, ok := tagMessages[fe.Tag()]
		if !ok {
			key = fe.Error()
		}
		fieldErrs.Add(fe.Field(), loc.Sprintf(key))
	}

	return fieldErrs, nil
}
