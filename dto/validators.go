package dto

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"unicode"

	"stickynotes/model"

	"github.com/go-playground/validator/v10"
)

// RegisterValidators installs the custom rules used by the request DTOs and makes
// field errors report JSON names. Both the gin binding engine and the CLI form
// validator go through here.
func RegisterValidators(v *validator.Validate) error {
	v.RegisterTagNameFunc(jsonFieldName)

	rules := map[string]validator.Func{
		"note_category": func(fl validator.FieldLevel) bool { return model.IsCategory(fl.Field().String()) },
		"note_color":    func(fl validator.FieldLevel) bool { return model.IsColor(fl.Field().String()) },
		"password":      func(fl validator.FieldLevel) bool { return ValidatePassword(fl.Field().String()) },
		"username":      func(fl validator.FieldLevel) bool { return ValidateUsername(fl.Field().String()) },
	}
	for tag, fn := range rules {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("register %s validator: %w", tag, err)
		}
	}
	return nil
}

// NewValidator returns a validator that reads the same `binding` tags gin does.
func NewValidator() *validator.Validate {
	v := validator.New()
	v.SetTagName("binding")
	if err := RegisterValidators(v); err != nil {
		panic(err)
	}
	return v
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}
	if name == "" {
		return fld.Name
	}
	return name
}

// ValidatePassword requires at least 6 characters including a number and a
// punctuation or symbol character.
func ValidatePassword(password string) bool {
	if len(password) < 6 {
		return false
	}

	hasNumber := false
	hasSpecial := false
	for _, char := range password {
		switch {
		case unicode.IsNumber(char):
			hasNumber = true
		case unicode.IsPunct(char) || unicode.IsSymbol(char):
			hasSpecial = true
		}
	}
	return hasNumber && hasSpecial
}

// ValidateUsername allows letters, digits and @ . + - _ only.
func ValidateUsername(username string) bool {
	for _, char := range username {
		if unicode.IsLetter(char) || unicode.IsDigit(char) {
			continue
		}
		if !strings.ContainsRune("@.+-_", char) {
			return false
		}
	}
	return username != ""
}

// FieldErrors converts validator errors into a field -> messages map. Any other
// error is returned under "detail".
func FieldErrors(err error) map[string][]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return map[string][]string{"detail": {err.Error()}}
	}

	out := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = append(out[fe.Field()], FieldMessage(fe))
	}
	return out
}

func FieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field may not be blank."
	case "max":
		return fmt.Sprintf("Ensure this field has no more than %s characters.", fe.Param())
	case "min":
		return fmt.Sprintf("Ensure this field has at least %s characters.", fe.Param())
	case "note_category", "note_color":
		return fmt.Sprintf("%q is not a valid choice.", fmt.Sprint(fe.Value()))
	case "password":
		return "Password must be at least 6 characters and contain a number and a special character."
	case "username":
		return "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."
	default:
		return fmt.Sprintf("Failed on the %q rule.", fe.Tag())
	}
}
