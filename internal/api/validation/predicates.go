package validation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var validate *validator.Validate

var plateRe = regexp.MustCompile(`^[A-Za-z]{3}[0-9][0-9A-Za-z][0-9]{2}$`)

func init() {
	validate = validator.New()

	// Register custom validators
	_ = validate.RegisterValidation("alpha_space", validateAlphaSpace)
	_ = validate.RegisterValidation("strong_password", validateStrongPassword)
	_ = validate.RegisterValidation("plate", validatePlate)
}

// validateAlphaSpace accepts letters from any script and spaces only.
func validateAlphaSpace(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) && r != ' ' {
			return false
		}
	}
	return true
}

// validateStrongPassword requires at least 6 characters with one uppercase
// letter, one lowercase letter, one digit and one symbol.
func validateStrongPassword(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	if utf8.RuneCountInString(s) < 6 {
		return false
	}

	var upper, lower, digit, symbol bool
	for _, r := range s {
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsLower(r):
			lower = true
		case unicode.IsDigit(r):
			digit = true
		case unicode.IsPunct(r), unicode.IsSymbol(r), unicode.IsSpace(r):
			symbol = true
		}
	}
	return upper && lower && digit && symbol
}

// validatePlate matches both the old (ABC1234) and Mercosul (ABC1D23) layouts.
func validatePlate(fl validator.FieldLevel) bool {
	return plateRe.MatchString(fl.Field().String())
}

// Tag checks the string form of the value against a validator tag such as
// "min=3" or "email".
func Tag(tag string) Predicate {
	return func(_ context.Context, v any) (bool, error) {
		err := validate.Var(toString(v), tag)
		if err == nil {
			return true, nil
		}
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			return false, nil
		}
		return false, err
	}
}

// Required fails for missing, null and empty values.
func Required() Predicate {
	return func(_ context.Context, v any) (bool, error) {
		return v != nil && toString(v) != "", nil
	}
}

// MaxBytes fails for strings longer than n bytes.
func MaxBytes(n int) Predicate {
	return func(_ context.Context, v any) (bool, error) {
		return len(toString(v)) <= n, nil
	}
}

// NotString fails when the value arrived as text.
func NotString() Predicate {
	return func(_ context.Context, v any) (bool, error) {
		_, isStr := v.(string)
		return !isStr, nil
	}
}

// NotNumber fails when the value arrived as a number.
func NotNumber() Predicate {
	return func(_ context.Context, v any) (bool, error) {
		switch v.(type) {
		case float64, float32, int, int64, int32, json.Number:
			return false, nil
		}
		return true, nil
	}
}

// IsBoolean accepts booleans and their usual text and 0/1 spellings.
func IsBoolean() Predicate {
	return func(_ context.Context, v any) (bool, error) {
		switch t := v.(type) {
		case bool:
			return true, nil
		case string:
			switch t {
			case "true", "false", "1", "0":
				return true, nil
			}
		case float64:
			return t == 0 || t == 1, nil
		}
		return false, nil
	}
}

func toString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case fmt.Stringer:
		return t.String()
	default:
		return strings.TrimSpace(fmt.Sprint(t))
	}
}
