package validators

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
	"github.com/go-playground/validator/v10"
)

const minPasswordLength = 8

// DataValidator implements Validator for decoded JSON objects.
type DataValidator struct {
	validate *validator.Validate
}

func NewDataValidator() *DataValidator {
	return &DataValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

func (v *DataValidator) Validate(ctx context.Context, rules RuleSet, input map[string]any) Result {
	result := Result{Data: make(map[string]any, len(rules))}

	for _, rule := range rules {
		value, present, err := normalize(input[rule.Field])
		if err != nil {
			result.AddMessage(fmt.Sprintf("%s must be a string", rule.Field))
			continue
		}

		for _, check := range rule.checks() {
			if check == RuleRequired {
				if !present {
					result.AddMessage(fmt.Sprintf("%s is required", rule.Field))
				}
				continue
			}
			if !present {
				continue
			}

			switch check {
			case RuleIsEmail:
				value = strings.ToLower(value)
				if v.validate.Var(value, "email") != nil {
					result.AddMessage(fmt.Sprintf("%s must be a valid email", rule.Field))
				}
			case RuleIsStrongPassword:
				if !isStrongPassword(value) {
					result.AddMessage(fmt.Sprintf("%s must be at least %d characters and contain upper and lower case letters, a number and a symbol", rule.Field, minPasswordLength))
				}
			default:
				logger.FromContext(ctx).Error().Err(ErrUnknownRule).Str("field", rule.Field).Str("rule", check).Msg("validation rule is not supported")
				result.AddMessage(fmt.Sprintf("%s has unknown rule %s", rule.Field, check))
			}
		}

		if present {
			result.Data[rule.Field] = value
		}
	}

	return result
}

// normalize turns a decoded JSON value into a trimmed string. Empty strings
// and nulls are reported as absent; objects and arrays are rejected.
func normalize(raw any) (string, bool, error) {
	var s string
	switch value := raw.(type) {
	case nil:
		return "", false, nil
	case string:
		s = value
	case float64:
		s = strconv.FormatFloat(value, 'f', -1, 64)
	case int:
		s = strconv.Itoa(value)
	case int64:
		s = strconv.FormatInt(value, 10)
	case bool:
		s = strconv.FormatBool(value)
	default:
		return "", false, ErrUnsupportedType
	}

	s = strings.TrimSpace(s)
	return s, s != "", nil
}

func isStrongPassword(password string) bool {
	if len([]rune(password)) < minPasswordLength {
		return false
	}

	var hasUpper, hasLower, hasDigit, hasSymbol bool
	for _, r := range password {
		switch {
		case unicode.IsUpper(r):
			hasUpper = true
		case unicode.IsLower(r):
			hasLower = true
		case unicode.IsDigit(r):
			hasDigit = true
		case unicode.IsPunct(r) || unicode.IsSymbol(r):
			hasSymbol = true
		}
	}

	return hasUpper && hasLower && hasDigit && hasSymbol
}
