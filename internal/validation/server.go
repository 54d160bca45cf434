package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/iudanet/servermanager/pkg/api"
)

var validate = newValidator()

// controlChars matches control characters except newlines and tabs
var controlChars = regexp.MustCompile(`[\x00-\x08\x0B\x0C\x0E-\x1F\x7F]`)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// В сообщениях об ошибках используем имена полей из JSON
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// SanitizeString removes control characters and surrounding whitespace
func SanitizeString(input string) string {
	return strings.TrimSpace(controlChars.ReplaceAllString(input, ""))
}

// SanitizeServerInput returns a copy of input with every text field sanitized
func SanitizeServerInput(input api.ServerInput) api.ServerInput {
	return api.ServerInput{
		IPAddress: SanitizeString(input.IPAddress),
		Name:      SanitizeString(input.Name),
		Memory:    SanitizeString(input.Memory),
		Type:      SanitizeString(input.Type),
		Status:    api.Status(strings.ToUpper(SanitizeString(string(input.Status)))),
	}
}

// ValidateServerInput проверяет данные формы создания сервера.
// Ошибки всех полей объединяются в одну.
func ValidateServerInput(input api.ServerInput) error {
	err := validate.Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("failed to validate server: %w", err)
	}

	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, fieldError(fe))
	}
	return errors.Join(errs...)
}

// ValidateIPAddress проверяет адрес для ping
func ValidateIPAddress(ipAddress string) error {
	if strings.TrimSpace(ipAddress) == "" {
		return fmt.Errorf("ip address cannot be empty")
	}
	if err := validate.Var(ipAddress, "ip"); err != nil {
		return fmt.Errorf("%q is not a valid ip address", ipAddress)
	}
	return nil
}

func fieldError(fe validator.FieldError) error {
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%s cannot be empty", fe.Field())
	case "ip":
		return fmt.Errorf("%s must be a valid ip address", fe.Field())
	case "max":
		return fmt.Errorf("%s must not exceed %s characters", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Errorf("%s must be one of: %s", fe.Field(), fe.Param())
	default:
		return fmt.Errorf("%s is invalid (%s)", fe.Field(), fe.Tag())
	}
}
