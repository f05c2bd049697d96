package handler

import (
	"errors"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// Validator wraps the validator instance
type Validator struct {
	validate *validator.Validate
}

// Global validator instance, built once
var (
	validate     *Validator
	validateOnce sync.Once
)

// upgradeIDPattern matches catalog upgrade ids
var upgradeIDPattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]{0,63}$`)

// InitValidator initializes the global validator. Later calls are no-ops.
func InitValidator() {
	validateOnce.Do(func() {
		v := validator.New()
		_ = v.RegisterValidation("upgrade_id", validateUpgradeID)
		validate = &Validator{validate: v}
	})
}

// GetValidator returns the global validator instance
func GetValidator() *Validator {
	InitValidator()
	return validate
}

// ValidateStruct validates a struct using tags
func (v *Validator) ValidateStruct(s interface{}) error {
	return v.validate.Struct(s)
}

// FormatValidationError formats validation errors into a field -> message map
// without leaking struct names.
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = ErrMsgInvalidRequestSummary
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "This field is required"
		case "upgrade_id":
			errs[field] = "Invalid upgrade id"
		case "min", "max":
			errs[field] = "Out of range"
		default:
			errs[field] = "Invalid value"
		}
	}

	return errs
}

func validateUpgradeID(fl validator.FieldLevel) bool {
	return upgradeIDPattern.MatchString(fl.Field().String())
}
