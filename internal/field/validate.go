package field

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/OogleOG/MEUI/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	fieldKeyPattern = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)
)

// validatorInstance configures and returns the shared validator used for
// field descriptors.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("field_key", func(fl validator.FieldLevel) bool {
			return fieldKeyPattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// validateDescriptor checks a single field descriptor before registration.
// Descriptor problems are programmer errors and fail fast.
func validateDescriptor(f Field) error {
	if err := validatorInstance().Struct(f); err != nil {
		return convertValidationError(f, err)
	}

	// Cross-field checks the tag grammar cannot express.
	if combo, ok := f.(Combo); ok {
		if combo.Default >= len(combo.Options) {
			msg := fmt.Sprintf("default index %d out of range for %d options", combo.Default, len(combo.Options))
			return errors.NewValidationError(combo.Key+".default", msg, nil)
		}
	}

	return nil
}

// convertValidationError normalizes validator errors into MEUI validation errors.
func convertValidationError(f Field, err error) error {
	if ves, ok := err.(validator.ValidationErrors); ok && len(ves) > 0 {
		ve := ves[0]
		name := descriptorName(f)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", ve.Field(), ve.Tag())
		return errors.NewValidationError(name, msg, err)
	}
	return errors.NewValidationError(descriptorName(f), err.Error(), err)
}

func descriptorName(f Field) string {
	if keyed, ok := f.(Keyed); ok && keyed.FieldKey() != "" {
		return keyed.FieldKey()
	}
	return fmt.Sprintf("%T", f)
}
