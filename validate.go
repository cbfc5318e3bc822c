package travel

import (
	"fmt"
	"regexp"

	"github.com/go-playground/validator/v10"
)

// clockRE is a zero-padded 24h "HH:MM" time. Zero padding is what makes the
// lexicographic order of two times their chronological order.
var clockRE = regexp.MustCompile(`^([01][0-9]|2[0-3]):[0-5][0-9]$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	if err := v.RegisterValidation("clock", func(fl validator.FieldLevel) bool {
		return clockRE.MatchString(fl.Field().String())
	}); err != nil {
		panic(err)
	}
	return v
}

// ValidateClock checks that s is a zero-padded "HH:MM" time.
func ValidateClock(s string) error {
	if err := validate.Var(s, "clock"); err != nil {
		return fmt.Errorf("%w: time %q, want HH:MM", ErrInvalid, s)
	}
	return nil
}

// validationError turns validator errors into a single readable error.
func validationError(err error) error {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	return fmt.Errorf("%w: %s %v, failed on %q", ErrInvalid, fe.Field(), fe.Value(), fe.Tag())
}
