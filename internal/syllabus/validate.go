package syllabus

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ErrInvalidInput marks course parameters that must not reach the provider.
var ErrInvalidInput = errors.New("invalid course input")

// CheckInput validates the form parameters before generation and recomputes
// the remaining percentage server-side. An input whose explicit percentages
// exceed 100 is rejected; generation is never invoked for it.
func CheckInput(in *CourseInput) error {
	if err := validate.Struct(in); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if total := in.TotalAssigned(); total > 100 {
		return fmt.Errorf("%w: la suma de porcentajes (%d%%) supera el 100%%", ErrInvalidInput, total)
	}
	// Never trust the client-computed remainder.
	in.RemainingPercentage = in.Remaining()
	return nil
}
