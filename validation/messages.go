package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"jobservice/api/models"
)

// Describe turns a validator error into a single readable reason. Only the first
// failing field is reported.
func Describe(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err.Error()
	}
	return describeField(fieldErrs[0])
}

func describeField(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%q is required", field)
	case "oneof":
		return fmt.Sprintf("%q must be one of [%s]", field, strings.Join(strings.Fields(fe.Param()), ", "))
	case "gte":
		return fmt.Sprintf("%q must be greater than or equal to %s", field, fe.Param())
	case "email":
		return fmt.Sprintf("%q must be a valid email", field)
	case "uuid4":
		return fmt.Sprintf("%q must be a valid GUID", field)
	default:
		return fmt.Sprintf("%q failed on the '%s' rule", field, fe.Tag())
	}
}

// CheckJob verifies that a fully formed job satisfies the create constraints.
// It guards records that bypass the request schemas, such as startup fixtures.
func CheckJob(job models.Job) error {
	if err := validate.Struct(job); err != nil {
		return errors.New(Describe(err))
	}
	return nil
}
