package torchpay

import (
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// newValidator builds the validator used for outgoing request payloads.
func newValidator() *validator.Validate {
	validate := validator.New(validator.WithRequiredStructEnabled())

	// Monetary amounts must be strictly positive.
	if err := validate.RegisterValidation("positive_amount", func(fl validator.FieldLevel) bool {
		d, ok := fl.Field().Interface().(decimal.Decimal)
		return ok && d.IsPositive()
	}); err != nil {
		panic(err)
	}

	return validate
}

// validateRequest checks an outgoing payload before the request is built.
// Validation failures are local and always surface as a Go error, in both
// failure modes.
func (c *Client) validateRequest(req any) error {
	if req == nil {
		return &ValidationError{Errors: []string{"request must not be nil"}}
	}
	err := c.validate.Struct(req)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}
	messages := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		messages = append(messages, fmt.Sprintf("%s failed on %q", fe.Namespace(), fe.Tag()))
	}
	return &ValidationError{Errors: messages}
}
