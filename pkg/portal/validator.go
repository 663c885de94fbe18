package portal

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	driver *validator.Validate
	errors map[string]any
}

func GetDefaultValidator() *Validator {
	return MakeValidatorFrom(
		validator.New(validator.WithRequiredStructEnabled()),
	)
}

func MakeValidatorFrom(abstract *validator.Validate) *Validator {
	registerCustomValidations(abstract)

	return &Validator{
		driver: abstract,
		errors: make(map[string]any),
	}
}

func (v *Validator) Passes(target any) (bool, error) {
	v.errors = make(map[string]any)

	if err := v.driver.Struct(target); err != nil {
		var validationErrors validator.ValidationErrors

		if errors.As(err, &validationErrors) {
			v.parseErrors(validationErrors)
		}

		return false, fmt.Errorf("validation failed: %w", err)
	}

	return true, nil
}

func (v *Validator) Rejects(target any) (bool, error) {
	passes, err := v.Passes(target)

	return !passes, err
}

func (v *Validator) GetErrors() map[string]any {
	return v.errors
}

func (v *Validator) GetErrorsAsJson() string {
	content, err := json.Marshal(v.errors)

	if err != nil {
		return ""
	}

	return string(content)
}

func (v *Validator) parseErrors(issues validator.ValidationErrors) {
	for _, issue := range issues {
		field := strings.ToLower(issue.Field())

		v.errors[field] = fmt.Sprintf(
			"field [%s] failed on the [%s] rule. Given value: [%v]",
			field,
			issue.Tag(),
			issue.Value(),
		)
	}
}
