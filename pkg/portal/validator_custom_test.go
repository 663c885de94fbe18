package portal

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

type healthSchedule struct {
	Spec string `validate:"cron"`
}

func TestCronValidation(t *testing.T) {
	v := MakeValidatorFrom(validator.New(validator.WithRequiredStructEnabled()))

	for _, spec := range []string{"0 3 * * *", "@every 5m", "*/30 * * * * *"} {
		if ok, err := v.Passes(healthSchedule{Spec: spec}); !ok || err != nil {
			t.Fatalf("expected %q to pass: %v", spec, v.GetErrors())
		}
	}

	if ok, err := v.Passes(healthSchedule{Spec: "every tuesday"}); ok || err == nil {
		t.Fatalf("expected cron validation to fail")
	}
}
