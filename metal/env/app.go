package env

// Stage is where the site runs. Local and staging serve CORS for the dev
// renderer and skip rate limits on loopback; production does neither.
type Stage string

const (
	StageLocal      Stage = "local"
	StageStaging    Stage = "staging"
	StageProduction Stage = "production"
)

type AppEnvironment struct {
	Name string `validate:"required,min=4"`
	URL  string `validate:"required,url"`
	Type string `validate:"required,lowercase,oneof=local production staging"`
}

// Stage reports the configured stage, local when unset.
func (e AppEnvironment) Stage() Stage {
	if e.Type == "" {
		return StageLocal
	}

	return Stage(e.Type)
}

func (e AppEnvironment) IsProduction() bool {
	return e.Stage() == StageProduction
}

func (e AppEnvironment) IsStaging() bool {
	return e.Stage() == StageStaging
}

func (e AppEnvironment) IsLocal() bool {
	return e.Stage() == StageLocal
}
