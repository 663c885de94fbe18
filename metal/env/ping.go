package env

import "strings"

// HealthEnvironment guards the database health endpoint and drives the
// periodic database ping.
type HealthEnvironment struct {
	Username string `validate:"required,min=8"`
	Password string `validate:"required,min=8"`
	DBPing   string `validate:"omitempty,cron"`
}

func (p HealthEnvironment) HasInvalidCreds(username, password string) bool {
	return username != strings.TrimSpace(p.Username) ||
		password != strings.TrimSpace(p.Password)
}

func (p HealthEnvironment) HasSchedule() bool {
	return strings.TrimSpace(p.DBPing) != ""
}
