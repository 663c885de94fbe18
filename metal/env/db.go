package env

import "fmt"

type DBEnvironment struct {
	UserName     string `validate:"required,min=5"`
	UserPassword string `validate:"required,min=5"`
	DatabaseName string `validate:"required,min=5"`
	Port         int    `validate:"required,numeric,gt=0"`
	Host         string `validate:"required,hostname|ip"`
	DriverName   string `validate:"required"`
	SSLMode      string `validate:"required,oneof=disable require verify-ca verify-full"`
	TimeZone     string `validate:"required"`
}

func (e DBEnvironment) GetDSN() string {
	return fmt.Sprintf(
		"host=%s user='%s' password='%s' dbname='%s' port=%d sslmode=%s TimeZone=%s",
		e.Host,
		e.UserName,
		e.UserPassword,
		e.DatabaseName,
		e.Port,
		e.SSLMode,
		e.TimeZone,
	)
}
