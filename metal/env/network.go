package env

type NetEnvironment struct {
	HttpHost string `validate:"required,lowercase,min=7"`
	HttpPort string `validate:"required,numeric"`

	// DevOrigin is an extra origin allowed by CORS outside production.
	DevOrigin string `validate:"omitempty,url"`

	// RateLimit is the number of requests a single client may issue per minute.
	RateLimit int `validate:"gte=0"`
}

func (e NetEnvironment) GetHttpPort() string {
	return e.HttpPort
}

func (e NetEnvironment) GetHttpHost() string {
	return e.HttpHost
}

func (e NetEnvironment) GetHostURL() string {
	return e.HttpHost + ":" + e.HttpPort
}
