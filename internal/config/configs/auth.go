package configs

import "time"

// Auth configures verification of the bearer tokens issued by the identity
// service. Tokens are HS256 signed with JWTSecret.
type Auth struct {
	JWTSecret string `env:"JWT_SECRET"`
	Issuer    string `env:"ISSUER" envDefault:"unipact"`
	// Leeway tolerates clock skew between issuer and API.
	Leeway time.Duration `env:"LEEWAY" envDefault:"30s"`
}
