package configs

import "time"

// Auth configures verification of the brand session tokens issued by the
// authentication service. Tokens are HS256 JWTs whose subject is the brand id.
type Auth struct {
	JWTSecret string        `env:"JWT_SECRET"`
	Leeway    time.Duration `env:"LEEWAY" envDefault:"30s"`
}
