package configs

import (
	"net/url"
	"time"
)

// Billing configures the billing collaborator. When URL is empty payment
// methods are read from the local payment_methods table instead.
type Billing struct {
	URL     *url.URL      `env:"URL"`
	Timeout time.Duration `env:"TIMEOUT" envDefault:"3s"`
}

// Remote reports whether the HTTP billing service should be used.
func (c Billing) Remote() bool {
	return c.URL != nil && c.URL.Host != ""
}
