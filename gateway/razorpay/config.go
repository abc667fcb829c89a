package razorpay

import (
	"fmt"
	"time"

	pkgconfig "github.com/ecomstack/payment-gateway/pkg/config"
)

// Config holds the Razorpay credentials and connection settings. All values
// are sourced externally; this module never persists them.
type Config struct {
	KeyID         string        `env:"RAZORPAY_KEY_ID,required,notEmpty"`
	KeySecret     string        `env:"RAZORPAY_KEY_SECRET,required,notEmpty"`
	WebhookSecret string        `env:"RAZORPAY_WEBHOOK_SECRET,required,notEmpty"`
	BaseURL       string        `env:"RAZORPAY_BASE_URL" envDefault:"https://api.razorpay.com"`
	Timeout       time.Duration `env:"RAZORPAY_TIMEOUT" envDefault:"30s"`
}

// ConfigFromEnv reads the Razorpay configuration from environment variables.
func ConfigFromEnv() (*Config, error) {
	cfg := &Config{}
	if err := pkgconfig.Load(cfg); err != nil {
		return nil, fmt.Errorf("load razorpay config: %w", err)
	}
	return cfg, nil
}
