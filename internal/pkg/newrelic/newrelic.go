package newrelic

import (
	"log"

	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/emresource/emresource/internal/pkg/models"
)

// InitNewRelic bootstraps the APM application. Returns nil when disabled or
// unconfigured; callers must tolerate a nil application.
func InitNewRelic(cfg *models.Config) *newrelic.Application {
	if !cfg.NewRelic.Enabled || cfg.NewRelic.LicenseKey == "" {
		return nil
	}

	app, err := newrelic.NewApplication(
		newrelic.ConfigAppName(cfg.NewRelic.AppName),
		newrelic.ConfigLicense(cfg.NewRelic.LicenseKey),
		newrelic.ConfigAppLogForwardingEnabled(true),
		newrelic.ConfigDistributedTracerEnabled(true),
	)
	if err != nil {
		log.Printf("Warning: failed to initialize New Relic: %v", err)
		return nil
	}

	return app
}
