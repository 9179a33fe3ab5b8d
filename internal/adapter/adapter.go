package adapter

import (
	"fmt"

	"github.com/MKhiriev/go-phone-notify/internal/config"
	"github.com/MKhiriev/go-phone-notify/internal/logger"
	"github.com/MKhiriev/go-phone-notify/internal/utils"
)

type soapAdapter struct {
	client   *utils.HTTPClient
	endpoint string

	logger *logger.Logger
}

// NewSOAPAdapter constructs the PhoneNotify SOAP client. Basic auth is
// configured only when a username is set. No client timeout is applied:
// calls end when the request context ends.
func NewSOAPAdapter(cfg config.Upstream, logger *logger.Logger) (PhoneNotifyAdapter, error) {
	if cfg.Endpoint == "" {
		return nil, fmt.Errorf("invalid upstream endpoint: %w", ErrEndpointNotFound)
	}

	client := utils.NewHTTPClient()
	client.SetLogger(logger)
	if cfg.Username != "" {
		client.SetBasicAuth(cfg.Username, cfg.Password)
	}

	return &soapAdapter{client: client, endpoint: cfg.Endpoint, logger: logger}, nil
}
