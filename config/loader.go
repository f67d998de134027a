package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Default returns the built-in configuration used when no config file exists.
func Default() *AppConfig {
	return &AppConfig{
		App: AppSection{
			CachingEnabled: false,
			CorsEnabled:    false,
			Routing: RoutingConfig{
				ServiceAlertsEndpoint:    "/gtfs/realtime/service-alerts.pbf",
				TripUpdatesEndpoint:      "/gtfs/realtime/trip-updates.pbf",
				VehiclePositionsEndpoint: "/gtfs/realtime/vehicle-positions.pbf",
			},
		},
		Caching: CachingSection{
			ServerEndpoint:      "localhost:11211",
			ServiceAlertsTTL:    60,
			TripUpdatesTTL:      30,
			VehiclePositionsTTL: 15,
		},
		Notifications: NotificationsSection{
			BrokerURL: "tcp://test.mosquitto.org:1883",
			Topic:     "any/topic",
		},
		Server: ServerConfig{Port: 16181},
	}
}

// Load reads and validates the configuration file at path. An empty path or
// a missing file yields Default(); any other failure is a startup error.
func Load(path string) (*AppConfig, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config %s: %w", path, err)
	}
	return cfg, nil
}

// FeedTTLSeconds returns the cache TTL configured for the given endpoint path.
func (c *AppConfig) FeedTTLSeconds(path string) int {
	switch path {
	case c.App.Routing.TripUpdatesEndpoint:
		return c.Caching.TripUpdatesTTL
	case c.App.Routing.VehiclePositionsEndpoint:
		return c.Caching.VehiclePositionsTTL
	default:
		return c.Caching.ServiceAlertsTTL
	}
}
