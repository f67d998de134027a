package config

// RoutingConfig maps the three realtime feeds to their endpoint paths.
type RoutingConfig struct {
	ServiceAlertsEndpoint    string `yaml:"service_alerts_endpoint" validate:"required,startswith=/"`
	TripUpdatesEndpoint      string `yaml:"trip_updates_endpoint" validate:"required,startswith=/"`
	VehiclePositionsEndpoint string `yaml:"vehicle_positions_endpoint" validate:"required,startswith=/"`
}

// AppSection contains the general application switches
type AppSection struct {
	CachingEnabled bool          `yaml:"caching_enabled"`
	CorsEnabled    bool          `yaml:"cors_enabled"`
	Routing        RoutingConfig `yaml:"routing"`
}

// CachingSection configures the cache backend and the per-feed TTLs
type CachingSection struct {
	ServerEndpoint      string `yaml:"caching_server_endpoint"`
	ServiceAlertsTTL    int    `yaml:"caching_service_alerts_ttl_seconds" validate:"gte=0"`
	TripUpdatesTTL      int    `yaml:"caching_trip_updates_ttl_seconds" validate:"gte=0"`
	VehiclePositionsTTL int    `yaml:"caching_vehicle_positions_ttl_seconds" validate:"gte=0"`
}

// NotificationsSection configures the data notification subscription
type NotificationsSection struct {
	BrokerURL string `yaml:"broker_url"`
	Topic     string `yaml:"topic"`
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	App           AppSection           `yaml:"app"`
	Caching       CachingSection       `yaml:"caching"`
	Notifications NotificationsSection `yaml:"notifications"`
	Server        ServerConfig         `yaml:"server"`
}
