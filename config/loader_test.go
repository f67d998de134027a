package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadEmptyPathReturnsDefaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 16181 {
		t.Errorf("default port = %d, want 16181", cfg.Server.Port)
	}
	if cfg.App.Routing.ServiceAlertsEndpoint != "/gtfs/realtime/service-alerts.pbf" {
		t.Errorf("unexpected default service alerts endpoint %q", cfg.App.Routing.ServiceAlertsEndpoint)
	}
	if cfg.App.CachingEnabled {
		t.Error("caching should be disabled by default")
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "does-not-exist.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Caching.ServiceAlertsTTL != 60 || cfg.Caching.TripUpdatesTTL != 30 || cfg.Caching.VehiclePositionsTTL != 15 {
		t.Errorf("unexpected default TTLs: %d/%d/%d",
			cfg.Caching.ServiceAlertsTTL, cfg.Caching.TripUpdatesTTL, cfg.Caching.VehiclePositionsTTL)
	}
}

func TestLoadPartialConfigKeepsDefaults(t *testing.T) {
	path := writeConfig(t, `
app:
  caching_enabled: true
server:
  port: 8080
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.App.CachingEnabled {
		t.Error("caching_enabled not applied")
	}
	if cfg.Server.Port != 8080 {
		t.Errorf("port = %d, want 8080", cfg.Server.Port)
	}
	if cfg.Caching.ServerEndpoint != "localhost:11211" {
		t.Errorf("memcached endpoint default lost: %q", cfg.Caching.ServerEndpoint)
	}
	if cfg.App.Routing.TripUpdatesEndpoint != "/gtfs/realtime/trip-updates.pbf" {
		t.Errorf("routing default lost: %q", cfg.App.Routing.TripUpdatesEndpoint)
	}
}

func TestLoadFullConfig(t *testing.T) {
	path := writeConfig(t, `
app:
  caching_enabled: true
  cors_enabled: true
  routing:
    service_alerts_endpoint: /rt/alerts
    trip_updates_endpoint: /rt/updates
    vehicle_positions_endpoint: /rt/vehicles
caching:
  caching_server_endpoint: cache.internal:11211
  caching_service_alerts_ttl_seconds: 120
  caching_trip_updates_ttl_seconds: 45
  caching_vehicle_positions_ttl_seconds: 10
notifications:
  broker_url: tcp://broker.internal:1883
  topic: gtfs/updates
server:
  port: 9090
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.App.Routing.VehiclePositionsEndpoint != "/rt/vehicles" {
		t.Errorf("vehicle positions endpoint = %q", cfg.App.Routing.VehiclePositionsEndpoint)
	}
	if cfg.Caching.TripUpdatesTTL != 45 {
		t.Errorf("trip updates TTL = %d, want 45", cfg.Caching.TripUpdatesTTL)
	}
	if cfg.Notifications.Topic != "gtfs/updates" {
		t.Errorf("topic = %q", cfg.Notifications.Topic)
	}
}

func TestLoadMalformedYAML(t *testing.T) {
	path := writeConfig(t, "app: [unclosed")
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	cases := map[string]string{
		"negative ttl": `
caching:
  caching_trip_updates_ttl_seconds: -1
`,
		"zero port": `
server:
  port: 0
`,
		"relative endpoint": `
app:
  routing:
    service_alerts_endpoint: alerts
`,
	}
	for name, content := range cases {
		path := writeConfig(t, content)
		if _, err := Load(path); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}
}

func TestFeedTTLSeconds(t *testing.T) {
	cfg := Default()
	if got := cfg.FeedTTLSeconds(cfg.App.Routing.ServiceAlertsEndpoint); got != 60 {
		t.Errorf("service alerts TTL = %d, want 60", got)
	}
	if got := cfg.FeedTTLSeconds(cfg.App.Routing.TripUpdatesEndpoint); got != 30 {
		t.Errorf("trip updates TTL = %d, want 30", got)
	}
	if got := cfg.FeedTTLSeconds(cfg.App.Routing.VehiclePositionsEndpoint); got != 15 {
		t.Errorf("vehicle positions TTL = %d, want 15", got)
	}
}
